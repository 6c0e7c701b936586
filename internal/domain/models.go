package domain

import "time"

// Movie is a movie summary as returned by the catalog
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	OriginalLanguage string  `json:"original_language"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Adult            bool    `json:"adult"`
}

// Year returns the release year, or "" when the release date is unknown
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// PageResult is one page of catalog results
type PageResult struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// TrendingEntry is a search term ranked by how often it was searched,
// together with the top result recorded for it
type TrendingEntry struct {
	ID         string
	SearchTerm string
	Count      int
	MovieID    int
	Title      string
	PosterPath string
	UpdatedAt  time.Time
}

// FetchMode tells whether a fetch browses popular movies or searches by text
type FetchMode int

const (
	ModeDiscover FetchMode = iota
	ModeSearch
)

func (m FetchMode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "discover"
}

// ModeFor returns the fetch mode implied by a committed search term
func ModeFor(query string) FetchMode {
	if query == "" {
		return ModeDiscover
	}
	return ModeSearch
}
