package views

import (
	"fmt"
	"strings"

	"moviegrip/internal/domain"
)

// DetailText renders a movie as plain text for the pager
func DetailText(m domain.Movie, posterURL string) string {
	var b strings.Builder

	title := m.Title
	if title == "" {
		title = m.OriginalTitle
	}
	fmt.Fprintf(&b, "%s (%s)\n", title, FormatYear(m))
	b.WriteString(strings.Repeat("=", len([]rune(title))+len(FormatYear(m))+3))
	b.WriteString("\n\n")

	if m.OriginalTitle != "" && m.OriginalTitle != title {
		fmt.Fprintf(&b, "Original title: %s\n", m.OriginalTitle)
	}
	fmt.Fprintf(&b, "Rating:         %s (%d votes)\n", FormatRating(m.VoteAverage), m.VoteCount)
	fmt.Fprintf(&b, "Language:       %s\n", FormatLanguage(m.OriginalLanguage))
	if m.ReleaseDate != "" {
		fmt.Fprintf(&b, "Released:       %s\n", m.ReleaseDate)
	}
	fmt.Fprintf(&b, "Popularity:     %.1f\n", m.Popularity)
	if posterURL != "" {
		fmt.Fprintf(&b, "Poster:         %s\n", posterURL)
	}

	b.WriteString("\n")
	if m.Overview != "" {
		b.WriteString(m.Overview)
	} else {
		b.WriteString("No overview available.")
	}
	b.WriteString("\n")

	return b.String()
}
