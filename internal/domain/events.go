package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchCommitted       EventType = "SearchCommitted"
	EventFetchStarted          EventType = "FetchStarted"
	EventFetchCompleted        EventType = "FetchCompleted"
	EventFetchFailed           EventType = "FetchFailed"
	EventSearchRecordRequested EventType = "SearchRecordRequested"
	EventSearchRecorded        EventType = "SearchRecorded"
	EventTrendingLoaded        EventType = "TrendingLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchCommittedEvent is emitted when the debounced search term changes
type SearchCommittedEvent struct {
	Query string
}

func (e SearchCommittedEvent) Type() EventType { return EventSearchCommitted }

// FetchStartedEvent is emitted when a catalog request is issued
type FetchStartedEvent struct {
	Seq   uint64
	Mode  FetchMode
	Query string
	Page  int
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchCompletedEvent is emitted when the latest catalog request succeeds
type FetchCompletedEvent struct {
	Seq        uint64
	Query      string
	Page       int
	TotalPages int
	Count      int
}

func (e FetchCompletedEvent) Type() EventType { return EventFetchCompleted }

// FetchFailedEvent is emitted when the latest catalog request fails
type FetchFailedEvent struct {
	Seq   uint64
	Query string
	Page  int
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// SearchRecordRequestedEvent asks the search-count store to count a query
// and remember its top result
type SearchRecordRequestedEvent struct {
	Query string
	Movie Movie
}

func (e SearchRecordRequestedEvent) Type() EventType { return EventSearchRecordRequested }

// SearchRecordedEvent is emitted once a search count has been stored
type SearchRecordedEvent struct {
	Query string
}

func (e SearchRecordedEvent) Type() EventType { return EventSearchRecorded }

// TrendingLoadedEvent is emitted after the trending list was read at startup
type TrendingLoadedEvent struct {
	Count int
}

func (e TrendingLoadedEvent) Type() EventType { return EventTrendingLoaded }
