package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQuerySubmitted   EventType = "QuerySubmitted"
	EventQueryCleared     EventType = "QueryCleared"
	EventActivitiesLoaded EventType = "ActivitiesLoaded"
	EventFetchFailed      EventType = "FetchFailed"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QuerySubmittedEvent is emitted when the user submits a non-empty account query
type QuerySubmittedEvent struct {
	Account string
	Seq     uint64
}

func (e QuerySubmittedEvent) Type() EventType { return EventQuerySubmitted }

// QueryClearedEvent is emitted when an empty submission resets the view
type QueryClearedEvent struct{}

func (e QueryClearedEvent) Type() EventType { return EventQueryCleared }

// ActivitiesLoadedEvent is emitted when a fetch completes successfully
type ActivitiesLoadedEvent struct {
	Account string
	Count   int
	Seq     uint64
}

func (e ActivitiesLoadedEvent) Type() EventType { return EventActivitiesLoaded }

// FetchFailedEvent is emitted when a fetch fails for any reason
type FetchFailedEvent struct {
	Account string
	Err     error
	Seq     uint64
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Endpoint string
	Limit    int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
