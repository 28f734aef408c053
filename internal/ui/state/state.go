package state

import (
	"chainfeed/internal/domain"
)

// Phase is the tagged state of the result presenter. Exactly one phase is
// active at a time; transitions happen only in the model's Update.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseResults
)

// String returns the phase name for logs
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// AppState contains all the application state
type AppState struct {
	// Query/result state
	Phase        Phase             // current presenter phase
	LastQuery    string            // account of the last submitted query
	Activities   []domain.Activity // results of the last completed fetch
	ErrorMessage string            // user-facing message when Phase == PhaseError
	Seq          uint64            // sequence of the latest submission

	// UI state
	ShowFullAddresses bool // expand abbreviated from/to addresses
	ShowHelp          bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Phase: PhaseIdle,
	}
}

// Reset returns the state to idle, clearing all derived fields. The
// sequence is bumped so an in-flight fetch cannot pull the view back out
// of idle when it lands.
func (s *AppState) Reset() {
	s.Seq++
	s.Phase = PhaseIdle
	s.LastQuery = ""
	s.Activities = nil
	s.ErrorMessage = ""
}

// BeginFetch moves the state into loading for a new submission and returns
// the sequence number assigned to it. Previous results and errors are
// discarded immediately.
func (s *AppState) BeginFetch() uint64 {
	s.Seq++
	s.Phase = PhaseLoading
	s.Activities = nil
	s.ErrorMessage = ""
	return s.Seq
}

// CompleteFetch applies a fetch outcome. Outcomes from superseded
// submissions are ignored; the latest submission always wins.
func (s *AppState) CompleteFetch(seq uint64, account string, activities []domain.Activity, err error, errMessage string) bool {
	if seq != s.Seq {
		return false
	}

	s.LastQuery = account
	if err != nil {
		s.Phase = PhaseError
		s.ErrorMessage = errMessage
		s.Activities = nil
		return true
	}

	s.Phase = PhaseResults
	s.Activities = activities
	s.ErrorMessage = ""
	return true
}
