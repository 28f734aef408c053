package ui

import (
	"chainfeed/internal/domain"
)

// activitiesMsg contains the outcome of an activity fetch. The seq field
// ties it back to the submission that started it.
type activitiesMsg struct {
	seq        uint64
	account    string
	activities []domain.Activity
	err        error
}
