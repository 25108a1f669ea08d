package domain

import "strings"

// Transition is the state-machine effect of a requested status value.
type Transition int

const (
	// TransitionNone stores the requested status verbatim, no side effects.
	TransitionNone Transition = iota
	// TransitionComplete sets the contract to Completed, frees its cars
	// and may auto-create a return receipt.
	TransitionComplete
	// TransitionCancel sets the contract to Canceled and frees its cars.
	TransitionCancel
)

// ClassifyTransition matches a requested status against the fixed keyword
// sets, case-insensitively. Unrecognized values classify as TransitionNone.
func ClassifyTransition(status string) Transition {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed", "returned", "done":
		return TransitionComplete
	case "canceled", "cancelled":
		return TransitionCancel
	default:
		return TransitionNone
	}
}
