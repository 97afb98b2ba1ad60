package assessment

import "errors"

// ErrInvalidState is returned when an operation is not allowed in the
// assessment's current phase.
var ErrInvalidState = errors.New("invalid assessment state")

// Phase represents the current phase of an assessment.
type Phase int

const (
	PhaseIdle             Phase = iota // No category chosen
	PhaseCategorySelected              // Category chosen, no question shown yet
	PhaseAnswering                     // Serving questions
	PhaseCompleted                     // Result available
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCategorySelected:
		return "category-selected"
	case PhaseAnswering:
		return "answering"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Transition describes a single phase change, reported to observers.
type Transition struct {
	AssessmentID string
	CategoryID   string
	From         Phase
	To           Phase

	// Index is the question index after the transition.
	Index int

	// EarlyExit is true when a policy cut the question sequence short.
	EarlyExit bool

	// YesCount is the number of "yes" answers so far.
	YesCount int
}

// Observer receives every phase transition.
type Observer func(Transition)
