package domain

// Outcome is the tri-state result of a best-effort page interaction such as
// dismissing a popup or opening the result detail view. Only OutcomeFailed
// represents a hard failure; OutcomeNotFound is benign.
type Outcome int

const (
	// OutcomeHandled means the element was found and acted on.
	OutcomeHandled Outcome = iota
	// OutcomeNotFound means no candidate resolved; processing continues.
	OutcomeNotFound
	// OutcomeFailed means the element was found but acting on it failed.
	OutcomeFailed
)

// String returns a log-friendly name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeHandled:
		return "handled"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
