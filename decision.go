package otagate

// Decision is the exit state derived from a finished report.
type Decision int

const (
	// DecisionClear means every check passed; safe to flash.
	DecisionClear Decision = iota
	// DecisionReview means warnings are present; a human should look
	// before flashing.
	DecisionReview
	// DecisionBlock means at least one critical failure; do not flash.
	DecisionBlock
)

func (d Decision) String() string {
	switch d {
	case DecisionClear:
		return "CLEAR"
	case DecisionReview:
		return "REVIEW"
	case DecisionBlock:
		return "BLOCK"
	}

	return "unknown"
}

// ExitCode maps the decision to the process exit code contract:
// 0 = clear, 1 = block, 2 = review.
func (d Decision) ExitCode() int {
	switch d {
	case DecisionBlock:
		return 1
	case DecisionReview:
		return 2
	default:
		return 0
	}
}

// Decide derives the exit state from a finished report. Strict mode
// escalates REVIEW to BLOCK; it never touches CLEAR.
func Decide(report *Report, strict bool) Decision {
	if !report.OverallPassed() {
		return DecisionBlock
	}

	if report.HasWarnings() {
		if strict {
			return DecisionBlock
		}

		return DecisionReview
	}

	return DecisionClear
}
