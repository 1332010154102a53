// Package types holds the report model shared by the rule table, the
// orchestrator and the presenters.
package types

// Severity indicates how a failing check affects the release decision.
type Severity int

const (
	SeverityInfo     Severity = iota // informational, never affects the decision
	SeverityWarning                  // flags the release for human review
	SeverityCritical                 // blocks the release
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	}

	return "unknown"
}

// CheckResult is the outcome of a single validation check.
//
// Severity is assigned by the check itself, independent of Passed: a check
// may pass with SeverityWarning ("warn but don't block"). Details are
// informational only and never affect the decision.
type CheckResult struct {
	Name     string
	Passed   bool
	Message  string
	Severity Severity
	Details  []string
}

// Report accumulates the results of one full validation run.
//
// Results are append-only; insertion order is execution order. Once the last
// phase completes the report is read-only. FirmwarePath and FirmwareSize are
// set at most once, by the binary analyzer; an empty FirmwarePath means the
// build produced no artifact.
type Report struct {
	Results      []CheckResult
	FirmwarePath string
	FirmwareSize int64
}

// Add appends a result. The orchestrator is the only caller.
func (r *Report) Add(result CheckResult) {
	r.Results = append(r.Results, result)
}

// OverallPassed is false iff at least one result is a failing critical.
// Warning- and info-severity failures never flip it.
func (r *Report) OverallPassed() bool {
	for _, result := range r.Results {
		if result.Severity == SeverityCritical && !result.Passed {
			return false
		}
	}

	return true
}

// HasWarnings is true iff at least one result is a failing warning.
func (r *Report) HasWarnings() bool {
	for _, result := range r.Results {
		if result.Severity == SeverityWarning && !result.Passed {
			return true
		}
	}

	return false
}

// CriticalFailures returns the failing critical results, in execution order.
func (r *Report) CriticalFailures() []CheckResult {
	var out []CheckResult

	for _, result := range r.Results {
		if result.Severity == SeverityCritical && !result.Passed {
			out = append(out, result)
		}
	}

	return out
}

// Warnings returns the failing warning results, in execution order.
func (r *Report) Warnings() []CheckResult {
	var out []CheckResult

	for _, result := range r.Results {
		if result.Severity == SeverityWarning && !result.Passed {
			out = append(out, result)
		}
	}

	return out
}

// PassedCount returns how many results passed.
func (r *Report) PassedCount() int {
	count := 0

	for _, result := range r.Results {
		if result.Passed {
			count++
		}
	}

	return count
}
