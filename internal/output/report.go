// Package output provides shared report serialization for the otagate
// presenters.
package output

import (
	"fmt"

	"github.com/epicweather/otagate"
)

// ReportToMap converts a finished report and its decision into the
// canonical map structure handed to the formatters.
//
// Critical failures and warnings are always listed by name and message;
// per-check detail lines appear only when verbose is set.
func ReportToMap(report *otagate.Report, decision otagate.Decision, verbose bool) map[string]any {
	meta := map[string]any{}

	results := make([]any, 0, len(report.Results))

	for _, result := range report.Results {
		entry := map[string]any{
			"name":     result.Name,
			"status":   statusLabel(result),
			"severity": result.Severity.String(),
			"message":  result.Message,
		}

		if verbose && len(result.Details) > 0 {
			entry["details"] = result.Details
		}

		results = append(results, entry)
	}

	meta["results"] = results

	summary := map[string]any{
		"decision":      decision.String(),
		"checks_passed": fmt.Sprintf("%d/%d", report.PassedCount(), len(report.Results)),
		"verdict":       verdict(decision),
	}

	if report.FirmwareSize > 0 {
		summary["firmware_size"] = fmt.Sprintf(
			"%d bytes (%.1f KB)", report.FirmwareSize, float64(report.FirmwareSize)/1024)
	}

	meta["summary"] = summary

	if failures := report.CriticalFailures(); len(failures) > 0 {
		lines := make([]any, 0, len(failures))
		for _, failure := range failures {
			lines = append(lines, failure.Name+": "+failure.Message)
		}

		meta["critical_failures"] = lines
	}

	if warnings := report.Warnings(); len(warnings) > 0 {
		lines := make([]any, 0, len(warnings))
		for _, warning := range warnings {
			lines = append(lines, warning.Name+": "+warning.Message)
		}

		meta["warnings"] = lines
	}

	return meta
}

func statusLabel(result otagate.CheckResult) string {
	if result.Passed {
		return "[OK]"
	}

	switch result.Severity {
	case otagate.SeverityCritical:
		return "[CRITICAL]"
	case otagate.SeverityWarning:
		return "[WARNING]"
	default:
		return "[FAIL]"
	}
}

func verdict(decision otagate.Decision) string {
	switch decision {
	case otagate.DecisionBlock:
		return "FAILED - DO NOT FLASH THIS FIRMWARE"
	case otagate.DecisionReview:
		return "PASSED WITH WARNINGS - review before flashing"
	default:
		return "PASSED - safe to flash"
	}
}
