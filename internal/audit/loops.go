package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// Matches a while(true) or while(1) block. Brace matching is approximate
// (first closing brace), which is enough for the flat loop bodies this
// heuristic targets.
var whileTrueRe = regexp.MustCompile(`(?s)while\s*\(\s*(?:true|1)\s*\)\s*\{[^}]*\}`)

// checkInfiniteLoops flags busy loops that never yield. A tight loop without
// yield/delay starves the watchdog and resets the device.
func checkInfiniteLoops(art Artifacts, _ profile.Limits) types.CheckResult {
	code := art[MainSource]

	var issues []string

	for _, loc := range whileTrueRe.FindAllStringIndex(code, -1) {
		body := code[loc[0]:loc[1]]

		if strings.Contains(body, "yield()") ||
			strings.Contains(body, "delay(") ||
			strings.Contains(body, "break") {
			continue
		}

		issues = append(issues, fmt.Sprintf("Line ~%d: while(true) without yield/delay", lineAt(code, loc[0])))
	}

	if len(issues) > 0 {
		return types.CheckResult{
			Name:     "Infinite Loop Check",
			Passed:   false,
			Message:  fmt.Sprintf("%d potential infinite loops", len(issues)),
			Severity: types.SeverityWarning,
			Details:  capDetails(issues),
		}
	}

	return types.CheckResult{
		Name:     "Infinite Loop Check",
		Passed:   true,
		Message:  "No unsafe infinite loops detected",
		Severity: types.SeverityInfo,
	}
}
