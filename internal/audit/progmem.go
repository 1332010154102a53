package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// Quoted literals at least this long belong in program storage, not RAM.
const largeStringMin = 100

// A storage qualifier counts if it appears within this many bytes before
// the literal.
const qualifierWindow = 50

var largeStringRe = regexp.MustCompile(`"[^"]{100,}"`)

// checkStringSafety flags large string literals kept in RAM instead of
// PROGMEM, and a companion HTML header that skips the qualifier entirely.
func checkStringSafety(art Artifacts, _ profile.Limits) types.CheckResult {
	var issues []string

	if code, ok := art[MainSource]; ok {
		for _, loc := range largeStringRe.FindAllStringIndex(code, -1) {
			start := loc[0]

			windowStart := start - qualifierWindow
			if windowStart < 0 {
				windowStart = 0
			}

			if !strings.Contains(code[windowStart:start], "PROGMEM") {
				issues = append(issues, fmt.Sprintf("Large string (%d chars) may not be in PROGMEM", loc[1]-loc[0]))
			}
		}
	}

	if html, ok := art[AdminHTML]; ok {
		if !strings.Contains(html, "PROGMEM") {
			issues = append(issues, "src/admin_html.h should use PROGMEM for HTML content")
		}
	}

	if len(issues) > 0 {
		return types.CheckResult{
			Name:     "PROGMEM Usage",
			Passed:   false,
			Message:  fmt.Sprintf("%d potential RAM issues", len(issues)),
			Severity: types.SeverityWarning,
			Details:  capDetails(issues),
		}
	}

	return types.CheckResult{
		Name:     "PROGMEM Usage",
		Passed:   true,
		Message:  "String storage optimized",
		Severity: types.SeverityInfo,
	}
}
