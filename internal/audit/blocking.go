package audit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

var delayLiteralRe = regexp.MustCompile(`delay\((\d+)\)`)

// checkBlockingCode flags operations that stall the main loop: literal
// delays beyond the profile threshold, and network GETs with no timeout
// configured anywhere in the source.
func checkBlockingCode(art Artifacts, limits profile.Limits) types.CheckResult {
	code := art[MainSource]

	var issues []string

	for _, loc := range delayLiteralRe.FindAllStringSubmatchIndex(code, -1) {
		ms, err := strconv.Atoi(code[loc[2]:loc[3]])
		if err != nil {
			continue
		}

		if ms > limits.LongDelayMs {
			issues = append(issues, fmt.Sprintf(
				"Line ~%d: delay(%dms) - very long blocking delay", lineAt(code, loc[0]), ms))
		}
	}

	if strings.Contains(code, "http.GET()") &&
		!strings.Contains(code, "setTimeout") &&
		!strings.Contains(code, "setConnectTimeout") {
		issues = append(issues, "HTTP requests may lack timeout - could block indefinitely")
	}

	if len(issues) > 0 {
		return types.CheckResult{
			Name:     "Blocking Code",
			Passed:   false,
			Message:  fmt.Sprintf("%d blocking issues", len(issues)),
			Severity: types.SeverityWarning,
			Details:  capDetails(issues),
		}
	}

	return types.CheckResult{
		Name:     "Blocking Code",
		Passed:   true,
		Message:  "No problematic blocking code",
		Severity: types.SeverityInfo,
	}
}
