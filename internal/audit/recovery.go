package audit

import (
	"strings"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// checkSafeMode looks for an emergency recovery mechanism: a safe-mode or
// recovery code path, or a factory-reset style escape hatch.
func checkSafeMode(art Artifacts, _ profile.Limits) types.CheckResult {
	code := art[MainSource]
	lower := strings.ToLower(code)

	hasSafeMode := (strings.Contains(lower, "safe") && strings.Contains(lower, "mode")) ||
		strings.Contains(lower, "emergency") ||
		strings.Contains(lower, "recovery")

	hasConfigReset := strings.Contains(code, "LittleFS.format()") || strings.Contains(code, "reset=1")

	if !hasSafeMode && !hasConfigReset {
		return types.CheckResult{
			Name:     "Safe Mode/Recovery",
			Passed:   false,
			Message:  "No safe mode detected - consider adding emergency recovery",
			Severity: types.SeverityWarning,
		}
	}

	return types.CheckResult{
		Name:     "Safe Mode/Recovery",
		Passed:   true,
		Message:  "Safe mode/recovery mechanism present",
		Severity: types.SeverityInfo,
	}
}
