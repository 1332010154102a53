package audit

import (
	"strings"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// checkOTAHandler verifies the OTA update path is complete: the OTA library
// is referenced, a web update endpoint exists, and the handler is actually
// started or serviced. A partial handler looks safe but leaves the device
// unreachable after the next flash.
func checkOTAHandler(art Artifacts, _ profile.Limits) types.CheckResult {
	code := art[MainSource]

	markers := []struct {
		label   string
		present bool
	}{
		{"ArduinoOTA", strings.Contains(code, "ArduinoOTA")},
		{"Web OTA endpoint", strings.Contains(code, `"/update"`) || strings.Contains(code, "handleUpdate")},
		{"OTA begin", strings.Contains(code, "ArduinoOTA.begin()") || strings.Contains(code, "ArduinoOTA.handle()")},
	}

	allPresent := true
	details := make([]string, 0, len(markers))

	for _, marker := range markers {
		status := "[OK]"
		if !marker.present {
			status = "[MISSING]"
			allPresent = false
		}

		details = append(details, status+" "+marker.label)
	}

	if !allPresent {
		return types.CheckResult{
			Name:     "OTA Handler",
			Passed:   false,
			Message:  "OTA handler incomplete",
			Severity: types.SeverityCritical,
			Details:  details,
		}
	}

	return types.CheckResult{
		Name:     "OTA Handler",
		Passed:   true,
		Message:  "OTA handler properly configured",
		Severity: types.SeverityInfo,
		Details:  details,
	}
}
