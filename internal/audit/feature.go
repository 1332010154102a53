package audit

import (
	"strings"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// checkOTAFeature verifies that OTA updates are compiled in. On a device
// with no data port, firmware without OTA support cannot be replaced again
// without a hardware intervention.
//
// The marker is matched with one or two interior spaces to tolerate aligned
// #define columns.
func checkOTAFeature(art Artifacts, _ profile.Limits) types.CheckResult {
	config := art[ConfigHeader]

	enabled := strings.Contains(config, "FEATURE_OTA_UPDATE 1") ||
		strings.Contains(config, "FEATURE_OTA_UPDATE  1")

	if !enabled {
		return types.CheckResult{
			Name:     "OTA Update Feature",
			Passed:   false,
			Message:  "OTA updates DISABLED - recovery impossible without hardware mod!",
			Severity: types.SeverityCritical,
		}
	}

	return types.CheckResult{
		Name:     "OTA Update Feature",
		Passed:   true,
		Message:  "OTA updates enabled",
		Severity: types.SeverityInfo,
	}
}
