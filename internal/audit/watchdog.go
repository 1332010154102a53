package audit

import (
	"fmt"
	"strings"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// checkWatchdog verifies the hardware watchdog gets serviced often enough.
// On the ESP8266 both yield() and delay() feed the watchdog, so the check
// counts those calls in the main source.
func checkWatchdog(art Artifacts, limits profile.Limits) types.CheckResult {
	code := art[MainSource]

	hasEnable := strings.Contains(code, "ESP.wdtEnable") || strings.Contains(code, "wdt_enable")
	yieldCount := strings.Count(code, "yield()")
	delayCount := strings.Count(code, "delay(")

	var details []string

	if hasEnable {
		details = append(details, "WDT enable found")
	}

	if yieldCount > 0 {
		details = append(details, fmt.Sprintf("yield() calls: %d", yieldCount))
	}

	if delayCount > 0 {
		details = append(details, fmt.Sprintf("delay() calls: %d", delayCount))
	}

	serviced := yieldCount+delayCount >= limits.WatchdogMinCalls

	if !serviced {
		return types.CheckResult{
			Name:     "Watchdog Timer",
			Passed:   false,
			Message:  "Insufficient yield/delay calls - risk of WDT reset",
			Severity: types.SeverityWarning,
			Details:  details,
		}
	}

	return types.CheckResult{
		Name:     "Watchdog Timer",
		Passed:   true,
		Message:  "Watchdog timer properly serviced",
		Severity: types.SeverityInfo,
		Details:  details,
	}
}
