package audit

import (
	"fmt"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// ClassifyFlashSize grades the built image against the application flash
// budget. Boundary values resolve to the stricter tier: exactly 95% is
// critical, exactly 85% is a warning.
func ClassifyFlashSize(binaryName string, size int64, limits profile.Limits) types.CheckResult {
	sizeKB := float64(size) / 1024
	pct := float64(size) / float64(limits.FlashAppMax)

	details := []string{
		"Binary: " + binaryName,
		fmt.Sprintf("Size: %d bytes", size),
		fmt.Sprintf("Max allowed: %d bytes", limits.FlashAppMax),
	}

	switch {
	case pct >= limits.FlashCritical:
		return types.CheckResult{
			Name:   "Firmware Size",
			Passed: false,
			Message: fmt.Sprintf("Firmware too large: %.1fKB (%.1f%% of %dKB limit)",
				sizeKB, pct*100, limits.FlashAppMax/1024),
			Severity: types.SeverityCritical,
			Details:  details,
		}
	case pct >= limits.FlashWarn:
		return types.CheckResult{
			Name:     "Firmware Size",
			Passed:   true,
			Message:  fmt.Sprintf("Firmware size warning: %.1fKB (%.1f%%)", sizeKB, pct*100),
			Severity: types.SeverityWarning,
			Details:  details,
		}
	default:
		return types.CheckResult{
			Name:     "Firmware Size",
			Passed:   true,
			Message:  fmt.Sprintf("Firmware size OK: %.1fKB (%.1f%%)", sizeKB, pct*100),
			Severity: types.SeverityInfo,
			Details:  details,
		}
	}
}

// ClassifyRAM grades the compile-time RAM percentage reported by the build
// toolchain. The percentage is on a 0-100 scale, the profile thresholds are
// fractions. Same stricter-side boundary rule as the flash check.
func ClassifyRAM(pct float64, limits profile.Limits) types.CheckResult {
	details := []string{fmt.Sprintf("Compile-time RAM: %g%%", pct)}

	switch {
	case pct >= limits.RAMCritical*100:
		return types.CheckResult{
			Name:     "RAM Usage",
			Passed:   false,
			Message:  fmt.Sprintf("RAM usage critical: %g%%", pct),
			Severity: types.SeverityCritical,
			Details:  details,
		}
	case pct >= limits.RAMWarn*100:
		return types.CheckResult{
			Name:     "RAM Usage",
			Passed:   true,
			Message:  fmt.Sprintf("RAM usage high: %g%%", pct),
			Severity: types.SeverityWarning,
			Details:  details,
		}
	default:
		return types.CheckResult{
			Name:     "RAM Usage",
			Passed:   true,
			Message:  fmt.Sprintf("RAM usage OK: %g%%", pct),
			Severity: types.SeverityInfo,
			Details:  details,
		}
	}
}
