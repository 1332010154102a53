package otagate

import (
	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// The report model lives in internal/types so the rule table can share it;
// these aliases are the public names.
type (
	// Severity indicates how a failing check affects the release decision.
	Severity = types.Severity
	// CheckResult is the outcome of a single validation check.
	CheckResult = types.CheckResult
	// Report accumulates the results of one full validation run.
	Report = types.Report
	// Limits is the numeric envelope of the target device.
	Limits = profile.Limits
)

const (
	SeverityInfo     = types.SeverityInfo
	SeverityWarning  = types.SeverityWarning
	SeverityCritical = types.SeverityCritical
)

// DefaultEnvironment is the build environment validated when none is given.
const DefaultEnvironment = "esp8266"

// Options configures a validation run.
type Options struct {
	// Environment is the build environment name passed to the toolchain
	// (default: DefaultEnvironment).
	Environment string

	// Limits is the device memory envelope. The zero value selects the
	// ESP8266 reference profile.
	Limits Limits
}

// DefaultOptions returns options for the reference device.
func DefaultOptions() Options {
	return Options{
		Environment: DefaultEnvironment,
		Limits:      profile.ESP8266(),
	}
}
