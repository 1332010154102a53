// Package profile defines the memory envelope of a target device. The
// envelope drives every numeric threshold in the validation pipeline, so a
// profile must match the device partition layout exactly.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits is the numeric envelope for one device profile.
//
// The reference device is an ESP8266 with 4 MiB flash split so 1 MiB holds
// the application image and the remainder the persistent filesystem, and
// 80 KiB of RAM.
type Limits struct {
	// Flash budget for the application image, in bytes.
	FlashAppMax int64 `yaml:"flash_app_max"`
	// Flash usage fractions. At FlashWarn the image passes with a warning,
	// at FlashCritical it blocks the release.
	FlashWarn     float64 `yaml:"flash_warn"`
	FlashCritical float64 `yaml:"flash_critical"`

	// Total RAM in bytes and compile-time usage fractions.
	RAMTotal    int64   `yaml:"ram_total"`
	RAMWarn     float64 `yaml:"ram_warn"`
	RAMCritical float64 `yaml:"ram_critical"`

	// Free heap guidance, in bytes. Below HeapCriticalFree the device is
	// known to be unstable.
	HeapMinFree      int64 `yaml:"heap_min_free"`
	HeapCriticalFree int64 `yaml:"heap_critical_free"`

	// Static analysis thresholds.
	WatchdogMinCalls   int `yaml:"watchdog_min_calls"`   // yield()+delay() servicing minimum
	LongDelayMs        int `yaml:"long_delay_ms"`        // delay() literal above this blocks too long
	StackArrayMax      int `yaml:"stack_array_max"`      // fixed array elements above this risk the stack
	AllocImbalanceSlop int `yaml:"alloc_imbalance_slop"` // tolerated alloc-minus-free surplus
}

// ESP8266 returns the reference device profile.
func ESP8266() Limits {
	return Limits{
		FlashAppMax:   1024 * 1024,
		FlashWarn:     0.85,
		FlashCritical: 0.95,

		RAMTotal:    81920,
		RAMWarn:     0.70,
		RAMCritical: 0.85,

		HeapMinFree:      20480,
		HeapCriticalFree: 15360,

		WatchdogMinCalls:   5,
		LongDelayMs:        5000,
		StackArrayMax:      2048,
		AllocImbalanceSlop: 2,
	}
}

// Load reads a profile from a YAML file. Fields left zero in the file fall
// back to the ESP8266 reference values.
func Load(path string) (Limits, error) {
	data, err := os.ReadFile(path) //nolint:gosec // profile path is user-provided by design
	if err != nil {
		return Limits{}, fmt.Errorf("reading profile: %w", err)
	}

	var limits Limits
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return Limits{}, fmt.Errorf("parsing profile: %w", err)
	}

	applyDefaults(&limits)

	return limits, nil
}

func applyDefaults(limits *Limits) {
	defaults := ESP8266()

	if limits.FlashAppMax == 0 {
		limits.FlashAppMax = defaults.FlashAppMax
	}

	if limits.FlashWarn == 0 {
		limits.FlashWarn = defaults.FlashWarn
	}

	if limits.FlashCritical == 0 {
		limits.FlashCritical = defaults.FlashCritical
	}

	if limits.RAMTotal == 0 {
		limits.RAMTotal = defaults.RAMTotal
	}

	if limits.RAMWarn == 0 {
		limits.RAMWarn = defaults.RAMWarn
	}

	if limits.RAMCritical == 0 {
		limits.RAMCritical = defaults.RAMCritical
	}

	if limits.HeapMinFree == 0 {
		limits.HeapMinFree = defaults.HeapMinFree
	}

	if limits.HeapCriticalFree == 0 {
		limits.HeapCriticalFree = defaults.HeapCriticalFree
	}

	if limits.WatchdogMinCalls == 0 {
		limits.WatchdogMinCalls = defaults.WatchdogMinCalls
	}

	if limits.LongDelayMs == 0 {
		limits.LongDelayMs = defaults.LongDelayMs
	}

	if limits.StackArrayMax == 0 {
		limits.StackArrayMax = defaults.StackArrayMax
	}

	if limits.AllocImbalanceSlop == 0 {
		limits.AllocImbalanceSlop = defaults.AllocImbalanceSlop
	}
}
