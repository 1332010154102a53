// Package otagate gates firmware releases for a display device that can
// only be updated over the air. A defective image cannot be recovered
// except through further OTA pushes, so every build is validated before it
// is ever transmitted: heuristic source checks, a real build, and binary
// and memory analysis, aggregated into a severity-classified report.
package otagate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/farcloser/primordium/fault"

	"github.com/epicweather/otagate/internal/audit"
	"github.com/epicweather/otagate/internal/integration/pio"
	"github.com/epicweather/otagate/internal/types"
)

var errProjectRoot = errors.New("project root not found")

// Validate runs the full pipeline against a project directory and returns
// the finished report.
//
// Four phases run in fixed order: source checks, build, binary/memory
// analysis, and the remaining static risk checks. Phases 3 and 4 run only
// if the build succeeded. A failing check never aborts its phase; every
// check appends independently. The only error return is a setup failure
// before any check has run.
func Validate(ctx context.Context, projectDir string, opts Options) (*Report, error) {
	if opts.Environment == "" {
		opts.Environment = DefaultEnvironment
	}

	if opts.Limits == (Limits{}) {
		opts.Limits = DefaultOptions().Limits
	}

	info, err := os.Stat(projectDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", errProjectRoot, projectDir)
	}

	artifacts := loadArtifacts(projectDir)
	report := &types.Report{}

	// Phase 1: pre-build source checks.
	for _, result := range audit.Run(audit.PhasePreBuild, artifacts, opts.Limits) {
		report.Add(result)
	}

	// Phase 2: build. Its success gates everything after it.
	if !runBuild(ctx, projectDir, opts, report) {
		return report, nil
	}

	// Phase 3: binary and memory analysis.
	analyzeFirmwareSize(projectDir, opts, report)
	analyzeRAMUsage(ctx, projectDir, opts, report)

	// Phase 4: static risk checks, gated on build success to mirror the
	// run order even though their inputs are purely textual.
	for _, result := range audit.Run(audit.PhaseStatic, artifacts, opts.Limits) {
		report.Add(result)
	}

	return report, nil
}

// loadArtifacts reads the project files the rule table may inspect. Files
// that do not exist are simply absent from the map.
func loadArtifacts(projectDir string) audit.Artifacts {
	paths := append(audit.RequiredArtifacts(), audit.AdminHTML)
	artifacts := make(audit.Artifacts, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(filepath.Join(projectDir, path)) //nolint:gosec // project-relative source reads
		if err != nil {
			continue
		}

		artifacts[path] = string(data)
	}

	return artifacts
}

// runBuild invokes the toolchain and appends the Build result. Returns
// whether the build succeeded.
func runBuild(ctx context.Context, projectDir string, opts Options, report *Report) bool {
	result, err := pio.Run(ctx, projectDir, opts.Environment, false)

	switch {
	case errors.Is(err, fault.ErrTimeout):
		report.Add(types.CheckResult{
			Name:     "Build",
			Passed:   false,
			Message:  "Build timed out after 5 minutes",
			Severity: types.SeverityCritical,
		})

		return false
	case err != nil:
		report.Add(types.CheckResult{
			Name:     "Build",
			Passed:   false,
			Message:  "Build error: " + err.Error(),
			Severity: types.SeverityCritical,
		})

		return false
	}

	details := pio.SizeInfo(result.Output)
	if len(details) == 0 {
		details = []string{"No size info available"}
	}

	if !result.Success {
		report.Add(types.CheckResult{
			Name:     "Build",
			Passed:   false,
			Message:  "Build FAILED",
			Severity: types.SeverityCritical,
			Details:  details,
		})

		return false
	}

	report.Add(types.CheckResult{
		Name:     "Build",
		Passed:   true,
		Message:  "Build successful",
		Severity: types.SeverityInfo,
		Details:  details,
	})

	return true
}

// analyzeFirmwareSize grades the produced binary against the flash budget.
// A missing binary after a successful build is itself a critical finding.
func analyzeFirmwareSize(projectDir string, opts Options, report *Report) {
	binaryPath := pio.BinaryPath(projectDir, opts.Environment)

	info, err := os.Stat(binaryPath)
	if err != nil {
		report.Add(types.CheckResult{
			Name:     "Firmware Binary",
			Passed:   false,
			Message:  "Firmware binary not found",
			Severity: types.SeverityCritical,
		})

		return
	}

	report.FirmwarePath = binaryPath
	report.FirmwareSize = info.Size()

	report.Add(audit.ClassifyFlashSize(filepath.Base(binaryPath), info.Size(), opts.Limits))
}

// analyzeRAMUsage re-invokes the toolchain verbosely and grades the
// compile-time RAM percentage it reports. A parser miss or a failed verbose
// run is not evidence of a problem, so the check is skipped silently.
func analyzeRAMUsage(ctx context.Context, projectDir string, opts Options, report *Report) {
	result, err := pio.Run(ctx, projectDir, opts.Environment, true)
	if err != nil || result == nil {
		slog.Debug("memory analysis skipped", "error", err)

		return
	}

	pct, ok := pio.RAMPercent(result.Output)
	if !ok {
		slog.Debug("memory analysis skipped", "reason", "no RAM usage pattern in output")

		return
	}

	report.Add(audit.ClassifyRAM(pct, opts.Limits))
}
