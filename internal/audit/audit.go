// Package audit implements the heuristic source checks of the release gate.
//
// Every check is a pure function of artifact text plus the device profile:
// no filesystem access, no shared state, no ordering dependency between
// checks. The checks trade soundness for zero build-system dependency and
// sub-second execution; they are expected to over-flag rather than hide
// risk.
package audit

import (
	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// Well-known project artifacts.
const (
	MainSource   = "src/main.cpp"
	ConfigHeader = "src/config.h"
	ProjectFile  = "platformio.ini"
	AdminHTML    = "src/admin_html.h"
)

// RequiredArtifacts lists the files a flashable project must contain.
func RequiredArtifacts() []string {
	return []string{MainSource, ConfigHeader, ProjectFile}
}

// Artifacts maps project-relative paths to their text content. Absence of a
// key means the file does not exist in the project.
type Artifacts map[string]string

// Phase says when a rule runs in the pipeline.
type Phase int

const (
	// PhasePreBuild rules run unconditionally, before the firmware is built.
	PhasePreBuild Phase = iota + 1
	// PhaseStatic rules run after a successful build, mirroring the
	// original run order even though their inputs are purely textual.
	PhaseStatic
)

func (p Phase) String() string {
	switch p {
	case PhasePreBuild:
		return "pre-build"
	case PhaseStatic:
		return "static"
	}

	return "unknown"
}

// Rule couples one detector with its report identity.
type Rule struct {
	ID       string
	Name     string
	Phase    Phase
	Severity types.Severity // severity reported when the rule fails
	Needs    []string       // artifacts that must be present, else the rule is skipped
	Detect   func(art Artifacts, limits profile.Limits) types.CheckResult
}

// Rules returns the full check table in execution order.
func Rules() []Rule {
	return []Rule{
		{
			ID:       "source-files",
			Name:     "Source Files",
			Phase:    PhasePreBuild,
			Severity: types.SeverityCritical,
			Detect:   checkSourceFiles,
		},
		{
			ID:       "ota-feature",
			Name:     "OTA Update Feature",
			Phase:    PhasePreBuild,
			Severity: types.SeverityCritical,
			Needs:    []string{ConfigHeader},
			Detect:   checkOTAFeature,
		},
		{
			ID:       "watchdog",
			Name:     "Watchdog Timer",
			Phase:    PhasePreBuild,
			Severity: types.SeverityWarning,
			Needs:    []string{MainSource},
			Detect:   checkWatchdog,
		},
		{
			ID:       "ota-handler",
			Name:     "OTA Handler",
			Phase:    PhasePreBuild,
			Severity: types.SeverityCritical,
			Needs:    []string{MainSource},
			Detect:   checkOTAHandler,
		},
		{
			ID:       "safe-mode",
			Name:     "Safe Mode/Recovery",
			Phase:    PhasePreBuild,
			Severity: types.SeverityWarning,
			Needs:    []string{MainSource},
			Detect:   checkSafeMode,
		},
		{
			// No Needs: the main-source and admin-HTML branches each guard
			// on their own artifact.
			ID:       "progmem",
			Name:     "PROGMEM Usage",
			Phase:    PhaseStatic,
			Severity: types.SeverityWarning,
			Detect:   checkStringSafety,
		},
		{
			ID:       "infinite-loops",
			Name:     "Infinite Loop Check",
			Phase:    PhaseStatic,
			Severity: types.SeverityWarning,
			Needs:    []string{MainSource},
			Detect:   checkInfiniteLoops,
		},
		{
			ID:       "blocking-code",
			Name:     "Blocking Code",
			Phase:    PhaseStatic,
			Severity: types.SeverityWarning,
			Needs:    []string{MainSource},
			Detect:   checkBlockingCode,
		},
		{
			ID:       "allocations",
			Name:     "Memory Allocations",
			Phase:    PhaseStatic,
			Severity: types.SeverityWarning,
			Needs:    []string{MainSource},
			Detect:   checkAllocations,
		},
	}
}

// Run executes every rule of the given phase against the artifacts. Rules
// whose required artifacts are missing append nothing. A failing rule never
// stops its siblings.
func Run(phase Phase, art Artifacts, limits profile.Limits) []types.CheckResult {
	var results []types.CheckResult

	for _, rule := range Rules() {
		if rule.Phase != phase {
			continue
		}

		if !hasAll(art, rule.Needs) {
			continue
		}

		results = append(results, rule.Detect(art, limits))
	}

	return results
}

func hasAll(art Artifacts, needs []string) bool {
	for _, need := range needs {
		if _, ok := art[need]; !ok {
			return false
		}
	}

	return true
}

// maxDetails caps the detail lines carried by one result. The first few
// findings are enough to locate the problem.
const maxDetails = 5

func capDetails(details []string) []string {
	if len(details) > maxDetails {
		return details[:maxDetails]
	}

	return details
}

// lineAt returns the approximate 1-based line number of a byte offset.
func lineAt(text string, offset int) int {
	line := 1

	for _, r := range text[:offset] {
		if r == '\n' {
			line++
		}
	}

	return line
}
