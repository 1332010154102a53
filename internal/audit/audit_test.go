package audit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epicweather/otagate/internal/profile"
)

func TestPhaseString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pre-build", PhasePreBuild.String())
	require.Equal(t, "static", PhaseStatic.String())
	require.Equal(t, "unknown", Phase(42).String())
}

func TestRulesTable(t *testing.T) {
	t.Parallel()

	rules := Rules()
	require.Len(t, rules, 9)

	seen := map[string]bool{}

	for _, rule := range rules {
		require.NotEmpty(t, rule.ID)
		require.NotEmpty(t, rule.Name)
		require.NotNil(t, rule.Detect)
		require.False(t, seen[rule.ID], "duplicate rule id %q", rule.ID)
		seen[rule.ID] = true
	}

	// Pre-build rules come before static ones.
	lastPreBuild := -1
	firstStatic := len(rules)

	for index, rule := range rules {
		switch rule.Phase {
		case PhasePreBuild:
			lastPreBuild = index
		case PhaseStatic:
			if index < firstStatic {
				firstStatic = index
			}
		}
	}

	require.Less(t, lastPreBuild, firstStatic)
}

func TestRunSkipsRulesWithMissingArtifacts(t *testing.T) {
	t.Parallel()

	// Only the source-files rule has no artifact requirements.
	results := Run(PhasePreBuild, Artifacts{}, profile.ESP8266())

	require.Len(t, results, 1)
	require.Equal(t, "Source Files", results[0].Name)
	require.False(t, results[0].Passed)
}

func TestRunFullPhase(t *testing.T) {
	t.Parallel()

	art := Artifacts{
		MainSource:   "void setup() {}",
		ConfigHeader: "#define FEATURE_OTA_UPDATE 1",
		ProjectFile:  "[env:esp8266]",
	}

	preBuild := Run(PhasePreBuild, art, profile.ESP8266())
	require.Len(t, preBuild, 5)

	static := Run(PhaseStatic, art, profile.ESP8266())
	require.Len(t, static, 4)
}

func TestRunStaticPhaseWithOnlyAdminHTML(t *testing.T) {
	t.Parallel()

	// Rules needing the main source are skipped; the string-safety rule
	// still inspects the HTML header.
	results := Run(PhaseStatic, Artifacts{AdminHTML: "<html>"}, profile.ESP8266())

	require.Len(t, results, 1)
	require.Equal(t, "PROGMEM Usage", results[0].Name)
	require.False(t, results[0].Passed)
}

func TestRunFailingRuleDoesNotStopSiblings(t *testing.T) {
	t.Parallel()

	// Empty main source fails watchdog and OTA handler, yet every pre-build
	// rule still reports.
	art := Artifacts{
		MainSource:   "",
		ConfigHeader: "",
		ProjectFile:  "[env:esp8266]",
	}

	results := Run(PhasePreBuild, art, profile.ESP8266())
	require.Len(t, results, 5)

	failed := 0

	for _, result := range results {
		if !result.Passed {
			failed++
		}
	}

	require.GreaterOrEqual(t, failed, 2)
}

func TestCapDetails(t *testing.T) {
	t.Parallel()

	short := []string{"a", "b"}
	require.Equal(t, short, capDetails(short))

	long := []string{"1", "2", "3", "4", "5", "6", "7"}
	require.Len(t, capDetails(long), maxDetails)
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, capDetails(long))
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	text := "first\nsecond\nthird\n"

	require.Equal(t, 1, lineAt(text, 0))
	require.Equal(t, 2, lineAt(text, 6))
	require.Equal(t, 3, lineAt(text, 13))
}
