package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

func TestCheckWatchdog(t *testing.T) {
	t.Parallel()

	limits := profile.ESP8266()

	t.Run("enough combined calls", func(t *testing.T) {
		t.Parallel()

		code := strings.Repeat("yield();\n", 3) + strings.Repeat("delay(10);\n", 2)

		result := checkWatchdog(Artifacts{MainSource: code}, limits)
		require.True(t, result.Passed)
		require.Equal(t, types.SeverityInfo, result.Severity)
		require.Contains(t, result.Details, "yield() calls: 3")
		require.Contains(t, result.Details, "delay() calls: 2")
	})

	t.Run("too few calls", func(t *testing.T) {
		t.Parallel()

		code := "yield();\ndelay(10);\n"

		result := checkWatchdog(Artifacts{MainSource: code}, limits)
		require.False(t, result.Passed)
		require.Equal(t, types.SeverityWarning, result.Severity)
		require.Equal(t, "Insufficient yield/delay calls - risk of WDT reset", result.Message)
	})

	t.Run("explicit enable is reported but not sufficient", func(t *testing.T) {
		t.Parallel()

		code := "ESP.wdtEnable(WDTO_8S);\n"

		result := checkWatchdog(Artifacts{MainSource: code}, limits)
		require.False(t, result.Passed)
		require.Contains(t, result.Details, "WDT enable found")
	})

	t.Run("boundary count passes", func(t *testing.T) {
		t.Parallel()

		code := strings.Repeat("delay(1);\n", limits.WatchdogMinCalls)

		result := checkWatchdog(Artifacts{MainSource: code}, limits)
		require.True(t, result.Passed)
	})

	t.Run("custom threshold", func(t *testing.T) {
		t.Parallel()

		relaxed := limits
		relaxed.WatchdogMinCalls = 1

		result := checkWatchdog(Artifacts{MainSource: "yield();\n"}, relaxed)
		require.True(t, result.Passed)
	})
}
