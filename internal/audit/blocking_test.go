package audit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

func TestCheckBlockingCode(t *testing.T) {
	t.Parallel()

	limits := profile.ESP8266()

	t.Run("long delay flagged", func(t *testing.T) {
		t.Parallel()

		code := "void loop() {\n  delay(10000);\n}\n"

		result := checkBlockingCode(Artifacts{MainSource: code}, limits)
		require.False(t, result.Passed)
		require.Equal(t, types.SeverityWarning, result.Severity)
		require.Equal(t, "1 blocking issues", result.Message)
		require.Equal(t, []string{"Line ~2: delay(10000ms) - very long blocking delay"}, result.Details)
	})

	t.Run("threshold itself is tolerated", func(t *testing.T) {
		t.Parallel()

		result := checkBlockingCode(Artifacts{MainSource: "delay(5000);"}, limits)
		require.True(t, result.Passed)
	})

	t.Run("short delays pass", func(t *testing.T) {
		t.Parallel()

		result := checkBlockingCode(Artifacts{MainSource: "delay(100);\ndelay(250);"}, limits)
		require.True(t, result.Passed)
		require.Equal(t, "No problematic blocking code", result.Message)
	})

	t.Run("variable delay is not matched", func(t *testing.T) {
		t.Parallel()

		result := checkBlockingCode(Artifacts{MainSource: "delay(interval);"}, limits)
		require.True(t, result.Passed)
	})

	t.Run("http get without timeout", func(t *testing.T) {
		t.Parallel()

		code := "int code = http.GET();\n"

		result := checkBlockingCode(Artifacts{MainSource: code}, limits)
		require.False(t, result.Passed)
		require.Equal(t, []string{"HTTP requests may lack timeout - could block indefinitely"}, result.Details)
	})

	t.Run("http get with timeout", func(t *testing.T) {
		t.Parallel()

		code := "http.setTimeout(5000);\nint code = http.GET();\n"

		result := checkBlockingCode(Artifacts{MainSource: code}, limits)
		require.True(t, result.Passed)
	})

	t.Run("connect timeout also counts", func(t *testing.T) {
		t.Parallel()

		code := "http.setConnectTimeout(3000);\nint code = http.GET();\n"

		result := checkBlockingCode(Artifacts{MainSource: code}, limits)
		require.True(t, result.Passed)
	})

	t.Run("multiple issues accumulate", func(t *testing.T) {
		t.Parallel()

		code := "delay(6000);\ndelay(7000);\nint code = http.GET();\n"

		result := checkBlockingCode(Artifacts{MainSource: code}, limits)
		require.False(t, result.Passed)
		require.Equal(t, "3 blocking issues", result.Message)
	})
}
