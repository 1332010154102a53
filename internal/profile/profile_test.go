package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epicweather/otagate/internal/profile"
)

func TestESP8266(t *testing.T) {
	t.Parallel()

	limits := profile.ESP8266()

	require.Equal(t, int64(1048576), limits.FlashAppMax)
	require.InDelta(t, 0.85, limits.FlashWarn, 0.0001)
	require.InDelta(t, 0.95, limits.FlashCritical, 0.0001)
	require.Equal(t, int64(81920), limits.RAMTotal)
	require.InDelta(t, 0.70, limits.RAMWarn, 0.0001)
	require.InDelta(t, 0.85, limits.RAMCritical, 0.0001)
	require.Equal(t, int64(20480), limits.HeapMinFree)
	require.Equal(t, int64(15360), limits.HeapCriticalFree)
	require.Equal(t, 5, limits.WatchdogMinCalls)
	require.Equal(t, 5000, limits.LongDelayMs)
	require.Equal(t, 2048, limits.StackArrayMax)
	require.Equal(t, 2, limits.AllocImbalanceSlop)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "esp32.yaml")
	content := `
flash_app_max: 1966080
ram_total: 327680
watchdog_min_calls: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	limits, err := profile.Load(path)
	require.NoError(t, err)

	require.Equal(t, int64(1966080), limits.FlashAppMax)
	require.Equal(t, int64(327680), limits.RAMTotal)
	require.Equal(t, 3, limits.WatchdogMinCalls)

	// Unset fields fall back to the reference profile.
	defaults := profile.ESP8266()
	require.InDelta(t, defaults.FlashWarn, limits.FlashWarn, 0.0001)
	require.InDelta(t, defaults.RAMCritical, limits.RAMCritical, 0.0001)
	require.Equal(t, defaults.HeapMinFree, limits.HeapMinFree)
	require.Equal(t, defaults.LongDelayMs, limits.LongDelayMs)
	require.Equal(t, defaults.StackArrayMax, limits.StackArrayMax)
	require.Equal(t, defaults.AllocImbalanceSlop, limits.AllocImbalanceSlop)
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

	limits, err := profile.Load(path)
	require.NoError(t, err)
	require.Equal(t, profile.ESP8266(), limits)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := profile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flash_app_max: [not a number"), 0o600))

	_, err := profile.Load(path)
	require.Error(t, err)
}
