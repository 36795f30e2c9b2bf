package mcpserver

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearCHATUTILEnv clears all CHATUTIL_* env vars to isolate tests from the ambient environment.
func clearCHATUTILEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CHATUTIL_MAX_INPUT_SIZE", "CHATUTIL_MAX_MATCHES",
		"CHATUTIL_MAX_LIMIT", "CHATUTIL_MAX_DELAY",
		"CHATUTIL_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

// withConfig replaces the active configuration for the duration of the test.
func withConfig(t *testing.T, mutate func(c *serverConfig)) {
	t.Helper()
	saved := cfg
	c := *saved
	mutate(&c)
	cfg = &c
	t.Cleanup(func() { cfg = saved })
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearCHATUTILEnv(t)

	c := loadConfig()

	assert.Equal(t, int64(1024*1024), c.MaxInputSize)
	assert.Equal(t, 100, c.MatchLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, 10*time.Second, c.MaxDelay)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearCHATUTILEnv(t)
	t.Setenv("CHATUTIL_MAX_INPUT_SIZE", "2048")
	t.Setenv("CHATUTIL_MAX_MATCHES", "5")
	t.Setenv("CHATUTIL_MAX_LIMIT", "50")
	t.Setenv("CHATUTIL_MAX_DELAY", "250ms")
	t.Setenv("CHATUTIL_LOG_LEVEL", "debug")

	c := loadConfig()

	assert.Equal(t, int64(2048), c.MaxInputSize)
	assert.Equal(t, 5, c.MatchLimit)
	assert.Equal(t, 50, c.MaxLimit)
	assert.Equal(t, 250*time.Millisecond, c.MaxDelay)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearCHATUTILEnv(t)
	t.Setenv("CHATUTIL_MAX_INPUT_SIZE", "huge")
	t.Setenv("CHATUTIL_MAX_MATCHES", "-1")
	t.Setenv("CHATUTIL_MAX_LIMIT", "0")
	t.Setenv("CHATUTIL_MAX_DELAY", "soon")
	t.Setenv("CHATUTIL_LOG_LEVEL", "loud")

	c := loadConfig()

	assert.Equal(t, int64(1024*1024), c.MaxInputSize)
	assert.Equal(t, 100, c.MatchLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, 10*time.Second, c.MaxDelay)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
}

func TestEnvLevel_CaseInsensitive(t *testing.T) {
	t.Setenv("CHATUTIL_LOG_LEVEL", "ERROR")
	assert.Equal(t, slog.LevelError, envLevel("CHATUTIL_LOG_LEVEL", slog.LevelWarn))
}
