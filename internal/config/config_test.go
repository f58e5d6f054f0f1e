package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"LOG_LEVEL", "LOG_SERIAL", "LOG_BAUD",
		"TRACKING_KP", "TRACKING_KD", "TRACKING_KI",
		"SIM_SPEEDUP", "SIM_SWITCH_PERIOD",
	} {
		t.Setenv(envPrefix+name, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Nil(t, cfg.TrackingKp)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SONARBOT_LOG_LEVEL", "DEBUG")
	t.Setenv("SONARBOT_LOG_SERIAL", "/dev/ttyACM0")
	t.Setenv("SONARBOT_LOG_BAUD", "9600")
	t.Setenv("SONARBOT_TRACKING_KP", "0.8")
	t.Setenv("SONARBOT_TRACKING_KI", "0")
	t.Setenv("SONARBOT_SIM_SPEEDUP", "4")
	t.Setenv("SONARBOT_SIM_SWITCH_PERIOD", "10s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/dev/ttyACM0", cfg.LogSerial)
	assert.Equal(t, 9600, cfg.LogBaud)
	require.NotNil(t, cfg.TrackingKp)
	assert.Equal(t, 0.8, *cfg.TrackingKp)
	assert.Nil(t, cfg.TrackingKd)
	require.NotNil(t, cfg.TrackingKi)
	assert.Zero(t, *cfg.TrackingKi)
	assert.Equal(t, 4.0, cfg.SimSpeedup)
	assert.Equal(t, 10*time.Second, cfg.SimSwitchPeriod)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"LOG_BAUD":          "fast",
		"TRACKING_KP":       "one",
		"TRACKING_KI":       "-0.5",
		"SIM_SPEEDUP":       "-1",
		"SIM_SWITCH_PERIOD": "0s",
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(envPrefix+name, value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even empty ones.
	os.Unsetenv(envPrefix + "TRACKING_KD")
	t.Cleanup(func() { os.Unsetenv(envPrefix + "TRACKING_KD") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SONARBOT_TRACKING_KD=0.25\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.TrackingKd)
	assert.Equal(t, 0.25, *cfg.TrackingKd)
}

func TestLoadFile_Missing(t *testing.T) {
	clearEnv(t)

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}
