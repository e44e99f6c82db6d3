package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SARVAM_API_KEY", "")

	v := viper.New()
	setDefaults(v)

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "sarvam", cfg.TTS.Engine)
	assert.Equal(t, "anushka", cfg.TTS.Speaker)
	assert.InDelta(t, 1.0, cfg.TTS.Pace, 0.0001)
	assert.InDelta(t, 0.6, cfg.TTS.Temperature, 0.0001)
	assert.Equal(t, "https://api.sarvam.ai/text-to-speech", cfg.Sarvam.TTSURL)
	assert.Equal(t, "https://api.sarvam.ai/translate", cfg.Sarvam.TranslateURL)
	assert.Equal(t, 30*time.Second, cfg.Sarvam.Timeout)
	assert.Equal(t, 400*time.Millisecond, cfg.Relay.Pause)
	assert.Empty(t, cfg.Relay.Languages)
	assert.False(t, cfg.Player.Mute)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SARVAM_API_KEY", "secret")
	t.Setenv("VOICERELAY_TTS_ENGINE", "mock")
	t.Setenv("VOICERELAY_RELAY_PAUSE", "250ms")

	v := viper.New()
	setDefaults(v)

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Sarvam.APIKey)
	assert.Equal(t, "mock", cfg.TTS.Engine)
	assert.Equal(t, 250*time.Millisecond, cfg.Relay.Pause)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	content := `
tts:
  speaker: kabir
relay:
  languages: [hi-IN, ta-IN]
player:
  mute: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "voicerelay.yaml"), []byte(content), 0o600))

	v := viper.New()
	setDefaults(v)

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "kabir", cfg.TTS.Speaker)
	assert.Equal(t, []string{"hi-IN", "ta-IN"}, cfg.Relay.Languages)
	assert.True(t, cfg.Player.Mute)
}

func TestSetupLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	SetupLogging(LoggingConfig{Level: "debug"})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	SetupLogging(LoggingConfig{Level: "loud"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
