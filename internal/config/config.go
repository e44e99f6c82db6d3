package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	TTS     TTSConfig     `mapstructure:"tts"`
	Sarvam  SarvamConfig  `mapstructure:"sarvam"`
	Relay   RelayConfig   `mapstructure:"relay"`
	Player  PlayerConfig  `mapstructure:"player"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type TTSConfig struct {
	Engine      string  `mapstructure:"engine"` // sarvam, google, espeak, mock or auto
	Speaker     string  `mapstructure:"speaker"`
	Pace        float64 `mapstructure:"pace"`
	Temperature float64 `mapstructure:"temperature"`
}

type SarvamConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	TTSURL       string        `mapstructure:"tts_url"`
	TranslateURL string        `mapstructure:"translate_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type RelayConfig struct {
	Pause     time.Duration `mapstructure:"pause"`
	Languages []string      `mapstructure:"languages"` // empty means all, in canonical order
}

type PlayerConfig struct {
	Mute bool `mapstructure:"mute"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"` // optional TOML file with extra relay phrases
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// SetDefaults registers defaults and config sources on the global viper instance.
func SetDefaults() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tts.engine", "sarvam")
	v.SetDefault("tts.speaker", "anushka")
	v.SetDefault("tts.pace", 1.0)
	v.SetDefault("tts.temperature", 0.6)
	v.SetDefault("sarvam.api_key", "")
	v.SetDefault("sarvam.tts_url", "https://api.sarvam.ai/text-to-speech")
	v.SetDefault("sarvam.translate_url", "https://api.sarvam.ai/translate")
	v.SetDefault("sarvam.timeout", 30*time.Second)
	v.SetDefault("relay.pause", 400*time.Millisecond)
	v.SetDefault("relay.languages", []string{})
	v.SetDefault("player.mute", false)
	v.SetDefault("catalog.path", "")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("voicerelay")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.voicerelay")
	v.AddConfigPath(".")

	// VOICERELAY_TTS_ENGINE, VOICERELAY_RELAY_PAUSE, ...
	v.SetEnvPrefix("VOICERELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("sarvam.api_key", "VOICERELAY_SARVAM_API_KEY", "SARVAM_API_KEY")
}

// Load reads the optional config file and returns the merged configuration.
func Load() (*Config, error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		logrus.Debug("No config file found, using defaults and environment")
	} else {
		logrus.WithField("path", v.ConfigFileUsed()).Debug("Loaded config file")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// SetupLogging applies the configured level to the standard logrus logger.
func SetupLogging(cfg LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.WithField("level", cfg.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
