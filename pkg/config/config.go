package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golangdaddy/screamracer/pkg/audio"
	"github.com/spf13/viper"
)

// Device loss policies
const (
	OnDeviceLostGameOver = "gameover"
	OnDeviceLostPause    = "pause"
)

// FileName is the config file base name, any viper-supported extension
const FileName = "screamracer"

// EnvPrefix prefixes environment overrides, e.g. SCREAMRACER_AUDIO_BACKEND
const EnvPrefix = "SCREAMRACER"

// WindowConfig holds window settings
type WindowConfig struct {
	Title string  `json:"title" mapstructure:"title"`
	Scale float64 `json:"scale" mapstructure:"scale"`
}

// AudioConfig holds capture settings
type AudioConfig struct {
	Backend        string        `json:"backend" mapstructure:"backend"`
	Device         string        `json:"device" mapstructure:"device"`
	SampleRate     int           `json:"sampleRate" mapstructure:"sampleRate"`
	AcquireTimeout time.Duration `json:"acquireTimeout" mapstructure:"acquireTimeout"`
	OnDeviceLost   string        `json:"onDeviceLost" mapstructure:"onDeviceLost"`
}

// SFXConfig holds cue playback settings
type SFXConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// Config is the full application configuration
type Config struct {
	LogLevel string       `json:"logLevel" mapstructure:"logLevel"`
	Window   WindowConfig `json:"window" mapstructure:"window"`
	Audio    AudioConfig  `json:"audio" mapstructure:"audio"`
	SFX      SFXConfig    `json:"sfx" mapstructure:"sfx"`
	Summary  bool         `json:"summary" mapstructure:"summary"`
}

// Capture returns the sampler settings
func (c *Config) Capture() audio.Config {
	return audio.Config{
		Backend:        c.Audio.Backend,
		Device:         c.Audio.Device,
		SampleRate:     c.Audio.SampleRate,
		AcquireTimeout: c.Audio.AcquireTimeout,
	}
}

// PauseOnDeviceLost reports whether a lost microphone pauses instead of ending the game
func (c *Config) PauseOnDeviceLost() bool {
	return c.Audio.OnDeviceLost == OnDeviceLostPause
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.title", "Scream Racer")
	viper.SetDefault("window.scale", 1.0)

	viper.SetDefault("audio.backend", audio.BackendAuto)
	viper.SetDefault("audio.device", "")
	viper.SetDefault("audio.sampleRate", 44100)
	viper.SetDefault("audio.acquireTimeout", "5s")
	viper.SetDefault("audio.onDeviceLost", OnDeviceLostGameOver)

	viper.SetDefault("sfx.enabled", true)
	viper.SetDefault("sfx.volume", 0.5)

	viper.SetDefault("summary", true)
}

// Load reads configuration from the first config file found in configDirs,
// applies environment overrides and fills in defaults. A missing file is not
// an error.
func Load(configDirs ...string) (*Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	for _, dir := range configDirs {
		viper.AddConfigPath(dir)
	}
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values viper cannot check for us
func (c *Config) Validate() error {
	switch c.Audio.OnDeviceLost {
	case OnDeviceLostGameOver, OnDeviceLostPause:
	default:
		return fmt.Errorf("audio.onDeviceLost must be %q or %q, got %q",
			OnDeviceLostGameOver, OnDeviceLostPause, c.Audio.OnDeviceLost)
	}
	switch c.Audio.Backend {
	case audio.BackendAuto, audio.BackendPulse, audio.BackendPipeWire, audio.BackendALSA, audio.BackendSoX:
	default:
		return fmt.Errorf("audio.backend %q is not supported", c.Audio.Backend)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sampleRate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.SFX.Volume < 0 || c.SFX.Volume > 1 {
		return fmt.Errorf("sfx.volume must be within 0..1, got %v", c.SFX.Volume)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale)
	}
	return nil
}
