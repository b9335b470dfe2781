package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Scream Racer", cfg.Window.Title)
	assert.Equal(t, 1.0, cfg.Window.Scale)
	assert.Equal(t, "auto", cfg.Audio.Backend)
	assert.Equal(t, "", cfg.Audio.Device)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Equal(t, 5*time.Second, cfg.Audio.AcquireTimeout)
	assert.Equal(t, OnDeviceLostGameOver, cfg.Audio.OnDeviceLost)
	assert.False(t, cfg.PauseOnDeviceLost())
	assert.True(t, cfg.SFX.Enabled)
	assert.Equal(t, 0.5, cfg.SFX.Volume)
	assert.True(t, cfg.Summary)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"audio": { "backend": "arecord", "device": "hw:1", "acquireTimeout": "2s", "onDeviceLost": "pause" },
		"sfx": { "volume": 0.2 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "screamracer.json"), []byte(cfg), 0644))

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "arecord", c.Audio.Backend)
	assert.Equal(t, "hw:1", c.Audio.Device)
	assert.Equal(t, 2*time.Second, c.Audio.AcquireTimeout)
	assert.True(t, c.PauseOnDeviceLost())
	assert.Equal(t, 0.2, c.SFX.Volume)
	// untouched keys keep their defaults
	assert.True(t, c.SFX.Enabled)
	assert.Equal(t, 44100, c.Audio.SampleRate)

	capture := c.Capture()
	assert.Equal(t, "arecord", capture.Backend)
	assert.Equal(t, "hw:1", capture.Device)
	assert.Equal(t, 44100, capture.SampleRate)
	assert.Equal(t, 2*time.Second, capture.AcquireTimeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("SCREAMRACER_AUDIO_BACKEND", "parec")
	t.Setenv("SCREAMRACER_SUMMARY", "false")

	c, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "parec", c.Audio.Backend)
	assert.False(t, c.Summary)
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "screamracer.json"), []byte(`{ not json`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsUnknownPolicy(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "screamracer.json"), []byte(`{"audio": {"onDeviceLost": "explode"}}`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio.onDeviceLost")
}

func TestValidate(t *testing.T) {
	valid := Config{
		Window: WindowConfig{Scale: 1},
		Audio:  AudioConfig{Backend: "auto", SampleRate: 44100, OnDeviceLost: OnDeviceLostGameOver},
		SFX:    SFXConfig{Volume: 0.5},
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Audio.Backend = "portaudio"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.SFX.Volume = 1.5
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Audio.SampleRate = 0
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Window.Scale = 0
	assert.Error(t, bad.Validate())
}
