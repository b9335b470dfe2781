package audio

import (
	"context"
	"errors"
	"time"
)

// Analysis parameters
const (
	FFTSize     = 1024
	Bins        = FFTSize / 2
	Smoothing   = 0.8
	MinDecibels = -100.0
	MaxDecibels = -30.0
	MaxLoudness = 100.0
)

// Sampler is a pull-based loudness source polled once per frame
type Sampler interface {
	// Initialize acquires the input device. It blocks until the device
	// delivers data, ctx is done, or acquisition fails.
	Initialize(ctx context.Context) error
	// Sample returns the current loudness in [0, 100]. It returns 0 before
	// Initialize succeeds and after Release.
	Sample() float64
	// Err reports a failure that happened after Initialize succeeded
	Err() error
	// Release frees the device. Safe to call more than once.
	Release()
}

// Sentinel errors
var (
	ErrMicrophoneRequired = errors.New("microphone access required")
	ErrPermissionDenied   = errors.New("microphone permission denied")
	ErrDeviceUnavailable  = errors.New("no microphone available")
	ErrDeviceLost         = errors.New("microphone stream ended")
	ErrNoCaptureBackend   = errors.New("no compatible capture backend found")
	ErrAlreadyInitialized = errors.New("sampler already initialized")
	ErrReleased           = errors.New("sampler released")
)

// Config selects and tunes the capture backend
type Config struct {
	Backend        string        `mapstructure:"backend"`
	Device         string        `mapstructure:"device"`
	SampleRate     int           `mapstructure:"sampleRate"`
	AcquireTimeout time.Duration `mapstructure:"acquireTimeout"`
}

// DefaultConfig returns auto-detection at 44.1kHz
func DefaultConfig() Config {
	return Config{
		Backend:        BackendAuto,
		SampleRate:     44100,
		AcquireTimeout: 5 * time.Second,
	}
}
