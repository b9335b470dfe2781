package audio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/golangdaddy/screamracer/pkg/logging"
	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

// pumpChunk is how many frames the reader pulls per Stream call
const pumpChunk = 256

// Microphone samples loudness from a live capture process
type Microphone struct {
	cfg      Config
	launcher Launcher
	log      zerolog.Logger
	analyser *Analyser

	mu       sync.Mutex
	capture  *Capture
	done     chan struct{}
	started  bool
	active   atomic.Bool
	released atomic.Bool
	lost     atomic.Bool
	once     sync.Once
	stopOnce sync.Once
}

// NewMicrophone creates a sampler backed by the configured capture tool
func NewMicrophone(cfg Config, log zerolog.Logger) *Microphone {
	return NewMicrophoneWithLauncher(cfg, ExecLauncher{Config: cfg}, log)
}

// NewMicrophoneWithLauncher creates a sampler using the given launcher
func NewMicrophoneWithLauncher(cfg Config, launcher Launcher, log zerolog.Logger) *Microphone {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Microphone{
		cfg:      cfg,
		launcher: launcher,
		log:      logging.Component(log, "microphone"),
		analyser: NewAnalyser(),
	}
}

// Initialize starts capture and waits for the first samples.
// Failures wrap ErrMicrophoneRequired together with ErrPermissionDenied or
// ErrDeviceUnavailable.
func (m *Microphone) Initialize(ctx context.Context) error {
	m.mu.Lock()
	if m.released.Load() {
		m.mu.Unlock()
		return ErrReleased
	}
	if m.started {
		m.mu.Unlock()
		return ErrAlreadyInitialized
	}
	m.started = true
	m.mu.Unlock()

	if m.cfg.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.AcquireTimeout)
		defer cancel()
	}

	capture, err := m.launcher.Launch(ctx)
	if err != nil {
		kind := ErrDeviceUnavailable
		if isPermission(err) {
			kind = ErrPermissionDenied
		}
		m.log.Warn().Err(err).Msg("Could not start capture")
		return fmt.Errorf("%w: %w: %v", ErrMicrophoneRequired, kind, err)
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(m.cfg.SampleRate),
		NumChannels: 1,
		Precision:   2,
	}
	ready := make(chan struct{})
	stream := newPCMStreamer(capture.PCM, format)
	done := make(chan struct{})
	m.mu.Lock()
	if m.released.Load() {
		// Release ran while the launcher was starting and saw no capture
		m.mu.Unlock()
		m.stopCapture(capture)
		return ErrReleased
	}
	m.capture = capture
	m.done = done
	m.mu.Unlock()

	go m.pump(stream, ready, done)

	select {
	case <-ready:
		if m.released.Load() {
			m.stopCapture(capture)
			<-done
			return ErrReleased
		}
		m.active.Store(true)
		if m.released.Load() {
			m.active.Store(false)
			return ErrReleased
		}
		if m.lost.Load() {
			// The stream ended right after its first samples
			m.active.Store(false)
			m.stopCapture(capture)
			<-done
			m.log.Warn().Str("backend", capture.Name).Msg("Capture ended while acquiring")
			return fmt.Errorf("%w: %w", ErrMicrophoneRequired, ErrDeviceUnavailable)
		}
		m.log.Info().Str("backend", capture.Name).Int("rate", m.cfg.SampleRate).Msg("Microphone acquired")
		return nil
	case <-done:
		if m.released.Load() {
			return ErrReleased
		}
		stderr := capture.Stderr()
		m.stopCapture(capture)
		kind := classify(stderr)
		m.log.Warn().Str("backend", capture.Name).Str("stderr", stderr).Msg("Capture exited before delivering audio")
		return fmt.Errorf("%w: %w", ErrMicrophoneRequired, kind)
	case <-ctx.Done():
		m.stopCapture(capture)
		<-done
		m.log.Warn().Err(ctx.Err()).Str("backend", capture.Name).Msg("Timed out waiting for microphone")
		return fmt.Errorf("%w: %w: %v", ErrMicrophoneRequired, ErrDeviceUnavailable, ctx.Err())
	}
}

// pump moves decoded samples into the analyser until the pipe closes
func (m *Microphone) pump(s *pcmStreamer, ready, done chan struct{}) {
	defer close(done)

	frames := make([][2]float64, pumpChunk)
	mono := make([]float64, pumpChunk)
	signalled := false

	for {
		n, ok := s.Stream(frames)
		if n > 0 {
			for i := 0; i < n; i++ {
				mono[i] = frames[i][0]
			}
			m.analyser.Write(mono[:n])
			if !signalled {
				signalled = true
				close(ready)
			}
		}
		if !ok {
			break
		}
	}

	if signalled && !m.released.Load() {
		m.lost.Store(true)
		m.active.Store(false)
		ev := m.log.Warn()
		if err := s.Err(); err != nil {
			ev = ev.Err(err)
		}
		ev.Msg("Microphone stream ended")
	}
}

// Sample returns the current loudness, or 0 outside the acquired window
func (m *Microphone) Sample() float64 {
	if !m.active.Load() {
		return 0
	}
	return m.analyser.Loudness()
}

// Err returns ErrDeviceLost once the capture stream ends unexpectedly
func (m *Microphone) Err() error {
	if m.lost.Load() {
		return ErrDeviceLost
	}
	return nil
}

// Release stops capture. Only the first call has an effect.
func (m *Microphone) Release() {
	m.once.Do(func() {
		m.released.Store(true)
		m.active.Store(false)

		m.mu.Lock()
		capture, done := m.capture, m.done
		m.mu.Unlock()

		if capture != nil {
			m.stopCapture(capture)
		}
		if done != nil {
			<-done
		}
		m.analyser.Reset()
		m.log.Info().Msg("Microphone released")
	})
}

// stopCapture stops the capture process at most once
func (m *Microphone) stopCapture(c *Capture) {
	m.stopOnce.Do(c.Stop)
}

// Active reports whether samples are flowing
func (m *Microphone) Active() bool {
	return m.active.Load()
}

func isPermission(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}
