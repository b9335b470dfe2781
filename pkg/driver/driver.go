package driver

import (
	"context"
	"errors"

	"github.com/golangdaddy/screamracer/pkg/audio"
	"github.com/golangdaddy/screamracer/pkg/logging"
	"github.com/golangdaddy/screamracer/pkg/models"
	"github.com/golangdaddy/screamracer/pkg/sim"
	"github.com/golangdaddy/screamracer/pkg/traffic"
	"github.com/rs/zerolog"
)

// Phase is where the driver is in a run's lifecycle
type Phase int

const (
	PhaseTitle     Phase = iota // Nothing running, waiting for start
	PhaseAcquiring              // Waiting for the microphone
	PhaseRunning                // Frames are being simulated
	PhasePaused                 // Microphone lost, waiting to resume or end
	PhaseGameOver               // Run ended, final score on show
	PhaseFailed                 // Microphone could not be acquired
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseAcquiring:
		return "acquiring"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// SamplerFactory creates a fresh sampler for each acquisition
type SamplerFactory func() audio.Sampler

// Hooks are called from Tick when something audible happens
type Hooks struct {
	OnClear func(points int)
	OnCrash func()
}

// Options configures a Driver
type Options struct {
	NewSampler        SamplerFactory
	Rand              traffic.Rand // nil uses a time-seeded source
	History           *models.History
	PauseOnDeviceLost bool
	Hooks             Hooks
	Log               zerolog.Logger
}

type acquireResult struct {
	generation int
	sampler    audio.Sampler
	err        error
}

// Driver owns a session and runs it one frame per Tick, acquiring the
// microphone before each run and releasing it exactly once afterwards.
// All methods except the acquisition goroutine run on the caller's goroutine.
type Driver struct {
	opts    Options
	log     zerolog.Logger
	session *sim.Session
	history *models.History

	phase    Phase
	sampler  audio.Sampler
	record   *models.SessionRecord
	lastErr  error
	resuming bool

	acquired      chan acquireResult
	generation    int
	cancelAcquire context.CancelFunc

	ctx  context.Context
	stop context.CancelFunc
}

// New creates a driver on the title phase
func New(opts Options) *Driver {
	if opts.History == nil {
		opts.History = models.NewHistory()
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Driver{
		opts:     opts,
		log:      logging.Component(opts.Log, "driver"),
		session:  sim.NewSession(opts.Rand, nil),
		history:  opts.History,
		phase:    PhaseTitle,
		acquired: make(chan acquireResult),
		ctx:      ctx,
		stop:     stop,
	}
}

// Phase returns the current phase
func (d *Driver) Phase() Phase {
	return d.phase
}

// Session returns the session being driven, for rendering and input
func (d *Driver) Session() *sim.Session {
	return d.session
}

// History returns the record of every run
func (d *Driver) History() *models.History {
	return d.history
}

// Err returns why the last acquisition failed or the last run was cut short
func (d *Driver) Err() error {
	return d.lastErr
}

// Running reports whether frames are being simulated
func (d *Driver) Running() bool {
	return d.phase == PhaseRunning && d.session.Running
}

// Start resets the session and begins acquiring the microphone for a new run.
// It is ignored while a run is acquiring, running or paused.
func (d *Driver) Start() {
	switch d.phase {
	case PhaseTitle, PhaseGameOver, PhaseFailed:
	default:
		return
	}
	d.session.Reset()
	d.lastErr = nil
	d.resuming = false
	d.acquire()
}

// Restart is Start from the game over panel
func (d *Driver) Restart() {
	if d.phase != PhaseGameOver {
		return
	}
	d.Start()
}

// Resume re-acquires the microphone after it was lost, keeping the session
func (d *Driver) Resume() {
	if d.phase != PhasePaused {
		return
	}
	d.resuming = true
	d.acquire()
}

// Cancel abandons an acquisition in progress
func (d *Driver) Cancel() {
	if d.phase != PhaseAcquiring {
		return
	}
	d.abortAcquire()
	if d.resuming {
		d.resuming = false
		d.finish(models.EndDeviceLost)
		return
	}
	d.setPhase(PhaseTitle)
}

// Dismiss acknowledges an acquisition failure
func (d *Driver) Dismiss() {
	if d.phase != PhaseFailed {
		return
	}
	d.setPhase(PhaseTitle)
}

// End stops a running or paused run
func (d *Driver) End(reason string) {
	switch d.phase {
	case PhaseRunning, PhasePaused:
		d.finish(reason)
	}
}

// Tick collects a finished acquisition and advances a running session by one frame
func (d *Driver) Tick() sim.Frame {
	// The first frame of a run is simulated on the tick after acquisition
	select {
	case res := <-d.acquired:
		d.onAcquired(res)
		return sim.Frame{}
	default:
	}

	if d.phase != PhaseRunning {
		return sim.Frame{}
	}

	if err := d.sampler.Err(); err != nil {
		d.onDeviceLost(err)
		return sim.Frame{}
	}

	f := d.session.Step(d.sampler.Sample())
	if d.record != nil {
		d.record.Cleared += f.Cleared / traffic.ClearBonus
		if speed := d.session.Player.DisplaySpeed(); speed > d.record.TopSpeed {
			d.record.TopSpeed = speed
		}
	}
	if f.Cleared > 0 && d.opts.Hooks.OnClear != nil {
		d.opts.Hooks.OnClear(f.Cleared)
	}
	if f.Hit {
		if d.opts.Hooks.OnCrash != nil {
			d.opts.Hooks.OnCrash()
		}
		d.finish(models.EndCrash)
	}
	return f
}

// Close releases everything. An open run is recorded as quit.
func (d *Driver) Close() {
	d.abortAcquire()
	if d.record != nil {
		d.finish(models.EndQuit)
	}
	d.releaseSampler()
	d.stop()
}

// acquire starts a sampler on its own goroutine; Tick picks up the result
func (d *Driver) acquire() {
	d.abortAcquire()
	d.generation++
	gen := d.generation
	sampler := d.opts.NewSampler()

	ctx, cancel := context.WithCancel(d.ctx)
	d.cancelAcquire = cancel
	d.setPhase(PhaseAcquiring)

	go func() {
		err := sampler.Initialize(ctx)
		select {
		case d.acquired <- acquireResult{generation: gen, sampler: sampler, err: err}:
		case <-d.ctx.Done():
			sampler.Release()
		}
	}()
}

// abortAcquire invalidates any outstanding acquisition
func (d *Driver) abortAcquire() {
	if d.cancelAcquire != nil {
		d.cancelAcquire()
		d.cancelAcquire = nil
	}
	d.generation++
}

func (d *Driver) onAcquired(res acquireResult) {
	if res.generation != d.generation || d.phase != PhaseAcquiring {
		// Nobody is waiting for this one any more
		res.sampler.Release()
		return
	}
	d.cancelAcquire()
	d.cancelAcquire = nil

	if res.err != nil {
		res.sampler.Release()
		d.lastErr = res.err
		d.log.Warn().Err(res.err).Bool("permission", errors.Is(res.err, audio.ErrPermissionDenied)).Msg("Microphone access required")
		if d.resuming {
			d.resuming = false
			d.finish(models.EndDeviceLost)
			return
		}
		d.setPhase(PhaseFailed)
		return
	}

	d.sampler = res.sampler
	if !d.resuming {
		d.record = d.history.Begin()
		d.log.Info().Str("session", d.record.ID.String()).Msg("Run started")
	} else {
		d.log.Info().Msg("Run resumed")
	}
	d.resuming = false
	d.session.Start()
	d.setPhase(PhaseRunning)
}

func (d *Driver) onDeviceLost(err error) {
	d.lastErr = err
	d.log.Warn().Err(err).Bool("pause", d.opts.PauseOnDeviceLost).Msg("Microphone lost")
	if !d.opts.PauseOnDeviceLost {
		d.finish(models.EndDeviceLost)
		return
	}
	d.session.Stop()
	d.releaseSampler()
	d.setPhase(PhasePaused)
}

// finish ends the run, releases the microphone and records the result
func (d *Driver) finish(reason string) {
	d.session.Stop()
	d.releaseSampler()
	if d.record != nil {
		d.history.End(d.record, d.session.Frames, d.session.Score, reason)
		d.log.Info().
			Str("session", d.record.ID.String()).
			Int("score", d.session.Score).
			Int("frames", d.session.Frames).
			Str("reason", reason).
			Msg("Run ended")
		d.record = nil
	}
	d.setPhase(PhaseGameOver)
}

func (d *Driver) releaseSampler() {
	if d.sampler == nil {
		return
	}
	d.sampler.Release()
	d.sampler = nil
}

func (d *Driver) setPhase(p Phase) {
	if p == d.phase {
		return
	}
	d.log.Debug().Stringer("from", d.phase).Stringer("to", p).Msg("Phase change")
	d.phase = p
}

// Reason returns the end reason of the most recent finished run
func (d *Driver) Reason() string {
	records := d.history.Records()
	if len(records) == 0 {
		return ""
	}
	return records[len(records)-1].Reason
}
