package sim

import (
	"math"

	"github.com/golangdaddy/screamracer/pkg/audio"
	"github.com/golangdaddy/screamracer/pkg/input"
	"github.com/golangdaddy/screamracer/pkg/road"
	"github.com/golangdaddy/screamracer/pkg/traffic"
	"github.com/golangdaddy/screamracer/pkg/vehicle"
)

// Steering response
const (
	Easing        = 0.15 // Share of the remaining gap to the target closed per frame
	TurnGain      = 0.2  // Desired lean per unit of lateral movement
	TurnEasing    = 0.3
	ProgressShare = 5.0 // Speed units per passive point
)

// Frame reports what happened during one Step
type Frame struct {
	Spawned  bool
	Cleared  int // Points earned from opponents leaving the road
	Progress int // Points earned from forward speed
	Hit      bool
	Opponent vehicle.Vehicle // The opponent hit, when Hit is set
}

// Session is the state of one run from start to crash
type Session struct {
	Running  bool
	Score    int
	Loudness float64
	Frames   int

	Player vehicle.Player
	Field  *traffic.Field
	Lines  *road.Lines

	target *input.Target
}

// NewSession creates a stopped session reading its steering target from target.
// A nil rng uses a time-seeded source.
func NewSession(rng traffic.Rand, target *input.Target) *Session {
	if target == nil {
		target = input.NewTarget()
	}
	s := &Session{
		Field:  traffic.NewField(rng),
		Lines:  road.NewLines(),
		target: target,
	}
	s.Reset()
	return s
}

// Reset puts every piece of state back to its initial value and stops the session
func (s *Session) Reset() {
	s.Running = false
	s.Score = 0
	s.Loudness = 0
	s.Frames = 0
	s.Player.Reset()
	s.Field.Clear()
	s.Lines.Reset()
	s.target.Reset()
}

// Start marks the session as running
func (s *Session) Start() {
	s.Running = true
}

// Stop halts the session without touching the rest of its state
func (s *Session) Stop() {
	s.Running = false
}

// Target returns the steering target shared with the input handler
func (s *Session) Target() *input.Target {
	return s.target
}

// Step advances the session by one frame using the given loudness reading.
// It does nothing once the session has stopped. A hit stops the session after
// the whole frame, scoring included, has been applied.
func (s *Session) Step(loudness float64) Frame {
	var f Frame
	if !s.Running {
		return f
	}
	s.Frames++

	// speed
	s.Loudness = clampLoudness(loudness)
	p := &s.Player
	p.Speed = s.Loudness / audio.MaxLoudness * vehicle.MaxSpeed

	// lateral position
	p.TargetX = s.target.Load()
	prevX := p.X
	p.X = road.Clamp(p.X + (p.TargetX-p.X)*Easing)

	// lean
	desired := (p.X - prevX) * TurnGain
	p.TurnAngle += (desired - p.TurnAngle) * TurnEasing
	p.TurnAngle = math.Max(-vehicle.MaxTurnAngle, math.Min(vehicle.MaxTurnAngle, p.TurnAngle))

	// scenery and traffic
	s.Lines.Scroll(p.Speed)
	f.Spawned = s.Field.MaybeSpawn()
	f.Cleared = s.Field.Advance(p.Speed)
	s.Score += f.Cleared

	f.Opponent, f.Hit = traffic.Check(p.Vehicle, s.Field.Opponents())

	f.Progress = int(math.Floor(p.Speed / ProgressShare))
	s.Score += f.Progress

	if f.Hit {
		s.Running = false
	}
	return f
}

// HUD is the per-frame readout shown to the player
type HUD struct {
	Speed  int
	Score  int
	Volume int
}

// HUD projects the session onto the values the display shows
func (s *Session) HUD() HUD {
	return HUD{
		Speed:  s.Player.DisplaySpeed(),
		Score:  s.Score,
		Volume: int(math.Floor(s.Loudness)),
	}
}

func clampLoudness(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > audio.MaxLoudness {
		return audio.MaxLoudness
	}
	return v
}
