package sim

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/golangdaddy/screamracer/pkg/input"
	"github.com/golangdaddy/screamracer/pkg/road"
	"github.com/golangdaddy/screamracer/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietRand never passes the spawn roll
type quietRand struct{}

func (quietRand) Float64() float64 { return 0.99 }
func (quietRand) Intn(int) int     { return 0 }

func newQuietSession() *Session {
	s := NewSession(quietRand{}, input.NewTarget())
	s.Start()
	return s
}

func TestSession_SpeedFollowsLoudness(t *testing.T) {
	s := newQuietSession()

	cases := []struct {
		loudness float64
		speed    float64
	}{
		{0, 0},
		{20, 3},
		{50, 7.5},
		{100, 15},
		{-10, 0},
		{250, 15},
	}
	for _, c := range cases {
		s.Step(c.loudness)
		assert.InDelta(t, c.speed, s.Player.Speed, 1e-9, "loudness %v", c.loudness)
		assert.GreaterOrEqual(t, s.Player.Speed, 0.0)
		assert.LessOrEqual(t, s.Player.Speed, vehicle.MaxSpeed)
	}
}

func TestSession_FullVolumeFromRest(t *testing.T) {
	s := newQuietSession()

	for i := 0; i < 10; i++ {
		f := s.Step(100)
		assert.Equal(t, 3, f.Progress)
		assert.Zero(t, f.Cleared)
	}

	assert.Equal(t, 15.0, s.Player.Speed)
	assert.Equal(t, 30, s.Score)
	assert.Equal(t, 10, s.Frames)
	assert.True(t, s.Running)
}

func TestSession_EasesTowardTarget(t *testing.T) {
	s := newQuietSession()
	s.Target().Store(475)

	s.Step(0)
	assert.InDelta(t, 390, s.Player.X, 1e-9)
	assert.Equal(t, 475.0, s.Player.TargetX)

	for i := 0; i < 200; i++ {
		s.Step(0)
	}
	assert.InDelta(t, 475, s.Player.X, 1e-6)
	// Leaning decays once the car settles
	assert.InDelta(t, 0, s.Player.TurnAngle, 1e-6)
}

func TestSession_TurnAngleBounded(t *testing.T) {
	s := newQuietSession()

	s.Target().Store(road.MaxX)
	s.Step(0)
	assert.Equal(t, vehicle.MaxTurnAngle, s.Player.TurnAngle)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		s.Target().Store(road.MinX + rng.Float64()*(road.MaxX-road.MinX))
		s.Step(0)
		assert.GreaterOrEqual(t, s.Player.TurnAngle, -vehicle.MaxTurnAngle)
		assert.LessOrEqual(t, s.Player.TurnAngle, vehicle.MaxTurnAngle)
		assert.GreaterOrEqual(t, s.Player.X, road.MinX)
		assert.LessOrEqual(t, s.Player.X, road.MaxX)
	}
}

func TestSession_ScoreMonotonic(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(42)), input.NewTarget())
	s.Start()

	rng := rand.New(rand.NewSource(3))
	last := 0
	for i := 0; i < 5000; i++ {
		s.Target().Store(road.MinX + rng.Float64()*(road.MaxX-road.MinX))
		s.Step(rng.Float64() * 100)
		require.GreaterOrEqual(t, s.Score, last)
		last = s.Score
	}
}

func TestSession_CrashFrameStillScores(t *testing.T) {
	s := newQuietSession()
	s.Field.Spawn(road.CenterX, color.White)

	var crash Frame
	frames := 0
	for s.Running {
		crash = s.Step(100)
		frames++
		require.Less(t, frames, 100)
	}

	assert.True(t, crash.Hit)
	assert.Equal(t, road.CenterX, crash.Opponent.X)
	assert.Equal(t, 27, frames)
	assert.Equal(t, 3, crash.Progress)
	assert.Equal(t, 81, s.Score)

	// A stopped session ignores further steps
	f := s.Step(100)
	assert.Equal(t, Frame{}, f)
	assert.Equal(t, 81, s.Score)
	assert.Equal(t, 27, s.Frames)
}

func TestSession_SimultaneousClears(t *testing.T) {
	s := newQuietSession()
	s.Field.Spawn(road.Lanes[0], color.White)
	s.Field.Spawn(road.Lanes[2], color.White)

	clearFrames := 0
	for i := 1; i <= 300; i++ {
		f := s.Step(0)
		require.False(t, f.Hit)
		if f.Cleared > 0 {
			clearFrames++
			assert.Equal(t, 20, f.Cleared)
			assert.Equal(t, 234, i)
		}
	}

	assert.Equal(t, 1, clearFrames)
	assert.Equal(t, 20, s.Score)
	assert.Zero(t, s.Field.Len())
}

func TestSession_ResetAfterGameOver(t *testing.T) {
	s := newQuietSession()
	s.Target().Store(500)
	s.Field.Spawn(road.CenterX, color.White)
	for i := 0; i < 5; i++ {
		s.Step(80)
	}
	s.Field.Spawn(road.Lanes[2], color.White)
	s.Stop()

	s.Reset()

	assert.False(t, s.Running)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Frames)
	assert.Zero(t, s.Loudness)
	assert.Equal(t, vehicle.StartX, s.Player.X)
	assert.Equal(t, vehicle.StartY, s.Player.Y)
	assert.Zero(t, s.Player.Speed)
	assert.Zero(t, s.Player.TurnAngle)
	assert.Equal(t, road.CenterX, s.Target().Load())
	assert.Zero(t, s.Field.Len())
	assert.Equal(t, 0.0, s.Lines.All()[0].Y)
}

func TestSession_HUD(t *testing.T) {
	s := newQuietSession()
	s.Step(57.9)

	hud := s.HUD()
	assert.Equal(t, 86, hud.Speed)
	assert.Equal(t, 57, hud.Volume)
	assert.Equal(t, 1, hud.Score)
}
