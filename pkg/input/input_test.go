package input

import (
	"sync"
	"testing"

	"github.com/golangdaddy/screamracer/pkg/road"
	"github.com/stretchr/testify/assert"
)

func running(v bool) func() bool {
	return func() bool { return v }
}

func TestTarget_StartsAtCentre(t *testing.T) {
	assert.Equal(t, road.CenterX, NewTarget().Load())
}

func TestTarget_StoreClamps(t *testing.T) {
	tg := NewTarget()
	tg.Store(9000)
	assert.Equal(t, road.MaxX, tg.Load())
	tg.Store(-9000)
	assert.Equal(t, road.MinX, tg.Load())
}

func TestTarget_ConcurrentNudge(t *testing.T) {
	tg := NewTarget()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tg.Nudge(1)
			tg.Nudge(-1)
		}()
	}
	wg.Wait()
	assert.Equal(t, road.CenterX, tg.Load())
}

func TestSmoother_DragMoveScalesAndClamps(t *testing.T) {
	tg := NewTarget()
	s := NewSmoother(tg, running(true))

	s.DragStart(100)
	assert.Equal(t, Dragging, s.State())

	s.DragMove(120)
	assert.Equal(t, 405.0, tg.Load())

	// +200 from 375 would be 675, clamped to the right bound
	tg.Store(375)
	s.DragMove(320)
	assert.Equal(t, 540.0, tg.Load())

	s.DragMove(-1000)
	assert.Equal(t, 260.0, tg.Load())
}

func TestSmoother_ClampAlwaysHolds(t *testing.T) {
	tg := NewTarget()
	s := NewSmoother(tg, running(true))
	s.DragStart(0)

	moves := []float64{50, -300, 1e6, -1e6, 3, 7, 800, -2, 0}
	for _, x := range moves {
		s.DragMove(x)
		assert.GreaterOrEqual(t, tg.Load(), road.MinX)
		assert.LessOrEqual(t, tg.Load(), road.MaxX)
	}
}

func TestSmoother_IgnoresStartWhenNotRunning(t *testing.T) {
	tg := NewTarget()
	s := NewSmoother(tg, running(false))

	s.DragStart(100)
	assert.Equal(t, Idle, s.State())

	s.DragMove(300)
	assert.Equal(t, road.CenterX, tg.Load())
}

func TestSmoother_MoveWithoutStartIsIgnored(t *testing.T) {
	tg := NewTarget()
	s := NewSmoother(tg, running(true))

	s.DragMove(500)
	assert.Equal(t, road.CenterX, tg.Load())
}

func TestSmoother_DragEndFromAnyState(t *testing.T) {
	s := NewSmoother(NewTarget(), running(true))

	s.DragEnd()
	assert.Equal(t, Idle, s.State())

	s.DragStart(10)
	s.DragMove(30)
	assert.Equal(t, Dragging, s.State())

	s.DragEnd()
	s.DragEnd()
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, "idle", s.State().String())
}
