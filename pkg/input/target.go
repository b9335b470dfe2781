package input

import (
	"math"
	"sync/atomic"

	"github.com/golangdaddy/screamracer/pkg/road"
)

// Target is the single slot holding the latest lateral target position.
// The drag handler writes it and the simulation only reads it.
type Target struct {
	bits atomic.Uint64
}

// NewTarget creates a slot holding the road centre
func NewTarget() *Target {
	t := &Target{}
	t.Reset()
	return t
}

// Load returns the current target
func (t *Target) Load() float64 {
	return math.Float64frombits(t.bits.Load())
}

// Store replaces the target, clamped to the steerable range
func (t *Target) Store(x float64) {
	t.bits.Store(math.Float64bits(road.Clamp(x)))
}

// Nudge adds delta to the target and clamps the result
func (t *Target) Nudge(delta float64) float64 {
	for {
		old := t.bits.Load()
		next := road.Clamp(math.Float64frombits(old) + delta)
		if t.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Reset moves the target back to the road centre
func (t *Target) Reset() {
	t.Store(road.CenterX)
}
