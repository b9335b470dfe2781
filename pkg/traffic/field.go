package traffic

import (
	"image/color"
	"math/rand"

	"github.com/golangdaddy/screamracer/pkg/road"
	"github.com/golangdaddy/screamracer/pkg/vehicle"
	"github.com/lucasb-eyer/go-colorful"
)

// Spawn and scroll tuning
const (
	SpawnChance = 0.02   // Per frame
	SpawnY      = -100.0 // Above the visible top edge
	BaseSpeed   = 3.0    // Opponent scroll speed at standstill
	ClearBonus  = 10     // Score for each opponent that leaves the bottom
	Saturation  = 0.7
	Lightness   = 0.5
)

// Rand is the randomness the field draws from
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Field owns the opponents currently on the road
type Field struct {
	rng       Rand
	opponents []vehicle.Vehicle
}

// NewField creates an empty field. A nil rng uses a time-seeded source.
func NewField(rng Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Field{
		rng:       rng,
		opponents: make([]vehicle.Vehicle, 0),
	}
}

// MaybeSpawn adds an opponent in a random lane with probability SpawnChance.
// Returns true if one was added.
func (f *Field) MaybeSpawn() bool {
	if f.rng.Float64() >= SpawnChance {
		return false
	}
	f.Spawn(road.Lanes[f.rng.Intn(len(road.Lanes))], f.randomColor())
	return true
}

// Spawn adds an opponent above the top edge at the given lane position
func (f *Field) Spawn(laneX float64, c color.Color) {
	f.opponents = append(f.opponents, vehicle.New(laneX, SpawnY, c))
}

// randomColor picks a hue with fixed saturation and lightness
func (f *Field) randomColor() color.Color {
	hue := f.rng.Float64() * 360
	return colorful.Hsl(hue, Saturation, Lightness)
}

// Advance moves every opponent down by BaseSpeed plus speedBonus.
// Opponents whose top edge passes the bottom of the surface are removed in the
// same pass and the returned score credits each of them exactly once.
func (f *Field) Advance(speedBonus float64) int {
	score := 0
	active := f.opponents[:0]
	for _, o := range f.opponents {
		o.Y += BaseSpeed + speedBonus
		if o.Y > road.ScreenHeight {
			score += ClearBonus
			continue
		}
		active = append(active, o)
	}
	// Drop references held past the new length
	for i := len(active); i < len(f.opponents); i++ {
		f.opponents[i] = vehicle.Vehicle{}
	}
	f.opponents = active
	return score
}

// Opponents returns the active opponents in spawn order
func (f *Field) Opponents() []vehicle.Vehicle {
	return f.opponents
}

// Len returns the number of active opponents
func (f *Field) Len() int {
	return len(f.opponents)
}

// Clear removes every opponent
func (f *Field) Clear() {
	f.opponents = f.opponents[:0]
}
