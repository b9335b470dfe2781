package traffic

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/golangdaddy/screamracer/pkg/road"
	"github.com/golangdaddy/screamracer/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns scripted values
type fixedRand struct {
	floats []float64
	ints   []int
}

func (r *fixedRand) Float64() float64 {
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *fixedRand) Intn(n int) int {
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func TestField_MaybeSpawn(t *testing.T) {
	rng := &fixedRand{floats: []float64{0.5, 0.01, 0.25}, ints: []int{2}}
	f := NewField(rng)

	assert.False(t, f.MaybeSpawn())
	assert.Equal(t, 0, f.Len())

	assert.True(t, f.MaybeSpawn())
	require.Equal(t, 1, f.Len())

	o := f.Opponents()[0]
	assert.Equal(t, 450.0, o.X)
	assert.Equal(t, SpawnY, o.Y)
	assert.NotNil(t, o.Color)
}

func TestField_SpawnsOnlyInLanes(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(42)))
	for i := 0; i < 10000; i++ {
		f.MaybeSpawn()
	}
	require.NotZero(t, f.Len())

	for _, o := range f.Opponents() {
		assert.True(t, road.IsLane(o.X), "lane %v", o.X)
		assert.Equal(t, SpawnY, o.Y)
	}
}

func TestField_SpawnRate(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(7)))
	spawned := 0
	for i := 0; i < 100000; i++ {
		if f.MaybeSpawn() {
			spawned++
		}
	}
	// Expect roughly one in fifty
	assert.InDelta(t, 2000, spawned, 200)
}

func TestField_Advance(t *testing.T) {
	f := NewField(&fixedRand{floats: []float64{1}, ints: []int{0}})
	f.Spawn(300, color.White)

	score := f.Advance(2)
	assert.Zero(t, score)
	assert.Equal(t, SpawnY+5, f.Opponents()[0].Y)
}

func TestField_AdvanceClearsOnce(t *testing.T) {
	f := NewField(&fixedRand{floats: []float64{1}, ints: []int{0}})

	// Walk one opponent from the spawn line to the bottom edge
	f.Spawn(375, color.White)
	frames := 0
	total := 0
	for f.Len() > 0 {
		total += f.Advance(12)
		frames++
		require.Less(t, frames, 1000)
	}
	assert.Equal(t, ClearBonus, total)
	assert.Equal(t, 0, f.Advance(12))

	// Two opponents crossing on the same frame score once each
	f.Spawn(300, color.White)
	f.Spawn(450, color.White)
	f.Spawn(375, color.White)
	f.opponents[0].Y = road.ScreenHeight - 1
	f.opponents[1].Y = road.ScreenHeight - 2
	f.opponents[2].Y = 0

	assert.Equal(t, 2*ClearBonus, f.Advance(0))
	require.Equal(t, 1, f.Len())
	assert.Equal(t, 375.0, f.Opponents()[0].X)
	assert.Equal(t, 0, f.Advance(0))
}

func TestField_Clear(t *testing.T) {
	f := NewField(nil)
	f.Spawn(300, color.White)
	f.Spawn(375, color.White)
	f.Clear()
	assert.Equal(t, 0, f.Len())
}

func TestCheck(t *testing.T) {
	player := vehicle.New(375, 450, nil)

	_, hit := Check(player, nil)
	assert.False(t, hit)

	// Directly above, bottom edge touching the player's top edge
	touching := vehicle.New(375, 450-vehicle.Height, color.White)
	// Beside, right edge touching the player's left edge
	beside := vehicle.New(375-vehicle.Width, 450, color.White)
	_, hit = Check(player, []vehicle.Vehicle{touching, beside})
	assert.False(t, hit)

	overlapping := vehicle.New(400, 500, color.Black)
	got, hit := Check(player, []vehicle.Vehicle{touching, overlapping, vehicle.New(380, 460, color.White)})
	assert.True(t, hit)
	assert.Equal(t, overlapping, got)
}
