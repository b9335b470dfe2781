package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 50, H: 80}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same box", a, true},
		{"partial overlap", Rect{X: 25, Y: 40, W: 50, H: 80}, true},
		{"touching right edge", Rect{X: 50, Y: 0, W: 50, H: 80}, false},
		{"touching bottom edge", Rect{X: 0, Y: 80, W: 50, H: 80}, false},
		{"touching left edge", Rect{X: -50, Y: 0, W: 50, H: 80}, false},
		{"touching top edge", Rect{X: 0, Y: -80, W: 50, H: 80}, false},
		{"one unit inside", Rect{X: 49, Y: 79, W: 50, H: 80}, true},
		{"far away", Rect{X: 500, Y: 500, W: 50, H: 80}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestVehicle_Bounds(t *testing.T) {
	v := New(300, -100, nil)
	b := v.Bounds()

	assert.Equal(t, 300.0, b.Left())
	assert.Equal(t, 350.0, b.Right())
	assert.Equal(t, -100.0, b.Top())
	assert.Equal(t, -20.0, b.Bottom())
	assert.Equal(t, Width, b.W)
	assert.Equal(t, Height, b.H)
}

func TestPlayer_Reset(t *testing.T) {
	p := NewPlayer()
	p.X = 500
	p.Speed = 12
	p.TargetX = 540
	p.TurnAngle = -0.2

	p.Reset()

	assert.Equal(t, StartX, p.X)
	assert.Equal(t, StartY, p.Y)
	assert.Equal(t, StartX, p.TargetX)
	assert.Zero(t, p.Speed)
	assert.Zero(t, p.TurnAngle)
}

func TestPlayer_DisplaySpeed(t *testing.T) {
	p := NewPlayer()
	p.Speed = 7.49
	assert.Equal(t, 74, p.DisplaySpeed())

	p.Speed = MaxSpeed
	assert.Equal(t, 150, p.DisplaySpeed())
}
