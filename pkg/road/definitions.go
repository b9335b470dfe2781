package road

// Surface is the fixed logical drawing area
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Road band and the range the player may steer within
const (
	Left    = 250.0
	Width   = 300.0
	MinX    = 260.0
	MaxX    = 540.0
	CenterX = 375.0
)

// Lanes holds the x position of each opponent lane
var Lanes = [...]float64{300, 375, 450}

// Clamp limits a lateral position to the steerable range
func Clamp(x float64) float64 {
	if x < MinX {
		return MinX
	}
	if x > MaxX {
		return MaxX
	}
	return x
}

// IsLane reports whether x is one of the lane positions
func IsLane(x float64) bool {
	for _, l := range Lanes {
		if l == x {
			return true
		}
	}
	return false
}
