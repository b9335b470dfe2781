package vehicle

// Player tuning
const (
	StartX       = 375.0
	StartY       = 450.0
	MaxSpeed     = 15.0 // Units per frame at full loudness
	MaxTurnAngle = 0.3  // Radians
)

// Player is the car steered by dragging and driven by loudness
type Player struct {
	Vehicle
	Speed     float64 // Current forward speed in units per frame
	TargetX   float64 // Last target lateral position read from input
	TurnAngle float64 // Lean in radians, positive leans right
}

// NewPlayer creates a player parked at the start position
func NewPlayer() Player {
	return Player{
		Vehicle: Vehicle{X: StartX, Y: StartY},
		TargetX: StartX,
	}
}

// Reset puts the player back at rest on the start position
func (p *Player) Reset() {
	*p = NewPlayer()
}

// DisplaySpeed is the speed shown on the HUD
func (p *Player) DisplaySpeed() int {
	return int(p.Speed * 10)
}
