package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleScreen is shown over the idle road until the player starts a run
type TitleScreen struct {
	startTime      time.Time
	start          Button
	best           int
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a title screen for a surface of the given size
func NewTitleScreen(width, height, best int, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime: time.Now(),
		start: Button{
			Label: "START",
			X:     float64(width)/2 - buttonWidth/2,
			Y:     float64(height)*2/3 - buttonHeight/2,
			W:     buttonWidth,
			H:     buttonHeight,
		},
		best:           best,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	pressed := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if x, y, ok := PressedAt(); ok && ts.start.Contains(x, y) {
		pressed = true
	}
	if pressed && ts.onStartPressed != nil {
		ts.onStartPressed()
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	FillRect(screen, 0, 0, float64(width), float64(height), OverlayColor)

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title, as if it were being shouted
	pulse := 1.0 + 0.08*math.Sin(elapsed*6)
	brightness := math.Min(1, 0.85+0.15*math.Sin(elapsed*3))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawText(screen, "SCREAM RACER", centerX, centerY, 64*pulse, titleColor)
	DrawText(screen, "Shout to go faster. Drag to steer.", centerX, centerY+70, 24, color.RGBA{180, 180, 200, 255})

	ts.start.Draw(screen, int(elapsed*2)%2 == 0)

	if ts.best > 0 {
		DrawText(screen, fmt.Sprintf("Best: %d", ts.best), centerX, ts.start.Y+ts.start.H+40, 16, color.RGBA{150, 200, 255, 255})
	}
	DrawText(screen, "ENTER or click START", centerX, float64(height)-40, 16, color.RGBA{150, 150, 150, 255})
}
