package game

import (
	"github.com/golangdaddy/screamracer/pkg/driver"
	"github.com/golangdaddy/screamracer/pkg/input"
	"github.com/golangdaddy/screamracer/pkg/models"
	"github.com/golangdaddy/screamracer/pkg/road"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameplayScreen handles input while a run is in progress. The road itself
// is drawn by the renderer underneath every screen.
type GameplayScreen struct {
	driver *driver.Driver
	poller *pointerPoller
}

// NewGameplayScreen wires pointer dragging to the session's steering target
func NewGameplayScreen(d *driver.Driver) *GameplayScreen {
	smoother := input.NewSmoother(d.Session().Target(), d.Running)
	return &GameplayScreen{
		driver: d,
		poller: newPointerPoller(smoother, road.ScreenWidth, road.ScreenHeight),
	}
}

// Update feeds this tick's drag events to the smoother
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.poller.Cancel()
		gs.driver.End(models.EndQuit)
		return nil
	}
	gs.poller.Update()
	return nil
}

// Draw has nothing to add over the renderer
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {}

// Cancel ends any drag in progress
func (gs *GameplayScreen) Cancel() {
	gs.poller.Cancel()
}
