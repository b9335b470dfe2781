package game

import (
	"errors"

	"github.com/golangdaddy/screamracer/pkg/audio"
	"github.com/golangdaddy/screamracer/pkg/driver"
	"github.com/golangdaddy/screamracer/pkg/logging"
	"github.com/golangdaddy/screamracer/pkg/models"
	"github.com/golangdaddy/screamracer/pkg/render"
	"github.com/golangdaddy/screamracer/pkg/road"
	"github.com/golangdaddy/screamracer/pkg/traffic"
	"github.com/golangdaddy/screamracer/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options configures a Game
type Options struct {
	NewSampler        driver.SamplerFactory
	AudioContext      *ebitenaudio.Context // nil disables cues
	SFXEnabled        bool
	SFXVolume         float64
	PauseOnDeviceLost bool
	History           *models.History
	Rand              traffic.Rand
	Seed              int64 // Roadside texture seed
	Log               zerolog.Logger
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	log      zerolog.Logger
	driver   *driver.Driver
	renderer *render.Renderer
	gameplay *GameplayScreen
	cues     *cuePlayer

	currentScreen Screen
	screenPhase   driver.Phase
}

// NewGame creates a game on the title screen
func NewGame(opts Options) (*Game, error) {
	g := &Game{
		log:      logging.Component(opts.Log, "game"),
		renderer: render.New(opts.Seed),
	}

	if opts.SFXEnabled && opts.AudioContext != nil {
		cues, err := newCuePlayer(opts.AudioContext, opts.SFXVolume, g.log)
		if err != nil {
			return nil, err
		}
		g.cues = cues
	}

	g.driver = driver.New(driver.Options{
		NewSampler:        opts.NewSampler,
		Rand:              opts.Rand,
		History:           opts.History,
		PauseOnDeviceLost: opts.PauseOnDeviceLost,
		Hooks: driver.Hooks{
			OnClear: func(int) { g.cues.Clear() },
			OnCrash: g.cues.Crash,
		},
		Log: opts.Log,
	})
	g.gameplay = NewGameplayScreen(g.driver)
	g.syncScreen(true)
	return g, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		if err := g.currentScreen.Update(); err != nil {
			return err
		}
	}
	g.driver.Tick()
	g.syncScreen(false)
	return nil
}

// Draw renders the road and the current screen over it
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.driver.Session())
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return road.ScreenWidth, road.ScreenHeight
}

// Close ends any run and releases the microphone
func (g *Game) Close() {
	g.driver.Close()
}

// History returns every run played
func (g *Game) History() *models.History {
	return g.driver.History()
}

// syncScreen swaps the screen when the driver changes phase. New screens get
// their first Update on the next tick so one key press is not seen twice.
func (g *Game) syncScreen(force bool) {
	phase := g.driver.Phase()
	if !force && phase == g.screenPhase {
		return
	}
	g.screenPhase = phase
	if phase != driver.PhaseRunning {
		g.gameplay.Cancel()
	}

	w, h := road.ScreenWidth, road.ScreenHeight
	switch phase {
	case driver.PhaseTitle:
		g.currentScreen = ui.NewTitleScreen(w, h, g.History().Best(), g.driver.Start)
	case driver.PhaseAcquiring:
		g.currentScreen = ui.NewWaitingNotice(w, h, g.driver.Cancel)
	case driver.PhaseRunning:
		g.currentScreen = g.gameplay
	case driver.PhasePaused:
		g.currentScreen = ui.NewDeviceLostNotice(w, h, g.driver.Resume, func() {
			g.driver.End(models.EndDeviceLost)
		})
	case driver.PhaseGameOver:
		s := g.driver.Session()
		g.currentScreen = ui.NewGameOver(w, h, s.Score, g.History().Best(), g.driver.Reason(), g.driver.Restart)
	case driver.PhaseFailed:
		g.currentScreen = ui.NewMicrophoneNotice(w, h, failureDetail(g.driver.Err()), g.driver.Dismiss)
	}
}

// failureDetail explains which acquisition failure happened
func failureDetail(err error) string {
	switch {
	case errors.Is(err, audio.ErrPermissionDenied):
		return "Access to the capture device was denied."
	case errors.Is(err, audio.ErrDeviceUnavailable):
		return "No capture device responded."
	}
	return ""
}
