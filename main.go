package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/golangdaddy/screamracer/pkg/audio"
	"github.com/golangdaddy/screamracer/pkg/config"
	"github.com/golangdaddy/screamracer/pkg/game"
	"github.com/golangdaddy/screamracer/pkg/logging"
	"github.com/golangdaddy/screamracer/pkg/models"
	"github.com/golangdaddy/screamracer/pkg/road"
	"github.com/golangdaddy/screamracer/pkg/sfx"
	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

func main() {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "screamracer"))
	}
	cfg, err := config.Load(dirs...)
	if err != nil {
		log := logging.Setup("info")
		log.Fatal().Err(err).Msg("Could not load configuration")
	}

	log := logging.Setup(cfg.LogLevel)
	log.Info().
		Str("backend", cfg.Audio.Backend).
		Str("onDeviceLost", cfg.Audio.OnDeviceLost).
		Bool("sfx", cfg.SFX.Enabled).
		Msg("Starting Scream Racer")

	capture := cfg.Capture()
	history := models.NewHistory()

	g, err := game.NewGame(game.Options{
		NewSampler: func() audio.Sampler {
			return audio.NewMicrophone(capture, log)
		},
		AudioContext:      ebitenaudio.NewContext(int(sfx.SampleRate)),
		SFXEnabled:        cfg.SFX.Enabled,
		SFXVolume:         cfg.SFX.Volume,
		PauseOnDeviceLost: cfg.PauseOnDeviceLost(),
		History:           history,
		Seed:              time.Now().UnixNano(),
		Log:               log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create game")
	}

	ebiten.SetWindowSize(int(road.ScreenWidth*cfg.Window.Scale), int(road.ScreenHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)

	runErr := ebiten.RunGame(g)
	g.Close()

	if cfg.Summary && len(history.Records()) > 0 {
		history.WriteSummary(os.Stdout)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal().Err(runErr).Msg("Game loop failed")
	}
	log.Info().Int("runs", len(history.Records())).Int("best", history.Best()).Msg("Bye")
}
