package game

import (
	"github.com/golangdaddy/screamracer/pkg/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// cuePlayer plays cues on the shared ebiten audio context. A nil cuePlayer is silent.
type cuePlayer struct {
	clear *audio.Player
	crash *audio.Player
	log   zerolog.Logger
}

// newCuePlayer renders the cue bank and binds it to ctx
func newCuePlayer(ctx *audio.Context, volume float64, log zerolog.Logger) (*cuePlayer, error) {
	bank, err := sfx.NewBank(volume)
	if err != nil {
		return nil, err
	}
	p := &cuePlayer{
		clear: ctx.NewPlayerFromBytes(bank.Clear),
		crash: ctx.NewPlayerFromBytes(bank.Crash),
		log:   log,
	}
	log.Debug().Int("clearBytes", len(bank.Clear)).Int("crashBytes", len(bank.Crash)).Msg("Cues ready")
	return p, nil
}

// Clear plays the opponent-cleared cue
func (p *cuePlayer) Clear() {
	if p == nil {
		return
	}
	p.play(p.clear)
}

// Crash plays the collision cue
func (p *cuePlayer) Crash() {
	if p == nil {
		return
	}
	p.clear.Pause()
	p.play(p.crash)
}

func (p *cuePlayer) play(ap *audio.Player) {
	if err := ap.Rewind(); err != nil {
		p.log.Warn().Err(err).Msg("Could not rewind cue")
		return
	}
	ap.Play()
}
