package sfx

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate matches the playback context
const SampleRate = beep.SampleRate(44100)

// outFormat is what the ebiten audio context expects: 16-bit little-endian stereo
var outFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// note is one step of a cue
type note struct {
	freq   float64
	length time.Duration
	square bool
}

// Cue shapes
var (
	clearNotes = []note{
		{freq: 660, length: 50 * time.Millisecond},
		{freq: 990, length: 70 * time.Millisecond},
	}
	crashNotes = []note{
		{freq: 180, length: 90 * time.Millisecond, square: true},
		{freq: 120, length: 110 * time.Millisecond, square: true},
		{freq: 70, length: 200 * time.Millisecond, square: true},
	}
)

// tone builds a streamer for a sequence of notes
func tone(notes []note) (beep.Streamer, time.Duration, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	var total time.Duration
	for _, n := range notes {
		var (
			s   beep.Streamer
			err error
		)
		if n.square {
			s, err = generators.SquareTone(SampleRate, n.freq)
		} else {
			s, err = generators.SineTone(SampleRate, n.freq)
		}
		if err != nil {
			return nil, 0, fmt.Errorf("tone %vHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(SampleRate.N(n.length), s))
		total += n.length
	}
	return beep.Seq(parts...), total, nil
}

// fade ramps a finite streamer linearly down to silence over its length
type fade struct {
	streamer beep.Streamer
	position int
	total    int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(f.position)/float64(f.total)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales a streamer by a linear 0..1 volume
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Gain{Streamer: s, Gain: volume - 1}
}

// render drains a finite streamer into PCM bytes in outFormat
func render(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 64*1024)
	frame := make([]byte, outFormat.Width())
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			outFormat.EncodeSigned(frame, buf[i])
			out = append(out, frame...)
		}
		if !ok {
			return out
		}
	}
}

// synthesize renders notes through the fade and volume stages
func synthesize(notes []note, volume float64) ([]byte, error) {
	s, length, err := tone(notes)
	if err != nil {
		return nil, err
	}
	s = &fade{streamer: s, total: SampleRate.N(length)}
	return render(withVolume(s, volume)), nil
}

// Bank holds pre-rendered cues
type Bank struct {
	Clear []byte
	Crash []byte
}

// NewBank renders every cue at the given volume
func NewBank(volume float64) (*Bank, error) {
	clearCue, err := synthesize(clearNotes, volume)
	if err != nil {
		return nil, err
	}
	crashCue, err := synthesize(crashNotes, volume)
	if err != nil {
		return nil, err
	}
	return &Bank{Clear: clearCue, Crash: crashCue}, nil
}
