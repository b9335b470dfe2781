package audio

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noise(seed int64, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

func TestAnalyser_SilenceIsZero(t *testing.T) {
	a := NewAnalyser()
	a.Write(make([]float64, FFTSize))

	for i := 0; i < 5; i++ {
		assert.Zero(t, a.Loudness())
	}
}

func TestAnalyser_LoudNoiseSaturates(t *testing.T) {
	a := NewAnalyser()
	a.Write(noise(1, 0.5, FFTSize))

	var got float64
	for i := 0; i < 30; i++ {
		got = a.Loudness()
	}
	assert.Equal(t, MaxLoudness, got)
}

func TestAnalyser_SmoothingRisesGradually(t *testing.T) {
	a := NewAnalyser()
	a.Write(noise(2, 0.005, FFTSize))

	first := a.Loudness()
	var settled float64
	for i := 0; i < 40; i++ {
		settled = a.Loudness()
	}
	assert.Less(t, first, settled)
	assert.Greater(t, settled, 0.0)
}

func TestAnalyser_LoudnessBounded(t *testing.T) {
	a := NewAnalyser()
	for _, amp := range []float64{0, 1e-4, 0.01, 0.1, 1} {
		a.Write(noise(3, amp, FFTSize/2))
		for i := 0; i < 5; i++ {
			l := a.Loudness()
			assert.GreaterOrEqual(t, l, 0.0)
			assert.LessOrEqual(t, l, MaxLoudness)
			assert.False(t, math.IsNaN(l))
		}
	}
}

func TestAnalyser_Spectrum(t *testing.T) {
	a := NewAnalyser()

	// A full-scale tone centred on bin 64
	tone := make([]float64, FFTSize)
	for i := range tone {
		tone[i] = math.Sin(2 * math.Pi * 64 * float64(i) / FFTSize)
	}
	a.Write(tone)

	for i := 0; i < 30; i++ {
		a.Loudness()
	}
	spectrum := a.bytes
	require.Len(t, spectrum, Bins)

	peak := 0
	for i, b := range spectrum {
		if b > spectrum[peak] {
			peak = i
		}
	}
	assert.Equal(t, 64, peak)
	assert.Equal(t, uint8(255), spectrum[64])
	assert.Less(t, spectrum[400], spectrum[64])
}

func TestPeriodicBlackman(t *testing.T) {
	w := periodicBlackman(FFTSize)
	require.Len(t, w, FFTSize)

	assert.InDelta(t, 0.0, w[0], 1e-12)
	assert.InDelta(t, 1.0, w[FFTSize/2], 1e-12)
	// Periodic: w[k] == w[N-k], with no repeated zero at the end
	assert.InDelta(t, w[1], w[FFTSize-1], 1e-12)
	assert.Greater(t, w[FFTSize-1], 0.0)
}

func TestAnalyser_WriteKeepsNewest(t *testing.T) {
	a := NewAnalyser()
	a.Write(noise(4, 0.5, FFTSize))

	// Silence longer than the window pushes all noise out
	a.Write(make([]float64, FFTSize*2))
	for i := 0; i < 200; i++ {
		a.Loudness()
	}
	assert.Zero(t, a.Loudness())
}

func TestAnalyser_Reset(t *testing.T) {
	a := NewAnalyser()
	a.Write(noise(5, 0.5, FFTSize))
	a.Loudness()

	a.Reset()
	assert.Zero(t, a.Loudness())
}
