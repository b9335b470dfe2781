package audio

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Analyser keeps the latest FFTSize samples and turns them into a smoothed
// byte spectrum, the same way a browser analyser node does.
type Analyser struct {
	mu     sync.Mutex
	ring   []float64
	pos    int
	fft    *fourier.FFT
	window []float64
	frame  []float64
	coeffs []complex128
	smooth []float64
	bytes  []uint8
}

// NewAnalyser creates an analyser with a silent history
func NewAnalyser() *Analyser {
	return &Analyser{
		ring:   make([]float64, FFTSize),
		fft:    fourier.NewFFT(FFTSize),
		window: periodicBlackman(FFTSize),
		frame:  make([]float64, FFTSize),
		coeffs: make([]complex128, FFTSize/2+1),
		smooth: make([]float64, Bins),
		bytes:  make([]uint8, Bins),
	}
}

// Write appends samples in [-1, 1] to the history, dropping the oldest
func (a *Analyser) Write(samples []float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Only the newest FFTSize samples can matter
	if len(samples) > FFTSize {
		samples = samples[len(samples)-FFTSize:]
	}
	for _, s := range samples {
		a.ring[a.pos] = s
		a.pos = (a.pos + 1) % FFTSize
	}
}

// Loudness runs one analysis pass and returns the mean byte magnitude
// doubled and capped at MaxLoudness
func (a *Analyser) Loudness() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.analyse()
	sum := 0
	for _, b := range a.bytes {
		sum += int(b)
	}
	return math.Min(MaxLoudness, float64(sum)/float64(len(a.bytes))*2)
}

// Reset clears the sample history and the smoothing state
func (a *Analyser) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	clear(a.ring)
	clear(a.smooth)
	clear(a.bytes)
	a.pos = 0
}

// analyse must be called with mu held
func (a *Analyser) analyse() {
	// Oldest sample first
	n := copy(a.frame, a.ring[a.pos:])
	copy(a.frame[n:], a.ring[:a.pos])

	for i, w := range a.window {
		a.frame[i] *= w
	}
	a.coeffs = a.fft.Coefficients(a.coeffs, a.frame)

	const scale = 1.0 / FFTSize
	span := MaxDecibels - MinDecibels
	for i := 0; i < Bins; i++ {
		c := a.coeffs[i]
		mag := math.Hypot(real(c), imag(c)) * scale
		a.smooth[i] = Smoothing*a.smooth[i] + (1-Smoothing)*mag

		db := math.Inf(-1)
		if a.smooth[i] > 0 {
			db = 20 * math.Log10(a.smooth[i])
		}
		scaled := 255 * (db - MinDecibels) / span
		switch {
		case scaled <= 0 || math.IsNaN(scaled):
			a.bytes[i] = 0
		case scaled >= 255:
			a.bytes[i] = 255
		default:
			a.bytes[i] = uint8(scaled)
		}
	}
}

// periodicBlackman returns the n-point periodic Blackman window. gonum builds
// the symmetric form, so take n+1 points and drop the last.
func periodicBlackman(n int) []float64 {
	w := make([]float64, n+1)
	for i := range w {
		w[i] = 1
	}
	return window.Blackman(w)[:n]
}
