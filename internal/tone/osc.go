// Package tone renders the curve's two sinusoids as sound: the x sinusoid on
// the left channel and the y sinusoid on the right, so the frequency ratio
// a:b can be heard as an interval.
package tone

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"lissajous-visualization/internal/config"
	"lissajous-visualization/internal/lissajous"
)

// Oscillator implements beep.Streamer. The speaker goroutine calls Stream
// while the UI goroutine calls SetParams, hence the mutex.
type Oscillator struct {
	sampleRate float64

	mu             sync.Mutex
	params         lissajous.Params
	phaseX, phaseY float64
}

func New(sr beep.SampleRate, p lissajous.Params) *Oscillator {
	return &Oscillator{
		sampleRate: float64(sr),
		params:     p,
	}
}

// SetParams swaps in new coefficients. Phase accumulators are kept, so a
// frequency change glides instead of clicking.
func (o *Oscillator) SetParams(p lissajous.Params) {
	o.mu.Lock()
	o.params = p
	o.mu.Unlock()
}

func (o *Oscillator) Stream(samples [][2]float64) (int, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	// Amplitudes range over [0, AmpMax]; scale down to unit gain.
	gainX := o.params.AmpX / config.AmpMax
	gainY := o.params.AmpY / config.AmpMax

	stepX := 2 * math.Pi * config.ToneBaseFrequency * o.params.FreqX / o.sampleRate
	stepY := 2 * math.Pi * config.ToneBaseFrequency * o.params.FreqY / o.sampleRate

	for i := range samples {
		samples[i][0] = gainX * math.Sin(o.phaseX+o.params.Delta)
		samples[i][1] = gainY * math.Sin(o.phaseY)
		o.phaseX = wrapPhase(o.phaseX + stepX)
		o.phaseY = wrapPhase(o.phaseY + stepY)
	}
	return len(samples), true
}

func (o *Oscillator) Err() error { return nil }

func wrapPhase(p float64) float64 {
	if p >= 2*math.Pi {
		return p - 2*math.Pi
	}
	if p < 0 {
		return p + 2*math.Pi
	}
	return p
}
