package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/showcase/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Pad tones, one per memory pad in pad order.
var padFreqs = [...]float64{329.63, 277.18, 220.00, 164.81}

const (
	padDuration  = 300 * time.Millisecond
	padAttack    = 10 * time.Millisecond
	padRelease   = 120 * time.Millisecond
	failDuration = 450 * time.Millisecond
	failFreq     = 98.0
	winNote      = 160 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Tone builds the sound for a cue. It reports false for cues with no sound,
// such as a pad index outside the board.
func Tone(c core.Cue, volume float64) (beep.Streamer, bool) {
	switch c.Kind {
	case core.CuePad:
		if c.Pad < 0 || c.Pad >= len(padFreqs) {
			return nil, false
		}
		osc := NewOscillator(padFreqs[c.Pad], padDuration, WaveSine, sampleRate)
		return withVolume(NewEnvelope(osc, padDuration, padAttack, padRelease, sampleRate), volume), true

	case core.CueFail:
		osc := NewOscillator(failFreq, failDuration, WaveSaw, sampleRate)
		return withVolume(NewEnvelope(osc, failDuration, padAttack, failDuration/2, sampleRate), volume*0.6), true

	case core.CueWin:
		// Rising major arpeggio
		notes := []float64{523.25, 659.25, 783.99, 1046.50}
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			osc := NewOscillator(f, winNote, WaveSine, sampleRate)
			parts = append(parts, NewEnvelope(osc, winNote, padAttack, winNote/2, sampleRate))
		}
		return withVolume(beep.Seq(parts...), volume), true
	}
	return nil, false
}
