// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue identifies a game event with a sound.
type Cue int

const (
	CueEat Cue = iota
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cue timings
const (
	eatNoteDuration      = 60 * time.Millisecond
	eatAttack            = 5 * time.Millisecond
	eatRelease           = 40 * time.Millisecond
	gameOverNoteDuration = 180 * time.Millisecond
	gameOverAttack       = 10 * time.Millisecond
	gameOverRelease      = 120 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a raw periodic wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
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
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
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

// envelope fades a stream in over the attack and out over the release
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf, so 0 is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one shaped tone
func note(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// createEatSound generates a rising two-note chime
func createEatSound(rate beep.SampleRate, volume float64) beep.Streamer {
	seq := beep.Seq(
		note(987.77, WaveSquare, eatNoteDuration, eatAttack, eatRelease, rate),  // B5
		note(1318.51, WaveSquare, eatNoteDuration, eatAttack, eatRelease, rate), // E6
	)
	return newVolume(seq, volume*0.5)
}

// createGameOverSound generates a falling buzz with a sine undertone
func createGameOverSound(rate beep.SampleRate, volume float64) beep.Streamer {
	fall := beep.Seq(
		note(220, WaveSaw, gameOverNoteDuration, gameOverAttack, gameOverRelease, rate),
		note(165, WaveSaw, gameOverNoteDuration, gameOverAttack, gameOverRelease, rate),
		note(110, WaveSaw, gameOverNoteDuration*2, gameOverAttack, gameOverRelease*2, rate),
	)
	under := note(55, WaveSine, gameOverNoteDuration*4, gameOverAttack, gameOverRelease*2, rate)

	// Mix pads with silence, so cut it to the length of the fall
	mixed := beep.Take(rate.N(gameOverNoteDuration*4), beep.Mix(
		newVolume(fall, 0.7),
		newVolume(under, 0.3),
	))
	return newVolume(mixed, volume)
}

// Streamer returns the sound for a cue, or nil for an unknown cue.
func Streamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch c {
	case CueEat:
		return createEatSound(rate, volume)
	case CueGameOver:
		return createGameOverSound(rate, volume)
	default:
		return nil
	}
}
