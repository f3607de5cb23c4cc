package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
)

// sweep is an oscillator whose pitch glides exponentially from one
// frequency to another, then holds.
type sweep struct {
	from, to float64
	glide    int // Samples spent gliding
	total    int
	pos      int
	phase    float64
	wave     Wave
	rate     beep.SampleRate
}

// NewSweep creates a tone gliding from -> to over glide, lasting duration.
func NewSweep(from, to float64, glide, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		glide: max(rate.N(glide), 1),
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (s *sweep) freq() float64 {
	if s.pos >= s.glide || s.from <= 0 || s.to <= 0 {
		return s.to
	}
	t := float64(s.pos) / float64(s.glide)
	return s.from * math.Pow(s.to/s.from, t)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveTriangle:
			val = 4*math.Abs(s.phase-0.5) - 1
		default:
			val = math.Sin(2 * math.Pi * s.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq() / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.pos >= releaseStart {
			vol = math.Max(0, float64(e.total-e.pos)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue timings.
const (
	jumpDuration     = 160 * time.Millisecond
	jumpGlide        = 120 * time.Millisecond
	jumpAttack       = 20 * time.Millisecond
	jumpRelease      = 120 * time.Millisecond
	gameOverDuration = 320 * time.Millisecond
	gameOverGlide    = 280 * time.Millisecond
	gameOverAttack   = 30 * time.Millisecond
	gameOverRelease  = 270 * time.Millisecond
)

// JumpSound is a short sine chirp falling from 800 Hz to 320 Hz.
func JumpSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(800, 320, jumpGlide, jumpDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, jumpDuration, jumpAttack, jumpRelease, rate)
	return newVolume(shaped, 0.3*volume)
}

// GameOverSound is a triangle wave dropping from 280 Hz to 90 Hz over a
// low sine hum.
func GameOverSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(280, 90, gameOverGlide, gameOverDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, gameOverDuration, gameOverAttack, gameOverRelease, rate)

	layers := []beep.Streamer{newVolume(shaped, 0.8)}
	if hum, err := generators.SineTone(rate, 45); err == nil {
		humShaped := NewEnvelope(beep.Take(rate.N(gameOverDuration), hum), gameOverDuration, gameOverAttack, gameOverRelease, rate)
		layers = append(layers, newVolume(humShaped, 0.2))
	}

	return newVolume(beep.Mix(layers...), 0.35*volume)
}
