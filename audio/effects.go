package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/voxel-fighter/parameter"
)

// SampleRate is the output rate of every generated effect
const SampleRate = beep.SampleRate(parameter.AudioSampleRate)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite oscillator; noise draws from seed so effects are reproducible
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, seed int64) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(seed)),
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
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
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

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; sustain fills whatever attack and release leave
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
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf, so 0 is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateImpactSound generates a short thud; stronger responses pitch higher
func CreateImpactSound(strength, volume float64, seed int64) beep.Streamer {
	const (
		dur     = parameter.ImpactSoundDuration
		attack  = parameter.ImpactSoundAttack
		release = parameter.ImpactSoundRelease
	)
	freq := parameter.ImpactBaseFreq + parameter.ImpactFreqPerUnit*math.Min(strength, parameter.ImpactMaxStrength)

	body := NewEnvelope(NewOscillator(freq, dur, WaveSine, SampleRate, seed), dur, attack, release, SampleRate)
	click := NewEnvelope(NewOscillator(0, dur/3, WaveNoise, SampleRate, seed), dur/3, attack, dur/4, SampleRate)

	mixed := beep.Take(SampleRate.N(dur), beep.Mix(newVolume(body, 0.8), newVolume(click, 0.2)))
	return newVolume(mixed, volume)
}

// CreateExplosionSound generates a noise burst over a low rumble; larger blasts are louder
func CreateExplosionSound(radius int, volume float64, seed int64) beep.Streamer {
	const (
		dur     = parameter.ExplosionSoundDuration
		attack  = parameter.ExplosionSoundAttack
		release = parameter.ExplosionSoundRelease
	)
	scale := math.Min(float64(radius)/parameter.ExplosionMaxRadius, 1)

	noise := NewEnvelope(NewOscillator(0, dur, WaveNoise, SampleRate, seed), dur, attack, release, SampleRate)
	rumble := NewEnvelope(NewOscillator(parameter.ExplosionRumbleFreq, dur, WaveSine, SampleRate, seed),
		dur, attack, release, SampleRate)

	mixed := beep.Take(SampleRate.N(dur), beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4)))
	return newVolume(mixed, volume*(0.5+0.5*scale))
}
