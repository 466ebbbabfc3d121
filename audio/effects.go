package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/haoranliu666/Hell-Survivor/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves. EndFreq enables a linear
// frequency sweep over the sound's duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency wave generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweepOscillator(freq, freq, duration, wave, rate)
}

// NewSweepOscillator creates a wave generator whose frequency moves
// linearly from startFreq to endFreq
func NewSweepOscillator(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s in an attack/sustain/release volume shape
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer. math.Log2(0) is -Inf, so zero volume
// switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// createSwingSound is a quick downward noise swipe for the sword
func createSwingSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(0, constants.SwingSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(osc, constants.SwingSoundDuration, constants.SwingSoundAttack, constants.SwingSoundRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// createArrowSound is a rising zip for a loosed arrow
func createArrowSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweepOscillator(600, 1400, constants.ArrowSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.ArrowSoundDuration, constants.ArrowSoundAttack, constants.ArrowSoundRelease, rate)
	return newVolume(shaped, vol*0.4)
}

// createThrowSound is a low lob tone for a thrown bomb
func createThrowSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweepOscillator(300, 150, constants.ThrowSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.ThrowSoundDuration, constants.ThrowSoundAttack, constants.ThrowSoundRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// createExplosionSound is a long noise rumble
func createExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, constants.ExplosionSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.ExplosionSoundDuration, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)

	rumble := NewSweepOscillator(120, 40, constants.ExplosionSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, constants.ExplosionSoundDuration, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.8),
	)
	return newVolume(mixed, vol)
}

// createDodgeSound is a short airy whoosh
func createDodgeSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweepOscillator(900, 300, constants.DodgeSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.DodgeSoundDuration, constants.DodgeSoundAttack, constants.DodgeSoundRelease, rate)
	return newVolume(shaped, vol*0.35)
}

// createHurtSound is a harsh low buzz for player damage
func createHurtSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(110, constants.HurtSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.HurtSoundDuration, constants.HurtSoundAttack, constants.HurtSoundRelease, rate)
	return newVolume(shaped, vol*0.6)
}

// createKillSound is a falling square blip for an enemy death
func createKillSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweepOscillator(700, 200, constants.KillSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.KillSoundDuration, constants.KillSoundAttack, constants.KillSoundRelease, rate)
	return newVolume(shaped, vol*0.35)
}

// createPickupSound is a two-note chime for items
func createPickupSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(987.77, constants.PickupSoundNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.PickupSoundNoteDuration, constants.PickupSoundAttack, constants.PickupSoundRelease, rate)

	n2 := NewOscillator(1318.51, constants.PickupSoundNoteDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.PickupSoundNoteDuration, constants.PickupSoundAttack, constants.PickupSoundRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.4)
}

// createLevelUpSound is a rising three-note arpeggio
func createLevelUpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}
	streamers := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		osc := NewOscillator(f, constants.LevelUpSoundNoteDuration, WaveSine, rate)
		streamers[i] = NewEnvelope(osc, constants.LevelUpSoundNoteDuration, constants.LevelUpSoundAttack, constants.LevelUpSoundRelease, rate)
	}
	return newVolume(beep.Seq(streamers...), vol*0.5)
}

// createBossSound is a long ominous swell for boss spawns
func createBossSound(rate beep.SampleRate, vol float64) beep.Streamer {
	low := NewSweepOscillator(60, 90, constants.BossSoundDuration, WaveSaw, rate)
	lowShaped := NewEnvelope(low, constants.BossSoundDuration, constants.BossSoundAttack, constants.BossSoundRelease, rate)

	fifth := NewSweepOscillator(90, 135, constants.BossSoundDuration, WaveSaw, rate)
	fifthShaped := NewEnvelope(fifth, constants.BossSoundDuration, constants.BossSoundAttack, constants.BossSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(lowShaped, 0.7),
		newVolume(fifthShaped, 0.4),
	)
	return newVolume(mixed, vol*0.8)
}

// createWaveCompleteSound reuses the level-up arpeggio an octave down
func createWaveCompleteSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{261.63, 329.63, 392.00, 523.25}
	streamers := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		osc := NewOscillator(f, constants.LevelUpSoundNoteDuration, WaveSquare, rate)
		streamers[i] = NewEnvelope(osc, constants.LevelUpSoundNoteDuration, constants.LevelUpSoundAttack, constants.LevelUpSoundRelease, rate)
	}
	return newVolume(beep.Seq(streamers...), vol*0.45)
}

// createGameOverSound is a slow descending minor phrase
func createGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{392.00, 311.13, 261.63, 196.00}
	streamers := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		osc := NewOscillator(f, constants.GameOverSoundNoteDuration, WaveSine, rate)
		streamers[i] = NewEnvelope(osc, constants.GameOverSoundNoteDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)
	}
	return newVolume(beep.Seq(streamers...), vol*0.6)
}
