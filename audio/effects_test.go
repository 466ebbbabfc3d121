package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

// drain pulls a streamer dry and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never terminated")
	return nil
}

func TestOscillatorDurationAndRange(t *testing.T) {
	dur := 50 * time.Millisecond
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, dur, wave, testRate)
		samples := drain(t, osc)

		want := testRate.N(dur)
		if len(samples) != want {
			t.Errorf("wave %d: %d samples, expected %d", wave, len(samples), want)
		}
		for _, s := range samples {
			if s[0] < -1.0001 || s[0] > 1.0001 {
				t.Fatalf("wave %d: sample %.3f out of range", wave, s[0])
			}
		}
	}
}

func TestSweepOscillatorTerminates(t *testing.T) {
	osc := NewSweepOscillator(100, 1000, 30*time.Millisecond, WaveSine, testRate)
	samples := drain(t, osc)
	if len(samples) != testRate.N(30*time.Millisecond) {
		t.Errorf("Got %d samples", len(samples))
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	dur := 100 * time.Millisecond
	// Square at a low frequency starts at full amplitude, so the
	// attack ramp is visible at the front
	osc := NewOscillator(10, dur, WaveSquare, testRate)
	shaped := NewEnvelope(osc, dur, 20*time.Millisecond, 20*time.Millisecond, testRate)
	samples := drain(t, shaped)

	if len(samples) == 0 {
		t.Fatal("No samples")
	}
	if v := samples[0][0]; v > 0.01 {
		t.Errorf("Attack should start near silence, got %.3f", v)
	}
	if v := samples[len(samples)-1][0]; v > 0.01 {
		t.Errorf("Release should end near silence, got %.3f", v)
	}
	mid := samples[len(samples)/2][0]
	if mid < 0.9 && mid > -0.9 {
		t.Errorf("Sustain should be full amplitude, got %.3f", mid)
	}
}

func TestAllSoundsGenerate(t *testing.T) {
	sm := NewSoundManager(0.7)
	types := []SoundType{
		SoundSwing, SoundArrow, SoundThrow, SoundExplosion,
		SoundDodge, SoundHurt, SoundKill, SoundPickup,
		SoundLevelUp, SoundBossSpawn, SoundWaveComplete, SoundGameOver,
	}
	for _, st := range types {
		s := sm.createSound(st)
		if s == nil {
			t.Fatalf("Sound %d has no generator", st)
		}
		if len(drain(t, s)) == 0 {
			t.Errorf("Sound %d produced no samples", st)
		}
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	sm := NewSoundManager(0)
	for _, s := range drain(t, sm.createSound(SoundExplosion)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatal("Zero master volume should produce silence")
		}
	}
}

func TestPlayWithoutInitializeIsInert(t *testing.T) {
	sm := NewSoundManager(0.7)
	// Must not panic or touch the speaker
	sm.Play(SoundSwing)
	sm.Cleanup()
}
