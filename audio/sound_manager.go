package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/events"
)

// SoundType identifies a generated sound effect
type SoundType int

const (
	SoundSwing SoundType = iota
	SoundArrow
	SoundThrow
	SoundExplosion
	SoundDodge
	SoundHurt
	SoundKill
	SoundPickup
	SoundLevelUp
	SoundBossSpawn
	SoundWaveComplete
	SoundGameOver
)

// SoundManager plays generated effects through the speaker. A failed
// speaker init leaves the manager silent rather than failing the game.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume
func NewSoundManager(masterVolume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(constants.AudioSampleRate),
		volume: masterVolume,
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. beep has no speaker close, clearing the
// mixer is the shutdown.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play mixes in a one-shot effect
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := sm.createSound(st)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents maps drained game events onto sound effects
func (sm *SoundManager) HandleEvents(evs []events.GameEvent) {
	for _, ev := range evs {
		switch ev.Type {
		case events.EventSwordSwing:
			sm.Play(SoundSwing)
		case events.EventArrowFired:
			sm.Play(SoundArrow)
		case events.EventBombThrown:
			sm.Play(SoundThrow)
		case events.EventExplosion, events.EventObstructionDestroyed:
			sm.Play(SoundExplosion)
		case events.EventDodge:
			sm.Play(SoundDodge)
		case events.EventPlayerHurt:
			sm.Play(SoundHurt)
		case events.EventEnemyKilled, events.EventBossKilled:
			sm.Play(SoundKill)
		case events.EventItemPickup:
			sm.Play(SoundPickup)
		case events.EventLevelUp:
			sm.Play(SoundLevelUp)
		case events.EventWaveStarted:
			sm.Play(SoundBossSpawn)
		case events.EventWaveComplete:
			sm.Play(SoundWaveComplete)
		case events.EventGameOver:
			sm.Play(SoundGameOver)
		}
	}
}

func (sm *SoundManager) createSound(st SoundType) beep.Streamer {
	switch st {
	case SoundSwing:
		return createSwingSound(sm.rate, sm.volume)
	case SoundArrow:
		return createArrowSound(sm.rate, sm.volume)
	case SoundThrow:
		return createThrowSound(sm.rate, sm.volume)
	case SoundExplosion:
		return createExplosionSound(sm.rate, sm.volume)
	case SoundDodge:
		return createDodgeSound(sm.rate, sm.volume)
	case SoundHurt:
		return createHurtSound(sm.rate, sm.volume)
	case SoundKill:
		return createKillSound(sm.rate, sm.volume)
	case SoundPickup:
		return createPickupSound(sm.rate, sm.volume)
	case SoundLevelUp:
		return createLevelUpSound(sm.rate, sm.volume)
	case SoundBossSpawn:
		return createBossSound(sm.rate, sm.volume)
	case SoundWaveComplete:
		return createWaveCompleteSound(sm.rate, sm.volume)
	case SoundGameOver:
		return createGameOverSound(sm.rate, sm.volume)
	default:
		return nil
	}
}
