package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the playback rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration sizes the speaker buffer. Larger is safer
	// against underruns, smaller is lower latency.
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound Effect Shaping
const (
	SwingSoundDuration = 90 * time.Millisecond
	SwingSoundAttack   = 5 * time.Millisecond
	SwingSoundRelease  = 50 * time.Millisecond

	ArrowSoundDuration = 120 * time.Millisecond
	ArrowSoundAttack   = 2 * time.Millisecond
	ArrowSoundRelease  = 80 * time.Millisecond

	ThrowSoundDuration = 150 * time.Millisecond
	ThrowSoundAttack   = 10 * time.Millisecond
	ThrowSoundRelease  = 100 * time.Millisecond

	ExplosionSoundDuration = 400 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 300 * time.Millisecond

	DodgeSoundDuration = 100 * time.Millisecond
	DodgeSoundAttack   = 5 * time.Millisecond
	DodgeSoundRelease  = 70 * time.Millisecond

	HurtSoundDuration = 150 * time.Millisecond
	HurtSoundAttack   = 2 * time.Millisecond
	HurtSoundRelease  = 100 * time.Millisecond

	KillSoundDuration = 120 * time.Millisecond
	KillSoundAttack   = 2 * time.Millisecond
	KillSoundRelease  = 90 * time.Millisecond

	PickupSoundNoteDuration = 80 * time.Millisecond
	PickupSoundAttack       = 2 * time.Millisecond
	PickupSoundRelease      = 60 * time.Millisecond

	LevelUpSoundNoteDuration = 100 * time.Millisecond
	LevelUpSoundAttack       = 5 * time.Millisecond
	LevelUpSoundRelease      = 70 * time.Millisecond

	BossSoundDuration = 500 * time.Millisecond
	BossSoundAttack   = 50 * time.Millisecond
	BossSoundRelease  = 300 * time.Millisecond

	GameOverSoundNoteDuration = 250 * time.Millisecond
	GameOverSoundAttack       = 10 * time.Millisecond
	GameOverSoundRelease      = 180 * time.Millisecond
)
