package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// ImpactThreshold is the minimum collision response length that plays an impact
// Bodies resting on the ground resolve a gravity-sized response every frame and stay quiet
const ImpactThreshold = 0.25

// Impact sound
const (
	ImpactSoundDuration = 90 * time.Millisecond
	ImpactSoundAttack   = 2 * time.Millisecond
	ImpactSoundRelease  = 70 * time.Millisecond
	ImpactBaseFreq      = 140.0 // Hz
	ImpactFreqPerUnit   = 60.0  // Hz per unit of response length
	ImpactMaxStrength   = 4.0
)

// Explosion sound
const (
	ExplosionSoundDuration = 700 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 600 * time.Millisecond
	ExplosionRumbleFreq    = 48.0 // Hz
	ExplosionMaxRadius     = 10.0
)
