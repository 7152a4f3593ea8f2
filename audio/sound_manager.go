// Package audio plays short procedural cues for game events. Every
// sound is synthesized at play time; there are no sample assets.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager mixes one-shot cue voices into the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       bool
}

// NewSoundManager creates an inert sound manager; call Initialize to
// open the speaker
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2, Volume: -1},
	}
}

// Initialize opens the speaker and starts the mixer.
// On failure the manager stays inert and Play calls are no-ops.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	sm.volume.Silent = sm.muted
	return nil
}

// Cleanup drops all queued cues
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

// SetMuted silences or restores the output without dropping cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.initialized {
		speaker.Lock()
		sm.volume.Silent = muted
		speaker.Unlock()
	}
}

// Toggle flips the mute state and returns the new value
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.volume.Silent = sm.muted
		speaker.Unlock()
	}
	return sm.muted
}

// Muted reports the current mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// play queues a cue for d; silently dropped when uninitialized or muted
func (sm *SoundManager) play(d time.Duration, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), s))
	speaker.Unlock()
}

// PlayFire is the falling blip of a projectile leaving the cannon
func (sm *SoundManager) PlayFire() {
	sm.play(80*time.Millisecond, newSweepVoice(620, 280, 0.080, 0.18))
}

// PlayImpact is the hit ping; crits ring an octave higher
func (sm *SoundManager) PlayImpact(crit bool) {
	freq := 440.0
	if crit {
		freq = 880.0
	}
	sm.play(60*time.Millisecond, newTickVoice(freq, 0.22))
}

// PlayBounce is the rising chirp of a ricochet redirect
func (sm *SoundManager) PlayBounce() {
	sm.play(90*time.Millisecond, newSweepVoice(420, 760, 0.090, 0.16))
}

// PlayChain is the vibrato zap of a lightning hop
func (sm *SoundManager) PlayChain() {
	sm.play(100*time.Millisecond, newZapVoice(900, 0.14))
}

// PlayExplosion is a noise burst over a low rumble
func (sm *SoundManager) PlayExplosion() {
	sm.play(300*time.Millisecond, newCrackleVoice(0.25, 80, 0.30, 0.30))
}

// PlayIgnite is a short dry crackle when a burn lands
func (sm *SoundManager) PlayIgnite() {
	sm.play(120*time.Millisecond, newCrackleVoice(0.15, 0, 0, 0.12))
}

// PlayKill is the long falling sweep of a dying target
func (sm *SoundManager) PlayKill() {
	sm.play(200*time.Millisecond, newSweepVoice(380, 70, 0.200, 0.22))
}
