package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	typewriterDuration = 8 * time.Millisecond
	keystrokeDuration  = 12 * time.Millisecond
	returnDuration     = 60 * time.Millisecond
)

// SoundManager plays console feedback through the speaker
// Implements console.Sound; every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // 0..1
	initialized bool
}

// NewSoundManager creates a manager with volume in 0..1
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Initialized returns true while the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayTypewriter plays the short noise click of an output character
func (sm *SoundManager) PlayTypewriter() {
	sm.play(typewriterClick())
}

// PlayKeystroke plays the click of an accepted input key
func (sm *SoundManager) PlayKeystroke() {
	sm.play(keystrokeClick())
}

// PlayReturn plays the carriage-return bell of a submitted line
func (sm *SoundManager) PlayReturn() {
	sm.play(returnBell())
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

func typewriterClick() beep.Streamer {
	return NewOscillator(0, typewriterDuration, WaveNoise, sampleRate)
}

func keystrokeClick() beep.Streamer {
	return NewOscillator(1200, keystrokeDuration, WaveSquare, sampleRate)
}

// returnBell is two sine tones in sequence
func returnBell() beep.Streamer {
	high, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return nil
	}
	low, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return nil
	}
	n := sampleRate.N(returnDuration / 2)
	return beep.Seq(beep.Take(n, high), beep.Take(n, low))
}

// withVolume scales s by a linear gain expressed as a base-2 exponent
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
