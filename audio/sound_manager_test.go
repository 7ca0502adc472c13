package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the samples
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

// TestOscillatorLength verifies the oscillator stops after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	samples := drain(osc)
	if len(samples) != rate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(10*time.Millisecond), len(samples))
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorRangeAndFade verifies samples stay in [-1, 1] and decay
func TestOscillatorRangeAndFade(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveNoise} {
		samples := drain(NewOscillator(1200, 20*time.Millisecond, wave, sampleRate))
		if len(samples) == 0 {
			t.Fatalf("wave %d produced no samples", wave)
		}

		for i, s := range samples {
			if s[0] < -1.0 || s[0] > 1.0 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d invalid: %v", wave, i, s)
			}
		}

		last := samples[len(samples)-1][0]
		if math.Abs(last) > 0.01 {
			t.Errorf("wave %d expected faded tail, got %f", wave, last)
		}
	}
}

// TestSquareFirstHalfPositive verifies the square wave starts high
func TestSquareFirstHalfPositive(t *testing.T) {
	samples := drain(NewOscillator(100, 5*time.Millisecond, WaveSquare, sampleRate))
	if samples[0][0] != 1.0 {
		t.Errorf("Expected first square sample 1.0, got %f", samples[0][0])
	}
}

// TestFeedbackStreamers verifies each feedback sound is finite and non-empty
func TestFeedbackStreamers(t *testing.T) {
	tests := map[string]beep.Streamer{
		"typewriter": typewriterClick(),
		"keystroke":  keystrokeClick(),
		"return":     returnBell(),
	}
	for name, s := range tests {
		if s == nil {
			t.Fatalf("%s: nil streamer", name)
		}
		n := len(drain(s))
		if n == 0 {
			t.Errorf("%s: no samples", name)
		}
		if n > sampleRate.N(time.Second) {
			t.Errorf("%s: %d samples is too long for feedback", name, n)
		}
	}
}

// TestWithVolume verifies gain scaling and muting
func TestWithVolume(t *testing.T) {
	full := drain(withVolume(NewOscillator(100, 5*time.Millisecond, WaveSquare, sampleRate), 1))
	half := drain(withVolume(NewOscillator(100, 5*time.Millisecond, WaveSquare, sampleRate), 0.5))
	mute := drain(withVolume(NewOscillator(100, 5*time.Millisecond, WaveSquare, sampleRate), 0))

	if math.Abs(half[0][0]-full[0][0]/2) > 1e-9 {
		t.Errorf("Expected half gain, full=%f half=%f", full[0][0], half[0][0])
	}
	for _, s := range mute {
		if s[0] != 0 {
			t.Fatalf("Expected silence, got %f", s[0])
		}
	}
}

// TestUninitializedManagerIsSilent verifies play calls without a speaker are no-ops
func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager(2)
	if sm.volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", sm.volume)
	}
	sm.PlayTypewriter()
	sm.PlayKeystroke()
	sm.PlayReturn()
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
	if sm.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer, got %d streamers", sm.mixer.Len())
	}
}
