package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// ones streams constant full-scale samples
type ones struct{}

func (ones) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0], samples[i][1] = 1, 1
	}
	return len(samples), true
}

func (ones) Err() error { return nil }

// TestFaderRampUp verifies a linear fade-in reaches full gain
func TestFaderRampUp(t *testing.T) {
	sr := beep.SampleRate(1000)
	f := newFader(ones{}, 0)
	f.fadeTo(1, 100*time.Millisecond, sr) // 100 samples

	samples := make([][2]float64, 100)
	n, ok := f.Stream(samples)
	if n != 100 || !ok {
		t.Fatalf("Expected full stream, got n=%d ok=%v", n, ok)
	}

	if samples[0][0] > 0.05 {
		t.Errorf("Expected near-silent first sample, got %f", samples[0][0])
	}
	for i := 1; i < n; i++ {
		if samples[i][0] < samples[i-1][0] {
			t.Fatalf("Expected monotonic ramp, dropped at sample %d", i)
		}
	}
	if samples[n-1][0] < 0.99 {
		t.Errorf("Expected full gain at ramp end, got %f", samples[n-1][0])
	}

	// Past the ramp the gain holds at target
	f.Stream(samples[:10])
	if samples[0][0] != 1 {
		t.Errorf("Expected steady gain 1 after ramp, got %f", samples[0][0])
	}
}

// TestFaderZeroDuration verifies an instant fade snaps the gain
func TestFaderZeroDuration(t *testing.T) {
	sr := beep.SampleRate(1000)
	f := newFader(ones{}, 0)
	f.fadeTo(1, 0, sr)

	samples := make([][2]float64, 4)
	f.Stream(samples)
	if samples[0][0] != 1 {
		t.Errorf("Expected immediate full gain, got %f", samples[0][0])
	}
}

// TestFaderKillWhenSilent verifies a fading-out track drains itself
func TestFaderKillWhenSilent(t *testing.T) {
	sr := beep.SampleRate(1000)
	f := newFader(ones{}, 1)
	f.killWhenSilent = true
	f.fadeTo(0, 10*time.Millisecond, sr) // 10 samples

	samples := make([][2]float64, 64)
	n, ok := f.Stream(samples)
	if n != 64 || !ok {
		t.Fatalf("Expected final batch to stream, got n=%d ok=%v", n, ok)
	}
	if samples[63][0] != 0 {
		t.Errorf("Expected silence at batch end, got %f", samples[63][0])
	}

	n, ok = f.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected drained fader to report end, got n=%d ok=%v", n, ok)
	}
}
