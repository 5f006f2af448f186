package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// fader applies a sample-accurate linear gain ramp to a wrapped streamer.
// Mutations must happen under the speaker lock once the chain is playing.
type fader struct {
	s      beep.Streamer
	gain   float64
	target float64
	step   float64 // gain change per sample while ramping

	// killWhenSilent drains the streamer once it has faded to zero so the
	// mixer drops it
	killWhenSilent bool
	dead           bool
}

// newFader wraps a streamer starting at the given gain
func newFader(s beep.Streamer, gain float64) *fader {
	return &fader{s: s, gain: gain, target: gain}
}

// fadeTo ramps the gain to target over the given duration
func (f *fader) fadeTo(target float64, d time.Duration, sr beep.SampleRate) {
	f.target = target
	n := sr.N(d)
	if n <= 0 {
		f.gain = target
		f.step = 0
		return
	}
	diff := target - f.gain
	if diff < 0 {
		diff = -diff
	}
	f.step = diff / float64(n)
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.dead {
		return 0, false
	}

	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		if f.gain != f.target {
			if f.gain < f.target {
				f.gain += f.step
				if f.gain > f.target {
					f.gain = f.target
				}
			} else {
				f.gain -= f.step
				if f.gain < f.target {
					f.gain = f.target
				}
			}
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}

	if f.killWhenSilent && f.gain == 0 && f.target == 0 {
		f.dead = true
	}
	return n, ok
}

func (f *fader) Err() error {
	return f.s.Err()
}
