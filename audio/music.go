package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Music is the single background music channel. At steady state one
// track is audible; CrossfadeTo ramps the old track out and the new one
// in over the fade duration.
type Music struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	out        *beep.Mixer
	gain       float64
	current    *musicTrack
}

// musicTrack is one playing chain: seeker -> loop -> fader -> volume -> ctrl
type musicTrack struct {
	name   string
	seeker beep.StreamSeeker
	fader  *fader
	vol    *effects.Volume
	ctrl   *beep.Ctrl
}

// newMusic creates a music channel feeding the given mixer
func newMusic(out *beep.Mixer, sampleRate beep.SampleRate, gain float64) *Music {
	return &Music{
		sampleRate: sampleRate,
		out:        out,
		gain:       gain,
	}
}

// CrossfadeTo starts the named track, fading the current one out and the
// new one in over the fade duration. A zero duration switches instantly.
func (m *Music) CrossfadeTo(name string, buf *beep.Buffer, fade time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()

	if m.current != nil {
		if m.current.name == name {
			return
		}
		// The dying track drains itself out of the mixer once silent
		m.current.fader.killWhenSilent = true
		m.current.fader.fadeTo(0, fade, m.sampleRate)
	}

	seeker := buf.Streamer(0, buf.Len())
	f := newFader(beep.Loop(-1, seeker), 0)
	f.fadeTo(1, fade, m.sampleRate)

	vol := &effects.Volume{
		Streamer: f,
		Base:     2,
		Volume:   gainToVolume(m.gain),
		Silent:   m.gain == 0,
	}
	ctrl := &beep.Ctrl{Streamer: vol}

	m.current = &musicTrack{
		name:   name,
		seeker: seeker,
		fader:  f,
		vol:    vol,
		ctrl:   ctrl,
	}
	m.out.Add(ctrl)
}

// Pause halts the current track in place
func (m *Music) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	if m.current != nil {
		m.current.ctrl.Paused = true
	}
}

// Resume continues a paused track
func (m *Music) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	if m.current != nil {
		m.current.ctrl.Paused = false
	}
}

// Paused reports whether the channel is paused
func (m *Music) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	return m.current != nil && m.current.ctrl.Paused
}

// Seek moves the current track to the given offset
func (m *Music) Seek(offset time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	if m.current == nil {
		return fmt.Errorf("no music playing")
	}
	return m.current.seeker.Seek(m.sampleRate.N(offset))
}

// Position returns the current track offset
func (m *Music) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	if m.current == nil {
		return 0
	}
	return m.sampleRate.D(m.current.seeker.Position())
}

// Playing returns the current track name, empty when idle
func (m *Music) Playing() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.name
}

// SetGain updates the channel volume (0.0-1.0)
func (m *Music) SetGain(gain float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	m.gain = gain
	if m.current != nil {
		m.current.vol.Volume = gainToVolume(gain)
		m.current.vol.Silent = gain == 0
	}
}

// gainToVolume converts a linear gain to a base-2 Volume exponent
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
