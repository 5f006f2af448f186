package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func newTestMusic() (*Music, *beep.Mixer) {
	mixer := &beep.Mixer{}
	return newMusic(mixer, beep.SampleRate(44100), 0.5), mixer
}

// TestCrossfadeTo verifies tracks enter the mixer and repeat calls no-op
func TestCrossfadeTo(t *testing.T) {
	m, mixer := newTestMusic()
	buf := testBuffer(beep.SampleRate(44100), time.Second)

	if m.Playing() != "" {
		t.Error("Expected idle channel")
	}

	m.CrossfadeTo("home", buf, 0)
	if m.Playing() != "home" {
		t.Errorf("Expected playing home, got %q", m.Playing())
	}
	if mixer.Len() != 1 {
		t.Errorf("Expected 1 mixer entry, got %d", mixer.Len())
	}

	// Crossfading to the already-playing track is a no-op
	m.CrossfadeTo("home", buf, time.Second)
	if mixer.Len() != 1 {
		t.Errorf("Expected repeat crossfade to no-op, got %d entries", mixer.Len())
	}
}

// TestCrossfadeDrainsOldTrack verifies the outgoing track leaves the mixer
func TestCrossfadeDrainsOldTrack(t *testing.T) {
	sr := beep.SampleRate(44100)
	m, mixer := newTestMusic()

	m.CrossfadeTo("home", testBuffer(sr, time.Second), 0)
	m.CrossfadeTo("cave", testBuffer(sr, time.Second), 10*time.Millisecond)

	if mixer.Len() != 2 {
		t.Fatalf("Expected both tracks during the fade, got %d", mixer.Len())
	}

	// Drain well past the fade; the dead track is dropped by the mixer
	samples := make([][2]float64, 512)
	for i := 0; i < 200; i++ {
		mixer.Stream(samples)
	}
	if mixer.Len() != 1 {
		t.Errorf("Expected old track drained after fade, got %d entries", mixer.Len())
	}
	if m.Playing() != "cave" {
		t.Errorf("Expected playing cave, got %q", m.Playing())
	}
}

// TestPauseResume verifies the pause latch
func TestPauseResume(t *testing.T) {
	m, _ := newTestMusic()

	// Pausing an idle channel is harmless
	m.Pause()
	if m.Paused() {
		t.Error("Expected idle channel to report unpaused")
	}

	m.CrossfadeTo("home", testBuffer(beep.SampleRate(44100), time.Second), 0)
	m.Pause()
	if !m.Paused() {
		t.Error("Expected paused after Pause")
	}
	m.Resume()
	if m.Paused() {
		t.Error("Expected unpaused after Resume")
	}
}

// TestSeekPosition verifies seeking moves the track offset
func TestSeekPosition(t *testing.T) {
	sr := beep.SampleRate(44100)
	m, _ := newTestMusic()

	if err := m.Seek(time.Second); err == nil {
		t.Error("Expected seek on idle channel to error")
	}

	m.CrossfadeTo("home", testBuffer(sr, time.Second), 0)
	if m.Position() != 0 {
		t.Errorf("Expected position 0 at start, got %v", m.Position())
	}

	if err := m.Seek(250 * time.Millisecond); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	if m.Position() != 250*time.Millisecond {
		t.Errorf("Expected position 250ms, got %v", m.Position())
	}
}
