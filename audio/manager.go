package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/joel-heath/JSCanvasGame/core"
)

// Config holds audio engine settings
type Config struct {
	SampleRate   int
	BufferLen    time.Duration
	MasterVolume float64
	MusicVolume  float64
	SFXVolume    float64
	// Cooldown throttles repeat plays of the same sound effect
	Cooldown time.Duration
	Enabled  bool
}

// DefaultConfig returns the baseline audio configuration
func DefaultConfig() *Config {
	return &Config{
		SampleRate:   44100,
		BufferLen:    100 * time.Millisecond,
		MasterVolume: 0.8,
		MusicVolume:  0.6,
		SFXVolume:    1.0,
		Cooldown:     150 * time.Millisecond,
		Enabled:      true,
	}
}

// Manager owns the speaker, the music channel, and sound effect voices.
// All output flows through one mixer. While the speaker is down nothing
// drains the mixer, so playback refuses to queue streamers until
// Initialize has succeeded.
type Manager struct {
	mu    sync.Mutex
	clock core.TimeProvider

	config     *Config
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	music      *Music

	sounds     map[SoundID]*beep.Buffer
	tracks     map[string]*beep.Buffer
	lastPlayed map[SoundID]time.Time

	initialized atomic.Bool
	muted       atomic.Bool
}

// NewManager creates an audio manager; Initialize starts the speaker
func NewManager(cfg *Config, clock core.TimeProvider) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if clock == nil {
		clock = core.SystemTimeProvider{}
	}

	sr := beep.SampleRate(cfg.SampleRate)
	mixer := &beep.Mixer{}
	m := &Manager{
		clock:      clock,
		config:     cfg,
		sampleRate: sr,
		mixer:      mixer,
		music:      newMusic(mixer, sr, cfg.MusicVolume*cfg.MasterVolume),
		sounds:     make(map[SoundID]*beep.Buffer),
		tracks:     make(map[string]*beep.Buffer),
		lastPlayed: make(map[SoundID]time.Time),
	}
	m.muted.Store(!cfg.Enabled)
	return m
}

// Initialize opens the speaker and starts draining the mixer
func (m *Manager) Initialize() error {
	if m.initialized.Load() {
		return nil
	}
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(m.config.BufferLen)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized.Store(true)
	return nil
}

// Close silences all output
func (m *Manager) Close() {
	if !m.initialized.CompareAndSwap(true, false) {
		return
	}
	speaker.Clear()
}

// Music returns the background music channel
func (m *Manager) Music() *Music {
	return m.music
}

// SampleRate returns the playback sample rate
func (m *Manager) SampleRate() beep.SampleRate {
	return m.sampleRate
}

// RegisterSound associates a decoded buffer with a sound id
func (m *Manager) RegisterSound(id SoundID, buf *beep.Buffer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sounds[id] = buf
}

// RegisterTrack associates a decoded buffer with a music track name
func (m *Manager) RegisterTrack(name string, buf *beep.Buffer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tracks[name] = buf
}

// PlayMusic crossfades the music channel to a registered track. Unknown
// tracks error; a speaker that never came up makes this a silent no-op.
func (m *Manager) PlayMusic(name string, fade time.Duration) error {
	m.mu.Lock()
	buf, ok := m.tracks[name]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown music track %q", name)
	}
	if !m.initialized.Load() {
		return nil
	}
	m.music.CrossfadeTo(name, buf, fade)
	return nil
}

// PlaySound starts a sound effect voice. Returns nil when the speaker is
// not running, the manager is muted, the sound is unknown, or the same
// sound played within its cooldown window.
func (m *Manager) PlaySound(id SoundID, opts PlayOptions) *Voice {
	if !m.initialized.Load() || m.muted.Load() {
		return nil
	}

	m.mu.Lock()
	buf, ok := m.sounds[id]
	if !ok {
		m.mu.Unlock()
		return nil
	}

	cooldown := opts.Cooldown
	if cooldown == 0 {
		cooldown = m.config.Cooldown
	}
	now := m.clock.Now()
	if last, played := m.lastPlayed[id]; played && now.Sub(last) < cooldown {
		m.mu.Unlock()
		return nil
	}
	m.lastPlayed[id] = now

	gain := m.config.SFXVolume * m.config.MasterVolume
	m.mu.Unlock()

	if opts.Volume > 0 {
		gain *= opts.Volume
	}

	seeker := buf.Streamer(0, buf.Len())
	var s beep.Streamer = seeker
	if opts.Loop {
		s = beep.Loop(-1, seeker)
	}

	vol := &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   gainToVolume(gain),
		Silent:   gain == 0,
	}
	ctrl := &beep.Ctrl{Streamer: vol}

	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()

	return &Voice{ctrl: ctrl, vol: vol}
}

// ToggleMute toggles mute state, returns true if audio is now enabled
func (m *Manager) ToggleMute() bool {
	newMute := !m.muted.Load()
	m.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (m *Manager) IsMuted() bool {
	return m.muted.Load()
}
