package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings holds user-tunable game configuration
type Settings struct {
	// Title is the window title
	Title string `yaml:"title"`

	// Scale multiplies the viewport size for the OS window
	Scale int `yaml:"scale"`

	// AssetRoot is the directory holding maps, tilesets, images, and audio
	AssetRoot string `yaml:"asset_root"`

	// MasterVolume scales all audio output (0.0-1.0)
	MasterVolume float64 `yaml:"master_volume"`

	// MusicVolume scales the music channel (0.0-1.0)
	MusicVolume float64 `yaml:"music_volume"`

	// SFXVolume scales sound effect voices (0.0-1.0)
	SFXVolume float64 `yaml:"sfx_volume"`

	// AudioEnabled gates speaker initialization
	AudioEnabled bool `yaml:"audio_enabled"`

	// StartMap is the map key the session opens on
	StartMap string `yaml:"start_map"`
}

// Default returns the baseline settings
func Default() *Settings {
	return &Settings{
		Title:        "Canvas Game",
		Scale:        2,
		AssetRoot:    "assets",
		MasterVolume: 0.8,
		MusicVolume:  0.6,
		SFXVolume:    1.0,
		AudioEnabled: true,
		StartMap:     "home",
	}
}

// Load reads settings from a YAML file, falling back to defaults for
// absent fields, then applies environment overrides
func Load(path string) (*Settings, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.clamp()
	return cfg, nil
}

// applyEnv applies environment variable overrides
func (s *Settings) applyEnv() {
	if v := os.Getenv("CANVASGAME_ASSET_ROOT"); v != "" {
		s.AssetRoot = v
	}
	if v := os.Getenv("CANVASGAME_START_MAP"); v != "" {
		s.StartMap = v
	}
	if v := os.Getenv("CANVASGAME_AUDIO_ENABLED"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			s.AudioEnabled = val
		}
	}
	if v := os.Getenv("CANVASGAME_MASTER_VOLUME"); v != "" {
		// 0-100 converted to 0.0-1.0
		if val, err := strconv.Atoi(v); err == nil {
			s.MasterVolume = float64(val) / 100.0
		}
	}
}

// clamp bounds volumes to [0, 1] and scale to a sane minimum
func (s *Settings) clamp() {
	clamp01 := func(f *float64) {
		if *f < 0 {
			*f = 0
		}
		if *f > 1 {
			*f = 1
		}
	}
	clamp01(&s.MasterVolume)
	clamp01(&s.MusicVolume)
	clamp01(&s.SFXVolume)
	if s.Scale < 1 {
		s.Scale = 1
	}
}
