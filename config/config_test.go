package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault verifies baseline settings
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Expected non-nil default config")
	}
	if !cfg.AudioEnabled {
		t.Error("Expected default config to have AudioEnabled=true")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected default master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.Scale < 1 {
		t.Errorf("Expected default scale >= 1, got %d", cfg.Scale)
	}
	if cfg.StartMap == "" {
		t.Error("Expected default start map to be set")
	}
}

// TestLoadMissingFile verifies a bad path is a hard error
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

// TestLoadFile verifies partial YAML overrides defaults
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "title: Overworld\nmusic_volume: 0.25\nstart_map: cave\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "Overworld" {
		t.Errorf("Expected title Overworld, got %q", cfg.Title)
	}
	if cfg.MusicVolume != 0.25 {
		t.Errorf("Expected music volume 0.25, got %f", cfg.MusicVolume)
	}
	if cfg.StartMap != "cave" {
		t.Errorf("Expected start map cave, got %q", cfg.StartMap)
	}
	// Unset fields keep defaults
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected default master volume 0.8, got %f", cfg.MasterVolume)
	}
}

// TestLoadEnvOverride verifies env vars win over file values
func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CANVASGAME_MASTER_VOLUME", "150")
	t.Setenv("CANVASGAME_START_MAP", "dungeon")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StartMap != "dungeon" {
		t.Errorf("Expected start map dungeon, got %q", cfg.StartMap)
	}
	// 150% clamps to 1.0
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected master volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
}
