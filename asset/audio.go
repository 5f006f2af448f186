package asset

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/joel-heath/JSCanvasGame/audio"
)

// soundFiles maps logical sound ids to their files under the asset root
var soundFiles = map[audio.SoundID]string{
	audio.SoundStep:       "audio/sfx/step.wav",
	audio.SoundBump:       "audio/sfx/bump.wav",
	audio.SoundDoor:       "audio/sfx/door.wav",
	audio.SoundTeleport:   "audio/sfx/teleport.wav",
	audio.SoundRebound:    "audio/sfx/rebound.wav",
	audio.SoundMenuSelect: "audio/sfx/menu_select.wav",
}

// LoadAudio decodes every sound effect and music track into the manager.
// Like Load, any single failure aborts startup.
func (l *Loader) LoadAudio(mgr *audio.Manager) error {
	var g errgroup.Group

	for id, rel := range soundFiles {
		g.Go(func() error {
			buf, err := audio.LoadBuffer(filepath.Join(l.root, rel), mgr.SampleRate())
			if err != nil {
				return err
			}
			mgr.RegisterSound(id, buf)
			return nil
		})
	}

	musicDir := filepath.Join(l.root, "audio", "music")
	for _, pattern := range []string{"*.ogg", "*.wav"} {
		paths, err := filepath.Glob(filepath.Join(musicDir, pattern))
		if err != nil {
			return fmt.Errorf("failed to scan music dir: %w", err)
		}
		for _, path := range paths {
			g.Go(func() error {
				buf, err := audio.LoadBuffer(path, mgr.SampleRate())
				if err != nil {
					return err
				}
				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				mgr.RegisterTrack(name, buf)
				return nil
			})
		}
	}

	return g.Wait()
}
