package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/joel-heath/JSCanvasGame/asset"
	"github.com/joel-heath/JSCanvasGame/audio"
	"github.com/joel-heath/JSCanvasGame/config"
	"github.com/joel-heath/JSCanvasGame/constants"
	"github.com/joel-heath/JSCanvasGame/core"
)

type loadResult struct {
	assets *asset.Assets
	err    error
}

// Game is the ebiten frame driver. It has two states: idle while assets
// load, running once the session exists. A load failure is terminal; the
// canvas shows a static error and nothing retries.
type Game struct {
	cfg   *config.Settings
	sound *audio.Manager
	clock core.TimeProvider

	loadCh  chan loadResult
	loadErr error
	session *Session
}

// New creates the game and starts loading assets in the background
func New(cfg *config.Settings, sound *audio.Manager, clock core.TimeProvider) *Game {
	g := &Game{
		cfg:    cfg,
		sound:  sound,
		clock:  clock,
		loadCh: make(chan loadResult, 1),
	}

	go func() {
		loader := asset.NewLoader(cfg.AssetRoot)
		assets, err := loader.Load()
		if err == nil {
			err = loader.LoadAudio(sound)
		}
		g.loadCh <- loadResult{assets: assets, err: err}
	}()

	return g
}

// Update advances one frame. Idle frames poll for load completion; the
// idle-to-running transition happens exactly once.
func (g *Game) Update() error {
	if g.session != nil {
		g.session.Step()
		return nil
	}
	if g.loadErr != nil {
		return nil
	}

	select {
	case res := <-g.loadCh:
		if res.err != nil {
			g.loadErr = res.err
			logrus.WithError(res.err).Error("Asset loading failed")
			return nil
		}
		session, err := NewSession(g.cfg, res.assets, g.sound, g.clock)
		if err != nil {
			g.loadErr = err
			logrus.WithError(err).Error("Session setup failed")
			return nil
		}
		g.session = session
	default:
	}
	return nil
}

// Draw renders the frame for the current state
func (g *Game) Draw(screen *ebiten.Image) {
	switch {
	case g.session != nil:
		g.session.Draw(screen)
	case g.loadErr != nil:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Failed to start: %v", g.loadErr))
	default:
		ebitenutil.DebugPrint(screen, "Loading...")
	}
}

// Layout fixes the logical canvas size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.ViewportWidth, constants.ViewportHeight
}
