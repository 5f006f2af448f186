package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/joel-heath/JSCanvasGame/core"
	"github.com/joel-heath/JSCanvasGame/tiled"
)

// Assets is the loaded, immutable game content
type Assets struct {
	Maps       map[string]*core.Map
	Player     *ebiten.Image
	PlayerMask *core.Mask
}

// Loader reads the asset tree:
//
//	root/
//	  player.png
//	  maps/        *.tmj maps, *.tsx tilesets, referenced images
//	  audio/music/ background tracks (ogg/wav)
//	  audio/sfx/   sound effects (wav)
type Loader struct {
	root string
}

// NewLoader creates a loader rooted at the given directory
func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Load fetches and decodes every map, tileset, and image. All fetches
// fan out concurrently; the first failure aborts the whole load.
func (l *Loader) Load() (*Assets, error) {
	mapsDir := filepath.Join(l.root, "maps")
	paths, err := filepath.Glob(filepath.Join(mapsDir, "*.tmj"))
	if err != nil || len(paths) == 0 {
		return nil, fmt.Errorf("no maps found under %s", mapsDir)
	}

	// Stage 1: parse all map documents
	var mu sync.Mutex
	docs := make(map[string]*tiled.Map, len(paths))
	var g errgroup.Group
	for _, path := range paths {
		g.Go(func() error {
			doc, err := tiled.LoadMap(path)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(path), ".tmj")
			mu.Lock()
			docs[name] = doc
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 2: parse every referenced tileset
	tsxSources := make(map[string]bool)
	for _, doc := range docs {
		for _, ref := range doc.Tilesets {
			tsxSources[ref.Source] = true
		}
	}
	tilesets := make(map[string]*tiled.Tileset, len(tsxSources))
	for source := range tsxSources {
		g.Go(func() error {
			ts, err := tiled.LoadTileset(filepath.Join(mapsDir, source))
			if err != nil {
				return err
			}
			mu.Lock()
			tilesets[source] = ts
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 3: decode every image exactly once
	imagePaths := make(map[string]bool)
	for _, ts := range tilesets {
		for _, tile := range ts.Tiles {
			imagePaths[filepath.Join(mapsDir, tile.Image.Source)] = true
		}
	}
	for _, doc := range docs {
		if bg := doc.LayerByName(tiled.LayerBackground); bg != nil && bg.Image != "" {
			imagePaths[filepath.Join(mapsDir, bg.Image)] = true
		}
	}

	images := make(map[string]*ebiten.Image, len(imagePaths))
	for path := range imagePaths {
		g.Go(func() error {
			img, _, err := loadImage(path)
			if err != nil {
				return err
			}
			mu.Lock()
			images[path] = img
			mu.Unlock()
			return nil
		})
	}

	var player *ebiten.Image
	var playerMask *core.Mask
	g.Go(func() error {
		img, raw, err := loadImage(filepath.Join(l.root, "player.png"))
		if err != nil {
			return err
		}
		player = img
		playerMask = core.NewMaskFromImage(raw)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 4: assemble runtime maps; door destinations validate against
	// the full map set
	mapNames := make(map[string]bool, len(docs))
	for name := range docs {
		mapNames[name] = true
	}

	assets := &Assets{
		Maps:       make(map[string]*core.Map, len(docs)),
		Player:     player,
		PlayerMask: playerMask,
	}
	for name, doc := range docs {
		resolve := func(gid uint32) *ebiten.Image {
			ref, local, ok := doc.ResolveGID(gid)
			if !ok {
				return nil
			}
			ts := tilesets[ref.Source]
			if ts == nil {
				return nil
			}
			source, ok := ts.ImageSource(local)
			if !ok {
				return nil
			}
			return images[filepath.Join(mapsDir, source)]
		}

		var background *ebiten.Image
		if bg := doc.LayerByName(tiled.LayerBackground); bg != nil && bg.Image != "" {
			background = images[filepath.Join(mapsDir, bg.Image)]
		}

		assets.Maps[name] = l.buildMap(name, doc, mapNames, resolve, background)
	}

	logrus.WithFields(logrus.Fields{
		"maps":   len(assets.Maps),
		"images": len(images),
	}).Info("Assets loaded")
	return assets, nil
}

// loadImage decodes a PNG into an ebiten image plus the raw pixels
func loadImage(path string) (*ebiten.Image, image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	raw, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(raw), raw, nil
}
