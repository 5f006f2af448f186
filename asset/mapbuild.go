package asset

import (
	"fmt"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/joel-heath/JSCanvasGame/core"
	"github.com/joel-heath/JSCanvasGame/tiled"
)

// Interactable kind strings as authored in the editor
const (
	kindDoor        = "door"
	kindMove        = "move"
	kindMoveRebound = "moveRebound"
)

// buildInteractable validates an authored object into a typed
// Interactable. Malformed objects are rejected here, at load time, so a
// zone that made it into a Map is always safe to dispatch.
func buildInteractable(obj *tiled.Object, mapNames map[string]bool) (*core.Interactable, error) {
	kind, ok := obj.String("type")
	if !ok {
		return nil, fmt.Errorf("object %d: missing type property", obj.ID)
	}

	destX, okX := obj.Number("destinationX")
	destY, okY := obj.Number("destinationY")

	var effect core.Effect
	switch kind {
	case kindDoor:
		if !okX || !okY {
			return nil, fmt.Errorf("object %d: door requires numeric destinationX/destinationY", obj.ID)
		}
		destMap, ok := obj.String("destinationMap")
		if !ok {
			return nil, fmt.Errorf("object %d: door requires destinationMap", obj.ID)
		}
		if mapNames != nil && !mapNames[destMap] {
			return nil, fmt.Errorf("object %d: door destinationMap %q is not a loaded map", obj.ID, destMap)
		}
		effect = core.Door{DestMap: destMap, DestX: destX, DestY: destY}

	case kindMove:
		if !okX || !okY {
			return nil, fmt.Errorf("object %d: move requires numeric destinationX/destinationY", obj.ID)
		}
		effect = core.Move{DestX: destX, DestY: destY}

	case kindMoveRebound:
		if !okX || !okY {
			return nil, fmt.Errorf("object %d: moveRebound requires numeric destinationX/destinationY", obj.ID)
		}
		rebound, ok := obj.Number("reboundTime")
		if !ok {
			return nil, fmt.Errorf("object %d: moveRebound requires numeric reboundTime", obj.ID)
		}
		effect = core.MoveRebound{
			DestX:   destX,
			DestY:   destY,
			Rebound: time.Duration(rebound) * time.Millisecond,
		}

	default:
		return nil, fmt.Errorf("object %d: unknown interactable type %q", obj.ID, kind)
	}

	return &core.Interactable{
		Name:   obj.Name,
		X:      obj.X,
		Y:      obj.Y,
		Width:  obj.Width,
		Height: obj.Height,
		Effect: effect,
	}, nil
}

// buildCollision fills the map's collision grid from the Collision layer
func buildCollision(m *core.Map, layer *tiled.Layer) {
	if layer == nil || layer.Type != tiled.TypeTileLayer {
		return
	}
	for i, gid := range layer.Data {
		if tiled.ClearFlip(gid) == 0 {
			continue
		}
		m.SetCell(i%layer.Width, i/layer.Width, 1)
	}
}

// buildSprites converts tile objects into placed sprites. Tiled anchors
// tile objects at their bottom-left corner, so Y shifts up by the image
// height.
func buildSprites(layer *tiled.Layer, images func(gid uint32) *ebiten.Image) []core.Sprite {
	if layer == nil {
		return nil
	}
	sprites := make([]core.Sprite, 0, len(layer.Objects))
	for i := range layer.Objects {
		obj := &layer.Objects[i]
		img := images(obj.GID)
		if img == nil {
			logrus.WithFields(logrus.Fields{
				"layer":  layer.Name,
				"object": obj.ID,
			}).Warn("Sprite object has no resolvable tile image, skipping")
			continue
		}
		sprites = append(sprites, core.Sprite{
			Image: img,
			X:     obj.X,
			Y:     obj.Y - float64(img.Bounds().Dy()),
		})
	}
	return sprites
}

// sortByBaseline pre-sorts sprites for Y-ordered drawing
func sortByBaseline(sprites []core.Sprite) {
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Bottom() < sprites[j].Bottom()
	})
}

// buildMap assembles a runtime map from its parsed document
func (l *Loader) buildMap(name string, doc *tiled.Map, mapNames map[string]bool, images func(gid uint32) *ebiten.Image, background *ebiten.Image) *core.Map {
	m := core.NewMap(name, doc.Width, doc.Height, doc.TileWidth)
	m.Background = background

	buildCollision(m, doc.LayerByName(tiled.LayerCollision))

	if layer := doc.LayerByName(tiled.LayerInteractables); layer != nil {
		for i := range layer.Objects {
			obj := &layer.Objects[i]
			it, err := buildInteractable(obj, mapNames)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"map":   name,
					"error": err,
				}).Warn("Ignoring malformed interactable")
				continue
			}
			m.Interactables = append(m.Interactables, *it)
		}
	}

	m.Foreground = buildSprites(doc.LayerByName(tiled.LayerForeground), images)
	sortByBaseline(m.Foreground)
	m.Top = buildSprites(doc.LayerByName(tiled.LayerTop), images)

	if music, ok := doc.Properties.String("music"); ok {
		m.Music = music
	}
	x, okX := doc.Properties.Number("startX")
	y, okY := doc.Properties.Number("startY")
	if okX && okY {
		m.StartX, m.StartY = x, y
		m.HasStart = true
	}

	return m
}
