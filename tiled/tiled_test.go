package tiled

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleMap = `{
  "width": 3,
  "height": 2,
  "tilewidth": 16,
  "tileheight": 16,
  "tilesets": [
    {"firstgid": 1, "source": "scenery.tsx"},
    {"firstgid": 10, "source": "props.tsx"}
  ],
  "layers": [
    {"name": "Collision", "type": "tilelayer", "width": 3, "height": 2,
     "data": [0, 1, 0, 1, 1, 0]},
    {"name": "Interactables", "type": "objectgroup", "objects": [
      {"id": 4, "x": 16, "y": 32, "width": 16, "height": 16,
       "properties": [
         {"name": "type", "type": "string", "value": "door"},
         {"name": "destinationX", "type": "int", "value": 48}
       ]}
    ]},
    {"name": "Background", "type": "imagelayer", "image": "home.png"}
  ]
}`

const sampleTileset = `<?xml version="1.0" encoding="UTF-8"?>
<tileset name="scenery" tilewidth="16" tileheight="16" tilecount="2">
 <tile id="0"><image source="tree.png" width="32" height="48"/></tile>
 <tile id="1"><image source="rock.png" width="16" height="16"/></tile>
</tileset>`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// TestLoadMap verifies .tmj parsing and layer lookup
func TestLoadMap(t *testing.T) {
	m, err := LoadMap(writeTemp(t, "home.tmj", sampleMap))
	if err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}

	if m.PixelWidth() != 48 || m.PixelHeight() != 32 {
		t.Errorf("Expected 48x32 pixels, got %dx%d", m.PixelWidth(), m.PixelHeight())
	}

	col := m.LayerByName(LayerCollision)
	if col == nil {
		t.Fatal("Expected Collision layer")
	}
	if col.Type != TypeTileLayer || len(col.Data) != 6 {
		t.Errorf("Expected tilelayer with 6 cells, got %s with %d", col.Type, len(col.Data))
	}

	if m.LayerByName("Nonexistent") != nil {
		t.Error("Expected nil for unknown layer name")
	}

	bg := m.LayerByName(LayerBackground)
	if bg == nil || bg.Image != "home.png" {
		t.Errorf("Expected Background image home.png, got %+v", bg)
	}
}

// TestObjectProperties verifies typed property access
func TestObjectProperties(t *testing.T) {
	m, err := LoadMap(writeTemp(t, "home.tmj", sampleMap))
	if err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}

	objs := m.LayerByName(LayerInteractables).Objects
	if len(objs) != 1 {
		t.Fatalf("Expected 1 object, got %d", len(objs))
	}
	obj := &objs[0]

	if kind, ok := obj.String("type"); !ok || kind != "door" {
		t.Errorf("Expected type=door, got %q (ok=%v)", kind, ok)
	}
	if x, ok := obj.Number("destinationX"); !ok || x != 48 {
		t.Errorf("Expected destinationX=48, got %f (ok=%v)", x, ok)
	}
	// String lookup on a numeric property fails the type assertion
	if _, ok := obj.String("destinationX"); ok {
		t.Error("Expected String on numeric property to report !ok")
	}
	if _, ok := obj.Number("missing"); ok {
		t.Error("Expected Number on absent property to report !ok")
	}
}

// TestLoadTileset verifies .tsx parsing and image lookup
func TestLoadTileset(t *testing.T) {
	ts, err := LoadTileset(writeTemp(t, "scenery.tsx", sampleTileset))
	if err != nil {
		t.Fatalf("LoadTileset failed: %v", err)
	}

	if ts.Name != "scenery" || ts.TileCount != 2 {
		t.Errorf("Expected scenery with 2 tiles, got %s with %d", ts.Name, ts.TileCount)
	}
	if src, ok := ts.ImageSource(1); !ok || src != "rock.png" {
		t.Errorf("Expected rock.png for tile 1, got %q (ok=%v)", src, ok)
	}
	if _, ok := ts.ImageSource(9); ok {
		t.Error("Expected !ok for unknown local id")
	}
}

// TestResolveGID verifies firstgid bucketing and flip-bit stripping
func TestResolveGID(t *testing.T) {
	m, err := LoadMap(writeTemp(t, "home.tmj", sampleMap))
	if err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}

	ref, local, ok := m.ResolveGID(12)
	if !ok || ref.Source != "props.tsx" || local != 2 {
		t.Errorf("Expected props.tsx local 2, got %v local %d (ok=%v)", ref, local, ok)
	}

	ref, local, ok = m.ResolveGID(3)
	if !ok || ref.Source != "scenery.tsx" || local != 2 {
		t.Errorf("Expected scenery.tsx local 2, got %v local %d (ok=%v)", ref, local, ok)
	}

	// Flip bits must not affect tileset resolution
	ref, local, ok = m.ResolveGID(12 | FlipHorizontal | FlipDiagonal)
	if !ok || ref.Source != "props.tsx" || local != 2 {
		t.Errorf("Expected flipped gid to resolve identically, got %v local %d (ok=%v)", ref, local, ok)
	}

	if _, _, ok := m.ResolveGID(0); ok {
		t.Error("Expected GID 0 to resolve to nothing")
	}
}
