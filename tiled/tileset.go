package tiled

import (
	"encoding/xml"
	"fmt"
	"os"
)

// GID flip bits per the Tiled format; the remainder is the tile id
const (
	FlipHorizontal = 0x80000000
	FlipVertical   = 0x40000000
	FlipDiagonal   = 0x20000000
	gidMask        = ^uint32(FlipHorizontal | FlipVertical | FlipDiagonal)
)

// Tileset is a Tiled XML (.tsx) collection-of-images tileset
type Tileset struct {
	XMLName    xml.Name      `xml:"tileset"`
	Name       string        `xml:"name,attr"`
	TileWidth  int           `xml:"tilewidth,attr"`
	TileHeight int           `xml:"tileheight,attr"`
	TileCount  int           `xml:"tilecount,attr"`
	Tiles      []TilesetTile `xml:"tile"`
}

// TilesetTile maps a local tile id to its source image
type TilesetTile struct {
	ID    uint32    `xml:"id,attr"`
	Image TileImage `xml:"image"`
}

// TileImage is the image element of a tileset tile
type TileImage struct {
	Source string `xml:"source,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

// LoadTileset parses a .tsx document from disk
func LoadTileset(path string) (*Tileset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tileset %s: %w", path, err)
	}
	var ts Tileset
	if err := xml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("failed to parse tileset %s: %w", path, err)
	}
	return &ts, nil
}

// ImageSource returns the image path for a local tile id
func (ts *Tileset) ImageSource(localID uint32) (string, bool) {
	for i := range ts.Tiles {
		if ts.Tiles[i].ID == localID {
			return ts.Tiles[i].Image.Source, true
		}
	}
	return "", false
}

// ClearFlip strips the flip bits from a raw GID
func ClearFlip(gid uint32) uint32 {
	return gid & gidMask
}

// ResolveGID locates the tileset owning a global tile id and returns the
// tileset reference together with the local id. GID 0 means empty.
func (m *Map) ResolveGID(gid uint32) (*TilesetRef, uint32, bool) {
	gid = ClearFlip(gid)
	if gid == 0 {
		return nil, 0, false
	}

	// The owning tileset is the one with the greatest firstgid <= gid
	var best *TilesetRef
	for i := range m.Tilesets {
		ref := &m.Tilesets[i]
		if ref.FirstGID <= gid && (best == nil || ref.FirstGID > best.FirstGID) {
			best = ref
		}
	}
	if best == nil {
		return nil, 0, false
	}
	return best, gid - best.FirstGID, true
}
