package core

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a placed image with a draw position in map pixels
type Sprite struct {
	Image *ebiten.Image
	X, Y  float64
}

// Bottom returns the sprite's baseline, used for Y-sorted draw order
func (s *Sprite) Bottom() float64 {
	if s.Image == nil {
		return s.Y
	}
	return s.Y + float64(s.Image.Bounds().Dy())
}

// Map is a loaded, immutable game map
type Map struct {
	// Name is the map key used by door destinations
	Name string

	// Background is drawn first each frame
	Background *ebiten.Image

	// Width, Height are the collision grid dimensions in cells
	Width, Height int

	// CellSize is the edge length of a collision cell in pixels
	CellSize int

	// collision holds the per-cell solidity grid (non-zero = solid)
	collision []uint32

	// Interactables are the validated trigger zones, in authored order
	Interactables []Interactable

	// Foreground sprites are pre-sorted by baseline; the player is
	// merged into this order at draw time
	Foreground []Sprite

	// Top sprites are always drawn last
	Top []Sprite

	// Music names the background track to crossfade to on entry; empty
	// leaves the current track playing
	Music string

	// StartX, StartY are the authored spawn position for session start;
	// HasStart distinguishes an authored (0,0) from no spawn at all
	StartX, StartY float64
	HasStart       bool
}

// NewMap creates a map with an empty collision grid
func NewMap(name string, width, height, cellSize int) *Map {
	return &Map{
		Name:      name,
		Width:     width,
		Height:    height,
		CellSize:  cellSize,
		collision: make([]uint32, width*height),
	}
}

// SetCell writes a collision grid cell
func (m *Map) SetCell(x, y int, v uint32) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.collision[y*m.Width+x] = v
}

// Solid reports whether the pixel coordinate lies in a solid cell.
// Coordinates outside the grid count as solid so the map edge blocks.
func (m *Map) Solid(px, py int) bool {
	if m.CellSize <= 0 {
		return true
	}
	cx, cy := px/m.CellSize, py/m.CellSize
	if px < 0 || py < 0 || cx >= m.Width || cy >= m.Height {
		return true
	}
	return m.collision[cy*m.Width+cx] != 0
}

// PixelWidth returns the map width in pixels
func (m *Map) PixelWidth() int {
	return m.Width * m.CellSize
}

// PixelHeight returns the map height in pixels
func (m *Map) PixelHeight() int {
	return m.Height * m.CellSize
}
