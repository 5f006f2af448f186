package core

import "image"

// Mask is a boolean occupancy grid built once from a sprite's alpha
// channel. A cell is occupied when the source pixel's alpha is non-zero.
type Mask struct {
	Width, Height int
	cells         []bool
}

// NewMask creates an empty mask of the given size
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		cells:  make([]bool, width*height),
	}
}

// NewMaskFromImage precomputes the occupancy grid from an image's alpha
func NewMaskFromImage(img image.Image) *Mask {
	bounds := img.Bounds()
	m := NewMask(bounds.Dx(), bounds.Dy())
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a != 0 {
				m.cells[y*m.Width+x] = true
			}
		}
	}
	return m
}

// Set marks a cell occupied or clear
func (m *Mask) Set(x, y int, occupied bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.cells[y*m.Width+x] = occupied
}

// At reports whether a cell is occupied; out-of-range cells are clear
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.cells[y*m.Width+x]
}
