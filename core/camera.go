package core

// Camera is the viewport origin in map pixels
type Camera struct {
	X, Y float64

	// ViewportWidth, ViewportHeight are the visible canvas dimensions
	ViewportWidth, ViewportHeight int
}

// Follow centers the viewport on the given midpoint, clamped so the
// camera never shows area outside the map. An axis where the map fits
// inside the viewport pins to the origin, dropping any offset carried
// over from a larger map.
func (c *Camera) Follow(midX, midY float64, mapWidth, mapHeight int) {
	if mapWidth > c.ViewportWidth {
		c.X = clamp(midX-float64(c.ViewportWidth)/2, 0, float64(mapWidth-c.ViewportWidth))
	} else {
		c.X = 0
	}
	if mapHeight > c.ViewportHeight {
		c.Y = clamp(midY-float64(c.ViewportHeight)/2, 0, float64(mapHeight-c.ViewportHeight))
	} else {
		c.Y = 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
