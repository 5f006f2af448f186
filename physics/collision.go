package physics

import (
	"math"

	"github.com/joel-heath/JSCanvasGame/core"
)

// WallCollision reports whether placing the mask at the proposed position
// would overlap solid geometry. Every occupied mask cell is projected to
// its absolute map coordinate, rounded to nearest integer; a cell landing
// outside the map or on a solid collision cell blocks the move.
//
// The scan is O(mask area), acceptable because sprite masks are small.
func WallCollision(m *core.Map, mask *core.Mask, targetX, targetY float64) bool {
	if m == nil || mask == nil {
		return true
	}
	for my := 0; my < mask.Height; my++ {
		for mx := 0; mx < mask.Width; mx++ {
			if !mask.At(mx, my) {
				continue
			}
			px := int(math.Round(targetX + float64(mx)))
			py := int(math.Round(targetY + float64(my)))
			if m.Solid(px, py) {
				return true
			}
		}
	}
	return false
}

// Overlaps reports axis-aligned bounding box intersection
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}
