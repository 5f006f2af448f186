package physics

import (
	"testing"

	"github.com/joel-heath/JSCanvasGame/core"
)

// newTestMap builds a 4x4-cell map with 1px cells and one solid cell at (2,2)
func newTestMap() *core.Map {
	m := core.NewMap("test", 4, 4, 1)
	m.SetCell(2, 2, 1)
	return m
}

// fullMask builds a mask with every cell occupied
func fullMask(w, h int) *core.Mask {
	m := core.NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// TestWallCollisionSolidCell verifies a solid cell blocks and clear cells pass
func TestWallCollisionSolidCell(t *testing.T) {
	m := newTestMap()
	mask := fullMask(1, 1)

	if WallCollision(m, mask, 0, 0) {
		t.Error("Expected clear cell to allow the move")
	}
	if !WallCollision(m, mask, 2, 2) {
		t.Error("Expected solid cell to block the move")
	}
}

// TestWallCollisionBounds verifies map edges block
func TestWallCollisionBounds(t *testing.T) {
	m := newTestMap()
	mask := fullMask(2, 2)

	if !WallCollision(m, mask, -1, 0) {
		t.Error("Expected negative X to block")
	}
	if !WallCollision(m, mask, 3, 0) {
		t.Error("Expected mask spilling past the right edge to block")
	}
	if WallCollision(m, mask, 0, 0) {
		t.Error("Expected in-bounds clear placement to pass")
	}
}

// TestWallCollisionTransparentPixels verifies clear mask cells never
// contribute to the verdict
func TestWallCollisionTransparentPixels(t *testing.T) {
	m := newTestMap()

	// Occupied only at (0,0); the rest of the 3x3 mask is transparent
	mask := core.NewMask(3, 3)
	mask.Set(0, 0, true)

	// Placing at (1,1): the transparent region covers the solid cell at
	// (2,2) but the single occupied cell lands on clear ground
	if WallCollision(m, mask, 1, 1) {
		t.Error("Expected transparent cells over solid ground to be ignored")
	}
	if !WallCollision(m, mask, 2, 2) {
		t.Error("Expected the occupied cell itself to collide")
	}
}

// TestWallCollisionRounding verifies nearest-integer projection
func TestWallCollisionRounding(t *testing.T) {
	m := newTestMap()
	mask := fullMask(1, 1)

	// 1.4 rounds to 1 (clear); 1.6 rounds to 2 (solid row/col)
	if WallCollision(m, mask, 1.4, 2) {
		t.Error("Expected 1.4 to round to clear cell 1")
	}
	if !WallCollision(m, mask, 1.6, 2) {
		t.Error("Expected 1.6 to round to solid cell 2")
	}
}

// TestAxisIndependence verifies one axis can slide while the other blocks
func TestAxisIndependence(t *testing.T) {
	m := newTestMap()
	mask := fullMask(1, 1)

	// Player at (1,2), moving diagonally toward the solid corner at (2,2):
	// X move alone is blocked, Y move alone is free
	x, y := 1.0, 2.0
	if !WallCollision(m, mask, x+1, y) {
		t.Error("Expected X move into solid cell to block")
	}
	if WallCollision(m, mask, x, y+1) {
		t.Error("Expected Y move along the wall to pass")
	}
}

// TestOverlaps verifies the AABB helper
func TestOverlaps(t *testing.T) {
	if !Overlaps(0, 0, 10, 10, 5, 5, 10, 10) {
		t.Error("Expected overlapping rects to intersect")
	}
	if Overlaps(0, 0, 10, 10, 10, 0, 5, 5) {
		t.Error("Expected edge-touching rects not to intersect")
	}
	if Overlaps(0, 0, 4, 4, 20, 20, 4, 4) {
		t.Error("Expected distant rects not to intersect")
	}
}
