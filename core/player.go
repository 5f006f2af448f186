package core

// Facing is the player's horizontal orientation
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Player is the user-controlled sprite
type Player struct {
	// X, Y are the continuous top-left position in map pixels
	X, Y float64

	// XVel, YVel are integer-stepped per-frame velocities
	XVel, YVel int

	// Accel is the per-frame velocity gain while a direction is held
	Accel int

	// TerminalVelocity caps per-axis speed
	TerminalVelocity int

	// Facing tracks the last horizontal direction moved
	Facing Facing

	// Location is the key of the map the player currently occupies
	Location string

	// Mask is the collision silhouette
	Mask *Mask
}

// Width returns the mask width in pixels
func (p *Player) Width() int {
	if p.Mask == nil {
		return 0
	}
	return p.Mask.Width
}

// Height returns the mask height in pixels
func (p *Player) Height() int {
	if p.Mask == nil {
		return 0
	}
	return p.Mask.Height
}

// MidX returns the horizontal midpoint in map pixels
func (p *Player) MidX() float64 {
	return p.X + float64(p.Width())/2
}

// MidY returns the vertical midpoint in map pixels
func (p *Player) MidY() float64 {
	return p.Y + float64(p.Height())/2
}
