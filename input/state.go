package input

// Direction indexes the four movement directions
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	directionCount
)

func (d Direction) String() string {
	names := [...]string{"left", "right", "up", "down"}
	if int(d) < len(names) {
		return names[d]
	}
	return "unknown"
}

// opposite returns the opposing direction on the same axis
func (d Direction) opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// KeyState is the per-direction latch. Held-but-overridden keys resume
// as primary when the overriding opposite key is released, so
// opposite-direction taps cancel cleanly.
type KeyState uint8

const (
	StateReleased   KeyState = 0 // Key is up
	StateOverridden KeyState = 1 // Key is held but the opposite key took over
	StatePrimary    KeyState = 2 // Key drives its axis
)

// State tracks the movement latch and the activation edge
type State struct {
	keys [directionCount]KeyState

	// Activate is true for the single frame the activation key went down
	Activate bool

	// MuteToggle and MusicToggle are single-frame audio control edges
	MuteToggle  bool
	MusicToggle bool
}

// NewState creates an input state with all keys released
func NewState() *State {
	return &State{}
}

// Press latches a direction key down. The opposite key, if primary,
// is demoted to overridden.
func (s *State) Press(d Direction) {
	s.keys[d] = StatePrimary
	if s.keys[d.opposite()] == StatePrimary {
		s.keys[d.opposite()] = StateOverridden
	}
}

// Release latches a direction key up. A still-held overridden opposite
// key is promoted back to primary.
func (s *State) Release(d Direction) {
	if s.keys[d] == StatePrimary && s.keys[d.opposite()] == StateOverridden {
		s.keys[d.opposite()] = StatePrimary
	}
	s.keys[d] = StateReleased
}

// Key returns the latch state for a direction
func (s *State) Key(d Direction) KeyState {
	return s.keys[d]
}

// AxisX returns -1, 0, or +1 for the horizontal axis
func (s *State) AxisX() int {
	switch {
	case s.keys[DirLeft] == StatePrimary:
		return -1
	case s.keys[DirRight] == StatePrimary:
		return 1
	}
	return 0
}

// AxisY returns -1, 0, or +1 for the vertical axis
func (s *State) AxisY() int {
	switch {
	case s.keys[DirUp] == StatePrimary:
		return -1
	case s.keys[DirDown] == StatePrimary:
		return 1
	}
	return 0
}

// Reset releases every key
func (s *State) Reset() {
	for i := range s.keys {
		s.keys[i] = StateReleased
	}
	s.Activate = false
	s.MuteToggle = false
	s.MusicToggle = false
}
