package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// directionKeys maps physical keys to movement directions.
// Arrow keys and WASD are both live.
var directionKeys = map[ebiten.Key]Direction{
	ebiten.KeyArrowLeft:  DirLeft,
	ebiten.KeyA:          DirLeft,
	ebiten.KeyArrowRight: DirRight,
	ebiten.KeyD:          DirRight,
	ebiten.KeyArrowUp:    DirUp,
	ebiten.KeyW:          DirUp,
	ebiten.KeyArrowDown:  DirDown,
	ebiten.KeyS:          DirDown,
}

// activationKeys fire interactables on their down edge
var activationKeys = []ebiten.Key{
	ebiten.KeySpace,
	ebiten.KeyE,
}

// Audio control keys
const (
	keyMute       = ebiten.KeyM
	keyMusicPause = ebiten.KeyP
)

// Poll feeds this frame's keyboard edges into the latch. Call once per
// Update tick, before reading the axes.
func (s *State) Poll() {
	for key, dir := range directionKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.Press(dir)
		}
		if inpututil.IsKeyJustReleased(key) {
			s.Release(dir)
		}
	}

	s.Activate = false
	for _, key := range activationKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.Activate = true
			break
		}
	}

	s.MuteToggle = inpututil.IsKeyJustPressed(keyMute)
	s.MusicToggle = inpututil.IsKeyJustPressed(keyMusicPause)
}
