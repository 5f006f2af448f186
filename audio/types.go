package audio

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundStep
	SoundBump
	// Interaction sounds
	SoundDoor
	SoundTeleport
	SoundRebound
	// UI sounds
	SoundMenuSelect
	SoundTypeCount
)

func (s SoundID) String() string {
	names := [...]string{"none", "step", "bump", "door", "teleport", "rebound", "menu_select"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// PlayOptions controls a single PlaySound call
type PlayOptions struct {
	// Loop plays the voice until it is stopped explicitly
	Loop bool

	// Cooldown throttles repeat plays of the same sound; zero uses the
	// manager default
	Cooldown time.Duration

	// Volume scales this voice (0.0-1.0); zero value means full volume
	Volume float64
}
