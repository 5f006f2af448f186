package constants

import "time"

// Viewport and Tile Constants
const (
	// ViewportWidth is the visible canvas width in pixels
	ViewportWidth = 640

	// ViewportHeight is the visible canvas height in pixels
	ViewportHeight = 480

	// TileSize is the edge length of a map tile in pixels
	TileSize = 16
)

// Player Movement Constants
const (
	// PlayerAcceleration is the per-frame velocity gain while a direction is held
	PlayerAcceleration = 1

	// PlayerTerminalVelocity caps per-axis speed in pixels per frame
	PlayerTerminalVelocity = 4
)

// Audio Constants
const (
	// SampleRate is the playback sample rate for the speaker
	SampleRate = 44100

	// SpeakerBufferLen is the speaker ring buffer duration
	SpeakerBufferLen = 100 * time.Millisecond

	// DefaultSoundCooldown throttles repeat plays of the same effect
	DefaultSoundCooldown = 150 * time.Millisecond

	// DefaultCrossfade is the music crossfade duration when none is given
	DefaultCrossfade = 2 * time.Second
)
