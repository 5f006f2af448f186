package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/joel-heath/JSCanvasGame/asset"
	"github.com/joel-heath/JSCanvasGame/audio"
	"github.com/joel-heath/JSCanvasGame/config"
	"github.com/joel-heath/JSCanvasGame/constants"
	"github.com/joel-heath/JSCanvasGame/core"
	"github.com/joel-heath/JSCanvasGame/input"
	"github.com/joel-heath/JSCanvasGame/physics"
)

// Session owns all mutable game state: the player, the active map, the
// camera, the input latch, and the rebound scheduler. Components read
// from it instead of package globals.
type Session struct {
	cfg   *config.Settings
	sound *audio.Manager
	clock core.TimeProvider
	sched *Scheduler

	maps        map[string]*core.Map
	player      *core.Player
	playerImage *ebiten.Image
	camera      *core.Camera
	keys        *input.State

	active *core.Map

	// overlap caches the interactable the player stands on, refreshed
	// every frame
	overlap *core.Interactable
}

// NewSession assembles a session from loaded assets
func NewSession(cfg *config.Settings, assets *asset.Assets, sound *audio.Manager, clock core.TimeProvider) (*Session, error) {
	start, ok := assets.Maps[cfg.StartMap]
	if !ok {
		return nil, fmt.Errorf("start map %q is not loaded", cfg.StartMap)
	}

	player := &core.Player{
		X:                start.StartX,
		Y:                start.StartY,
		Accel:            constants.PlayerAcceleration,
		TerminalVelocity: constants.PlayerTerminalVelocity,
		Facing:           core.FacingRight,
		Location:         cfg.StartMap,
		Mask:             assets.PlayerMask,
	}
	// Maps with no authored spawn start centered
	if !start.HasStart {
		player.X = float64(start.PixelWidth()-player.Width()) / 2
		player.Y = float64(start.PixelHeight()-player.Height()) / 2
	}

	s := &Session{
		cfg:         cfg,
		sound:       sound,
		clock:       clock,
		sched:       NewScheduler(clock),
		maps:        assets.Maps,
		player:      player,
		playerImage: assets.Player,
		camera: &core.Camera{
			ViewportWidth:  constants.ViewportWidth,
			ViewportHeight: constants.ViewportHeight,
		},
		keys:   input.NewState(),
		active: start,
	}

	s.enterMap(start)
	s.followCamera()
	return s, nil
}

// Step runs one frame of input, physics, and interaction
func (s *Session) Step() {
	s.keys.Poll()
	if s.keys.MuteToggle {
		s.sound.ToggleMute()
	}
	if s.keys.MusicToggle {
		if s.sound.Music().Paused() {
			s.sound.Music().Resume()
		} else {
			s.sound.Music().Pause()
		}
	}
	s.advance(s.keys.Activate)
}

// advance is the frame body, split from Step so tests drive the latch
// directly instead of polling the keyboard
func (s *Session) advance(activate bool) {
	s.sched.Tick(s.player.Location)
	s.applyInput()
	s.moveX()
	s.moveY()

	s.overlap = s.checkInteractables()
	if activate && s.overlap != nil {
		if s.dispatch(s.overlap) {
			// Map switched: skip the rest of the frame so the player
			// does not collide against the old map's geometry
			s.followCamera()
			return
		}
	}

	s.followCamera()
}

// applyInput maps the latch axes onto the player's velocities
func (s *Session) applyInput() {
	p := s.player
	ax, ay := s.keys.AxisX(), s.keys.AxisY()

	p.XVel = integrate(p.XVel, ax, p.Accel, p.TerminalVelocity)
	p.YVel = integrate(p.YVel, ay, p.Accel, p.TerminalVelocity)

	if ax < 0 {
		p.Facing = core.FacingLeft
	} else if ax > 0 {
		p.Facing = core.FacingRight
	}
}

// integrate steps a velocity toward axis*max, or decays it toward zero
func integrate(vel, axis, accel, max int) int {
	if axis != 0 {
		vel += axis * accel
		if vel > max {
			vel = max
		}
		if vel < -max {
			vel = -max
		}
		return vel
	}
	switch {
	case vel > 0:
		vel -= accel
		if vel < 0 {
			vel = 0
		}
	case vel < 0:
		vel += accel
		if vel > 0 {
			vel = 0
		}
	}
	return vel
}

// moveX applies horizontal velocity, gated by collision against the
// current vertical position
func (s *Session) moveX() {
	p := s.player
	if p.XVel == 0 {
		return
	}
	nx := p.X + float64(p.XVel)
	if physics.WallCollision(s.active, p.Mask, nx, p.Y) {
		p.XVel = 0
		s.sound.PlaySound(audio.SoundBump, audio.PlayOptions{})
		return
	}
	p.X = nx
	s.sound.PlaySound(audio.SoundStep, audio.PlayOptions{})
}

// moveY applies vertical velocity, gated by collision against the
// current horizontal position
func (s *Session) moveY() {
	p := s.player
	if p.YVel == 0 {
		return
	}
	ny := p.Y + float64(p.YVel)
	if physics.WallCollision(s.active, p.Mask, p.X, ny) {
		p.YVel = 0
		s.sound.PlaySound(audio.SoundBump, audio.PlayOptions{})
		return
	}
	p.Y = ny
	s.sound.PlaySound(audio.SoundStep, audio.PlayOptions{})
}

// checkInteractables returns the first interactable overlapping the
// player, in authored list order
func (s *Session) checkInteractables() *core.Interactable {
	p := s.player
	for i := range s.active.Interactables {
		it := &s.active.Interactables[i]
		if physics.Overlaps(
			p.X, p.Y, float64(p.Width()), float64(p.Height()),
			it.X, it.Y, it.Width, it.Height,
		) {
			return it
		}
	}
	return nil
}

// dispatch fires an interactable's effect. Returns true when the active
// map changed.
func (s *Session) dispatch(it *core.Interactable) bool {
	p := s.player

	switch e := it.Effect.(type) {
	case core.Door:
		dest, ok := s.maps[e.DestMap]
		if !ok {
			logrus.WithField("map", e.DestMap).Warn("Door leads to unknown map, ignoring")
			return false
		}
		p.X, p.Y = e.DestX, e.DestY
		p.XVel, p.YVel = 0, 0
		p.Location = e.DestMap
		s.active = dest
		s.overlap = nil
		s.sound.PlaySound(audio.SoundDoor, audio.PlayOptions{})
		s.enterMap(dest)
		return true

	case core.Move:
		p.X, p.Y = e.DestX, e.DestY
		s.sound.PlaySound(audio.SoundTeleport, audio.PlayOptions{})
		return false

	case core.MoveRebound:
		prevX, prevY := p.X, p.Y
		p.X, p.Y = e.DestX, e.DestY
		s.sound.PlaySound(audio.SoundTeleport, audio.PlayOptions{})
		s.sched.After(e.Rebound, p.Location, func() {
			p.X, p.Y = prevX, prevY
			p.XVel, p.YVel = 0, 0
			s.sound.PlaySound(audio.SoundRebound, audio.PlayOptions{})
		})
		return false
	}

	logrus.WithField("interactable", it.Name).Warn("Interactable has no effect, ignoring")
	return false
}

// enterMap starts the map's background music, if it names one
func (s *Session) enterMap(m *core.Map) {
	if m.Music == "" {
		return
	}
	if err := s.sound.PlayMusic(m.Music, constants.DefaultCrossfade); err != nil {
		logrus.WithFields(logrus.Fields{
			"map":   m.Name,
			"track": m.Music,
		}).Warn("Music track unavailable")
	}
}

// followCamera centers the viewport on the player within the active map
func (s *Session) followCamera() {
	s.camera.Follow(
		s.player.MidX(), s.player.MidY(),
		s.active.PixelWidth(), s.active.PixelHeight(),
	)
}

// Player returns the player state
func (s *Session) Player() *core.Player {
	return s.player
}

// ActiveMap returns the map the player occupies
func (s *Session) ActiveMap() *core.Map {
	return s.active
}

// Camera returns the viewport camera
func (s *Session) Camera() *core.Camera {
	return s.camera
}
