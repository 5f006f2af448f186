package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/joel-heath/JSCanvasGame/core"
)

// Draw composes one frame: background, then foreground sprites with the
// player merged in baseline order, then the top layer
func (s *Session) Draw(screen *ebiten.Image) {
	if s.active.Background != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.camera.X, -s.camera.Y)
		screen.DrawImage(s.active.Background, op)
	}

	playerBottom := s.player.Y + float64(s.player.Height())
	playerDrawn := false
	for i := range s.active.Foreground {
		sp := &s.active.Foreground[i]
		if !playerDrawn && playerBottom <= sp.Bottom() {
			s.drawPlayer(screen)
			playerDrawn = true
		}
		s.drawSprite(screen, sp)
	}
	if !playerDrawn {
		s.drawPlayer(screen)
	}

	for i := range s.active.Top {
		s.drawSprite(screen, &s.active.Top[i])
	}
}

func (s *Session) drawSprite(screen *ebiten.Image, sp *core.Sprite) {
	if sp.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sp.X-s.camera.X, sp.Y-s.camera.Y)
	screen.DrawImage(sp.Image, op)
}

func (s *Session) drawPlayer(screen *ebiten.Image) {
	if s.playerImage == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if s.player.Facing == core.FacingLeft {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(s.player.Width()), 0)
	}
	op.GeoM.Translate(s.player.X-s.camera.X, s.player.Y-s.camera.Y)
	screen.DrawImage(s.playerImage, op)
}
