package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Voice is the controller for one playing sound effect, independent of
// the music channel and of other voices
type Voice struct {
	ctrl *beep.Ctrl
	vol  *effects.Volume
}

// Stop detaches the voice; the mixer drops it on the next stream call
func (v *Voice) Stop() {
	speaker.Lock()
	v.ctrl.Streamer = nil
	speaker.Unlock()
}

// SetPaused freezes or resumes the voice in place
func (v *Voice) SetPaused(paused bool) {
	speaker.Lock()
	v.ctrl.Paused = paused
	speaker.Unlock()
}

// SetVolume updates the voice gain (0.0-1.0)
func (v *Voice) SetVolume(gain float64) {
	speaker.Lock()
	v.vol.Volume = gainToVolume(gain)
	v.vol.Silent = gain <= 0
	speaker.Unlock()
}
