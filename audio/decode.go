package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// LoadBuffer decodes an audio file into memory, resampled to the target
// rate. Supported formats: wav, ogg vorbis.
func LoadBuffer(path string, target beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio %s: %w", path, err)
	}
	defer f.Close()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg", ".oga":
		streamer, format, err = vorbis.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported audio format %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != target {
		s = beep.Resample(4, format.SampleRate, target, streamer)
	}

	bufFormat := beep.Format{
		SampleRate:  target,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	}
	buf := beep.NewBuffer(bufFormat)
	buf.Append(s)
	return buf, nil
}
