// ABOUTME: Decoder entry point
// ABOUTME: Dispatches stimulus files to format decoders by extension
package decode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/percept-lab/stimulus-go/pkg/audio"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported stimulus format")

// File decodes a stimulus file into a clip, choosing the decoder from the
// file extension. Supported: .wav, .mp3, .ogg, .oga.
func File(path string) (audio.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("failed to open stimulus file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return WAV(f)
	case ".mp3":
		return MP3(f)
	case ".ogg", ".oga":
		return Vorbis(f)
	default:
		return audio.Clip{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
