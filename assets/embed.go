package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed texture speech
var FS embed.FS

// BuiltinFontPrefix selects a font compiled into the binary instead of a file.
const BuiltinFontPrefix = "builtin:"

var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
}

func decodeImage(b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// decodeAudio returns 16-bit stereo PCM at sampleRate, the format
// audio.Context.NewPlayerFromBytes expects.
func decodeAudio(path string, b []byte, sampleRate int) ([]byte, error) {
	clean := strings.ToLower(cleanAssetPath(path))
	reader := bytes.NewReader(b)

	switch {
	case strings.HasSuffix(clean, ".wav"):
		stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return io.ReadAll(stream)
	case strings.HasSuffix(clean, ".ogg"):
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("decode ogg %q: %w", path, err)
		}
		return io.ReadAll(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return b, nil
}

func decodeFont(b []byte) (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(b))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
