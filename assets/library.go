package assets

import (
	"fmt"
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/santa/prefabs"
)

// Atlas is a texture with named frame rectangles.
type Atlas struct {
	Name   string
	Handle Handle
	Frames []image.Rectangle
}

// Speech is one dialogue cue: its caption and the audio that goes with it.
type Speech struct {
	Name   string
	Text   string
	Handle Handle
}

// Library resolves the names used by prefabs to loader handles.
type Library struct {
	loader   *Loader
	font     Handle
	textures map[string]*Atlas
	speech   map[string]*Speech
}

// NewLibrary requests every asset listed in spec. It returns immediately;
// the loader finishes in the background.
func NewLibrary(loader *Loader, spec *prefabs.AssetsSpec) (*Library, error) {
	if loader == nil || spec == nil {
		return nil, fmt.Errorf("assets: library needs a loader and a spec")
	}

	lib := &Library{
		loader:   loader,
		textures: make(map[string]*Atlas, len(spec.Textures)),
		speech:   make(map[string]*Speech, len(spec.Speech)),
	}

	if spec.Font != "" {
		lib.font = loader.Load(KindFont, spec.Font)
	}

	names := make([]string, 0, len(spec.Textures))
	for name := range spec.Textures {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tex := spec.Textures[name]
		if tex.Path == "" {
			return nil, fmt.Errorf("assets: texture %q has no path", name)
		}
		atlas := &Atlas{Name: name, Handle: loader.Load(KindImage, tex.Path)}
		for i, f := range tex.Frames {
			if f.W <= 0 || f.H <= 0 {
				return nil, fmt.Errorf("assets: texture %q frame %d is empty", name, i)
			}
			atlas.Frames = append(atlas.Frames, image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H))
		}
		lib.textures[name] = atlas
	}

	for _, s := range spec.Speech {
		name := s.Name()
		if _, dup := lib.speech[name]; dup {
			return nil, fmt.Errorf("assets: duplicate speech cue %q", name)
		}
		lib.speech[name] = &Speech{Name: name, Text: s.Text, Handle: loader.Load(KindAudio, s.Path)}
	}

	return lib, nil
}

func (l *Library) Loader() *Loader {
	return l.loader
}

func (l *Library) Atlas(name string) (*Atlas, bool) {
	a, ok := l.textures[name]
	return a, ok
}

// Texture returns the whole image of a named texture, or nil while loading.
func (l *Library) Texture(name string) *ebiten.Image {
	a, ok := l.textures[name]
	if !ok {
		return nil
	}
	return l.loader.Image(a.Handle)
}

// Frame returns one frame of a named texture, or nil while loading. A
// texture without frame rectangles has a single frame covering the image.
func (l *Library) Frame(name string, frame int) *ebiten.Image {
	a, ok := l.textures[name]
	if !ok {
		return nil
	}
	img := l.loader.Image(a.Handle)
	if img == nil {
		return nil
	}
	if len(a.Frames) == 0 {
		return img
	}
	if frame < 0 || frame >= len(a.Frames) {
		frame = 0
	}
	sub, _ := img.SubImage(a.Frames[frame]).(*ebiten.Image)
	return sub
}

// FrameCount returns how many frames a texture has.
func (l *Library) FrameCount(name string) int {
	a, ok := l.textures[name]
	if !ok {
		return 0
	}
	if len(a.Frames) == 0 {
		return 1
	}
	return len(a.Frames)
}

func (l *Library) Speech(name string) (*Speech, bool) {
	s, ok := l.speech[name]
	return s, ok
}

// SpeechNames returns every cue name in sorted order.
func (l *Library) SpeechNames() []string {
	out := make([]string, 0, len(l.speech))
	for name := range l.speech {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (l *Library) FontSource() *text.GoTextFaceSource {
	if !l.font.Valid() {
		return nil
	}
	return l.loader.FontSource(l.font)
}

// Handles returns every handle the library requested.
func (l *Library) Handles() []Handle {
	out := make([]Handle, 0, len(l.textures)+len(l.speech)+1)
	if l.font.Valid() {
		out = append(out, l.font)
	}
	for _, name := range sortedKeys(l.textures) {
		out = append(out, l.textures[name].Handle)
	}
	for _, name := range l.SpeechNames() {
		out = append(out, l.speech[name].Handle)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
