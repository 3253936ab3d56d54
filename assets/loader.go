package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/sync/errgroup"
)

type Kind int

const (
	KindImage Kind = iota
	KindAudio
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	case KindFont:
		return "font"
	}
	return "unknown"
}

type LoadState int

const (
	LoadPending LoadState = iota
	LoadLoaded
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadPending:
		return "pending"
	case LoadLoaded:
		return "loaded"
	case LoadFailed:
		return "failed"
	}
	return "unknown"
}

var (
	ErrLoaderClosed = errors.New("assets: loader closed")
	ErrUnknownAsset = errors.New("assets: unknown asset")
)

// Handle refers to one requested asset. The zero Handle is invalid.
type Handle struct {
	id int
}

func (h Handle) Valid() bool {
	return h.id > 0
}

type entry struct {
	path  string
	kind  Kind
	state LoadState
	err   error
	size  int

	img    image.Image
	ebiImg *ebiten.Image
	pcm    []byte
	font   *text.GoTextFaceSource
}

// Loader decodes assets from a file system in the background. Callers poll
// State or DrainFinished from the game loop; nothing blocks the tick.
type Loader struct {
	fsys       fs.FS
	sampleRate int

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
	queue  chan Handle
	wg     sync.WaitGroup
	idle   chan struct{}
	once   sync.Once

	// sendMu keeps Close from closing queue while Load is sending on it.
	sendMu sync.RWMutex

	mu       sync.Mutex
	entries  []*entry
	byPath   map[string]Handle
	finished []Handle
	closed   bool
}

// NewLoader starts a loader reading from fsys. sampleRate is the rate audio
// is resampled to; it must match the audio.Context used for playback.
func NewLoader(fsys fs.FS, sampleRate int, workers int) *Loader {
	if workers <= 0 {
		workers = 4
	}
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	l := &Loader{
		fsys:       fsys,
		sampleRate: sampleRate,
		ctx:        ctx,
		cancel:     cancel,
		group:      group,
		queue:      make(chan Handle, 256),
		idle:       make(chan struct{}),
		byPath:     make(map[string]Handle),
	}
	go l.dispatch()
	return l
}

// Load requests an asset. Requesting the same path twice returns the same handle.
func (l *Loader) Load(kind Kind, path string) Handle {
	l.sendMu.RLock()
	defer l.sendMu.RUnlock()

	l.mu.Lock()
	if h, ok := l.byPath[path]; ok {
		l.mu.Unlock()
		return h
	}
	e := &entry{path: path, kind: kind}
	l.entries = append(l.entries, e)
	h := Handle{id: len(l.entries)}
	l.byPath[path] = h
	if l.closed {
		e.state = LoadFailed
		e.err = ErrLoaderClosed
		l.finished = append(l.finished, h)
		l.mu.Unlock()
		return h
	}
	l.wg.Add(1)
	l.mu.Unlock()

	l.queue <- h
	return h
}

func (l *Loader) dispatch() {
	defer close(l.idle)
	for h := range l.queue {
		h := h
		l.group.Go(func() error {
			defer l.wg.Done()
			l.load(h)
			return nil
		})
	}
}

func (l *Loader) load(h Handle) {
	l.mu.Lock()
	e := l.entries[h.id-1]
	path, kind := e.path, e.kind
	l.mu.Unlock()

	var (
		raw  []byte
		img  image.Image
		pcm  []byte
		font *text.GoTextFaceSource
		err  error
	)
	if l.ctx.Err() != nil {
		err = ErrLoaderClosed
	} else {
		raw, err = l.read(kind, path)
	}
	if err == nil {
		switch kind {
		case KindImage:
			img, err = decodeImage(raw)
		case KindAudio:
			pcm, err = decodeAudio(path, raw, l.sampleRate)
		case KindFont:
			font, err = decodeFont(raw)
		default:
			err = fmt.Errorf("unknown asset kind %d", kind)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		e.state = LoadFailed
		e.err = err
	} else {
		e.state = LoadLoaded
		e.size = len(raw)
		e.img = img
		e.pcm = pcm
		e.font = font
	}
	l.finished = append(l.finished, h)
}

func (l *Loader) read(kind Kind, path string) ([]byte, error) {
	if kind == KindFont && strings.HasPrefix(path, BuiltinFontPrefix) {
		name := strings.TrimPrefix(path, BuiltinFontPrefix)
		b, ok := builtinFonts[name]
		if !ok {
			return nil, fmt.Errorf("unknown builtin font %q", name)
		}
		return b, nil
	}
	if l.fsys == nil {
		return nil, fs.ErrNotExist
	}
	return fs.ReadFile(l.fsys, cleanAssetPath(path))
}

func (l *Loader) get(h Handle) *entry {
	if h.id <= 0 || h.id > len(l.entries) {
		return nil
	}
	return l.entries[h.id-1]
}

// State reports the load status of h. Unknown handles report LoadFailed.
func (l *Loader) State(h Handle) LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := l.get(h)
	if e == nil {
		return LoadFailed
	}
	return e.state
}

// Err returns why h failed to load.
func (l *Loader) Err(h Handle) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e := l.get(h); e != nil {
		return e.err
	}
	return fmt.Errorf("assets: unknown handle %d", h.id)
}

func (l *Loader) Path(h Handle) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e := l.get(h); e != nil {
		return e.path
	}
	return ""
}

// Size is the encoded size in bytes of a loaded asset.
func (l *Loader) Size(h Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e := l.get(h); e != nil {
		return e.size
	}
	return 0
}

// Pending counts requested assets that have not finished yet.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.state == LoadPending {
			n++
		}
	}
	return n
}

// Requested counts every asset ever requested.
func (l *Loader) Requested() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// DrainFinished returns the handles that finished since the previous call.
func (l *Loader) DrainFinished() []Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.finished
	l.finished = nil
	return out
}

// Image returns the decoded image as an ebiten image, converting it on first
// use. It returns nil until the asset has loaded.
func (l *Loader) Image(h Handle) *ebiten.Image {
	l.mu.Lock()
	e := l.get(h)
	if e == nil || e.state != LoadLoaded || e.img == nil {
		l.mu.Unlock()
		return nil
	}
	if e.ebiImg != nil {
		img := e.ebiImg
		l.mu.Unlock()
		return img
	}
	src := e.img
	l.mu.Unlock()

	img := ebiten.NewImageFromImage(src)

	l.mu.Lock()
	defer l.mu.Unlock()
	if e.ebiImg == nil {
		e.ebiImg = img
	}
	return e.ebiImg
}

// PCM returns decoded audio, or nil until the asset has loaded.
func (l *Loader) PCM(h Handle) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e := l.get(h); e != nil && e.state == LoadLoaded {
		return e.pcm
	}
	return nil
}

// FontSource returns the parsed font, or nil until the asset has loaded.
func (l *Loader) FontSource(h Handle) *text.GoTextFaceSource {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e := l.get(h); e != nil && e.state == LoadLoaded {
		return e.font
	}
	return nil
}

// Wait blocks until every requested asset has finished or ctx is done.
func (l *Loader) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close abandons outstanding loads and stops the workers.
func (l *Loader) Close() error {
	l.once.Do(func() {
		l.cancel()
		l.sendMu.Lock()
		l.mu.Lock()
		l.closed = true
		l.mu.Unlock()
		close(l.queue)
		l.sendMu.Unlock()
	})
	<-l.idle
	return l.group.Wait()
}
