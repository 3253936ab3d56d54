package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/santa/assets"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/ecs/entity"
	"github.com/milk9111/santa/ecs/system"
	"github.com/milk9111/santa/prefabs"
)

const (
	sampleRate  = 44100
	loadWorkers = 4
)

type Options struct {
	// Level overrides the initial level from levels.yaml when set.
	Level string
	Debug bool
	// Watch reloads prefabs from disk while the game runs.
	Watch bool
	Seed  uint64
}

type Game struct {
	world    *ecs.World
	pipeline *system.Pipeline
	render   *system.RenderSystem
	debug    *system.DebugRenderSystem

	loader   *assets.Loader
	library  *assets.Library
	audioCtx *audio.Context

	santa  ecs.Entity
	camera ecs.Entity
	canvas *ebiten.Image

	captions *CaptionUI
	pauseUI  *ebitenui.UI
	watcher  *prefabs.Watcher

	screenW, screenH int

	paused    bool
	debugMode bool
	quit      bool
}

func NewGame(opts Options) (*Game, error) {
	assetsSpec, err := prefabs.LoadAssetsSpec()
	if err != nil {
		return nil, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	levelsSpec, err := prefabs.LoadLevelsSpec()
	if err != nil {
		return nil, err
	}
	snowSpec, err := prefabs.LoadSnowflakesSpec()
	if err != nil {
		return nil, err
	}
	dialogueSpec, err := prefabs.LoadDialogueSpec()
	if err != nil {
		return nil, err
	}

	if opts.Level != "" {
		if _, ok := levelsSpec.Levels[opts.Level]; !ok {
			return nil, fmt.Errorf("unknown level %q", opts.Level)
		}
		levelsSpec.Initial = opts.Level
	}

	loader := assets.NewLoader(assets.FS, sampleRate, loadWorkers)
	library, err := assets.NewLibrary(loader, assetsSpec)
	if err != nil {
		_ = loader.Close()
		return nil, err
	}

	captions := make(map[string]string)
	for _, name := range library.SpeechNames() {
		s, _ := library.Speech(name)
		captions[name] = s.Text
	}

	audioCtx := audio.CurrentContext()
	if audioCtx == nil {
		audioCtx = audio.NewContext(sampleRate)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x5eed))

	pipeline, err := system.NewPipeline(system.PipelineConfig{
		Keys:     system.EbitenKeys(),
		Loader:   loader,
		Speech:   system.NewEbitenSpeechPlayer(audioCtx, library),
		Captions: captions,
		KnownCue: func(cue string) bool {
			_, ok := library.Speech(cue)
			return ok
		},
		Rand:     rng,
		Player:   playerSpec,
		Levels:   levelsSpec,
		Snow:     snowSpec,
		Dialogue: dialogueSpec,
	})
	if err != nil {
		_ = loader.Close()
		return nil, err
	}

	w := ecs.NewWorld()
	entity.InitResources(w, component.LevelID(levelsSpec.Initial), playerSpec.Spawn.Vector())

	camera, err := entity.NewCamera(w, cameraSpec)
	if err != nil {
		_ = loader.Close()
		return nil, err
	}
	santa, err := entity.NewSanta(w, playerSpec)
	if err != nil {
		_ = loader.Close()
		return nil, err
	}

	pipeline.Start(w)

	render := system.NewRenderSystem(library)
	g := &Game{
		world:     w,
		pipeline:  pipeline,
		render:    render,
		debug:     system.NewDebugRenderSystem(render),
		loader:    loader,
		library:   library,
		audioCtx:  audioCtx,
		santa:     santa,
		camera:    camera,
		captions:  NewCaptionUI(dialogueSpec.AdvanceHint),
		debugMode: opts.Debug,
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(system.KeyPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pipeline.Update(g.world)

	active, _ := ecs.Resource(g.world, component.ActiveDialogueComponent.Kind())
	g.captions.Sync(active, g.library.FontSource(), g.screenH)
	g.captions.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	cw, ch := g.render.ScreenSize(g.world)
	if g.canvas == nil || g.canvas.Bounds().Dx() != cw || g.canvas.Bounds().Dy() != ch {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(cw, ch)
	}
	g.canvas.Clear()
	g.render.Draw(g.world, g.canvas)
	if g.debugMode {
		g.debug.Draw(g.world, g.canvas)
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(cw), float64(sh)/float64(ch))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.canvas, op)

	if g.captions.Visible() {
		g.captions.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Layout keeps the window resolution for UI text and resizes the camera so
// the world keeps its pixel scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		if cam, ok := ecs.Get(g.world, g.camera, component.CameraComponent.Kind()); ok {
			cam.Resize(float64(outsideWidth), float64(outsideHeight))
		}
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	errs = append(errs, g.loader.Close())
	return errors.Join(errs...)
}
