package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/santa/assets"
	"github.com/milk9111/santa/prefabs"
)

const previewSize = 512

// previewGame cycles through the frames of one texture from assets.yaml.
type previewGame struct {
	lib         *assets.Library
	texture     string
	frameCount  int
	current     int
	tick        int
	ticksPerFrm int
	scale       float64
}

func (g *previewGame) Update() error {
	if g.frameCount <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current++
		if g.current >= g.frameCount {
			g.current = 0
		}
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	frame := g.lib.Frame(g.texture, g.current)
	if frame == nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s: not loaded", g.texture))
		return
	}
	fw := float64(frame.Bounds().Dx()) * g.scale
	fh := float64(frame.Bounds().Dy()) * g.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((previewSize-fw)/2, (previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s %d/%d", g.texture, g.current+1, g.frameCount))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	texture := flag.String("texture", "santa", "texture name from assets.yaml")
	fps := flag.Int("fps", 4, "frames per second")
	scale := flag.Float64("scale", 4, "zoom factor")
	flag.Parse()

	spec, err := prefabs.LoadAssetsSpec()
	if err != nil {
		log.Fatal(err)
	}
	loader := assets.NewLoader(assets.FS, 44100, 2)
	defer loader.Close()

	lib, err := assets.NewLibrary(loader, spec)
	if err != nil {
		log.Fatal(err)
	}
	atlas, ok := lib.Atlas(*texture)
	if !ok {
		log.Fatalf("unknown texture %q", *texture)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := loader.Wait(ctx); err != nil {
		log.Fatal(err)
	}
	if err := loader.Err(atlas.Handle); err != nil {
		log.Fatalf("load %s: %v", *texture, err)
	}

	ticks := 1
	if *fps > 0 {
		ticks = max(60 / *fps, 1)
	}
	g := &previewGame{
		lib:         lib,
		texture:     *texture,
		frameCount:  lib.FrameCount(*texture),
		ticksPerFrm: ticks,
		scale:       *scale,
	}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("atlas: " + *texture)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
