package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"golang.org/x/image/colornames"
)

// DebugRenderSystem outlines the active boundaries and Santa's collision box.
type DebugRenderSystem struct {
	render *RenderSystem
}

func NewDebugRenderSystem(render *RenderSystem) *DebugRenderSystem {
	return &DebugRenderSystem{render: render}
}

func (d *DebugRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || d.render == nil || w == nil || screen == nil {
		return
	}
	cam, camTr, ok := d.render.view(w)
	if !ok {
		return
	}

	if b, ok := ecs.Resource(w, component.LevelCameraBoundaryComponent.Kind()); ok {
		strokeBB(screen, cam, camTr, b.BB, colornames.Deepskyblue)
	}
	if b, ok := ecs.Resource(w, component.LevelPlayerBoundaryComponent.Kind()); ok {
		strokeBB(screen, cam, camTr, b.BB, colornames.Orange)
	}

	grounded := false
	if santa, ok := ecs.First(w, component.SantaTagComponent.Kind()); ok {
		pos, okPos := ecs.Get(w, santa, component.PositionComponent.Kind())
		box, okBox := ecs.Get(w, santa, component.SpriteBoundaryComponent.Kind())
		if okPos && okBox {
			world := cp.BB{L: pos.X + box.L, B: pos.Y + box.B, R: pos.X + box.R, T: pos.Y + box.T}
			strokeBB(screen, cam, camTr, world, colornames.Lime)
		}
		if ground, ok := ecs.Get(w, santa, component.GroundStateComponent.Kind()); ok {
			grounded = ground.OnGround
		}
	}

	level := component.LevelID("")
	if st, ok := ecs.Resource(w, component.LevelStateComponent.Kind()); ok {
		level = st.Current
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f\n%s ground=%t", ebiten.ActualFPS(), level, grounded))
}

func strokeBB(screen *ebiten.Image, cam *component.Camera, camTr *component.Transform, bb cp.BB, clr color.Color) {
	x0, y0 := cam.WorldToScreen(camTr.X, camTr.Y, bb.L, bb.T)
	x1, y1 := cam.WorldToScreen(camTr.X, camTr.Y, bb.R, bb.B)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, clr, false)
}
