package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/santa/assets"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// RenderSystem draws every Transform+Sprite entity through the camera,
// back to front by Z. Sprites whose texture has not loaded are skipped.
type RenderSystem struct {
	lib    *assets.Library
	camera ecs.Entity
}

func NewRenderSystem(lib *assets.Library) *RenderSystem {
	return &RenderSystem{lib: lib}
}

// ScreenSize is the logical screen size the camera projects onto.
func (r *RenderSystem) ScreenSize(w *ecs.World) (int, int) {
	cam, _, ok := r.view(w)
	if !ok {
		return 1, 1
	}
	return ceilPositive(cam.Width), ceilPositive(cam.Height)
}

func (r *RenderSystem) view(w *ecs.World) (*component.Camera, *component.Transform, bool) {
	if !r.camera.Valid() || !ecs.IsAlive(w, r.camera) {
		e, ok := ecs.First(w, component.CameraTagComponent.Kind())
		if !ok {
			return nil, nil, false
		}
		r.camera = e
	}
	cam, ok := ecs.Get(w, r.camera, component.CameraComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	tr, ok := ecs.Get(w, r.camera, component.TransformComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return cam, tr, true
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil || r.lib == nil {
		return
	}
	cam, camTr, ok := r.view(w)
	if !ok {
		return
	}

	entities := ecs.Query(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sprites := make([]*component.Sprite, len(entities))
	for i, e := range entities {
		sprites[i], _ = ecs.Get(w, e, component.SpriteComponent.Kind())
	}
	order := make([]int, len(entities))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		za, zb := sprites[order[a]].Z, sprites[order[b]].Z
		if za != zb {
			return za < zb
		}
		return uint64(entities[order[a]]) < uint64(entities[order[b]])
	})

	for _, i := range order {
		e, s := entities[i], sprites[i]
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok || s == nil {
			continue
		}
		img := r.lib.Frame(s.Texture, s.Frame)
		if img == nil {
			continue
		}

		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		if s.FlipX {
			sx = -sx
		}

		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(-t.Rotation)

		x, y := cam.WorldToScreen(camTr.X, camTr.Y, t.X, t.Y)
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}
}

func ceilPositive(v float64) int {
	n := int(v)
	if float64(n) < v {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
