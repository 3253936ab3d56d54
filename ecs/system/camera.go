package system

import (
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// CameraSystem centers the camera on Santa, then keeps the viewport inside
// the active camera boundary.
type CameraSystem struct {
	camera ecs.Entity
	santa  ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	bounds := ecs.MustResource(w, component.LevelCameraBoundaryComponent.Kind())

	cs.camera = cameraEntity(w, cs.camera)
	cs.santa = santaEntity(w, cs.santa)

	cam, ok := ecs.Get(w, cs.camera, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camPos, ok := ecs.Get(w, cs.camera, component.PositionComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.santa, component.PositionComponent.Kind())
	if !ok {
		return
	}

	halfW, halfH := cam.HalfExtents()
	camPos.X = clampAxis(target.X, bounds.L+halfW, bounds.R-halfW)
	camPos.Y = clampAxis(target.Y, bounds.B+halfH, bounds.T-halfH)
}

// clampAxis centers v between lo and hi when the range is inverted, which
// happens when the viewport is wider than the boundary.
func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
