package entity

import (
	"fmt"

	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.PositionComponent.Kind(), &component.Position{}); err != nil {
		return 0, fmt.Errorf("camera: add position: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	cam := &component.Camera{
		MinScale:         spec.MinScale,
		BackgroundHeight: spec.BackgroundHeight,
	}
	cam.Resize(spec.ViewportWidth, spec.ViewportHeight)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
