package entity

import (
	"fmt"

	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/prefabs"
)

// LevelBackgroundZ keeps the background behind snowflakes and Santa.
const LevelBackgroundZ = 0

// SpawnLevel creates the level root and hangs the background and the
// snowflakes under it, so DespawnLevel can take the whole level down at once.
func SpawnLevel(w *ecs.World, id component.LevelID, spec prefabs.LevelSpec, snow *prefabs.SnowflakesSpec, rng Rand) (ecs.Entity, error) {
	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.LevelRootComponent.Kind(), &component.LevelRoot{Level: id}); err != nil {
		return 0, fmt.Errorf("level: add root: %w", err)
	}

	bg := ecs.CreateEntity(w)
	if err := ecs.SetParent(w, bg, root); err != nil {
		return 0, fmt.Errorf("level: parent background: %w", err)
	}
	if err := ecs.Add(w, bg, component.BackgroundComponent.Kind(), &component.Background{}); err != nil {
		return 0, fmt.Errorf("level: add background tag: %w", err)
	}
	if err := ecs.Add(w, bg, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("level: add background transform: %w", err)
	}
	if err := ecs.Add(w, bg, component.SpriteComponent.Kind(), &component.Sprite{Texture: spec.Background, Z: LevelBackgroundZ}); err != nil {
		return 0, fmt.Errorf("level: add background sprite: %w", err)
	}

	if snow != nil && spec.SnowflakeDensity > 0 {
		if _, err := SpawnSnowflakes(w, root, spec.CameraBoundary.BB(), spec.SnowflakeDensity, snow, rng); err != nil {
			return 0, fmt.Errorf("level: spawn snowflakes: %w", err)
		}
	}

	return root, nil
}

// DespawnLevel destroys a level root and everything under it.
func DespawnLevel(w *ecs.World, root ecs.Entity) int {
	return ecs.DestroyRecursive(w, root)
}
