package system

import (
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// PositionSyncSystem copies settled logical positions into render transforms.
// Snowflakes are skipped: their transform carries drift on top of the
// position and is written by SnowflakeSystem.
type PositionSyncSystem struct{}

func NewPositionSyncSystem() *PositionSyncSystem {
	return &PositionSyncSystem{}
}

func (ps *PositionSyncSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.PositionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pos *component.Position, tr *component.Transform) {
		if ecs.Has(w, e, component.SnowflakeComponent.Kind()) {
			return
		}
		tr.X = pos.X
		tr.Y = pos.Y
	})
}
