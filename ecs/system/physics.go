package system

import (
	"math"

	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// GravitySystem pulls every Gravity entity down. It runs before MoveSystem.
type GravitySystem struct {
	gravity float64
}

func NewGravitySystem(gravity float64) *GravitySystem {
	return &GravitySystem{gravity: gravity}
}

func (gs *GravitySystem) SetGravity(gravity float64) {
	gs.gravity = gravity
}

func (gs *GravitySystem) Update(w *ecs.World) {
	dt := ecs.MustResource(w, component.TimeComponent.Kind()).Delta
	ecs.ForEach2(w, component.GravityComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, _ *component.Gravity, vel *component.Velocity) {
		vel.Y -= gs.gravity * dt
	})
}

// MoveSystem integrates velocity into position.
type MoveSystem struct{}

func NewMoveSystem() *MoveSystem {
	return &MoveSystem{}
}

func (ms *MoveSystem) Update(w *ecs.World) {
	dt := ecs.MustResource(w, component.TimeComponent.Kind()).Delta
	ecs.ForEach2(w, component.PositionComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, pos *component.Position, vel *component.Velocity) {
		pos.Vector = pos.Vector.Add(vel.Vector.Mult(dt))
	})
}

// LevelBoundarySystem keeps every entity with a SpriteBoundary inside the
// active player boundary and derives its ground state from the clamp.
//
// An entity counts as grounded whenever it rests exactly on the lower limit,
// however it got there.
type LevelBoundarySystem struct{}

func NewLevelBoundarySystem() *LevelBoundarySystem {
	return &LevelBoundarySystem{}
}

func (ls *LevelBoundarySystem) Update(w *ecs.World) {
	bounds := ecs.MustResource(w, component.LevelPlayerBoundaryComponent.Kind())

	ecs.ForEach2(w, component.PositionComponent.Kind(), component.SpriteBoundaryComponent.Kind(), func(e ecs.Entity, pos *component.Position, sprite *component.SpriteBoundary) {
		vel, hasVel := ecs.Get(w, e, component.VelocityComponent.Kind())

		minX := bounds.L - sprite.L
		maxX := bounds.R - sprite.R
		minY := bounds.B - sprite.B
		maxY := bounds.T - sprite.T

		if pos.X < minX {
			pos.X = minX
			if hasVel {
				vel.X = math.Max(vel.X, 0)
			}
		} else if pos.X > maxX {
			pos.X = maxX
			if hasVel {
				vel.X = math.Min(vel.X, 0)
			}
		}

		if pos.Y < minY {
			pos.Y = minY
			if hasVel {
				vel.Y = math.Max(vel.Y, 0)
			}
		} else if pos.Y > maxY {
			pos.Y = maxY
			if hasVel {
				vel.Y = math.Min(vel.Y, 0)
			}
		}

		ground, ok := ecs.Get(w, e, component.GroundStateComponent.Kind())
		if !ok {
			return
		}
		onGround := pos.Y == minY
		ground.JustLanded = onGround && !ground.OnGround
		ground.OnGround = onGround
	})
}
