package system

import (
	"math"

	"github.com/milk9111/santa/common"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// PlayerControllerSystem turns input into velocity while Santa stands on
// the ground. In the air Santa keeps whatever velocity physics gives him.
type PlayerControllerSystem struct {
	santa ecs.Entity
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	input := ecs.MustResource(w, component.InputComponent.Kind())
	t := ecs.MustResource(w, component.TimeComponent.Kind())

	p.santa = santaEntity(w, p.santa)
	ctrl, ok := ecs.Get(w, p.santa, component.PlayerControllerComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, p.santa, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	ground, ok := ecs.Get(w, p.santa, component.GroundStateComponent.Kind())
	if !ok || !ground.OnGround {
		return
	}

	vel.X = walkVelocity(vel.X, input.MoveX, ctrl, t.Delta)

	if input.JumpPressed {
		vel.Y = ctrl.JumpPower
	}
}

// walkVelocity accelerates towards the pressed direction, brakes harder when
// reversing or when nothing is pressed, and caps the result at MaxWalkSpeed.
func walkVelocity(vx, moveX float64, ctrl *component.PlayerController, dt float64) float64 {
	dir := common.Sign(moveX)
	switch {
	case dir == 0:
		step := ctrl.Deceleration * dt
		if math.Abs(vx) <= step {
			vx = 0
		} else {
			vx -= common.Sign(vx) * step
		}
	case vx == 0 || common.Sign(vx) == dir:
		vx += dir * ctrl.Acceleration * dt
	default:
		vx += dir * ctrl.Deceleration * dt
	}
	return common.Clamp(vx, -ctrl.MaxWalkSpeed, ctrl.MaxWalkSpeed)
}

// santaEntity returns the cached Santa handle, looking it up again when the
// cache is stale. The lookup panics unless exactly one Santa exists.
func santaEntity(w *ecs.World, cached ecs.Entity) ecs.Entity {
	if cached.Valid() && ecs.IsAlive(w, cached) {
		return cached
	}
	return ecs.Single(w, component.SantaTagComponent.Kind())
}

func cameraEntity(w *ecs.World, cached ecs.Entity) ecs.Entity {
	if cached.Valid() && ecs.IsAlive(w, cached) {
		return cached
	}
	return ecs.Single(w, component.CameraTagComponent.Kind())
}
