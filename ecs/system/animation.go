package system

import (
	"math"

	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// PlayerAnimationSystem picks Santa's sprite frame from his ground state
// and horizontal speed.
type PlayerAnimationSystem struct{}

func NewPlayerAnimationSystem() *PlayerAnimationSystem {
	return &PlayerAnimationSystem{}
}

func (a *PlayerAnimationSystem) Update(w *ecs.World) {
	dt := ecs.MustResource(w, component.TimeComponent.Kind()).Delta

	ecs.ForEach4(w,
		component.WalkAnimationComponent.Kind(),
		component.SpriteComponent.Kind(),
		component.GroundStateComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(_ ecs.Entity, anim *component.WalkAnimation, sprite *component.Sprite, ground *component.GroundState, vel *component.Velocity) {
			stepAnimation(anim, ground, vel, dt)
			sprite.Frame = anim.Frame
			if vel.X < 0 {
				sprite.FlipX = true
			} else if vel.X > 0 {
				sprite.FlipX = false
			}
		})
}

func stepAnimation(anim *component.WalkAnimation, ground *component.GroundState, vel *component.Velocity, dt float64) {
	if !ground.OnGround {
		anim.Frame = component.SantaFrameAirborne
		return
	}

	if ground.JustLanded {
		if math.Abs(vel.Y) < anim.LandingThreshold {
			anim.Timer = 0
			anim.Frame = component.SantaFrameIdle
		} else {
			// Still bouncing: keep the airborne frame for this tick.
			anim.Frame = component.SantaFrameAirborne
		}
		return
	}

	if vel.X == 0 {
		anim.Timer = 0
		anim.Frame = component.SantaFrameIdle
		return
	}

	if anim.Frame == component.SantaFrameAirborne {
		anim.Frame = component.SantaFrameIdle
	}
	anim.Timer += dt
	if anim.Period > 0 && anim.Timer >= anim.Period {
		anim.Timer -= anim.Period
		if anim.Frame == component.SantaFrameIdle {
			anim.Frame = component.SantaFrameStep
		} else {
			anim.Frame = component.SantaFrameIdle
		}
	}
}
