package entity

import (
	"fmt"

	"github.com/milk9111/santa/common"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/prefabs"
)

// NewSanta spawns the player at the spec's spawn point. Santa is not part of
// any level, so level transitions never despawn him.
func NewSanta(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("santa: nil spec")
	}

	santa := ecs.CreateEntity(w)
	spawn := spec.Spawn.Vector()

	if err := ecs.Add(w, santa, component.SantaTagComponent.Kind(), &component.SantaTag{}); err != nil {
		return 0, fmt.Errorf("santa: add tag: %w", err)
	}
	if err := ecs.Add(w, santa, component.PositionComponent.Kind(), &component.Position{Vector: spawn}); err != nil {
		return 0, fmt.Errorf("santa: add position: %w", err)
	}
	if err := ecs.Add(w, santa, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("santa: add velocity: %w", err)
	}
	if err := ecs.Add(w, santa, component.GravityComponent.Kind(), &component.Gravity{}); err != nil {
		return 0, fmt.Errorf("santa: add gravity: %w", err)
	}
	if err := ecs.Add(w, santa, component.SpriteBoundaryComponent.Kind(), &component.SpriteBoundary{BB: spec.Boundary.BB()}); err != nil {
		return 0, fmt.Errorf("santa: add sprite boundary: %w", err)
	}
	if err := ecs.Add(w, santa, component.GroundStateComponent.Kind(), &component.GroundState{}); err != nil {
		return 0, fmt.Errorf("santa: add ground state: %w", err)
	}
	if err := ecs.Add(w, santa, component.TransformComponent.Kind(), &component.Transform{X: spawn.X, Y: spawn.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("santa: add transform: %w", err)
	}
	if err := ecs.Add(w, santa, component.SpriteComponent.Kind(), &component.Sprite{Texture: spec.Texture, Z: spec.Z}); err != nil {
		return 0, fmt.Errorf("santa: add sprite: %w", err)
	}
	if err := ecs.Add(w, santa, component.PlayerControllerComponent.Kind(), PlayerController(spec)); err != nil {
		return 0, fmt.Errorf("santa: add controller: %w", err)
	}
	if err := ecs.Add(w, santa, component.WalkAnimationComponent.Kind(), &component.WalkAnimation{
		Period:           spec.FramePeriod,
		LandingThreshold: spec.LandingThreshold,
	}); err != nil {
		return 0, fmt.Errorf("santa: add walk animation: %w", err)
	}

	return santa, nil
}

// PlayerController derives the controller tuning, including the jump power,
// from a player spec. It is also used to apply hot-reloaded tuning.
func PlayerController(spec *prefabs.PlayerSpec) *component.PlayerController {
	return &component.PlayerController{
		MaxWalkSpeed: spec.MaxWalkSpeed,
		Acceleration: spec.Acceleration,
		Deceleration: spec.Deceleration,
		JumpPower:    common.JumpPower(spec.JumpHeight, spec.Gravity),
	}
}
