package system

import (
	"fmt"
	"log"

	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/ecs/entity"
	"github.com/milk9111/santa/prefabs"
)

// LevelTransitionSystem runs the level state machine. Each tick it checks the
// active level's exits; when one fires, the old level is torn down and the
// new one built before any other system can see the stale boundaries.
type LevelTransitionSystem struct {
	levels *prefabs.LevelsSpec
	snow   *prefabs.SnowflakesSpec
	rng    entity.Rand

	root  ecs.Entity
	santa ecs.Entity
}

func NewLevelTransitionSystem(levels *prefabs.LevelsSpec, snow *prefabs.SnowflakesSpec, rng entity.Rand) *LevelTransitionSystem {
	return &LevelTransitionSystem{levels: levels, snow: snow, rng: rng}
}

func (ls *LevelTransitionSystem) Update(w *ecs.World) {
	state := ecs.MustResource(w, component.LevelStateComponent.Kind())

	if state.Pending != "" {
		target := state.Pending
		state.Pending = ""
		if err := ls.transition(w, state, target); err != nil {
			panic("level: " + err.Error())
		}
		return
	}

	spec, ok := ls.levels.Levels[string(state.Current)]
	if !ok {
		return
	}

	input := ecs.MustResource(w, component.InputComponent.Kind())
	if !input.InteractReleased {
		return
	}

	ls.santa = santaEntity(w, ls.santa)
	pos, ok := ecs.Get(w, ls.santa, component.PositionComponent.Kind())
	if !ok {
		return
	}

	for _, exit := range spec.Exits {
		if !exitReached(exit, pos.X) {
			continue
		}
		spawn := ecs.MustResource(w, component.SpawnPointComponent.Kind())
		spawn.Vector = exit.Spawn.Vector()
		if err := ls.transition(w, state, component.LevelID(exit.Target)); err != nil {
			panic("level: " + err.Error())
		}
		return
	}
}

func exitReached(exit prefabs.ExitSpec, x float64) bool {
	if exit.MinX != nil && x < *exit.MinX {
		return false
	}
	if exit.MaxX != nil && x > *exit.MaxX {
		return false
	}
	return exit.MinX != nil || exit.MaxX != nil
}

// transition leaves the current level, if any, and enters target in the
// same tick.
func (ls *LevelTransitionSystem) transition(w *ecs.World, state *component.LevelState, target component.LevelID) error {
	spec, ok := ls.levels.Levels[string(target)]
	if !ok {
		return fmt.Errorf("unknown level %q", target)
	}
	if state.Current == target {
		return fmt.Errorf("already in level %q", target)
	}

	from := state.Current
	if ls.root.Valid() && ecs.IsAlive(w, ls.root) {
		n := entity.DespawnLevel(w, ls.root)
		log.Printf("level: left %s, despawned %d entities", from, n)
	}
	ls.root = 0

	root, err := entity.SpawnLevel(w, target, spec, ls.snow, ls.rng)
	if err != nil {
		return fmt.Errorf("enter %s: %w", target, err)
	}
	ls.root = root

	ecs.SetResource(w, component.LevelPlayerBoundaryComponent.Kind(), &component.LevelPlayerBoundary{BB: spec.PlayerBoundary.BB()})
	ecs.SetResource(w, component.LevelCameraBoundaryComponent.Kind(), &component.LevelCameraBoundary{BB: spec.CameraBoundary.BB()})

	ls.santa = santaEntity(w, ls.santa)
	spawn := ecs.MustResource(w, component.SpawnPointComponent.Kind())
	if pos, ok := ecs.Get(w, ls.santa, component.PositionComponent.Kind()); ok {
		pos.Vector = spawn.Vector
	}

	state.Current = target
	log.Printf("level: entered %s at (%.1f, %.1f)", target, spawn.X, spawn.Y)
	return nil
}

// Root returns the active level root entity.
func (ls *LevelTransitionSystem) Root() ecs.Entity {
	return ls.root
}
