package main

import (
	"log"

	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/ecs/entity"
	"github.com/milk9111/santa/prefabs"
)

// pollWatcher applies prefab changes made on disk. Only player tuning is
// applied live; everything else needs a restart.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("prefabs: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch name {
	case "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		g.applyPlayerSpec(spec)
		log.Printf("prefabs: reloaded %s", name)
	default:
		log.Printf("prefabs: %s changed, restart to apply", name)
	}
}

func (g *Game) applyPlayerSpec(spec *prefabs.PlayerSpec) {
	g.pipeline.Gravity.SetGravity(spec.Gravity)

	if ctrl, ok := ecs.Get(g.world, g.santa, component.PlayerControllerComponent.Kind()); ok {
		*ctrl = *entity.PlayerController(spec)
	}
	if anim, ok := ecs.Get(g.world, g.santa, component.WalkAnimationComponent.Kind()); ok {
		anim.Period = spec.FramePeriod
		anim.LandingThreshold = spec.LandingThreshold
	}
	if box, ok := ecs.Get(g.world, g.santa, component.SpriteBoundaryComponent.Kind()); ok {
		box.BB = spec.Boundary.BB()
	}
}
