package system

import (
	"github.com/milk9111/santa/common"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// TimeSystem advances the Time resource by one fixed step.
type TimeSystem struct {
	step float64
}

func NewTimeSystem() *TimeSystem {
	return &TimeSystem{step: common.TimeStep}
}

func (ts *TimeSystem) Update(w *ecs.World) {
	t := ecs.MustResource(w, component.TimeComponent.Kind())
	t.Delta = ts.step
	t.Elapsed += ts.step
	t.Tick++
}
