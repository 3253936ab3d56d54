package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/prefabs"
)

const guardResult = "__result__"

// guardVars are the variables every dialogue guard can read.
var guardVars = map[string]any{
	"assets_ready": false,
	"on_ground":    false,
	"has_active":   false,
	"elapsed":      0.0,
	"x":            0.0,
	"y":            0.0,
	"level":        "",
}

type dialogueGuard struct {
	state    component.DialogueStateID
	expr     string
	cues     []string
	compiled *tengo.Compiled
	failed   bool
}

func compileGuard(expr string) (*tengo.Compiled, error) {
	script := tengo.NewScript([]byte(guardResult + " := (" + expr + ")"))
	for name, def := range guardVars {
		if err := script.Add(name, def); err != nil {
			return nil, err
		}
	}
	return script.Compile()
}

func (g *dialogueGuard) eval(vars map[string]any) (bool, error) {
	for name, v := range vars {
		if err := g.compiled.Set(name, v); err != nil {
			return false, err
		}
	}
	if err := g.compiled.Run(); err != nil {
		return false, err
	}
	return g.compiled.Get(guardResult).Bool(), nil
}

// DialogueTriggerSystem walks the dialogue states in order. When the active
// state's guard holds, its cues are queued and the next state becomes active.
// A passed state is never evaluated again.
type DialogueTriggerSystem struct {
	guards map[component.DialogueStateID]*dialogueGuard
	santa  ecs.Entity
}

// NewDialogueTriggerSystem compiles the guards of spec. Every state before
// DialogueFinished must appear exactly once; knownCue, when set, rejects
// cues that have no speech asset.
func NewDialogueTriggerSystem(spec *prefabs.DialogueSpec, knownCue func(string) bool) (*DialogueTriggerSystem, error) {
	if spec == nil {
		return nil, fmt.Errorf("dialogue: nil spec")
	}
	ds := &DialogueTriggerSystem{guards: make(map[component.DialogueStateID]*dialogueGuard)}

	for _, st := range spec.States {
		id, ok := component.ParseDialogueState(st.Name)
		if !ok || id == component.DialogueFinished {
			return nil, fmt.Errorf("dialogue: unknown state %q", st.Name)
		}
		if _, dup := ds.guards[id]; dup {
			return nil, fmt.Errorf("dialogue: state %q listed twice", st.Name)
		}
		if strings.TrimSpace(st.When) == "" {
			return nil, fmt.Errorf("dialogue: state %q has no guard", st.Name)
		}
		for _, cue := range st.Cues {
			if knownCue != nil && !knownCue(cue) {
				return nil, fmt.Errorf("dialogue: state %q uses unknown cue %q", st.Name, cue)
			}
		}
		compiled, err := compileGuard(st.When)
		if err != nil {
			return nil, fmt.Errorf("dialogue: compile guard for %q: %w", st.Name, err)
		}
		ds.guards[id] = &dialogueGuard{
			state:    id,
			expr:     st.When,
			cues:     append([]string(nil), st.Cues...),
			compiled: compiled,
		}
	}

	for id := component.DialogueHello; id < component.DialogueFinished; id++ {
		if _, ok := ds.guards[id]; !ok {
			return nil, fmt.Errorf("dialogue: missing state %q", id)
		}
	}
	return ds, nil
}

func (ds *DialogueTriggerSystem) Update(w *ecs.World) {
	dt := ecs.MustResource(w, component.TimeComponent.Kind()).Delta
	timer := ecs.MustResource(w, component.DialogueTimerComponent.Kind())
	timer.Elapsed += dt

	state := ecs.MustResource(w, component.DialogueStateComponent.Kind())
	guard, ok := ds.guards[state.Current]
	if !ok {
		return
	}

	ok, err := guard.eval(ds.vars(w, timer))
	if err != nil {
		if !guard.failed {
			log.Printf("dialogue: guard %s (%s): %v", guard.state, guard.expr, err)
			guard.failed = true
		}
		return
	}
	if !ok {
		return
	}

	queue := ecs.MustResource(w, component.DialogueQueueComponent.Kind())
	queue.Push(guard.cues...)
	state.Current++
}

func (ds *DialogueTriggerSystem) vars(w *ecs.World, timer *component.DialogueTimer) map[string]any {
	ready := ecs.MustResource(w, component.AssetsReadyComponent.Kind())
	active := ecs.MustResource(w, component.ActiveDialogueComponent.Kind())
	level := ecs.MustResource(w, component.LevelStateComponent.Kind())

	vars := map[string]any{
		"assets_ready": ready.Ready,
		"on_ground":    false,
		"has_active":   active.Active,
		"elapsed":      timer.Elapsed,
		"x":            0.0,
		"y":            0.0,
		"level":        string(level.Current),
	}

	ds.santa = santaEntity(w, ds.santa)
	if pos, ok := ecs.Get(w, ds.santa, component.PositionComponent.Kind()); ok {
		vars["x"] = pos.X
		vars["y"] = pos.Y
	}
	if ground, ok := ecs.Get(w, ds.santa, component.GroundStateComponent.Kind()); ok {
		vars["on_ground"] = ground.OnGround
	}
	return vars
}

// DialogueSystem shows queued cues one at a time. The advance key dismisses
// the active cue; the next one starts on the following tick.
type DialogueSystem struct {
	captions map[string]string
}

func NewDialogueSystem(captions map[string]string) *DialogueSystem {
	return &DialogueSystem{captions: captions}
}

func (ds *DialogueSystem) Update(w *ecs.World) {
	input := ecs.MustResource(w, component.InputComponent.Kind())
	active := ecs.MustResource(w, component.ActiveDialogueComponent.Kind())
	timer := ecs.MustResource(w, component.DialogueTimerComponent.Kind())

	if active.Active {
		if input.AdvanceReleased {
			*active = component.ActiveDialogue{}
			timer.Elapsed = 0
		}
		return
	}

	queue := ecs.MustResource(w, component.DialogueQueueComponent.Kind())
	cue, ok := queue.Pop()
	if !ok {
		return
	}

	*active = component.ActiveDialogue{Active: true, Cue: cue, Text: ds.captions[cue]}
	timer.Elapsed = 0

	speech := ecs.MustResource(w, component.SpeechRequestsComponent.Kind())
	speech.Cues = append(speech.Cues, cue)
}
