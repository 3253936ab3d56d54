package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// InitResources installs every world-wide resource the systems expect. The
// first level is entered on the first level tick, placing Santa at spawn.
func InitResources(w *ecs.World, initial component.LevelID, spawn cp.Vector) {
	ecs.SetResource(w, component.TimeComponent.Kind(), &component.Time{})
	ecs.SetResource(w, component.InputComponent.Kind(), &component.Input{})
	ecs.SetResource(w, component.AssetsReadyComponent.Kind(), &component.AssetsReady{})
	ecs.SetResource(w, component.LevelStateComponent.Kind(), &component.LevelState{Pending: initial})
	ecs.SetResource(w, component.SpawnPointComponent.Kind(), &component.SpawnPoint{Vector: spawn})
	ecs.SetResource(w, component.LevelPlayerBoundaryComponent.Kind(), &component.LevelPlayerBoundary{})
	ecs.SetResource(w, component.LevelCameraBoundaryComponent.Kind(), &component.LevelCameraBoundary{})
	ecs.SetResource(w, component.DialogueStateComponent.Kind(), &component.DialogueState{Current: component.DialogueHello})
	ecs.SetResource(w, component.DialogueQueueComponent.Kind(), &component.DialogueQueue{})
	ecs.SetResource(w, component.ActiveDialogueComponent.Kind(), &component.ActiveDialogue{})
	ecs.SetResource(w, component.DialogueTimerComponent.Kind(), &component.DialogueTimer{})
	ecs.SetResource(w, component.SpeechRequestsComponent.Kind(), &component.SpeechRequests{})
}
