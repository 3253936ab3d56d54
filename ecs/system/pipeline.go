package system

import (
	"fmt"

	"github.com/milk9111/santa/assets"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/ecs/entity"
	"github.com/milk9111/santa/prefabs"
)

// Stage names, in run order.
const (
	StageFirst      = "first"
	StageUpdate     = "update"
	StagePhysics    = "physics"
	StagePostUpdate = "post_update"
	StageLevel      = "level"
)

// System labels used for ordering inside a stage.
const (
	LabelTime            = "time"
	LabelInput           = "input"
	LabelPlayerControl   = "player_control"
	LabelDialogueTrigger = "dialogue_trigger"
	LabelDialogue        = "dialogue"
	LabelAudio           = "audio"
	LabelGravity         = "gravity"
	LabelMove            = "move"
	LabelBoundary        = "level_boundary"
	LabelCamera          = "camera_follow"
	LabelPositionSync    = "position_sync"
	LabelSnowflakes      = "snowflakes"
	LabelAnimation       = "player_animation"
)

type PipelineConfig struct {
	Keys     KeySource
	Loader   *assets.Loader
	Speech   SpeechPlayer
	Captions map[string]string
	KnownCue func(string) bool
	Rand     entity.Rand

	Player   *prefabs.PlayerSpec
	Levels   *prefabs.LevelsSpec
	Snow     *prefabs.SnowflakesSpec
	Dialogue *prefabs.DialogueSpec
}

// Pipeline is the game's scheduler plus the systems the host needs to reach
// after startup.
type Pipeline struct {
	Scheduler *ecs.Scheduler
	Gravity   *GravitySystem
	Level     *LevelTransitionSystem
}

func NewPipeline(cfg PipelineConfig) (*Pipeline, error) {
	if cfg.Player == nil || cfg.Levels == nil || cfg.Snow == nil || cfg.Dialogue == nil {
		return nil, fmt.Errorf("pipeline: missing spec")
	}

	trigger, err := NewDialogueTriggerSystem(cfg.Dialogue, cfg.KnownCue)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		Scheduler: ecs.NewScheduler(StageFirst, StageUpdate, StagePhysics, StagePostUpdate, StageLevel),
		Gravity:   NewGravitySystem(cfg.Player.Gravity),
		Level:     NewLevelTransitionSystem(cfg.Levels, cfg.Snow, cfg.Rand),
	}
	s := p.Scheduler

	adds := []struct {
		stage  string
		system ecs.System
		opts   []ecs.SystemOption
	}{
		{StageFirst, NewAssetReadySystem(cfg.Loader), nil},
		{StageFirst, NewInputSystem(cfg.Keys), []ecs.SystemOption{ecs.Label(LabelInput)}},
		{StageFirst, NewTimeSystem(), []ecs.SystemOption{ecs.Label(LabelTime)}},

		{StageUpdate, NewPlayerControllerSystem(), []ecs.SystemOption{ecs.Label(LabelPlayerControl)}},
		{StageUpdate, trigger, []ecs.SystemOption{ecs.Label(LabelDialogueTrigger)}},
		{StageUpdate, NewDialogueSystem(cfg.Captions), []ecs.SystemOption{ecs.Label(LabelDialogue), ecs.After(LabelDialogueTrigger)}},
		{StageUpdate, NewAudioSystem(cfg.Speech), []ecs.SystemOption{ecs.Label(LabelAudio), ecs.After(LabelDialogue)}},

		{StagePhysics, p.Gravity, []ecs.SystemOption{ecs.Label(LabelGravity), ecs.Before(LabelMove)}},
		{StagePhysics, NewMoveSystem(), []ecs.SystemOption{ecs.Label(LabelMove)}},
		{StagePhysics, NewLevelBoundarySystem(), []ecs.SystemOption{ecs.Label(LabelBoundary), ecs.After(LabelMove)}},

		{StagePostUpdate, NewCameraSystem(), []ecs.SystemOption{ecs.Label(LabelCamera)}},
		{StagePostUpdate, NewPositionSyncSystem(), []ecs.SystemOption{ecs.Label(LabelPositionSync), ecs.After(LabelCamera)}},
		{StagePostUpdate, NewSnowflakeSystem(cfg.Snow, cfg.Rand), []ecs.SystemOption{ecs.Label(LabelSnowflakes), ecs.After(LabelPositionSync)}},
		{StagePostUpdate, NewPlayerAnimationSystem(), []ecs.SystemOption{ecs.Label(LabelAnimation)}},

		{StageLevel, p.Level, nil},
	}
	for _, a := range adds {
		if err := s.Add(a.stage, a.system, a.opts...); err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
	}

	if err := s.SetRunCriteria(StagePhysics, func(w *ecs.World) bool {
		t, ok := ecs.Resource(w, component.TimeComponent.Kind())
		return ok && t.Delta > 0
	}); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	if err := s.Build(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return p, nil
}

// Start enters the pending initial level so the first tick already sees
// valid boundaries.
func (p *Pipeline) Start(w *ecs.World) {
	p.Level.Update(w)
}

func (p *Pipeline) Update(w *ecs.World) {
	p.Scheduler.Update(w)
}
