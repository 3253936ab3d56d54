package prefabs

import (
	"fmt"
	"path"
	"strings"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VecSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// RectSpec is an axis-aligned rectangle with Y growing upwards.
type RectSpec struct {
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
}

func (r RectSpec) BB() cp.BB {
	return cp.BB{L: r.Left, B: r.Bottom, R: r.Right, T: r.Top}
}

type AssetsSpec struct {
	Font     string                 `yaml:"font"`
	Textures map[string]TextureSpec `yaml:"textures"`
	Speech   []SpeechSpec           `yaml:"speech"`
}

type TextureSpec struct {
	Path   string      `yaml:"path"`
	Frames []FrameSpec `yaml:"frames"`
}

type FrameSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type SpeechSpec struct {
	Path string `yaml:"path"`
	Text string `yaml:"text"`
}

// Name is the cue name dialogue refers to: the file name without directory
// or extension.
func (s SpeechSpec) Name() string {
	base := path.Base(s.Path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

func LoadAssetsSpec() (*AssetsSpec, error) {
	spec, err := LoadSpec[AssetsSpec]("assets.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Texture          string   `yaml:"texture"`
	Z                float64  `yaml:"z"`
	Spawn            VecSpec  `yaml:"spawn"`
	Boundary         RectSpec `yaml:"boundary"`
	Gravity          float64  `yaml:"gravity"`
	MaxWalkSpeed     float64  `yaml:"max_walk_speed"`
	Acceleration     float64  `yaml:"acceleration"`
	Deceleration     float64  `yaml:"deceleration"`
	JumpHeight       float64  `yaml:"jump_height"`
	FramePeriod      float64  `yaml:"frame_period"`
	LandingThreshold float64  `yaml:"landing_threshold"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Gravity <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: gravity must be positive, got %v", spec.Gravity)
	}
	return &spec, nil
}

type CameraSpec struct {
	MinScale         float64 `yaml:"min_scale"`
	BackgroundHeight float64 `yaml:"background_height"`
	ViewportWidth    float64 `yaml:"viewport_width"`
	ViewportHeight   float64 `yaml:"viewport_height"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	if spec.MinScale <= 0 {
		spec.MinScale = 1
	}
	return &spec, nil
}

type LevelsSpec struct {
	Initial string               `yaml:"initial"`
	Levels  map[string]LevelSpec `yaml:"levels"`
}

type LevelSpec struct {
	Background       string     `yaml:"background"`
	PlayerBoundary   RectSpec   `yaml:"player_boundary"`
	CameraBoundary   RectSpec   `yaml:"camera_boundary"`
	SnowflakeDensity float64    `yaml:"snowflake_density"`
	Exits            []ExitSpec `yaml:"exits"`
}

// ExitSpec leaves a level when the interact key is released while the player
// is past MinX (or before MaxX). Spawn is where the target level places them.
type ExitSpec struct {
	Target string   `yaml:"target"`
	MinX   *float64 `yaml:"min_x"`
	MaxX   *float64 `yaml:"max_x"`
	Spawn  VecSpec  `yaml:"spawn"`
}

func LoadLevelsSpec() (*LevelsSpec, error) {
	spec, err := LoadSpec[LevelsSpec]("levels.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s LevelsSpec) validate() error {
	if _, ok := s.Levels[s.Initial]; !ok {
		return fmt.Errorf("prefabs: levels.yaml: unknown initial level %q", s.Initial)
	}
	for name, lvl := range s.Levels {
		for _, exit := range lvl.Exits {
			if _, ok := s.Levels[exit.Target]; !ok {
				return fmt.Errorf("prefabs: levels.yaml: level %q exits to unknown level %q", name, exit.Target)
			}
			if exit.Target == name {
				return fmt.Errorf("prefabs: levels.yaml: level %q exits to itself", name)
			}
			if exit.MinX == nil && exit.MaxX == nil {
				return fmt.Errorf("prefabs: levels.yaml: level %q exit to %q has no threshold", name, exit.Target)
			}
		}
	}
	return nil
}

type NoiseSpec struct {
	Seed        int64   `yaml:"seed"`
	Octaves     int32   `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Persistence float64 `yaml:"persistence"`
	Amplitude   float64 `yaml:"amplitude"`
}

type SnowflakesSpec struct {
	Texture   string    `yaml:"texture"`
	Frames    int       `yaml:"frames"`
	Z         float64   `yaml:"z"`
	Margin    float64   `yaml:"margin"`
	FallSpeed float64   `yaml:"fall_speed"`
	TimeScale float64   `yaml:"time_scale"`
	NoiseX    NoiseSpec `yaml:"noise_x"`
	NoiseY    NoiseSpec `yaml:"noise_y"`
}

func LoadSnowflakesSpec() (*SnowflakesSpec, error) {
	spec, err := LoadSpec[SnowflakesSpec]("snowflakes.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type DialogueSpec struct {
	AdvanceHint string              `yaml:"advance_hint"`
	States      []DialogueStateSpec `yaml:"states"`
}

// DialogueStateSpec enqueues Cues once the When expression evaluates to true.
type DialogueStateSpec struct {
	Name string   `yaml:"name"`
	When string   `yaml:"when"`
	Cues []string `yaml:"cues"`
}

func LoadDialogueSpec() (*DialogueSpec, error) {
	spec, err := LoadSpec[DialogueSpec]("dialogue.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
