package system

import (
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/ecs/entity"
	"github.com/milk9111/santa/prefabs"
	"github.com/stretchr/testify/require"
)

// fakeKeys is a KeySource driven by the test. Just-pressed and just-released
// sets are cleared by step.
type fakeKeys struct {
	held     map[ebiten.Key]bool
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{
		held:     map[ebiten.Key]bool{},
		pressed:  map[ebiten.Key]bool{},
		released: map[ebiten.Key]bool{},
	}
}

func (k *fakeKeys) Pressed(key ebiten.Key) bool      { return k.held[key] }
func (k *fakeKeys) JustPressed(key ebiten.Key) bool  { return k.pressed[key] }
func (k *fakeKeys) JustReleased(key ebiten.Key) bool { return k.released[key] }

func (k *fakeKeys) press(key ebiten.Key) {
	k.held[key] = true
	k.pressed[key] = true
}

func (k *fakeKeys) release(key ebiten.Key) {
	delete(k.held, key)
	k.released[key] = true
}

func (k *fakeKeys) step() {
	clear(k.pressed)
	clear(k.released)
}

// recordingSpeech remembers every cue it was asked to play.
type recordingSpeech struct {
	played []string
}

func (r *recordingSpeech) Play(cue string) error {
	r.played = append(r.played, cue)
	return nil
}

type specs struct {
	player   *prefabs.PlayerSpec
	camera   *prefabs.CameraSpec
	levels   *prefabs.LevelsSpec
	snow     *prefabs.SnowflakesSpec
	dialogue *prefabs.DialogueSpec
	assets   *prefabs.AssetsSpec
}

func loadSpecs(t *testing.T) specs {
	t.Helper()
	var s specs
	var err error
	s.player, err = prefabs.LoadPlayerSpec()
	require.NoError(t, err)
	s.camera, err = prefabs.LoadCameraSpec()
	require.NoError(t, err)
	s.levels, err = prefabs.LoadLevelsSpec()
	require.NoError(t, err)
	s.snow, err = prefabs.LoadSnowflakesSpec()
	require.NoError(t, err)
	s.dialogue, err = prefabs.LoadDialogueSpec()
	require.NoError(t, err)
	s.assets, err = prefabs.LoadAssetsSpec()
	require.NoError(t, err)
	return s
}

func captions(spec *prefabs.AssetsSpec) map[string]string {
	out := make(map[string]string, len(spec.Speech))
	for _, s := range spec.Speech {
		out[s.Name()] = s.Text
	}
	return out
}

// game is a headless world with the full pipeline wired to fakes.
type game struct {
	w      *ecs.World
	p      *Pipeline
	keys   *fakeKeys
	speech *recordingSpeech
	santa  ecs.Entity
	specs  specs
}

func newGame(t *testing.T) *game {
	t.Helper()
	s := loadSpecs(t)

	w := ecs.NewWorld()
	entity.InitResources(w, component.LevelID(s.levels.Initial), s.player.Spawn.Vector())

	santa, err := entity.NewSanta(w, s.player)
	require.NoError(t, err)
	_, err = entity.NewCamera(w, s.camera)
	require.NoError(t, err)

	g := &game{w: w, keys: newFakeKeys(), speech: &recordingSpeech{}, santa: santa, specs: s}
	caps := captions(s.assets)
	g.p, err = NewPipeline(PipelineConfig{
		Keys:     g.keys,
		Speech:   g.speech,
		Captions: caps,
		KnownCue: func(cue string) bool { _, ok := caps[cue]; return ok },
		Rand:     rand.New(rand.NewPCG(1, 2)),
		Player:   s.player,
		Levels:   s.levels,
		Snow:     s.snow,
		Dialogue: s.dialogue,
	})
	require.NoError(t, err)
	g.p.Start(w)
	return g
}

func (g *game) tick() {
	g.p.Update(g.w)
	g.keys.step()
}

func (g *game) ticks(n int) {
	for i := 0; i < n; i++ {
		g.tick()
	}
}

func (g *game) position() *component.Position {
	pos, _ := ecs.Get(g.w, g.santa, component.PositionComponent.Kind())
	return pos
}

func (g *game) velocity() *component.Velocity {
	vel, _ := ecs.Get(g.w, g.santa, component.VelocityComponent.Kind())
	return vel
}

func (g *game) ground() *component.GroundState {
	gs, _ := ecs.Get(g.w, g.santa, component.GroundStateComponent.Kind())
	return gs
}

// settle lets Santa fall onto the floor.
func (g *game) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 600 && !g.ground().OnGround; i++ {
		g.tick()
	}
	require.True(t, g.ground().OnGround, "santa never reached the ground")
}
