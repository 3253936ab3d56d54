package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestLoadEmbeddedSpecs(t *testing.T) {
	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, 450.0, player.Gravity)
	assert.Equal(t, 30.0, player.JumpHeight)
	assert.Equal(t, VecSpec{X: -200, Y: 0}, player.Spawn)

	camera, err := LoadCameraSpec()
	require.NoError(t, err)
	assert.Equal(t, 4.0, camera.MinScale)
	assert.Equal(t, 200.0, camera.BackgroundHeight)

	levels, err := LoadLevelsSpec()
	require.NoError(t, err)
	assert.Equal(t, "outside", levels.Initial)
	require.Contains(t, levels.Levels, "indoors")
	outside := levels.Levels["outside"]
	assert.Equal(t, 0.002, outside.SnowflakeDensity)
	assert.Equal(t, -260.0, outside.PlayerBoundary.BB().L)
	require.Len(t, outside.Exits, 1)
	require.NotNil(t, outside.Exits[0].MinX)
	assert.Equal(t, 200.0, *outside.Exits[0].MinX)

	snow, err := LoadSnowflakesSpec()
	require.NoError(t, err)
	assert.Equal(t, 4, snow.Frames)
	assert.Equal(t, int64(432627), snow.NoiseY.Seed)

	dialogue, err := LoadDialogueSpec()
	require.NoError(t, err)
	require.Len(t, dialogue.States, 4)
	assert.Equal(t, "hello", dialogue.States[0].Name)

	assetsSpec, err := LoadAssetsSpec()
	require.NoError(t, err)
	assert.Len(t, assetsSpec.Speech, 8)
	assert.Contains(t, assetsSpec.Textures, "santa")
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[PlayerSpec]("nope.yaml")
	assert.Error(t, err)
}

func TestLevelsValidate(t *testing.T) {
	ok := LevelSpec{Exits: []ExitSpec{{Target: "b", MinX: f64(1)}}}
	cases := []struct {
		name    string
		spec    LevelsSpec
		wantErr bool
	}{
		{"valid", LevelsSpec{Initial: "a", Levels: map[string]LevelSpec{"a": ok, "b": {}}}, false},
		{"unknown initial", LevelsSpec{Initial: "c", Levels: map[string]LevelSpec{"a": {}}}, true},
		{"unknown target", LevelsSpec{Initial: "a", Levels: map[string]LevelSpec{"a": ok}}, true},
		{"self exit", LevelsSpec{Initial: "a", Levels: map[string]LevelSpec{
			"a": {Exits: []ExitSpec{{Target: "a", MaxX: f64(0)}}},
		}}, true},
		{"no threshold", LevelsSpec{Initial: "a", Levels: map[string]LevelSpec{
			"a": {Exits: []ExitSpec{{Target: "b"}}},
			"b": {},
		}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSpeechSpecName(t *testing.T) {
	assert.Equal(t, "hello_1", SpeechSpec{Path: "speech/hello_1.wav"}.Name())
	assert.Equal(t, "tutorial_3", SpeechSpec{Path: "assets/speech/tutorial_3.ogg"}.Name())
	assert.Equal(t, "raw", SpeechSpec{Path: "raw"}.Name())
}

func TestPrefabPaths(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("prefabs/player.yaml"))
	assert.Equal(t, "player.yaml", cleanPrefabPath("player.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))

	assert.True(t, isSpecFile("prefabs/levels.yaml"))
	assert.True(t, isSpecFile("x.YML"))
	assert.False(t, isSpecFile("levels.yaml~"))
	assert.False(t, isSpecFile("notes.txt"))
}
