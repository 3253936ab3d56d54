package system

import (
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakesFallWrapAndDrift(t *testing.T) {
	s := loadSpecs(t)
	bounds := cp.BB{L: -50, B: -20, R: 50, T: 20}

	w := ecs.NewWorld()
	ecs.SetResource(w, component.TimeComponent.Kind(), &component.Time{Delta: 0.5, Elapsed: 3})
	ecs.SetResource(w, component.LevelCameraBoundaryComponent.Kind(), &component.LevelCameraBoundary{BB: bounds})

	rng := rand.New(rand.NewPCG(3, 4))
	root := ecs.CreateEntity(w)
	flakes, err := entity.SpawnSnowflakes(w, root, bounds, 0.01, s.snow, rng)
	require.NoError(t, err)
	require.Len(t, flakes, entity.SnowflakeCount(bounds, s.snow.Margin, 0.01))
	require.NotEmpty(t, flakes)

	falling, _ := ecs.Get(w, flakes[0], component.PositionComponent.Kind())
	falling.Vector = cp.Vector{X: 0, Y: 0}
	bottom, _ := ecs.Get(w, flakes[1], component.PositionComponent.Kind())
	bottom.Vector = cp.Vector{X: 10, Y: bounds.B - s.snow.Margin + 1}

	sys := NewSnowflakeSystem(s.snow, rng)
	sys.Update(w)

	assert.InDelta(t, -s.snow.FallSpeed*0.5, falling.Y, 1e-9)
	assert.Equal(t, 0.0, falling.X)

	assert.Equal(t, bounds.T+s.snow.Margin, bottom.Y, "wrapped to the top")
	assert.GreaterOrEqual(t, bottom.X, bounds.L-s.snow.Margin)
	assert.Less(t, bottom.X, bounds.R+s.snow.Margin)

	for _, f := range flakes {
		sprite, _ := ecs.Get(w, f, component.SpriteComponent.Kind())
		assert.GreaterOrEqual(t, sprite.Frame, 0)
		assert.Less(t, sprite.Frame, s.snow.Frames)

		pos, _ := ecs.Get(w, f, component.PositionComponent.Kind())
		tr, _ := ecs.Get(w, f, component.TransformComponent.Kind())
		// Drift is bounded by the amplitudes times the fractal sum.
		assert.InDelta(t, pos.X, tr.X, s.snow.NoiseX.Amplitude*4)
		assert.InDelta(t, pos.Y, tr.Y, s.snow.NoiseY.Amplitude*4)

		parent, ok := ecs.Parent(w, f)
		assert.True(t, ok)
		assert.Equal(t, root, parent)
	}
}

func TestNoiseFieldIsDeterministic(t *testing.T) {
	s := loadSpecs(t)
	a := newNoiseField(s.snow.NoiseX)
	b := newNoiseField(s.snow.NoiseX)
	other := newNoiseField(s.snow.NoiseY)

	assert.Equal(t, a.sample(12.5, -40, 3), b.sample(12.5, -40, 3))
	assert.NotEqual(t, a.sample(12.5, -40, 3), other.sample(12.5, -40, 3))
}

func TestPositionSyncSkipsSnowflakes(t *testing.T) {
	w := ecs.NewWorld()
	plain := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, plain, component.PositionComponent.Kind(), &component.Position{Vector: cp.Vector{X: 3, Y: 4}}))
	require.NoError(t, ecs.Add(w, plain, component.TransformComponent.Kind(), &component.Transform{}))
	flake := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, flake, component.PositionComponent.Kind(), &component.Position{Vector: cp.Vector{X: 3, Y: 4}}))
	require.NoError(t, ecs.Add(w, flake, component.TransformComponent.Kind(), &component.Transform{X: 9, Y: 9}))
	require.NoError(t, ecs.Add(w, flake, component.SnowflakeComponent.Kind(), &component.Snowflake{}))

	NewPositionSyncSystem().Update(w)

	tr, _ := ecs.Get(w, plain, component.TransformComponent.Kind())
	assert.Equal(t, 3.0, tr.X)
	assert.Equal(t, 4.0, tr.Y)
	tr, _ = ecs.Get(w, flake, component.TransformComponent.Kind())
	assert.Equal(t, 9.0, tr.X)
}
