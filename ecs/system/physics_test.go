package system

import (
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func physicsWorld(t *testing.T, bounds cp.BB) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	ecs.SetResource(w, component.TimeComponent.Kind(), &component.Time{Delta: 1.0 / 60.0})
	ecs.SetResource(w, component.LevelPlayerBoundaryComponent.Kind(), &component.LevelPlayerBoundary{BB: bounds})

	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{}))
	require.NoError(t, ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}))
	require.NoError(t, ecs.Add(w, e, component.SpriteBoundaryComponent.Kind(), &component.SpriteBoundary{BB: cp.BB{L: -15, B: -25, R: 15, T: 25}}))
	require.NoError(t, ecs.Add(w, e, component.GroundStateComponent.Kind(), &component.GroundState{}))
	return w, e
}

func TestGravityAppliesOnlyToTaggedEntities(t *testing.T) {
	w, e := physicsWorld(t, cp.BB{L: -100, B: -100, R: 100, T: 100})
	other := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, other, component.VelocityComponent.Kind(), &component.Velocity{}))
	require.NoError(t, ecs.Add(w, e, component.GravityComponent.Kind(), &component.Gravity{}))

	NewGravitySystem(450).Update(w)

	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	assert.InDelta(t, -450.0/60.0, vel.Y, 1e-9)
	untouched, _ := ecs.Get(w, other, component.VelocityComponent.Kind())
	assert.Zero(t, untouched.Y)
}

func TestMoveIntegratesVelocity(t *testing.T) {
	w, e := physicsWorld(t, cp.BB{L: -100, B: -100, R: 100, T: 100})
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	vel.Vector = cp.Vector{X: 60, Y: -30}

	NewMoveSystem().Update(w)

	pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
	assert.InDelta(t, 1.0, pos.X, 1e-9)
	assert.InDelta(t, -0.5, pos.Y, 1e-9)
}

func TestLevelBoundaryClamp(t *testing.T) {
	bounds := cp.BB{L: -100, B: -105, R: 100, T: 105}

	tests := []struct {
		name    string
		pos     cp.Vector
		vel     cp.Vector
		wantPos cp.Vector
		wantVel cp.Vector
		ground  bool
	}{
		{"inside", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 5, Y: -5}, cp.Vector{X: 0, Y: 0}, cp.Vector{X: 5, Y: -5}, false},
		{"left wall", cp.Vector{X: -200, Y: 0}, cp.Vector{X: -20, Y: 0}, cp.Vector{X: -85, Y: 0}, cp.Vector{X: 0, Y: 0}, false},
		{"left wall moving away", cp.Vector{X: -200, Y: 0}, cp.Vector{X: 20, Y: 0}, cp.Vector{X: -85, Y: 0}, cp.Vector{X: 20, Y: 0}, false},
		{"right wall", cp.Vector{X: 200, Y: 0}, cp.Vector{X: 20, Y: 0}, cp.Vector{X: 85, Y: 0}, cp.Vector{X: 0, Y: 0}, false},
		{"floor", cp.Vector{X: 0, Y: -300}, cp.Vector{X: 3, Y: -50}, cp.Vector{X: 0, Y: -80}, cp.Vector{X: 3, Y: 0}, true},
		{"ceiling", cp.Vector{X: 0, Y: 300}, cp.Vector{X: 0, Y: 50}, cp.Vector{X: 0, Y: 80}, cp.Vector{X: 0, Y: 0}, false},
		{"resting on floor", cp.Vector{X: 0, Y: -80}, cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: -80}, cp.Vector{X: 0, Y: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, e := physicsWorld(t, bounds)
			pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
			vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			pos.Vector = tt.pos
			vel.Vector = tt.vel

			NewLevelBoundarySystem().Update(w)

			assert.Equal(t, tt.wantPos, pos.Vector)
			assert.Equal(t, tt.wantVel, vel.Vector)
			ground, _ := ecs.Get(w, e, component.GroundStateComponent.Kind())
			assert.Equal(t, tt.ground, ground.OnGround)
		})
	}
}

func TestClampedPositionStaysInsideBoundary(t *testing.T) {
	g := newGame(t)
	rng := rand.New(rand.NewPCG(7, 7))
	keys := []ebiten.Key{ebiten.KeyA, ebiten.KeyD, KeyJump}

	for i := 0; i < 2000; i++ {
		k := keys[rng.IntN(len(keys))]
		if rng.IntN(2) == 0 {
			g.keys.press(k)
		} else {
			g.keys.release(k)
		}
		g.tick()

		bounds := ecs.MustResource(g.w, component.LevelPlayerBoundaryComponent.Kind())
		box, _ := ecs.Get(g.w, g.santa, component.SpriteBoundaryComponent.Kind())
		pos := g.position()
		require.GreaterOrEqual(t, pos.X+box.L, bounds.L, "tick %d", i)
		require.LessOrEqual(t, pos.X+box.R, bounds.R, "tick %d", i)
		require.GreaterOrEqual(t, pos.Y+box.B, bounds.B, "tick %d", i)
		require.LessOrEqual(t, pos.Y+box.T, bounds.T, "tick %d", i)
	}
}

func TestJustLandedIsRisingEdgeOfOnGround(t *testing.T) {
	g := newGame(t)

	prev := g.ground().OnGround
	landings := 0
	for i := 0; i < 400; i++ {
		if i == 120 || i == 250 {
			g.keys.press(KeyJump)
		}
		g.tick()
		gs := g.ground()
		assert.Equal(t, gs.OnGround && !prev, gs.JustLanded, "tick %d", i)
		if gs.JustLanded {
			landings++
		}
		prev = gs.OnGround
	}
	assert.Equal(t, 3, landings)
}
