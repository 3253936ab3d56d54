package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestStepAnimation(t *testing.T) {
	newAnim := func() *component.WalkAnimation {
		return &component.WalkAnimation{Period: 0.3, LandingThreshold: 1}
	}

	t.Run("airborne", func(t *testing.T) {
		anim := newAnim()
		stepAnimation(anim, &component.GroundState{}, &component.Velocity{}, 0.1)
		assert.Equal(t, component.SantaFrameAirborne, anim.Frame)
	})

	t.Run("soft landing resets", func(t *testing.T) {
		anim := newAnim()
		anim.Frame = component.SantaFrameAirborne
		anim.Timer = 0.25
		stepAnimation(anim, &component.GroundState{OnGround: true, JustLanded: true}, &component.Velocity{}, 0.1)
		assert.Equal(t, component.SantaFrameIdle, anim.Frame)
		assert.Zero(t, anim.Timer)
	})

	t.Run("hard landing holds airborne frame", func(t *testing.T) {
		anim := newAnim()
		anim.Frame = component.SantaFrameAirborne
		vel := &component.Velocity{}
		vel.Y = 5
		stepAnimation(anim, &component.GroundState{OnGround: true, JustLanded: true}, vel, 0.1)
		assert.Equal(t, component.SantaFrameAirborne, anim.Frame)

		vel.Y = 0
		stepAnimation(anim, &component.GroundState{OnGround: true}, vel, 0.1)
		assert.Equal(t, component.SantaFrameIdle, anim.Frame)
	})

	t.Run("walk cycle alternates each period", func(t *testing.T) {
		anim := &component.WalkAnimation{Period: 0.25, LandingThreshold: 1}
		vel := &component.Velocity{}
		vel.X = 20
		ground := &component.GroundState{OnGround: true}

		var frames []int
		for i := 0; i < 7; i++ {
			stepAnimation(anim, ground, vel, 0.125)
			frames = append(frames, anim.Frame)
		}
		assert.Equal(t, []int{0, 1, 1, 0, 0, 1, 1}, frames)
	})

	t.Run("standing still idles", func(t *testing.T) {
		anim := newAnim()
		anim.Frame = component.SantaFrameStep
		anim.Timer = 0.2
		stepAnimation(anim, &component.GroundState{OnGround: true}, &component.Velocity{}, 0.1)
		assert.Equal(t, component.SantaFrameIdle, anim.Frame)
		assert.Zero(t, anim.Timer)
	})
}

func TestSantaSpriteFollowsMovement(t *testing.T) {
	g := newGame(t)
	sprite, _ := ecs.Get(g.w, g.santa, component.SpriteComponent.Kind())

	g.tick()
	assert.Equal(t, component.SantaFrameAirborne, sprite.Frame)

	g.settle(t)
	g.keys.press(ebiten.KeyA)
	g.ticks(3)
	assert.True(t, sprite.FlipX)

	g.keys.release(ebiten.KeyA)
	g.keys.press(ebiten.KeyD)
	g.ticks(40)
	assert.False(t, sprite.FlipX)
}
