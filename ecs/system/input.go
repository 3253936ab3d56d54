package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// KeySource reports keyboard state for the current tick.
type KeySource interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool      { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

// EbitenKeys reads the real keyboard.
func EbitenKeys() KeySource {
	return ebitenKeys{}
}

const (
	KeyJump     = ebiten.KeySpace
	KeyInteract = ebiten.KeyF
	KeyAdvance  = ebiten.KeyP
	KeyPause    = ebiten.KeyEscape
)

type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	if keys == nil {
		keys = EbitenKeys()
	}
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	input := ecs.MustResource(w, component.InputComponent.Kind())

	left := i.keys.Pressed(ebiten.KeyA) || i.keys.Pressed(ebiten.KeyArrowLeft)
	right := i.keys.Pressed(ebiten.KeyD) || i.keys.Pressed(ebiten.KeyArrowRight)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	input.MoveX = moveX
	input.Jump = i.keys.Pressed(KeyJump)
	input.JumpPressed = i.keys.JustPressed(KeyJump)
	input.InteractReleased = i.keys.JustReleased(KeyInteract)
	input.AdvanceReleased = i.keys.JustReleased(KeyAdvance)
	input.PausePressed = i.keys.JustPressed(KeyPause)
}
