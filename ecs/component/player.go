package component

// PlayerController carries the movement tuning for the controlled entity.
type PlayerController struct {
	MaxWalkSpeed float64
	Acceleration float64
	Deceleration float64
	JumpPower    float64
}

var PlayerControllerComponent = NewComponent[PlayerController]()
