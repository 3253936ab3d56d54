package component

// Input is the per-tick snapshot of the keys the game reacts to.
type Input struct {
	MoveX            float64
	Jump             bool
	JumpPressed      bool
	InteractReleased bool
	AdvanceReleased  bool
	PausePressed     bool
}

var InputComponent = NewComponent[Input]()
