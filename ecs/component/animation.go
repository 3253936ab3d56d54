package component

const (
	SantaFrameIdle     = 0
	SantaFrameStep     = 1
	SantaFrameAirborne = 2
)

// WalkAnimation drives the two-frame walk cycle and the airborne frame.
type WalkAnimation struct {
	Period           float64
	LandingThreshold float64
	Timer            float64
	Frame            int
}

var WalkAnimationComponent = NewComponent[WalkAnimation]()
