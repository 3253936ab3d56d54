package common

import "math"

// TimeStep is the fixed simulation step; ebiten runs Update at 60 TPS.
const TimeStep = 1.0 / 60.0

// Default window size before the first layout.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// JumpPower is the launch speed for a jump of maxHeight. It is tuned for
// feel and overshoots the textbook projectile solution.
func JumpPower(maxHeight, gravity float64) float64 {
	jumpTime := math.Sqrt(maxHeight / gravity)
	return gravity*jumpTime + maxHeight/jumpTime
}
