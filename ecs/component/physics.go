package component

import "github.com/jakecoffman/cp"

// Position is an entity's logical world-space location. Y grows upwards.
type Position struct {
	cp.Vector
}

var PositionComponent = NewComponent[Position]()

// Velocity is an entity's speed in world units per second.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()

// Gravity marks entities pulled down by the physics step.
type Gravity struct{}

var GravityComponent = NewComponent[Gravity]()

// SpriteBoundary is the collision envelope as offsets from the entity origin:
// L and B are usually negative, R and T positive.
type SpriteBoundary struct {
	cp.BB
}

var SpriteBoundaryComponent = NewComponent[SpriteBoundary]()

// GroundState is derived from the boundary clamp every physics tick.
type GroundState struct {
	OnGround   bool
	JustLanded bool
}

var GroundStateComponent = NewComponent[GroundState]()
