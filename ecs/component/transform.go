package component

// Transform is the render-space placement of an entity. Gameplay systems write
// Position; the position sync copies it here once physics has settled.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
