package component

// Sprite draws one frame of a named texture atlas centered on the transform.
type Sprite struct {
	Texture string
	Frame   int
	Z       float64
	FlipX   bool
}

var SpriteComponent = NewComponent[Sprite]()
