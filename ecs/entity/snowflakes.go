package entity

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/prefabs"
)

// Rand is the subset of *rand.Rand particle placement needs.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// SnowflakeCount is how many snowflakes fill bounds grown by margin on every
// side.
func SnowflakeCount(bounds cp.BB, margin, density float64) int {
	h := math.Abs(bounds.T-bounds.B) + 2*margin
	w := math.Abs(bounds.R-bounds.L) + 2*margin
	return int(math.Floor(math.Abs(density * h * w)))
}

// RandomIn returns a uniformly random value in [lo, hi).
func RandomIn(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// SpawnSnowflakes scatters snowflakes across bounds plus the spec margin as
// children of parent.
func SpawnSnowflakes(w *ecs.World, parent ecs.Entity, bounds cp.BB, density float64, spec *prefabs.SnowflakesSpec, rng Rand) ([]ecs.Entity, error) {
	n := SnowflakeCount(bounds, spec.Margin, density)
	frames := spec.Frames
	if frames <= 0 {
		frames = 1
	}

	out := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		x := RandomIn(rng, bounds.L-spec.Margin, bounds.R+spec.Margin)
		y := RandomIn(rng, bounds.B-spec.Margin, bounds.T+spec.Margin)

		flake := ecs.CreateEntity(w)
		if err := ecs.SetParent(w, flake, parent); err != nil {
			return nil, err
		}
		if err := ecs.Add(w, flake, component.SnowflakeComponent.Kind(), &component.Snowflake{}); err != nil {
			return nil, err
		}
		if err := ecs.Add(w, flake, component.PositionComponent.Kind(), &component.Position{Vector: cp.Vector{X: x, Y: y}}); err != nil {
			return nil, err
		}
		if err := ecs.Add(w, flake, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
			return nil, err
		}
		if err := ecs.Add(w, flake, component.SpriteComponent.Kind(), &component.Sprite{
			Texture: spec.Texture,
			Frame:   rng.IntN(frames),
			Z:       spec.Z,
		}); err != nil {
			return nil, err
		}
		out = append(out, flake)
	}
	return out, nil
}
