package system

import (
	"github.com/aquilax/go-perlin"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/milk9111/santa/ecs/entity"
	"github.com/milk9111/santa/prefabs"
)

// noiseField samples a fractal Perlin field scaled to world units.
type noiseField struct {
	perlin    *perlin.Perlin
	frequency float64
	amplitude float64
}

func newNoiseField(spec prefabs.NoiseSpec) noiseField {
	persistence := spec.Persistence
	if persistence <= 0 {
		persistence = 0.5
	}
	lacunarity := spec.Lacunarity
	if lacunarity <= 0 {
		lacunarity = 2
	}
	octaves := spec.Octaves
	if octaves <= 0 {
		octaves = 1
	}
	// go-perlin divides each octave by alpha and multiplies the coordinates
	// by beta.
	return noiseField{
		perlin:    perlin.NewPerlin(1/persistence, lacunarity, octaves, spec.Seed),
		frequency: spec.Frequency,
		amplitude: spec.Amplitude,
	}
}

func (n noiseField) sample(x, y, t float64) float64 {
	f := n.frequency
	return n.perlin.Noise3D(x*f, y*f, t*f) * n.amplitude
}

// SnowflakeSystem lets snowflakes fall, wraps them from the bottom of the
// camera boundary back to the top, and adds noise drift to their transforms.
type SnowflakeSystem struct {
	spec   *prefabs.SnowflakesSpec
	noiseX noiseField
	noiseY noiseField
	rng    entity.Rand
}

func NewSnowflakeSystem(spec *prefabs.SnowflakesSpec, rng entity.Rand) *SnowflakeSystem {
	return &SnowflakeSystem{
		spec:   spec,
		noiseX: newNoiseField(spec.NoiseX),
		noiseY: newNoiseField(spec.NoiseY),
		rng:    rng,
	}
}

func (ss *SnowflakeSystem) Update(w *ecs.World) {
	t := ecs.MustResource(w, component.TimeComponent.Kind())
	bounds := ecs.MustResource(w, component.LevelCameraBoundaryComponent.Kind())
	margin := ss.spec.Margin
	noiseTime := t.Elapsed * ss.spec.TimeScale

	ecs.ForEach3(w,
		component.SnowflakeComponent.Kind(),
		component.PositionComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.Snowflake, pos *component.Position, tr *component.Transform) {
			pos.Y -= ss.spec.FallSpeed * t.Delta
			if pos.Y < bounds.B-margin {
				pos.X = entity.RandomIn(ss.rng, bounds.L-margin, bounds.R+margin)
				pos.Y = bounds.T + margin
			}

			tr.X = pos.X + ss.noiseX.sample(pos.X, pos.Y, noiseTime)
			tr.Y = pos.Y + ss.noiseY.sample(pos.X, pos.Y, noiseTime)
		})
}
