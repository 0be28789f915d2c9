// pkg/entity/meteorite.go
package entity

import (
	"math/rand/v2"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// BoundingSphereScale is the stock collider padding so wireframes read
// as solid. The engine passes the configured scale instead; this is the
// default for direct construction.
const BoundingSphereScale = 1.2

// Meteorite is an indestructible tumbling obstacle. It blocks lasers and
// knocks the player back on contact.
type Meteorite struct {
	BaseEntity
	Size          float64
	rotationSpeed [3]float64
}

// NewMeteorite creates a meteorite of the given size with a random slow
// tumble and drift. The collider radius is size times scale; the caller
// must use the same scale when padding spatial queries.
func NewMeteorite(id ID, position physics.Vector3D, size, scale float64, rng *rand.Rand) *Meteorite {
	drift := func() float64 { return rng.Float64()*0.1 - 0.05 }
	tumble := func() float64 { return rng.Float64()*0.4 - 0.2 }

	return &Meteorite{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Velocity: physics.Vector3D{X: drift(), Y: drift(), Z: drift()},
			Scale:    physics.Vector3D{X: size, Y: size, Z: size},
			Collider: physics.Sphere{
				Center: position,
				Radius: size * scale,
			},
			Model:  MeteoriteModel(size, rng),
			Active: true,
		},
		Size:          size,
		rotationSpeed: [3]float64{tumble(), tumble(), tumble()},
	}
}

// Update advances the meteorite's drift and tumble
func (m *Meteorite) Update(deltaTime float64) {
	m.BaseEntity.Update(deltaTime)

	m.Rotate(
		m.rotationSpeed[0]*deltaTime,
		m.rotationSpeed[1]*deltaTime,
		m.rotationSpeed[2]*deltaTime,
	)
}

// IsIndestructible is always true for meteorites
func (m *Meteorite) IsIndestructible() bool {
	return true
}
