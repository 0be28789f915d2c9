// pkg/entity/lifesphere.go
package entity

import (
	"math"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// LifeSphere is a pickup granting the player an extra life
type LifeSphere struct {
	BaseEntity
	Size          float64
	RotationSpeed float64
	Collected     bool
	age           float64
}

// NewLifeSphere creates a life sphere pickup at the given position
func NewLifeSphere(id ID, position physics.Vector3D, size, rotationSpeed float64) *LifeSphere {
	return &LifeSphere{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Scale:    physics.Vector3D{X: size, Y: size, Z: size},
			Collider: physics.Sphere{
				Center: position,
				Radius: size,
			},
			Model:  LifeSphereModel(size),
			Active: true,
		},
		Size:          size,
		RotationSpeed: rotationSpeed,
	}
}

// Update spins the sphere and bobs it gently so it stands out
func (l *LifeSphere) Update(deltaTime float64) {
	l.BaseEntity.Update(deltaTime)

	l.Rotate(
		deltaTime*l.RotationSpeed,
		deltaTime*l.RotationSpeed*1.5,
		deltaTime*l.RotationSpeed*0.8,
	)

	l.age += deltaTime
	l.Position.Y += math.Sin(l.age*2) * 0.01
	l.Collider.Center = l.Position
}

// Collect marks the sphere as picked up and removes it from play
func (l *LifeSphere) Collect() {
	l.Collected = true
	l.Destroy()
}

// IsCollected reports whether the player picked up this sphere
func (l *LifeSphere) IsCollected() bool {
	return l.Collected
}
