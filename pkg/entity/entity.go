// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector3D
	GetCollider() physics.Sphere
	Update(deltaTime float64)
	Render(r Renderer)
	IsActive() bool
	Destroy()
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector3D
	Velocity physics.Vector3D
	Rotation [3]float64 // Euler angles in radians around X, Y, Z
	Scale    physics.Vector3D
	Collider physics.Sphere
	Model    *WireframeModel
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector3D {
	return e.Position
}

// GetCollider returns the entity's collision shape
func (e *BaseEntity) GetCollider() physics.Sphere {
	return physics.Sphere{
		Center: e.Position,
		Radius: e.Collider.Radius,
	}
}

// Update advances the entity's position based on velocity
func (e *BaseEntity) Update(deltaTime float64) {
	e.Position = e.Position.Add(e.Velocity.Scale(deltaTime))
	// Update collider position
	e.Collider.Center = e.Position
}

// Render does nothing for the base type, derived types dispatch to the renderer
func (e *BaseEntity) Render(r Renderer) {
}

// IsActive reports whether the entity still participates in the game
func (e *BaseEntity) IsActive() bool {
	return e.Active
}

// Destroy marks the entity for removal at the end of the frame
func (e *BaseEntity) Destroy() {
	e.Active = false
}

// Rotate adds to the entity's current rotation
func (e *BaseEntity) Rotate(drx, dry, drz float64) {
	e.Rotation[0] += drx
	e.Rotation[1] += dry
	e.Rotation[2] += drz
}

func (s *Ship) Render(r Renderer) {
	r.RenderShip(s)
}

func (e *Enemy) Render(r Renderer) {
	r.RenderEnemy(e)
}

func (m *Meteorite) Render(r Renderer) {
	r.RenderMeteorite(m)
}

func (l *LifeSphere) Render(r Renderer) {
	r.RenderLifeSphere(l)
}

func (p *Projectile) Render(r Renderer) {
	r.RenderProjectile(p)
}
