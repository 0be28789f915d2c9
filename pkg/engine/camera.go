// pkg/engine/camera.go
package engine

import (
	"math"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// Camera is a first-person camera with mouse look. Yaw and pitch are kept
// in degrees to match the mouse sensitivity scale; the derived basis
// vectors are what everything else consumes.
type Camera struct {
	Position physics.Vector3D
	Yaw      float64 // degrees, horizontal
	Pitch    float64 // degrees, vertical

	Front physics.Vector3D
	Right physics.Vector3D
	Up    physics.Vector3D

	WorldUp    physics.Vector3D
	PitchLimit float64 // degrees, prevents camera flip
}

// NewCamera creates a camera at the given position looking down -Z
func NewCamera(position physics.Vector3D, pitchLimit float64) *Camera {
	c := &Camera{
		Position:   position,
		Yaw:        -90.0,
		Pitch:      0.0,
		WorldUp:    physics.Vector3D{Y: 1},
		PitchLimit: pitchLimit,
	}
	c.updateVectors()
	return c
}

// updateVectors recomputes the basis from yaw and pitch
func (c *Camera) updateVectors() {
	yaw := c.Yaw * math.Pi / 180
	pitch := c.Pitch * math.Pi / 180

	c.Front = physics.Vector3D{
		X: math.Cos(yaw) * math.Cos(pitch),
		Y: math.Sin(pitch),
		Z: math.Sin(yaw) * math.Cos(pitch),
	}.Normalize()

	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// ProcessMouseDelta turns mouse movement into camera rotation
func (c *Camera) ProcessMouseDelta(dx, dy float64) {
	c.Yaw += dx
	c.Pitch += dy
	c.Pitch = physics.Clamp(c.Pitch, -c.PitchLimit, c.PitchLimit)
	c.updateVectors()
}

// MoveForward moves the camera along its view direction
func (c *Camera) MoveForward(distance float64) {
	c.Position = c.Position.Add(c.Front.Scale(distance))
}

// MoveBackward moves the camera against its view direction
func (c *Camera) MoveBackward(distance float64) {
	c.Position = c.Position.Sub(c.Front.Scale(distance))
}

// MoveRight strafes right
func (c *Camera) MoveRight(distance float64) {
	c.Position = c.Position.Add(c.Right.Scale(distance))
}

// MoveLeft strafes left
func (c *Camera) MoveLeft(distance float64) {
	c.Position = c.Position.Sub(c.Right.Scale(distance))
}

// ViewTarget returns the point the camera is looking at
func (c *Camera) ViewTarget() physics.Vector3D {
	return c.Position.Add(c.Front)
}

// ForwardVector returns the current view direction, used for shooting
func (c *Camera) ForwardVector() physics.Vector3D {
	return c.Front
}
