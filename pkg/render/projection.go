// pkg/render/projection.go
package render

import (
	"math"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// Projector turns world-space points into screen coordinates through a
// camera basis and a perspective divide. Backends share it so the
// terminal and windowed views agree on what is visible.
type Projector struct {
	Width      int
	Height     int
	FOV        float64 // degrees, vertical
	NearPlane  float64
	FarPlane   float64
	focalScale float64

	position physics.Vector3D
	right    physics.Vector3D
	up       physics.Vector3D
	front    physics.Vector3D
}

// NewProjector creates a projector for the given viewport and lens
func NewProjector(width, height int, fov, nearPlane, farPlane float64) *Projector {
	return &Projector{
		Width:      width,
		Height:     height,
		FOV:        fov,
		NearPlane:  nearPlane,
		FarPlane:   farPlane,
		focalScale: 1.0 / math.Tan(fov*math.Pi/360),
	}
}

// SetView positions the projector from a camera basis. Call once per
// frame before projecting.
func (p *Projector) SetView(position, front, right, up physics.Vector3D) {
	p.position = position
	p.front = front
	p.right = right
	p.up = up
}

// ToViewSpace transforms a world point into camera-relative coordinates.
// The returned Z grows positive with depth into the screen.
func (p *Projector) ToViewSpace(world physics.Vector3D) physics.Vector3D {
	rel := world.Sub(p.position)
	return physics.Vector3D{
		X: rel.Dot(p.right),
		Y: rel.Dot(p.up),
		Z: rel.Dot(p.front), // depth along the view direction
	}
}

// Project maps a world point to screen pixels. The second return is
// false when the point is behind the near plane or past the far plane
// and must not be drawn.
func (p *Projector) Project(world physics.Vector3D) (physics.Vector3D, bool) {
	view := p.ToViewSpace(world)

	if view.Z < p.NearPlane || view.Z > p.FarPlane {
		return physics.Vector3D{}, false
	}

	aspect := float64(p.Width) / float64(p.Height)
	ndcX := view.X * p.focalScale / (aspect * view.Z)
	ndcY := view.Y * p.focalScale / view.Z

	return physics.Vector3D{
		X: (ndcX + 1) * 0.5 * float64(p.Width),
		Y: (1 - ndcY) * 0.5 * float64(p.Height),
		Z: view.Z,
	}, true
}

// ProjectEdge maps both endpoints of a model edge. It is rejected
// whenever either endpoint is outside the depth range, which drops
// partially-visible edges rather than clipping them. Good enough for
// sparse wireframes.
func (p *Projector) ProjectEdge(a, b physics.Vector3D) (physics.Vector3D, physics.Vector3D, bool) {
	sa, okA := p.Project(a)
	if !okA {
		return physics.Vector3D{}, physics.Vector3D{}, false
	}
	sb, okB := p.Project(b)
	if !okB {
		return physics.Vector3D{}, physics.Vector3D{}, false
	}
	return sa, sb, true
}

// TransformModelVertex applies scale, rotation and translation to a
// model-space vertex, producing its world position.
func TransformModelVertex(v physics.Vector3D, scale physics.Vector3D, rotation [3]float64, translation physics.Vector3D) physics.Vector3D {
	out := physics.Vector3D{X: v.X * scale.X, Y: v.Y * scale.Y, Z: v.Z * scale.Z}
	out = out.RotateX(rotation[0])
	out = out.RotateY(rotation[1])
	out = out.RotateZ(rotation[2])
	return out.Add(translation)
}
