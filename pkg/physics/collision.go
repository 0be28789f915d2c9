// pkg/physics/collision.go
package physics

// Sphere represents a spherical collision shape
type Sphere struct {
	Center Vector3D
	Radius float64
}

// Collides checks if two spheres are colliding
func (s Sphere) Collides(other Sphere) bool {
	return s.Center.Distance(other.Center) < s.Radius+other.Radius
}

// ContainsPoint checks if a point lies inside the sphere
func (s Sphere) ContainsPoint(point Vector3D) bool {
	return s.Center.Distance(point) < s.Radius
}

// CollisionResult contains information about a collision
type CollisionResult struct {
	Collided     bool
	Normal       Vector3D
	Penetration  float64
	ContactPoint Vector3D
}

// CheckCollision performs detailed collision detection between two spheres
func CheckCollision(a, b Sphere) CollisionResult {
	// Vector from A to B
	normal := b.Center.Sub(a.Center)
	distance := normal.Length()

	// No collision
	if distance > a.Radius+b.Radius {
		return CollisionResult{Collided: false}
	}

	// Get penetration depth
	penetration := a.Radius + b.Radius - distance

	// Calculate collision normal and contact point
	normal = normal.Normalize()
	if distance == 0 {
		// Coincident centers, pick an arbitrary separation axis
		normal = Vector3D{X: 1}
	}
	contactPoint := a.Center.Add(normal.Scale(a.Radius))

	return CollisionResult{
		Collided:     true,
		Normal:       normal,
		Penetration:  penetration,
		ContactPoint: contactPoint,
	}
}

// RayIntersectsSphere checks if a ray starting at origin along direction
// passes through the sphere. Direction is expected to be normalized.
func RayIntersectsSphere(origin, direction Vector3D, sphere Sphere) bool {
	oc := origin.Sub(sphere.Center)

	a := direction.Dot(direction)
	b := 2.0 * oc.Dot(direction)
	c := oc.Dot(oc) - sphere.Radius*sphere.Radius

	discriminant := b*b - 4*a*c
	return discriminant >= 0
}
