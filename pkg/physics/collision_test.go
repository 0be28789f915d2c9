// pkg/physics/collision_test.go
package physics

import (
	"testing"
)

func TestSphere_Collides(t *testing.T) {
	tests := []struct {
		name     string
		sphere1  Sphere
		sphere2  Sphere
		expected bool
	}{
		{
			name:     "spheres_touching",
			sphere1:  Sphere{Center: Vector3D{X: 0, Y: 0, Z: 0}, Radius: 5},
			sphere2:  Sphere{Center: Vector3D{X: 10, Y: 0, Z: 0}, Radius: 5},
			expected: false, // Distance equals sum of radii, collision logic uses <
		},
		{
			name:     "spheres_overlapping",
			sphere1:  Sphere{Center: Vector3D{X: 0, Y: 0, Z: 0}, Radius: 5},
			sphere2:  Sphere{Center: Vector3D{X: 5, Y: 0, Z: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "spheres_not_touching",
			sphere1:  Sphere{Center: Vector3D{X: 0, Y: 0, Z: 0}, Radius: 5},
			sphere2:  Sphere{Center: Vector3D{X: 15, Y: 0, Z: 0}, Radius: 5},
			expected: false,
		},
		{
			name:     "spheres_same_position",
			sphere1:  Sphere{Center: Vector3D{X: 0, Y: 0, Z: 0}, Radius: 3},
			sphere2:  Sphere{Center: Vector3D{X: 0, Y: 0, Z: 0}, Radius: 2},
			expected: true,
		},
		{
			name:     "spheres_diagonal_collision",
			sphere1:  Sphere{Center: Vector3D{X: 0, Y: 0, Z: 0}, Radius: 5},
			sphere2:  Sphere{Center: Vector3D{X: 2, Y: 3, Z: 6}, Radius: 3},
			expected: true,
		},
		{
			name:     "spheres_separated_in_depth",
			sphere1:  Sphere{Center: Vector3D{X: 0, Y: 0, Z: 0}, Radius: 2},
			sphere2:  Sphere{Center: Vector3D{X: 0, Y: 0, Z: 10}, Radius: 2},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.sphere1.Collides(tt.sphere2)
			if result != tt.expected {
				t.Errorf("Sphere.Collides() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestCheckCollision(t *testing.T) {
	t.Run("no_collision", func(t *testing.T) {
		sphere1 := Sphere{Center: Vector3D{X: 0, Y: 0, Z: 0}, Radius: 5}
		sphere2 := Sphere{Center: Vector3D{X: 15, Y: 0, Z: 0}, Radius: 5}

		result := CheckCollision(sphere1, sphere2)

		if result.Collided {
			t.Error("Expected no collision, but got collision")
		}
	})

	t.Run("collision_with_penetration", func(t *testing.T) {
		sphere1 := Sphere{Center: Vector3D{X: 0, Y: 0, Z: 0}, Radius: 5}
		sphere2 := Sphere{Center: Vector3D{X: 8, Y: 0, Z: 0}, Radius: 5}

		result := CheckCollision(sphere1, sphere2)

		if !result.Collided {
			t.Fatal("Expected collision, but got none")
		}
		if !almostEqual(result.Penetration, 2.0) {
			t.Errorf("Penetration = %v, want 2.0", result.Penetration)
		}
		expectedNormal := Vector3D{X: 1}
		if !vectorsAlmostEqual(result.Normal, expectedNormal) {
			t.Errorf("Normal = %v, want %v", result.Normal, expectedNormal)
		}
		expectedContact := Vector3D{X: 5}
		if !vectorsAlmostEqual(result.ContactPoint, expectedContact) {
			t.Errorf("ContactPoint = %v, want %v", result.ContactPoint, expectedContact)
		}
	})

	t.Run("coincident_centers_use_fallback_normal", func(t *testing.T) {
		sphere1 := Sphere{Center: Vector3D{}, Radius: 2}
		sphere2 := Sphere{Center: Vector3D{}, Radius: 3}

		result := CheckCollision(sphere1, sphere2)

		if !result.Collided {
			t.Fatal("Expected collision for coincident spheres")
		}
		if result.Normal == (Vector3D{}) {
			t.Error("Normal should not be zero for coincident centers")
		}
	})
}

func TestRayIntersectsSphere(t *testing.T) {
	tests := []struct {
		name      string
		origin    Vector3D
		direction Vector3D
		sphere    Sphere
		expected  bool
	}{
		{
			name:      "ray_through_center",
			origin:    Vector3D{X: 0, Y: 0, Z: 10},
			direction: Vector3D{Z: -1},
			sphere:    Sphere{Center: Vector3D{}, Radius: 1},
			expected:  true,
		},
		{
			name:      "ray_misses_sphere",
			origin:    Vector3D{X: 5, Y: 0, Z: 10},
			direction: Vector3D{Z: -1},
			sphere:    Sphere{Center: Vector3D{}, Radius: 1},
			expected:  false,
		},
		{
			name:      "ray_grazes_sphere",
			origin:    Vector3D{X: 1, Y: 0, Z: 10},
			direction: Vector3D{Z: -1},
			sphere:    Sphere{Center: Vector3D{}, Radius: 1},
			expected:  true,
		},
		{
			name:      "origin_inside_sphere",
			origin:    Vector3D{},
			direction: Vector3D{X: 1},
			sphere:    Sphere{Center: Vector3D{}, Radius: 5},
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RayIntersectsSphere(tt.origin, tt.direction, tt.sphere)
			if result != tt.expected {
				t.Errorf("RayIntersectsSphere() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestPushBack(t *testing.T) {
	position := Vector3D{X: 0, Y: 0, Z: 0}
	direction := Vector3D{X: 1}

	result := PushBack(position, direction, 5)

	expected := Vector3D{X: -5}
	if !vectorsAlmostEqual(result, expected) {
		t.Errorf("PushBack() = %v, want %v", result, expected)
	}
}

func TestSeparate(t *testing.T) {
	t.Run("moves_away_from_obstacle", func(t *testing.T) {
		position := Vector3D{X: 1, Y: 0, Z: 0}
		obstacle := Vector3D{}

		result := Separate(position, obstacle, 5)

		expected := Vector3D{X: 6}
		if !vectorsAlmostEqual(result, expected) {
			t.Errorf("Separate() = %v, want %v", result, expected)
		}
	})

	t.Run("identical_positions_are_deterministic", func(t *testing.T) {
		position := Vector3D{X: 3, Y: 3, Z: 3}

		result := Separate(position, position, 2)

		expected := Vector3D{X: 5, Y: 3, Z: 3}
		if !vectorsAlmostEqual(result, expected) {
			t.Errorf("Separate() = %v, want %v", result, expected)
		}
	})
}
