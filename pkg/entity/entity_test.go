// pkg/entity/entity_test.go
package entity

import (
	"testing"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

func TestBaseEntity_GetID(t *testing.T) {
	tests := []struct {
		name     string
		entityID ID
		expected ID
	}{
		{
			name:     "zero_id",
			entityID: 0,
			expected: 0,
		},
		{
			name:     "positive_id",
			entityID: 42,
			expected: 42,
		},
		{
			name:     "large_id",
			entityID: 18446744073709551615, // max uint64
			expected: 18446744073709551615,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity := &BaseEntity{
				ID: tt.entityID,
			}

			result := entity.GetID()
			if result != tt.expected {
				t.Errorf("GetID() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestBaseEntity_Update(t *testing.T) {
	tests := []struct {
		name      string
		position  physics.Vector3D
		velocity  physics.Vector3D
		deltaTime float64
		expected  physics.Vector3D
	}{
		{
			name:      "stationary",
			position:  physics.Vector3D{X: 1, Y: 2, Z: 3},
			velocity:  physics.Vector3D{},
			deltaTime: 1.0,
			expected:  physics.Vector3D{X: 1, Y: 2, Z: 3},
		},
		{
			name:      "constant_velocity",
			position:  physics.Vector3D{},
			velocity:  physics.Vector3D{X: 10, Y: 0, Z: -20},
			deltaTime: 0.5,
			expected:  physics.Vector3D{X: 5, Y: 0, Z: -10},
		},
		{
			name:      "zero_delta_time",
			position:  physics.Vector3D{X: 7},
			velocity:  physics.Vector3D{X: 100},
			deltaTime: 0,
			expected:  physics.Vector3D{X: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity := &BaseEntity{
				Position: tt.position,
				Velocity: tt.velocity,
				Collider: physics.Sphere{Center: tt.position, Radius: 1},
			}

			entity.Update(tt.deltaTime)

			if entity.Position != tt.expected {
				t.Errorf("Position after Update() = %v, want %v", entity.Position, tt.expected)
			}
			if entity.Collider.Center != tt.expected {
				t.Errorf("Collider center after Update() = %v, want %v",
					entity.Collider.Center, tt.expected)
			}
		})
	}
}

func TestBaseEntity_Destroy(t *testing.T) {
	entity := &BaseEntity{Active: true}

	if !entity.IsActive() {
		t.Fatal("new entity should be active")
	}

	entity.Destroy()

	if entity.IsActive() {
		t.Error("destroyed entity should not be active")
	}
}

func TestBaseEntity_Rotate(t *testing.T) {
	entity := &BaseEntity{}

	entity.Rotate(0.1, 0.2, 0.3)
	entity.Rotate(0.1, 0.2, 0.3)

	expected := [3]float64{0.2, 0.4, 0.6}
	for i := range expected {
		if !almostEqualF(entity.Rotation[i], expected[i]) {
			t.Errorf("Rotation[%d] = %v, want %v", i, entity.Rotation[i], expected[i])
		}
	}
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if seen[id] {
			t.Fatalf("GenerateID() returned duplicate ID %v", id)
		}
		seen[id] = true
	}
}

func almostEqualF(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
