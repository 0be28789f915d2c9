// pkg/entity/projectile_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

func TestProjectile_ExpiresAfterLifetime(t *testing.T) {
	cannon := NewLaserCannon(GenerateID(), 0.3)
	p := cannon.CreateProjectile(physics.Vector3D{}, physics.Vector3D{Z: -1})

	p.Update(p.Lifetime - 0.1)
	if !p.IsActive() {
		t.Fatal("projectile should still be active before lifetime elapses")
	}

	p.Update(0.2)
	if p.IsActive() {
		t.Error("projectile should expire after its lifetime")
	}
}

func TestProjectile_OwnerKind(t *testing.T) {
	tests := []struct {
		name        string
		weapon      Weapon
		playerOwned bool
	}{
		{
			name:        "laser_cannon_is_player",
			weapon:      NewLaserCannon(1, 0.3),
			playerOwned: true,
		},
		{
			name:        "enemy_blaster_is_enemy",
			weapon:      NewEnemyBlaster(2, 2.0),
			playerOwned: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.weapon.CreateProjectile(physics.Vector3D{}, physics.Vector3D{X: 1})

			if p.IsPlayerProjectile() != tt.playerOwned {
				t.Errorf("IsPlayerProjectile() = %v, want %v",
					p.IsPlayerProjectile(), tt.playerOwned)
			}
			if p.IsEnemyProjectile() == tt.playerOwned {
				t.Errorf("IsEnemyProjectile() = %v, want %v",
					p.IsEnemyProjectile(), !tt.playerOwned)
			}
		})
	}
}

func TestProjectile_VelocityMatchesDirection(t *testing.T) {
	cannon := NewLaserCannon(GenerateID(), 0.3)
	direction := physics.Vector3D{X: 3, Y: 0, Z: -4} // not normalized on purpose

	p := cannon.CreateProjectile(physics.Vector3D{}, direction)

	if !almostEqualF(p.Velocity.Length(), 80.0) {
		t.Errorf("projectile speed = %v, want 80", p.Velocity.Length())
	}
	expected := direction.Normalize()
	if !almostEqualF(p.Direction.X, expected.X) || !almostEqualF(p.Direction.Z, expected.Z) {
		t.Errorf("Direction = %v, want %v", p.Direction, expected)
	}
}

func TestProjectile_RotationAlignedToTravel(t *testing.T) {
	cannon := NewLaserCannon(GenerateID(), 0.3)

	t.Run("straight_ahead", func(t *testing.T) {
		p := cannon.CreateProjectile(physics.Vector3D{}, physics.Vector3D{Z: 1})
		if !almostEqualF(p.Rotation[0], 0) || !almostEqualF(p.Rotation[1], 0) {
			t.Errorf("Rotation = %v, want zero pitch and yaw", p.Rotation)
		}
	})

	t.Run("firing_right", func(t *testing.T) {
		p := cannon.CreateProjectile(physics.Vector3D{}, physics.Vector3D{X: 1})
		if !almostEqualF(p.Rotation[1], math.Pi/2) {
			t.Errorf("yaw = %v, want pi/2", p.Rotation[1])
		}
	})

	t.Run("firing_up", func(t *testing.T) {
		p := cannon.CreateProjectile(physics.Vector3D{}, physics.Vector3D{Y: 1, Z: 1})
		if p.Rotation[0] <= 0 {
			t.Errorf("pitch = %v, want positive when firing upward", p.Rotation[0])
		}
	})
}
