// pkg/entity/enemy_test.go
package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func newTestEnemy(position physics.Vector3D) *Enemy {
	return NewEnemy(GenerateID(), position, StandardEnemyModel(), DefaultEnemyStats(), testRNG())
}

func TestNewEnemy(t *testing.T) {
	enemy := newTestEnemy(physics.Vector3D{X: 10})

	if enemy.Health != 1 {
		t.Errorf("Health = %d, want 1", enemy.Health)
	}
	if enemy.Points != 1 {
		t.Errorf("Points = %d, want 1", enemy.Points)
	}
	if !enemy.IsActive() {
		t.Error("new enemy should be active")
	}
	if enemy.fireTimer < 0 || enemy.fireTimer > enemy.Stats.FireInterval {
		t.Errorf("initial fire timer %v outside [0, %v]", enemy.fireTimer, enemy.Stats.FireInterval)
	}
}

func TestNewEnemy_NilModelFallsBack(t *testing.T) {
	enemy := NewEnemy(GenerateID(), physics.Vector3D{}, nil, DefaultEnemyStats(), testRNG())

	if enemy.Model == nil {
		t.Error("enemy with nil model should fall back to the standard model")
	}
}

func TestEnemy_TakeDamage(t *testing.T) {
	enemy := newTestEnemy(physics.Vector3D{})

	enemy.TakeDamage(1)

	if enemy.IsActive() {
		t.Error("enemy at zero health should be destroyed")
	}
}

func TestEnemy_SeeksDistantTarget(t *testing.T) {
	enemy := newTestEnemy(physics.Vector3D{X: 100})
	target := physics.Vector3D{}

	enemy.UpdateWithTarget(0.1, target)

	if enemy.Velocity.X >= 0 {
		t.Errorf("enemy velocity %v should point toward target", enemy.Velocity)
	}
	if !almostEqualF(enemy.Velocity.Length(), enemy.Stats.Speed) {
		t.Errorf("enemy speed = %v, want %v", enemy.Velocity.Length(), enemy.Stats.Speed)
	}
}

func TestEnemy_HoldsStandoffDistance(t *testing.T) {
	enemy := newTestEnemy(physics.Vector3D{X: 5})

	enemy.UpdateWithTarget(0.1, physics.Vector3D{})

	if enemy.Velocity != (physics.Vector3D{}) {
		t.Errorf("enemy inside standoff range should stop, velocity = %v", enemy.Velocity)
	}
}

func TestEnemy_CanFire(t *testing.T) {
	t.Run("blocked_until_timer_elapses", func(t *testing.T) {
		enemy := newTestEnemy(physics.Vector3D{X: 20})
		enemy.fireTimer = 1.0

		if enemy.CanFire(physics.Vector3D{}) {
			t.Error("CanFire() should be false while the timer is running")
		}
	})

	t.Run("blocked_out_of_range", func(t *testing.T) {
		enemy := newTestEnemy(physics.Vector3D{X: 500})
		enemy.fireTimer = 0

		if enemy.CanFire(physics.Vector3D{}) {
			t.Error("CanFire() should be false outside fire range")
		}
	})

	t.Run("fires_and_rearms", func(t *testing.T) {
		enemy := newTestEnemy(physics.Vector3D{X: 20})
		enemy.fireTimer = 0

		if !enemy.CanFire(physics.Vector3D{}) {
			t.Fatal("CanFire() should be true in range with elapsed timer")
		}
		if enemy.fireTimer != enemy.Stats.FireInterval {
			t.Errorf("fire timer after shot = %v, want %v", enemy.fireTimer, enemy.Stats.FireInterval)
		}
	})
}

func TestEnemy_FireAt(t *testing.T) {
	enemy := newTestEnemy(physics.Vector3D{X: 20})
	target := physics.Vector3D{}

	p := enemy.FireAt(target)

	if !p.IsEnemyProjectile() {
		t.Error("enemy projectile should be enemy-owned")
	}
	if p.Velocity.X >= 0 {
		t.Errorf("projectile velocity %v should point at target", p.Velocity)
	}
}

func TestRandomEnemyModel(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 20; i++ {
		model := RandomEnemyModel(rng)
		if model == nil || len(model.Vertices) == 0 || len(model.Edges) == 0 {
			t.Fatal("RandomEnemyModel() returned an empty model")
		}
	}
}
