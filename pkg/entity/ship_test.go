// pkg/entity/ship_test.go
package entity

import (
	"testing"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

func newTestShip() *Ship {
	return NewShip(GenerateID(), physics.Vector3D{}, DefaultShipStats())
}

func TestNewShip(t *testing.T) {
	ship := newTestShip()

	if ship.Lives != 3 {
		t.Errorf("Lives = %d, want 3", ship.Lives)
	}
	if !ship.IsActive() {
		t.Error("new ship should be active")
	}
	if ship.Model == nil {
		t.Error("ship should have a wireframe model")
	}
	if !ship.CanFire() {
		t.Error("new ship should be able to fire immediately")
	}
}

func TestShip_TakeDamage(t *testing.T) {
	tests := []struct {
		name          string
		hits          int
		expectedLives int
		expectedAlive bool
	}{
		{name: "single_hit", hits: 1, expectedLives: 2, expectedAlive: true},
		{name: "two_hits", hits: 2, expectedLives: 1, expectedAlive: true},
		{name: "fatal_hits", hits: 3, expectedLives: 0, expectedAlive: false},
		{name: "overkill_clamps_at_zero", hits: 10, expectedLives: 0, expectedAlive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := newTestShip()

			for i := 0; i < tt.hits; i++ {
				ship.TakeDamage()
			}

			if ship.Lives != tt.expectedLives {
				t.Errorf("Lives = %d, want %d", ship.Lives, tt.expectedLives)
			}
			if ship.IsActive() != tt.expectedAlive {
				t.Errorf("IsActive() = %v, want %v", ship.IsActive(), tt.expectedAlive)
			}
			if ship.Lives < 0 {
				t.Errorf("Lives went negative: %d", ship.Lives)
			}
		})
	}
}

func TestShip_TakeDamage_StartsFlash(t *testing.T) {
	ship := newTestShip()

	ship.TakeDamage()

	if ship.DamageFlashTimer <= 0 {
		t.Error("TakeDamage() should start the damage flash timer")
	}

	ship.Update(1.0)

	if ship.DamageFlashTimer > 0 {
		t.Error("damage flash should decay over time")
	}
}

func TestShip_AddLife(t *testing.T) {
	ship := newTestShip()

	ship.AddLife()

	if ship.Lives != 4 {
		t.Errorf("Lives = %d, want 4", ship.Lives)
	}
}

func TestShip_FireWeapon(t *testing.T) {
	forward := physics.Vector3D{Z: -1}

	t.Run("fires_when_ready", func(t *testing.T) {
		ship := newTestShip()

		p := ship.FireWeapon(forward)
		if p == nil {
			t.Fatal("FireWeapon() = nil, want projectile")
		}
		if !p.IsPlayerProjectile() {
			t.Error("player ship projectile should be player-owned")
		}
		if p.Velocity.Z >= 0 {
			t.Errorf("projectile velocity %v should point along fire direction", p.Velocity)
		}
	})

	t.Run("blocked_during_cooldown", func(t *testing.T) {
		ship := newTestShip()

		if ship.FireWeapon(forward) == nil {
			t.Fatal("first shot should fire")
		}
		if ship.FireWeapon(forward) != nil {
			t.Error("second immediate shot should be blocked by cooldown")
		}
	})

	t.Run("fires_again_after_cooldown_elapses", func(t *testing.T) {
		ship := newTestShip()

		ship.FireWeapon(forward)
		ship.Update(ship.Stats.ShootCooldown + 0.01)

		if ship.FireWeapon(forward) == nil {
			t.Error("shot after cooldown elapsed should fire")
		}
	})

	t.Run("spawns_ahead_of_ship", func(t *testing.T) {
		ship := newTestShip()

		p := ship.FireWeapon(forward)
		if p.Position.Z >= ship.Position.Z {
			t.Errorf("projectile position %v should be ahead of ship", p.Position)
		}
	})
}

func TestShip_CooldownRatio(t *testing.T) {
	ship := newTestShip()

	if ship.CooldownRatio() != 0 {
		t.Errorf("CooldownRatio() = %v, want 0 when ready", ship.CooldownRatio())
	}

	ship.FireWeapon(physics.Vector3D{Z: -1})

	if ratio := ship.CooldownRatio(); ratio <= 0.9 || ratio > 1 {
		t.Errorf("CooldownRatio() right after firing = %v, want close to 1", ratio)
	}

	ship.Update(ship.Stats.ShootCooldown / 2)

	if ratio := ship.CooldownRatio(); ratio <= 0.3 || ratio >= 0.7 {
		t.Errorf("CooldownRatio() mid-cooldown = %v, want around 0.5", ratio)
	}
}
