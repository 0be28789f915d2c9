// pkg/entity/ship.go
package entity

import (
	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// ShipStats contains the tunable statistics for the player's ship
type ShipStats struct {
	Speed            float64
	StrafeSpeed      float64
	MouseSensitivity float64
	StartingLives    int
	ShootCooldown    float64 // seconds between shots
}

// DefaultShipStats returns the stock player loadout
func DefaultShipStats() ShipStats {
	return ShipStats{
		Speed:            30.0,
		StrafeSpeed:      20.0,
		MouseSensitivity: 0.2,
		StartingLives:    3,
		ShootCooldown:    0.3,
	}
}

// damageFlashDuration is how long the hit tint lingers in seconds.
const damageFlashDuration = 0.5

// Ship represents the player's spaceship
type Ship struct {
	BaseEntity
	Stats            ShipStats
	Lives            int
	Weapon           Weapon
	CooldownLeft     float64 // seconds until the weapon may fire again
	DamageFlashTimer float64 // seconds of damage tint remaining
}

// NewShip creates the player ship at the given position
func NewShip(id ID, position physics.Vector3D, stats ShipStats) *Ship {
	return &Ship{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Scale:    physics.Vector3D{X: 1, Y: 1, Z: 1},
			Collider: physics.Sphere{
				Center: position,
				Radius: 2.0,
			},
			Model:  PlayerShipModel(),
			Active: true,
		},
		Stats:  stats,
		Lives:  stats.StartingLives,
		Weapon: NewLaserCannon(id, stats.ShootCooldown),
	}
}

// Update handles the ship's state for a single game tick
func (s *Ship) Update(deltaTime float64) {
	s.BaseEntity.Update(deltaTime)

	if s.CooldownLeft > 0 {
		s.CooldownLeft -= deltaTime
		if s.CooldownLeft < 0 {
			s.CooldownLeft = 0
		}
	}

	if s.DamageFlashTimer > 0 {
		s.DamageFlashTimer -= deltaTime
	}
}

// CanFire reports whether the weapon is off cooldown
func (s *Ship) CanFire() bool {
	return s.CooldownLeft <= 0
}

// FireWeapon attempts to fire along the given direction.
// Returns nil while the weapon is still on cooldown.
func (s *Ship) FireWeapon(direction physics.Vector3D) *Projectile {
	if !s.CanFire() {
		return nil
	}

	s.CooldownLeft = s.Weapon.GetCooldown()

	// Spawn slightly ahead of the ship so the bolt doesn't clip the cockpit
	origin := s.Position.Add(direction.Normalize().Scale(2))
	return s.Weapon.CreateProjectile(origin, direction)
}

// CooldownRatio returns remaining cooldown in [0, 1] for the HUD gauge
func (s *Ship) CooldownRatio() float64 {
	if s.Weapon.GetCooldown() <= 0 {
		return 0
	}
	return physics.Clamp(s.CooldownLeft/s.Weapon.GetCooldown(), 0, 1)
}

// TakeDamage removes a life. Lives never go below zero; reaching zero
// deactivates the ship, which ends the game.
func (s *Ship) TakeDamage() {
	if s.Lives <= 0 {
		return
	}
	s.Lives--
	s.DamageFlashTimer = damageFlashDuration
	if s.Lives <= 0 {
		s.Lives = 0
		s.Destroy()
	}
}

// DamageFlashDuration returns the full flash length, letting renderers
// fade the tint out proportionally.
func (s *Ship) DamageFlashDuration() float64 {
	return damageFlashDuration
}

// AddLife grants an extra life
func (s *Ship) AddLife() {
	s.Lives++
}
