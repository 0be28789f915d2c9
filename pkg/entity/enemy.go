// pkg/entity/enemy.go
package entity

import (
	"math/rand/v2"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// EnemyStats contains the tunable statistics for enemy ships
type EnemyStats struct {
	Speed         float64
	Health        int
	Points        int
	FireInterval  float64 // seconds between shots
	FireRange     float64
	StandoffRange float64 // enemies hold position inside this distance
}

// DefaultEnemyStats returns the stock enemy loadout
func DefaultEnemyStats() EnemyStats {
	return EnemyStats{
		Speed:         15.0,
		Health:        1,
		Points:        1,
		FireInterval:  2.0,
		FireRange:     50.0,
		StandoffRange: 10.0,
	}
}

// Enemy is an AI-controlled hostile ship that seeks the player and
// fires on a timer when in range.
type Enemy struct {
	BaseEntity
	Stats     EnemyStats
	Health    int
	Points    int
	Weapon    Weapon
	fireTimer float64
}

// NewEnemy creates an enemy ship at the given position. The fire timer
// starts at a random phase so freshly spawned enemies don't volley together.
func NewEnemy(id ID, position physics.Vector3D, model *WireframeModel, stats EnemyStats, rng *rand.Rand) *Enemy {
	if model == nil {
		model = StandardEnemyModel()
	}

	return &Enemy{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Scale:    physics.Vector3D{X: 1, Y: 1, Z: 1},
			Collider: physics.Sphere{
				Center: position,
				Radius: 1.5,
			},
			Model:  model,
			Active: true,
		},
		Stats:     stats,
		Health:    stats.Health,
		Points:    stats.Points,
		Weapon:    NewEnemyBlaster(id, stats.FireInterval),
		fireTimer: rng.Float64() * stats.FireInterval,
	}
}

// Update advances the enemy one tick, steering toward the target
func (e *Enemy) UpdateWithTarget(deltaTime float64, target physics.Vector3D) {
	e.seek(target)
	e.BaseEntity.Update(deltaTime)

	e.fireTimer -= deltaTime

	// Slow yaw spin for visual effect
	e.Rotate(0, deltaTime*0.5, 0)
}

// seek steers toward the target but holds a standoff distance
func (e *Enemy) seek(target physics.Vector3D) {
	direction := target.Sub(e.Position)
	if direction.Length() > e.Stats.StandoffRange {
		e.Velocity = direction.Normalize().Scale(e.Stats.Speed)
	} else {
		e.Velocity = physics.Vector3D{}
	}
}

// CanFire reports whether the fire timer has elapsed and the target is in
// range. A successful check rearms the timer.
func (e *Enemy) CanFire(target physics.Vector3D) bool {
	if e.fireTimer > 0 {
		return false
	}
	if e.Position.Distance(target) >= e.Stats.FireRange {
		return false
	}
	e.fireTimer = e.Stats.FireInterval
	return true
}

// FireAt creates a projectile aimed at the target position
func (e *Enemy) FireAt(target physics.Vector3D) *Projectile {
	direction := target.Sub(e.Position).Normalize()
	return e.Weapon.CreateProjectile(e.Position, direction)
}

// TakeDamage applies damage, destroying the enemy at zero health
func (e *Enemy) TakeDamage(amount int) {
	e.Health -= amount
	if e.Health <= 0 {
		e.Destroy()
	}
}

// GetPoints returns the score awarded for destroying this enemy
func (e *Enemy) GetPoints() int {
	return e.Points
}
