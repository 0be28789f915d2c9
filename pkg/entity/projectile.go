// pkg/entity/projectile.go
package entity

import (
	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// Projectile is a laser bolt in flight
type Projectile struct {
	BaseEntity
	Owner     ProjectileOwner
	OwnerID   ID
	Direction physics.Vector3D
	Lifetime  float64 // seconds until expiry
	Age       float64
}

// Update moves the bolt and expires it past its lifetime
func (p *Projectile) Update(deltaTime float64) {
	p.BaseEntity.Update(deltaTime)

	p.Age += deltaTime
	if p.Age >= p.Lifetime {
		p.Destroy()
	}
}

// IsPlayerProjectile reports whether the player fired this bolt
func (p *Projectile) IsPlayerProjectile() bool {
	return p.Owner == OwnerPlayer
}

// IsEnemyProjectile reports whether an enemy fired this bolt
func (p *Projectile) IsEnemyProjectile() bool {
	return p.Owner == OwnerEnemy
}
