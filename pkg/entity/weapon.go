// pkg/entity/weapon.go
package entity

import (
	"math"
	"sync/atomic"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// ProjectileOwner identifies who fired a projectile
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

func (o ProjectileOwner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Weapon interface defines the methods all weapons must implement
type Weapon interface {
	GetName() string
	GetCooldown() float64 // seconds
	CreateProjectile(position, direction physics.Vector3D) *Projectile
}

// BaseWeapon contains common functionality for all weapons
type BaseWeapon struct {
	Name       string
	Cooldown   float64
	Speed      float64
	Lifetime   float64
	BoltLength float64
	Owner      ProjectileOwner
	OwnerID    ID
}

// GetName returns the weapon's name
func (w *BaseWeapon) GetName() string {
	return w.Name
}

// GetCooldown returns the weapon's cooldown in seconds
func (w *BaseWeapon) GetCooldown() float64 {
	return w.Cooldown
}

// LaserCannon is the player's forward-firing laser
type LaserCannon struct {
	BaseWeapon
}

// NewLaserCannon creates the player laser with the given cooldown
func NewLaserCannon(ownerID ID, cooldown float64) *LaserCannon {
	return &LaserCannon{
		BaseWeapon: BaseWeapon{
			Name:       "LaserCannon",
			Cooldown:   cooldown,
			Speed:      80.0,
			Lifetime:   5.0,
			BoltLength: 2.0,
			Owner:      OwnerPlayer,
			OwnerID:    ownerID,
		},
	}
}

// CreateProjectile creates a player laser bolt
func (w *LaserCannon) CreateProjectile(position, direction physics.Vector3D) *Projectile {
	return newProjectile(position, direction, &w.BaseWeapon)
}

// EnemyBlaster is the enemy ship's laser, fired on an AI timer
type EnemyBlaster struct {
	BaseWeapon
}

// NewEnemyBlaster creates an enemy laser with the given refire interval
func NewEnemyBlaster(ownerID ID, interval float64) *EnemyBlaster {
	return &EnemyBlaster{
		BaseWeapon: BaseWeapon{
			Name:       "EnemyBlaster",
			Cooldown:   interval,
			Speed:      80.0,
			Lifetime:   5.0,
			BoltLength: 2.0,
			Owner:      OwnerEnemy,
			OwnerID:    ownerID,
		},
	}
}

// CreateProjectile creates an enemy laser bolt
func (w *EnemyBlaster) CreateProjectile(position, direction physics.Vector3D) *Projectile {
	return newProjectile(position, direction, &w.BaseWeapon)
}

func newProjectile(position, direction physics.Vector3D, w *BaseWeapon) *Projectile {
	dir := direction.Normalize()

	p := &Projectile{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
			Velocity: dir.Scale(w.Speed),
			Scale:    physics.Vector3D{X: 1, Y: 1, Z: 1},
			Collider: physics.Sphere{
				Center: position,
				Radius: 0.3,
			},
			Model:  LaserModel(w.BoltLength),
			Active: true,
		},
		Owner:     w.Owner,
		OwnerID:   w.OwnerID,
		Direction: dir,
		Lifetime:  w.Lifetime,
	}
	p.alignToDirection()
	return p
}

// alignToDirection orients the bolt model along its travel direction
func (p *Projectile) alignToDirection() {
	if p.Direction.Length() == 0 {
		return
	}
	yaw := math.Atan2(p.Direction.X, p.Direction.Z)
	xzLength := math.Sqrt(p.Direction.X*p.Direction.X + p.Direction.Z*p.Direction.Z)
	pitch := math.Atan2(p.Direction.Y, xzLength)
	p.Rotation = [3]float64{pitch, yaw, 0}
}

var nextID uint64

// GenerateID returns a process-unique entity ID
func GenerateID() ID {
	return ID(atomic.AddUint64(&nextID, 1))
}
