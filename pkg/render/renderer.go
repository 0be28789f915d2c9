// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-starfighter/pkg/entity"
	"github.com/opd-ai/go-starfighter/pkg/logging"
)

// NullRenderer is a simple implementation of entity.Renderer.
// Useful for headless runs and tests.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Present called")
}

// RenderShip implements entity.Renderer.
func (d *NullRenderer) RenderShip(ship *entity.Ship) {
	ctx := context.Background()
	if ship == nil {
		d.logger.Debug(ctx, "RenderShip called with nil ship")
		return
	}
	d.logger.Debug(ctx, "RenderShip called",
		"ship_id", ship.ID,
		"lives", ship.Lives,
	)
}

// RenderEnemy implements entity.Renderer.
func (d *NullRenderer) RenderEnemy(enemy *entity.Enemy) {
	ctx := context.Background()
	if enemy == nil {
		d.logger.Debug(ctx, "RenderEnemy called with nil enemy")
		return
	}
	d.logger.Debug(ctx, "RenderEnemy called",
		"enemy_id", enemy.ID,
		"health", enemy.Health,
	)
}

// RenderMeteorite implements entity.Renderer.
func (d *NullRenderer) RenderMeteorite(meteorite *entity.Meteorite) {
	ctx := context.Background()
	if meteorite == nil {
		d.logger.Debug(ctx, "RenderMeteorite called with nil meteorite")
		return
	}
	d.logger.Debug(ctx, "RenderMeteorite called",
		"meteorite_id", meteorite.ID,
		"size", meteorite.Size,
	)
}

// RenderLifeSphere implements entity.Renderer.
func (d *NullRenderer) RenderLifeSphere(sphere *entity.LifeSphere) {
	ctx := context.Background()
	if sphere == nil {
		d.logger.Debug(ctx, "RenderLifeSphere called with nil sphere")
		return
	}
	d.logger.Debug(ctx, "RenderLifeSphere called",
		"sphere_id", sphere.ID,
	)
}

// RenderProjectile implements entity.Renderer.
func (d *NullRenderer) RenderProjectile(projectile *entity.Projectile) {
	ctx := context.Background()
	if projectile == nil {
		d.logger.Debug(ctx, "RenderProjectile called with nil projectile")
		return
	}
	d.logger.Debug(ctx, "RenderProjectile called",
		"projectile_id", projectile.ID,
		"owner", projectile.Owner.String(),
	)
}

// NullRendererInstance is a global instance of NullRenderer for convenience.
var NullRendererInstance entity.Renderer = NewNullRenderer()
