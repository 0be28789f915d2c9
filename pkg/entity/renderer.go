// pkg/entity/renderer.go
package entity

// Renderer abstracts the drawing backend so game logic never touches the
// graphics library directly. A frame is Clear, Render* per entity, Present.
type Renderer interface {
	Clear()
	Present()
	RenderShip(ship *Ship)
	RenderEnemy(enemy *Enemy)
	RenderMeteorite(meteorite *Meteorite)
	RenderLifeSphere(sphere *LifeSphere)
	RenderProjectile(projectile *Projectile)
}
