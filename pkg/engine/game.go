// pkg/engine/game.go
package engine

import (
	"cmp"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/opd-ai/go-starfighter/pkg/config"
	"github.com/opd-ai/go-starfighter/pkg/entity"
	"github.com/opd-ai/go-starfighter/pkg/event"
	"github.com/opd-ai/go-starfighter/pkg/physics"
	"github.com/opd-ai/go-starfighter/pkg/resource"
)

// GameStatus describes the lifecycle of a game session
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusPaused
	GameStatusOver
)

// MovementInput carries the held movement keys for one frame
type MovementInput struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// ShipAnimation tracks the cockpit ship's banking response to camera motion
type ShipAnimation struct {
	Roll        float64 // degrees, banking when turning
	PitchOffset float64 // degrees, nose dip when looking up/down
	CockpitSway float64 // pixels, HUD frame lag when strafing

	prevYaw   float64
	prevPitch float64
}

// Game represents the core game state and logic
type Game struct {
	Config      *config.GameConfig
	Player      *entity.Ship
	Camera      *Camera
	Enemies     map[entity.ID]*entity.Enemy
	Meteorites  map[entity.ID]*entity.Meteorite
	LifeSpheres map[entity.ID]*entity.LifeSphere
	Projectiles map[entity.ID]*entity.Projectile

	Score        int
	Status       GameStatus
	EventBus     *event.Bus
	SpatialIndex *physics.Octree
	Anim         ShipAnimation
	CurrentTick  uint64

	// Resource monitoring
	Monitor *resource.Monitor

	rng              *rand.Rand
	enemySpawnTimer  float64
	sphereSpawnTimer float64
	strafeInput      float64 // -1 left, 0 neutral, 1 right
}

// NewGame creates a new game with the specified configuration and seed.
// A zero seed picks a random one.
func NewGame(cfg *config.GameConfig, seed uint64) *Game {
	if seed == 0 {
		seed = rand.Uint64()
	}

	game := &Game{
		Config:      cfg,
		Enemies:     make(map[entity.ID]*entity.Enemy),
		Meteorites:  make(map[entity.ID]*entity.Meteorite),
		LifeSpheres: make(map[entity.ID]*entity.LifeSphere),
		Projectiles: make(map[entity.ID]*entity.Projectile),
		EventBus:    event.NewEventBus(),
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}

	game.initSpatialIndex()
	game.initPlayer()
	game.spawnInitialMeteorites()

	return game
}

// InitializeResourceMonitor wires up the runtime monitor from environment
// configuration. Called separately so headless tests can skip it.
func (g *Game) InitializeResourceMonitor() error {
	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	g.Monitor = resource.NewMonitor(envConfig)
	return g.Monitor.Start()
}

// initSpatialIndex creates the spatial index for collision detection.
// The boundary tracks the player so entities stay indexable however far
// the ship flies; the extent covers the maximum projectile range.
func (g *Game) initSpatialIndex() {
	span := g.Config.World.Size * 4
	center := physics.Vector3D{}
	if g.Player != nil {
		center = g.Player.Position
	}
	g.SpatialIndex = physics.NewOctree(
		physics.Box{
			Center: center,
			Width:  span,
			Height: span,
			Depth:  span,
		},
		10, // Maximum entities per node before subdivision
	)
}

// initPlayer creates the player ship and camera
func (g *Game) initPlayer() {
	stats := entity.ShipStats{
		Speed:            g.Config.Player.Speed,
		StrafeSpeed:      g.Config.Player.StrafeSpeed,
		MouseSensitivity: g.Config.Player.MouseSensitivity,
		StartingLives:    g.Config.Player.StartingLives,
		ShootCooldown:    g.Config.Player.ShootCooldown,
	}
	start := physics.Vector3D{Z: 5}
	g.Player = entity.NewShip(entity.GenerateID(), start, stats)

	cannon := entity.NewLaserCannon(g.Player.GetID(), stats.ShootCooldown)
	cannon.Speed = g.Config.Laser.Speed
	cannon.Lifetime = g.Config.Laser.Lifetime
	cannon.BoltLength = g.Config.Laser.Length
	g.Player.Weapon = cannon
	g.Camera = NewCamera(start, g.Config.Camera.PitchLimit)
	g.Anim = ShipAnimation{prevYaw: g.Camera.Yaw, prevPitch: g.Camera.Pitch}
}

// spawnInitialMeteorites seeds the meteorite field around the world
func (g *Game) spawnInitialMeteorites() {
	ws := g.Config.World.Size
	for i := 0; i < g.Config.Meteorite.Count; i++ {
		pos := physics.Vector3D{
			X: g.uniform(-ws/2, ws/2),
			Y: g.uniform(-ws/4, ws/4),
			Z: g.uniform(-ws, -20),
		}
		size := g.uniform(g.Config.Meteorite.MinSize, g.Config.Meteorite.MaxSize)
		m := entity.NewMeteorite(entity.GenerateID(), pos, size, g.Config.Physics.BoundingSphereScale, g.rng)
		g.Meteorites[m.GetID()] = m
	}
}

func (g *Game) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// Start begins the game session
func (g *Game) Start() {
	g.Status = GameStatusActive
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})
}

// TogglePause flips between active and paused
func (g *Game) TogglePause() {
	switch g.Status {
	case GameStatusActive:
		g.Status = GameStatusPaused
		g.EventBus.Publish(&event.BaseEvent{EventType: event.GamePaused, Source: g})
	case GameStatusPaused:
		g.Status = GameStatusActive
		g.EventBus.Publish(&event.BaseEvent{EventType: event.GameResumed, Source: g})
	}
}

// IsOver reports whether the session has ended
func (g *Game) IsOver() bool {
	return g.Status == GameStatusOver
}

// ApplyMovement moves the camera from held keys and keeps the player
// ship glued to it (cockpit perspective).
func (g *Game) ApplyMovement(input MovementInput, deltaTime float64) {
	if g.Status != GameStatusActive {
		return
	}

	if input.Forward {
		g.Camera.MoveForward(g.Config.Player.Speed * deltaTime)
	}
	if input.Backward {
		g.Camera.MoveBackward(g.Config.Player.Speed * deltaTime)
	}
	if input.Left {
		g.Camera.MoveLeft(g.Config.Player.StrafeSpeed * deltaTime)
	}
	if input.Right {
		g.Camera.MoveRight(g.Config.Player.StrafeSpeed * deltaTime)
	}

	switch {
	case input.Left && !input.Right:
		g.strafeInput = -1
	case input.Right && !input.Left:
		g.strafeInput = 1
	default:
		g.strafeInput = 0
	}

	g.Player.Position = g.Camera.Position
	g.Player.Collider.Center = g.Player.Position
}

// ProcessMouseLook rotates the camera from mouse movement
func (g *Game) ProcessMouseLook(dx, dy float64) {
	if g.Status != GameStatusActive {
		return
	}
	sens := g.Config.Player.MouseSensitivity
	g.Camera.ProcessMouseDelta(dx*sens, -dy*sens)
}

// FirePlayerLaser shoots along the camera's view direction, honoring the
// weapon cooldown. Returns true if a bolt was fired.
func (g *Game) FirePlayerLaser() bool {
	if g.Status != GameStatusActive {
		return false
	}

	p := g.Player.FireWeapon(g.Camera.ForwardVector())
	if p == nil {
		return false
	}

	g.Projectiles[p.GetID()] = p
	g.EventBus.Publish(event.NewEntityEvent(event.ProjectileFired, g, uint64(p.GetID())))
	return true
}

// Update advances the game state by one tick
func (g *Game) Update(deltaTime float64) {
	if g.Status != GameStatusActive {
		return
	}

	g.CurrentTick++

	g.updateShipAnimation(deltaTime)
	g.Player.Update(deltaTime)

	for _, id := range sortedIDs(g.Enemies) {
		enemy := g.Enemies[id]
		enemy.UpdateWithTarget(deltaTime, g.Player.Position)
		if g.hasLineOfSight(enemy.Position, g.Player.Position) && enemy.CanFire(g.Player.Position) {
			g.fireEnemyLaser(enemy)
		}
	}

	for _, m := range g.Meteorites {
		m.Update(deltaTime)
	}
	for _, s := range g.LifeSpheres {
		s.Update(deltaTime)
	}
	for _, p := range g.Projectiles {
		p.Update(deltaTime)
	}

	g.updateSpawning(deltaTime)
	g.rebuildSpatialIndex()
	g.handleCollisions()
	g.cleanupEntities()

	if g.Monitor != nil {
		g.Monitor.RecordFrame(deltaTime)
	}
}

// hasLineOfSight reports whether the straight path between two points is
// clear of meteorites. Rocks behind the shooter or past the target are
// ignored.
func (g *Game) hasLineOfSight(from, to physics.Vector3D) bool {
	delta := to.Sub(from)
	dist := delta.Length()
	if dist == 0 {
		return true
	}
	dir := delta.Scale(1 / dist)

	for _, m := range g.Meteorites {
		sphere := m.GetCollider()
		along := sphere.Center.Sub(from).Dot(dir)
		if along <= 0 || along >= dist {
			continue
		}
		if physics.RayIntersectsSphere(from, dir, sphere) {
			return false
		}
	}
	return true
}

// fireEnemyLaser spawns an enemy bolt aimed at the player
func (g *Game) fireEnemyLaser(enemy *entity.Enemy) {
	p := enemy.FireAt(g.Player.Position)
	g.Projectiles[p.GetID()] = p
	g.EventBus.Publish(event.NewEntityEvent(event.ProjectileFired, g, uint64(p.GetID())))
}

// updateSpawning runs the enemy and pickup spawn timers
func (g *Game) updateSpawning(deltaTime float64) {
	g.enemySpawnTimer += deltaTime
	if g.enemySpawnTimer >= g.Config.Enemy.SpawnInterval {
		g.enemySpawnTimer = 0
		g.spawnEnemy()
	}

	g.sphereSpawnTimer += deltaTime
	if g.sphereSpawnTimer >= g.Config.LifeSphere.SpawnInterval {
		g.sphereSpawnTimer = 0
		g.spawnLifeSphere()
	}
}

// spawnEnemy places a new enemy ahead of the player
func (g *Game) spawnEnemy() {
	distance := g.Config.Enemy.SpawnDistance
	pos := physics.Vector3D{
		X: g.Camera.Position.X + distance*g.uniform(-0.5, 0.5),
		Y: g.Camera.Position.Y + g.uniform(-10, 10),
		Z: g.Camera.Position.Z - distance,
	}

	stats := entity.EnemyStats{
		Speed:         g.Config.Enemy.Speed,
		Health:        g.Config.Enemy.Health,
		Points:        g.Config.Enemy.Points,
		FireInterval:  g.Config.Enemy.FireInterval,
		FireRange:     g.Config.Enemy.FireRange,
		StandoffRange: g.Config.Enemy.StandoffRange,
	}

	enemy := entity.NewEnemy(entity.GenerateID(), pos, entity.RandomEnemyModel(g.rng), stats, g.rng)

	blaster := entity.NewEnemyBlaster(enemy.GetID(), stats.FireInterval)
	blaster.Speed = g.Config.Laser.Speed
	blaster.Lifetime = g.Config.Laser.Lifetime
	blaster.BoltLength = g.Config.Laser.Length
	enemy.Weapon = blaster

	g.Enemies[enemy.GetID()] = enemy
	g.EventBus.Publish(event.NewEntityEvent(event.EnemySpawned, g, uint64(enemy.GetID())))
}

// spawnLifeSphere places a new pickup ahead of the player
func (g *Game) spawnLifeSphere() {
	pos := physics.Vector3D{
		X: g.Camera.Position.X + g.uniform(-30, 30),
		Y: g.Camera.Position.Y + g.uniform(-20, 20),
		Z: g.Camera.Position.Z - g.uniform(30, g.Config.LifeSphere.SpawnDistance),
	}

	sphere := entity.NewLifeSphere(
		entity.GenerateID(), pos,
		g.Config.LifeSphere.Size, g.Config.LifeSphere.RotationSpeed,
	)
	g.LifeSpheres[sphere.GetID()] = sphere
	g.EventBus.Publish(event.NewEntityEvent(event.SphereSpawned, g, uint64(sphere.GetID())))
}

// rebuildSpatialIndex reinserts all active entities for this frame
func (g *Game) rebuildSpatialIndex() {
	g.initSpatialIndex()
	for _, e := range g.Enemies {
		g.SpatialIndex.Insert(e.Position, e)
	}
	for _, m := range g.Meteorites {
		g.SpatialIndex.Insert(m.Position, m)
	}
	for _, s := range g.LifeSpheres {
		g.SpatialIndex.Insert(s.Position, s)
	}
}

// candidateSet holds octree query results split by kind, each slice in
// ascending ID order so an overlap with two targets always resolves the
// same way.
type candidateSet struct {
	enemies    []*entity.Enemy
	meteorites []*entity.Meteorite
	spheres    []*entity.LifeSphere
}

// maxColliderRadius is the largest bounding sphere any indexed entity
// can carry, used to pad broad-phase queries.
func (g *Game) maxColliderRadius() float64 {
	return g.Config.Meteorite.MaxSize * g.Config.Physics.BoundingSphereScale
}

// queryCandidates runs the broad phase: an octree box query around the
// collider, padded so no overlapping entity is missed.
func (g *Game) queryCandidates(center physics.Vector3D, radius float64) candidateSet {
	span := (radius + g.maxColliderRadius()) * 2
	objects := g.SpatialIndex.Query(physics.Box{
		Center: center,
		Width:  span,
		Height: span,
		Depth:  span,
	})

	var set candidateSet
	for _, obj := range objects {
		switch v := obj.(type) {
		case *entity.Enemy:
			set.enemies = append(set.enemies, v)
		case *entity.Meteorite:
			set.meteorites = append(set.meteorites, v)
		case *entity.LifeSphere:
			set.spheres = append(set.spheres, v)
		}
	}
	sortByID(set.enemies)
	sortByID(set.meteorites)
	sortByID(set.spheres)
	return set
}

// handleCollisions runs the collision pass and applies the score and
// life effects.
func (g *Game) handleCollisions() {
	g.collidePlayer()
	g.collideProjectiles()

	if !g.Player.IsActive() && g.Status == GameStatusActive {
		g.endGame()
	}
}

// collidePlayer checks the player's bounding sphere against nearby
// meteorites, pickups and enemies
func (g *Game) collidePlayer() {
	set := g.queryCandidates(g.Player.Position, g.Player.Collider.Radius)

	for _, m := range set.meteorites {
		if !g.Player.GetCollider().Collides(m.GetCollider()) {
			continue
		}

		g.addScore(-g.Config.Meteorite.CollisionPenalty)

		// Shove the player off the rock and keep the camera with it
		g.Player.Position = physics.Separate(
			g.Player.Position, m.Position, g.Config.Physics.CollisionPushBack,
		)
		g.Player.Collider.Center = g.Player.Position
		g.Camera.Position = g.Player.Position

		g.EventBus.Publish(event.NewEntityEvent(event.MeteoriteStruck, g, uint64(m.GetID())))
	}

	for _, s := range set.spheres {
		if !s.IsActive() || !g.Player.GetCollider().Collides(s.GetCollider()) {
			continue
		}
		g.collectSphere(s)
	}

	for _, e := range set.enemies {
		if !e.IsActive() || !g.Player.GetCollider().Collides(e.GetCollider()) {
			continue
		}
		g.damagePlayer()
		e.Destroy()
		g.EventBus.Publish(event.NewEntityEvent(event.EnemyDestroyed, g, uint64(e.GetID())))
	}
}

func (g *Game) collideProjectiles() {
	for _, pid := range sortedIDs(g.Projectiles) {
		p := g.Projectiles[pid]
		if !p.IsActive() {
			continue
		}

		set := g.queryCandidates(p.Position, p.Collider.Radius)
		if p.IsPlayerProjectile() {
			g.resolvePlayerBolt(p, set)
		} else {
			g.resolveEnemyBolt(p, set)
		}
	}
}

// resolvePlayerBolt checks a player bolt against enemies, pickups and
// meteorites, in that order
func (g *Game) resolvePlayerBolt(p *entity.Projectile, set candidateSet) {
	collider := p.GetCollider()

	for _, e := range set.enemies {
		if !e.IsActive() || !collider.Collides(e.GetCollider()) {
			continue
		}
		e.TakeDamage(1)
		p.Destroy()
		if !e.IsActive() {
			g.addScore(e.GetPoints())
			g.EventBus.Publish(event.NewEntityEvent(event.EnemyDestroyed, g, uint64(e.GetID())))
		}
		return
	}

	for _, s := range set.spheres {
		if !s.IsActive() || !collider.Collides(s.GetCollider()) {
			continue
		}
		g.collectSphere(s)
		p.Destroy()
		return
	}

	g.blockOnMeteorites(p, set.meteorites)
}

// resolveEnemyBolt checks an enemy bolt against the player and meteorites
func (g *Game) resolveEnemyBolt(p *entity.Projectile, set candidateSet) {
	if p.GetCollider().Collides(g.Player.GetCollider()) {
		g.damagePlayer()
		p.Destroy()
		return
	}

	g.blockOnMeteorites(p, set.meteorites)
}

// blockOnMeteorites destroys the bolt on impact; the meteorite is unharmed
func (g *Game) blockOnMeteorites(p *entity.Projectile, meteorites []*entity.Meteorite) {
	collider := p.GetCollider()
	for _, m := range meteorites {
		if collider.Collides(m.GetCollider()) {
			p.Destroy()
			return
		}
	}
}

// collectSphere grants a life and removes the pickup
func (g *Game) collectSphere(s *entity.LifeSphere) {
	s.Collect()
	g.Player.AddLife()
	g.EventBus.Publish(event.NewEntityEvent(event.SphereCollected, g, uint64(s.GetID())))
	g.EventBus.Publish(event.NewLivesEvent(g, g.Player.Lives, 1))
}

// damagePlayer removes a life and reports the change
func (g *Game) damagePlayer() {
	g.Player.TakeDamage()
	g.EventBus.Publish(event.NewEntityEvent(event.PlayerDamaged, g, uint64(g.Player.GetID())))
	g.EventBus.Publish(event.NewLivesEvent(g, g.Player.Lives, -1))
}

// addScore applies a delta, clamping the score at zero
func (g *Game) addScore(delta int) {
	g.Score += delta
	if g.Score < 0 {
		g.Score = 0
	}
	g.EventBus.Publish(event.NewScoreEvent(g, g.Score, delta))
}

// cleanupEntities removes inactive entities at the end of the frame
func (g *Game) cleanupEntities() {
	for id, e := range g.Enemies {
		if !e.IsActive() {
			delete(g.Enemies, id)
		}
	}
	for id, s := range g.LifeSpheres {
		if !s.IsActive() {
			delete(g.LifeSpheres, id)
		}
	}
	for id, p := range g.Projectiles {
		if !p.IsActive() {
			delete(g.Projectiles, id)
		}
	}
}

// endGame marks the session over
func (g *Game) endGame() {
	g.Status = GameStatusOver
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g,
	})
}

// Restart resets the session for another run
func (g *Game) Restart() {
	g.Score = 0
	g.Enemies = make(map[entity.ID]*entity.Enemy)
	g.Meteorites = make(map[entity.ID]*entity.Meteorite)
	g.LifeSpheres = make(map[entity.ID]*entity.LifeSphere)
	g.Projectiles = make(map[entity.ID]*entity.Projectile)
	g.enemySpawnTimer = 0
	g.sphereSpawnTimer = 0
	g.CurrentTick = 0

	g.initPlayer()
	g.spawnInitialMeteorites()
	g.Start()
}

// Stop shuts down the session and its monitor
func (g *Game) Stop() {
	if g.Status != GameStatusOver {
		g.endGame()
	}
	if g.Monitor != nil {
		g.Monitor.Stop()
	}
}

// updateShipAnimation derives cockpit banking from camera motion
func (g *Game) updateShipAnimation(deltaTime float64) {
	cfg := g.Config.Player

	yawDelta := g.Camera.Yaw - g.Anim.prevYaw
	pitchDelta := g.Camera.Pitch - g.Anim.prevPitch

	// Handle yaw wraparound
	for yawDelta > 180 {
		yawDelta -= 360
	}
	for yawDelta < -180 {
		yawDelta += 360
	}

	yawDelta = physics.Clamp(yawDelta, -10, 10)
	pitchDelta = physics.Clamp(pitchDelta, -10, 10)

	// Turning left banks left, hence the sign flip
	targetRoll := physics.Clamp(-yawDelta*cfg.RollSensitivity, -cfg.MaxRoll, cfg.MaxRoll)
	targetPitch := physics.Clamp(pitchDelta*cfg.PitchSensitivity, -cfg.MaxPitchOffset, cfg.MaxPitchOffset)

	damping := physics.Clamp(cfg.AnimationDamping*deltaTime, 0, 1)
	g.Anim.Roll += (targetRoll - g.Anim.Roll) * damping
	g.Anim.Roll = physics.Clamp(g.Anim.Roll, -cfg.MaxRoll, cfg.MaxRoll)
	g.Anim.PitchOffset += (targetPitch - g.Anim.PitchOffset) * damping
	g.Anim.PitchOffset = physics.Clamp(g.Anim.PitchOffset, -cfg.MaxPitchOffset, cfg.MaxPitchOffset)

	// Decay toward neutral when the camera settles
	if yawDelta > -0.5 && yawDelta < 0.5 {
		g.Anim.Roll *= 0.92
	}
	if pitchDelta > -0.5 && pitchDelta < 0.5 {
		g.Anim.PitchOffset *= 0.92
	}
	if g.Anim.Roll > -0.1 && g.Anim.Roll < 0.1 {
		g.Anim.Roll = 0
	}
	if g.Anim.PitchOffset > -0.1 && g.Anim.PitchOffset < 0.1 {
		g.Anim.PitchOffset = 0
	}

	g.Anim.prevYaw = g.Camera.Yaw
	g.Anim.prevPitch = g.Camera.Pitch

	// Cockpit inertia: the HUD frame lags opposite the strafe direction
	targetSway := g.strafeInput * -40.0
	g.Anim.CockpitSway += (targetSway - g.Anim.CockpitSway) * physics.Clamp(5.0*deltaTime, 0, 1)
}

// sortedIDs returns the map keys in ascending order for deterministic
// iteration
func sortedIDs[T any](m map[entity.ID]T) []entity.ID {
	return slices.Sorted(maps.Keys(m))
}

// sortByID orders a candidate slice by entity ID
func sortByID[T entity.Entity](list []T) {
	slices.SortFunc(list, func(a, b T) int {
		return cmp.Compare(a.GetID(), b.GetID())
	})
}
