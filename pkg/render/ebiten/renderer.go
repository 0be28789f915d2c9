// pkg/render/ebiten/renderer.go

// Package ebiten renders the wireframe scene into a window. It owns the
// frame loop: Update polls input and steps the engine, Draw projects
// every entity's model edges and strokes them.
package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/opd-ai/go-starfighter/pkg/config"
	"github.com/opd-ai/go-starfighter/pkg/engine"
	"github.com/opd-ai/go-starfighter/pkg/entity"
	"github.com/opd-ai/go-starfighter/pkg/physics"
	"github.com/opd-ai/go-starfighter/pkg/render"
)

const (
	tickDuration = 1.0 / 60.0
	degToRad     = math.Pi / 180
)

// Renderer drives an engine.Game inside an ebiten window. It implements
// both ebiten.Game for the frame loop and entity.Renderer for drawing.
type Renderer struct {
	game      *engine.Game
	cfg       *config.GameConfig
	projector *render.Projector
	input     *inputState
	face      text.Face

	// Current frame target, only valid inside Draw
	screen *ebiten.Image

	colors palette
}

// palette holds the wireframe colors converted from configuration
type palette struct {
	player     color.RGBA
	enemy      color.RGBA
	meteorite  color.RGBA
	lifeSphere color.RGBA
	playerBolt color.RGBA
	enemyBolt  color.RGBA
	hud        color.RGBA
}

func toRGBA(c config.Color) color.RGBA {
	clampByte := func(v float64) uint8 {
		return uint8(physics.Clamp(v, 0, 1) * 255)
	}
	return color.RGBA{R: clampByte(c[0]), G: clampByte(c[1]), B: clampByte(c[2]), A: 255}
}

// NewRenderer creates the windowed renderer for a game session
func NewRenderer(game *engine.Game, cfg *config.GameConfig) *Renderer {
	return &Renderer{
		game: game,
		cfg:  cfg,
		projector: render.NewProjector(
			cfg.Window.Width, cfg.Window.Height,
			cfg.Camera.FOV, cfg.Camera.NearPlane, cfg.Camera.FarPlane,
		),
		input: newInputState(),
		face:  text.NewGoXFace(basicfont.Face7x13),
		colors: palette{
			player:     toRGBA(cfg.Colors.Player),
			enemy:      toRGBA(cfg.Colors.Enemy),
			meteorite:  toRGBA(cfg.Colors.Meteorite),
			lifeSphere: toRGBA(cfg.Colors.LifeSphere),
			playerBolt: toRGBA(cfg.Colors.PlayerLaser),
			enemyBolt:  toRGBA(cfg.Colors.EnemyLaser),
			hud:        toRGBA(cfg.Colors.HUD),
		},
	}
}

// Run opens the window and blocks until the player quits
func (r *Renderer) Run() error {
	ebiten.SetWindowSize(r.cfg.Window.Width, r.cfg.Window.Height)
	ebiten.SetWindowTitle(r.cfg.Window.Title)
	ebiten.SetTPS(r.cfg.Window.FPS)
	if r.cfg.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	r.game.Start()
	return ebiten.RunGame(r)
}

// Update implements ebiten.Game. It polls input and advances the engine
// by one fixed tick.
func (r *Renderer) Update() error {
	return r.applyControls(r.input.poll())
}

// applyControls folds one tick of input into the engine. Escape pauses
// during play and quits from the game over screen.
func (r *Renderer) applyControls(frame frameInput) error {
	if frame.quit {
		return ebiten.Termination
	}
	if frame.togglePause {
		if r.game.IsOver() {
			return ebiten.Termination
		}
		r.game.TogglePause()
	}
	if frame.restart && r.game.IsOver() {
		r.game.Restart()
	}

	r.game.ProcessMouseLook(frame.lookDX, frame.lookDY)
	r.game.ApplyMovement(frame.movement, tickDuration)
	if frame.fire {
		r.game.FirePlayerLaser()
	}

	r.game.Update(tickDuration)
	return nil
}

// Draw implements ebiten.Game
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.screen = screen
	defer func() { r.screen = nil }()

	cam := r.game.Camera
	r.projector.SetView(cam.Position, cam.Front, cam.Right, cam.Up)

	r.Clear()
	for _, e := range r.game.Enemies {
		e.Render(r)
	}
	for _, m := range r.game.Meteorites {
		m.Render(r)
	}
	for _, s := range r.game.LifeSpheres {
		s.Render(r)
	}
	for _, p := range r.game.Projectiles {
		p.Render(r)
	}
	r.game.Player.Render(r)

	r.drawHUD(screen)
	r.Present()
}

// Layout implements ebiten.Game
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.cfg.Window.Width, r.cfg.Window.Height
}

// Clear implements entity.Renderer. Ebiten hands Draw a cleared frame,
// so there is nothing to do.
func (r *Renderer) Clear() {}

// Present implements entity.Renderer. Frame presentation is handled by
// ebiten after Draw returns.
func (r *Renderer) Present() {}

// RenderShip implements entity.Renderer. The player's own ship is drawn
// as a cockpit model fixed ahead of the camera, banking with camera
// motion instead of using the entity's world transform.
func (r *Renderer) RenderShip(ship *entity.Ship) {
	if r.screen == nil || ship == nil || ship.Model == nil {
		return
	}

	cam := r.game.Camera
	anim := r.game.Anim
	cfg := r.cfg.Player

	// Anchor below and ahead of the camera so the hull frames the view
	anchor := cam.Position.
		Add(cam.Front.Scale(6)).
		Add(cam.Up.Scale(-1.5)).
		Add(cam.Right.Scale(anim.CockpitSway * cfg.ShipOffsetWeight))

	rollRad := anim.Roll * degToRad
	pitchRad := anim.PitchOffset * degToRad

	clr := r.colors.player
	if ship.DamageFlashTimer > 0 {
		clr = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	}

	world := make([]physics.Vector3D, len(ship.Model.Vertices))
	for i, v := range ship.Model.Vertices {
		p := v.Scale(cfg.ShipScale)
		p = p.RotateX(pitchRad)
		p = p.RotateZ(rollRad)
		// Orient the model into the camera frame
		p = cam.Right.Scale(p.X).
			Add(cam.Up.Scale(p.Y)).
			Add(cam.Front.Scale(-p.Z))
		world[i] = anchor.Add(p)
	}
	r.strokeEdges(world, ship.Model.Edges, clr)
}

// RenderEnemy implements entity.Renderer
func (r *Renderer) RenderEnemy(enemy *entity.Enemy) {
	if enemy == nil || !enemy.IsActive() {
		return
	}
	r.renderModel(&enemy.BaseEntity, r.colors.enemy)
}

// RenderMeteorite implements entity.Renderer
func (r *Renderer) RenderMeteorite(meteorite *entity.Meteorite) {
	if meteorite == nil || !meteorite.IsActive() {
		return
	}
	r.renderModel(&meteorite.BaseEntity, r.colors.meteorite)
}

// RenderLifeSphere implements entity.Renderer
func (r *Renderer) RenderLifeSphere(sphere *entity.LifeSphere) {
	if sphere == nil || !sphere.IsActive() {
		return
	}
	r.renderModel(&sphere.BaseEntity, r.colors.lifeSphere)
}

// RenderProjectile implements entity.Renderer
func (r *Renderer) RenderProjectile(projectile *entity.Projectile) {
	if projectile == nil || !projectile.IsActive() {
		return
	}
	clr := r.colors.playerBolt
	if projectile.IsEnemyProjectile() {
		clr = r.colors.enemyBolt
	}
	r.renderModel(&projectile.BaseEntity, clr)
}

// renderModel projects an entity's wireframe through its world
// transform and strokes the visible edges.
func (r *Renderer) renderModel(e *entity.BaseEntity, clr color.RGBA) {
	if r.screen == nil || e.Model == nil {
		return
	}

	world := make([]physics.Vector3D, len(e.Model.Vertices))
	for i, v := range e.Model.Vertices {
		world[i] = render.TransformModelVertex(v, e.Scale, e.Rotation, e.Position)
	}
	r.strokeEdges(world, e.Model.Edges, clr)
}

func (r *Renderer) strokeEdges(world []physics.Vector3D, edges [][2]int, clr color.RGBA) {
	for _, edge := range edges {
		a, b, ok := r.projector.ProjectEdge(world[edge[0]], world[edge[1]])
		if !ok {
			continue
		}
		vector.StrokeLine(r.screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			1, clr, true,
		)
	}
}
