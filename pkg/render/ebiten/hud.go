// pkg/render/ebiten/hud.go
package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-starfighter/pkg/engine"
)

const (
	hudMargin      = 20
	lifeBlockSize  = 16
	lifeBlockGap   = 6
	cooldownBarW   = 120
	cooldownBarH   = 8
	reticleGap     = 6
	reticleArm     = 14
	strutInset     = 80
	radarRadius    = 60
	radarRange     = 100.0 // world units mapped to the radar edge
	damageFlashMax = 90    // peak alpha of the hit overlay
)

// drawHUD layers the cockpit instrumentation over the scene
func (r *Renderer) drawHUD(screen *ebiten.Image) {
	w := float32(r.cfg.Window.Width)
	h := float32(r.cfg.Window.Height)
	sway := float32(r.game.Anim.CockpitSway)

	r.drawReticle(screen, w, h, sway)
	r.drawStruts(screen, w, h, sway)
	r.drawScore(screen)
	r.drawLives(screen, w)
	r.drawCooldown(screen, w, h)
	r.drawRadar(screen, h)
	r.drawFPS(screen, h)
	r.drawDamageFlash(screen, w, h)
	r.drawStatusOverlay(screen, w, h)
}

// drawReticle draws the aiming crosshair, swaying with the cockpit
func (r *Renderer) drawReticle(screen *ebiten.Image, w, h, sway float32) {
	cx := w/2 + sway*0.3
	cy := h / 2
	clr := r.colors.hud

	vector.StrokeLine(screen, cx-reticleGap-reticleArm, cy, cx-reticleGap, cy, 1, clr, true)
	vector.StrokeLine(screen, cx+reticleGap, cy, cx+reticleGap+reticleArm, cy, 1, clr, true)
	vector.StrokeLine(screen, cx, cy-reticleGap-reticleArm, cx, cy-reticleGap, 1, clr, true)
	vector.StrokeLine(screen, cx, cy+reticleGap, cx, cy+reticleGap+reticleArm, 1, clr, true)
}

// drawStruts draws the cockpit frame converging from the corners
func (r *Renderer) drawStruts(screen *ebiten.Image, w, h, sway float32) {
	clr := r.colors.hud
	inset := float32(strutInset)

	vector.StrokeLine(screen, sway, 0, inset+sway, inset, 2, clr, true)
	vector.StrokeLine(screen, w+sway, 0, w-inset+sway, inset, 2, clr, true)
	vector.StrokeLine(screen, sway, h, inset+sway, h-inset, 2, clr, true)
	vector.StrokeLine(screen, w+sway, h, w-inset+sway, h-inset, 2, clr, true)
}

func (r *Renderer) drawScore(screen *ebiten.Image) {
	r.drawText(screen, fmt.Sprintf("SCORE %04d", r.game.Score), hudMargin, hudMargin, r.colors.hud)
}

// drawLives renders one block per remaining life, right-aligned
func (r *Renderer) drawLives(screen *ebiten.Image, w float32) {
	lives := r.game.Player.Lives
	for i := 0; i < lives; i++ {
		x := w - hudMargin - float32(i+1)*(lifeBlockSize+lifeBlockGap)
		vector.DrawFilledRect(screen, x, hudMargin, lifeBlockSize, lifeBlockSize, r.colors.player, true)
	}
}

// drawCooldown shows weapon readiness as a draining bar
func (r *Renderer) drawCooldown(screen *ebiten.Image, w, h float32) {
	x := (w - cooldownBarW) / 2
	y := h - hudMargin - cooldownBarH

	vector.StrokeRect(screen, x, y, cooldownBarW, cooldownBarH, 1, r.colors.hud, true)

	ready := 1 - float32(r.game.Player.CooldownRatio())
	if ready > 0 {
		vector.DrawFilledRect(screen, x+1, y+1, (cooldownBarW-2)*ready, cooldownBarH-2, r.colors.playerBolt, true)
	}
}

// drawRadar plots enemy blips around the player, rotated so up on the
// radar is the camera's facing direction
func (r *Renderer) drawRadar(screen *ebiten.Image, h float32) {
	cx := float32(hudMargin + radarRadius)
	cy := h - hudMargin - radarRadius - cooldownBarH - 10

	vector.StrokeCircle(screen, cx, cy, radarRadius, 1, r.colors.hud, true)
	vector.DrawFilledCircle(screen, cx, cy, 2, r.colors.player, true)

	cam := r.game.Camera
	for _, enemy := range r.game.Enemies {
		rel := enemy.Position.Sub(cam.Position)
		right := rel.Dot(cam.Right)
		ahead := rel.Dot(cam.Front)

		bx := right / radarRange * radarRadius
		by := ahead / radarRange * radarRadius
		if bx*bx+by*by > radarRadius*radarRadius {
			continue
		}
		vector.DrawFilledCircle(screen, cx+float32(bx), cy-float32(by), 2.5, r.colors.enemy, true)
	}
}

func (r *Renderer) drawFPS(screen *ebiten.Image, h float32) {
	fps := ebiten.ActualFPS()
	if r.game.Monitor != nil {
		if monitored := r.game.Monitor.FPS(); monitored > 0 {
			fps = monitored
		}
	}
	r.drawText(screen, fmt.Sprintf("FPS %.0f", fps), hudMargin, float64(h)-hudMargin-14, r.colors.hud)
}

// drawDamageFlash tints the screen red right after a hit
func (r *Renderer) drawDamageFlash(screen *ebiten.Image, w, h float32) {
	flash := r.game.Player.DamageFlashTimer
	if flash <= 0 {
		return
	}

	alpha := uint8(damageFlashMax * flash / r.game.Player.DamageFlashDuration())
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{R: 255, A: alpha}, false)
}

// drawStatusOverlay shows the paused and game over screens
func (r *Renderer) drawStatusOverlay(screen *ebiten.Image, w, h float32) {
	switch r.game.Status {
	case engine.GameStatusPaused:
		r.drawCenteredText(screen, "PAUSED", w, h/2, r.colors.hud)
		r.drawCenteredText(screen, "PRESS ESC TO RESUME", w, h/2+24, r.colors.hud)
	case engine.GameStatusOver:
		r.drawCenteredText(screen, "GAME OVER", w, h/2-12, r.colors.enemyBolt)
		r.drawCenteredText(screen, fmt.Sprintf("FINAL SCORE %d", r.game.Score), w, h/2+12, r.colors.hud)
		r.drawCenteredText(screen, "PRESS R TO RESTART, ESC TO QUIT", w, h/2+36, r.colors.hud)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, r.face, opts)
}

func (r *Renderer) drawCenteredText(screen *ebiten.Image, str string, w, y float32, clr color.Color) {
	textWidth, _ := text.Measure(str, r.face, 0)
	r.drawText(screen, str, (float64(w)-textWidth)/2, float64(y), clr)
}
