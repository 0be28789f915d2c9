// pkg/render/terminal.go
package render

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-starfighter/pkg/entity"
	"github.com/opd-ai/go-starfighter/pkg/physics"
)

// TerminalRenderer provides a simple ASCII rendering of the 3D scene
// for terminals. Entity wireframes are projected through the shared
// Projector and rasterized into a rune buffer.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	projector *Projector

	score int
	lives int
}

// NewTerminalRenderer creates a terminal renderer with the specified
// dimensions and lens settings.
func NewTerminalRenderer(width, height int, fov, nearPlane, farPlane float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:     width,
		height:    height,
		buffer:    buffer,
		projector: NewProjector(width, height, fov, nearPlane, farPlane),
	}
}

// SetView positions the view for this frame from the camera basis
func (r *TerminalRenderer) SetView(position, front, right, up physics.Vector3D) {
	r.projector.SetView(position, front, right, up)
}

// SetHUD records the score and lives shown under the frame
func (r *TerminalRenderer) SetHUD(score, lives int) {
	r.score = score
	r.lives = lives
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	// Clear terminal and home the cursor
	fmt.Print("\033[H\033[2J")

	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
	for y := range r.buffer {
		fmt.Println("|" + string(r.buffer[y]) + "|")
	}
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
	fmt.Printf("Score: %d   Lives: %s\n", r.score, strings.Repeat("# ", r.lives))
}

// RenderShip implements entity.Renderer. The player flies in first
// person, so only the fixed crosshair is drawn.
func (r *TerminalRenderer) RenderShip(ship *entity.Ship) {
	if ship == nil {
		return
	}
	r.plot(r.width/2, r.height/2, '+')
}

// RenderEnemy implements entity.Renderer
func (r *TerminalRenderer) RenderEnemy(enemy *entity.Enemy) {
	if enemy == nil || !enemy.IsActive() {
		return
	}
	r.drawWireframe(&enemy.BaseEntity, 'E', '.')
}

// RenderMeteorite implements entity.Renderer
func (r *TerminalRenderer) RenderMeteorite(meteorite *entity.Meteorite) {
	if meteorite == nil || !meteorite.IsActive() {
		return
	}
	r.drawWireframe(&meteorite.BaseEntity, '@', '#')
}

// RenderLifeSphere implements entity.Renderer
func (r *TerminalRenderer) RenderLifeSphere(sphere *entity.LifeSphere) {
	if sphere == nil || !sphere.IsActive() {
		return
	}
	r.drawWireframe(&sphere.BaseEntity, 'O', 'o')
}

// RenderProjectile implements entity.Renderer
func (r *TerminalRenderer) RenderProjectile(projectile *entity.Projectile) {
	if projectile == nil || !projectile.IsActive() {
		return
	}
	glyph := '-'
	if projectile.IsEnemyProjectile() {
		glyph = '='
	}
	if screen, ok := r.projector.Project(projectile.Position); ok {
		r.plot(int(screen.X), int(screen.Y), glyph)
	}
}

// drawWireframe projects the entity's model edges and rasterizes them,
// marking the projected center with the entity glyph.
func (r *TerminalRenderer) drawWireframe(e *entity.BaseEntity, center, line rune) {
	if e.Model != nil {
		world := make([]physics.Vector3D, len(e.Model.Vertices))
		for i, v := range e.Model.Vertices {
			world[i] = TransformModelVertex(v, e.Scale, e.Rotation, e.Position)
		}

		for _, edge := range e.Model.Edges {
			a, b, ok := r.projector.ProjectEdge(world[edge[0]], world[edge[1]])
			if !ok {
				continue
			}
			r.drawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), line)
		}
	}

	if screen, ok := r.projector.Project(e.Position); ok {
		r.plot(int(screen.X), int(screen.Y), center)
	}
}

// drawLine rasterizes a segment into the buffer with Bresenham's
// algorithm. Segments much longer than the viewport come from
// projections near the view plane and are skipped rather than clipped.
func (r *TerminalRenderer) drawLine(x0, y0, x1, y1 int, glyph rune) {
	if abs(x1-x0) > r.width*4 || abs(y1-y0) > r.height*4 {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		r.plot(x0, y0, glyph)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// plot writes a glyph if the cell is on screen
func (r *TerminalRenderer) plot(x, y int, glyph rune) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyph
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
