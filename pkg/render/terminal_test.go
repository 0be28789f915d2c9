// pkg/render/terminal_test.go
package render

import (
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-starfighter/pkg/entity"
	"github.com/opd-ai/go-starfighter/pkg/physics"
)

func newTestTerminal() *TerminalRenderer {
	r := NewTerminalRenderer(80, 24, 70, 0.1, 1000)
	r.SetView(
		physics.Vector3D{},
		physics.Vector3D{Z: -1},
		physics.Vector3D{X: 1},
		physics.Vector3D{Y: 1},
	)
	return r
}

func (r *TerminalRenderer) drawnCells() int {
	count := 0
	for y := range r.buffer {
		for x := range r.buffer[y] {
			if r.buffer[y][x] != ' ' {
				count++
			}
		}
	}
	return count
}

func TestNewTerminalRenderer(t *testing.T) {
	r := NewTerminalRenderer(80, 24, 70, 0.1, 1000)

	if len(r.buffer) != 24 {
		t.Errorf("expected 24 rows, got %d", len(r.buffer))
	}
	if len(r.buffer[0]) != 80 {
		t.Errorf("expected 80 columns, got %d", len(r.buffer[0]))
	}
}

func TestTerminalRenderer_Clear(t *testing.T) {
	r := newTestTerminal()
	r.buffer[5][5] = 'X'

	r.Clear()

	if r.drawnCells() != 0 {
		t.Error("expected empty buffer after Clear")
	}
}

func TestTerminalRenderer_RenderShipCrosshair(t *testing.T) {
	r := newTestTerminal()
	ship := entity.NewShip(1, physics.Vector3D{}, entity.DefaultShipStats())

	r.Clear()
	r.RenderShip(ship)

	if r.buffer[12][40] != '+' {
		t.Errorf("expected crosshair at center, got %q", r.buffer[12][40])
	}
}

func TestTerminalRenderer_RenderEnemyAhead(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := newTestTerminal()
	enemy := entity.NewEnemy(1, physics.Vector3D{Z: -20}, nil, entity.DefaultEnemyStats(), rng)

	r.Clear()
	r.RenderEnemy(enemy)

	if r.drawnCells() == 0 {
		t.Error("expected enemy ahead to draw something")
	}
}

func TestTerminalRenderer_RenderEnemyBehind(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := newTestTerminal()
	enemy := entity.NewEnemy(1, physics.Vector3D{Z: 20}, nil, entity.DefaultEnemyStats(), rng)

	r.Clear()
	r.RenderEnemy(enemy)

	if r.drawnCells() != 0 {
		t.Error("entity behind the camera must not be drawn")
	}
}

func TestTerminalRenderer_SkipsInactiveEntities(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := newTestTerminal()
	enemy := entity.NewEnemy(1, physics.Vector3D{Z: -20}, nil, entity.DefaultEnemyStats(), rng)
	enemy.Destroy()

	r.Clear()
	r.RenderEnemy(enemy)

	if r.drawnCells() != 0 {
		t.Error("destroyed entity must not be drawn")
	}
}

func TestTerminalRenderer_RenderProjectileGlyphs(t *testing.T) {
	r := newTestTerminal()

	cannon := entity.NewLaserCannon(1, 0.3)
	bolt := cannon.CreateProjectile(physics.Vector3D{Z: -10}, physics.Vector3D{Z: -1})
	r.Clear()
	r.RenderProjectile(bolt)
	if r.buffer[12][40] != '-' {
		t.Errorf("expected player bolt glyph '-', got %q", r.buffer[12][40])
	}

	blaster := entity.NewEnemyBlaster(2, 2.0)
	enemyBolt := blaster.CreateProjectile(physics.Vector3D{Z: -10}, physics.Vector3D{Z: -1})
	r.Clear()
	r.RenderProjectile(enemyBolt)
	if r.buffer[12][40] != '=' {
		t.Errorf("expected enemy bolt glyph '=', got %q", r.buffer[12][40])
	}
}

func TestTerminalRenderer_RenderMeteorite(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := newTestTerminal()
	m := entity.NewMeteorite(1, physics.Vector3D{Z: -30}, 3.0, entity.BoundingSphereScale, rng)

	r.Clear()
	r.RenderMeteorite(m)

	if r.drawnCells() == 0 {
		t.Error("expected meteorite to draw something")
	}
}

func TestTerminalRenderer_RenderLifeSphere(t *testing.T) {
	r := newTestTerminal()
	s := entity.NewLifeSphere(1, physics.Vector3D{Z: -30}, 1.5, 2.0)

	r.Clear()
	r.RenderLifeSphere(s)

	if r.drawnCells() == 0 {
		t.Error("expected life sphere to draw something")
	}
}

func TestTerminalRenderer_PlotOutOfBounds(t *testing.T) {
	r := newTestTerminal()

	// Must not panic
	r.plot(-1, 0, 'x')
	r.plot(0, -1, 'x')
	r.plot(80, 0, 'x')
	r.plot(0, 24, 'x')

	if r.drawnCells() != 0 {
		t.Error("out of bounds plots must not write to the buffer")
	}
}

func TestTerminalRenderer_NilEntities(t *testing.T) {
	r := newTestTerminal()

	// Must not panic
	r.RenderShip(nil)
	r.RenderEnemy(nil)
	r.RenderMeteorite(nil)
	r.RenderLifeSphere(nil)
	r.RenderProjectile(nil)
}
