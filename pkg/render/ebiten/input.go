// pkg/render/ebiten/input.go
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-starfighter/pkg/engine"
)

// frameInput is everything the player did during one tick
type frameInput struct {
	movement    engine.MovementInput
	lookDX      float64
	lookDY      float64
	fire        bool
	togglePause bool
	restart     bool
	quit        bool
}

// inputState tracks the cursor between ticks so mouse look works off
// deltas. The first tick after the cursor is captured is swallowed to
// avoid a large spurious jump.
type inputState struct {
	lastCursorX int
	lastCursorY int
	primed      bool
}

func newInputState() *inputState {
	return &inputState{}
}

// poll reads the devices and folds them into a frameInput
func (s *inputState) poll() frameInput {
	var frame frameInput

	frame.movement = engine.MovementInput{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
	}

	frame.fire = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	frame.togglePause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	frame.restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	frame.quit = inpututil.IsKeyJustPressed(ebiten.KeyQ)

	x, y := ebiten.CursorPosition()
	if s.primed {
		frame.lookDX = float64(x - s.lastCursorX)
		frame.lookDY = float64(y - s.lastCursorY)
	}
	s.lastCursorX = x
	s.lastCursorY = y
	s.primed = true

	return frame
}
