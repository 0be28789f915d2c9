// pkg/engine/camera_test.go
package engine

import (
	"math"
	"testing"

	"github.com/opd-ai/go-starfighter/pkg/physics"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vectorsAlmostEqual(a, b physics.Vector3D) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestNewCamera(t *testing.T) {
	cam := NewCamera(physics.Vector3D{Z: 5}, 89)

	if cam.Yaw != -90 {
		t.Errorf("expected default yaw -90, got %f", cam.Yaw)
	}
	if cam.Pitch != 0 {
		t.Errorf("expected default pitch 0, got %f", cam.Pitch)
	}
	// Yaw -90 looks down negative Z
	if !vectorsAlmostEqual(cam.Front, physics.Vector3D{Z: -1}) {
		t.Errorf("expected front (0,0,-1), got %+v", cam.Front)
	}
	if !vectorsAlmostEqual(cam.Right, physics.Vector3D{X: 1}) {
		t.Errorf("expected right (1,0,0), got %+v", cam.Right)
	}
	if !vectorsAlmostEqual(cam.Up, physics.Vector3D{Y: 1}) {
		t.Errorf("expected up (0,1,0), got %+v", cam.Up)
	}
}

func TestCamera_ProcessMouseDelta(t *testing.T) {
	tests := []struct {
		name      string
		dx, dy    float64
		wantYaw   float64
		wantPitch float64
	}{
		{"turn right", 45, 0, -45, 0},
		{"turn left", -45, 0, -135, 0},
		{"look up", 0, 30, -90, 30},
		{"pitch clamped high", 0, 200, -90, 89},
		{"pitch clamped low", 0, -200, -90, -89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(physics.Vector3D{}, 89)
			cam.ProcessMouseDelta(tt.dx, tt.dy)

			if !almostEqual(cam.Yaw, tt.wantYaw) {
				t.Errorf("yaw = %f, want %f", cam.Yaw, tt.wantYaw)
			}
			if !almostEqual(cam.Pitch, tt.wantPitch) {
				t.Errorf("pitch = %f, want %f", cam.Pitch, tt.wantPitch)
			}
		})
	}
}

func TestCamera_FrontStaysUnit(t *testing.T) {
	cam := NewCamera(physics.Vector3D{}, 89)
	cam.ProcessMouseDelta(123, 45)

	if !almostEqual(cam.Front.Length(), 1) {
		t.Errorf("front not unit length: %f", cam.Front.Length())
	}
	if !almostEqual(cam.Right.Length(), 1) {
		t.Errorf("right not unit length: %f", cam.Right.Length())
	}
	if !almostEqual(cam.Up.Length(), 1) {
		t.Errorf("up not unit length: %f", cam.Up.Length())
	}
}

func TestCamera_Movement(t *testing.T) {
	tests := []struct {
		name string
		move func(c *Camera)
		want physics.Vector3D
	}{
		{"forward", func(c *Camera) { c.MoveForward(10) }, physics.Vector3D{Z: -10}},
		{"backward", func(c *Camera) { c.MoveBackward(10) }, physics.Vector3D{Z: 10}},
		{"right", func(c *Camera) { c.MoveRight(10) }, physics.Vector3D{X: 10}},
		{"left", func(c *Camera) { c.MoveLeft(10) }, physics.Vector3D{X: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(physics.Vector3D{}, 89)
			tt.move(cam)

			if !vectorsAlmostEqual(cam.Position, tt.want) {
				t.Errorf("position = %+v, want %+v", cam.Position, tt.want)
			}
		})
	}
}

func TestCamera_ViewTarget(t *testing.T) {
	cam := NewCamera(physics.Vector3D{Z: 5}, 89)
	target := cam.ViewTarget()

	want := physics.Vector3D{Z: 4}
	if !vectorsAlmostEqual(target, want) {
		t.Errorf("view target = %+v, want %+v", target, want)
	}
}

func TestCamera_ForwardVectorAfterLook(t *testing.T) {
	cam := NewCamera(physics.Vector3D{}, 89)
	// Turn 90 degrees right: now looking down positive X
	cam.ProcessMouseDelta(90, 0)

	forward := cam.ForwardVector()
	if !vectorsAlmostEqual(forward, physics.Vector3D{X: 1}) {
		t.Errorf("forward = %+v, want (1,0,0)", forward)
	}
}
