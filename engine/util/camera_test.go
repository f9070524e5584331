package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDeprojectScreenCenterLooksForward(t *testing.T) {
	cam := NewFPSCamera(mgl32.Vec3{0, 5, 0}, 800, 600, 0.1)
	cam.SetLookTarget(mgl32.Vec3{10, 5, 10})

	origin, direction, ok := cam.Deproject(400, 300)
	if !ok {
		t.Fatalf("expected deprojection to succeed")
	}
	if !VecEquals(direction, cam.GetFront(), 1e-3) {
		t.Fatalf("direction %v, camera front %v", direction, cam.GetFront())
	}
	if EucledianDistance3D(origin, cam.GetPosition()) > 0.2 {
		t.Fatalf("ray should start near the camera, got %v", origin)
	}
}

func TestDeprojectCorners(t *testing.T) {
	cam := NewFPSCamera(mgl32.Vec3{}, 800, 600, 0.1)

	_, topLeft, ok := cam.Deproject(0, 0)
	if !ok {
		t.Fatalf("expected deprojection to succeed")
	}
	if topLeft.Y() <= 0 || topLeft.Z() >= 0 || topLeft.X() <= 0 {
		t.Fatalf("top left should point forward, up and left, got %v", topLeft)
	}
	_, bottomRight, _ := cam.Deproject(800, 600)
	if bottomRight.Y() >= 0 || bottomRight.Z() <= 0 {
		t.Fatalf("bottom right should point down and right, got %v", bottomRight)
	}
}

func TestDeprojectFailures(t *testing.T) {
	cam := NewFPSCamera(mgl32.Vec3{}, 800, 600, 0.1)
	if _, _, ok := cam.Deproject(-1, 10); ok {
		t.Errorf("outside of the viewport must fail")
	}
	if _, _, ok := cam.Deproject(10, 601); ok {
		t.Errorf("outside of the viewport must fail")
	}
	cam.SetScreenSize(0, 0)
	if _, _, ok := cam.Deproject(0, 0); ok {
		t.Errorf("zero sized viewport must fail")
	}
}

func TestChangeAnglesClampsPitch(t *testing.T) {
	cam := NewFPSCamera(mgl32.Vec3{}, 800, 600, 1)
	cam.SetInvertedY(false)
	for i := 0; i < 10; i++ {
		cam.ChangeAngles(0, 50)
	}
	_, pitch := cam.GetRotation()
	if pitch != 89 {
		t.Fatalf("pitch should clamp at 89, got %v", pitch)
	}
}
