package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestShortestYawDelta(t *testing.T) {
	tests := []struct {
		raw  float32
		want float32
	}{
		{170, 170},
		{190, -170},
		{-190, 170},
		{-170, -170},
		{0, 0},
		{350, -10},
		{180, 180},
	}
	for _, tt := range tests {
		if got := ShortestYawDelta(tt.raw); got != tt.want {
			t.Errorf("ShortestYawDelta(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestRotatorFromDirectionRoundTrip(t *testing.T) {
	directions := []mgl32.Vec3{
		{1, 0, 0},
		{0, 0, 1},
		{-1, 0, 0},
		{1, 1, 1},
		{-0.3, -0.2, 0.9},
	}
	for _, direction := range directions {
		direction = direction.Normalize()
		rotator := RotatorFromDirection(direction)
		if !VecEquals(rotator.Forward(), direction, 1e-5) {
			t.Errorf("Forward() of %v = %v, want %v", rotator, rotator.Forward(), direction)
		}
		if !VecEquals(rotator.Quat().Rotate(mgl32.Vec3{1, 0, 0}), direction, 1e-5) {
			t.Errorf("Quat() of %v does not rotate +X onto %v", rotator, direction)
		}
	}
}

func TestRotatorAngles(t *testing.T) {
	r := RotatorFromDirection(mgl32.Vec3{0, 1, 1})
	if Abs(r.Pitch-45) > 1e-4 || Abs(r.Yaw-90) > 1e-4 {
		t.Fatalf("unexpected rotator %v", r)
	}
	delta := Rotator{Yaw: 170}.Sub(Rotator{Yaw: -20})
	if delta.Yaw != 190 {
		t.Fatalf("Sub must not wrap, got %v", delta.Yaw)
	}
	if delta.Normalize().Yaw != -170 {
		t.Fatalf("Normalize must wrap, got %v", delta.Normalize().Yaw)
	}
}

func TestTransformHierarchy(t *testing.T) {
	hull := NewDefaultTransform("hull")
	hull.SetPosition(mgl32.Vec3{10, 0, 0})
	hull.SetRotator(Rotator{Yaw: 90})

	barrel := NewDefaultTransform("barrel")
	barrel.SetParent(hull)
	barrel.SetPosition(mgl32.Vec3{0, 1, 0})

	if !VecEquals(barrel.GetForward(), mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Fatalf("child forward %v should follow parent yaw", barrel.GetForward())
	}
	muzzle := barrel.TransformPoint(mgl32.Vec3{2, 0, 0})
	if !VecEquals(muzzle, mgl32.Vec3{10, 1, 2}, 1e-5) {
		t.Fatalf("muzzle at %v", muzzle)
	}
}
