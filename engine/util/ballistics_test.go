package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSuggestProjectileVelocityHitsTarget(t *testing.T) {
	tests := []struct {
		name    string
		start   mgl32.Vec3
		end     mgl32.Vec3
		speed   float32
		highArc bool
	}{
		{"flat ground", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{100, 1, 0}, 60, false},
		{"flat ground high arc", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{100, 1, 0}, 60, true},
		{"uphill diagonal", mgl32.Vec3{10, 0, 10}, mgl32.Vec3{-40, 12, 70}, 80, false},
		{"downhill", mgl32.Vec3{0, 30, 0}, mgl32.Vec3{0, 0, -150}, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			velocity, ok := SuggestProjectileVelocity(tt.start, tt.end, tt.speed, DefaultGravity, tt.highArc)
			if !ok {
				t.Fatalf("expected a solution")
			}
			if Abs(velocity.Len()-tt.speed) > 0.01 {
				t.Fatalf("launch speed %0.3f, want %0.3f", velocity.Len(), tt.speed)
			}
			horizontalDistance := mgl32.Vec3{tt.end.X() - tt.start.X(), 0, tt.end.Z() - tt.start.Z()}.Len()
			horizontalSpeed := mgl32.Vec3{velocity.X(), 0, velocity.Z()}.Len()
			flightTime := horizontalDistance / horizontalSpeed
			landing := PositionAtTime(tt.start, velocity, DefaultGravity, flightTime)
			if !VecEquals(landing, tt.end, 0.05) {
				t.Fatalf("projectile lands at %v, want %v", landing, tt.end)
			}
		})
	}
}

func TestSuggestProjectileVelocityLowArcIsFlatter(t *testing.T) {
	start := mgl32.Vec3{0, 0, 0}
	end := mgl32.Vec3{50, 0, 0}
	low, _ := SuggestProjectileVelocity(start, end, 40, DefaultGravity, false)
	high, _ := SuggestProjectileVelocity(start, end, 40, DefaultGravity, true)
	if low.Y() >= high.Y() {
		t.Fatalf("low arc %v should climb less than high arc %v", low, high)
	}
}

func TestSuggestProjectileVelocityOutOfReach(t *testing.T) {
	// max range on flat ground is v^2/g, about 10m at 10m/s
	if _, ok := SuggestProjectileVelocity(mgl32.Vec3{}, mgl32.Vec3{500, 0, 0}, 10, DefaultGravity, false); ok {
		t.Fatalf("expected no solution")
	}
	if _, ok := SuggestProjectileVelocity(mgl32.Vec3{}, mgl32.Vec3{0, 100, 0}, 10, DefaultGravity, false); ok {
		t.Fatalf("expected no solution straight up")
	}
	if _, ok := SuggestProjectileVelocity(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, 10, DefaultGravity, false); ok {
		t.Fatalf("expected no solution for identical points")
	}
}

func TestSuggestProjectileVelocityWithoutGravity(t *testing.T) {
	velocity, ok := SuggestProjectileVelocity(mgl32.Vec3{}, mgl32.Vec3{0, 0, 10}, 5, 0, false)
	if !ok || !VecEquals(velocity, mgl32.Vec3{0, 0, 5}, 1e-4) {
		t.Fatalf("got %v %v", velocity, ok)
	}
}

func BenchmarkSuggestProjectileVelocity(b *testing.B) {
	start := mgl32.Vec3{10, 2, 10}
	end := mgl32.Vec3{-40, 12, 70}
	for i := 0; i < b.N; i++ {
		_, _ = SuggestProjectileVelocity(start, end, 80, DefaultGravity, false)
	}
}
