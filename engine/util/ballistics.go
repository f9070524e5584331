package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const DefaultGravity = float32(9.81)

// SuggestProjectileVelocity finds the launch velocity that carries a
// projectile fired at exactly speed from start to end. Gravity pulls along
// -Y with the given magnitude. There are usually two answers; the flat one
// is returned unless favorHighArc is set. The second return value is false
// when end is out of reach at this speed.
func SuggestProjectileVelocity(start, end mgl32.Vec3, speed, gravity float32, favorHighArc bool) (mgl32.Vec3, bool) {
	flightDelta := end.Sub(start)
	if speed <= 0 || flightDelta.Len() < 1e-6 {
		return mgl32.Vec3{}, false
	}
	if gravity == 0 {
		return flightDelta.Normalize().Mul(speed), true
	}

	horizontal := mgl32.Vec3{flightDelta.X(), 0, flightDelta.Z()}
	deltaXZ := float64(horizontal.Len())
	deltaY := float64(flightDelta.Y())
	v := float64(speed)
	g := float64(gravity)
	speedSq := v * v

	if deltaXZ < 1e-6 {
		// straight up or down
		if deltaY > 0 && speedSq < 2*g*deltaY {
			return mgl32.Vec3{}, false
		}
		if deltaY > 0 {
			return mgl32.Vec3{0, speed, 0}, true
		}
		return mgl32.Vec3{0, -speed, 0}, true
	}

	// v^4 - g(g x^2 + 2 y v^2)
	insideTheSqrt := speedSq*speedSq - g*(g*deltaXZ*deltaXZ+2*deltaY*speedSq)
	if insideTheSqrt < 0 {
		return mgl32.Vec3{}, false
	}
	sqrtPart := math.Sqrt(insideTheSqrt)

	tanAngle := (speedSq - sqrtPart) / (g * deltaXZ)
	if favorHighArc {
		tanAngle = (speedSq + sqrtPart) / (g * deltaXZ)
	}
	angle := math.Atan(tanAngle)

	magXZ := float32(v * math.Cos(angle))
	magY := float32(v * math.Sin(angle))
	dirXZ := horizontal.Normalize()
	return dirXZ.Mul(magXZ).Add(mgl32.Vec3{0, magY, 0}), true
}

// PositionAtTime evaluates the ballistic flight started at origin.
func PositionAtTime(origin, velocity mgl32.Vec3, gravity, t float32) mgl32.Vec3 {
	return origin.Add(velocity.Mul(t)).Sub(mgl32.Vec3{0, 0.5 * gravity * t * t, 0})
}
