package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func ToRadian(angle float32) float32 {
	return mgl32.DegToRad(angle)
}

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func Clamp32(value, min, max float32) float32 {
	return float32(Clamp(float64(value), float64(min), float64(max)))
}

func EucledianDistance3D(one, two mgl32.Vec3) float32 {
	return one.Sub(two).Len()
}

// VecEquals compares component wise, like an engine's Equals(other, tolerance).
func VecEquals(one, two mgl32.Vec3, tolerance float32) bool {
	return Abs(one.X()-two.X()) <= tolerance &&
		Abs(one.Y()-two.Y()) <= tolerance &&
		Abs(one.Z()-two.Z()) <= tolerance
}

// SafeNormal returns the zero vector instead of NaNs for tiny input.
func SafeNormal(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < 1e-8 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// NormalizeAxis wraps an angle in degrees to (-180, 180].
func NormalizeAxis(angle float32) float32 {
	angle = float32(math.Mod(float64(angle), 360))
	if angle > 180 {
		angle -= 360
	} else if angle <= -180 {
		angle += 360
	}
	return angle
}

// ShortestYawDelta turns a raw yaw difference into the rotation that takes
// the shorter way around. Deltas below 180 degrees are returned unchanged.
func ShortestYawDelta(rawDelta float32) float32 {
	if Abs(rawDelta) < 180 {
		return rawDelta
	}
	return NormalizeAxis(rawDelta)
}
