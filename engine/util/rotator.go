package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rotator holds euler angles in degrees. Yaw turns around the up axis (Y),
// pitch raises the forward vector towards +Y. Yaw 0, pitch 0 faces +X.
type Rotator struct {
	Pitch float32
	Yaw   float32
	Roll  float32
}

func RotatorFromDirection(direction mgl32.Vec3) Rotator {
	x, y, z := float64(direction.X()), float64(direction.Y()), float64(direction.Z())
	return Rotator{
		Pitch: float32(math.Atan2(y, math.Sqrt(x*x+z*z)) * 180 / math.Pi),
		Yaw:   float32(math.Atan2(z, x) * 180 / math.Pi),
	}
}

func (r Rotator) Sub(other Rotator) Rotator {
	return Rotator{
		Pitch: r.Pitch - other.Pitch,
		Yaw:   r.Yaw - other.Yaw,
		Roll:  r.Roll - other.Roll,
	}
}

func (r Rotator) Add(other Rotator) Rotator {
	return Rotator{
		Pitch: r.Pitch + other.Pitch,
		Yaw:   r.Yaw + other.Yaw,
		Roll:  r.Roll + other.Roll,
	}
}

func (r Rotator) Normalize() Rotator {
	return Rotator{
		Pitch: NormalizeAxis(r.Pitch),
		Yaw:   NormalizeAxis(r.Yaw),
		Roll:  NormalizeAxis(r.Roll),
	}
}

func (r Rotator) Forward() mgl32.Vec3 {
	pitch := ToRadian(r.Pitch)
	yaw := ToRadian(r.Yaw)
	return mgl32.Vec3{
		Cos(pitch) * Cos(yaw),
		Sin(pitch),
		Cos(pitch) * Sin(yaw),
	}
}

// Quat maps +X onto Forward(). Roll spins around the forward axis.
func (r Rotator) Quat() mgl32.Quat {
	yaw := mgl32.QuatRotate(-ToRadian(r.Yaw), mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(ToRadian(r.Pitch), mgl32.Vec3{0, 0, 1})
	roll := mgl32.QuatRotate(ToRadian(r.Roll), mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch).Mul(roll)
}

func (r Rotator) String() string {
	return fmt.Sprintf("P=%0.2f Y=%0.2f R=%0.2f", r.Pitch, r.Yaw, r.Roll)
}
