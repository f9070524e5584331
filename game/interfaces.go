package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/engine/voxel"
)

type BarrelActuator interface {
	GetForwardVector() mgl32.Vec3
	// GetMuzzleTransform is the world position and rotation of the projectile spawn point.
	GetMuzzleTransform() (mgl32.Vec3, util.Rotator)
	Elevate(degrees float32)
}

type TurretActuator interface {
	Rotate(degrees float32)
}

type Launchable interface {
	LaunchProjectile(speed float32)
}

type ProjectileSpawner interface {
	// SpawnProjectile returns nil when the template is unknown.
	SpawnProjectile(template string, position mgl32.Vec3, rotation util.Rotator, instigator *Tank) Launchable
}

type BallisticSolver interface {
	SuggestProjectileVelocity(start, end mgl32.Vec3, speed float32) (mgl32.Vec3, bool)
}

type ViewportCamera interface {
	GetScreenSize() (int, int)
	GetPosition() mgl32.Vec3
	SetPosition(pos mgl32.Vec3)
	Deproject(screenX, screenY float64) (mgl32.Vec3, mgl32.Vec3, bool)
}

type LineTracer interface {
	LineTraceSingleByChannel(start, end mgl32.Vec3, channel voxel.CollisionChannel) (util.HitInfo3D, bool)
}

type Controller interface {
	Tick(deltaTime float64)
}

// GravitySolver solves for the flat arc under constant gravity without
// tracing the flight path for obstacles.
type GravitySolver struct {
	Gravity float32
}

func (s GravitySolver) SuggestProjectileVelocity(start, end mgl32.Vec3, speed float32) (mgl32.Vec3, bool) {
	return util.SuggestProjectileVelocity(start, end, speed, s.Gravity, false)
}
