package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/util"
)

// Barrel elevates around the turret's side axis. Elevation is relative to the turret.
type Barrel struct {
	*util.Transform
	elevation           float32
	maxDegreesPerSecond float32
	minElevation        float32
	maxElevation        float32
	muzzle              util.Socket
	deltaTime           float64
}

func NewBarrel(settings BarrelSettings) *Barrel {
	b := &Barrel{
		Transform:           util.NewDefaultTransform("Barrel"),
		maxDegreesPerSecond: settings.MaxDegreesPerSecond,
		minElevation:        settings.MinElevation,
		maxElevation:        settings.MaxElevation,
		muzzle: util.Socket{
			Name:        settings.MuzzleSocket,
			Translation: settings.MuzzleOffset,
			Rotation:    mgl32.QuatIdent(),
		},
	}
	b.SetPosition(settings.MountOffset)
	b.setElevation(util.Clamp32(0, b.minElevation, b.maxElevation))
	return b
}

// SetMuzzleSocket replaces the configured muzzle offset, e.g. with a socket read from the barrel model.
func (b *Barrel) SetMuzzleSocket(socket util.Socket) {
	b.muzzle = socket
}

// Tick stores the frame time used to rate limit Elevate.
func (b *Barrel) Tick(deltaTime float64) {
	b.deltaTime = deltaTime
}

func (b *Barrel) GetElevation() float32 {
	return b.elevation
}

func (b *Barrel) GetForwardVector() mgl32.Vec3 {
	return b.GetForward()
}

func (b *Barrel) GetMuzzleTransform() (mgl32.Vec3, util.Rotator) {
	position := b.TransformPoint(b.muzzle.Translation)
	direction := b.GetWorldRotation().Mul(b.muzzle.Rotation).Rotate(mgl32.Vec3{1, 0, 0})
	return position, util.RotatorFromDirection(direction)
}

// Elevate moves the barrel by degrees, at most MaxDegreesPerSecond in this
// frame and never beyond the elevation limits. A zero rate means unlimited.
func (b *Barrel) Elevate(degrees float32) {
	if b.maxDegreesPerSecond > 0 {
		maxStep := b.maxDegreesPerSecond * float32(b.deltaTime)
		degrees = util.Clamp32(degrees, -maxStep, maxStep)
	}
	b.setElevation(util.Clamp32(b.elevation+degrees, b.minElevation, b.maxElevation))
}

func (b *Barrel) setElevation(elevation float32) {
	b.elevation = elevation
	b.SetRotator(util.Rotator{Pitch: elevation})
}
