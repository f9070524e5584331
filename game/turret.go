package game

import (
	"github.com/memmaker/tankwar/engine/util"
)

// Turret yaws around the hull's up axis. Yaw is relative to the hull.
type Turret struct {
	*util.Transform
	yaw                 float32
	maxDegreesPerSecond float32
	deltaTime           float64
}

func NewTurret(settings TurretSettings) *Turret {
	t := &Turret{
		Transform:           util.NewDefaultTransform("Turret"),
		maxDegreesPerSecond: settings.MaxDegreesPerSecond,
	}
	t.SetPosition(settings.MountOffset)
	return t
}

func (t *Turret) Tick(deltaTime float64) {
	t.deltaTime = deltaTime
}

func (t *Turret) GetYaw() float32 {
	return t.yaw
}

// Rotate turns by degrees, at most MaxDegreesPerSecond in this frame.
func (t *Turret) Rotate(degrees float32) {
	if t.maxDegreesPerSecond > 0 {
		maxStep := t.maxDegreesPerSecond * float32(t.deltaTime)
		degrees = util.Clamp32(degrees, -maxStep, maxStep)
	}
	t.yaw = util.NormalizeAxis(t.yaw + degrees)
	t.SetRotator(util.Rotator{Yaw: t.yaw})
}
