package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/engine/voxel"
)

type fakeBarrel struct {
	forward        mgl32.Vec3
	muzzle         mgl32.Vec3
	muzzleRotation util.Rotator
	elevations     []float32
}

func (b *fakeBarrel) GetForwardVector() mgl32.Vec3 {
	return b.forward
}

func (b *fakeBarrel) GetMuzzleTransform() (mgl32.Vec3, util.Rotator) {
	return b.muzzle, b.muzzleRotation
}

func (b *fakeBarrel) Elevate(degrees float32) {
	b.elevations = append(b.elevations, degrees)
}

type fakeTurret struct {
	rotations []float32
}

func (t *fakeTurret) Rotate(degrees float32) {
	t.rotations = append(t.rotations, degrees)
}

type fakeProjectile struct {
	template    string
	position    mgl32.Vec3
	rotation    util.Rotator
	launchSpeed float32
	launches    int
}

func (p *fakeProjectile) LaunchProjectile(speed float32) {
	p.launchSpeed = speed
	p.launches++
}

type fakeSpawner struct {
	known   string
	spawned []*fakeProjectile
}

func (s *fakeSpawner) SpawnProjectile(template string, position mgl32.Vec3, rotation util.Rotator, instigator *Tank) Launchable {
	if template != s.known {
		return nil
	}
	projectile := &fakeProjectile{template: template, position: position, rotation: rotation}
	s.spawned = append(s.spawned, projectile)
	return projectile
}

type fakeSolver struct {
	velocity mgl32.Vec3
	ok       bool
	targets  []mgl32.Vec3
	starts   []mgl32.Vec3
}

func (s *fakeSolver) SuggestProjectileVelocity(start, end mgl32.Vec3, speed float32) (mgl32.Vec3, bool) {
	s.starts = append(s.starts, start)
	s.targets = append(s.targets, end)
	return s.velocity, s.ok
}

type fakeCamera struct {
	width, height int
	position      mgl32.Vec3
	direction     mgl32.Vec3
	deprojectOK   bool
	deprojected   [][2]float64
}

func (c *fakeCamera) GetScreenSize() (int, int) {
	return c.width, c.height
}

func (c *fakeCamera) GetPosition() mgl32.Vec3 {
	return c.position
}

func (c *fakeCamera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

func (c *fakeCamera) Deproject(screenX, screenY float64) (mgl32.Vec3, mgl32.Vec3, bool) {
	c.deprojected = append(c.deprojected, [2]float64{screenX, screenY})
	return c.position, c.direction, c.deprojectOK
}

type traceCall struct {
	start, end mgl32.Vec3
	channel    voxel.CollisionChannel
}

type fakeTracer struct {
	hit      bool
	location mgl32.Vec3
	calls    []traceCall
}

func (t *fakeTracer) LineTraceSingleByChannel(start, end mgl32.Vec3, channel voxel.CollisionChannel) (util.HitInfo3D, bool) {
	t.calls = append(t.calls, traceCall{start: start, end: end, channel: channel})
	if !t.hit {
		return util.HitInfo3D{}, false
	}
	return util.HitInfo3D{Hit: true, CollisionWorldPosition: t.location}, true
}

func testAimingSettings() AimingSettings {
	return AimingSettings{
		RoundsLeft:          3,
		ReloadTimeInSeconds: 3,
		LaunchSpeed:         40,
		ProjectileTemplate:  "Shell",
		AimTolerance:        0.01,
	}
}

type aimingFixture struct {
	clock   *util.ManualClock
	barrel  *fakeBarrel
	turret  *fakeTurret
	spawner *fakeSpawner
	solver  *fakeSolver
	aiming  *AimingComponent
}

func newAimingFixture(settings AimingSettings) *aimingFixture {
	f := &aimingFixture{
		clock:   util.NewManualClock(0),
		barrel:  &fakeBarrel{forward: mgl32.Vec3{1, 0, 0}, muzzle: mgl32.Vec3{1, 2, 3}},
		turret:  &fakeTurret{},
		spawner: &fakeSpawner{known: "Shell"},
		solver:  &fakeSolver{velocity: mgl32.Vec3{40, 0, 0}, ok: true},
	}
	f.aiming = NewAimingComponent("test tank", settings, f.clock, f.spawner, f.solver)
	f.aiming.Initialise(f.barrel, f.turret)
	f.aiming.BeginPlay()
	return f
}
