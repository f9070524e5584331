package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/engine/voxel"
)

// World drives the single threaded frame loop. It is the projectile factory
// and the line tracer for everything living in it.
type World struct {
	clock       *util.ManualClock
	gameMap     *voxel.Map
	gravity     float32
	templates   map[string]ProjectileTemplate
	tanks       []*Tank
	controllers []Controller
	projectiles []*Projectile
	timer       *util.Timer
	frame       uint64
}

func NewWorld(gameMap *voxel.Map, gravity float32) *World {
	return &World{
		clock:     util.NewManualClock(0),
		gameMap:   gameMap,
		gravity:   gravity,
		templates: make(map[string]ProjectileTemplate),
		timer:     util.NewTimer(),
	}
}

func (w *World) GetClock() util.Clock {
	return w.clock
}

func (w *World) GetMap() *voxel.Map {
	return w.gameMap
}

func (w *World) GetGravity() float32 {
	return w.gravity
}

func (w *World) GetTimer() *util.Timer {
	return w.timer
}

func (w *World) GetTanks() []*Tank {
	return w.tanks
}

func (w *World) GetProjectiles() []*Projectile {
	return w.projectiles
}

func (w *World) RegisterProjectileTemplate(template ProjectileTemplate) {
	w.templates[template.Name] = template
}

// SpawnTank creates a tank with an aiming component wired to this world.
func (w *World) SpawnTank(name string, position mgl32.Vec3, yaw float32, settings TankSettings) *Tank {
	aiming := NewAimingComponent(name, settings.Aiming, w.clock, w, GravitySolver{Gravity: w.gravity})
	tank := NewTank(name, position, yaw, settings, aiming)
	if settings.Barrel.ModelFile != "" {
		w.attachMuzzleSocket(tank, settings.Barrel)
	}
	tank.BeginPlay()
	w.tanks = append(w.tanks, tank)
	util.LogWorldInfo(fmt.Sprintf("[World] spawned %s", tank.String()))
	return tank
}

func (w *World) attachMuzzleSocket(tank *Tank, settings BarrelSettings) {
	sockets, err := util.LoadSockets(settings.ModelFile)
	if err != nil {
		util.LogIOError(fmt.Sprintf("[World] %v, keeping configured muzzle offset", err))
		return
	}
	socket, ok := sockets[settings.MuzzleSocket]
	if !util.Ensure(ok, fmt.Sprintf("barrel model %s has no socket %s", settings.ModelFile, settings.MuzzleSocket)) {
		return
	}
	tank.GetBarrel().SetMuzzleSocket(socket)
}

func (w *World) AddController(controller Controller) {
	w.controllers = append(w.controllers, controller)
}

func (w *World) SpawnProjectile(template string, position mgl32.Vec3, rotation util.Rotator, instigator *Tank) Launchable {
	projectileTemplate, ok := w.templates[template]
	if !ok {
		return nil
	}
	projectile := NewProjectile(projectileTemplate, position, rotation, instigator)
	w.projectiles = append(w.projectiles, projectile)
	util.LogWorldDebug(fmt.Sprintf("[World] frame %d: spawned %s, %d projectile(s) in flight", w.frame, template, len(w.projectiles)))
	return projectile
}

func (w *World) LineTraceSingleByChannel(start, end mgl32.Vec3, channel voxel.CollisionChannel) (util.HitInfo3D, bool) {
	hitInfo := util.DDARaycast(start, end, func(x, y, z int32) bool {
		return w.gameMap.BlocksChannel(x, y, z, channel)
	})
	return hitInfo, hitInfo.Hit
}

// Tick advances the world by one frame: clock, actuators, controllers,
// aiming components, projectiles.
func (w *World) Tick(deltaTime float64) {
	w.frame++
	w.clock.Advance(deltaTime)

	for _, tank := range w.tanks {
		tank.BeginFrame(deltaTime)
	}

	stopControllers := w.timer.Start("controllers")
	for _, controller := range w.controllers {
		controller.Tick(deltaTime)
	}
	stopControllers()

	for _, tank := range w.tanks {
		if !tank.IsDead() {
			tank.Tick(deltaTime)
		}
	}

	stopProjectiles := w.timer.Start("projectiles")
	w.updateProjectiles(deltaTime)
	stopProjectiles()
}

func (w *World) updateProjectiles(deltaTime float64) {
	alive := w.projectiles[:0]
	for _, projectile := range w.projectiles {
		projectile.Update(deltaTime, w)
		if !projectile.IsDead() {
			alive = append(alive, projectile)
		}
	}
	for i := len(alive); i < len(w.projectiles); i++ {
		w.projectiles[i] = nil
	}
	w.projectiles = alive
}

// firstTankOnSegment returns the nearest live tank whose hit sphere the
// segment touches, and the distance from start to where it enters the sphere.
func (w *World) firstTankOnSegment(start, end mgl32.Vec3, ignore *Tank) (*Tank, float32) {
	var closest *Tank
	closestDistance := float32(-1)
	for _, tank := range w.tanks {
		if tank == ignore || tank.IsDead() {
			continue
		}
		center := tank.GetCenter()
		pointOnSegment := closestPointOnSegment(start, end, center)
		missDistance := util.EucledianDistance3D(pointOnSegment, center)
		if missDistance > tank.GetHitRadius() {
			continue
		}
		// back up from the closest point to where the segment enters the sphere
		entryDepth := float32(math.Sqrt(float64(tank.GetHitRadius()*tank.GetHitRadius() - missDistance*missDistance)))
		distance := util.EucledianDistance3D(start, pointOnSegment) - entryDepth
		if distance < 0 {
			distance = 0
		}
		if closest == nil || distance < closestDistance {
			closest = tank
			closestDistance = distance
		}
	}
	return closest, closestDistance
}

func (w *World) isOutsideArena(pos mgl32.Vec3) bool {
	width, _, depth := w.gameMap.GetDimensions()
	return pos.Y() < 0 || pos.X() < 0 || pos.Z() < 0 || pos.X() >= float32(width) || pos.Z() >= float32(depth)
}

// NewWorldFromConfig loads the map file when one is given and generates a
// battlefield otherwise.
func NewWorldFromConfig(cfg Config) (*World, error) {
	var gameMap *voxel.Map
	if cfg.World.MapFile != "" {
		loaded, err := voxel.NewMapFromFile(cfg.World.MapFile)
		if err != nil {
			return nil, err
		}
		gameMap = loaded
	} else {
		gameMap = NewBattlefield(cfg.World).Generate()
	}
	w := NewWorld(gameMap, cfg.World.Gravity)
	w.RegisterProjectileTemplate(cfg.Projectile)
	return w, nil
}
