package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/util"
)

// AimingComponent steers a tank's barrel and turret towards a target point,
// derives the firing state every tick and spawns projectiles.
// Barrel and turret are borrowed from the owning tank.
type AimingComponent struct {
	ownerName string
	owner     *Tank
	barrel    BarrelActuator
	turret    TurretActuator
	spawner   ProjectileSpawner
	solver    BallisticSolver
	clock     util.Clock

	firingState          FiringState
	roundsLeft           int
	reloadTimeInSeconds  float64
	lastFireTime         float64
	launchSpeed          float32
	aimDirection         mgl32.Vec3
	aimTolerance         float32
	projectileTemplate   string
	legacyFiringPriority bool
}

func NewAimingComponent(ownerName string, settings AimingSettings, clock util.Clock, spawner ProjectileSpawner, solver BallisticSolver) *AimingComponent {
	return &AimingComponent{
		ownerName:            ownerName,
		clock:                clock,
		spawner:              spawner,
		solver:               solver,
		firingState:          FiringStateReloading,
		roundsLeft:           settings.RoundsLeft,
		reloadTimeInSeconds:  settings.ReloadTimeInSeconds,
		launchSpeed:          settings.LaunchSpeed,
		aimTolerance:         settings.AimTolerance,
		projectileTemplate:   settings.ProjectileTemplate,
		legacyFiringPriority: settings.LegacyFiringPriority,
	}
}

// Initialise hands over the actuators. Called once by the owner.
func (a *AimingComponent) Initialise(barrel BarrelActuator, turret TurretActuator) {
	a.barrel = barrel
	a.turret = turret
}

// BeginPlay starts the reload timer, so the first shot waits a full reload.
func (a *AimingComponent) BeginPlay() {
	a.lastFireTime = a.clock.Seconds()
}

func (a *AimingComponent) TickComponent(deltaTime float64) {
	newState, reason := evaluateFiringState(firingInputs{
		roundsLeft:          a.roundsLeft,
		secondsSinceFire:    a.clock.Seconds() - a.lastFireTime,
		reloadTimeInSeconds: a.reloadTimeInSeconds,
		barrelMoving:        a.IsBarrelMoving(),
		legacyPriority:      a.legacyFiringPriority,
	})
	if newState != a.firingState {
		util.LogAimingDebug(fmt.Sprintf("[AimingComponent] %s: %s -> %s (%s)", a.ownerName, a.firingState.ToString(), newState.ToString(), reason))
	}
	a.firingState = newState
}

func (a *AimingComponent) GetRoundsLeft() int {
	return a.roundsLeft
}

func (a *AimingComponent) GetFiringState() FiringState {
	return a.firingState
}

func (a *AimingComponent) GetAimDirection() mgl32.Vec3 {
	return a.aimDirection
}

func (a *AimingComponent) GetLastFireTime() float64 {
	return a.lastFireTime
}

// IsBarrelMoving is true while the barrel does not point along the aim direction.
func (a *AimingComponent) IsBarrelMoving() bool {
	if !util.Ensure(a.barrel != nil, a.ownerName+": aiming component has no barrel") {
		return false
	}
	return !util.VecEquals(a.barrel.GetForwardVector(), a.aimDirection, a.aimTolerance)
}

func (a *AimingComponent) AimAt(hitLocation mgl32.Vec3) {
	if !util.Ensure(a.barrel != nil, a.ownerName+": aiming component has no barrel") {
		return
	}
	if !util.Ensure(a.solver != nil, a.ownerName+": aiming component has no ballistic solver") {
		return
	}
	startLocation, _ := a.barrel.GetMuzzleTransform()
	launchVelocity, haveAimSolution := a.solver.SuggestProjectileVelocity(startLocation, hitLocation, a.launchSpeed)
	if !haveAimSolution {
		return
	}
	a.aimDirection = util.SafeNormal(launchVelocity)
	a.MoveBarrelTowards(a.aimDirection)
}

// MoveBarrelTowards issues the pitch delta to the barrel and the yaw delta to
// the turret. The turret always takes the shorter way around.
func (a *AimingComponent) MoveBarrelTowards(targetAimDirection mgl32.Vec3) {
	if !util.Ensure(a.barrel != nil, a.ownerName+": aiming component has no barrel") ||
		!util.Ensure(a.turret != nil, a.ownerName+": aiming component has no turret") {
		return
	}
	barrelRotator := util.RotatorFromDirection(a.barrel.GetForwardVector())
	aimAsRotator := util.RotatorFromDirection(targetAimDirection)
	deltaRotator := aimAsRotator.Sub(barrelRotator)

	a.barrel.Elevate(deltaRotator.Pitch)
	a.turret.Rotate(util.ShortestYawDelta(deltaRotator.Yaw))
}

// Fire spawns a projectile at the muzzle. Returns false when the firing
// state does not allow a shot or a dependency is missing.
func (a *AimingComponent) Fire() bool {
	if !a.firingState.CanFire() {
		return false
	}
	// The state is only refreshed on tick, a second call in the same frame
	// must still see the spent round and the restarted reload.
	if !a.legacyFiringPriority && (a.roundsLeft <= 0 || a.clock.Seconds()-a.lastFireTime < a.reloadTimeInSeconds) {
		return false
	}
	if !util.Ensure(a.barrel != nil, a.ownerName+": aiming component has no barrel") {
		return false
	}
	if !util.Ensure(a.projectileTemplate != "", a.ownerName+": aiming component has no projectile template") {
		return false
	}
	if !util.Ensure(a.spawner != nil, a.ownerName+": aiming component has no projectile spawner") {
		return false
	}
	muzzleLocation, muzzleRotation := a.barrel.GetMuzzleTransform()
	projectile := a.spawner.SpawnProjectile(a.projectileTemplate, muzzleLocation, muzzleRotation, a.owner)
	if !util.Ensure(projectile != nil, fmt.Sprintf("%s: could not spawn projectile %s", a.ownerName, a.projectileTemplate)) {
		return false
	}
	projectile.LaunchProjectile(a.launchSpeed)
	a.lastFireTime = a.clock.Seconds()
	a.roundsLeft--
	util.LogAimingInfo(fmt.Sprintf("[AimingComponent] %s fired, %d round(s) left", a.ownerName, a.roundsLeft))
	return true
}
