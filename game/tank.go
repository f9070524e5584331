package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/tankwar/engine/util"
)

// Tank is the pawn. It owns hull transform, turret, barrel and aiming component.
type Tank struct {
	*util.Transform
	id             uuid.UUID
	turret         *Turret
	barrel         *Barrel
	aiming         *AimingComponent
	startingHealth int
	currentHealth  int
	hitRadius      float32
	deathListeners []func()
	dead           bool
}

func NewTank(name string, position mgl32.Vec3, yaw float32, settings TankSettings, aiming *AimingComponent) *Tank {
	t := &Tank{
		Transform:      util.NewDefaultTransform(name),
		id:             uuid.New(),
		turret:         NewTurret(settings.Turret),
		barrel:         NewBarrel(settings.Barrel),
		aiming:         aiming,
		startingHealth: settings.StartingHealth,
		currentHealth:  settings.StartingHealth,
		hitRadius:      settings.HitRadius,
	}
	t.SetPosition(position)
	t.SetRotator(util.Rotator{Yaw: yaw})
	t.turret.SetParent(t.Transform)
	t.barrel.SetParent(t.turret.Transform)
	if aiming != nil {
		aiming.owner = t
		aiming.Initialise(t.barrel, t.turret)
	}
	return t
}

func (t *Tank) GetID() uuid.UUID {
	return t.id
}

func (t *Tank) GetBarrel() *Barrel {
	return t.barrel
}

func (t *Tank) GetTurret() *Turret {
	return t.turret
}

// GetAimingComponent returns nil for tanks built without one.
func (t *Tank) GetAimingComponent() *AimingComponent {
	return t.aiming
}

// GetCenter is the point projectiles are tested against.
func (t *Tank) GetCenter() mgl32.Vec3 {
	return t.GetWorldPosition().Add(mgl32.Vec3{0, t.hitRadius / 2, 0})
}

func (t *Tank) GetHitRadius() float32 {
	return t.hitRadius
}

func (t *Tank) GetHealthPercent() float32 {
	if t.startingHealth <= 0 {
		return 0
	}
	return float32(t.currentHealth) / float32(t.startingHealth)
}

func (t *Tank) GetCurrentHealth() int {
	return t.currentHealth
}

func (t *Tank) IsDead() bool {
	return t.dead
}

// OnDeath registers a listener for the one time death event.
func (t *Tank) OnDeath(listener func()) {
	if listener == nil {
		return
	}
	t.deathListeners = append(t.deathListeners, listener)
}

// TakeDamage applies damage and returns the amount actually applied.
func (t *Tank) TakeDamage(damage int) int {
	if t.dead || damage <= 0 {
		return 0
	}
	damageToApply := damage
	if damageToApply > t.currentHealth {
		damageToApply = t.currentHealth
	}
	t.currentHealth -= damageToApply
	util.LogWorldInfo(fmt.Sprintf("[Tank] %s took %d damage, health %d/%d", t.GetName(), damageToApply, t.currentHealth, t.startingHealth))
	if t.currentHealth <= 0 {
		t.die()
	}
	return damageToApply
}

func (t *Tank) die() {
	t.dead = true
	util.LogWorldInfo(fmt.Sprintf("[Tank] %s died", t.GetName()))
	listeners := t.deathListeners
	t.deathListeners = nil
	for _, listener := range listeners {
		listener()
	}
}

// BeginPlay is called once when the tank enters the world.
func (t *Tank) BeginPlay() {
	if t.aiming != nil {
		t.aiming.BeginPlay()
	}
}

// BeginFrame hands the frame time to the actuators before anyone aims.
func (t *Tank) BeginFrame(deltaTime float64) {
	t.barrel.Tick(deltaTime)
	t.turret.Tick(deltaTime)
}

func (t *Tank) Tick(deltaTime float64) {
	if t.aiming != nil {
		t.aiming.TickComponent(deltaTime)
	}
}
