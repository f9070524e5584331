package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/engine/voxel"
)

type Projectile struct {
	id         uuid.UUID
	template   string
	position   mgl32.Vec3
	rotation   util.Rotator
	velocity   mgl32.Vec3
	damage     int
	lifetime   float64
	age        float64
	launched   bool
	dead       bool
	instigator *Tank
}

func NewProjectile(template ProjectileTemplate, pos mgl32.Vec3, rotation util.Rotator, instigator *Tank) *Projectile {
	return &Projectile{
		id:         uuid.New(),
		template:   template.Name,
		position:   pos,
		rotation:   rotation,
		damage:     template.Damage,
		lifetime:   template.Lifetime,
		instigator: instigator,
	}
}

func (p *Projectile) GetID() uuid.UUID {
	return p.id
}

func (p *Projectile) GetPosition() mgl32.Vec3 {
	return p.position
}

func (p *Projectile) GetVelocity() mgl32.Vec3 {
	return p.velocity
}

func (p *Projectile) IsDead() bool {
	return p.dead
}

func (p *Projectile) IsLaunched() bool {
	return p.launched
}

// LaunchProjectile starts the flight along the spawn rotation.
func (p *Projectile) LaunchProjectile(speed float32) {
	p.velocity = p.rotation.Forward().Mul(speed)
	p.launched = true
	util.LogProjectileDebug(fmt.Sprintf("[Projectile] %s launched from (%0.2f, %0.2f, %0.2f) at %0.1f m/s", p.id, p.position.X(), p.position.Y(), p.position.Z(), speed))
}

// Update moves the projectile along its ballistic path and resolves the
// first impact with a tank or the terrain on the way.
func (p *Projectile) Update(deltaTime float64, w *World) {
	if p.dead {
		return
	}
	p.age += deltaTime
	if p.lifetime > 0 && p.age > p.lifetime {
		p.die("lifetime exceeded")
		return
	}
	if !p.launched {
		return
	}
	dt := float32(deltaTime)
	gravity := w.GetGravity()
	previousPos := p.position
	newPos := util.PositionAtTime(previousPos, p.velocity, gravity, dt)
	p.velocity = p.velocity.Sub(mgl32.Vec3{0, gravity * dt, 0})

	tank, tankDistance := w.firstTankOnSegment(previousPos, newPos, p.instigator)
	hitInfo, hitTerrain := w.LineTraceSingleByChannel(previousPos, newPos, voxel.ChannelProjectile)
	if hitTerrain && (tank == nil || hitInfo.Distance < float64(tankDistance)) {
		p.position = hitInfo.CollisionWorldPosition
		p.die("hit terrain at " + hitInfo.CollisionGridPosition.ToString())
		return
	}
	if tank != nil {
		p.position = closestPointOnSegment(previousPos, newPos, tank.GetCenter())
		tank.TakeDamage(p.damage)
		util.LogProjectileInfo(fmt.Sprintf("[Projectile] %s hit %s for %d, health %d", p.template, tank.GetName(), p.damage, tank.GetCurrentHealth()))
		p.die("hit " + tank.GetName())
		return
	}
	p.position = newPos
	if w.isOutsideArena(newPos) {
		p.die("left the map")
	}
}

func (p *Projectile) die(reason string) {
	p.dead = true
	util.LogProjectileDebug(fmt.Sprintf("[Projectile] %s died: %s", p.id, reason))
}

func closestPointOnSegment(start, end, point mgl32.Vec3) mgl32.Vec3 {
	segment := end.Sub(start)
	lengthSq := segment.Dot(segment)
	if lengthSq < 1e-12 {
		return start
	}
	t := util.Clamp32(point.Sub(start).Dot(segment)/lengthSq, 0, 1)
	return start.Add(segment.Mul(t))
}
