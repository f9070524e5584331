package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTankTakeDamage(t *testing.T) {
	tank := NewTank("target", mgl32.Vec3{}, 0, DefaultConfig().Tank, nil)
	deaths := 0
	tank.OnDeath(func() { deaths++ })

	if applied := tank.TakeDamage(30); applied != 30 {
		t.Fatalf("applied %d, want 30", applied)
	}
	if tank.GetCurrentHealth() != 70 || tank.GetHealthPercent() != 0.7 {
		t.Fatalf("health %d (%v), want 70", tank.GetCurrentHealth(), tank.GetHealthPercent())
	}
	if applied := tank.TakeDamage(0); applied != 0 {
		t.Fatalf("zero damage applied %d", applied)
	}

	if applied := tank.TakeDamage(100); applied != 70 {
		t.Fatalf("applied %d, want the remaining 70", applied)
	}
	if !tank.IsDead() || tank.GetCurrentHealth() != 0 || deaths != 1 {
		t.Fatalf("dead %v, health %d, deaths %d", tank.IsDead(), tank.GetCurrentHealth(), deaths)
	}

	if applied := tank.TakeDamage(10); applied != 0 {
		t.Fatalf("dead tanks take no damage, applied %d", applied)
	}
	if deaths != 1 {
		t.Fatalf("death must be reported once, got %d", deaths)
	}
}

func TestTankGetCenterIsAboveGround(t *testing.T) {
	tank := NewTank("center", mgl32.Vec3{3, 1, 4}, 0, DefaultConfig().Tank, nil)
	if tank.GetCenter() != (mgl32.Vec3{3, 2, 4}) {
		t.Fatalf("center %v, want (3, 2, 4)", tank.GetCenter())
	}
	if tank.GetID() == NewTank("other", mgl32.Vec3{}, 0, DefaultConfig().Tank, nil).GetID() {
		t.Fatalf("tank ids must be unique")
	}
}

func TestTankWiresAimingComponent(t *testing.T) {
	f := newAimingFixture(testAimingSettings())
	tank := NewTank("wired", mgl32.Vec3{}, 0, DefaultConfig().Tank, f.aiming)
	if f.aiming.owner != tank {
		t.Fatalf("aiming component must know its owner")
	}
	if f.aiming.barrel != tank.GetBarrel() || f.aiming.turret != tank.GetTurret() {
		t.Fatalf("aiming component must drive the tank's actuators")
	}
}
