package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/engine/voxel"
)

type controllerFixture struct {
	camera     *fakeCamera
	tracer     *fakeTracer
	solver     *fakeSolver
	tank       *Tank
	controller *PlayerController
}

func newControllerFixture() *controllerFixture {
	cfg := DefaultConfig()
	f := &controllerFixture{
		camera: &fakeCamera{width: 800, height: 600, direction: mgl32.Vec3{1, 0, 0}, deprojectOK: true},
		tracer: &fakeTracer{hit: true, location: mgl32.Vec3{50, 1, 10}},
		solver: &fakeSolver{velocity: mgl32.Vec3{40, 0, 0}, ok: true},
	}
	aiming := NewAimingComponent("player", cfg.Tank.Aiming, util.NewManualClock(0), &fakeSpawner{known: "Projectile"}, f.solver)
	f.tank = NewTank("player", mgl32.Vec3{10, 1, 10}, 0, cfg.Tank, aiming)
	f.controller = NewPlayerController(cfg.Player, f.camera, f.tracer)
	f.controller.SetPawn(f.tank)
	return f
}

func TestPlayerControllerAimsAtCrosshairHit(t *testing.T) {
	f := newControllerFixture()
	f.controller.Tick(0.016)

	if len(f.camera.deprojected) != 1 {
		t.Fatalf("expected one deprojection, got %d", len(f.camera.deprojected))
	}
	screen := f.camera.deprojected[0]
	if screen[0] != 400 || util.Abs(float32(screen[1]-199.998)) > 1e-3 {
		t.Fatalf("deprojected %v, want crosshair at (400, 199.998)", screen)
	}

	wantStart := mgl32.Vec3{2, 6, 10}
	if len(f.tracer.calls) != 1 {
		t.Fatalf("expected one line trace, got %d", len(f.tracer.calls))
	}
	call := f.tracer.calls[0]
	if call.start != wantStart || call.end != wantStart.Add(mgl32.Vec3{1000, 0, 0}) {
		t.Fatalf("trace from %v to %v, want from the camera along the look direction", call.start, call.end)
	}
	if call.channel != voxel.ChannelCamera {
		t.Fatalf("trace on channel %v, want camera channel", call.channel)
	}

	if len(f.solver.targets) != 1 || f.solver.targets[0] != f.tracer.location {
		t.Fatalf("aiming component must aim at the trace hit, got %v", f.solver.targets)
	}
}

func TestPlayerControllerIgnoresMisses(t *testing.T) {
	f := newControllerFixture()
	f.tracer.hit = false
	f.controller.Tick(0.016)
	if len(f.solver.targets) != 0 {
		t.Fatalf("no aim expected without a hit")
	}

	f = newControllerFixture()
	f.camera.deprojectOK = false
	f.controller.Tick(0.016)
	if len(f.tracer.calls) != 0 || len(f.solver.targets) != 0 {
		t.Fatalf("no trace or aim expected when deprojection fails")
	}
}

func TestPlayerControllerSpectatesAfterDeath(t *testing.T) {
	f := newControllerFixture()
	f.tank.TakeDamage(1000)

	if !f.controller.IsSpectating() || f.controller.GetPawn() != nil {
		t.Fatalf("controller must release the dead tank")
	}
	f.controller.Tick(0.016)
	if len(f.tracer.calls) != 0 {
		t.Fatalf("spectators do not aim")
	}
}

func TestPlayerControllerBeginPlayReportsAimingComponent(t *testing.T) {
	f := newControllerFixture()
	var found *AimingComponent
	f.controller.OnFoundAimingComponent = func(aiming *AimingComponent) { found = aiming }
	f.controller.BeginPlay()
	if found != f.tank.GetAimingComponent() {
		t.Fatalf("BeginPlay must report the pawn's aiming component")
	}
}

func TestAIControllerFiresWhenLocked(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tank.Barrel.MaxDegreesPerSecond = 0
	cfg.Tank.Turret.MaxDegreesPerSecond = 0
	clock := util.NewManualClock(0)
	spawner := &fakeSpawner{known: "Projectile"}
	solver := &fakeSolver{velocity: mgl32.Vec3{40, 0, 0}, ok: true}
	aiming := NewAimingComponent("ai", cfg.Tank.Aiming, clock, spawner, solver)
	aiTank := NewTank("ai", mgl32.Vec3{}, 0, cfg.Tank, aiming)
	aiTank.BeginPlay()
	playerTank := NewTank("player", mgl32.Vec3{30, 0, 0}, 0, cfg.Tank, nil)

	controller := NewAIController(func() *Tank { return playerTank })
	controller.SetPawn(aiTank)

	clock.Set(cfg.Tank.Aiming.ReloadTimeInSeconds)
	controller.Tick(0.016)
	if solver.targets[0] != playerTank.GetWorldPosition() {
		t.Fatalf("AI must aim at the player tank, got %v", solver.targets[0])
	}
	aiTank.Tick(0.016)
	if aiming.GetFiringState() != FiringStateLocked {
		t.Fatalf("state %s, want Locked", aiming.GetFiringState().ToString())
	}
	controller.Tick(0.016)
	if len(spawner.spawned) != 1 {
		t.Fatalf("AI must fire once locked, spawned %d", len(spawner.spawned))
	}

	playerTank.TakeDamage(1000)
	controller.Tick(0.016)
	if len(solver.targets) != 2 {
		t.Fatalf("AI must stop aiming at a dead player")
	}
}
