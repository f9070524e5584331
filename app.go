package main

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/game"
)

type battle struct {
	world  *game.World
	player *game.Tank
	enemy  *game.Tank
	camera *util.FPSCamera
}

// newBattle places the player's tank and one AI tank facing each other
// across the middle of the map.
func newBattle(cfg game.Config) (*battle, error) {
	world, err := game.NewWorldFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	width, _, depth := world.GetMap().GetDimensions()
	groundY := float32(cfg.World.GroundHeight)
	center := mgl32.Vec3{float32(width) / 2, groundY, float32(depth) / 2}

	player := world.SpawnTank("Player", center.Sub(mgl32.Vec3{15, 0, 0}), 0, cfg.Tank)
	enemy := world.SpawnTank("Enemy", center.Add(mgl32.Vec3{15, 0, 0}), 180, cfg.Tank)

	camera := util.NewFPSCamera(player.GetWorldPosition().Add(cfg.Player.CameraOffset), cfg.Player.ViewportWidth, cfg.Player.ViewportHeight, cfg.Player.LookSensitivity)
	camera.SetFOV(cfg.Player.FieldOfView)
	putCrosshairOn(camera, enemy.GetWorldPosition(), cfg.Player.CrosshairYLocation)

	playerController := game.NewPlayerController(cfg.Player, camera, world)
	playerController.SetPawn(player)
	playerController.OnFoundAimingComponent = func(aiming *game.AimingComponent) {
		util.LogSystemInfo(fmt.Sprintf("[Battle] player aiming component ready, %d round(s)", aiming.GetRoundsLeft()))
	}
	playerController.BeginPlay()
	world.AddController(playerController)

	aiController := game.NewAIController(func() *game.Tank { return player })
	aiController.SetPawn(enemy)
	world.AddController(aiController)

	return &battle{world: world, player: player, enemy: enemy, camera: camera}, nil
}

// putCrosshairOn turns the camera so that the crosshair row, not the view
// centre, looks at target.
func putCrosshairOn(camera *util.FPSCamera, target mgl32.Vec3, crosshairYLocation float64) {
	camera.SetLookTarget(target)
	yaw, pitch := camera.GetRotation()
	halfFOV := float64(util.ToRadian(camera.GetFOV())) / 2
	ndcY := 1 - 2*crosshairYLocation
	crosshairPitch := mgl32.RadToDeg(float32(math.Atan(ndcY * math.Tan(halfFOV))))
	camera.Reposition(camera.GetPosition(), yaw, pitch-crosshairPitch)
}

func (b *battle) run(ticks int, deltaTime float64) {
	for i := 0; i < ticks; i++ {
		b.world.Tick(deltaTime)
		if b.player.IsDead() || b.enemy.IsDead() {
			break
		}
	}
}

// runRealtime paces the battle to the wall clock. Each frame advances the
// world by the time that actually passed since the previous frame.
func (b *battle) runRealtime(ticks int, frameTime float64) {
	wallClock := util.NewSystemClock()
	lastFrame := wallClock.Seconds()
	for i := 0; i < ticks; i++ {
		time.Sleep(time.Duration(frameTime * float64(time.Second)))
		now := wallClock.Seconds()
		b.world.Tick(now - lastFrame)
		lastFrame = now
		if b.player.IsDead() || b.enemy.IsDead() {
			break
		}
	}
}

func (b *battle) summary() string {
	return fmt.Sprintf("after %0.2fs: %s\n%s\n%s", b.world.GetClock().Seconds(), b.camera.DebugAim(), describeTank(b.player), describeTank(b.enemy))
}

func describeTank(tank *game.Tank) string {
	aiming := tank.GetAimingComponent()
	return fmt.Sprintf("%s health %d (%0.0f%%), %s, %d round(s) left, barrel elevation %0.2f, turret yaw %0.2f",
		tank.GetName(),
		tank.GetCurrentHealth(),
		tank.GetHealthPercent()*100,
		aiming.GetFiringState().ToString(),
		aiming.GetRoundsLeft(),
		tank.GetBarrel().GetElevation(),
		tank.GetTurret().GetYaw(),
	)
}
