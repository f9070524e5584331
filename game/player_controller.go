package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/engine/voxel"
)

// PlayerController aims the possessed tank at whatever lies under the crosshair.
type PlayerController struct {
	pawn               *Tank
	camera             ViewportCamera
	tracer             LineTracer
	crosshairXLocation float64
	crosshairYLocation float64
	lineTraceRange     float32
	cameraOffset       mgl32.Vec3
	spectating         bool

	// OnFoundAimingComponent is called from BeginPlay, e.g. to hook up a HUD.
	OnFoundAimingComponent func(aiming *AimingComponent)
}

func NewPlayerController(settings PlayerSettings, camera ViewportCamera, tracer LineTracer) *PlayerController {
	return &PlayerController{
		camera:             camera,
		tracer:             tracer,
		crosshairXLocation: settings.CrosshairXLocation,
		crosshairYLocation: settings.CrosshairYLocation,
		lineTraceRange:     settings.LineTraceRange,
		cameraOffset:       settings.CameraOffset,
	}
}

// SetPawn possesses the tank and subscribes to its death.
func (c *PlayerController) SetPawn(pawn *Tank) {
	c.pawn = pawn
	if pawn == nil {
		return
	}
	c.spectating = false
	pawn.OnDeath(c.OnPossessedTankDeath)
}

func (c *PlayerController) GetPawn() *Tank {
	return c.pawn
}

func (c *PlayerController) IsSpectating() bool {
	return c.spectating
}

func (c *PlayerController) OnPossessedTankDeath() {
	c.StartSpectatingOnly()
}

// StartSpectatingOnly releases the pawn. Ticks stop aiming afterwards.
func (c *PlayerController) StartSpectatingOnly() {
	name := "nothing"
	if c.pawn != nil {
		name = c.pawn.GetName()
	}
	util.LogControllerInfo(fmt.Sprintf("[PlayerController] lost %s, spectating", name))
	c.pawn = nil
	c.spectating = true
}

func (c *PlayerController) BeginPlay() {
	if c.pawn == nil {
		return
	}
	aimingComponent := c.pawn.GetAimingComponent()
	if !util.Ensure(aimingComponent != nil, c.pawn.GetName()+" has no aiming component") {
		return
	}
	if c.OnFoundAimingComponent != nil {
		c.OnFoundAimingComponent(aimingComponent)
	}
}

func (c *PlayerController) Tick(deltaTime float64) {
	if c.pawn == nil {
		return
	}
	if c.camera != nil {
		c.camera.SetPosition(c.pawn.GetWorldPosition().Add(c.cameraOffset))
	}
	c.AimTowardsCrosshair()
}

func (c *PlayerController) AimTowardsCrosshair() {
	if c.pawn == nil {
		return
	}
	aimingComponent := c.pawn.GetAimingComponent()
	if !util.Ensure(aimingComponent != nil, c.pawn.GetName()+" has no aiming component") {
		return
	}
	hitLocation, ok := c.GetSightRayHitLocation()
	if !ok {
		util.LogControllerDebug(fmt.Sprintf("[PlayerController] %s: crosshair hits nothing within %0.0fm", c.pawn.GetName(), c.lineTraceRange))
		return
	}
	aimingComponent.AimAt(hitLocation)
}

// GetSightRayHitLocation is the world position under the crosshair, if the
// line trace hits anything within range.
func (c *PlayerController) GetSightRayHitLocation() (mgl32.Vec3, bool) {
	if !util.Ensure(c.camera != nil, "player controller has no camera") {
		return mgl32.Vec3{}, false
	}
	viewportSizeX, viewportSizeY := c.camera.GetScreenSize()
	screenX := float64(viewportSizeX) * c.crosshairXLocation
	screenY := float64(viewportSizeY) * c.crosshairYLocation

	lookDirection, ok := c.GetLookDirection(screenX, screenY)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return c.GetLookVectorHitLocation(lookDirection)
}

// GetLookDirection deprojects the screen position to a world direction.
func (c *PlayerController) GetLookDirection(screenX, screenY float64) (mgl32.Vec3, bool) {
	if c.camera == nil {
		return mgl32.Vec3{}, false
	}
	_, lookDirection, ok := c.camera.Deproject(screenX, screenY)
	return lookDirection, ok
}

func (c *PlayerController) GetLookVectorHitLocation(lookDirection mgl32.Vec3) (mgl32.Vec3, bool) {
	if !util.Ensure(c.tracer != nil && c.camera != nil, "player controller has no line tracer or camera") {
		return mgl32.Vec3{}, false
	}
	startLocation := c.camera.GetPosition()
	endLocation := startLocation.Add(lookDirection.Mul(c.lineTraceRange))
	hitResult, hit := c.tracer.LineTraceSingleByChannel(startLocation, endLocation, voxel.ChannelCamera)
	if !hit {
		return mgl32.Vec3{}, false
	}
	return hitResult.CollisionWorldPosition, true
}
