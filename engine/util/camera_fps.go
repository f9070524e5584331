package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type FPSCamera struct {
	position        mgl32.Vec3
	cameraFront     mgl32.Vec3
	cameraRight     mgl32.Vec3
	cameraUp        mgl32.Vec3
	rotatex         float32
	rotatey         float32
	lookSensitivity float32
	invertedY       bool
	fov             float32
	nearPlaneDist   float32
	farPlaneDist    float32
	windowWidth     int
	windowHeight    int
}

func NewFPSCamera(pos mgl32.Vec3, windowWidth, windowHeight int, sensitivity float32) *FPSCamera {
	f := &FPSCamera{
		position:        pos,
		cameraFront:     mgl32.Vec3{1, 0, 0},
		cameraUp:        mgl32.Vec3{0, 1, 0},
		lookSensitivity: sensitivity,
		rotatey:         0,
		rotatex:         0,
		invertedY:       true,
		fov:             60,
		nearPlaneDist:   0.1,
		farPlaneDist:    1000,
		windowWidth:     windowWidth,
		windowHeight:    windowHeight,
	}
	f.updateTransform()
	return f
}

func (c *FPSCamera) GetPosition() mgl32.Vec3 {
	return c.position
}

func (c *FPSCamera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

func (c *FPSCamera) GetFront() mgl32.Vec3 {
	return c.cameraFront
}

func (c *FPSCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.cameraFront), c.cameraUp)
}

func (c *FPSCamera) GetProjectionMatrix() mgl32.Mat4 {
	aspect := float32(1)
	if c.windowHeight > 0 {
		aspect = float32(c.windowWidth) / float32(c.windowHeight)
	}
	return mgl32.Perspective(ToRadian(c.fov), aspect, c.nearPlaneDist, c.farPlaneDist)
}

func (c *FPSCamera) GetScreenSize() (int, int) {
	return c.windowWidth, c.windowHeight
}

func (c *FPSCamera) SetScreenSize(width int, height int) {
	c.windowWidth = width
	c.windowHeight = height
}

// Deproject converts a pixel position on this camera's viewport to a world ray.
func (c *FPSCamera) Deproject(screenX, screenY float64) (mgl32.Vec3, mgl32.Vec3, bool) {
	return DeprojectScreenPosition(c, screenX, screenY)
}

func (c *FPSCamera) SetInvertedY(inverted bool) {
	c.invertedY = inverted
}

// ChangeAngles changes the camera's angles by dx and dy.
// Used for mouse look.
func (c *FPSCamera) ChangeAngles(dx, dy float32) {
	if mgl32.Abs(dx) > 200 || mgl32.Abs(dy) > 200 {
		return
	}
	c.rotatex += dx * c.lookSensitivity
	yChange := dy * c.lookSensitivity
	if c.invertedY {
		c.rotatey -= yChange
	} else {
		c.rotatey += yChange
	}

	c.updateTransform()
}

func (c *FPSCamera) SetLookTarget(position mgl32.Vec3) {
	front := position.Sub(c.position).Normalize()
	c.rotatex = mgl32.RadToDeg(float32(math.Atan2(float64(front.Z()), float64(front.X()))))
	c.rotatey = mgl32.RadToDeg(float32(math.Asin(float64(front.Y()))))
	c.updateTransform()
}

func (c *FPSCamera) GetRotation() (float32, float32) {
	return c.rotatex, c.rotatey
}

func (c *FPSCamera) Reposition(pos mgl32.Vec3, rotX float32, rotY float32) {
	c.position = pos
	c.rotatex = rotX
	c.rotatey = rotY
	c.updateTransform()
}

func (c *FPSCamera) SetFOV(fov float32) {
	c.fov = fov
}

func (c *FPSCamera) GetFOV() float32 {
	return c.fov
}

func (c *FPSCamera) updateTransform() {
	if c.rotatey > 89 {
		c.rotatey = 89
	}
	if c.rotatey < -89 {
		c.rotatey = -89
	}
	front := Rotator{Pitch: c.rotatey, Yaw: c.rotatex}.Forward()
	c.cameraFront = front.Normalize()
	c.cameraRight = c.cameraFront.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	c.cameraUp = c.cameraRight.Cross(c.cameraFront).Normalize()
}

func (c *FPSCamera) DebugAim() string {
	pos := c.GetPosition()
	return fmt.Sprintf("Pos: (%0.2f, %0.2f, %0.2f) Aim: (%0.2f, %0.2f)", pos.X(), pos.Y(), pos.Z(), c.rotatex, c.rotatey)
}
