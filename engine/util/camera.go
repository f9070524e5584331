package util

import (
    "math"

    "github.com/go-gl/mathgl/mgl32"
)

type Camera interface {
    GetViewMatrix() mgl32.Mat4
    GetProjectionMatrix() mgl32.Mat4
    GetPosition() mgl32.Vec3
    GetScreenSize() (int, int)
}

// DeprojectScreenPosition turns a pixel position into a world space ray.
// The ray starts on the near plane. ok is false for points outside the
// viewport or when the projection cannot be inverted.
func DeprojectScreenPosition(cam Camera, screenX, screenY float64) (mgl32.Vec3, mgl32.Vec3, bool) {
    width, height := cam.GetScreenSize()
    if width <= 0 || height <= 0 {
        return mgl32.Vec3{}, mgl32.Vec3{}, false
    }
    if screenX < 0 || screenY < 0 || screenX > float64(width) || screenY > float64(height) {
        return mgl32.Vec3{}, mgl32.Vec3{}, false
    }
    // normalize x and y to -1..1
    normalizedX := (float32(screenX)/float32(width))*2 - 1
    normalizedY := ((float32(screenY)/float32(height))*2 - 1) * -1

    projViewInverted := cam.GetProjectionMatrix().Mul4(cam.GetViewMatrix()).Inv()

    nearWorldPos := projViewInverted.Mul4x1(mgl32.Vec4{normalizedX, normalizedY, -1, 1})
    farWorldPos := projViewInverted.Mul4x1(mgl32.Vec4{normalizedX, normalizedY, 1, 1})
    if Abs(nearWorldPos.W()) < 1e-12 || Abs(farWorldPos.W()) < 1e-12 {
        return mgl32.Vec3{}, mgl32.Vec3{}, false
    }
    // perspective divide
    rayStart := nearWorldPos.Vec3().Mul(1 / nearWorldPos.W())
    rayFar := farWorldPos.Vec3().Mul(1 / farWorldPos.W())
    direction := rayFar.Sub(rayStart)
    if direction.Len() < 1e-8 || isNaNVec(direction) {
        return mgl32.Vec3{}, mgl32.Vec3{}, false
    }
    return rayStart, direction.Normalize(), true
}

func isNaNVec(v mgl32.Vec3) bool {
    return math.IsNaN(float64(v.X())) || math.IsNaN(float64(v.Y())) || math.IsNaN(float64(v.Z()))
}
