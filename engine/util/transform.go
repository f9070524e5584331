package util

import (
    "fmt"

    "github.com/go-gl/mathgl/mgl32"
)

type Transformer interface {
    GetTransformMatrix() mgl32.Mat4
    GetWorldRotation() mgl32.Quat
}

// Transform is a node in a scene hierarchy. Local forward is +X.
type Transform struct {
    parent      Transformer
    translation mgl32.Vec3
    rotation    mgl32.Quat
    nameOfOwner string
}

func NewDefaultTransform(name string) *Transform {
    return &Transform{
        translation: mgl32.Vec3{0, 0, 0},
        rotation:    mgl32.QuatIdent(),
        nameOfOwner: name,
    }
}

func (t *Transform) GetName() string {
    return t.nameOfOwner
}

func (t *Transform) SetParent(parent Transformer) {
    t.parent = parent
}

// GetTransformMatrix is the local to world matrix, including all parents.
func (t *Transform) GetTransformMatrix() mgl32.Mat4 {
    local := t.GetLocalTransform()
    if t.parent != nil {
        return t.parent.GetTransformMatrix().Mul4(local)
    }
    return local
}

func (t *Transform) GetLocalTransform() mgl32.Mat4 {
    translation := mgl32.Translate3D(t.translation.X(), t.translation.Y(), t.translation.Z())
    return translation.Mul4(t.rotation.Mat4())
}

func (t *Transform) GetWorldRotation() mgl32.Quat {
    if t.parent != nil {
        return t.parent.GetWorldRotation().Mul(t.rotation)
    }
    return t.rotation
}

func (t *Transform) GetWorldPosition() mgl32.Vec3 {
    return ExtractPosition(t.GetTransformMatrix())
}

// TransformPoint maps a point in local space to world space.
func (t *Transform) TransformPoint(local mgl32.Vec3) mgl32.Vec3 {
    return t.GetTransformMatrix().Mul4x1(local.Vec4(1)).Vec3()
}

func (t *Transform) GetPosition() mgl32.Vec3 {
    return t.translation
}

func (t *Transform) SetPosition(position mgl32.Vec3) {
    t.translation = position
}

func (t *Transform) GetRotation() mgl32.Quat {
    return t.rotation
}

func (t *Transform) SetRotation(rotation mgl32.Quat) {
    t.rotation = rotation
}

func (t *Transform) SetRotator(rotator Rotator) {
    t.rotation = rotator.Quat()
}

// GetForward is the world space forward vector.
func (t *Transform) GetForward() mgl32.Vec3 {
    return t.GetWorldRotation().Rotate(mgl32.Vec3{1, 0, 0}).Normalize()
}

func (t *Transform) String() string {
    pos := t.GetWorldPosition()
    return fmt.Sprintf("%s at (%0.2f, %0.2f, %0.2f)", t.nameOfOwner, pos.X(), pos.Y(), pos.Z())
}

func ExtractPosition(viewMatrix mgl32.Mat4) mgl32.Vec3 {
    return viewMatrix.Col(3).Vec3()
}
