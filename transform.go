package rendiation

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a rigid camera pose: a position and a unit rotation.
// The camera looks down its local -Z axis with local +Y up.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func NewTransform() *Transform {
	return &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
	}
}

// Matrix returns the local-to-world matrix, M = T * R.
func (t *Transform) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	return translate.Mul4(t.Rotation.Mat4())
}

// Inverse returns the world-to-local (view) matrix.
// inv(T * R) = R^T * inv(T); a rigid transform never needs a general inverse.
func (t *Transform) Inverse() mgl32.Mat4 {
	invRotate := t.Rotation.Conjugate().Mat4()
	invTranslate := mgl32.Translate3D(-t.Position.X(), -t.Position.Y(), -t.Position.Z())
	return invRotate.Mul4(invTranslate)
}

// Forward is the world-space viewing direction (local -Z).
func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// IsRigid reports whether the rotation is a unit quaternion within eps, i.e. its
// matrix is orthonormal.
func (t *Transform) IsRigid(eps float32) bool {
	l := t.Rotation.Len()
	return l > 1-eps && l < 1+eps
}
