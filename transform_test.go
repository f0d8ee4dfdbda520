package rendiation

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3, eps float32) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], float64(eps), "want %v got %v", want, got)
}

func assertQuatNear(t *testing.T, want, got mgl32.Quat, eps float32) {
	t.Helper()
	w := []float32{want.W, want.V[0], want.V[1], want.V[2]}
	g := []float32{got.W, got.V[0], got.V[1], got.V[2]}
	assert.InDeltaSlice(t, w, g, float64(eps), "want %v got %v", want, got)
}

func TestTransformIdentity(t *testing.T) {
	tr := NewTransform()

	assert.Equal(t, mgl32.Ident4(), tr.Matrix())
	assert.Equal(t, mgl32.Ident4(), tr.Inverse())
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, tr.Forward(), 1e-6)
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, tr.Right(), 1e-6)
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, tr.Up(), 1e-6)
	assert.True(t, tr.IsRigid(1e-6))
}

func TestTransformInverseUndoesMatrix(t *testing.T) {
	tr := &Transform{
		Position: mgl32.Vec3{3, -2, 7},
		Rotation: mgl32.QuatRotate(0.7, mgl32.Vec3{1, 2, 3}.Normalize()),
	}

	product := tr.Inverse().Mul4(tr.Matrix())
	ident := mgl32.Ident4()
	assert.InDeltaSlice(t, ident[:], product[:], 1e-5, "got %v", product)

	// the eye maps to the view-space origin
	eye := mgl32.TransformCoordinate(tr.Position, tr.Inverse())
	assertVecNear(t, mgl32.Vec3{}, eye, 1e-5)
}

func TestTransformBasisFollowsRotation(t *testing.T) {
	tr := &Transform{Rotation: mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0})}

	// quarter turn left around +Y looks down -X
	assertVecNear(t, mgl32.Vec3{-1, 0, 0}, tr.Forward(), 1e-6)
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, tr.Right(), 1e-6)
}

func TestTransformIsRigid(t *testing.T) {
	tr := &Transform{Rotation: mgl32.Quat{W: 2}}
	assert.False(t, tr.IsRigid(1e-3))
}
