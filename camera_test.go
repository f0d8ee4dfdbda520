package rendiation

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPerspective(t *testing.T) *PerspectiveCamera {
	t.Helper()
	cam, err := NewPerspectiveCamera(PerspectiveParams{Fov: math32.Pi / 3, Aspect: 4.0 / 3.0, Near: 0.1, Far: 100})
	require.NoError(t, err)
	return cam
}

func TestPerspectiveConstructionComputesProjection(t *testing.T) {
	cam := testPerspective(t)
	want := mgl32.Perspective(math32.Pi/3, 4.0/3.0, 0.1, 100)
	assert.Equal(t, want, cam.ProjectionMatrix())
}

func TestPerspectiveUpdateProjectionIsIdempotent(t *testing.T) {
	cam := testPerspective(t)
	cam.UpdateProjection()
	first := cam.ProjectionMatrix()
	cam.UpdateProjection()
	assert.Equal(t, first, cam.ProjectionMatrix())
}

func TestPerspectiveResize(t *testing.T) {
	cam := testPerspective(t)

	require.NoError(t, cam.Resize(1920, 1080))

	aspect := cam.Params().Aspect
	assert.InDelta(t, 1920.0/1080.0, aspect, 1e-6)

	want := 1 / (aspect * math32.Tan(cam.Params().Fov/2))
	assert.InDelta(t, want, cam.ProjectionMatrix().At(0, 0), 1e-5)
}

func TestPerspectiveResizeRejectsInvalidSize(t *testing.T) {
	cam := testPerspective(t)
	before := cam.ProjectionMatrix()

	for _, size := range [][2]float32{{0, 600}, {800, 0}, {-1, 10}, {math32.NaN(), 10}, {math32.Inf(1), 10}} {
		err := cam.Resize(size[0], size[1])
		assert.True(t, errors.Is(err, ErrInvalidSize), "size %v", size)
	}
	assert.Equal(t, before, cam.ProjectionMatrix())
	assert.InDelta(t, 4.0/3.0, cam.Params().Aspect, 1e-6)
}

func TestPerspectiveParamsValidation(t *testing.T) {
	tests := []struct {
		name   string
		params PerspectiveParams
	}{
		{"zero fov", PerspectiveParams{Fov: 0, Aspect: 1, Near: 0.1, Far: 10}},
		{"fov of pi", PerspectiveParams{Fov: math32.Pi, Aspect: 1, Near: 0.1, Far: 10}},
		{"negative aspect", PerspectiveParams{Fov: 1, Aspect: -1, Near: 0.1, Far: 10}},
		{"zero near", PerspectiveParams{Fov: 1, Aspect: 1, Near: 0, Far: 10}},
		{"far equals near", PerspectiveParams{Fov: 1, Aspect: 1, Near: 1, Far: 1}},
		{"nan far", PerspectiveParams{Fov: 1, Aspect: 1, Near: 1, Far: math32.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPerspectiveCamera(tt.params)
			assert.ErrorIs(t, err, ErrInvalidProjection)

			cam := testPerspective(t)
			before := cam.Params()
			assert.ErrorIs(t, cam.SetParams(tt.params), ErrInvalidProjection)
			assert.Equal(t, before, cam.Params())
		})
	}
}

func TestPerspectiveSetParamsLeavesProjectionStale(t *testing.T) {
	cam := testPerspective(t)
	before := cam.ProjectionMatrix()

	require.NoError(t, cam.SetParams(PerspectiveParams{Fov: math32.Pi / 2, Aspect: 2, Near: 1, Far: 50}))
	assert.Equal(t, before, cam.ProjectionMatrix())

	cam.UpdateProjection()
	assert.Equal(t, mgl32.Perspective(math32.Pi/2, 2, 1, 50), cam.ProjectionMatrix())
}

func TestOrthographicContract(t *testing.T) {
	cam, err := NewOrthographicCamera(OrthographicParams{Height: 10, Aspect: 2, Near: -1, Far: 100})
	require.NoError(t, err)
	assert.Equal(t, mgl32.Ortho(-10, 10, -5, 5, -1, 100), cam.ProjectionMatrix())

	cam.UpdateProjection()
	assert.Equal(t, mgl32.Ortho(-10, 10, -5, 5, -1, 100), cam.ProjectionMatrix())

	require.NoError(t, cam.Resize(800, 800))
	assert.InDelta(t, 1, cam.Params().Aspect, 1e-6)
	assert.Equal(t, mgl32.Ortho(-5, 5, -5, 5, -1, 100), cam.ProjectionMatrix())

	assert.ErrorIs(t, cam.Resize(0, 10), ErrInvalidSize)

	before := cam.ProjectionMatrix()
	require.NoError(t, cam.SetParams(OrthographicParams{Height: 2, Aspect: 1, Near: 0, Far: 1}))
	assert.Equal(t, before, cam.ProjectionMatrix())

	assert.ErrorIs(t, cam.SetParams(OrthographicParams{Height: 0, Aspect: 1, Near: 0, Far: 1}), ErrInvalidProjection)
	assert.Equal(t, float32(2), cam.Params().Height)
}

func TestViewProjection(t *testing.T) {
	cam := testPerspective(t)
	cam.Transform().Position = mgl32.Vec3{0, 0, 5}

	vp := ViewProjection(cam)
	want := cam.ProjectionMatrix().Mul4(mgl32.Translate3D(0, 0, -5))
	assert.InDeltaSlice(t, want[:], vp[:], 1e-6)

	// the point in front of the camera lands in the middle of the screen
	clip := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, vp)
	assert.InDelta(t, 0, clip.X(), 1e-6)
	assert.InDelta(t, 0, clip.Y(), 1e-6)
}
