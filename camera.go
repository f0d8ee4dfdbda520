package rendiation

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera combines an owned transform with a projection matrix.
// Different variants keep different projection parameters but share the same
// update contract: construction and Resize always leave a fresh projection,
// parameter setters leave it stale until UpdateProjection runs.
type Camera interface {
	Transform() *Transform
	UpdateProjection()
	ProjectionMatrix() mgl32.Mat4
	Resize(width, height float32) error
}

var (
	_ Camera = &PerspectiveCamera{}
	_ Camera = &OrthographicCamera{}
)

// ViewProjection returns projection * inverse(transform), the matrix a renderer
// consumes once per frame.
func ViewProjection(c Camera) mgl32.Mat4 {
	proj := c.ProjectionMatrix()
	return proj.Mul4(c.Transform().Inverse())
}

func aspectFromSize(width, height float32) (float32, bool) {
	if !isFinite(width) || !isFinite(height) || width <= 0 || height <= 0 {
		return 0, false
	}
	return width / height, true
}
