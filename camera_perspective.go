package rendiation

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveParams describes a symmetric perspective frustum. Fov is the vertical
// field of view in radians.
type PerspectiveParams struct {
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32
}

func (p PerspectiveParams) validate() error {
	switch {
	case !isFinite(p.Fov) || p.Fov <= 0 || p.Fov >= math32.Pi:
		return fmt.Errorf("fov %v: %w", p.Fov, ErrInvalidProjection)
	case !isFinite(p.Aspect) || p.Aspect <= 0:
		return fmt.Errorf("aspect %v: %w", p.Aspect, ErrInvalidProjection)
	case !isFinite(p.Near) || p.Near <= 0:
		return fmt.Errorf("near %v: %w", p.Near, ErrInvalidProjection)
	case !isFinite(p.Far) || p.Far <= p.Near:
		return fmt.Errorf("far %v (near %v): %w", p.Far, p.Near, ErrInvalidProjection)
	}
	return nil
}

type PerspectiveCamera struct {
	transform  *Transform
	params     PerspectiveParams
	projection mgl32.Mat4
}

// NewPerspectiveCamera validates params and computes the initial projection.
func NewPerspectiveCamera(params PerspectiveParams) (*PerspectiveCamera, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	c := &PerspectiveCamera{
		transform: NewTransform(),
		params:    params,
	}
	c.UpdateProjection()
	return c, nil
}

func (c *PerspectiveCamera) Transform() *Transform {
	return c.transform
}

func (c *PerspectiveCamera) Params() PerspectiveParams {
	return c.params
}

// SetParams replaces the projection parameters. The stored matrix is not touched
// until UpdateProjection is called. Invalid params are rejected and the previous
// ones kept.
func (c *PerspectiveCamera) SetParams(params PerspectiveParams) error {
	if err := params.validate(); err != nil {
		return err
	}
	c.params = params
	return nil
}

func (c *PerspectiveCamera) UpdateProjection() {
	p := c.params
	c.projection = mgl32.Perspective(p.Fov, p.Aspect, p.Near, p.Far)
}

func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

func (c *PerspectiveCamera) Resize(width, height float32) error {
	aspect, ok := aspectFromSize(width, height)
	if !ok {
		return fmt.Errorf("perspective resize to %vx%v: %w", width, height, ErrInvalidSize)
	}
	c.params.Aspect = aspect
	c.UpdateProjection()
	return nil
}
