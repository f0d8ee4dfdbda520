package rendiation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// OrthographicParams describes a box-shaped view volume centered on the view axis.
// Height is the world-space height of the volume; width follows from Aspect.
type OrthographicParams struct {
	Height float32
	Aspect float32
	Near   float32
	Far    float32
}

func (p OrthographicParams) validate() error {
	switch {
	case !isFinite(p.Height) || p.Height <= 0:
		return fmt.Errorf("height %v: %w", p.Height, ErrInvalidProjection)
	case !isFinite(p.Aspect) || p.Aspect <= 0:
		return fmt.Errorf("aspect %v: %w", p.Aspect, ErrInvalidProjection)
	case !isFinite(p.Near) || !isFinite(p.Far) || p.Far <= p.Near:
		return fmt.Errorf("near %v far %v: %w", p.Near, p.Far, ErrInvalidProjection)
	}
	return nil
}

type OrthographicCamera struct {
	transform  *Transform
	params     OrthographicParams
	projection mgl32.Mat4
}

func NewOrthographicCamera(params OrthographicParams) (*OrthographicCamera, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	c := &OrthographicCamera{
		transform: NewTransform(),
		params:    params,
	}
	c.UpdateProjection()
	return c, nil
}

func (c *OrthographicCamera) Transform() *Transform {
	return c.transform
}

func (c *OrthographicCamera) Params() OrthographicParams {
	return c.params
}

func (c *OrthographicCamera) SetParams(params OrthographicParams) error {
	if err := params.validate(); err != nil {
		return err
	}
	c.params = params
	return nil
}

func (c *OrthographicCamera) UpdateProjection() {
	p := c.params
	halfH := p.Height / 2
	halfW := halfH * p.Aspect
	c.projection = mgl32.Ortho(-halfW, halfW, -halfH, halfH, p.Near, p.Far)
}

func (c *OrthographicCamera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

func (c *OrthographicCamera) Resize(width, height float32) error {
	aspect, ok := aspectFromSize(width, height)
	if !ok {
		return fmt.Errorf("orthographic resize to %vx%v: %w", width, height, ErrInvalidSize)
	}
	c.params.Aspect = aspect
	c.UpdateProjection()
	return nil
}
