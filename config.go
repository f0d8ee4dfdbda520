package rendiation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewConfig holds the parameters supplied once at startup. Zero fields are
// replaced by defaults in WithDefaults.
type ViewConfig struct {
	Title       string  `toml:"title"`
	Width       float32 `toml:"width"`
	Height      float32 `toml:"height"`
	HidpiFactor float32 `toml:"hidpi_factor"`
	FovDegrees  float32 `toml:"fov_degrees"`
	Near        float32 `toml:"near"`
	Far         float32 `toml:"far"`
	OrbitRadius float32 `toml:"orbit_radius"`
	// Controller selects the navigation mode: "orbit" or "fps".
	Controller  string  `toml:"controller"`
	MoveSpeed   float32 `toml:"move_speed"`
	Debug       bool    `toml:"debug"`
}

const (
	ControllerOrbit = "orbit"
	ControllerFps   = "fps"
)

func DefaultViewConfig() ViewConfig {
	return ViewConfig{}.WithDefaults()
}

func (c ViewConfig) WithDefaults() ViewConfig {
	if c.Title == "" {
		c.Title = "Rendiation"
	}
	if c.Width == 0 {
		c.Width = 1280
	}
	if c.Height == 0 {
		c.Height = 720
	}
	if c.HidpiFactor == 0 {
		c.HidpiFactor = 1
	}
	if c.FovDegrees == 0 {
		c.FovDegrees = 60
	}
	if c.Near == 0 {
		c.Near = 0.1
	}
	if c.Far == 0 {
		c.Far = 100
	}
	if c.OrbitRadius == 0 {
		c.OrbitRadius = 10
	}
	if c.Controller == "" {
		c.Controller = ControllerOrbit
	}
	if c.MoveSpeed == 0 {
		c.MoveSpeed = defaultFpsSpeed
	}
	return c
}

// Validate checks the config by building the objects it parameterizes.
func (c ViewConfig) Validate() error {
	if _, err := NewWindowState(c.Width, c.Height, c.HidpiFactor); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.NewPerspectiveCamera(); err != nil {
		return err
	}
	if !isFinite(c.OrbitRadius) || c.OrbitRadius <= 0 {
		return fmt.Errorf("config: orbit radius %v: %w", c.OrbitRadius, ErrInvalidController)
	}
	if c.Controller != ControllerOrbit && c.Controller != ControllerFps {
		return fmt.Errorf("config: controller %q: %w", c.Controller, ErrInvalidController)
	}
	if !isFinite(c.MoveSpeed) || c.MoveSpeed < 0 {
		return fmt.Errorf("config: move speed %v: %w", c.MoveSpeed, ErrInvalidController)
	}
	return nil
}

func (c ViewConfig) NewPerspectiveCamera() (*PerspectiveCamera, error) {
	aspect, ok := aspectFromSize(c.Width, c.Height)
	if !ok {
		return nil, fmt.Errorf("config: window %vx%v: %w", c.Width, c.Height, ErrInvalidSize)
	}
	cam, err := NewPerspectiveCamera(PerspectiveParams{
		Fov:    mgl32.DegToRad(c.FovDegrees),
		Aspect: aspect,
		Near:   c.Near,
		Far:    c.Far,
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cam, nil
}
