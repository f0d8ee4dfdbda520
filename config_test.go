package rendiation

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultViewConfig(t *testing.T) {
	cfg := DefaultViewConfig()
	require.NoError(t, cfg.Validate())

	cam, err := cfg.NewPerspectiveCamera()
	require.NoError(t, err)
	p := cam.Params()
	assert.InDelta(t, math32.Pi/3, p.Fov, 1e-6)
	assert.InDelta(t, 1280.0/720.0, p.Aspect, 1e-6)
	assert.Equal(t, float32(0.1), p.Near)
	assert.Equal(t, float32(100), p.Far)
}

func TestViewConfigWithDefaultsKeepsSetFields(t *testing.T) {
	cfg := ViewConfig{Title: "x", Width: 640, Far: 10}.WithDefaults()
	assert.Equal(t, "x", cfg.Title)
	assert.Equal(t, float32(640), cfg.Width)
	assert.Equal(t, float32(720), cfg.Height)
	assert.Equal(t, float32(10), cfg.Far)
	assert.Equal(t, ControllerOrbit, cfg.Controller)
	assert.Equal(t, float32(defaultFpsSpeed), cfg.MoveSpeed)
}

func TestViewConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*ViewConfig)
		err  error
	}{
		{"zero hidpi", func(c *ViewConfig) { c.HidpiFactor = -1 }, ErrInvalidHidpi},
		{"negative height", func(c *ViewConfig) { c.Height = -1 }, ErrInvalidSize},
		{"far inside near", func(c *ViewConfig) { c.Near, c.Far = 5, 1 }, ErrInvalidProjection},
		{"radius", func(c *ViewConfig) { c.OrbitRadius = -2 }, ErrInvalidController},
		{"unknown controller", func(c *ViewConfig) { c.Controller = "trackball" }, ErrInvalidController},
		{"negative speed", func(c *ViewConfig) { c.MoveSpeed = -1 }, ErrInvalidController},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultViewConfig()
			tt.mod(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.err)
		})
	}
}

func TestViewConfigFovConversion(t *testing.T) {
	cfg := DefaultViewConfig()
	cfg.FovDegrees = 90
	cam, err := cfg.NewPerspectiveCamera()
	require.NoError(t, err)
	assert.InDelta(t, mgl32.DegToRad(90), cam.Params().Fov, 1e-6)
}
