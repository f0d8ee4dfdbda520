package platform

import (
	"fmt"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/gekko3d/rendiation"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// CreateWindow initializes GLFW and opens a resizable window without a client
// API, ready to be wrapped by a WebGPU surface. It returns the window and the
// hidpi factor to build the WindowState with. Must be called from the main
// goroutine; the caller owns glfw.Terminate and window.Destroy.
//
// A zero cfg.HidpiFactor means "use the monitor content scale".
func CreateWindow(cfg rendiation.ViewConfig) (*glfw.Window, float32, error) {
	autoScale := cfg.HidpiFactor == 0
	cfg = cfg.WithDefaults()

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, 0, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(int(cfg.Width), int(cfg.Height), cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, 0, fmt.Errorf("glfw create window: %w", err)
	}

	hidpi := cfg.HidpiFactor
	if autoScale {
		// some monitors report NaN
		if sx, _ := win.GetContentScale(); sx > 0 && !math32.IsNaN(sx) {
			hidpi = sx
		}
	}
	return win, hidpi, nil
}
