package rendiation

import "fmt"

// CameraResizeModule keeps the camera projection and the render surface in step
// with the window. The camera gets the logical size (aspect is scale independent),
// the surface gets the physical size.
type CameraResizeModule[S CameraHolder] struct{}

func (m CameraResizeModule[S]) Install(session *EventSession[S]) {
	session.AddResizeListener(ListenerFunc[S](func(ev Event, state S, surface Surface) error {
		ws := state.WindowState()
		size := ws.Size()
		if err := state.Camera().Resize(size.X(), size.Y()); err != nil {
			return fmt.Errorf("camera resize: %w", err)
		}
		if surface != nil {
			phys := ws.PhysicalSize()
			// logical*hidpi may land just below the integer framebuffer size
			surface.Configure(uint32(phys.X()+0.5), uint32(phys.Y()+0.5))
		}
		return nil
	}))
}
