package rendiation

import "github.com/go-gl/mathgl/mgl32"

const defaultOrbitZoomStep = 0.1

// OrbitControlled is application state driven by an orbit controller.
type OrbitControlled interface {
	CameraHolder
	OrbitController() *OrbitController
}

// OrbitControlModule wires mouse input to an orbit controller: dragging with the
// left button rotates, dragging with the right button pans, and the wheel zooms by
// a factor of 1 - wheelY*ZoomStep. After every adjustment the controller writes
// the camera transform.
type OrbitControlModule[S OrbitControlled] struct {
	// ZoomStep is the radius fraction per wheel unit; zero means 0.1.
	ZoomStep float32
}

func (m OrbitControlModule[S]) Install(session *EventSession[S]) {
	step := m.ZoomStep
	if step == 0 {
		step = defaultOrbitZoomStep
	}

	session.AddMouseMotionListener(ListenerFunc[S](func(ev Event, state S, surface Surface) error {
		ws := state.WindowState()
		motion := ws.MouseMotion()
		delta := mgl32.Vec2{-motion.X(), -motion.Y()}
		oc := state.OrbitController()
		if ws.IsLeftMouseDown() {
			oc.Rotate(delta)
		}
		if ws.IsRightMouseDown() {
			oc.Pan(delta)
		}
		oc.Update(state.Camera().Transform())
		return nil
	}))

	session.AddMouseWheelListener(ListenerFunc[S](func(ev Event, state S, surface Surface) error {
		delta := state.WindowState().WheelDelta().Y()
		oc := state.OrbitController()
		oc.Zoom(1 - delta*step)
		oc.Update(state.Camera().Transform())
		return nil
	}))
}
