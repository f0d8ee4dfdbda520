package rendiation

// FpsControlled is application state driven by a first-person controller.
type FpsControlled interface {
	CameraHolder
	FpsController() *FpsController
}

// FpsControlModule turns the view with the mouse while LookButton is held.
// Key movement is time based and runs from the frame loop through
// FpsController.Advance, not from events.
type FpsControlModule[S FpsControlled] struct {
	LookButton MouseButton
}

func (m FpsControlModule[S]) Install(session *EventSession[S]) {
	session.AddMouseMotionListener(ListenerFunc[S](func(ev Event, state S, surface Surface) error {
		ws := state.WindowState()
		if !ws.IsMouseDown(m.LookButton) {
			return nil
		}
		fc := state.FpsController()
		fc.Look(ws.MouseMotion())
		fc.Update(state.Camera().Transform())
		return nil
	}))
}
