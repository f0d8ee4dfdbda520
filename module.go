package rendiation

// Module installs a related set of listeners into a session.
type Module[S WindowStateHolder] interface {
	Install(session *EventSession[S])
}

// UseModule installs modules in order. Listeners installed by an earlier module
// run before those of a later one for the same event kind.
func (s *EventSession[S]) UseModule(modules ...Module[S]) *EventSession[S] {
	for _, module := range modules {
		module.Install(s)
	}
	return s
}

// CameraHolder is application state that owns a camera.
type CameraHolder interface {
	WindowStateHolder
	Camera() Camera
}
