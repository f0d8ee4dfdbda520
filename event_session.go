package rendiation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// WindowStateHolder is implemented by application state dispatched through an
// EventSession. The session updates the returned WindowState before listeners run.
type WindowStateHolder interface {
	WindowState() *WindowState
}

// Surface is the render target handle passed to listeners. Resize listeners use it
// to reconfigure the swapchain to the new physical size. It may be nil.
type Surface interface {
	Configure(width, height uint32)
}

// Listener handles one dispatched event. It borrows state and surface for the
// duration of the call and must not keep them.
type Listener[S any] interface {
	HandleEvent(ev Event, state S, surface Surface) error
}

type ListenerFunc[S any] func(ev Event, state S, surface Surface) error

func (f ListenerFunc[S]) HandleEvent(ev Event, state S, surface Surface) error {
	return f(ev, state, surface)
}

type ListenerID string

type listenerEntry[S any] struct {
	id       ListenerID
	listener Listener[S]
}

// EventSession owns per-kind listener lists and dispatches events to them in
// registration order. It is single-threaded and not re-entrant.
type EventSession[S WindowStateHolder] struct {
	listeners   [eventKindCount][]listenerEntry[S]
	dispatching bool
	logger      Logger
}

type sessionSettings struct {
	logger Logger
}

type SessionOption func(*sessionSettings)

func WithLogger(logger Logger) SessionOption {
	return func(s *sessionSettings) {
		s.logger = logger
	}
}

func NewEventSession[S WindowStateHolder](options ...SessionOption) *EventSession[S] {
	settings := sessionSettings{logger: NewNopLogger()}
	for _, option := range options {
		option(&settings)
	}
	if settings.logger == nil {
		settings.logger = NewNopLogger()
	}
	return &EventSession[S]{logger: settings.logger}
}

func (s *EventSession[S]) add(kind EventKind, listener Listener[S]) ListenerID {
	id := ListenerID(uuid.NewString())
	s.listeners[kind] = append(s.listeners[kind], listenerEntry[S]{id: id, listener: listener})
	s.logger.Debugf("registered %s listener %s", kind, id)
	return id
}

func (s *EventSession[S]) AddResizeListener(l Listener[S]) ListenerID {
	return s.add(EventResize, l)
}

func (s *EventSession[S]) AddMouseMotionListener(l Listener[S]) ListenerID {
	return s.add(EventMouseMotion, l)
}

func (s *EventSession[S]) AddMouseDownListener(l Listener[S]) ListenerID {
	return s.add(EventMouseDown, l)
}

func (s *EventSession[S]) AddMouseUpListener(l Listener[S]) ListenerID {
	return s.add(EventMouseUp, l)
}

func (s *EventSession[S]) AddMouseWheelListener(l Listener[S]) ListenerID {
	return s.add(EventMouseWheel, l)
}

func (s *EventSession[S]) AddKeyDownListener(l Listener[S]) ListenerID {
	return s.add(EventKeyDown, l)
}

func (s *EventSession[S]) AddKeyUpListener(l Listener[S]) ListenerID {
	return s.add(EventKeyUp, l)
}

// ListenerCount returns how many listeners are registered for kind.
func (s *EventSession[S]) ListenerCount(kind EventKind) int {
	if kind < 0 || kind >= eventKindCount {
		return 0
	}
	return len(s.listeners[kind])
}

// Dispatch applies ev to the window state held by state and then runs every
// listener registered for the event's kind, in registration order.
//
// Events of kind EventOther are ignored. An invalid resize is rejected before any
// state changes or listeners run. Listener errors do not stop later listeners;
// they are joined into the returned error. Calling Dispatch from inside a
// listener returns ErrReentrantDispatch.
func (s *EventSession[S]) Dispatch(ev Event, state S, surface Surface) error {
	if s.dispatching {
		return ErrReentrantDispatch
	}

	kind := KindOf(ev)
	if kind == EventOther {
		return nil
	}

	ws := state.WindowState()
	if ws == nil {
		return fmt.Errorf("dispatch %s: application state has no window state", kind)
	}

	switch e := ev.(type) {
	case ResizeEvent:
		if err := ws.UpdateSize(e.Width, e.Height); err != nil {
			return fmt.Errorf("dispatch %s: %w", kind, err)
		}
		phys := ws.PhysicalSize()
		s.logger.Infof("resizing to %vx%v (physical %vx%v)", e.Width, e.Height, phys.X(), phys.Y())
	case MouseMotionEvent:
		ws.MouseMoveTo(e.X, e.Y)
	case MouseButtonEvent:
		ws.SetMouseButton(e.Button, e.Pressed)
	case MouseWheelEvent:
		ws.SetWheelDelta(e.DX, e.DY)
	case KeyEvent:
		ws.SetKey(e.Key, e.Pressed)
	}

	s.dispatching = true
	defer func() { s.dispatching = false }()

	listeners := s.listeners[kind]
	if s.logger.DebugEnabled() {
		s.logger.Debugf("dispatching %s to %d listeners", kind, len(listeners))
	}

	var errs []error
	for _, entry := range listeners {
		if err := entry.listener.HandleEvent(ev, state, surface); err != nil {
			s.logger.Warnf("%s listener %s failed: %v", kind, entry.id, err)
			errs = append(errs, fmt.Errorf("%s listener %s: %w", kind, entry.id, err))
		}
	}
	return errors.Join(errs...)
}
