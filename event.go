package rendiation

// EventKind is the dispatch class of an event. Each event belongs to exactly one kind.
type EventKind int

const (
	EventOther EventKind = iota
	EventResize
	EventMouseMotion
	EventMouseDown
	EventMouseUp
	EventMouseWheel
	EventKeyDown
	EventKeyUp
	eventKindCount
)

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventMouseMotion:
		return "mouse-motion"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	case EventMouseWheel:
		return "mouse-wheel"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	default:
		return "other"
	}
}

// Event is a platform event handed to an EventSession. The set of event types is
// closed; pass them by value.
type Event interface {
	isEvent()
}

// ResizeEvent carries the new logical window size.
type ResizeEvent struct {
	Width, Height float32
}

// MouseMotionEvent carries the new logical cursor position.
type MouseMotionEvent struct {
	X, Y float32
}

type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
}

type MouseWheelEvent struct {
	DX, DY float32
}

type KeyEvent struct {
	Key     Key
	Pressed bool
}

// CloseEvent is delivered when the window is asked to close. Sessions ignore it;
// it exists so platform adapters can forward it to the event loop.
type CloseEvent struct{}

func (ResizeEvent) isEvent()      {}
func (MouseMotionEvent) isEvent() {}
func (MouseButtonEvent) isEvent() {}
func (MouseWheelEvent) isEvent()  {}
func (KeyEvent) isEvent()         {}
func (CloseEvent) isEvent()       {}

// KindOf classifies ev. Unknown or nil events are EventOther.
func KindOf(ev Event) EventKind {
	switch e := ev.(type) {
	case ResizeEvent:
		return EventResize
	case MouseMotionEvent:
		return EventMouseMotion
	case MouseButtonEvent:
		if e.Pressed {
			return EventMouseDown
		}
		return EventMouseUp
	case MouseWheelEvent:
		return EventMouseWheel
	case KeyEvent:
		if e.Pressed {
			return EventKeyDown
		}
		return EventKeyUp
	default:
		return EventOther
	}
}
