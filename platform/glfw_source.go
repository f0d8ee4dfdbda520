package platform

import (
	"github.com/gekko3d/rendiation"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWSource translates GLFW window callbacks into rendiation events and hands
// them, one at a time, to a handler. Events are produced on the goroutine that
// calls glfw.PollEvents.
type GLFWSource struct {
	w     *glfw.Window
	hidpi float32
	onEv  func(rendiation.Event)
}

// NewGLFWSource installs callbacks on w. hidpi must be the factor the
// WindowState was built with. Any callbacks previously set on w for the same
// inputs are replaced.
func NewGLFWSource(w *glfw.Window, hidpi float32, onEvent func(rendiation.Event)) *GLFWSource {
	src := &GLFWSource{w: w, hidpi: hidpi, onEv: onEvent}

	// Screen coordinates are pixels on some platforms and points on others, so
	// resizes are driven by the framebuffer. Dividing by hidpi gives the logical
	// size whose physical counterpart is the framebuffer again.
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		src.emit(framebufferResize(width, height, src.hidpi))
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		src.emit(rendiation.MouseMotionEvent{X: float32(x), Y: float32(y)})
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := translateMouseButton(button)
		if !ok {
			return
		}
		src.emit(rendiation.MouseButtonEvent{Button: b, Pressed: action == glfw.Press})
	})
	w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		src.emit(rendiation.MouseWheelEvent{DX: float32(xoff), DY: float32(yoff)})
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := translateKey(key)
		if k == rendiation.KeyUnknown || action == glfw.Repeat {
			return
		}
		src.emit(rendiation.KeyEvent{Key: k, Pressed: action == glfw.Press})
	})
	w.SetCloseCallback(func(*glfw.Window) {
		src.emit(rendiation.CloseEvent{})
	})

	return src
}

func framebufferResize(width, height int, hidpi float32) rendiation.ResizeEvent {
	return rendiation.ResizeEvent{
		Width:  float32(width) / hidpi,
		Height: float32(height) / hidpi,
	}
}

// LogicalFramebufferSize is the current framebuffer of w in logical units, for
// building the initial WindowState.
func LogicalFramebufferSize(w *glfw.Window, hidpi float32) (float32, float32) {
	fbw, fbh := w.GetFramebufferSize()
	ev := framebufferResize(fbw, fbh, hidpi)
	return ev.Width, ev.Height
}

func (s *GLFWSource) emit(ev rendiation.Event) {
	if s.onEv != nil {
		s.onEv(ev)
	}
}

func (s *GLFWSource) SetEventCallback(cb func(rendiation.Event)) { s.onEv = cb }
func (s *GLFWSource) PollEvents()                                { glfw.PollEvents() }
func (s *GLFWSource) ShouldClose() bool                          { return s.w.ShouldClose() }
