package rendiation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// WindowState accumulates raw window input between and during dispatches.
// Sizes are (width, height); the hidpi factor is fixed for the lifetime of the state.
type WindowState struct {
	size         mgl32.Vec2
	physicalSize mgl32.Vec2
	hidpiFactor  float32

	mousePosition     mgl32.Vec2
	hasCursor         bool
	mouseMotion       mgl32.Vec2
	accumulatedMotion mgl32.Vec2
	wheelDelta        mgl32.Vec2

	buttons [mouseButtonCount]bool
	keys    [keyCount]bool
}

func NewWindowState(width, height, hidpiFactor float32) (*WindowState, error) {
	if !isFinite(hidpiFactor) || hidpiFactor <= 0 {
		return nil, fmt.Errorf("hidpi %v: %w", hidpiFactor, ErrInvalidHidpi)
	}
	ws := &WindowState{hidpiFactor: hidpiFactor}
	if err := ws.UpdateSize(width, height); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *WindowState) Size() mgl32.Vec2         { return ws.size }
func (ws *WindowState) PhysicalSize() mgl32.Vec2 { return ws.physicalSize }
func (ws *WindowState) HidpiFactor() float32     { return ws.hidpiFactor }
func (ws *WindowState) MousePosition() mgl32.Vec2 {
	return ws.mousePosition
}

// MouseMotion is the cursor delta carried by the most recent motion event.
func (ws *WindowState) MouseMotion() mgl32.Vec2 { return ws.mouseMotion }

// WheelDelta is the delta of the most recent wheel event; it is overwritten, not summed.
func (ws *WindowState) WheelDelta() mgl32.Vec2 { return ws.wheelDelta }

// UpdateSize sets the logical size, then the physical size derived from it.
// Invalid sizes are rejected and the previous sizes kept.
func (ws *WindowState) UpdateSize(width, height float32) error {
	if !isFinite(width) || !isFinite(height) || width <= 0 || height <= 0 {
		return fmt.Errorf("window size %vx%v: %w", width, height, ErrInvalidSize)
	}
	ws.size = mgl32.Vec2{width, height}
	ws.physicalSize = ws.size.Mul(ws.hidpiFactor)
	return nil
}

// MouseMoveTo records a new cursor position and the delta from the previous one.
// The first position seen produces no motion.
func (ws *WindowState) MouseMoveTo(x, y float32) {
	pos := mgl32.Vec2{x, y}
	if ws.hasCursor {
		ws.mouseMotion = pos.Sub(ws.mousePosition)
	} else {
		ws.mouseMotion = mgl32.Vec2{}
		ws.hasCursor = true
	}
	ws.accumulatedMotion = ws.accumulatedMotion.Add(ws.mouseMotion)
	ws.mousePosition = pos
}

// TakeMotion returns the motion summed since the last call and resets it.
func (ws *WindowState) TakeMotion() mgl32.Vec2 {
	m := ws.accumulatedMotion
	ws.accumulatedMotion = mgl32.Vec2{}
	return m
}

func (ws *WindowState) SetWheelDelta(dx, dy float32) {
	ws.wheelDelta = mgl32.Vec2{dx, dy}
}

func (ws *WindowState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= mouseButtonCount {
		return
	}
	ws.buttons[button] = down
}

func (ws *WindowState) IsMouseDown(button MouseButton) bool {
	if button < 0 || button >= mouseButtonCount {
		return false
	}
	return ws.buttons[button]
}

func (ws *WindowState) IsLeftMouseDown() bool  { return ws.buttons[MouseButtonLeft] }
func (ws *WindowState) IsRightMouseDown() bool { return ws.buttons[MouseButtonRight] }

func (ws *WindowState) SetKey(key Key, down bool) {
	if key <= KeyUnknown || key >= keyCount {
		return
	}
	ws.keys[key] = down
}

func (ws *WindowState) IsKeyDown(key Key) bool {
	if key <= KeyUnknown || key >= keyCount {
		return false
	}
	return ws.keys[key]
}
