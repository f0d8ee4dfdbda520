package platform

import (
	"github.com/gekko3d/rendiation"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwToKey = map[glfw.Key]rendiation.Key{
	glfw.KeyA:            rendiation.KeyA,
	glfw.KeyB:            rendiation.KeyB,
	glfw.KeyC:            rendiation.KeyC,
	glfw.KeyD:            rendiation.KeyD,
	glfw.KeyE:            rendiation.KeyE,
	glfw.KeyF:            rendiation.KeyF,
	glfw.KeyG:            rendiation.KeyG,
	glfw.KeyH:            rendiation.KeyH,
	glfw.KeyI:            rendiation.KeyI,
	glfw.KeyJ:            rendiation.KeyJ,
	glfw.KeyK:            rendiation.KeyK,
	glfw.KeyL:            rendiation.KeyL,
	glfw.KeyM:            rendiation.KeyM,
	glfw.KeyN:            rendiation.KeyN,
	glfw.KeyO:            rendiation.KeyO,
	glfw.KeyP:            rendiation.KeyP,
	glfw.KeyQ:            rendiation.KeyQ,
	glfw.KeyR:            rendiation.KeyR,
	glfw.KeyS:            rendiation.KeyS,
	glfw.KeyT:            rendiation.KeyT,
	glfw.KeyU:            rendiation.KeyU,
	glfw.KeyV:            rendiation.KeyV,
	glfw.KeyW:            rendiation.KeyW,
	glfw.KeyX:            rendiation.KeyX,
	glfw.KeyY:            rendiation.KeyY,
	glfw.KeyZ:            rendiation.KeyZ,
	glfw.Key0:            rendiation.Key0,
	glfw.Key1:            rendiation.Key1,
	glfw.Key2:            rendiation.Key2,
	glfw.Key3:            rendiation.Key3,
	glfw.Key4:            rendiation.Key4,
	glfw.Key5:            rendiation.Key5,
	glfw.Key6:            rendiation.Key6,
	glfw.Key7:            rendiation.Key7,
	glfw.Key8:            rendiation.Key8,
	glfw.Key9:            rendiation.Key9,
	glfw.KeySpace:        rendiation.KeySpace,
	glfw.KeyEnter:        rendiation.KeyEnter,
	glfw.KeyEscape:       rendiation.KeyEscape,
	glfw.KeyTab:          rendiation.KeyTab,
	glfw.KeyBackspace:    rendiation.KeyBackspace,
	glfw.KeyRight:        rendiation.KeyRight,
	glfw.KeyLeft:         rendiation.KeyLeft,
	glfw.KeyDown:         rendiation.KeyDown,
	glfw.KeyUp:           rendiation.KeyUp,
	glfw.KeyLeftShift:    rendiation.KeyShift,
	glfw.KeyRightShift:   rendiation.KeyShift,
	glfw.KeyLeftControl:  rendiation.KeyControl,
	glfw.KeyRightControl: rendiation.KeyControl,
	glfw.KeyLeftAlt:      rendiation.KeyAlt,
	glfw.KeyRightAlt:     rendiation.KeyAlt,
}

func translateKey(k glfw.Key) rendiation.Key {
	if key, ok := glfwToKey[k]; ok {
		return key
	}
	return rendiation.KeyUnknown
}

func translateMouseButton(b glfw.MouseButton) (rendiation.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return rendiation.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return rendiation.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return rendiation.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
