package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glasskit/gui"
)

// GLFWInputAdapter collects GLFW callbacks into a gui.RawInput per frame.
type GLFWInputAdapter struct {
	window *glfw.Window
	events []gui.Event
}

// NewGLFWInputAdapter installs input callbacks on the window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{window: window}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetCursorEnterCallback(adapter.cursorEnterCallback)

	return adapter
}

// TakeRawInput returns this frame's raw input and clears the event
// queue. Call once per frame, after glfw.PollEvents.
func (a *GLFWInputAdapter) TakeRawInput() gui.RawInput {
	width, height := a.window.GetSize()
	fbWidth, _ := a.window.GetFramebufferSize()
	pixelsPerPoint := float32(1)
	if width > 0 {
		pixelsPerPoint = float32(fbWidth) / float32(width)
	}

	raw := gui.RawInput{
		Events:         a.events,
		ScreenRect:     gui.RectFromMinSize(gui.Vec2{}, gui.Vec2{X: float32(width), Y: float32(height)}),
		PixelsPerPoint: pixelsPerPoint,
		Time:           glfw.GetTime(),
		HasTime:        true,
		Modifiers:      a.modifiers(),
	}
	a.events = nil
	return raw
}

func (a *GLFWInputAdapter) modifiers() gui.Modifiers {
	down := func(k glfw.Key) bool { return a.window.GetKey(k) == glfw.Press }
	return gui.Modifiers{
		Alt:     down(glfw.KeyLeftAlt) || down(glfw.KeyRightAlt),
		Ctrl:    down(glfw.KeyLeftControl) || down(glfw.KeyRightControl),
		Shift:   down(glfw.KeyLeftShift) || down(glfw.KeyRightShift),
		Command: down(glfw.KeyLeftSuper) || down(glfw.KeyRightSuper),
	}
}

func (a *GLFWInputAdapter) cursorPos() gui.Vec2 {
	x, y := a.window.GetCursorPos()
	return gui.Vec2{X: float32(x), Y: float32(y)}
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	guiKey := glfwKeyToGUIKey(key)
	if guiKey == gui.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.events = append(a.events, gui.Event{
			Kind: gui.EventKey, Key: guiKey, Pressed: true, Modifiers: a.modifiers(),
		})
	case glfw.Release:
		a.events = append(a.events, gui.Event{
			Kind: gui.EventKey, Key: guiKey, Pressed: false, Modifiers: a.modifiers(),
		})
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.events = append(a.events, gui.Event{Kind: gui.EventText, Text: string(char)})
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton, ok := glfwMouseButtonToGUI(button)
	if !ok {
		return
	}
	a.events = append(a.events, gui.Event{
		Kind:      gui.EventPointerButton,
		Pos:       a.cursorPos(),
		Button:    guiButton,
		Pressed:   action == glfw.Press,
		Modifiers: a.modifiers(),
	})
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	// GLFW scroll is in "lines"; scale to something close to points.
	const scrollSpeed = 24
	a.events = append(a.events, gui.Event{
		Kind:   gui.EventScroll,
		Scroll: gui.Vec2{X: float32(xoff) * scrollSpeed, Y: float32(yoff) * scrollSpeed},
	})
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.events = append(a.events, gui.Event{
		Kind: gui.EventPointerMoved,
		Pos:  gui.Vec2{X: float32(xpos), Y: float32(ypos)},
	})
}

func (a *GLFWInputAdapter) cursorEnterCallback(w *glfw.Window, entered bool) {
	if !entered {
		a.events = append(a.events, gui.Event{Kind: gui.EventPointerGone})
	}
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyTab:
		return gui.KeyTab
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyDown
	case glfw.KeyPageUp:
		return gui.KeyPageUp
	case glfw.KeyPageDown:
		return gui.KeyPageDown
	case glfw.KeyHome:
		return gui.KeyHome
	case glfw.KeyEnd:
		return gui.KeyEnd
	case glfw.KeyInsert:
		return gui.KeyInsert
	case glfw.KeyDelete:
		return gui.KeyDelete
	case glfw.KeyBackspace:
		return gui.KeyBackspace
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return gui.KeyEnter
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyA:
		return gui.KeyA
	case glfw.KeyC:
		return gui.KeyC
	case glfw.KeyV:
		return gui.KeyV
	case glfw.KeyX:
		return gui.KeyX
	case glfw.KeyZ:
		return gui.KeyZ
	default:
		return gui.KeyNone
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI pointer buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) (gui.PointerButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.PointerPrimary, true
	case glfw.MouseButtonRight:
		return gui.PointerSecondary, true
	case glfw.MouseButtonMiddle:
		return gui.PointerMiddle, true
	default:
		return 0, false
	}
}
