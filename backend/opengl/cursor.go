package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glasskit/gui"
)

// CursorManager applies gui cursor icons to a GLFW window, creating the
// standard cursors lazily and reusing them across frames.
type CursorManager struct {
	window  *glfw.Window
	cursors map[glfw.StandardCursor]*glfw.Cursor
	current gui.CursorIcon
	applied bool
}

// NewCursorManager creates a cursor manager for the window.
func NewCursorManager(window *glfw.Window) *CursorManager {
	return &CursorManager{
		window:  window,
		cursors: make(map[glfw.StandardCursor]*glfw.Cursor),
	}
}

// Apply sets the window cursor for this frame's output.
func (m *CursorManager) Apply(icon gui.CursorIcon) {
	if m.applied && icon == m.current {
		return
	}
	m.current = icon
	m.applied = true

	shape := glfw.ArrowCursor
	switch icon {
	case gui.CursorPointingHand:
		shape = glfw.HandCursor
	case gui.CursorResizeHorizontal:
		shape = glfw.HResizeCursor
	case gui.CursorResizeVertical:
		shape = glfw.VResizeCursor
	case gui.CursorText:
		shape = glfw.IBeamCursor
	case gui.CursorResizeNeSw, gui.CursorResizeNwSe,
		gui.CursorGrab, gui.CursorGrabbing, gui.CursorNotAllowed:
		// GLFW 3.3 has no standard cursor for these; fall back to arrow.
	}

	cursor, ok := m.cursors[shape]
	if !ok {
		cursor = glfw.CreateStandardCursor(shape)
		m.cursors[shape] = cursor
	}
	m.window.SetCursor(cursor)
}

// Delete releases the created cursors.
func (m *CursorManager) Delete() {
	for _, cursor := range m.cursors {
		cursor.Destroy()
	}
	m.cursors = make(map[glfw.StandardCursor]*glfw.Cursor)
}
