// Example demonstrates the frame lifecycle against a GLFW window: raw
// input collection, Run, tessellation and rendering, with repaint-driven
// frame scheduling.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glasskit/gui"
	"github.com/glasskit/gui/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	logicalWidth, _ := window.GetSize()
	pixelsPerPoint := float32(fbWidth) / float32(logicalWidth)

	renderer, err := opengl.NewRenderer(fbWidth, fbHeight, pixelsPerPoint)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	cursors := opengl.NewCursorManager(window)
	defer cursors.Delete()

	ctx := gui.NewCtxRef()

	// Application state.
	clickCount := 0
	buttonID := gui.IDFromString("example-button")
	dragID := gui.IDFromString("example-drag")
	dragPos := gui.Vec2{X: 300, Y: 200}

	needsRepaint := true
	for !window.ShouldClose() {
		if needsRepaint {
			glfw.PollEvents()
		} else {
			// Nothing is animating; sleep until the next input event.
			glfw.WaitEvents()
		}

		fbWidth, fbHeight = window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		raw := inputAdapter.TakeRawInput()
		output, shapes := ctx.Run(raw, func(ctx gui.CtxRef) {
			layer := gui.BackgroundLayer()
			screen := ctx.ScreenRect()
			spacing := gui.Vec2{X: 8, Y: 3}

			// A clickable button.
			buttonRect := gui.RectFromMinSize(gui.Vec2{X: 20, Y: 20}, gui.Vec2{X: 180, Y: 30})
			button := ctx.Interact(screen, spacing, layer, buttonID, buttonRect, gui.SenseClick(), true)
			fill := gui.ColorDarkGray
			if button.Hovered {
				fill = gui.ColorGray
			}
			if button.ClickedPrimary() {
				clickCount++
			}
			ctx.PaintShape(layer, screen, gui.RectShape{
				Rect: buttonRect, CornerRadius: 4, Fill: fill,
				Stroke: gui.Stroke{Width: 1, Color: gui.ColorLightGray},
			})
			label := ctx.LayoutText(gui.TextStyleButton, fmt.Sprintf("Click me (%d)", clickCount))
			ctx.PaintShape(layer, screen, gui.TextShape{
				Pos:    gui.Vec2{X: buttonRect.Min.X + 10, Y: buttonRect.Min.Y + 7},
				Galley: label,
				Color:  gui.ColorWhite,
			})

			// A draggable box.
			boxRect := gui.RectFromMinSize(dragPos, gui.Vec2{X: 80, Y: 80})
			box := ctx.Interact(screen, spacing, layer, dragID, boxRect, gui.SenseDrag(), true)
			if box.Dragged {
				ctx.WithInput(func(in *gui.InputState) {
					dragPos = dragPos.Add(in.Pointer.Delta)
				})
				ctx.SetCursorIcon(gui.CursorGrabbing)
			} else if box.Hovered {
				ctx.SetCursorIcon(gui.CursorGrab)
			}
			boxAlpha := ctx.AnimateBool(dragID.With("hover"), box.Hovered || box.Dragged)
			ctx.PaintShape(layer, screen, gui.RectShape{
				Rect: gui.RectFromMinSize(dragPos, gui.Vec2{X: 80, Y: 80}), CornerRadius: 6,
				Fill: gui.RGBA(60, 120, uint8(120+100*boxAlpha), 255),
			})
		})

		meshes := ctx.Tessellate(shapes)
		renderer.Resize(fbWidth, fbHeight, ctx.PixelsPerPoint())
		renderer.UploadFontTexture(ctx.FontTexture())
		renderer.Render(meshes)

		cursors.Apply(output.CursorIcon)
		if output.CopiedText != "" {
			glfw.SetClipboardString(output.CopiedText)
		}
		needsRepaint = output.NeedsRepaint

		window.SwapBuffers()
	}

	return nil
}
