/*
Package gui provides the interaction and state core of an immediate-mode
GUI: the UI is rebuilt every frame, and widgets report clicks, drags and
focus directly from the function call that drew them.

# Overview

All state lives in a [Context], reached through the cheaply-copyable
handle [CtxRef]. A frame is one call to [CtxRef.Run]: raw input from the
platform goes in, the UI closure runs against the shared context, and an
[Output] plus the frame's shapes come out. The shapes are turned into
renderable triangle meshes by [CtxRef.Tessellate].

Widget code identifies itself with stable [ID] values, asks the context
to resolve interaction via [CtxRef.Interact], and paints with
[CtxRef.PaintShape]. Persistent widget state (window positions, focus,
collapsed flags and arbitrary typed data) lives in [Memory] and survives
across frames; everything else is rebuilt each frame.

# Quick Start

	ctx := gui.NewCtxRef()

	for !window.ShouldClose() {
	    raw := pollRawInput(window)

	    output, shapes := ctx.Run(raw, func(ctx gui.CtxRef) {
	        layer := gui.BackgroundLayer()
	        id := gui.IDFromString("my-button")
	        rect := gui.RectFromMinSize(gui.Vec2{X: 20, Y: 20}, gui.Vec2{X: 180, Y: 30})

	        response := ctx.Interact(ctx.ScreenRect(), gui.Vec2{X: 8, Y: 3},
	            layer, id, rect, gui.SenseClick(), true)
	        if response.ClickedPrimary() {
	            // Button was clicked this frame.
	        }
	        ctx.PaintShape(layer, ctx.ScreenRect(), gui.RectShape{Rect: rect, Fill: gui.ColorDarkGray})
	    })

	    meshes := ctx.Tessellate(shapes)
	    render(meshes, output)
	    // Schedule the next frame eagerly while output.NeedsRepaint.
	}

# Threading

The model is single-threaded: one CtxRef (and all its copies) must be
used from a single goroutine. Access is checked at runtime and reentrant
mutable access panics rather than corrupting state.

# Rendering

The package is renderer-agnostic: [CtxRef.Tessellate] produces
[ClippedMesh] values with plain vertex/index slices, and
[CtxRef.FontTexture] exposes the alpha-coverage font atlas. The
backend/opengl package renders them with OpenGL 4.1.
*/
package gui
