package gui_test

import (
	"testing"

	"github.com/glasskit/gui"
)

// frame-building helpers shared by tests in this file.

func frameRaw(time float64, events ...gui.Event) gui.RawInput {
	return gui.RawInput{
		Events:     events,
		ScreenRect: gui.RectFromMinSize(gui.Vec2{}, gui.Vec2{X: 800, Y: 600}),
		Time:       time,
		HasTime:    true,
	}
}

func moveTo(pos gui.Vec2) gui.Event {
	return gui.Event{Kind: gui.EventPointerMoved, Pos: pos}
}

func press(pos gui.Vec2) gui.Event {
	return gui.Event{Kind: gui.EventPointerButton, Pos: pos, Button: gui.PointerPrimary, Pressed: true}
}

func release(pos gui.Vec2) gui.Event {
	return gui.Event{Kind: gui.EventPointerButton, Pos: pos, Button: gui.PointerPrimary, Pressed: false}
}

func interactButton(ctx gui.CtxRef, id gui.ID, rect gui.Rect) gui.Response {
	return ctx.Interact(ctx.ScreenRect(), gui.Vec2{X: 8, Y: 3},
		gui.BackgroundLayer(), id, rect, gui.SenseClick(), true)
}

func TestClickButton(t *testing.T) {
	ctx := gui.NewCtxRef()
	id := gui.IDFromString("button")
	rect := gui.RectFromMinMax(gui.Vec2{X: 10, Y: 10}, gui.Vec2{X: 100, Y: 40})
	cursor := gui.Vec2{X: 50, Y: 25}

	// Frame 1: press inside the button.
	var r gui.Response
	ctx.Run(frameRaw(0.0, moveTo(cursor), press(cursor)), func(ctx gui.CtxRef) {
		r = interactButton(ctx, id, rect)
	})
	if r.ClickedPrimary() {
		t.Error("press alone should not count as a click")
	}
	if !r.IsPointerButtonDownOn {
		t.Error("expected the press to be attributed to the button")
	}
	if !r.Hovered {
		t.Error("expected the button to be hovered")
	}

	// Frame 2: release on the same spot.
	ctx.Run(frameRaw(0.1, release(cursor)), func(ctx gui.CtxRef) {
		r = interactButton(ctx, id, rect)
	})
	if !r.ClickedPrimary() {
		t.Error("expected a primary click on release")
	}
	if r.DoubleClicked[gui.PointerPrimary] {
		t.Error("single click reported as double")
	}
	if !r.Hovered {
		t.Error("expected the button to still be hovered")
	}
	if r.Dragged {
		t.Error("a plain click must not report a drag")
	}

	// Frame 3: nothing happens.
	ctx.Run(frameRaw(0.2), func(ctx gui.CtxRef) {
		r = interactButton(ctx, id, rect)
	})
	if r.ClickedPrimary() {
		t.Error("click must only be reported on the release frame")
	}
}

func TestSameFrameClick(t *testing.T) {
	ctx := gui.NewCtxRef()
	id := gui.IDFromString("button")
	rect := gui.RectFromMinMax(gui.Vec2{X: 10, Y: 10}, gui.Vec2{X: 100, Y: 40})
	cursor := gui.Vec2{X: 50, Y: 25}

	// Press and release arrive in the same frame.
	var r gui.Response
	ctx.Run(frameRaw(0.0, moveTo(cursor), press(cursor), release(cursor)), func(ctx gui.CtxRef) {
		r = interactButton(ctx, id, rect)
	})
	if !r.ClickedPrimary() {
		t.Error("expected a same-frame press and release to count as a click")
	}
	if !r.Hovered {
		t.Error("expected the button to be hovered")
	}
	if r.Dragged {
		t.Error("a same-frame click must not report a drag")
	}
}

func TestClickOutsideButton(t *testing.T) {
	ctx := gui.NewCtxRef()
	id := gui.IDFromString("button")
	rect := gui.RectFromMinMax(gui.Vec2{X: 10, Y: 10}, gui.Vec2{X: 100, Y: 40})
	outside := gui.Vec2{X: 400, Y: 300}

	var r gui.Response
	ctx.Run(frameRaw(0.0, moveTo(outside), press(outside)), func(ctx gui.CtxRef) {
		r = interactButton(ctx, id, rect)
	})
	if r.Hovered || r.IsPointerButtonDownOn {
		t.Error("press far away must not touch the button")
	}

	ctx.Run(frameRaw(0.1, release(outside)), func(ctx gui.CtxRef) {
		r = interactButton(ctx, id, rect)
	})
	if r.ClickedPrimary() {
		t.Error("click far away reported as a button click")
	}
}

func TestDragBox(t *testing.T) {
	ctx := gui.NewCtxRef()
	id := gui.IDFromString("box")
	rect := gui.RectFromMinMax(gui.Vec2{X: 100, Y: 100}, gui.Vec2{X: 200, Y: 200})

	drag := func(ctx gui.CtxRef) gui.Response {
		return ctx.Interact(ctx.ScreenRect(), gui.Vec2{X: 8, Y: 3},
			gui.BackgroundLayer(), id, rect, gui.SenseDrag(), true)
	}

	var r gui.Response
	ctx.Run(frameRaw(0.0, moveTo(gui.Vec2{X: 150, Y: 150}), press(gui.Vec2{X: 150, Y: 150})), func(ctx gui.CtxRef) {
		r = drag(ctx)
	})
	if !r.Dragged {
		t.Fatal("expected drag to start on press")
	}

	ctx.Run(frameRaw(0.1, moveTo(gui.Vec2{X: 250, Y: 170})), func(ctx gui.CtxRef) {
		r = drag(ctx)
	})
	if !r.Dragged {
		t.Error("expected drag to continue while the button is held")
	}

	ctx.Run(frameRaw(0.2, release(gui.Vec2{X: 250, Y: 170})), func(ctx gui.CtxRef) {
		r = drag(ctx)
	})
	if r.Dragged {
		t.Error("drag should end on release")
	}
	if !r.DragReleased {
		t.Error("expected DragReleased on the release frame")
	}
}

func TestRepaintSettles(t *testing.T) {
	ctx := gui.NewCtxRef()

	// A fresh context wants one extra frame.
	output, _ := ctx.Run(frameRaw(0.0), nil)
	if !output.NeedsRepaint {
		t.Error("expected the first frame to request a repaint")
	}

	for i := 0; i < 5; i++ {
		output, _ = ctx.Run(frameRaw(0.1+float64(i)*0.1), nil)
	}
	if output.NeedsRepaint {
		t.Error("expected repaint requests to settle with no input")
	}

	// Input events wake it up again.
	output, _ = ctx.Run(frameRaw(1.0, moveTo(gui.Vec2{X: 5, Y: 5})), nil)
	if !output.NeedsRepaint {
		t.Error("expected pointer movement to request a repaint")
	}
}

func TestConstructorOptions(t *testing.T) {
	opts := gui.DefaultOptions()
	opts.ScreenReader = true
	opts.AnimationTime = 0.5
	ctx := gui.NewCtxRef(gui.WithOptions(opts))

	var got gui.Options
	ctx.WithMemory(func(m *gui.Memory) { got = m.Options })
	if !got.ScreenReader {
		t.Error("expected ScreenReader option to be applied")
	}
	if got.AnimationTime != 0.5 {
		t.Errorf("expected animation time 0.5, got %v", got.AnimationTime)
	}
}

func TestRequestRepaint(t *testing.T) {
	ctx := gui.NewCtxRef()
	for i := 0; i < 5; i++ {
		ctx.Run(frameRaw(float64(i)*0.1), nil)
	}

	output, _ := ctx.Run(frameRaw(1.0), func(ctx gui.CtxRef) {
		ctx.RequestRepaint()
	})
	if !output.NeedsRepaint {
		t.Error("expected repaint on the requesting frame")
	}
	// The request covers one more frame, then settles.
	output, _ = ctx.Run(frameRaw(1.1), nil)
	if !output.NeedsRepaint {
		t.Error("expected repaint one frame after the request")
	}
	output, _ = ctx.Run(frameRaw(1.2), nil)
	if output.NeedsRepaint {
		t.Error("expected repaint requests to settle")
	}
}

func TestSetPixelsPerPoint(t *testing.T) {
	ctx := gui.NewCtxRef()
	ctx.Run(frameRaw(0.0), nil)
	if got := ctx.PixelsPerPoint(); got != 1 {
		t.Fatalf("default pixels per point = %v, want 1", got)
	}

	var output gui.Output
	output, _ = ctx.Run(frameRaw(0.1), func(ctx gui.CtxRef) {
		ctx.SetPixelsPerPoint(2)
	})
	if !output.NeedsRepaint {
		t.Error("expected a scale change to request a repaint")
	}

	ctx.Run(frameRaw(0.2), nil)
	if got := ctx.PixelsPerPoint(); got != 2 {
		t.Errorf("pixels per point = %v, want 2", got)
	}
}

func TestScaleChangeRebuildsFontsKeepingDefinitions(t *testing.T) {
	defs := gui.DefaultFontDefinitions()
	body := defs.Styles[gui.TextStyleBody]
	body.Size = 21
	defs.Styles[gui.TextStyleBody] = body

	ctx := gui.NewCtxRef(gui.WithFontDefinitions(defs))
	ctx.Run(frameRaw(0.0), nil)
	before := ctx.FontTexture().Version

	ctx.SetPixelsPerPoint(2)
	ctx.Run(frameRaw(0.1), nil)
	after := ctx.FontTexture().Version
	if after == before {
		t.Fatal("expected a scale change to rebuild the font atlas")
	}

	// The rebuild kept the installed definitions, so re-installing the
	// same ones is a no-op.
	ctx.SetFonts(defs)
	ctx.Run(frameRaw(0.2), nil)
	if got := ctx.FontTexture().Version; got != after {
		t.Errorf("re-installing identical definitions rebuilt the atlas (version %d -> %d)", after, got)
	}
}

func TestTessellateProducesMeshes(t *testing.T) {
	ctx := gui.NewCtxRef()
	_, shapes := ctx.Run(frameRaw(0.0), func(ctx gui.CtxRef) {
		screen := ctx.ScreenRect()
		ctx.PaintShape(gui.BackgroundLayer(), screen, gui.RectShape{
			Rect: gui.RectFromMinMax(gui.Vec2{X: 10, Y: 10}, gui.Vec2{X: 50, Y: 50}),
			Fill: gui.ColorRed,
		})
		ctx.PaintShape(gui.BackgroundLayer(), screen, gui.TextShape{
			Pos:    gui.Vec2{X: 10, Y: 60},
			Galley: ctx.LayoutText(gui.TextStyleBody, "hello"),
			Color:  gui.ColorWhite,
		})
	})
	if len(shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(shapes))
	}

	meshes := ctx.Tessellate(shapes)
	if len(meshes) == 0 {
		t.Fatal("expected at least one mesh")
	}
	stats := ctx.PaintStats()
	if stats.Shapes != 2 || stats.TextShapes != 1 {
		t.Errorf("stats = %+v, want 2 shapes of which 1 text", stats)
	}
	if stats.Vertices == 0 || stats.Triangles == 0 {
		t.Error("expected non-empty geometry stats")
	}
}

func TestPanelsShrinkAvailableRect(t *testing.T) {
	ctx := gui.NewCtxRef()
	ctx.Run(frameRaw(0.0), func(ctx gui.CtxRef) {
		full := ctx.AvailableRect()
		ctx.AllocateLeftPanel(gui.RectFromMinMax(full.Min, gui.Vec2{X: 200, Y: full.Max.Y}))
		got := ctx.AvailableRect()
		if got.Min.X != 200 {
			t.Errorf("available rect min x = %v after left panel, want 200", got.Min.X)
		}
		ctx.AllocateTopPanel(gui.RectFromMinMax(got.Min, gui.Vec2{X: got.Max.X, Y: 50}))
		if got = ctx.AvailableRect(); got.Min.Y != 50 {
			t.Errorf("available rect min y = %v after top panel, want 50", got.Min.Y)
		}
		used := ctx.UsedRect()
		if used.Max.X < 200 || used.Max.Y < 50 {
			t.Errorf("used rect %v does not cover the panels", used)
		}
	})
}

func TestReentrantAccessPanics(t *testing.T) {
	ctx := gui.NewCtxRef()
	ctx.Run(frameRaw(0.0), nil)

	defer func() {
		if recover() == nil {
			t.Error("expected reentrant mutable access to panic")
		}
	}()
	ctx.WithMemory(func(m *gui.Memory) {
		ctx.RequestRepaint() // second mutable access while one is held
	})
}

func TestLayoutTextBeforeFirstFramePanics(t *testing.T) {
	ctx := gui.NewCtxRef()
	defer func() {
		if recover() == nil {
			t.Error("expected LayoutText before the first frame to panic")
		}
	}()
	ctx.LayoutText(gui.TextStyleBody, "too early")
}
