package gui

import "testing"

func testRaw(time float64, events ...Event) RawInput {
	return RawInput{
		Events:     events,
		ScreenRect: RectFromMinSize(Vec2{}, Vec2{X: 800, Y: 600}),
		Time:       time,
		HasTime:    true,
	}
}

func pointerMove(pos Vec2) Event {
	return Event{Kind: EventPointerMoved, Pos: pos}
}

func pointerPress(pos Vec2) Event {
	return Event{Kind: EventPointerButton, Pos: pos, Button: PointerPrimary, Pressed: true}
}

func pointerRelease(pos Vec2) Event {
	return Event{Kind: EventPointerButton, Pos: pos, Button: PointerPrimary, Pressed: false}
}

func keyPress(key Key) Event {
	return Event{Kind: EventKey, Key: key, Pressed: true}
}

func TestDuplicateIDPaintsOverlay(t *testing.T) {
	ctx := NewCtxRef()
	id := IDFromString("twice")
	a := RectFromMinMax(Vec2{X: 10, Y: 10}, Vec2{X: 50, Y: 30})
	b := RectFromMinMax(Vec2{X: 200, Y: 200}, Vec2{X: 260, Y: 230})

	_, shapes := ctx.Run(testRaw(0.0), func(ctx CtxRef) {
		ctx.RegisterInteractionID(id, a)
		ctx.RegisterInteractionID(id, b)
	})

	// Two disjoint registrations: a "first use" and a "second use"
	// overlay, each a backdrop rect plus its text.
	if len(shapes) != 4 {
		t.Errorf("got %d overlay shapes, want 4", len(shapes))
	}
}

func TestDuplicateIDOverlappingRectsAllowed(t *testing.T) {
	ctx := NewCtxRef()
	id := IDFromString("framed")
	inner := RectFromMinMax(Vec2{X: 10, Y: 10}, Vec2{X: 50, Y: 30})
	frame := inner.Expand(2)

	_, shapes := ctx.Run(testRaw(0.0), func(ctx CtxRef) {
		ctx.RegisterInteractionID(id, frame)
		ctx.RegisterInteractionID(id, inner) // frame drawn around a widget
	})
	if len(shapes) != 0 {
		t.Errorf("got %d overlay shapes for nested rects, want 0", len(shapes))
	}

	_, shapes = ctx.Run(testRaw(0.1), func(ctx CtxRef) {
		ctx.RegisterInteractionID(id, inner)
		ctx.RegisterInteractionID(id, inner) // identical rects
	})
	if len(shapes) != 0 {
		t.Errorf("got %d overlay shapes for identical rects, want 0", len(shapes))
	}
}

func TestHoverGoesToTopmostLayer(t *testing.T) {
	ctx := NewCtxRef()
	window := LayerID{Order: OrderMiddle, ID: IDFromString("window")}
	pos := Vec2{X: 100, Y: 100}

	backgroundID := IDFromString("background-widget")
	windowID := IDFromString("window-widget")
	rect := RectFromMinMax(Vec2{X: 50, Y: 50}, Vec2{X: 150, Y: 150})

	var under, over Response
	ctx.Run(testRaw(0.0, pointerMove(pos)), func(ctx CtxRef) {
		ctx.WithMemory(func(m *Memory) {
			m.Areas.SetState(window, AreaState{
				Pos: rect.Min, Size: rect.Size(), Interactable: true,
			})
		})
		spacing := Vec2{X: 8, Y: 3}
		under = ctx.Interact(ctx.ScreenRect(), spacing, BackgroundLayer(), backgroundID, rect, SenseClick(), true)
		over = ctx.Interact(ctx.ScreenRect(), spacing, window, windowID, rect, SenseClick(), true)
	})

	if under.Hovered {
		t.Error("widget under the window must not be hovered")
	}
	if !over.Hovered {
		t.Error("widget on the window must be hovered")
	}
}

func TestWidgetDragPreemptsWindowDrag(t *testing.T) {
	ctx := NewCtxRef()
	widgetID := IDFromString("slider")
	windowID := IDFromString("window-chrome")
	rect := RectFromMinMax(Vec2{X: 50, Y: 50}, Vec2{X: 150, Y: 80})
	pos := Vec2{X: 100, Y: 60}

	var r Response
	ctx.Run(testRaw(0.0, pointerMove(pos), pointerPress(pos)), func(ctx CtxRef) {
		// Window chrome resolves first and claims the drag.
		ctx.WithMemory(func(m *Memory) {
			m.Interaction.DragID = windowID
			m.Interaction.DragIsWindow = true
			m.WindowInteraction = &WindowInteraction{
				Layer:    BackgroundLayer(),
				StartPos: pos,
			}
		})
		r = ctx.Interact(ctx.ScreenRect(), Vec2{X: 8, Y: 3},
			BackgroundLayer(), widgetID, rect, SenseDrag(), true)
	})

	if !r.Dragged {
		t.Fatal("expected the widget to take the drag from the window")
	}
	ctx.WithMemory(func(m *Memory) {
		if m.Interaction.DragID != widgetID {
			t.Errorf("drag claim = %v, want %v", m.Interaction.DragID, widgetID)
		}
		if m.Interaction.DragIsWindow {
			t.Error("drag claim still marked as a window drag")
		}
		if m.WindowInteraction != nil {
			t.Error("window interaction should be cancelled by a widget drag")
		}
	})
}

func TestWidgetDragNotUsurpedByLaterWidget(t *testing.T) {
	ctx := NewCtxRef()
	first := IDFromString("first")
	second := IDFromString("second")
	rect := RectFromMinMax(Vec2{X: 50, Y: 50}, Vec2{X: 150, Y: 80})
	pos := Vec2{X: 100, Y: 60}

	var r1, r2 Response
	ctx.Run(testRaw(0.0, pointerMove(pos), pointerPress(pos)), func(ctx CtxRef) {
		spacing := Vec2{X: 8, Y: 3}
		r1 = ctx.Interact(ctx.ScreenRect(), spacing, BackgroundLayer(), first, rect, SenseDrag(), true)
		r2 = ctx.Interact(ctx.ScreenRect(), spacing, BackgroundLayer(), second, rect, SenseDrag(), true)
	})

	if !r1.Dragged {
		t.Error("first widget should hold the drag")
	}
	if r2.Dragged {
		t.Error("second widget must not steal an in-progress widget drag")
	}
}

func TestClickedElsewhereDropsFocus(t *testing.T) {
	ctx := NewCtxRef()
	id := IDFromString("text-field")
	rect := RectFromMinMax(Vec2{X: 10, Y: 10}, Vec2{X: 100, Y: 40})
	far := Vec2{X: 500, Y: 500}

	interact := func(ctx CtxRef) Response {
		return ctx.Interact(ctx.ScreenRect(), Vec2{X: 8, Y: 3},
			BackgroundLayer(), id, rect, SenseClick(), true)
	}

	ctx.Run(testRaw(0.0), func(ctx CtxRef) {
		r := interact(ctx)
		r.RequestFocus()
	})
	if !ctx.HasFocus(id) {
		t.Fatal("expected the widget to be focused")
	}

	// Click far away: press and release in one frame makes a click.
	ctx.Run(testRaw(0.1, pointerMove(far), pointerPress(far), pointerRelease(far)), func(ctx CtxRef) {
		interact(ctx)
	})
	if ctx.HasFocus(id) {
		t.Error("expected a click elsewhere to drop focus")
	}
}

func TestFocusLostWhenWidgetDisappears(t *testing.T) {
	ctx := NewCtxRef()
	id := IDFromString("transient")
	rect := RectFromMinMax(Vec2{X: 10, Y: 10}, Vec2{X: 100, Y: 40})

	ctx.Run(testRaw(0.0), func(ctx CtxRef) {
		r := ctx.Interact(ctx.ScreenRect(), Vec2{X: 8, Y: 3},
			BackgroundLayer(), id, rect, SenseClick(), true)
		r.RequestFocus()
	})
	if !ctx.HasFocus(id) {
		t.Fatal("expected the widget to be focused")
	}

	// Next frame the widget is not shown at all.
	ctx.Run(testRaw(0.1), nil)
	if ctx.HasFocus(id) {
		t.Error("a widget that disappears must lose focus")
	}
}

func TestEnterActivatesFocusedWidget(t *testing.T) {
	ctx := NewCtxRef()
	id := IDFromString("ok-button")
	rect := RectFromMinMax(Vec2{X: 10, Y: 10}, Vec2{X: 100, Y: 40})

	interact := func(ctx CtxRef) Response {
		return ctx.Interact(ctx.ScreenRect(), Vec2{X: 8, Y: 3},
			BackgroundLayer(), id, rect, SenseClick(), true)
	}

	ctx.Run(testRaw(0.0), func(ctx CtxRef) {
		r := interact(ctx)
		r.RequestFocus()
	})

	var r Response
	ctx.Run(testRaw(0.1, keyPress(KeyEnter)), func(ctx CtxRef) {
		r = interact(ctx)
	})
	if !r.ClickedPrimary() {
		t.Error("expected Enter on a focused widget to count as a click")
	}
}

func TestDisabledWidgetIgnoresInput(t *testing.T) {
	ctx := NewCtxRef()
	id := IDFromString("disabled")
	rect := RectFromMinMax(Vec2{X: 10, Y: 10}, Vec2{X: 100, Y: 40})
	pos := Vec2{X: 50, Y: 25}

	var r Response
	ctx.Run(testRaw(0.0, pointerMove(pos), pointerPress(pos), pointerRelease(pos)), func(ctx CtxRef) {
		r = ctx.Interact(ctx.ScreenRect(), Vec2{X: 8, Y: 3},
			BackgroundLayer(), id, rect, SenseClick(), false)
	})
	if r.Hovered {
		t.Error("disabled widgets must not hover")
	}
	if r.ClickedPrimary() {
		t.Error("disabled widgets must not click")
	}
}

func TestInteractExpansionClamped(t *testing.T) {
	ctx := NewCtxRef()
	id := IDFromString("thin")
	// A thin widget: the hit area is fattened by half the item spacing,
	// minus a small gap, capped at a few points.
	rect := RectFromMinMax(Vec2{X: 100, Y: 100}, Vec2{X: 200, Y: 102})
	spacing := Vec2{X: 8, Y: 3}
	justBelow := Vec2{X: 150, Y: 102.5} // within the fattened area
	farBelow := Vec2{X: 150, Y: 110}

	var r Response
	ctx.Run(testRaw(0.0, pointerMove(justBelow)), func(ctx CtxRef) {
		r = ctx.Interact(ctx.ScreenRect(), spacing, BackgroundLayer(), id, rect, SenseClick(), true)
	})
	if !r.Hovered {
		t.Error("expected hover just below a thin widget")
	}

	ctx.Run(testRaw(0.1, pointerMove(farBelow)), func(ctx CtxRef) {
		r = ctx.Interact(ctx.ScreenRect(), spacing, BackgroundLayer(), id, rect, SenseClick(), true)
	})
	if r.Hovered {
		t.Error("expansion must stay within the clamp")
	}
}

func TestWantsPointerAndKeyboardInput(t *testing.T) {
	ctx := NewCtxRef()
	id := IDFromString("field")
	rect := RectFromMinMax(Vec2{X: 10, Y: 10}, Vec2{X: 100, Y: 40})
	pos := Vec2{X: 50, Y: 25}

	ctx.Run(testRaw(0.0, pointerMove(pos), pointerPress(pos)), func(ctx CtxRef) {
		r := ctx.Interact(ctx.ScreenRect(), Vec2{X: 8, Y: 3},
			BackgroundLayer(), id, rect, SenseClick(), true)
		r.RequestFocus()
	})

	if !ctx.IsUsingPointer() {
		t.Error("expected the press on a widget to use the pointer")
	}
	if !ctx.WantsPointerInput() {
		t.Error("expected pointer input to be wanted mid-interaction")
	}
	if !ctx.WantsKeyboardInput() {
		t.Error("expected keyboard input to be wanted while focused")
	}
}
