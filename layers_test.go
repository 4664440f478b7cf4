package gui

import "testing"

func rectAt(x, y float32) RectShape {
	return RectShape{Rect: RectFromMinSize(Vec2{X: x, Y: y}, Vec2{X: 10, Y: 10}), Fill: ColorWhite}
}

func TestDrainOrdersByLayer(t *testing.T) {
	var g GraphicLayers
	clip := RectFromMinSize(Vec2{}, Vec2{X: 100, Y: 100})

	background := BackgroundLayer()
	windowA := LayerID{Order: OrderMiddle, ID: IDFromString("a")}
	windowB := LayerID{Order: OrderMiddle, ID: IDFromString("b")}
	tooltip := LayerID{Order: OrderTooltip, ID: IDFromString("tip")}

	// Paint in scrambled order.
	g.List(tooltip).Add(clip, rectAt(3, 0))
	g.List(windowB).Add(clip, rectAt(2, 0))
	g.List(background).Add(clip, rectAt(0, 0))
	g.List(windowA).Add(clip, rectAt(1, 0))

	// Area order says windowA is behind windowB.
	shapes := g.Drain([]LayerID{background, windowA, windowB})
	if len(shapes) != 4 {
		t.Fatalf("got %d shapes, want 4", len(shapes))
	}
	for i, want := range []float32{0, 1, 2, 3} {
		got := shapes[i].Shape.(RectShape).Rect.Min.X
		if got != want {
			t.Errorf("shape %d at x=%v, want %v", i, got, want)
		}
	}
}

func TestDrainClearsLists(t *testing.T) {
	var g GraphicLayers
	clip := RectFromMinSize(Vec2{}, Vec2{X: 100, Y: 100})
	g.List(BackgroundLayer()).Add(clip, rectAt(0, 0))

	g.Drain(nil)
	if shapes := g.Drain(nil); len(shapes) != 0 {
		t.Errorf("second drain returned %d shapes, want 0", len(shapes))
	}
}

func TestPaintListTranslate(t *testing.T) {
	var p PaintList
	clip := RectFromMinSize(Vec2{}, Vec2{X: 100, Y: 100})
	p.Add(clip, rectAt(10, 10))

	p.Translate(Vec2{X: 5, Y: -5})

	shape := p.shapes[0].Shape.(RectShape)
	if want := (Vec2{X: 15, Y: 5}); shape.Rect.Min != want {
		t.Errorf("shape min = %v, want %v", shape.Rect.Min, want)
	}
	if want := (Vec2{X: 5, Y: -5}); p.shapes[0].ClipRect.Min != want {
		t.Errorf("clip min = %v, want %v", p.shapes[0].ClipRect.Min, want)
	}
}

func TestLayerAllowInteraction(t *testing.T) {
	if !BackgroundLayer().AllowInteraction() {
		t.Error("background must allow interaction")
	}
	if !(LayerID{Order: OrderForeground, ID: 1}).AllowInteraction() {
		t.Error("foreground must allow interaction")
	}
	if (LayerID{Order: OrderTooltip, ID: 1}).AllowInteraction() {
		t.Error("tooltips must not allow interaction")
	}
	if DebugLayer().AllowInteraction() {
		t.Error("the debug layer must not allow interaction")
	}
}
