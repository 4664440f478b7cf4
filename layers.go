package gui

import "sort"

// Order groups layers into coarse front-to-back buckets.
// Within one Order, the area order in [Memory] decides stacking.
type Order int

const (
	// OrderBackground is painted and hit-tested below everything else.
	OrderBackground Order = iota
	// OrderMiddle is for regular windows.
	OrderMiddle
	// OrderForeground is for always-on-top surfaces (e.g. combo popups).
	OrderForeground
	// OrderTooltip is for tooltips. Not interactable.
	OrderTooltip
	// OrderDebug is for debug overlays, on top of everything. Not interactable.
	OrderDebug

	orderCount
)

// AllowInteraction reports whether widgets on this order may be
// interacted with. Tooltips and debug overlays never are.
func (o Order) AllowInteraction() bool {
	return o <= OrderForeground
}

// LayerID identifies one independently hit-testable drawing surface,
// typically one per window or panel.
type LayerID struct {
	Order Order
	ID    ID
}

// BackgroundLayer returns the layer behind all panels and windows.
func BackgroundLayer() LayerID {
	return LayerID{Order: OrderBackground, ID: IDFromString("background")}
}

// DebugLayer returns the overlay layer used for debug visualizations.
func DebugLayer() LayerID {
	return LayerID{Order: OrderDebug, ID: IDFromString("debug")}
}

// AllowInteraction reports whether widgets on this layer may be
// interacted with.
func (l LayerID) AllowInteraction() bool {
	return l.Order.AllowInteraction()
}

// ClippedShape is a shape together with the clip rectangle it must be
// painted within.
type ClippedShape struct {
	ClipRect Rect
	Shape    Shape
}

// PaintList accumulates the shapes of one layer for one frame.
type PaintList struct {
	shapes []ClippedShape
}

// Add appends one shape, clipped to the given rectangle.
func (p *PaintList) Add(clipRect Rect, shape Shape) {
	p.shapes = append(p.shapes, ClippedShape{ClipRect: clipRect, Shape: shape})
}

// Extend appends several shapes sharing one clip rectangle.
func (p *PaintList) Extend(clipRect Rect, shapes []Shape) {
	for _, s := range shapes {
		p.Add(clipRect, s)
	}
}

// Translate moves all shapes and clip rectangles in the list.
// Used to move a whole layer, e.g. for drag-and-drop previews.
func (p *PaintList) Translate(delta Vec2) {
	for i := range p.shapes {
		p.shapes[i].ClipRect = p.shapes[i].ClipRect.Translate(delta)
		p.shapes[i].Shape = p.shapes[i].Shape.Translated(delta)
	}
}

// Len returns the number of accumulated shapes.
func (p *PaintList) Len() int {
	return len(p.shapes)
}

// GraphicLayers stores one PaintList per layer for the current frame.
type GraphicLayers struct {
	lists map[LayerID]*PaintList
}

// List returns the paint list for the given layer, creating it on first use.
func (g *GraphicLayers) List(layer LayerID) *PaintList {
	if g.lists == nil {
		g.lists = make(map[LayerID]*PaintList)
	}
	list, ok := g.lists[layer]
	if !ok {
		list = &PaintList{}
		g.lists[layer] = list
	}
	return list
}

// Drain flattens all layers into one back-to-front sequence of shapes and
// clears the storage. areaOrder gives the stacking of layers within each
// Order bucket; layers not listed there come last in their bucket, in a
// deterministic order.
func (g *GraphicLayers) Drain(areaOrder []LayerID) []ClippedShape {
	var out []ClippedShape

	seen := make(map[LayerID]bool, len(areaOrder))
	drain := func(layer LayerID) {
		if seen[layer] {
			return
		}
		seen[layer] = true
		if list, ok := g.lists[layer]; ok {
			out = append(out, list.shapes...)
			list.shapes = list.shapes[:0]
		}
	}

	for order := Order(0); order < orderCount; order++ {
		for _, layer := range areaOrder {
			if layer.Order == order {
				drain(layer)
			}
		}
		// Layers painted to but never registered as areas.
		var rest []LayerID
		for layer := range g.lists {
			if layer.Order == order && !seen[layer] {
				rest = append(rest, layer)
			}
		}
		sort.Slice(rest, func(i, j int) bool { return rest[i].ID < rest[j].ID })
		for _, layer := range rest {
			drain(layer)
		}
	}

	return out
}
