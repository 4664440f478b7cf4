package gui

// Response describes the result of one interaction query for one widget
// region. It is returned by [CtxRef.Interact] once per call and is owned by
// the calling widget code; nothing in it is persisted by the core.
type Response struct {
	// Ctx is the handle the response was produced by, kept so widget code
	// can chain further queries (e.g. request focus) without plumbing.
	Ctx CtxRef

	// LayerID is the layer the widget is on.
	LayerID LayerID

	// ID of the widget.
	ID ID

	// Rect is the region the widget occupies on screen.
	Rect Rect

	// Sense the widget was interacted with.
	Sense Sense

	// Enabled is false for disabled widgets, which never hover or click.
	Enabled bool

	// Hovered is true if the pointer is above this widget on its layer.
	// Hover is suppressed while another widget owns the pointer.
	Hovered bool

	// Clicked[b] is true if the widget was clicked this frame with the
	// given pointer button.
	Clicked [PointerButtonCount]bool

	// DoubleClicked[b] is true if the widget was double-clicked this frame.
	DoubleClicked [PointerButtonCount]bool

	// Dragged is true while this widget holds the active drag claim.
	Dragged bool

	// DragReleased is true on the frame the drag of this widget ended.
	DragReleased bool

	// IsPointerButtonDownOn is true if a pointer button is down and the
	// press originated on this widget.
	IsPointerButtonDownOn bool

	// InteractPointerPos is where the pointer was when the interaction
	// happened. Valid only when HasInteractPointerPos is true.
	InteractPointerPos    Vec2
	HasInteractPointerPos bool

	// Changed should be set by the widget itself when its value changed
	// this frame (e.g. a slider moved). Never set by the core.
	Changed bool
}

// ClickedPrimary reports a primary-button click this frame.
func (r *Response) ClickedPrimary() bool {
	return r.Clicked[PointerPrimary]
}

// ClickedElsewhere reports whether the pointer clicked outside this
// widget's rect this frame. Used to e.g. close popups and drop focus.
func (r *Response) ClickedElsewhere() bool {
	return r.Ctx.clickedOutside(r.Rect)
}

// HasFocus reports whether this widget holds keyboard focus.
func (r *Response) HasFocus() bool {
	return r.Ctx.HasFocus(r.ID)
}

// RequestFocus gives this widget keyboard focus.
func (r *Response) RequestFocus() {
	r.Ctx.RequestFocus(r.ID)
}

// SurrenderFocus gives up keyboard focus if this widget holds it.
func (r *Response) SurrenderFocus() {
	r.Ctx.SurrenderFocus(r.ID)
}

// Union combines two responses for the same widget drawn as two regions
// (e.g. a label next to its checkbox). The result covers both rects and
// reports an interaction if either part saw one.
func (r Response) Union(other Response) Response {
	out := r
	out.Rect = r.Rect.Union(other.Rect)
	out.Sense = r.Sense.Union(other.Sense)
	out.Hovered = r.Hovered || other.Hovered
	for b := 0; b < int(PointerButtonCount); b++ {
		out.Clicked[b] = r.Clicked[b] || other.Clicked[b]
		out.DoubleClicked[b] = r.DoubleClicked[b] || other.DoubleClicked[b]
	}
	out.Dragged = r.Dragged || other.Dragged
	out.DragReleased = r.DragReleased || other.DragReleased
	out.IsPointerButtonDownOn = r.IsPointerButtonDownOn || other.IsPointerButtonDownOn
	if !out.HasInteractPointerPos && other.HasInteractPointerPos {
		out.InteractPointerPos = other.InteractPointerPos
		out.HasInteractPointerPos = true
	}
	out.Changed = r.Changed || other.Changed
	return out
}
