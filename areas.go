package gui

// AreaState is the persisted placement of one movable area (window,
// panel, popup). Stored in [Memory] keyed by the area's layer.
type AreaState struct {
	// Pos is the top-left corner.
	Pos Vec2

	// Size is the area's extent, updated after each frame's layout.
	Size Vec2

	// Interactable is false for purely visual surfaces (tooltips);
	// they are skipped when hit-testing layers.
	Interactable bool
}

// Rect returns the area's screen rectangle.
func (s AreaState) Rect() Rect {
	return RectFromMinSize(s.Pos, s.Size)
}

// Areas tracks every layer's area placement and their stacking order.
// The order decides both painting (back to front) and hit-testing
// (front to back) within each [Order] bucket.
type Areas struct {
	areas map[ID]AreaState

	// order is back-to-front. Back-most first.
	order []LayerID

	visibleLastFrame map[LayerID]bool
	visibleThisFrame map[LayerID]bool
}

// Count returns the number of registered areas.
func (a *Areas) Count() int {
	return len(a.areas)
}

// Get returns the state of an area, if any.
func (a *Areas) Get(id ID) (AreaState, bool) {
	state, ok := a.areas[id]
	return state, ok
}

// Order returns the layers in back-to-front stacking order.
func (a *Areas) Order() []LayerID {
	return a.order
}

// SetState records the placement of an area and registers its layer in
// the stacking order on first use. Also marks the layer visible this
// frame.
func (a *Areas) SetState(layer LayerID, state AreaState) {
	if a.areas == nil {
		a.areas = make(map[ID]AreaState)
	}
	if a.visibleThisFrame == nil {
		a.visibleThisFrame = make(map[LayerID]bool)
	}
	_, known := a.areas[layer.ID]
	a.areas[layer.ID] = state
	a.visibleThisFrame[layer] = true
	if !known {
		a.order = append(a.order, layer)
	}
}

// IsVisible reports whether the layer was shown this frame or the last.
func (a *Areas) IsVisible(layer LayerID) bool {
	return a.visibleLastFrame[layer] || a.visibleThisFrame[layer]
}

// VisibleLayers returns the layers shown this frame or the last.
func (a *Areas) VisibleLayers() []LayerID {
	var out []LayerID
	for _, layer := range a.order {
		if a.IsVisible(layer) {
			out = append(out, layer)
		}
	}
	return out
}

// VisibleWindows returns the states of the visible non-background areas,
// used for used-screen-space bookkeeping.
func (a *Areas) VisibleWindows() []AreaState {
	var out []AreaState
	for _, layer := range a.order {
		if layer.Order == OrderBackground || !a.IsVisible(layer) {
			continue
		}
		if state, ok := a.areas[layer.ID]; ok {
			out = append(out, state)
		}
	}
	return out
}

// MoveToTop raises a layer above all others in its Order bucket,
// effective this frame.
func (a *Areas) MoveToTop(layer LayerID) {
	for i, l := range a.order {
		if l == layer {
			a.order = append(a.order[:i], a.order[i+1:]...)
			a.order = append(a.order, layer)
			return
		}
	}
	a.order = append(a.order, layer)
}

// LayerIDAt returns the topmost interactable layer containing the given
// position. Areas are padded by resizeInteractRadius so their resize
// edges remain grabbable.
func (a *Areas) LayerIDAt(pos Vec2, resizeInteractRadius float32) (LayerID, bool) {
	best := LayerID{}
	found := false
	for _, layer := range a.order { // back to front; later wins
		if !a.IsVisible(layer) {
			continue
		}
		state, ok := a.areas[layer.ID]
		if !ok || !state.Interactable {
			continue
		}
		if state.Rect().Expand(resizeInteractRadius).Contains(pos) {
			if !found || layer.Order >= best.Order {
				best = layer
				found = true
			}
		}
	}
	return best, found
}

// endFrame rolls the visibility bookkeeping over to the next frame.
func (a *Areas) endFrame() {
	a.visibleLastFrame = a.visibleThisFrame
	a.visibleThisFrame = make(map[LayerID]bool)
}
