package gui

import "fmt"

// frameState is the transient per-frame bookkeeping: which IDs were used
// with which rectangles, how much of the screen is still unclaimed, and
// how much the panels consumed. Reset at the start of every frame.
type frameState struct {
	// usedIDs maps every interactive/persistent ID registered this frame
	// to its last-registered rectangle. Used for duplicate detection and
	// for focus-loss-on-disappearance at end of frame.
	usedIDs map[ID]Rect

	// availableRect is the screen region not yet claimed by panels.
	// Shrinks as panels allocate edges.
	availableRect Rect

	// unusedRect is availableRect as of end of panel allocation; the
	// background region clicks can fall through to.
	unusedRect Rect

	// usedByPanels is the union of the rectangles the panels consumed.
	usedByPanels Rect

	started bool
}

// beginFrame resets the transient state from the new input's screen rect.
func (f *frameState) beginFrame(input *InputState) {
	if f.usedIDs == nil {
		f.usedIDs = make(map[ID]Rect)
	} else {
		clear(f.usedIDs)
	}
	f.availableRect = input.ScreenRect
	f.unusedRect = input.ScreenRect
	f.usedByPanels = NothingRect()
	f.started = true
}

// AvailableRect returns the region panels have not claimed yet.
func (f *frameState) AvailableRect() Rect {
	if !f.started {
		panic("gui: AvailableRect called before the first frame began")
	}
	return f.availableRect
}

// registerID records an (id, rect) registration, returning the previous
// rectangle if the id was already used this frame.
func (f *frameState) registerID(id ID, rect Rect) (prev Rect, clash bool) {
	prev, clash = f.usedIDs[id]
	f.usedIDs[id] = rect
	return prev, clash
}

// allocateLeftPanel claims a panel rectangle on the left edge.
func (f *frameState) allocateLeftPanel(rect Rect) {
	if rect.Min != f.availableRect.Min {
		panic(fmt.Sprintf("gui: left panel must start at available rect min, got %v", rect.Min))
	}
	f.availableRect.Min.X = rect.Max.X
	f.unusedRect = f.availableRect
	f.usedByPanels = f.usedByPanels.Union(rect)
}

// allocateTopPanel claims a panel rectangle on the top edge.
func (f *frameState) allocateTopPanel(rect Rect) {
	if rect.Min != f.availableRect.Min {
		panic(fmt.Sprintf("gui: top panel must start at available rect min, got %v", rect.Min))
	}
	f.availableRect.Min.Y = rect.Max.Y
	f.unusedRect = f.availableRect
	f.usedByPanels = f.usedByPanels.Union(rect)
}

// allocateCentralPanel claims everything that is left.
func (f *frameState) allocateCentralPanel(rect Rect) {
	f.unusedRect = NothingRect()
	f.usedByPanels = f.usedByPanels.Union(rect)
}
