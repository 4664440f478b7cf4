package gui

import "reflect"

// Memory is the persistent, identifier-keyed state store: everything that
// must survive across frames. If you want to persist the UI state across
// runs, snapshot this (the core itself treats it as in-memory only).
type Memory struct {
	// Interaction tracks who is being clicked and dragged.
	Interaction Interaction

	// Areas tracks window/panel placement, stacking and hit-testing.
	Areas Areas

	// Options holds tunables consulted throughout the pipeline.
	Options Options

	focus focusState

	// data is arbitrary typed per-widget state, keyed by (ID, type).
	// Access it with the generic DataGet/DataSet/... helpers.
	data idTypeMap

	// NewFontDefinitions, when set, replaces the font cache at the start
	// of the next frame.
	NewFontDefinitions *FontDefinitions

	// NewPixelsPerPoint, when > 0, overrides the scale factor at the
	// start of the next frame.
	NewPixelsPerPoint float32

	// WindowInteraction is the in-flight window-chrome drag/resize, if
	// any. Widget drags preempt it.
	WindowInteraction *WindowInteraction
}

// WindowInteraction describes an in-flight window-chrome interaction:
// moving or resizing a whole window rather than a widget inside it.
type WindowInteraction struct {
	Layer    LayerID
	StartPos Vec2
	StartRect Rect

	// Which edges are being dragged. All false means the window is moved.
	Left, Right, Top, Bottom bool
}

// IsMove reports whether the interaction moves the window (no edges).
func (w *WindowInteraction) IsMove() bool {
	return !w.Left && !w.Right && !w.Top && !w.Bottom
}

// Interaction is the global click/drag claim state. At most one widget
// holds the click claim and at most one the drag claim at any time; the
// Interaction Resolver is the single writer.
type Interaction struct {
	// ClickID is the widget being clicked (press seen, release pending).
	// Zero means none.
	ClickID ID

	// DragID is the widget being dragged. Zero means none.
	DragID ID

	// DragIsWindow is true when the drag claim belongs to window chrome.
	// Widget drags may usurp such a claim.
	DragIsWindow bool

	// ClickInterest is true if any widget this frame was hovered and
	// click-sensitive.
	ClickInterest bool

	// DragInterest is true if any widget this frame was hovered and
	// drag-sensitive.
	DragInterest bool
}

// IsUsingPointer reports whether some widget currently owns the pointer.
func (i *Interaction) IsUsingPointer() bool {
	return i.ClickID != 0 || i.DragID != 0
}

// beginFrame resets the per-frame interest flags and drops stale claims:
// a claim only lives while a pointer button is held.
func (i *Interaction) beginFrame(prevPointer *PointerState) {
	i.ClickInterest = false
	i.DragInterest = false
	if !prevPointer.AnyDown() {
		i.ClickID = 0
		i.DragID = 0
		i.DragIsWindow = false
	}
}

// focusState tracks which widget has keyboard focus and resolves tab
// navigation between the widgets that registered focus interest.
type focusState struct {
	id              ID
	idPreviousFrame ID

	// giveFocusToNext makes the next focus-interested widget take focus
	// (set when Tab is pressed while a widget is focused).
	giveFocusToNext bool

	// lastInterested is the most recent widget to register interest,
	// used to resolve Shift-Tab.
	lastInterested ID

	idNextFrame ID

	pressedTab      bool
	pressedShiftTab bool
}

// beginFrame inspects the new raw events for focus-related keys.
func (f *focusState) beginFrame(raw *RawInput) {
	f.idPreviousFrame = f.id
	if f.idNextFrame != 0 {
		f.id = f.idNextFrame
		f.idNextFrame = 0
	}
	f.giveFocusToNext = false
	f.lastInterested = 0
	f.pressedTab = false
	f.pressedShiftTab = false

	for _, e := range raw.Events {
		if e.Kind != EventKey || !e.Pressed {
			continue
		}
		switch e.Key {
		case KeyEscape:
			f.id = 0
		case KeyTab:
			if e.Modifiers.Shift {
				f.pressedShiftTab = true
			} else {
				f.pressedTab = true
			}
		}
	}
}

// interestedInFocus registers a widget as a tab stop this frame and moves
// focus when Tab/Shift-Tab was pressed.
func (f *focusState) interestedInFocus(id ID) {
	if f.giveFocusToNext {
		f.id = id
		f.giveFocusToNext = false
	} else if f.id == 0 && f.pressedTab {
		// Tab with nothing focused: focus the first tab stop.
		f.id = id
		f.pressedTab = false
	} else if f.id == id {
		if f.pressedTab {
			f.id = 0
			f.giveFocusToNext = true
			f.pressedTab = false
		} else if f.pressedShiftTab {
			f.idNextFrame = f.lastInterested
			f.pressedShiftTab = false
		}
	}
	f.lastInterested = id
}

// endFrame drops focus from widgets that were not registered this frame:
// a widget that disappears loses focus.
func (f *focusState) endFrame(usedIDs map[ID]Rect) {
	if f.id != 0 {
		if _, used := usedIDs[f.id]; !used {
			f.id = 0
		}
	}
}

// HasFocus reports whether the given widget holds keyboard focus.
func (m *Memory) HasFocus(id ID) bool {
	return m.focus.id == id && id != 0
}

// FocusedID returns the widget holding keyboard focus, or zero.
func (m *Memory) FocusedID() ID {
	return m.focus.id
}

// RequestFocus gives the widget keyboard focus.
func (m *Memory) RequestFocus(id ID) {
	m.focus.id = id
}

// SurrenderFocus drops keyboard focus if the given widget holds it.
func (m *Memory) SurrenderFocus(id ID) {
	if m.focus.id == id {
		m.focus.id = 0
	}
}

// StopTextInput drops keyboard focus entirely.
func (m *Memory) StopTextInput() {
	m.focus.id = 0
}

// InterestedInFocus registers a widget as a potential focus target this
// frame. Called by the Interaction Resolver; widget code normally does
// not call it directly.
func (m *Memory) InterestedInFocus(id ID) {
	m.focus.interestedInFocus(id)
}

// LayerIDAt returns the topmost interactable layer at the given position.
func (m *Memory) LayerIDAt(pos Vec2) (LayerID, bool) {
	return m.Areas.LayerIDAt(pos, m.Options.Interaction.ResizeGrabRadius)
}

// BeginFrame runs the Memory's frame-start bookkeeping. Called by the
// frame lifecycle controller before the new input state is derived, so it
// can observe both the previous frame's resolved input and the raw input.
func (m *Memory) BeginFrame(prevInput *InputState, newRaw *RawInput) {
	m.Interaction.beginFrame(&prevInput.Pointer)
	m.focus.beginFrame(newRaw)
}

// EndFrame runs the Memory's frame-end bookkeeping, given the resolved
// input and the set of all IDs registered this frame.
func (m *Memory) EndFrame(input *InputState, usedIDs map[ID]Rect) {
	m.focus.endFrame(usedIDs)
	m.Areas.endFrame()

	// A window interaction only lives while a button is held.
	if m.WindowInteraction != nil && !input.Pointer.AnyDown() {
		m.WindowInteraction = nil
	}
}

// Reset wipes all persistent state.
func (m *Memory) Reset() {
	*m = Memory{Options: m.Options}
}

// idTypeMap is a type-erased store keyed by (ID, concrete type), so
// heterogeneous widgets can persist state without a shared base type.
type idTypeMap struct {
	values map[idTypeKey]any
}

type idTypeKey struct {
	id  ID
	typ reflect.Type
}

// Len returns the number of stored values across all types.
func (m *idTypeMap) Len() int {
	return len(m.values)
}

func (m *idTypeMap) set(key idTypeKey, value any) {
	if m.values == nil {
		m.values = make(map[idTypeKey]any)
	}
	m.values[key] = value
}

// DataGet retrieves the T stored for the given widget.
func DataGet[T any](m *Memory, id ID) (T, bool) {
	var zero T
	v, ok := m.data.values[idTypeKey{id: id, typ: reflect.TypeOf(zero)}]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// DataGetOr retrieves the T stored for the given widget, or the default.
func DataGetOr[T any](m *Memory, id ID, def T) T {
	if v, ok := DataGet[T](m, id); ok {
		return v
	}
	return def
}

// DataSet stores a T for the given widget.
func DataSet[T any](m *Memory, id ID, value T) {
	m.data.set(idTypeKey{id: id, typ: reflect.TypeOf(value)}, value)
}

// DataRemove removes the T stored for the given widget.
func DataRemove[T any](m *Memory, id ID) {
	var zero T
	delete(m.data.values, idTypeKey{id: id, typ: reflect.TypeOf(zero)})
}

// DataCount returns how many widgets have a T stored.
func DataCount[T any](m *Memory) int {
	var zero T
	typ := reflect.TypeOf(zero)
	n := 0
	for key := range m.data.values {
		if key.typ == typ {
			n++
		}
	}
	return n
}

// DataRemoveByType removes every stored T.
func DataRemoveByType[T any](m *Memory) {
	var zero T
	typ := reflect.TypeOf(zero)
	for key := range m.data.values {
		if key.typ == typ {
			delete(m.data.values, key)
		}
	}
}

// DataLen returns the total number of stored widget states.
func (m *Memory) DataLen() int {
	return m.data.Len()
}
