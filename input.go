package gui

// MaxClickDuration is how long a press may last and still count as a click.
const MaxClickDuration = 0.6 // seconds

// MaxDoubleClickDelay is the longest pause between two clicks that still
// counts as a double-click.
const MaxDoubleClickDelay = 0.3 // seconds

// maxClickDist is how far the pointer may move between press and release
// (or between two clicks) and still count as a (double-)click.
const maxClickDist = 6.0 // points

// PointerButton identifies a mouse button or equivalent.
type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
	PointerButtonCount
)

// Key represents a keyboard key the core cares about.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyZ
	KeyCount
)

// Modifiers holds the state of the modifier keys.
type Modifiers struct {
	Alt     bool
	Ctrl    bool
	Shift   bool
	Command bool
}

// EventKind tags a raw input event.
type EventKind int

const (
	// EventPointerMoved: the pointer moved to Event.Pos.
	EventPointerMoved EventKind = iota
	// EventPointerButton: Event.Button was pressed or released at Event.Pos.
	EventPointerButton
	// EventPointerGone: the pointer left the window / was lifted.
	EventPointerGone
	// EventKey: Event.Key was pressed or released.
	EventKey
	// EventText: Event.Text was typed.
	EventText
	// EventScroll: the user scrolled by Event.Scroll.
	EventScroll
	// EventCopy: the user issued a copy command.
	EventCopy
	// EventCut: the user issued a cut command.
	EventCut
)

// Event is one raw input event, tagged by Kind. Only the fields relevant
// to the kind are set.
type Event struct {
	Kind      EventKind
	Pos       Vec2
	Button    PointerButton
	Pressed   bool
	Key       Key
	Text      string
	Scroll    Vec2
	Modifiers Modifiers
}

// RawInput is what the platform integration feeds the core each frame.
// Zero values mean "unchanged": a zero ScreenRect keeps the previous
// screen rect, a zero PixelsPerPoint keeps the previous scale factor,
// and HasTime=false makes the core advance time by PredictedDT.
type RawInput struct {
	// Events in chronological arrival order.
	Events []Event

	// ScreenRect is the position and size of the area the core may use.
	ScreenRect Rect

	// PixelsPerPoint is the device scale factor (physical pixels per
	// logical point).
	PixelsPerPoint float32

	// Time in seconds, monotonically increasing. Only read when HasTime.
	Time    float64
	HasTime bool

	// PredictedDT is the expected duration of this frame, in seconds.
	// Zero means 1/60.
	PredictedDT float32

	// Modifiers state at the start of the frame.
	Modifiers Modifiers
}

// takeEvents returns the raw events and leaves the RawInput empty, so a
// stored copy does not retain one-shot events.
func (r *RawInput) takeEvents() []Event {
	events := r.Events
	r.Events = nil
	return events
}

// InputState is the resolved input for the current frame: the previous
// frame's state merged with this frame's RawInput. It is rebuilt by the
// frame lifecycle controller at the start of every frame.
type InputState struct {
	// Raw is the raw input this state was derived from, with one-shot
	// event lists drained.
	Raw RawInput

	// Pointer holds resolved pointer (mouse/touch) state.
	Pointer PointerState

	// ScrollDelta is the accumulated scroll this frame, in points.
	ScrollDelta Vec2

	// ScreenRect is the area the core may use, in points.
	ScreenRect Rect

	// pixelsPerPoint is the current device scale factor.
	pixelsPerPoint float32

	// Time in seconds since the start of the run.
	Time float64

	// UnstableDT is the actual duration of the previous frame.
	// Unstable because it varies; prefer PredictedDT for animation.
	UnstableDT float32

	// PredictedDT is the expected duration of the current frame.
	PredictedDT float32

	// Modifiers state this frame.
	Modifiers Modifiers

	// Events this frame, in arrival order.
	Events []Event

	keysDown map[Key]bool
}

// newInputState returns the before-first-frame input state.
func newInputState() InputState {
	return InputState{
		ScreenRect:     RectFromMinSize(Vec2{}, Vec2{X: 10000, Y: 10000}),
		pixelsPerPoint: 1,
		PredictedDT:    1.0 / 60.0,
		keysDown:       make(map[Key]bool),
	}
}

// beginFrame consumes the previous state and the new raw input and returns
// the state for the new frame. One-shot event lists are cleared; persistent
// pointer position and button state are carried forward.
func (s InputState) beginFrame(raw RawInput) InputState {
	var time float64
	if raw.HasTime {
		time = raw.Time
	} else {
		dt := raw.PredictedDT
		if dt <= 0 {
			dt = 1.0 / 60.0
		}
		time = s.Time + float64(dt)
	}
	unstableDT := float32(time - s.Time)

	screenRect := s.ScreenRect
	if raw.ScreenRect.IsNonNegative() && raw.ScreenRect.Size() != (Vec2{}) {
		screenRect = raw.ScreenRect
	}
	pixelsPerPoint := s.pixelsPerPoint
	if raw.PixelsPerPoint > 0 {
		pixelsPerPoint = raw.PixelsPerPoint
	}
	predictedDT := raw.PredictedDT
	if predictedDT <= 0 {
		predictedDT = 1.0 / 60.0
	}

	events := raw.takeEvents()

	keysDown := s.keysDown
	if keysDown == nil {
		keysDown = make(map[Key]bool)
	}
	scroll := Vec2{}
	for _, e := range events {
		switch e.Kind {
		case EventKey:
			if e.Pressed {
				keysDown[e.Key] = true
			} else {
				delete(keysDown, e.Key)
			}
		case EventScroll:
			scroll = scroll.Add(e.Scroll)
		}
	}

	pointer := s.Pointer.beginFrame(time, events)

	return InputState{
		Raw:            raw,
		Pointer:        pointer,
		ScrollDelta:    scroll,
		ScreenRect:     screenRect,
		pixelsPerPoint: pixelsPerPoint,
		Time:           time,
		UnstableDT:     unstableDT,
		PredictedDT:    predictedDT,
		Modifiers:      raw.Modifiers,
		Events:         events,
		keysDown:       keysDown,
	}
}

// PixelsPerPoint returns the current device scale factor.
func (s *InputState) PixelsPerPoint() float32 {
	return s.pixelsPerPoint
}

// KeyPressed reports whether the key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	for _, e := range s.Events {
		if e.Kind == EventKey && e.Key == key && e.Pressed {
			return true
		}
	}
	return false
}

// KeyDown reports whether the key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	return s.keysDown[key]
}

// wantsRepaint reports whether this frame's input alone warrants painting
// another frame right after (pending events, movement, scrolling).
func (s *InputState) wantsRepaint() bool {
	return len(s.Events) > 0 || s.ScrollDelta != (Vec2{}) || s.Pointer.Delta != (Vec2{})
}

// PointerEventKind tags a resolved pointer event.
type PointerEventKind int

const (
	PointerMoved PointerEventKind = iota
	PointerPressed
	PointerReleased
)

// Click describes a completed click: a press and release on the same spot
// within [MaxClickDuration].
type Click struct {
	Pos       Vec2
	Button    PointerButton
	Count     int // 1 for single click, 2 for double
	Modifiers Modifiers
}

// IsDouble reports whether the click was classified as a double-click.
func (c Click) IsDouble() bool {
	return c.Count >= 2
}

// PointerEvent is a resolved pointer event for this frame. For
// PointerReleased events, Click is set when the release completed a click.
type PointerEvent struct {
	Kind     PointerEventKind
	Pos      Vec2
	Button   PointerButton
	Click    Click
	HasClick bool
}

// PointerState is the resolved pointer (mouse/touch) state for one frame.
type PointerState struct {
	// Events this frame, in arrival order.
	Events []PointerEvent

	// Delta is how much the pointer moved compared to last frame.
	Delta Vec2

	latestPos    Vec2
	hasLatestPos bool

	// interactPos is like latestPos but survives EventPointerGone, so
	// click/drag handling still has a position on touch screens.
	interactPos    Vec2
	hasInteractPos bool

	down [PointerButtonCount]bool

	pressOrigin    Vec2
	pressStartTime float64

	lastClickTime float64
	lastClickPos  Vec2

	// history is a sliding window of recent time-stamped positions
	// backing Velocity.
	history  []pointerSample
	velocity Vec2

	time float64
}

// pointerHistoryDuration is how many seconds of positions the velocity
// window keeps.
const pointerHistoryDuration = 0.1

type pointerSample struct {
	time float64
	pos  Vec2
}

// beginFrame consumes the previous pointer state and the frame's events.
func (p PointerState) beginFrame(time float64, events []Event) PointerState {
	prevPos := p.latestPos
	hadPos := p.hasLatestPos

	p.time = time
	p.Events = nil
	p.Delta = Vec2{}

	for _, e := range events {
		switch e.Kind {
		case EventPointerMoved:
			p.latestPos = e.Pos
			p.hasLatestPos = true
			p.interactPos = e.Pos
			p.hasInteractPos = true
			p.Events = append(p.Events, PointerEvent{Kind: PointerMoved, Pos: e.Pos})

		case EventPointerButton:
			p.latestPos = e.Pos
			p.hasLatestPos = true
			p.interactPos = e.Pos
			p.hasInteractPos = true

			if e.Pressed {
				if !p.down[e.Button] {
					p.down[e.Button] = true
					p.pressOrigin = e.Pos
					p.pressStartTime = time
					p.Events = append(p.Events, PointerEvent{
						Kind:   PointerPressed,
						Pos:    e.Pos,
						Button: e.Button,
					})
				}
			} else if p.down[e.Button] {
				p.down[e.Button] = false

				ev := PointerEvent{Kind: PointerReleased, Pos: e.Pos, Button: e.Button}
				clickable := time-p.pressStartTime < MaxClickDuration &&
					e.Pos.Dist(p.pressOrigin) < maxClickDist
				if clickable {
					count := 1
					if time-p.lastClickTime < MaxDoubleClickDelay &&
						e.Pos.Dist(p.lastClickPos) < maxClickDist {
						count = 2
					}
					ev.Click = Click{
						Pos:       e.Pos,
						Button:    e.Button,
						Count:     count,
						Modifiers: e.Modifiers,
					}
					ev.HasClick = true
					p.lastClickTime = time
					p.lastClickPos = e.Pos
				}
				p.Events = append(p.Events, ev)
			}

		case EventPointerGone:
			p.hasLatestPos = false
		}
	}

	if hadPos && p.hasLatestPos {
		p.Delta = p.latestPos.Sub(prevPos)
	}

	if p.hasLatestPos {
		p.history = append(p.history, pointerSample{time: time, pos: p.latestPos})
	}
	cutoff := time - pointerHistoryDuration
	for len(p.history) > 0 && p.history[0].time < cutoff {
		p.history = p.history[1:]
	}
	p.velocity = Vec2{}
	if n := len(p.history); n >= 2 {
		dt := float32(p.history[n-1].time - p.history[0].time)
		if dt > 0 {
			p.velocity = p.history[n-1].pos.Sub(p.history[0].pos).Mul(1 / dt)
		}
	}

	return p
}

// LatestPos returns the last known pointer position.
// ok is false when the pointer has left the window.
func (p *PointerState) LatestPos() (pos Vec2, ok bool) {
	return p.latestPos, p.hasLatestPos
}

// HoverPos returns the position to use for hover detection, if any.
func (p *PointerState) HoverPos() (pos Vec2, ok bool) {
	return p.latestPos, p.hasLatestPos
}

// InteractPos returns the position to use for click and drag handling.
// Unlike HoverPos it survives the pointer going away mid-gesture.
func (p *PointerState) InteractPos() (pos Vec2, ok bool) {
	return p.interactPos, p.hasInteractPos
}

// Velocity returns how fast the pointer is moving, in points per
// second, smoothed over a short window of recent positions. Zero when
// the pointer is still or its position is unknown.
func (p *PointerState) Velocity() Vec2 {
	return p.velocity
}

// Down reports whether the given button is currently held.
func (p *PointerState) Down(button PointerButton) bool {
	return p.down[button]
}

// AnyDown reports whether any pointer button is currently held.
func (p *PointerState) AnyDown() bool {
	for _, d := range p.down {
		if d {
			return true
		}
	}
	return false
}

// AnyPressed reports whether any button was pressed this frame.
func (p *PointerState) AnyPressed() bool {
	for _, e := range p.Events {
		if e.Kind == PointerPressed {
			return true
		}
	}
	return false
}

// AnyReleased reports whether any button was released this frame.
func (p *PointerState) AnyReleased() bool {
	for _, e := range p.Events {
		if e.Kind == PointerReleased {
			return true
		}
	}
	return false
}

// AnyClick reports whether any click completed this frame.
func (p *PointerState) AnyClick() bool {
	for _, e := range p.Events {
		if e.HasClick {
			return true
		}
	}
	return false
}
