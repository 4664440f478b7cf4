package gui

// CursorIcon tells the platform which mouse cursor to show.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorPointingHand
	CursorResizeHorizontal
	CursorResizeVertical
	CursorResizeNeSw
	CursorResizeNwSe
	CursorText
	CursorGrab
	CursorGrabbing
	CursorNotAllowed
)

// Output is what the caller must act on after a frame: scheduling,
// clipboard, cursor shape and navigation side effects.
type Output struct {
	// NeedsRepaint is true when another frame should be scheduled right
	// away, even without new input (animations, pending events).
	NeedsRepaint bool

	// CursorIcon to show this frame.
	CursorIcon CursorIcon

	// OpenURL, when non-empty, is a link the user activated.
	OpenURL string

	// CopiedText, when non-empty, should be put on the clipboard.
	CopiedText string

	// Events announce interaction outcomes for assistive technology.
	Events []OutputEvent
}

// take returns the accumulated output and resets the accumulator.
func (o *Output) take() Output {
	out := *o
	*o = Output{}
	return out
}

// OutputEventKind tags an output event.
type OutputEventKind int

const (
	// OutputEventClicked: the widget was activated.
	OutputEventClicked OutputEventKind = iota
	// OutputEventFocusGained: the widget received keyboard focus.
	OutputEventFocusGained
)

// OutputEvent is one interaction outcome, mainly for screen readers.
type OutputEvent struct {
	Kind OutputEventKind
	ID   ID
}
