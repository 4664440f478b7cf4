package gui

// Sense declares what kind of pointer interaction a widget is interested in.
type Sense struct {
	// Click means the widget reacts to being clicked.
	Click bool

	// Drag means the widget reacts to being dragged.
	Drag bool

	// Focusable means the widget can be given keyboard focus,
	// e.g. via tab navigation.
	Focusable bool
}

// SenseHover senses nothing: the widget only wants to know if it is hovered.
func SenseHover() Sense {
	return Sense{}
}

// SenseFocusable senses focus only, e.g. a label read by a screen reader.
func SenseFocusable() Sense {
	return Sense{Focusable: true}
}

// SenseClick senses clicks.
func SenseClick() Sense {
	return Sense{Click: true, Focusable: true}
}

// SenseDrag senses drags.
func SenseDrag() Sense {
	return Sense{Drag: true, Focusable: true}
}

// SenseClickAndDrag senses both clicks and drags.
func SenseClickAndDrag() Sense {
	return Sense{Click: true, Drag: true, Focusable: true}
}

// Interactive reports whether the widget reacts to the pointer at all.
func (s Sense) Interactive() bool {
	return s.Click || s.Drag
}

// Union returns a Sense interested in everything either operand is
// interested in.
func (s Sense) Union(other Sense) Sense {
	return Sense{
		Click:     s.Click || other.Click,
		Drag:      s.Drag || other.Drag,
		Focusable: s.Focusable || other.Focusable,
	}
}
