package gui

// On-screen error reporting for programming mistakes, e.g. two widgets
// registering the same ID in the same frame. Errors are painted on the
// topmost layer so they are never hidden behind the offending widget.

const idClashExplanation = "Widget IDs must be unique. Derive child IDs with ID.With to disambiguate repeated widgets."

var (
	debugErrorFill   = RGBA(128, 0, 0, 192)
	debugErrorStroke = ColorRed
	debugErrorText   = ColorWhite
)

// debugError paints an error message at the given position. If the
// pointer hovers the message, an explanation is painted below it.
func (c CtxRef) debugError(pos Vec2, text string) Rect {
	rect := c.paintError(pos, text)
	if hoverPos, ok := c.HoverPos(); ok && rect.Contains(hoverPos) {
		below := Vec2{X: rect.Min.X, Y: rect.Max.Y + 4}
		c.paintError(below, idClashExplanation)
	}
	return rect
}

func (c CtxRef) paintError(pos Vec2, text string) Rect {
	galley := c.LayoutText(TextStyleMonospace, text)
	rect := RectFromMinSize(pos, galley.Size).Expand(2)
	clip := c.ScreenRect()
	c.PaintShape(DebugLayer(), clip, RectShape{
		Rect:   rect,
		Fill:   debugErrorFill,
		Stroke: Stroke{Width: 1, Color: debugErrorStroke},
	})
	c.PaintShape(DebugLayer(), clip, TextShape{
		Pos:    pos,
		Galley: galley,
		Color:  debugErrorText,
	})
	return rect
}
