package gui

import (
	"log/slog"
	"os"
)

// LogLevel controls the package's debug logging.
// Raise to slog.LevelDebug to trace interaction resolution.
var LogLevel = &slog.LevelVar{}

// guiLogger is the logger for GUI context debugging.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel}))

func init() {
	LogLevel.Set(slog.LevelInfo)
}

// Context is the singular per-run state owner: input, memory, transient
// frame state, the per-layer draw lists and the frame output. You never
// hold a Context directly; access goes through a [CtxRef].
type Context struct {
	// fonts is nil until the start of the first frame, because the
	// proper pixels-per-point is unknown until then.
	fonts *Fonts

	memory     Memory
	animation  animationManager
	input      InputState
	frameState frameState

	// graphics collects the frame's shapes per layer.
	graphics GraphicLayers

	// output accumulates what the caller must act on after the frame.
	output Output

	paintStats PaintStats

	// repaintRequests: while positive, the caller must keep scheduling
	// frames. Decremented once per end-frame.
	repaintRequests int
}

// contextCell owns one Context behind a runtime borrow check.
// borrows is 0 when free, -1 while mutably borrowed, >0 while shared.
type contextCell struct {
	ctx     Context
	borrows int
}

// CtxRef is your handle to the GUI: a cheaply-copyable reference to one
// shared [Context]. All copies observe the same state.
//
// Mutual exclusion is checked at runtime: every method acquires and
// releases its access within its own body and never across a call back
// into caller-supplied closures. Reentering mutably (e.g. calling Run
// from inside Run's closure on the same handle, while a borrow is held)
// is a programming error and panics rather than corrupting state.
//
// The model is single-threaded: CtxRef is not safe for concurrent use
// from multiple goroutines.
type CtxRef struct {
	cell *contextCell
}

// CtxOption configures a context handle at construction time.
type CtxOption func(*Context)

// WithOptions seeds the persistent options instead of the defaults.
func WithOptions(opts Options) CtxOption {
	return func(ctx *Context) { ctx.memory.Options = opts }
}

// WithFontDefinitions installs font definitions before the first frame.
func WithFontDefinitions(definitions FontDefinitions) CtxOption {
	return func(ctx *Context) { ctx.memory.NewFontDefinitions = &definitions }
}

// NewCtxRef creates a fresh context handle.
func NewCtxRef(opts ...CtxOption) CtxRef {
	cell := &contextCell{
		ctx: Context{
			memory: Memory{Options: DefaultOptions()},
			input:  newInputState(),
			// Start with painting an extra frame to compensate for some
			// widgets that take two frames before they settle.
			repaintRequests: 1,
		},
	}
	for _, opt := range opts {
		opt(&cell.ctx)
	}
	return CtxRef{cell: cell}
}

// Eq reports whether two handles reference the same underlying Context.
func (c CtxRef) Eq(other CtxRef) bool {
	return c.cell == other.cell
}

func (c CtxRef) borrowMut() *Context {
	if c.cell.borrows != 0 {
		panic("gui: Context is already borrowed; do not hold an access across a call back into the context")
	}
	c.cell.borrows = -1
	return &c.cell.ctx
}

func (c CtxRef) releaseMut() {
	c.cell.borrows = 0
}

func (c CtxRef) borrow() *Context {
	if c.cell.borrows < 0 {
		panic("gui: Context is already mutably borrowed; do not hold an access across a call back into the context")
	}
	c.cell.borrows++
	return &c.cell.ctx
}

func (c CtxRef) release() {
	c.cell.borrows--
}

// Run runs the UI code for one frame: it merges the raw input, resets the
// transient frame state, runs runUI, and returns what has happened this
// frame together with the shapes to paint. Feed the shapes through
// [CtxRef.Tessellate] before rendering, and honor Output.NeedsRepaint
// when scheduling the next frame.
func (c CtxRef) Run(raw RawInput, runUI func(CtxRef)) (Output, []ClippedShape) {
	ctx := c.borrowMut()
	ctx.beginFrame(raw)
	c.releaseMut()

	if runUI != nil {
		runUI(c)
	}

	return c.endFrame()
}

// beginFrame merges the new raw input, resets transient state and
// reconciles the font cache.
func (ctx *Context) beginFrame(raw RawInput) {
	// Memory observes the previous resolved input plus the new raw
	// input, for bookkeeping that depends on transition detection.
	ctx.memory.BeginFrame(&ctx.input, &raw)

	input := ctx.input
	if ctx.memory.NewPixelsPerPoint > 0 {
		input.pixelsPerPoint = ctx.memory.NewPixelsPerPoint
		ctx.memory.NewPixelsPerPoint = 0
	}
	ctx.input = input.beginFrame(raw)

	ctx.frameState.beginFrame(&ctx.input)

	ctx.updateFonts(ctx.input.PixelsPerPoint())

	// Register the whole screen as the background layer's area, so
	// clicks outside all panels are still attributable to a layer.
	screen := ctx.input.ScreenRect
	ctx.memory.Areas.SetState(BackgroundLayer(), AreaState{
		Pos:          screen.Min,
		Size:         screen.Size(),
		Interactable: true,
	})
}

// updateFonts rebuilds the font cache if there is none yet, the caller
// supplied new definitions, or the device scale factor changed.
// Previously supplied definitions are preserved when no new ones came in.
func (ctx *Context) updateFonts(pixelsPerPoint float32) {
	newDefinitions := ctx.memory.NewFontDefinitions
	ctx.memory.NewFontDefinitions = nil

	pppChanged := ctx.fonts == nil ||
		absf(ctx.fonts.PixelsPerPoint()-pixelsPerPoint) > 1e-3

	if ctx.fonts == nil || newDefinitions != nil || pppChanged {
		definitions := DefaultFontDefinitions()
		switch {
		case newDefinitions != nil:
			definitions = *newDefinitions
		case ctx.fonts != nil:
			definitions = ctx.fonts.Definitions()
		}
		ctx.fonts = NewFonts(pixelsPerPoint, definitions)
	}
}

// endFrame finishes the frame and returns its Output plus all painted
// shapes, flattened in the memory-defined layer order.
func (c CtxRef) endFrame() (Output, []ClippedShape) {
	ctx := c.borrowMut()
	defer c.releaseMut()

	if ctx.input.wantsRepaint() {
		ctx.repaintRequests = repaintRequestFrames
	}

	ctx.memory.EndFrame(&ctx.input, ctx.frameState.usedIDs)
	ctx.fonts.EndFrame()

	output := ctx.output.take()
	if ctx.repaintRequests > 0 {
		ctx.repaintRequests--
		output.NeedsRepaint = true
	}

	shapes := ctx.graphics.Drain(ctx.memory.Areas.Order())
	return output, shapes
}

// repaintRequestFrames is how many frames a repaint request stays alive:
// two, so a signal raised late in a frame still survives one full frame.
const repaintRequestFrames = 2

// RequestRepaint asks the caller to schedule another frame right after
// this one, e.g. because an animation is running. Call as often as you
// like; only one repaint is issued.
func (c CtxRef) RequestRepaint() {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.repaintRequests = repaintRequestFrames
}

// Tessellate turns the frame's shapes into triangle meshes, using the
// current tessellation options, scale factor and font atlas size.
// Must not be called before the first frame has begun.
func (c CtxRef) Tessellate(shapes []ClippedShape) []ClippedMesh {
	ctx := c.borrowMut()
	defer c.releaseMut()
	if ctx.fonts == nil {
		panic("gui: Tessellate called before the first call to Run")
	}

	options := ctx.memory.Options.Tessellation
	options.PixelsPerPoint = ctx.input.PixelsPerPoint()
	options.AASize = 1.0 / options.PixelsPerPoint

	stats := PaintStatsFromShapes(shapes)
	meshes := TessellateShapes(shapes, options, ctx.fonts.Texture().Size())
	ctx.paintStats = stats.WithClippedMeshes(meshes)
	return meshes
}

// ---------------------------------------------------------------------
// Interaction

// Interact resolves hover/click/drag/focus for one widget region.
// This is the single entry point through which all interaction state is
// mutated; widget code calls it once per widget per frame.
func (c CtxRef) Interact(clipRect Rect, itemSpacing Vec2, layer LayerID, id ID, rect Rect, sense Sense, enabled bool) Response {
	iopts := c.interactionOptions()

	// Fatten narrow targets to make them easier to hit, without letting
	// adjacent hit rectangles touch.
	expansion := itemSpacing.Mul(0.5).
		Sub(Splat(iopts.InteractGap)).
		Clamp(Vec2{}, Splat(iopts.MaxInteractExpansion))
	interactRect := rect.Expand2(expansion)

	hovered := c.RectContainsPointer(layer, clipRect.Intersect(interactRect))
	return c.InteractWithHovered(layer, id, rect, sense, enabled, hovered)
}

// InteractWithHovered is [CtxRef.Interact] for callers that computed
// hover themselves.
func (c CtxRef) InteractWithHovered(layer LayerID, id ID, rect Rect, sense Sense, enabled bool, hovered bool) Response {
	hovered = hovered && enabled // can't even hover disabled widgets

	response := Response{
		Ctx:     c,
		LayerID: layer,
		ID:      id,
		Rect:    rect,
		Sense:   sense,
		Enabled: enabled,
		Hovered: hovered,
	}

	if !enabled || !sense.Focusable || !layer.AllowInteraction() {
		// Not interested in or allowed input.
		c.SurrenderFocus(id)
		return response
	}

	c.RegisterInteractionID(id, rect)

	clickedElsewhere := c.clickedOutside(rect)

	ctx := c.borrowMut()
	defer c.releaseMut()
	memory := &ctx.memory

	// We only want to focus labels if the screen reader is on.
	interestedInFocus := sense.Interactive() ||
		(sense.Focusable && memory.Options.ScreenReader)
	if interestedInFocus {
		memory.InterestedInFocus(id)
	}

	if sense.Click && memory.HasFocus(id) &&
		(ctx.input.KeyPressed(KeySpace) || ctx.input.KeyPressed(KeyEnter)) {
		// Space/Enter works like a primary click for focused widgets.
		response.Clicked[PointerPrimary] = true
		ctx.output.Events = append(ctx.output.Events, OutputEvent{Kind: OutputEventClicked, ID: id})
	}

	if sense.Click || sense.Drag {
		memory.Interaction.ClickInterest = memory.Interaction.ClickInterest || (hovered && sense.Click)
		memory.Interaction.DragInterest = memory.Interaction.DragInterest || (hovered && sense.Drag)

		response.Dragged = memory.Interaction.DragID == id
		response.IsPointerButtonDownOn = memory.Interaction.ClickID == id || response.Dragged

		for _, ev := range ctx.input.Pointer.Events {
			switch ev.Kind {
			case PointerMoved:
				// Only affects hover, already computed.

			case PointerPressed:
				if !hovered {
					break
				}
				if sense.Click && memory.Interaction.ClickID == 0 {
					// Potential start of a click.
					memory.Interaction.ClickID = id
					response.IsPointerButtonDownOn = true
				}
				// Windows have low priority on dragging: a widget drag
				// steals the claim from window chrome, because window
				// interaction is resolved before content layout.
				if sense.Drag && (memory.Interaction.DragID == 0 || memory.Interaction.DragIsWindow) {
					// Potential start of a drag.
					memory.Interaction.DragID = id
					memory.Interaction.DragIsWindow = false
					memory.WindowInteraction = nil // stop moving windows, if any
					response.IsPointerButtonDownOn = true
					response.Dragged = true
				}

			case PointerReleased:
				response.DragReleased = response.Dragged
				response.Dragged = false
				if hovered && response.IsPointerButtonDownOn && ev.HasClick {
					response.Clicked[ev.Click.Button] = true
					response.DoubleClicked[ev.Click.Button] = ev.Click.IsDouble()
				}
			}
		}
	}

	if response.IsPointerButtonDownOn {
		if pos, ok := ctx.input.Pointer.InteractPos(); ok {
			response.InteractPointerPos = pos
			response.HasInteractPointerPos = true
		}
	}

	if ctx.input.Pointer.AnyDown() {
		// Don't hover widgets while interacting with another one.
		response.Hovered = response.Hovered && response.IsPointerButtonDownOn
	}

	if memory.HasFocus(id) && clickedElsewhere {
		memory.SurrenderFocus(id)
	}

	return response
}

// RegisterInteractionID records an (id, rect) registration for this
// frame. A duplicate ID with a non-overlapping rectangle is a caller
// error, surfaced as an on-screen debug overlay; processing continues
// with both registrations independently interactive.
func (c CtxRef) RegisterInteractionID(id ID, newRect Rect) {
	ctx := c.borrowMut()
	prevRect, clash := ctx.frameState.registerID(id, newRect)
	c.releaseMut()
	if !clash {
		return
	}

	// Reusing an ID is fine when one rect wraps the other, e.g. a frame
	// drawn around an interactive widget.
	if prevRect.Expand(0.1).ContainsRect(newRect) || newRect.Expand(0.1).ContainsRect(prevRect) {
		return
	}

	guiLogger.Warn("widget ID used twice with different rects",
		"id", id, "prev", prevRect, "new", newRect)

	if prevRect.Min.Dist(newRect.Min) < 4 {
		c.debugError(newRect.Min, "Double use of ID "+id.String())
	} else {
		c.debugError(prevRect.Min, "First use of ID "+id.String())
		c.debugError(newRect.Min, "Second use of ID "+id.String())
	}
}

// clickedOutside reports whether the pointer clicked outside the given
// rect this frame.
func (c CtxRef) clickedOutside(rect Rect) bool {
	ctx := c.borrow()
	defer c.release()
	for _, ev := range ctx.input.Pointer.Events {
		if ev.HasClick && !rect.Contains(ev.Click.Pos) {
			return true
		}
	}
	return false
}

// RectContainsPointer reports whether the pointer is inside the rect AND
// the given layer is the topmost layer at that position.
func (c CtxRef) RectContainsPointer(layer LayerID, rect Rect) bool {
	ctx := c.borrow()
	pos, ok := ctx.input.Pointer.InteractPos()
	c.release()
	if !ok || !rect.Contains(pos) {
		return false
	}
	top, found := c.LayerIDAt(pos)
	return found && top == layer
}

// LayerIDAt returns the topmost interactable layer at the given position.
func (c CtxRef) LayerIDAt(pos Vec2) (LayerID, bool) {
	ctx := c.borrow()
	defer c.release()
	return ctx.memory.LayerIDAt(pos)
}

func (c CtxRef) interactionOptions() InteractionOptions {
	ctx := c.borrow()
	defer c.release()
	return ctx.memory.Options.Interaction
}

// ---------------------------------------------------------------------
// Scoped state access

// WithMemory gives scoped access to the persistent Memory. The pointer
// must not be retained past the closure.
func (c CtxRef) WithMemory(f func(*Memory)) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	f(&ctx.memory)
}

// WithInput gives scoped read access to this frame's resolved input.
// The pointer must not be retained past the closure.
func (c CtxRef) WithInput(f func(*InputState)) {
	ctx := c.borrow()
	defer c.release()
	f(&ctx.input)
}

// PaintShape adds one shape to a layer's paint list, clipped to clipRect.
func (c CtxRef) PaintShape(layer LayerID, clipRect Rect, shape Shape) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.graphics.List(layer).Add(clipRect, shape)
}

// TranslateLayer moves all the graphics already painted on a layer.
// Can be used to implement drag-and-drop previews.
func (c CtxRef) TranslateLayer(layer LayerID, delta Vec2) {
	if delta == (Vec2{}) {
		return
	}
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.graphics.List(layer).Translate(delta)
}

// ---------------------------------------------------------------------
// Input queries

// HoverPos returns the pointer position to use for hover effects like
// tooltips, if the pointer is in the window.
func (c CtxRef) HoverPos() (Vec2, bool) {
	ctx := c.borrow()
	defer c.release()
	return ctx.input.Pointer.HoverPos()
}

// InteractPos returns the pointer position to use when handling clicks
// and drags.
func (c CtxRef) InteractPos() (Vec2, bool) {
	ctx := c.borrow()
	defer c.release()
	return ctx.input.Pointer.InteractPos()
}

// ScreenRect returns the area the core may use this frame.
func (c CtxRef) ScreenRect() Rect {
	ctx := c.borrow()
	defer c.release()
	return ctx.input.ScreenRect
}

// PixelsPerPoint returns the number of physical pixels per logical point.
func (c CtxRef) PixelsPerPoint() float32 {
	ctx := c.borrow()
	defer c.release()
	return ctx.input.PixelsPerPoint()
}

// SetPixelsPerPoint overrides the scale factor starting next frame.
// Note that the platform may overwrite this again via RawInput.
func (c CtxRef) SetPixelsPerPoint(pixelsPerPoint float32) {
	if pixelsPerPoint != c.PixelsPerPoint() {
		c.RequestRepaint()
	}
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.memory.NewPixelsPerPoint = pixelsPerPoint
}

// ---------------------------------------------------------------------
// Fonts

// SetFonts installs new font definitions, active from the next frame.
func (c CtxRef) SetFonts(definitions FontDefinitions) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	if ctx.fonts != nil && ctx.fonts.Definitions().Equal(definitions) {
		return // no change; save us from rebuilding the atlas
	}
	ctx.memory.NewFontDefinitions = &definitions
}

// fontsOrPanic returns the font cache.
// Not valid until the first call to Run, since the proper
// pixels-per-point is unknown until then.
func (ctx *Context) fontsOrPanic() *Fonts {
	if ctx.fonts == nil {
		panic("gui: no fonts available until the first call to Run")
	}
	return ctx.fonts
}

// LayoutText lays out text in the given style, using the frame's font
// cache. Must not be called before the first frame has begun.
func (c CtxRef) LayoutText(style TextStyle, text string) *Galley {
	ctx := c.borrowMut()
	defer c.releaseMut()
	return ctx.fontsOrPanic().Layout(style, text)
}

// FontTexture returns the font atlas texture, containing all rasterized
// glyphs. Must not be called before the first frame has begun.
func (c CtxRef) FontTexture() *Texture {
	ctx := c.borrow()
	defer c.release()
	return ctx.fontsOrPanic().Texture()
}

// RowHeight returns the line height of the given text style, in points.
func (c CtxRef) RowHeight(style TextStyle) float32 {
	ctx := c.borrow()
	defer c.release()
	return ctx.fontsOrPanic().RowHeight(style)
}

// NumGalleysInCache returns the number of cached text layouts.
func (c CtxRef) NumGalleysInCache() int {
	ctx := c.borrow()
	defer c.release()
	return ctx.fontsOrPanic().NumGalleysInCache()
}

// ---------------------------------------------------------------------
// Focus

// HasFocus reports whether the widget holds keyboard focus.
func (c CtxRef) HasFocus(id ID) bool {
	ctx := c.borrow()
	defer c.release()
	return ctx.memory.HasFocus(id)
}

// RequestFocus gives the widget keyboard focus.
func (c CtxRef) RequestFocus(id ID) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	had := ctx.memory.HasFocus(id)
	ctx.memory.RequestFocus(id)
	if !had {
		ctx.output.Events = append(ctx.output.Events, OutputEvent{Kind: OutputEventFocusGained, ID: id})
	}
}

// SurrenderFocus drops keyboard focus if the widget holds it.
func (c CtxRef) SurrenderFocus(id ID) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.memory.SurrenderFocus(id)
}

// ---------------------------------------------------------------------
// Areas and screen space

// AvailableRect returns how much space is still available after panels
// have been added: the background area windows are constrained to.
func (c CtxRef) AvailableRect() Rect {
	ctx := c.borrow()
	defer c.release()
	return ctx.frameState.AvailableRect()
}

// AllocateLeftPanel claims a panel rectangle on the left edge of the
// available area.
func (c CtxRef) AllocateLeftPanel(rect Rect) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.frameState.allocateLeftPanel(rect)
}

// AllocateTopPanel claims a panel rectangle on the top edge of the
// available area.
func (c CtxRef) AllocateTopPanel(rect Rect) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.frameState.allocateTopPanel(rect)
}

// AllocateCentralPanel claims all remaining available space.
func (c CtxRef) AllocateCentralPanel(rect Rect) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.frameState.allocateCentralPanel(rect)
}

// UsedRect returns how much space panels and visible windows use.
func (c CtxRef) UsedRect() Rect {
	ctx := c.borrow()
	defer c.release()
	used := ctx.frameState.usedByPanels
	for _, window := range ctx.memory.Areas.VisibleWindows() {
		used = used.Union(window.Rect())
	}
	return used
}

// UsedSize returns the size of [CtxRef.UsedRect] measured from origin.
// You can shrink your window to this and still fit all components.
func (c CtxRef) UsedSize() Vec2 {
	return c.UsedRect().Max.Sub(Vec2{})
}

// IsPointerOverArea reports whether the pointer is over any GUI surface:
// a window, a panel, or anything else that claims screen space.
func (c CtxRef) IsPointerOverArea() bool {
	pos, ok := c.InteractPos()
	if !ok {
		return false
	}
	layer, found := c.LayerIDAt(pos)
	if !found {
		return false
	}
	if layer.Order == OrderBackground {
		ctx := c.borrow()
		defer c.release()
		return !ctx.frameState.unusedRect.Contains(pos)
	}
	return true
}

// WantsPointerInput reports whether the GUI is currently interested in
// the pointer. If false, the pointer is outside all GUI surfaces and the
// embedding application may use it (e.g. to control a game camera).
// Returns false for drags that started outside the GUI and then moved
// over it.
func (c CtxRef) WantsPointerInput() bool {
	if c.IsUsingPointer() {
		return true
	}
	anyDown := false
	c.WithInput(func(in *InputState) { anyDown = in.Pointer.AnyDown() })
	return c.IsPointerOverArea() && !anyDown
}

// IsUsingPointer reports whether the GUI is actively using the pointer,
// e.g. dragging a slider. Hovering alone does not count.
func (c CtxRef) IsUsingPointer() bool {
	ctx := c.borrow()
	defer c.release()
	return ctx.memory.Interaction.IsUsingPointer()
}

// WantsKeyboardInput reports whether the GUI is listening for text input,
// i.e. some widget has keyboard focus.
func (c CtxRef) WantsKeyboardInput() bool {
	ctx := c.borrow()
	defer c.release()
	return ctx.memory.FocusedID() != 0
}

// ---------------------------------------------------------------------
// Pixel rounding

// RoundToPixel rounds a coordinate to the nearest physical pixel,
// for pixel-perfect rendering.
func (c CtxRef) RoundToPixel(point float32) float32 {
	ppp := c.PixelsPerPoint()
	return roundf(point*ppp) / ppp
}

// RoundPosToPixels rounds a position to the physical pixel grid.
func (c CtxRef) RoundPosToPixels(pos Vec2) Vec2 {
	return Vec2{X: c.RoundToPixel(pos.X), Y: c.RoundToPixel(pos.Y)}
}

// RoundRectToPixels rounds a rectangle to the physical pixel grid.
func (c CtxRef) RoundRectToPixels(rect Rect) Rect {
	return Rect{Min: c.RoundPosToPixels(rect.Min), Max: c.RoundPosToPixels(rect.Max)}
}

// ConstrainWindowRect constrains a window rectangle to the available
// area, allowing overlap with side panels when the window is too large
// to fit (important on small screens).
func (c CtxRef) ConstrainWindowRect(window Rect) Rect {
	return c.ConstrainWindowRectToArea(window, c.AvailableRect())
}

// ConstrainWindowRectToArea constrains a window rectangle to an explicit
// boundary area.
func (c CtxRef) ConstrainWindowRectToArea(window Rect, area Rect) Rect {
	screen := c.ScreenRect()
	if window.Width() > area.Width() {
		area.Min.X = screen.Min.X
		area.Max.X = screen.Max.X
	}
	if window.Height() > area.Height() {
		area.Min.Y = screen.Min.Y
		area.Max.Y = screen.Max.Y
	}

	marginX := maxf(window.Width()-area.Width(), 0)
	marginY := maxf(window.Height()-area.Height(), 0)

	pos := window.Min
	pos.X = minf(pos.X, area.Max.X+marginX-window.Width())
	pos.X = maxf(pos.X, area.Min.X-marginX)
	pos.Y = minf(pos.Y, area.Max.Y+marginY-window.Height())
	pos.Y = maxf(pos.Y, area.Min.Y-marginY)

	pos = c.RoundPosToPixels(pos)
	return RectFromMinSize(pos, window.Size())
}

// ---------------------------------------------------------------------
// Animation

// AnimateBool returns a value in [0, 1] indicating "how on" the given
// thing is, moving toward the target over the default animation time.
// The first call for a fresh id returns the target immediately. While an
// animation is in flight this requests a repaint.
func (c CtxRef) AnimateBool(id ID, value bool) float32 {
	ctx := c.borrow()
	animationTime := ctx.memory.Options.AnimationTime
	c.release()
	return c.AnimateBoolWithTime(id, value, animationTime)
}

// AnimateBoolWithTime is [CtxRef.AnimateBool] with an explicit duration
// in seconds.
func (c CtxRef) AnimateBoolWithTime(id ID, value bool, animationTime float32) float32 {
	ctx := c.borrowMut()
	animated := ctx.animation.animateBool(&ctx.input, animationTime, id, value)
	c.releaseMut()

	if 0 < animated && animated < 1 {
		c.RequestRepaint()
	}
	return animated
}

// ClearAnimations drops the memory of all running animations.
func (c CtxRef) ClearAnimations() {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.animation.clear()
}

// ---------------------------------------------------------------------
// Output

// SetCursorIcon sets the mouse cursor to show this frame.
func (c CtxRef) SetCursorIcon(icon CursorIcon) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.output.CursorIcon = icon
}

// OpenURL asks the embedding application to open a link.
func (c CtxRef) OpenURL(url string) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.output.OpenURL = url
}

// CopyText puts text on the clipboard via the frame output.
func (c CtxRef) CopyText(text string) {
	ctx := c.borrowMut()
	defer c.releaseMut()
	ctx.output.CopiedText = text
}

// PaintStats returns statistics about the most recent tessellation.
func (c CtxRef) PaintStats() PaintStats {
	ctx := c.borrow()
	defer c.release()
	return ctx.paintStats
}
