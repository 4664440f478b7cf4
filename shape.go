package gui

// Shape is a paintable primitive. Shapes are accumulated per layer during
// the frame and turned into triangle meshes by [TessellateShapes].
type Shape interface {
	// Translated returns the shape moved by delta.
	Translated(delta Vec2) Shape

	// BoundingRect returns the smallest rectangle covering the shape.
	BoundingRect() Rect
}

// Stroke describes an outline: width in points and a packed RGBA color.
// A zero-width or fully transparent stroke paints nothing.
type Stroke struct {
	Width float32
	Color uint32
}

// IsEmpty reports whether the stroke paints nothing.
func (s Stroke) IsEmpty() bool {
	return s.Width <= 0 || s.Color&0xFF000000 == 0
}

// RectShape is a filled and/or stroked rectangle.
type RectShape struct {
	Rect         Rect
	CornerRadius float32
	Fill         uint32
	Stroke       Stroke
}

func (s RectShape) Translated(delta Vec2) Shape {
	s.Rect = s.Rect.Translate(delta)
	return s
}

func (s RectShape) BoundingRect() Rect {
	return s.Rect.Expand(s.Stroke.Width)
}

// CircleShape is a filled and/or stroked circle.
type CircleShape struct {
	Center Vec2
	Radius float32
	Fill   uint32
	Stroke Stroke
}

func (s CircleShape) Translated(delta Vec2) Shape {
	s.Center = s.Center.Add(delta)
	return s
}

func (s CircleShape) BoundingRect() Rect {
	return RectFromCenterSize(s.Center, Splat(2*(s.Radius+s.Stroke.Width)))
}

// LineShape is a straight line segment.
type LineShape struct {
	From, To Vec2
	Stroke   Stroke
}

func (s LineShape) Translated(delta Vec2) Shape {
	s.From = s.From.Add(delta)
	s.To = s.To.Add(delta)
	return s
}

func (s LineShape) BoundingRect() Rect {
	return RectFromMinMax(s.From.Min(s.To), s.From.Max(s.To)).Expand(s.Stroke.Width)
}

// TextShape paints a laid-out text galley with its top-left corner at Pos.
type TextShape struct {
	Pos    Vec2
	Galley *Galley
	Color  uint32
}

func (s TextShape) Translated(delta Vec2) Shape {
	s.Pos = s.Pos.Add(delta)
	return s
}

func (s TextShape) BoundingRect() Rect {
	if s.Galley == nil {
		return RectFromMinSize(s.Pos, Vec2{})
	}
	return RectFromMinSize(s.Pos, s.Galley.Size)
}

// MeshShape is a pre-built triangle mesh, for callers that tessellate
// their own geometry.
type MeshShape struct {
	Mesh Mesh
}

func (s MeshShape) Translated(delta Vec2) Shape {
	m := s.Mesh.Clone()
	m.Translate(delta)
	s.Mesh = m
	return s
}

func (s MeshShape) BoundingRect() Rect {
	r := NothingRect()
	for _, v := range s.Mesh.Vertices {
		r = r.Union(RectFromMinSize(Vec2{X: v.Pos[0], Y: v.Pos[1]}, Vec2{}))
	}
	return r
}
