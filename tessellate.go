package gui

import "math"

// TessellationOptions controls how shapes are converted into meshes.
type TessellationOptions struct {
	// AntiAliased feathers shape edges by one pixel.
	AntiAliased bool `yaml:"antialiased"`

	// CircleSegments fixes the number of segments per circle.
	// Zero picks a count based on the radius.
	CircleSegments int `yaml:"circle_segments"`

	// DebugClipRects paints every mesh's clip rectangle.
	DebugClipRects bool `yaml:"debug_clip_rects"`

	// Derived per frame, not configuration:

	// PixelsPerPoint is the device scale factor of the frame being
	// tessellated.
	PixelsPerPoint float32 `yaml:"-"`

	// AASize is the feather width in points (one pixel).
	AASize float32 `yaml:"-"`
}

// TessellateShapes converts ordered clipped shapes into clipped triangle
// meshes. Consecutive shapes sharing a clip rectangle and texture are
// batched into one mesh. fontTexSize is the font atlas size in pixels,
// needed to position glyph quads exactly.
//
// Pure: same shapes, options and texture size give the same meshes.
func TessellateShapes(shapes []ClippedShape, options TessellationOptions, fontTexSize [2]int) []ClippedMesh {
	t := tessellator{options: options, fontTexSize: fontTexSize}

	var out []ClippedMesh
	for _, cs := range shapes {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.ClipRect == cs.ClipRect && last.Mesh.TextureID == textureFor(cs.Shape) {
				t.shape(&last.Mesh, cs.Shape)
				continue
			}
		}
		mesh := Mesh{TextureID: textureFor(cs.Shape)}
		t.shape(&mesh, cs.Shape)
		out = append(out, ClippedMesh{ClipRect: cs.ClipRect, Mesh: mesh})
	}

	if options.DebugClipRects {
		for i := range out {
			debug := Mesh{}
			t.strokeRect(&debug, out[i].ClipRect, Stroke{Width: 1, Color: ColorRed})
			out[i].Mesh.Append(debug)
		}
	}

	// Drop empty meshes (e.g. shapes with nothing visible).
	kept := out[:0]
	for _, cm := range out {
		if !cm.Mesh.IsEmpty() {
			kept = append(kept, cm)
		}
	}
	return kept
}

func textureFor(shape Shape) uint32 {
	switch s := shape.(type) {
	case TextShape:
		return FontAtlasTextureID
	case MeshShape:
		return s.Mesh.TextureID
	default:
		return 0
	}
}

type tessellator struct {
	options     TessellationOptions
	fontTexSize [2]int
}

func (t *tessellator) shape(mesh *Mesh, shape Shape) {
	switch s := shape.(type) {
	case RectShape:
		t.rect(mesh, s)
	case CircleShape:
		t.circle(mesh, s)
	case LineShape:
		t.line(mesh, s.From, s.To, s.Stroke)
	case TextShape:
		t.text(mesh, s)
	case MeshShape:
		mesh.Append(s.Mesh)
	}
}

func (t *tessellator) rect(mesh *Mesh, s RectShape) {
	rect := s.Rect
	if !rect.IsNonNegative() || !rect.IsFinite() {
		return
	}
	if s.Fill&0xFF000000 != 0 {
		if s.CornerRadius <= 0 {
			mesh.addColoredQuad(rect, s.Fill)
		} else {
			t.roundedRect(mesh, rect, s.CornerRadius, s.Fill)
		}
	}
	if !s.Stroke.IsEmpty() {
		t.strokeRect(mesh, rect, s.Stroke)
	}
}

// roundedRect approximates a rounded rectangle with a center quad, two
// side quads and four corner fans.
func (t *tessellator) roundedRect(mesh *Mesh, rect Rect, radius float32, fill uint32) {
	r := minf(radius, minf(rect.Width(), rect.Height())*0.5)

	inner := rect.Expand(-r)
	if inner.IsNonNegative() {
		mesh.addColoredQuad(inner, fill)
	}
	// Side strips.
	mesh.addColoredQuad(RectFromMinMax(Vec2{X: inner.Min.X, Y: rect.Min.Y}, Vec2{X: inner.Max.X, Y: inner.Min.Y}), fill)
	mesh.addColoredQuad(RectFromMinMax(Vec2{X: inner.Min.X, Y: inner.Max.Y}, Vec2{X: inner.Max.X, Y: rect.Max.Y}), fill)
	mesh.addColoredQuad(RectFromMinMax(Vec2{X: rect.Min.X, Y: inner.Min.Y}, Vec2{X: inner.Min.X, Y: inner.Max.Y}), fill)
	mesh.addColoredQuad(RectFromMinMax(Vec2{X: inner.Max.X, Y: inner.Min.Y}, Vec2{X: rect.Max.X, Y: inner.Max.Y}), fill)
	// Corner fans.
	t.cornerFan(mesh, Vec2{X: inner.Min.X, Y: inner.Min.Y}, r, math.Pi, fill)
	t.cornerFan(mesh, Vec2{X: inner.Max.X, Y: inner.Min.Y}, r, 1.5*math.Pi, fill)
	t.cornerFan(mesh, Vec2{X: inner.Max.X, Y: inner.Max.Y}, r, 0, fill)
	t.cornerFan(mesh, Vec2{X: inner.Min.X, Y: inner.Max.Y}, r, 0.5*math.Pi, fill)
}

// cornerFan adds a quarter-circle fan starting at startAngle.
func (t *tessellator) cornerFan(mesh *Mesh, center Vec2, radius, startAngle float32, fill uint32) {
	const segments = 8
	base := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, Vertex{Pos: [2]float32{center.X, center.Y}, Color: fill})
	for i := 0; i <= segments; i++ {
		angle := float64(startAngle) + float64(i)/segments*math.Pi/2
		mesh.Vertices = append(mesh.Vertices, Vertex{
			Pos: [2]float32{
				center.X + radius*float32(math.Cos(angle)),
				center.Y + radius*float32(math.Sin(angle)),
			},
			Color: fill,
		})
	}
	for i := uint32(0); i < segments; i++ {
		mesh.addTriangle(base, base+1+i, base+2+i)
	}
}

func (t *tessellator) strokeRect(mesh *Mesh, rect Rect, stroke Stroke) {
	w := stroke.Width
	// Four edge quads, outside the rect.
	mesh.addColoredQuad(RectFromMinMax(rect.Min.Sub(Splat(w)), Vec2{X: rect.Max.X + w, Y: rect.Min.Y}), stroke.Color)
	mesh.addColoredQuad(RectFromMinMax(Vec2{X: rect.Min.X - w, Y: rect.Max.Y}, rect.Max.Add(Splat(w))), stroke.Color)
	mesh.addColoredQuad(RectFromMinMax(Vec2{X: rect.Min.X - w, Y: rect.Min.Y}, Vec2{X: rect.Min.X, Y: rect.Max.Y}), stroke.Color)
	mesh.addColoredQuad(RectFromMinMax(Vec2{X: rect.Max.X, Y: rect.Min.Y}, Vec2{X: rect.Max.X + w, Y: rect.Max.Y}), stroke.Color)
}

func (t *tessellator) circle(mesh *Mesh, s CircleShape) {
	if s.Radius <= 0 {
		return
	}
	segments := t.options.CircleSegments
	if segments <= 0 {
		// More segments for bigger circles.
		segments = int(clampf(s.Radius/2+8, 12, 64))
	}

	if s.Fill&0xFF000000 != 0 {
		base := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, Vertex{Pos: [2]float32{s.Center.X, s.Center.Y}, Color: s.Fill})
		for i := 0; i <= segments; i++ {
			angle := float64(i) / float64(segments) * 2 * math.Pi
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Pos: [2]float32{
					s.Center.X + s.Radius*float32(math.Cos(angle)),
					s.Center.Y + s.Radius*float32(math.Sin(angle)),
				},
				Color: s.Fill,
			})
		}
		for i := uint32(0); i < uint32(segments); i++ {
			mesh.addTriangle(base, base+1+i, base+2+i)
		}
	}
	if !s.Stroke.IsEmpty() {
		prev := Vec2{X: s.Center.X + s.Radius, Y: s.Center.Y}
		for i := 1; i <= segments; i++ {
			angle := float64(i) / float64(segments) * 2 * math.Pi
			next := Vec2{
				X: s.Center.X + s.Radius*float32(math.Cos(angle)),
				Y: s.Center.Y + s.Radius*float32(math.Sin(angle)),
			}
			t.line(mesh, prev, next, s.Stroke)
			prev = next
		}
	}
}

// line adds a stroked segment as a quad perpendicular to its direction.
func (t *tessellator) line(mesh *Mesh, from, to Vec2, stroke Stroke) {
	if stroke.IsEmpty() {
		return
	}
	dir := to.Sub(from)
	length := dir.Dist(Vec2{})
	if length <= 0 {
		return
	}
	half := stroke.Width * 0.5
	if t.options.AntiAliased && t.options.AASize > 0 {
		half = maxf(half, t.options.AASize*0.5)
	}
	normal := Vec2{X: -dir.Y / length * half, Y: dir.X / length * half}
	mesh.addColoredCorners(
		from.Add(normal), to.Add(normal),
		to.Sub(normal), from.Sub(normal),
		stroke.Color,
	)
}

func (t *tessellator) text(mesh *Mesh, s TextShape) {
	if s.Galley == nil {
		return
	}
	for _, g := range s.Galley.Glyphs {
		mesh.addQuad(g.Pos.Translate(s.Pos), g.UV, s.Color)
	}
}
