package gui

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y) in points
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// FontAtlasTextureID is the sentinel texture ID meshes use for glyphs.
// The rendering backend substitutes its uploaded font atlas texture.
// ID 0 means untextured.
const FontAtlasTextureID uint32 = 1

// Mesh is a batch of triangles sharing one texture.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	TextureID uint32
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Clone returns a deep copy of the mesh.
func (m Mesh) Clone() Mesh {
	out := Mesh{
		Vertices:  make([]Vertex, len(m.Vertices)),
		Indices:   make([]uint32, len(m.Indices)),
		TextureID: m.TextureID,
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Indices, m.Indices)
	return out
}

// Translate moves all vertices by the given offset.
func (m *Mesh) Translate(delta Vec2) {
	for i := range m.Vertices {
		m.Vertices[i].Pos[0] += delta.X
		m.Vertices[i].Pos[1] += delta.Y
	}
}

// Append adds another mesh's triangles to this one.
// Both meshes must use the same texture.
func (m *Mesh) Append(other Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// addTriangle appends one triangle by vertex index.
func (m *Mesh) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// addQuad appends an axis-aligned textured quad.
func (m *Mesh) addQuad(pos Rect, uv Rect, color uint32) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		Vertex{Pos: [2]float32{pos.Min.X, pos.Min.Y}, TexCoord: [2]float32{uv.Min.X, uv.Min.Y}, Color: color},
		Vertex{Pos: [2]float32{pos.Max.X, pos.Min.Y}, TexCoord: [2]float32{uv.Max.X, uv.Min.Y}, Color: color},
		Vertex{Pos: [2]float32{pos.Max.X, pos.Max.Y}, TexCoord: [2]float32{uv.Max.X, uv.Max.Y}, Color: color},
		Vertex{Pos: [2]float32{pos.Min.X, pos.Max.Y}, TexCoord: [2]float32{uv.Min.X, uv.Max.Y}, Color: color},
	)
	m.addTriangle(base, base+1, base+2)
	m.addTriangle(base, base+2, base+3)
}

// addColoredQuad appends an untextured colored quad.
func (m *Mesh) addColoredQuad(pos Rect, color uint32) {
	m.addQuad(pos, Rect{}, color)
}

// addColoredCorners appends a quad given by four arbitrary corners,
// in clockwise order.
func (m *Mesh) addColoredCorners(a, b, c, d Vec2, color uint32) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		Vertex{Pos: [2]float32{a.X, a.Y}, Color: color},
		Vertex{Pos: [2]float32{b.X, b.Y}, Color: color},
		Vertex{Pos: [2]float32{c.X, c.Y}, Color: color},
		Vertex{Pos: [2]float32{d.X, d.Y}, Color: color},
	)
	m.addTriangle(base, base+1, base+2)
	m.addTriangle(base, base+2, base+3)
}

// ClippedMesh is a mesh together with the clip rectangle to scissor it to.
type ClippedMesh struct {
	ClipRect Rect
	Mesh     Mesh
}
