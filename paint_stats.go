package gui

// PaintStats summarizes how much was painted in one frame.
type PaintStats struct {
	Shapes        int
	TextShapes    int
	RectShapes    int
	OtherShapes   int
	ClippedMeshes int
	Vertices      int
	Indices       int
	Triangles     int
}

// PaintStatsFromShapes counts the frame's shapes by kind.
func PaintStatsFromShapes(shapes []ClippedShape) PaintStats {
	stats := PaintStats{Shapes: len(shapes)}
	for _, cs := range shapes {
		switch cs.Shape.(type) {
		case TextShape:
			stats.TextShapes++
		case RectShape:
			stats.RectShapes++
		default:
			stats.OtherShapes++
		}
	}
	return stats
}

// WithClippedMeshes adds the tessellation sizes to the stats.
func (s PaintStats) WithClippedMeshes(meshes []ClippedMesh) PaintStats {
	s.ClippedMeshes = len(meshes)
	for _, cm := range meshes {
		s.Vertices += len(cm.Mesh.Vertices)
		s.Indices += len(cm.Mesh.Indices)
	}
	s.Triangles = s.Indices / 3
	return s
}
