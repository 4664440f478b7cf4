package gui

import "testing"

func TestLayoutBasics(t *testing.T) {
	f := NewFonts(1, DefaultFontDefinitions())

	galley := f.Layout(TextStyleBody, "Hello")
	if galley.Size.X <= 0 || galley.Size.Y <= 0 {
		t.Errorf("galley size = %v, want positive", galley.Size)
	}
	if len(galley.Glyphs) != 5 {
		t.Errorf("got %d glyphs, want 5", len(galley.Glyphs))
	}
	for i, g := range galley.Glyphs {
		if g.UV.Min.X < 0 || g.UV.Max.X > 1 || g.UV.Min.Y < 0 || g.UV.Max.Y > 1 {
			t.Errorf("glyph %d UV %v outside [0,1]", i, g.UV)
		}
	}
}

func TestLayoutMultiline(t *testing.T) {
	f := NewFonts(1, DefaultFontDefinitions())

	one := f.Layout(TextStyleBody, "line")
	two := f.Layout(TextStyleBody, "line\nline")
	if two.Size.Y != 2*one.Size.Y {
		t.Errorf("two lines %v tall, one line %v; want double", two.Size.Y, one.Size.Y)
	}
	if two.Size.X != one.Size.X {
		t.Errorf("two equal lines %v wide vs %v", two.Size.X, one.Size.X)
	}
}

func TestLayoutSkipsSpaces(t *testing.T) {
	f := NewFonts(1, DefaultFontDefinitions())
	galley := f.Layout(TextStyleBody, "a b")
	if len(galley.Glyphs) != 2 {
		t.Errorf("got %d glyphs for \"a b\", want 2 (spaces advance but don't paint)", len(galley.Glyphs))
	}

	spaced := f.Layout(TextStyleBody, "a b").Size.X
	tight := f.Layout(TextStyleBody, "ab").Size.X
	if spaced <= tight {
		t.Error("space did not advance the pen")
	}
}

func TestGalleyCacheEviction(t *testing.T) {
	f := NewFonts(1, DefaultFontDefinitions())

	f.Layout(TextStyleBody, "keep")
	f.Layout(TextStyleBody, "drop")
	if n := f.NumGalleysInCache(); n != 2 {
		t.Fatalf("cache size = %d, want 2", n)
	}

	f.EndFrame()
	f.Layout(TextStyleBody, "keep") // used this frame
	f.EndFrame()

	if n := f.NumGalleysInCache(); n != 1 {
		t.Errorf("cache size after eviction = %d, want 1", n)
	}
}

func TestAtlasTexture(t *testing.T) {
	f := NewFonts(1, DefaultFontDefinitions())
	tex := f.Texture()

	if tex.Width <= 0 || tex.Height <= 0 {
		t.Fatalf("texture size %dx%d", tex.Width, tex.Height)
	}
	if len(tex.Pixels) != tex.Width*tex.Height {
		t.Errorf("pixel buffer %d bytes for %dx%d", len(tex.Pixels), tex.Width, tex.Height)
	}

	nonZero := 0
	for _, p := range tex.Pixels {
		if p != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("atlas has no coverage at all")
	}

	other := NewFonts(2, DefaultFontDefinitions())
	if other.Texture().Version == tex.Version {
		t.Error("distinct atlases share a version")
	}
}

func TestRowHeightScalesWithStyle(t *testing.T) {
	f := NewFonts(1, DefaultFontDefinitions())
	if f.RowHeight(TextStyleBody) <= 0 {
		t.Error("row height must be positive")
	}
}

func TestDefinitionsPreserved(t *testing.T) {
	defs := DefaultFontDefinitions()
	f := NewFonts(1, defs)
	if !f.Definitions().Equal(defs) {
		t.Error("definitions not preserved through the cache")
	}
}

func TestFontDefinitionsEqual(t *testing.T) {
	a := DefaultFontDefinitions()
	b := DefaultFontDefinitions()
	if !a.Equal(b) {
		t.Error("identical definitions not equal")
	}
	b.Styles[TextStyleBody] = FontSpec{Size: 99}
	if a.Equal(b) {
		t.Error("different definitions reported equal")
	}
}
