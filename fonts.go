package gui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextStyle selects one of the configured fonts.
type TextStyle int

const (
	TextStyleSmall TextStyle = iota
	TextStyleBody
	TextStyleButton
	TextStyleHeading
	TextStyleMonospace

	textStyleCount
)

// FontSpec names a font family and a size in points for one text style.
// An empty family selects the builtin bitmap font.
type FontSpec struct {
	Family string
	Size   float32
}

// FontDefinitions tells the font cache which fonts to load.
type FontDefinitions struct {
	// TTF maps family names to raw TTF/OTF data.
	TTF map[string][]byte

	// Styles maps each text style to a family and size.
	Styles map[TextStyle]FontSpec
}

// DefaultFontDefinitions returns definitions using the builtin bitmap font
// for every style. Install real fonts with [CtxRef.SetFonts].
func DefaultFontDefinitions() FontDefinitions {
	return FontDefinitions{
		Styles: map[TextStyle]FontSpec{
			TextStyleSmall:     {Size: 10},
			TextStyleBody:      {Size: 14},
			TextStyleButton:    {Size: 14},
			TextStyleHeading:   {Size: 20},
			TextStyleMonospace: {Size: 13},
		},
	}
}

// Equal reports whether two definitions are identical.
// This compares raw TTF data, which can be expensive.
func (d FontDefinitions) Equal(other FontDefinitions) bool {
	if len(d.TTF) != len(other.TTF) || len(d.Styles) != len(other.Styles) {
		return false
	}
	for family, data := range d.TTF {
		if !bytes.Equal(data, other.TTF[family]) {
			return false
		}
	}
	for style, spec := range d.Styles {
		if other.Styles[style] != spec {
			return false
		}
	}
	return true
}

func (d FontDefinitions) clone() FontDefinitions {
	out := FontDefinitions{
		TTF:    make(map[string][]byte, len(d.TTF)),
		Styles: make(map[TextStyle]FontSpec, len(d.Styles)),
	}
	for k, v := range d.TTF {
		out.TTF[k] = v
	}
	for k, v := range d.Styles {
		out.Styles[k] = v
	}
	return out
}

// Texture is the CPU-side font atlas: alpha coverage, one byte per pixel.
// Version increments every rebuild so backends know when to re-upload.
type Texture struct {
	Version       uint64
	Width, Height int
	Pixels        []uint8
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() [2]int {
	return [2]int{t.Width, t.Height}
}

// atlasGlyph is one rasterized glyph in the atlas.
type atlasGlyph struct {
	// uv is the glyph's normalized region in the atlas texture.
	uv Rect
	// bounds is the glyph's box in points, relative to the baseline pen.
	bounds Rect
	// advance is the pen advance in points.
	advance float32
}

// styleFont is the rasterized data for one text style.
type styleFont struct {
	glyphs     map[rune]atlasGlyph
	ascent     float32 // points above the baseline
	lineHeight float32 // points per line
}

// GalleyGlyph is one positioned glyph in a laid-out text.
type GalleyGlyph struct {
	// Pos is the glyph quad in points, relative to the galley's top-left.
	Pos Rect
	// UV is the glyph's normalized region in the font texture.
	UV Rect
}

// Galley is a laid-out piece of text, ready to paint via [TextShape].
type Galley struct {
	Text   string
	Style  TextStyle
	Glyphs []GalleyGlyph
	Size   Vec2
}

type galleyKey struct {
	style TextStyle
	text  string
}

type galleyEntry struct {
	galley       *Galley
	lastUsedPass uint64
}

// Fonts is the font/glyph cache: it owns the rasterized atlas texture and
// a per-frame cache of laid-out text. It is rebuilt whenever the font
// definitions or the device scale factor change.
type Fonts struct {
	pixelsPerPoint float32
	definitions    FontDefinitions
	styles         map[TextStyle]*styleFont
	texture        *Texture

	galleys map[galleyKey]*galleyEntry
	pass    uint64
}

// atlas building state, shelf packed like a classic glyph cache.
type atlasBuilder struct {
	img        *image.Alpha
	penX, penY int
	rowHeight  int
}

const atlasWidth = 1024
const atlasPadding = 1

var textureVersion uint64

// NewFonts rasterizes the given definitions at the given device scale
// factor. Families with unparsable TTF data fall back to the builtin
// bitmap font (logged, not fatal: the glyphs are wrong, the run is not).
func NewFonts(pixelsPerPoint float32, definitions FontDefinitions) *Fonts {
	if pixelsPerPoint <= 0 {
		pixelsPerPoint = 1
	}
	f := &Fonts{
		pixelsPerPoint: pixelsPerPoint,
		definitions:    definitions.clone(),
		styles:         make(map[TextStyle]*styleFont, textStyleCount),
		galleys:        make(map[galleyKey]*galleyEntry),
	}

	builder := &atlasBuilder{
		img: image.NewAlpha(image.Rect(0, 0, atlasWidth, 256)),
	}

	for style := TextStyle(0); style < textStyleCount; style++ {
		spec, ok := f.definitions.Styles[style]
		if !ok {
			spec = FontSpec{Size: 14}
		}
		face := f.makeFace(spec)
		f.styles[style] = rasterizeStyle(builder, face, pixelsPerPoint)
	}

	img := builder.img
	textureVersion++
	f.texture = &Texture{
		Version: textureVersion,
		Width:   img.Rect.Dx(),
		Height:  img.Rect.Dy(),
		Pixels:  img.Pix,
	}

	return f
}

// makeFace creates a font.Face for one spec, falling back to the builtin
// bitmap face when no TTF data is available or it fails to parse.
func (f *Fonts) makeFace(spec FontSpec) font.Face {
	data, ok := f.definitions.TTF[spec.Family]
	if spec.Family == "" || !ok {
		return basicfont.Face7x13
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		guiLogger.Warn("parse font failed, using builtin bitmap font",
			"family", spec.Family, "err", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(spec.Size),
		DPI:     72 * float64(f.pixelsPerPoint),
		Hinting: font.HintingFull,
	})
	if err != nil {
		guiLogger.Warn("create font face failed, using builtin bitmap font",
			"family", spec.Family, "err", err)
		return basicfont.Face7x13
	}
	return face
}

// rasterizeStyle draws the printable ASCII range into the shared atlas.
func rasterizeStyle(b *atlasBuilder, face font.Face, pixelsPerPoint float32) *styleFont {
	metrics := face.Metrics()
	sf := &styleFont{
		glyphs:     make(map[rune]atlasGlyph, 95),
		ascent:     fixedToPoints(metrics.Ascent, pixelsPerPoint),
		lineHeight: fixedToPoints(metrics.Height, pixelsPerPoint),
	}

	for r := rune(32); r < 127; r++ {
		bounds, advance, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		w := (bounds.Max.X - bounds.Min.X).Ceil() + 2
		h := (bounds.Max.Y - bounds.Min.Y).Ceil() + 2

		x, y := b.alloc(w, h)

		// Draw with the baseline pen placed so the glyph's box lands at
		// the allocated atlas cell.
		dot := fixed.Point26_6{
			X: fixed.I(x+1) - bounds.Min.X,
			Y: fixed.I(y+1) - bounds.Min.Y,
		}
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if ok {
			draw.DrawMask(b.img, dr, image.NewUniform(color.Opaque), image.Point{}, mask, maskp, draw.Over)
		}

		sf.glyphs[r] = atlasGlyph{
			uv: RectFromMinMax(
				Vec2{X: float32(x), Y: float32(y)},
				Vec2{X: float32(x + w), Y: float32(y + h)},
			), // atlas pixels; normalized against the final size at layout time
			bounds: RectFromMinMax(
				Vec2{
					X: fixedToPoints(bounds.Min.X, pixelsPerPoint),
					Y: fixedToPoints(bounds.Min.Y, pixelsPerPoint),
				},
				Vec2{
					X: fixedToPoints(bounds.Max.X, pixelsPerPoint),
					Y: fixedToPoints(bounds.Max.Y, pixelsPerPoint),
				},
			).Expand(1 / pixelsPerPoint),
			advance: fixedToPoints(advance, pixelsPerPoint),
		}
	}
	return sf
}

func fixedToPoints(v fixed.Int26_6, pixelsPerPoint float32) float32 {
	return float32(v) / 64 / pixelsPerPoint
}

// alloc reserves a w x h cell, growing the atlas image vertically when a
// shelf does not fit.
func (b *atlasBuilder) alloc(w, h int) (x, y int) {
	if b.penX+w+atlasPadding > b.img.Rect.Dx() {
		b.penX = 0
		b.penY += b.rowHeight + atlasPadding
		b.rowHeight = 0
	}
	for b.penY+h+atlasPadding > b.img.Rect.Dy() {
		grown := image.NewAlpha(image.Rect(0, 0, b.img.Rect.Dx(), b.img.Rect.Dy()*2))
		draw.Draw(grown, b.img.Rect, b.img, image.Point{}, draw.Src)
		b.img = grown
	}
	x, y = b.penX, b.penY
	b.penX += w + atlasPadding
	if h > b.rowHeight {
		b.rowHeight = h
	}
	return x, y
}

// PixelsPerPoint returns the scale factor the atlas was rasterized at.
func (f *Fonts) PixelsPerPoint() float32 {
	return f.pixelsPerPoint
}

// Definitions returns the definitions the cache was built from.
func (f *Fonts) Definitions() FontDefinitions {
	return f.definitions
}

// Texture returns the font atlas texture.
func (f *Fonts) Texture() *Texture {
	return f.texture
}

// RowHeight returns the line height of the given style, in points.
func (f *Fonts) RowHeight(style TextStyle) float32 {
	return f.styles[style].lineHeight
}

// Layout lays out text in the given style. Results are cached; the cache
// is pruned of unused entries at the end of every frame.
func (f *Fonts) Layout(style TextStyle, text string) *Galley {
	key := galleyKey{style: style, text: text}
	if entry, ok := f.galleys[key]; ok {
		entry.lastUsedPass = f.pass
		return entry.galley
	}

	galley := f.layout(style, text)
	f.galleys[key] = &galleyEntry{galley: galley, lastUsedPass: f.pass}
	return galley
}

func (f *Fonts) layout(style TextStyle, text string) *Galley {
	sf := f.styles[style]
	texW := float32(f.texture.Width)
	texH := float32(f.texture.Height)

	galley := &Galley{Text: text, Style: style}

	var penX float32
	baseline := sf.ascent
	var maxWidth float32
	lines := 1

	for _, r := range text {
		if r == '\n' {
			maxWidth = maxf(maxWidth, penX)
			penX = 0
			baseline += sf.lineHeight
			lines++
			continue
		}
		g, ok := sf.glyphs[r]
		if !ok {
			g, ok = sf.glyphs['?']
			if !ok {
				continue
			}
		}
		if r != ' ' {
			galley.Glyphs = append(galley.Glyphs, GalleyGlyph{
				Pos: g.bounds.Translate(Vec2{X: penX, Y: baseline}),
				UV: RectFromMinMax(
					Vec2{X: g.uv.Min.X / texW, Y: g.uv.Min.Y / texH},
					Vec2{X: g.uv.Max.X / texW, Y: g.uv.Max.Y / texH},
				),
			})
		}
		penX += g.advance
	}
	maxWidth = maxf(maxWidth, penX)

	galley.Size = Vec2{X: maxWidth, Y: float32(lines) * sf.lineHeight}
	return galley
}

// EndFrame does the cache's end-of-frame bookkeeping: laid-out text not
// used this frame is evicted.
func (f *Fonts) EndFrame() {
	for key, entry := range f.galleys {
		if entry.lastUsedPass < f.pass {
			delete(f.galleys, key)
		}
	}
	f.pass++
}

// NumGalleysInCache returns the number of cached text layouts,
// approximately the number of distinct strings on screen.
func (f *Fonts) NumGalleysInCache() int {
	return len(f.galleys)
}

// String implements fmt.Stringer for debug logging.
func (f *Fonts) String() string {
	return fmt.Sprintf("Fonts(ppp=%.2f, atlas=%dx%d, galleys=%d)",
		f.pixelsPerPoint, f.texture.Width, f.texture.Height, len(f.galleys))
}
