package gui

import "math"

// Vec2 represents a 2D vector for positions, sizes and offsets.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Min returns the component-wise minimum of two vectors.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{X: minf(v.X, other.X), Y: minf(v.Y, other.Y)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{X: maxf(v.X, other.X), Y: maxf(v.Y, other.Y)}
}

// Clamp limits both components to the given range.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{X: clampf(v.X, lo.X, hi.X), Y: clampf(v.Y, lo.Y, hi.Y)}
}

// Dist returns the euclidean distance to another point.
func (v Vec2) Dist(other Vec2) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Splat returns a vector with both components set to s.
func Splat(s float32) Vec2 {
	return Vec2{X: s, Y: s}
}

// Rect is an axis-aligned rectangle given by its min (top-left) and
// max (bottom-right) corners.
type Rect struct {
	Min, Max Vec2
}

// RectFromMinMax creates a rectangle from two corners.
func RectFromMinMax(min, max Vec2) Rect {
	return Rect{Min: min, Max: max}
}

// RectFromMinSize creates a rectangle from a top-left corner and a size.
func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize creates a rectangle centered on a point.
func RectFromCenterSize(center, size Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// NothingRect returns an inverted infinite rectangle: the union identity.
// Taking the union of it with any finite rectangle yields that rectangle.
func NothingRect() Rect {
	inf := float32(math.Inf(1))
	return Rect{Min: Vec2{inf, inf}, Max: Vec2{-inf, -inf}}
}

// EverythingRect returns a rectangle covering the whole plane:
// the intersection identity.
func EverythingRect() Rect {
	inf := float32(math.Inf(1))
	return Rect{Min: Vec2{-inf, -inf}, Max: Vec2{inf, inf}}
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) * 0.5, Y: (r.Min.Y + r.Max.Y) * 0.5}
}

// Contains reports whether the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.Min) && r.Contains(other.Max)
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Intersect returns the overlapping region of two rectangles.
// The result is inverted (negative size) if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{Min: r.Min.Max(other.Min), Max: r.Max.Min(other.Max)}
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(other Rect) Rect {
	return Rect{Min: r.Min.Min(other.Min), Max: r.Max.Max(other.Max)}
}

// Expand grows the rectangle by the same amount on every side.
// Negative amounts shrink it.
func (r Rect) Expand(amount float32) Rect {
	return r.Expand2(Splat(amount))
}

// Expand2 grows the rectangle by amount.X on the left/right sides
// and amount.Y on the top/bottom sides.
func (r Rect) Expand2(amount Vec2) Rect {
	return Rect{Min: r.Min.Sub(amount), Max: r.Max.Add(amount)}
}

// Translate moves the rectangle by the given offset.
func (r Rect) Translate(delta Vec2) Rect {
	return Rect{Min: r.Min.Add(delta), Max: r.Max.Add(delta)}
}

// IsNonNegative reports whether the rectangle has non-negative size.
func (r Rect) IsNonNegative() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// IsFinite reports whether all corners are finite numbers.
func (r Rect) IsFinite() bool {
	return isFinite(r.Min.X) && isFinite(r.Min.Y) && isFinite(r.Max.X) && isFinite(r.Max.Y)
}

func isFinite(f float32) bool {
	f64 := float64(f)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// roundf rounds a float32 to the nearest integer, halves away from zero.
func roundf(x float32) float32 {
	return float32(math.Round(float64(x)))
}
