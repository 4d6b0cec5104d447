package fxmath

import "golang.org/x/image/math/fixed"

// Interop with golang.org/x/image/math/fixed, the fixed-point family used by
// the font and rasterization packages. Fix carries 8 fractional bits and
// Int26_6 carries 6, so converting toward Int26_6 drops the low two bits.

// Fixed26_6 converts x to a fixed.Int26_6, truncating the two extra
// fractional bits toward negative infinity.
func (x Fix) Fixed26_6() fixed.Int26_6 {
	return fixed.Int26_6(x >> 2)
}

// FromFixed26_6 converts a fixed.Int26_6 to a Fix. Exact: every Int26_6
// value is representable.
func FromFixed26_6(v fixed.Int26_6) Fix {
	return Fix(v) << 2
}

// Point26_6 converts the integer point to a fixed.Point26_6.
func (p Point) Point26_6() fixed.Point26_6 {
	return fixed.P(p.X, p.Y)
}

// FromPoint26_6 converts a fixed.Point26_6 to an integer Point, truncating
// the fractional bits toward negative infinity.
func FromPoint26_6(q fixed.Point26_6) Point {
	return Point{X: int(q.X >> 6), Y: int(q.Y >> 6)}
}
