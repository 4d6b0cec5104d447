package fxmath

import "image"

// Point is a 2D point or displacement with integer coordinates.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point with both coordinates scaled by c.
func (p Point) Mul(c int) Point {
	return Point{X: p.X * c, Y: p.Y * c}
}

// Dot returns the dot product of two points.
func (p Point) Dot(q Point) int {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar 2D cross product, the z-component of the 3D cross
// product with z=0. Zero means the two are parallel; the sign gives the
// orientation of the turn from p to q.
func (p Point) Cross(q Point) int {
	return p.X*q.Y - p.Y*q.X
}

// In reports whether p lies inside r, with half-open semantics: the left and
// top edges are inside, the right and bottom edges are not.
func (p Point) In(r Rect) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Set assigns both coordinates in place.
func (p *Point) Set(x, y int) {
	p.X = x
	p.Y = y
}

// SetAdd adds q to p in place.
func (p *Point) SetAdd(q Point) {
	p.X += q.X
	p.Y += q.Y
}

// SetSub subtracts q from p in place.
func (p *Point) SetSub(q Point) {
	p.X -= q.X
	p.Y -= q.Y
}

// SetMul scales both coordinates by c in place.
func (p *Point) SetMul(c int) {
	p.X *= c
	p.Y *= c
}

// ImagePoint converts p to the standard library's image.Point.
func (p Point) ImagePoint() image.Point {
	return image.Pt(p.X, p.Y)
}

// FromImagePoint converts an image.Point to a Point.
func FromImagePoint(q image.Point) Point {
	return Point{X: q.X, Y: q.Y}
}
