package fxmath

import "image"

// Rect is an axis-aligned rectangle with integer edges and half-open
// semantics: a point on the right or bottom edge is outside, so
// Width == Right-Left exactly.
//
// Nothing forces Left <= Right or Top <= Bottom on construction; call Norm
// to reorder the edges of an inverted rectangle.
type Rect struct {
	Left, Top, Right, Bottom int
}

// R is a convenience function to create a Rect from its four edges.
func R(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectXYWH creates a Rect from its top-left corner and size.
func RectXYWH(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the width of the rectangle. Negative if the rect is
// inverted.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the height of the rectangle. Negative if the rect is
// inverted.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// MoveTo returns the rectangle translated so its top-left corner is (x, y),
// preserving the size.
func (r Rect) MoveTo(x, y int) Rect {
	return RectXYWH(x, y, r.Width(), r.Height())
}

// Resize returns the rectangle resized to w by h, keeping the top-left
// corner fixed.
func (r Rect) Resize(w, h int) Rect {
	return RectXYWH(r.Left, r.Top, w, h)
}

// Move returns the rectangle translated by (dx, dy).
func (r Rect) Move(dx, dy int) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Inflate returns the rectangle grown by dw on the left and right and by dh
// on the top and bottom. Negative values shrink it.
func (r Rect) Inflate(dw, dh int) Rect {
	return Rect{
		Left:   r.Left - dw,
		Top:    r.Top - dh,
		Right:  r.Right + dw,
		Bottom: r.Bottom + dh,
	}
}

// InflateRect returns the rectangle with each edge offset by the
// corresponding edge of d, allowing asymmetric growth in one call.
func (r Rect) InflateRect(d Rect) Rect {
	return Rect{
		Left:   r.Left + d.Left,
		Top:    r.Top + d.Top,
		Right:  r.Right + d.Right,
		Bottom: r.Bottom + d.Bottom,
	}
}

// Norm returns the rectangle with its edges reordered so Left <= Right and
// Top <= Bottom. Each axis is swapped independently; the absolute width and
// height are unchanged. Norm of a normalized rect is the rect itself.
func (r Rect) Norm() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// ImageRect converts r to the standard library's image.Rectangle.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// FromImageRect converts an image.Rectangle to a Rect.
func FromImageRect(q image.Rectangle) Rect {
	return Rect{Left: q.Min.X, Top: q.Min.Y, Right: q.Max.X, Bottom: q.Max.Y}
}
