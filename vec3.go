package fxmath

// Vec3 is a 3D point or direction with fixed-point components.
type Vec3 struct {
	X, Y, Z Fix
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z Fix) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the component-wise fixed-point product of two vectors. This is
// not a geometric operator; see Dot and Cross for those.
func (v Vec3) Mul(w Vec3) Vec3 {
	return Vec3{X: v.X.Mul(w.X), Y: v.Y.Mul(w.Y), Z: v.Z.Mul(w.Z)}
}

// Scale returns the vector with every component multiplied by c.
func (v Vec3) Scale(c Fix) Vec3 {
	return Vec3{X: v.X.Mul(c), Y: v.Y.Mul(c), Z: v.Z.Mul(c)}
}

// Dot returns the dot product of two vectors. The component products use the
// 32-bit Mul path, so precision is limited for large components; bound the
// operands or widen by hand where that matters.
func (v Vec3) Dot(w Vec3) Fix {
	return v.X.Mul(w.X) + v.Y.Mul(w.Y) + v.Z.Mul(w.Z)
}

// Cross returns the 3D cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y.Mul(w.Z) - v.Z.Mul(w.Y),
		Y: v.Z.Mul(w.X) - v.X.Mul(w.Z),
		Z: v.X.Mul(w.Y) - v.Y.Mul(w.X),
	}
}

// Set assigns all three components in place.
func (v *Vec3) Set(x, y, z Fix) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetAdd adds w to v in place.
func (v *Vec3) SetAdd(w Vec3) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
}

// SetSub subtracts w from v in place.
func (v *Vec3) SetSub(w Vec3) {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
}

// SetMul multiplies v component-wise by w in place.
func (v *Vec3) SetMul(w Vec3) {
	v.X = v.X.Mul(w.X)
	v.Y = v.Y.Mul(w.Y)
	v.Z = v.Z.Mul(w.Z)
}

// SetScale multiplies every component by c in place.
func (v *Vec3) SetScale(c Fix) {
	v.X = v.X.Mul(c)
	v.Y = v.Y.Mul(c)
	v.Z = v.Z.Mul(c)
}
