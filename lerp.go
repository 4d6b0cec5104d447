package fxmath

// LutEntry is the set of entry widths Lerp can interpolate over. It covers
// the sine table (int16) and the reciprocal table (uint32).
type LutEntry interface {
	~int16 | ~int32 | ~uint32
}

// Lerp linearly interpolates in an ordered lookup table. x is a fixed-point
// index with shift fractional bits: the integer part selects the entry, the
// fractional part blends toward the next one.
//
// The entry after the last one addressed must exist; both package tables
// carry guard entries for exactly this reason. Lerp does not bounds-check
// beyond the slice access itself.
func Lerp[T LutEntry](lut []T, x uint32, shift uint) int32 {
	i := x >> shift
	a := int64(lut[i])
	b := int64(lut[i+1])
	return int32(a + ((b-a)*int64(x-i<<shift))>>shift)
}
