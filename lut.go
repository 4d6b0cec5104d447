package fxmath

import "math"

// Angle units: a full turn is 0x10000, so a uint32 angle wraps naturally and
// the low 16 bits select the direction. The sine table stores 512 samples per
// turn, which makes one sample span 128 angle units.
const (
	FullTurn    = 0x10000 // angle units in one full turn
	QuarterTurn = 0x4000

	sinSamples = 512 // table samples per turn
	angleShift = 7   // angle units per sample, as a shift

	// SinBits and RecipBits are the fractional bits of the values returned
	// by Sin/Cos and Recip respectively.
	SinBits   = 12
	RecipBits = 16
)

// The tables are package-level so they are built exactly once, before any
// lookup can run, and are never written again. Access goes through the
// functions below; SinTable and RecipTable expose the raw entries for use
// with Lerp.
var (
	sinTable   = buildSinTable()
	recipTable = buildRecipTable()
)

// buildSinTable samples sin over one full turn at 512 points, scaled to 12
// fractional bits and rounded to nearest. Entries 512 and 513 repeat entries
// 0 and 1 so interpolation across the wrap point needs no branch.
func buildSinTable() [sinSamples + 2]int16 {
	var t [sinSamples + 2]int16
	for i := 0; i < sinSamples; i++ {
		s := math.Sin(2 * math.Pi * float64(i) / sinSamples)
		t[i] = int16(math.Round(s * (1 << SinBits)))
	}
	t[sinSamples] = t[0]
	t[sinSamples+1] = t[1]
	return t
}

// buildRecipTable fills entry i with round(2^16/i) for i in [1,256]. Entry 0
// stays zero: the reciprocal of zero does not exist and Recip(0) returns this
// sentinel garbage. Entry 256 is the interpolation guard for lookups ending
// at 255.
func buildRecipTable() [257]uint32 {
	var t [257]uint32
	for i := 1; i <= 256; i++ {
		t[i] = uint32(math.Round((1 << RecipBits) / float64(i)))
	}
	return t
}

// Sin returns the sine of theta as a signed value with 12 fractional bits.
// theta is an angle with a full turn at 0x10000; values outside [0, 0xFFFF]
// wrap. The result is the nearest of the 512 table samples, with no
// interpolation; use SinLerp for sub-sample precision.
func Sin(theta uint32) int32 {
	return int32(sinTable[(theta>>angleShift)&(sinSamples-1)])
}

// Cos returns the cosine of theta as a signed value with 12 fractional bits,
// by reading the sine table a quarter turn ahead. Same contract as Sin.
func Cos(theta uint32) int32 {
	return int32(sinTable[((theta>>angleShift)+sinSamples/4)&(sinSamples-1)])
}

// SinLerp is Sin with linear interpolation between adjacent table samples,
// trading a few cycles for the 7 bits of angle that Sin discards.
func SinLerp(theta uint32) int32 {
	return Lerp(sinTable[:], theta&(FullTurn-1), angleShift)
}

// CosLerp is Cos with linear interpolation between adjacent table samples.
func CosLerp(theta uint32) int32 {
	return SinLerp(theta + QuarterTurn)
}

// Recip returns 1/x with 16 fractional bits, read straight from the
// reciprocal table. x must be in [1, 256]; Recip(0) is a precondition
// violation and returns the zero sentinel, not a value.
func Recip(x uint32) uint32 {
	return recipTable[x]
}

// SinTable returns the sine table: 512 samples over one turn at 12
// fractional bits, plus two wrap guard entries. The slice aliases the live
// table and must be treated as read-only; it exists so callers can run Lerp
// against it with their own index format.
func SinTable() []int16 {
	return sinTable[:]
}

// RecipTable returns the reciprocal table: entry i holds round(2^16/i) for i
// in [1,256], entry 0 is an unused sentinel. Read-only, for use with Lerp.
func RecipTable() []uint32 {
	return recipTable[:]
}
