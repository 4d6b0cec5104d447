package fxmath

// Fix is a signed 24.8 fixed-point number: the underlying int32 holds the
// real value scaled by 256, giving 8 fractional bits. Arithmetic wraps on
// overflow exactly like int32; there is no saturation and no overflow
// detection. Callers that work with magnitudes above roughly 2^23 should use
// the 64-bit-widened Mul64 and Div64 variants.
type Fix int32

// Fixed-point format constants.
const (
	Shift = 8          // fractional bits
	Scale = 1 << Shift // one, as a raw integer
	Mask  = Scale - 1  // fractional mask
	One   = Fix(Scale) // one, as a Fix
)

// FromInt converts an integer to fixed-point. Exact for |d| < 2^23.
func FromInt(d int) Fix {
	return Fix(d) << Shift
}

// FromFloat converts a float to fixed-point, truncating toward zero.
// Fractional bits beyond the 8 available are lost.
func FromFloat(f float64) Fix {
	return Fix(f * Scale)
}

// Int returns the integer part, truncating toward zero:
// FromFloat(-1.5).Int() == -1.
func (x Fix) Int() int {
	return int(x / Scale)
}

// Uint returns the value shifted right by the fractional bits. The shift is
// arithmetic, so negative values round toward negative infinity rather than
// toward zero; this differs from Int for negative x and is only meaningful
// as an unsigned quantity for x >= 0.
func (x Fix) Uint() uint32 {
	return uint32(x >> Shift)
}

// Frac returns the fractional part as an unsigned quantity in [0, Scale).
// It is the low 8 bits of the representation, non-negative for any sign of x.
func (x Fix) Frac() uint32 {
	return uint32(x) & Mask
}

// Float converts the fixed-point value to a float64.
func (x Fix) Float() float64 {
	return float64(x) / Scale
}

// Add returns x + y. Wraps on overflow.
func (x Fix) Add(y Fix) Fix {
	return x + y
}

// Sub returns x - y. Wraps on overflow.
func (x Fix) Sub(y Fix) Fix {
	return x - y
}

// Mul returns the fixed-point product (x*y)>>Shift using 32-bit
// intermediates. The intermediate product overflows once the operand
// magnitudes exceed roughly 2^23 in representation units; use Mul64 there.
func (x Fix) Mul(y Fix) Fix {
	return (x * y) >> Shift
}

// Mul64 is Mul with the product widened to 64 bits before the shift, so the
// intermediate cannot overflow. Equal to Mul wherever Mul does not overflow.
func (x Fix) Mul64(y Fix) Fix {
	return Fix((int64(x) * int64(y)) >> Shift)
}

// Div returns the fixed-point quotient (x<<Shift)/y using 32-bit
// intermediates. The pre-scaled numerator overflows for |x| >= 2^23; use
// Div64 there. Panics if y == 0.
func (x Fix) Div(y Fix) Fix {
	return (x * Scale) / y
}

// Div64 is Div with the numerator widened to 64 bits before scaling.
// Panics if y == 0.
func (x Fix) Div64(y Fix) Fix {
	return Fix((int64(x) << Shift) / int64(y))
}

// Reciprocal returns an approximate fixed-point reciprocal of a with fp
// fractional bits, rounded up: (2^fp + a - 1) / a. Feed the result to
// RecipMul to replace a runtime division by a with a multiply and shift.
func Reciprocal(a, fp int) int {
	return (1<<fp + a - 1) / a
}

// RecipMul divides x by a via reciprocal multiplication: x * ((2^fp+a-1)/a)
// all shifted down by fp. This is only accurate within a bounded numerator
// range: with m = Reciprocal(a, fp), the result matches x/a only while
// x < 2^fp / (m*a - 2^fp). Outside that range the result drifts high; the
// caller picks fp large enough for its domain.
func RecipMul(x, a, fp int) int {
	return x * ((1<<fp + a - 1) / a) >> fp
}
