// Package fxmath provides deterministic fixed-point arithmetic, lookup-table
// trigonometry and integer geometric primitives.
//
// # Overview
//
// fxmath targets code that cannot, or does not want to, rely on hardware
// floating point: software rasterizers, embedded and retro-console style
// renderers, and anything that needs bit-exact reproducible math. Every
// operation is a pure computation with constant cost; there are no
// allocations, no branches on error paths, and no floating point outside of
// conversions and one-time table generation.
//
// # Quick Start
//
//	import "github.com/gogpu/fxmath"
//
//	x := fxmath.FromFloat(1.5)          // 24.8 fixed-point
//	y := x.Mul(fxmath.FromInt(3))       // 4.5
//	s := fxmath.Sin(fxmath.QuarterTurn) // 4096, i.e. 1.0 at 12 bits
//
// # Numeric model
//
// Fix is a signed 24.8 fixed-point number. Arithmetic wraps like int32 and
// is never checked: the hot path trusts the caller, exactly as the
// equivalent hand-written integer code would. Each narrowing operation
// documents its rounding direction; where a 32-bit intermediate can
// overflow, a 64-bit-widened variant (Mul64, Div64) is provided.
//
// Angles are 16-bit binary turns: a full turn is 0x10000, so angle
// arithmetic wraps for free in a uint32. Sin and Cos read a 512-sample table
// at 12 fractional bits; Recip reads a 256-entry reciprocal table at 16
// fractional bits. Both tables carry guard entries so Lerp can interpolate
// across their upper boundary without branching.
//
// # Concurrency
//
// All operations are pure and reentrant. The lookup tables are built once
// during package initialization and are read-only afterwards, so everything
// here may be called from any goroutine without synchronization.
package fxmath
