package fxmath

// Scalar boundary helpers. All ranges here are half-open: lo is inclusive,
// hi is exclusive.

// Sign returns +1 for x >= 0 and -1 for x < 0.
func Sign(x int) int {
	if x >= 0 {
		return 1
	}
	return -1
}

// Sign3 returns the tri-state sign of x: -1, 0 or +1.
func Sign3(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// InRange reports whether x lies in [lo, hi).
func InRange(x, lo, hi int) bool {
	return x >= lo && x < hi
}

// Clamp truncates x into [lo, hi). Values at or above hi map to hi-1.
func Clamp(x, lo, hi int) int {
	if x >= hi {
		return hi - 1
	}
	if x < lo {
		return lo
	}
	return x
}

// Reflect bounces x off the walls of [lo, hi): a value outside the range is
// placed back inside at the same distance from the wall it crossed.
func Reflect(x, lo, hi int) int {
	if x >= hi {
		return 2*(hi-1) - x
	}
	if x < lo {
		return 2*lo - x
	}
	return x
}

// Wrap shifts x by whole range lengths until it lies in [lo, hi). A single
// step is applied, matching movement deltas smaller than the range.
func Wrap(x, lo, hi int) int {
	if x >= hi {
		return x + lo - hi
	}
	if x < lo {
		return x + hi - lo
	}
	return x
}
