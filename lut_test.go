package fxmath

import (
	"math"
	"testing"
)

func TestSin_KnownAngles(t *testing.T) {
	tests := []struct {
		name  string
		theta uint32
		want  int32
	}{
		{"zero", 0, 0},
		{"quarter turn", QuarterTurn, 1 << SinBits},
		{"half turn", FullTurn / 2, 0},
		{"three quarters", 3 * FullTurn / 4, -(1 << SinBits)},
		{"eighth turn", FullTurn / 8, 2896}, // round(sin(pi/4)*4096)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sin(tt.theta); got != tt.want {
				t.Errorf("Sin(%#x) = %d, want %d", tt.theta, got, tt.want)
			}
		})
	}
}

func TestCos_KnownAngles(t *testing.T) {
	tests := []struct {
		name  string
		theta uint32
		want  int32
	}{
		{"zero", 0, 1 << SinBits},
		{"quarter turn", QuarterTurn, 0},
		{"half turn", FullTurn / 2, -(1 << SinBits)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cos(tt.theta); got != tt.want {
				t.Errorf("Cos(%#x) = %d, want %d", tt.theta, got, tt.want)
			}
		})
	}
}

func TestSin_PeriodicOverFullTurn(t *testing.T) {
	for theta := uint32(0); theta < FullTurn; theta += 97 {
		if a, b := Sin(theta), Sin(theta+FullTurn); a != b {
			t.Fatalf("Sin(%#x) = %d but Sin(+full turn) = %d", theta, a, b)
		}
	}
}

func TestCos_IsQuarterTurnShiftedSin(t *testing.T) {
	for theta := uint32(0); theta < FullTurn; theta += 61 {
		if c, s := Cos(theta), Sin(theta+QuarterTurn); c != s {
			t.Fatalf("Cos(%#x) = %d but Sin(+quarter turn) = %d", theta, c, s)
		}
	}
}

func TestSin_MatchesFloatSine(t *testing.T) {
	// Direct lookup snaps to the nearest-below of 512 samples, so allow the
	// discretization of one sample step plus table rounding.
	for theta := uint32(0); theta < FullTurn; theta += 31 {
		want := math.Sin(2 * math.Pi * float64(theta) / FullTurn) * (1 << SinBits)
		got := float64(Sin(theta))
		if math.Abs(got-want) > 52 {
			t.Fatalf("Sin(%#x) = %v, float sine = %v", theta, got, want)
		}
	}
}

func TestSinLerp_MatchesFloatSine(t *testing.T) {
	for theta := uint32(0); theta < FullTurn; theta += 13 {
		want := math.Sin(2 * math.Pi * float64(theta) / FullTurn) * (1 << SinBits)
		got := float64(SinLerp(theta))
		if math.Abs(got-want) > 2 {
			t.Fatalf("SinLerp(%#x) = %v, float sine = %v", theta, got, want)
		}
	}
}

func TestSinLerp_AgreesWithSinAtSamples(t *testing.T) {
	for i := uint32(0); i < sinSamples; i++ {
		theta := i << angleShift
		if a, b := SinLerp(theta), Sin(theta); a != b {
			t.Fatalf("SinLerp(%#x) = %d but Sin = %d at sample %d", theta, a, b, i)
		}
	}
}

func TestCosLerp_WrapsAtUpperBoundary(t *testing.T) {
	// Angles in the last quarter push the interpolation index across the
	// table end; the guard entries make it wrap seamlessly.
	for _, theta := range []uint32{0xFF80, 0xFFFF, 0xC001} {
		want := math.Cos(2 * math.Pi * float64(theta) / FullTurn) * (1 << SinBits)
		got := float64(CosLerp(theta))
		if math.Abs(got-want) > 2 {
			t.Fatalf("CosLerp(%#x) = %v, float cosine = %v", theta, got, want)
		}
	}
}

func TestRecip_KnownValues(t *testing.T) {
	tests := []struct {
		x    uint32
		want uint32
	}{
		{1, 65536},
		{2, 32768},
		{3, 21845},
		{7, 9362},
		{255, 257},
		{256, 256},
	}
	for _, tt := range tests {
		if got := Recip(tt.x); got != tt.want {
			t.Errorf("Recip(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestRecip_WithinRoundingOfExact(t *testing.T) {
	for i := uint32(1); i <= 255; i++ {
		want := math.Round((1 << RecipBits) / float64(i))
		if got := float64(Recip(i)); math.Abs(got-want) > 1 {
			t.Errorf("Recip(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestRecip_ZeroIsSentinel(t *testing.T) {
	// Recip(0) is a caller contract violation; the entry is a zero sentinel,
	// not a value.
	if got := Recip(0); got != 0 {
		t.Errorf("Recip(0) = %d, want sentinel 0", got)
	}
}

func TestTables_Shape(t *testing.T) {
	sin := SinTable()
	if len(sin) != sinSamples+2 {
		t.Fatalf("len(SinTable()) = %d, want %d", len(sin), sinSamples+2)
	}
	if sin[sinSamples] != sin[0] || sin[sinSamples+1] != sin[1] {
		t.Errorf("sine guard entries = %d,%d, want %d,%d",
			sin[sinSamples], sin[sinSamples+1], sin[0], sin[1])
	}
	rec := RecipTable()
	if len(rec) != 257 {
		t.Fatalf("len(RecipTable()) = %d, want 257", len(rec))
	}
}

func BenchmarkSin(b *testing.B) {
	var s int32
	for i := 0; i < b.N; i++ {
		s += Sin(uint32(i))
	}
	benchSinkInt32 = s
}

func BenchmarkSinLerp(b *testing.B) {
	var s int32
	for i := 0; i < b.N; i++ {
		s += SinLerp(uint32(i))
	}
	benchSinkInt32 = s
}

func BenchmarkMathSin(b *testing.B) {
	var s float64
	for i := 0; i < b.N; i++ {
		s += math.Sin(float64(i))
	}
	benchSinkFloat = s
}

var benchSinkInt32 int32
