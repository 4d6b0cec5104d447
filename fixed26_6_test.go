package fxmath

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFixed26_6_RoundTrip(t *testing.T) {
	for _, d := range []int{0, 1, -1, 100, -100, 1 << 20} {
		v := fixed.I(d)
		if got := FromFixed26_6(v).Fixed26_6(); got != v {
			t.Errorf("round trip of fixed.I(%d): got %v", d, got)
		}
	}
}

func TestFixed26_6_Values(t *testing.T) {
	tests := []struct {
		name string
		x    Fix
		want fixed.Int26_6
	}{
		{"one", One, fixed.I(1)},
		{"two and a half", FromFloat(2.5), fixed.I(2) + 32},
		{"negative", FromInt(-3), fixed.I(-3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Fixed26_6(); got != tt.want {
				t.Errorf("Fix(%d).Fixed26_6() = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestFromFixed26_6_Exact(t *testing.T) {
	if got, want := FromFixed26_6(fixed.I(2)+32), FromFloat(2.5); got != want {
		t.Errorf("FromFixed26_6(2.5) = %d, want %d", got, want)
	}
}

func TestPoint26_6(t *testing.T) {
	p := Pt(3, -4)
	if got, want := p.Point26_6(), fixed.P(3, -4); got != want {
		t.Errorf("Point26_6 = %v, want %v", got, want)
	}
	if got := FromPoint26_6(fixed.P(7, 8)); got != Pt(7, 8) {
		t.Errorf("FromPoint26_6 = %v, want (7,8)", got)
	}
}
