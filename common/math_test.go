package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(3) != 1 || Sign(-0.5) != -1 || Sign(0) != 0 {
		t.Fatalf("unexpected sign results")
	}
}

func TestJumpPower(t *testing.T) {
	// h=30, g=450: jt = sqrt(1/15).
	jt := math.Sqrt(30.0 / 450.0)
	want := 450*jt + 30/jt
	got := JumpPower(30, 450)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("JumpPower = %v, want %v", got, want)
	}
	if got <= math.Sqrt(2*450*30) {
		t.Fatalf("JumpPower %v should exceed the projectile speed", got)
	}
}
