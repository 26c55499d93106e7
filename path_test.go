package carousel

import (
	"math"
	"testing"
)

func TestPathPositionSegmentStarts(t *testing.T) {
	vp := VP(400, 250)
	const radius = 20.0
	tests := []struct {
		phase float64
		x, y  float64
	}{
		{0, 20, 210},
		{1, 200, 210 - 250.0/3},
		{2, 380, 210},
		{2.5, 400, 230},
		{3, 380, 250},
		{3.5, 200, 250},
		{4, 20, 250},
		{4.5, 0, 230},
	}
	for _, tt := range tests {
		got := PathPosition(tt.phase, vp, radius)
		if !approxEqual(got.X, tt.x, 1e-9) || !approxEqual(got.Y, tt.y, 1e-9) {
			t.Errorf("phase %g: got (%g, %g), want (%g, %g)", tt.phase, got.X, got.Y, tt.x, tt.y)
		}
	}
}

func TestPathPositionBoundaries(t *testing.T) {
	const eps = 1e-9
	vp := VP(400, 250)
	for _, radius := range []float64{0, 20, 60} {
		for _, boundary := range []float64{1, 2, 3, 4, 5} {
			before := PathPosition(boundary-eps, vp, radius)
			after := PathPosition(boundary+eps, vp, radius)
			if d := distance(before, after); d > 1e-5 {
				t.Errorf("radius %g: discontinuity of %g at phase %g (%v vs %v)",
					radius, d, boundary, before, after)
			}
		}
	}
}

func TestPathPositionPeriodic(t *testing.T) {
	vp := VP(320, 480)
	for phase := -12.0; phase < 12.0; phase += 0.37 {
		a := PathPosition(phase, vp, 15)
		b := PathPosition(phase+5, vp, 15)
		c := PathPosition(phase-10, vp, 15)
		if distance(a, b) > 1e-9 || distance(a, c) > 1e-9 {
			t.Errorf("phase %g: got %v, %v and %v, expected them to be equal", phase, a, b, c)
		}
	}
}

func TestPathPositionValleySymmetry(t *testing.T) {
	vp := VP(400, 250)
	for p := 0.0; p <= 1.0; p += 0.125 {
		a := PathPosition(p, vp, 20)
		b := PathPosition(2-p, vp, 20)
		if !approxEqual(a.Y, b.Y, 1e-9) {
			t.Errorf("phase %g and %g: got heights %g and %g, expected them to be equal", p, 2-p, a.Y, b.Y)
		}
		if b.X < a.X {
			t.Errorf("phase %g: x went backwards (%g -> %g)", p, a.X, b.X)
		}
	}
}

func TestPathPositionDegenerateRadius(t *testing.T) {
	vp := VP(400, 250)
	if run := StraightRun(vp, 300); run != 0 {
		t.Errorf("got straight run %g, expected 0", run)
	}
	for phase := 0.0; phase < 5.0; phase += 0.05 {
		pt := PathPosition(phase, vp, 300)
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			t.Fatalf("phase %g: got non-finite point %v", phase, pt)
		}
	}
	// the back run collapses onto the bottom of the left cap
	pt := PathPosition(3.5, vp, 300)
	if !approxEqual(pt.X, 300, 1e-9) || !approxEqual(pt.Y, 250, 1e-9) {
		t.Errorf("got %v, expected (300, 250)", pt)
	}
}

func TestViewportValid(t *testing.T) {
	tests := []struct {
		vp   Viewport
		want bool
	}{
		{VP(400, 250), true},
		{VP(0, 0), true},
		{VP(-1, 10), false},
		{VP(math.NaN(), 10), false},
		{VP(10, math.Inf(1)), false},
	}
	for _, tt := range tests {
		if got := tt.vp.Valid(); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.vp, got, tt.want)
		}
	}
}
