package carousel

import (
	"math"
	"testing"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func distance(a, b ebimath.Vector) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func approxEqual(x, y, tolerance float64) bool {
	return math.Abs(x-y) <= tolerance
}
