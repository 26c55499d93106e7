package animator

import ebimath "github.com/edwinsyarief/ebi-math"

type animator = Animator

// A few stateless built-in animators.
var (
	// Update(...) always returns 0. The offset never moves.
	Frozen animator = frozenAnimator{}

	// Update(...) always returns target - current.
	Instant animator = instantAnimator{}
)

type frozenAnimator struct{}

func (frozenAnimator) Update(current, target, prevSpeed float64) float64 {
	return 0
}

type instantAnimator struct{}

func (instantAnimator) Update(current, target, prevSpeed float64) float64 {
	return target - current
}

// Linear moves the offset towards the target at a speed proportional
// to the remaining distance, bounded by MaxSpeed. The zero value is
// usable: it moves at up to 6 items per second at [DefaultUPS].
type Linear struct {
	UPS      int     // updates per second, DefaultUPS if <= 0
	Rate     float64 // fraction of the distance covered per second, 8 if <= 0
	MaxSpeed float64 // items per second, 6 if <= 0
}

func (self Linear) Update(current, target, prevSpeed float64) float64 {
	// stabilization
	diff := target - current
	if ebimath.Abs(diff) < Epsilon {
		return diff
	}

	// general update
	delta := updateDelta(self.UPS)
	rate := self.Rate
	if rate <= 0 {
		rate = 8.0
	}
	maxSpeed := self.MaxSpeed
	if maxSpeed <= 0 {
		maxSpeed = 6.0
	}

	advance := diff * min(rate*delta, 1.0)
	maxAdvance := maxSpeed * delta
	minAdvance := Epsilon
	switch {
	case ebimath.Abs(advance) > maxAdvance:
		advance = copySign(maxAdvance, diff)
	case ebimath.Abs(advance) < minAdvance:
		advance = copySign(minAdvance, diff)
	}
	if ebimath.Abs(advance) > ebimath.Abs(diff) {
		return diff
	}
	return advance
}

func copySign(magnitude, sign float64) float64 {
	if sign < 0 {
		return -magnitude
	}
	return magnitude
}
