package animator

import (
	"math"

	"github.com/charmbracelet/harmonica"
	ebimath "github.com/edwinsyarief/ebi-math"
)

// Spring moves the offset like a damped harmonic oscillator attached
// to the target. It's parametrized physically (mass, stiffness and
// damping) and integrated in closed form by harmonica.
//
// Spring keeps its own velocity between updates, so each carousel
// needs its own instance. Create springs with [NewSpring].
type Spring struct {
	spring    harmonica.Spring
	frequency float64
	ratio     float64
	velocity  float64
}

// Creates a spring for the given updates per second and physical
// parameters. The mass and stiffness must be positive and the
// damping non-negative, otherwise the function panics.
//
// Carousels use mass 0.1, stiffness 20 and damping 1.5 by default.
func NewSpring(ups int, mass, stiffness, damping float64) *Spring {
	if !(mass > 0) || !(stiffness > 0) || !(damping >= 0) {
		panic("spring requires mass > 0, stiffness > 0 and damping >= 0")
	}
	if ups <= 0 {
		ups = DefaultUPS
	}
	frequency := math.Sqrt(stiffness / mass)
	ratio := damping / (2 * math.Sqrt(stiffness*mass))
	return &Spring{
		spring:    harmonica.NewSpring(harmonica.FPS(ups), frequency, ratio),
		frequency: frequency,
		ratio:     ratio,
	}
}

// Returns the angular frequency and damping ratio derived from
// the physical parameters.
func (self *Spring) Parameters() (angularFrequency, dampingRatio float64) {
	return self.frequency, self.ratio
}

// Returns the velocity the spring ended the last update with.
func (self *Spring) Velocity() float64 {
	return self.velocity
}

func (self *Spring) Update(current, target, prevSpeed float64) float64 {
	// stabilization
	diff := target - current
	if ebimath.Abs(diff) < Epsilon && ebimath.Abs(self.velocity) < Epsilon {
		self.velocity = 0
		return diff
	}

	// general update
	position, velocity := self.spring.Update(current, self.velocity, target)
	self.velocity = velocity
	return position - current
}

// Discards the velocity accumulated so far.
func (self *Spring) Reset() {
	self.velocity = 0
}
