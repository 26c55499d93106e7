package carousel

import (
	"fmt"
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// Viewport is the rectangle the carousel is laid out in. Positions
// returned by the engine are relative to its top-left corner. The
// viewport is passed on every evaluation, so layout changes need no
// extra bookkeeping.
type Viewport struct {
	Width  float64
	Height float64
}

// Returns a viewport with the given dimensions.
func VP(width, height float64) Viewport {
	return Viewport{Width: width, Height: height}
}

// Reports whether both dimensions are finite and non-negative.
func (self Viewport) Valid() bool {
	return isFinite(self.Width, self.Height) && self.Width >= 0 && self.Height >= 0
}

func (self Viewport) String() string {
	return fmt.Sprintf("%gx%g", self.Width, self.Height)
}

// Returns the length of each of the two straight runs of the
// track. Radii larger than half the viewport width collapse the
// runs to zero instead of inverting them.
func StraightRun(viewport Viewport, pathRadius float64) float64 {
	return max(viewport.Width-2*pathRadius, 0)
}

// PathPosition returns the point of the carousel track at the given
// phase. The track is a closed loop of period 5:
//
//	[0, 1)  front run, easing into the valley while moving right
//	[1, 2)  front run, easing back out of the valley
//	[2, 3)  right end cap (half circle)
//	[3, 4)  back run, moving left at the bottom of the viewport
//	[4, 5)  left end cap (half circle)
//
// Any real phase is accepted; it's reduced modulo 5 first.
func PathPosition(phase float64, viewport Viewport, pathRadius float64) ebimath.Vector {
	phase = wrap(phase, phasePeriod)
	run := StraightRun(viewport, pathRadius)
	height := viewport.Height
	valleyDepth := height / 3

	switch {
	case phase < 1:
		x := phase/2*run + pathRadius
		y := height - 2*pathRadius - easeInOut(phase)*valleyDepth
		return ebimath.V(x, y)
	case phase < 2:
		x := phase/2*run + pathRadius
		y := height - 2*pathRadius - easeInOut(2-phase)*valleyDepth
		return ebimath.V(x, y)
	case phase < 3:
		angle := -math.Pi/2 + (phase-2)*math.Pi
		return capPoint(pathRadius+run, height-pathRadius, pathRadius, angle)
	case phase < 4:
		x := pathRadius + run - (phase-3)*run
		return ebimath.V(x, height)
	default:
		angle := math.Pi/2 + (phase-4)*math.Pi
		return capPoint(pathRadius, height-pathRadius, pathRadius, angle)
	}
}

func capPoint(cx, cy, radius, angle float64) ebimath.Vector {
	return ebimath.V(cx+math.Cos(angle)*radius, cy+math.Sin(angle)*radius)
}

// Rational smoothstep p²/(p²+(1-p)²), flat at both ends.
func easeInOut(p float64) float64 {
	p2 := p * p
	q := 1 - p
	return p2 / (p2 + q*q)
}
