package carousel

import (
	"math"

	"github.com/edwinsyarief/carousel/animator"
)

// ScrollState is the mutable part of a carousel. While dragging, the
// scroll offset is Committed + Live; once the drag ends, Live goes
// back to zero and Committed absorbs the settled offset.
type ScrollState struct {
	Committed float64
	Live      float64
	Dragging  bool
}

// Returns Committed + Live.
func (self ScrollState) Offset() float64 {
	return self.Committed + self.Live
}

// scroller converts drags into offsets and animates the displayed
// offset towards the committed one. Events must be serialized by
// the caller.
type scroller struct {
	state ScrollState

	// displayed offset. Follows state.Offset() while dragging and
	// is moved towards state.Committed by the animator otherwise
	current   float64
	prevSpeed float64

	pathRadius     float64
	dragDamping    float64
	momentumWeight float64
	ups            int
	animator       animator.Animator
}

func newScroller(config Config) scroller {
	return scroller{
		pathRadius:     config.PathRadius,
		dragDamping:    config.DragDamping,
		momentumWeight: config.MomentumWeight,
		ups:            config.UPS,
		animator:       config.newAnimator(),
	}
}

// Converts a horizontal drag distance into offset units.
func (self *scroller) normalize(delta, rectWidth float64) float64 {
	travel := max(rectWidth-2*self.pathRadius, 1.0)
	return delta / (travel * self.dragDamping)
}

// --- drag ---

func (self *scroller) dragChanged(deltaWidth, rectWidth float64) error {
	if !isFinite(deltaWidth, rectWidth) {
		return ErrNonFinite
	}
	base := self.state.Committed
	if !self.state.Dragging {
		base = self.current
	}
	live := self.normalize(deltaWidth, rectWidth)
	if !isFinite(live, base+live) {
		return ErrNonFinite
	}
	if !self.state.Dragging {
		// adopt whatever the settle animation reached so far
		self.state.Committed = base
		self.state.Dragging = true
		self.discardAnimation()
	}
	self.state.Live = live
	self.current = self.state.Offset()
	return nil
}

func (self *scroller) dragEnded(predictedDeltaWidth, rectWidth float64) (float64, error) {
	if !isFinite(predictedDeltaWidth, rectWidth) {
		return self.state.Committed, ErrNonFinite
	}
	if !self.state.Dragging {
		return self.state.Committed, nil
	}
	predicted := self.state.Committed + self.normalize(predictedDeltaWidth, rectWidth)
	return self.settle(predicted)
}

// Cancelled drags settle as if they had ended with no velocity.
func (self *scroller) dragCancelled() float64 {
	if !self.state.Dragging {
		return self.state.Committed
	}
	settled, _ := self.settle(self.state.Offset()) // offset is always finite
	return settled
}

// Commits the blend of the live and predicted offsets. Non-finite
// results leave the drag untouched.
func (self *scroller) settle(predicted float64) (float64, error) {
	offset := self.state.Offset()
	weight := self.momentumWeight
	settled := math.Round(offset*(1.0-weight) + predicted*weight)
	if !isFinite(predicted, settled) {
		return self.state.Committed, ErrNonFinite
	}
	self.state = ScrollState{Committed: settled}
	self.current = offset // animation starts from the live value
	return settled, nil
}

// --- taps ---

func (self *scroller) advance(steps float64) bool {
	if self.state.Dragging {
		return false
	}
	self.state.Committed += steps
	return true
}

// --- animation ---

func (self *scroller) update() {
	if self.state.Dragging {
		return
	}
	target := self.state.Committed
	remaining := target - self.current
	change := self.animator.Update(self.current, target, self.prevSpeed)
	if math.IsNaN(change) || math.IsInf(change, 0) {
		panic("animator returned a non-finite change")
	}
	if change == remaining {
		self.current = target // exact arrival, free of rounding
	} else {
		self.current += change
	}
	self.prevSpeed = change * float64(self.ups)
}

func (self *scroller) isSettling() bool {
	return !self.state.Dragging && self.current != self.state.Committed
}

func (self *scroller) reset(offset float64) error {
	if !isFinite(offset) {
		return ErrNonFinite
	}
	self.state = ScrollState{Committed: offset}
	self.current = offset
	self.discardAnimation()
	return nil
}

func (self *scroller) discardAnimation() {
	self.prevSpeed = 0
	if resetter, ok := self.animator.(animator.Resetter); ok {
		resetter.Reset()
	}
}
