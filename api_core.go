// Package carousel implements the animation engine of a looping
// image carousel: items travel along a closed track made of a
// valley-shaped front run, two half-circle end caps and a flat back
// run, growing as they approach the hero slot and shrinking as they
// recede.
//
// The engine is pure math. [PathPosition] maps a phase to a point on
// the track, [PhaseTable] and [Projector] map a fractional item index
// to a position, scale and tint, and [Carousel] turns drags and taps
// into a scroll offset that settles on whole items. Painting, input
// handling and asset loading live in the render, gesture and assets
// subpackages.
package carousel

import "github.com/edwinsyarief/carousel/animator"

// Creates a new carousel from the given configuration.
func New(config Config) (*Carousel, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	projector, err := NewProjector(config.ItemCount, config.PathRadius)
	if err != nil {
		return nil, err
	}
	return &Carousel{
		config:    config,
		projector: projector,
		scroll:    newScroller(config),
	}, nil
}

// Returns the carousel configuration. Changes to the returned value
// have no effect.
func (self *Carousel) Config() Config {
	return self.config
}

// Returns the current number of items.
func (self *Carousel) ItemCount() int {
	return self.config.ItemCount
}

// Changes the number of items, rebuilding the phase table. The
// scroll offset is preserved.
func (self *Carousel) SetItemCount(itemCount int) error {
	return self.setItemCount(itemCount)
}

// Returns the projector for the current item count.
func (self *Carousel) Projector() *Projector {
	return self.projector
}

// Returns the animator driving the displayed offset.
func (self *Carousel) Animator() animator.Animator {
	return self.scroll.animator
}

// --- scrolling ---

// Returns the scroll offset that must be used for rendering. While
// dragging, this is the committed offset plus the live drag. While
// settling, it's the intermediate value reached by the animator.
func (self *Carousel) Offset() float64 {
	return self.scroll.current
}

// Returns a copy of the scroll state.
func (self *Carousel) State() ScrollState {
	return self.scroll.state
}

// Reports whether a drag is in progress.
func (self *Carousel) IsDragging() bool {
	return self.scroll.state.Dragging
}

// Reports whether the displayed offset is still moving towards the
// committed offset.
func (self *Carousel) IsSettling() bool {
	return self.scroll.isSettling()
}

// Reports a drag translation. deltaWidth is the horizontal distance
// from the point where the drag started, and rectWidth is the width
// of the viewport the carousel is laid out in.
//
// The first call after an idle period starts a new drag. If a settle
// animation was in flight, its current value becomes the new base
// and the animation is discarded.
//
// Non-finite arguments, and translations too large to be expressed
// as a finite offset, are rejected with [ErrNonFinite] and leave the
// state untouched.
func (self *Carousel) DragChanged(deltaWidth, rectWidth float64) error {
	return self.scroll.dragChanged(deltaWidth, rectWidth)
}

// Ends the current drag. predictedDeltaWidth is the translation the
// drag would reach if its velocity decayed naturally. The settled
// offset blends the actual and predicted end positions and snaps
// to the nearest whole item; the displayed offset then animates
// towards it.
//
// Returns the settled offset. Calls without an active drag change
// nothing and return the committed offset.
// Non-finite results are rejected like in [Carousel.DragChanged].
func (self *Carousel) DragEnded(predictedDeltaWidth, rectWidth float64) (float64, error) {
	return self.scroll.dragEnded(predictedDeltaWidth, rectWidth)
}

// Cancels the current drag, e.g. when the gesture is interrupted.
// The drag settles as if it had ended without velocity, snapping to
// the whole item nearest to the current offset.
func (self *Carousel) CancelDrag() float64 {
	return self.scroll.dragCancelled()
}

// Advances the carousel by one item with an animation. Taps are
// ignored while dragging; the return value reports whether the
// carousel advanced.
func (self *Carousel) Advance() bool {
	return self.scroll.advance(1)
}

// Same as [Carousel.Advance], but moving back by one item.
func (self *Carousel) Retreat() bool {
	return self.scroll.advance(-1)
}

// Immediately sets the scroll offset without animation, discarding
// any drag or animation in progress.
func (self *Carousel) Reset(offset float64) error {
	return self.scroll.reset(offset)
}

// Steps the settle animation by one tick. Must be called once per
// update, at the configured UPS.
func (self *Carousel) Update() {
	self.scroll.update()
}

// --- projection ---

// Projects every item at the current offset. The returned slice is
// reused by the next call, so don't hold on to it.
func (self *Carousel) Items(viewport Viewport) ([]ProjectedItem, error) {
	return self.projectAll(viewport)
}

// Projects a single item at the current offset. Panics if the index
// is out of range.
func (self *Carousel) Item(index int, viewport Viewport) (ProjectedItem, error) {
	return self.projectOne(index, viewport)
}
