package carousel

import (
	"fmt"

	"github.com/edwinsyarief/carousel/animator"
)

// Physical parameters for the default settle animation.
// See [animator.NewSpring].
type SpringConfig struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// Config holds the parameters of a carousel instance. Start from
// [DefaultConfig] and override what you need.
type Config struct {
	// Number of items on the carousel. Must be at least 4.
	ItemCount int

	// Radius of the end caps of the track, in viewport units.
	PathRadius float64

	// Fraction of the straight run that a drag must cover to move
	// the carousel by one item. The default 0.4 makes a full width
	// drag move roughly 2.5 items.
	DragDamping float64

	// Weight of the velocity-predicted end position when settling
	// a drag, in [0, 1]. The remaining weight goes to the position
	// where the drag actually ended.
	MomentumWeight float64

	// Updates per second the carousel will be driven at.
	UPS int

	// Parameters for the default spring animator. Ignored if an
	// explicit Animator is given.
	Spring SpringConfig

	// Optional animator override. Stateful animators must not be
	// shared between carousels.
	Animator animator.Animator
}

// Returns the default configuration for the given number of items.
func DefaultConfig(itemCount int) Config {
	return Config{
		ItemCount:      itemCount,
		PathRadius:     20.0,
		DragDamping:    0.4,
		MomentumWeight: 0.3,
		UPS:            animator.DefaultUPS,
		Spring: SpringConfig{
			Mass:      0.1,
			Stiffness: 20.0,
			Damping:   1.5,
		},
	}
}

// Validate reports the first problem found in the configuration.
// Errors wrap [ErrTooFewItems] or [ErrInvalidConfig].
func (self Config) Validate() error {
	if self.ItemCount < minItemCount {
		return fmt.Errorf("%w: got %d", ErrTooFewItems, self.ItemCount)
	}
	if !isFinite(self.PathRadius) || self.PathRadius < 0 {
		return fmt.Errorf("%w: path radius must be finite and >= 0, got %g", ErrInvalidConfig, self.PathRadius)
	}
	if !isFinite(self.DragDamping) || self.DragDamping <= 0 {
		return fmt.Errorf("%w: drag damping must be > 0, got %g", ErrInvalidConfig, self.DragDamping)
	}
	if !isFinite(self.MomentumWeight) || self.MomentumWeight < 0 || self.MomentumWeight > 1 {
		return fmt.Errorf("%w: momentum weight must be in [0, 1], got %g", ErrInvalidConfig, self.MomentumWeight)
	}
	if self.UPS < 1 {
		return fmt.Errorf("%w: UPS must be >= 1, got %d", ErrInvalidConfig, self.UPS)
	}
	if self.Animator == nil {
		spring := self.Spring
		if !isFinite(spring.Mass, spring.Stiffness, spring.Damping) ||
			spring.Mass <= 0 || spring.Stiffness <= 0 || spring.Damping < 0 {
			return fmt.Errorf("%w: spring requires mass > 0, stiffness > 0 and damping >= 0", ErrInvalidConfig)
		}
	}
	return nil
}

func (self Config) newAnimator() animator.Animator {
	if self.Animator != nil {
		return self.Animator
	}
	return animator.NewSpring(self.UPS, self.Spring.Mass, self.Spring.Stiffness, self.Spring.Damping)
}
