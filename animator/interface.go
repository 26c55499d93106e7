// This package defines the [Animator] interface that carousels use
// to move their displayed scroll offset towards the settled offset,
// and provides a few default implementations.
//
// Animators are stepped once per update with a fixed time delta, so
// all built-in implementations need to know the updates per second
// (UPS) they'll be driven at. Carousels default to an underdamped
// [Spring], which overshoots slightly before settling.
package animator

// The interface for carousel offset animators.
//
// Given the current displayed offset, the target offset and the
// speed of the previous update (offset units per second), Update()
// returns the change to apply to the current offset for this tick.
//
// Implementations must converge: repeated updates towards a fixed
// target must eventually return exactly target - current.
type Animator interface {
	Update(current, target, prevSpeed float64) float64
}

// Optional interface for animators that keep internal state. Reset()
// is called whenever the animation in flight is discarded, e.g.
// when a new drag begins before the previous settle completed.
type Resetter interface {
	Reset()
}

// Default updates per second when none are given.
const DefaultUPS = 60

// Distance and speed under which built-in animators snap to target.
const Epsilon = 1e-4

func updateDelta(ups int) float64 {
	if ups <= 0 {
		ups = DefaultUPS
	}
	return 1.0 / float64(ups)
}
