// This package turns raw single-pointer input into the drag and tap
// events a carousel consumes. The [Recognizer] is input agnostic and
// works with explicit timestamps, while the [Poller] feeds it from
// Ebitengine's mouse and touch state.
//
// Only one pointer is tracked at a time. Secondary touches are
// ignored until the primary one is released.
package gesture

import (
	"math"
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// Kind identifies the type of a recognized [Event].
type Kind uint8

const (
	None Kind = iota
	DragChanged
	DragEnded
	Tap
)

func (self Kind) String() string {
	switch self {
	case None:
		return "None"
	case DragChanged:
		return "DragChanged"
	case DragEnded:
		return "DragEnded"
	case Tap:
		return "Tap"
	default:
		panic("invalid gesture Kind")
	}
}

// Event is a recognized gesture. Translation is measured from the
// point where the pointer was pressed. Predicted is only set for
// [DragEnded] events and extrapolates the translation with the
// release velocity.
type Event struct {
	Kind        Kind
	Translation ebimath.Vector
	Predicted   ebimath.Vector
}

const (
	DefaultDeadZone   = 1.0                    // pixels
	DefaultProjection = 250 * time.Millisecond // see Recognizer.Projection
	velocityWindow    = 100 * time.Millisecond
	maxSamples        = 16
)

type sample struct {
	x, y float64
	at   time.Duration
}

// Recognizer tracks a single pointer and classifies its motion as a
// tap or a drag. Timestamps only need to be monotonic; a tick counter
// converted to a duration works fine.
//
// The zero value is ready to use with the default settings.
type Recognizer struct {
	// Distance the pointer must travel before a press becomes a
	// drag. Releases within the dead zone are taps.
	DeadZone float64

	// How far ahead the release velocity is extrapolated to compute
	// the predicted end translation of a drag.
	Projection time.Duration

	pressed  bool
	dragging bool
	startX   float64
	startY   float64
	samples  [maxSamples]sample // ring buffer
	head     int
	count    int
}

// Reports whether a pointer is currently pressed.
func (self *Recognizer) IsPressed() bool { return self.pressed }

// Reports whether the current press has become a drag.
func (self *Recognizer) IsDragging() bool { return self.dragging }

// Registers a pointer press. Pressing while already pressed restarts
// the gesture without emitting events.
func (self *Recognizer) Press(x, y float64, at time.Duration) {
	self.pressed = true
	self.dragging = false
	self.startX, self.startY = x, y
	self.count = 0
	self.push(x, y, at)
}

// Registers a pointer motion. Returns a [DragChanged] event once the
// pointer has left the dead zone, or an event of kind [None].
func (self *Recognizer) Move(x, y float64, at time.Duration) Event {
	if !self.pressed {
		return Event{}
	}
	self.push(x, y, at)
	if !self.dragging {
		if math.Hypot(x-self.startX, y-self.startY) < self.deadZone() {
			return Event{}
		}
		self.dragging = true
	}
	return Event{Kind: DragChanged, Translation: self.translation(x, y)}
}

// Registers a pointer release, returning a [DragEnded] or [Tap] event.
func (self *Recognizer) Release(x, y float64, at time.Duration) Event {
	if !self.pressed {
		return Event{}
	}
	self.push(x, y, at)
	self.pressed = false
	if !self.dragging {
		return Event{Kind: Tap}
	}
	self.dragging = false

	translation := self.translation(x, y)
	vx, vy := self.Velocity()
	seconds := self.projection().Seconds()
	predicted := ebimath.V(translation.X+vx*seconds, translation.Y+vy*seconds)
	return Event{Kind: DragEnded, Translation: translation, Predicted: predicted}
}

// Abandons the current gesture. If a drag was in progress, a
// [DragEnded] event without any velocity is returned so that the
// consumer can settle.
func (self *Recognizer) Cancel() Event {
	if !self.pressed {
		return Event{}
	}
	wasDragging := self.dragging
	self.pressed, self.dragging = false, false
	if !wasDragging {
		return Event{}
	}
	last := self.samples[self.index(self.count-1)]
	translation := self.translation(last.x, last.y)
	return Event{Kind: DragEnded, Translation: translation, Predicted: translation}
}

// Velocity returns the pointer velocity in pixels per second,
// estimated from the samples received during the last 100ms.
func (self *Recognizer) Velocity() (vx, vy float64) {
	if self.count < 2 {
		return 0, 0
	}
	last := self.samples[self.index(self.count-1)]
	first := last
	for i := self.count - 2; i >= 0; i-- {
		s := self.samples[self.index(i)]
		if last.at-s.at > velocityWindow {
			break
		}
		first = s
	}
	elapsed := (last.at - first.at).Seconds()
	if elapsed <= 0 {
		return 0, 0
	}
	return (last.x - first.x) / elapsed, (last.y - first.y) / elapsed
}

func (self *Recognizer) translation(x, y float64) ebimath.Vector {
	return ebimath.V(x-self.startX, y-self.startY)
}

func (self *Recognizer) push(x, y float64, at time.Duration) {
	if self.count == maxSamples {
		self.head = (self.head + 1) % maxSamples
		self.count -= 1
	}
	self.samples[self.index(self.count)] = sample{x: x, y: y, at: at}
	self.count += 1
}

func (self *Recognizer) index(i int) int {
	return (self.head + i) % maxSamples
}

func (self *Recognizer) deadZone() float64 {
	if self.DeadZone <= 0 {
		return DefaultDeadZone
	}
	return self.DeadZone
}

func (self *Recognizer) projection() time.Duration {
	if self.Projection <= 0 {
		return DefaultProjection
	}
	return self.Projection
}
