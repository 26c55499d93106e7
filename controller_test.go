package carousel

import (
	"errors"
	"math"
	"testing"

	"github.com/edwinsyarief/carousel/animator"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newTestCarousel(t *testing.T, anim animator.Animator) *Carousel {
	t.Helper()
	config := DefaultConfig(8)
	config.Animator = anim
	c, err := New(config)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// pixels needed to scroll by one item on a 400 wide viewport
// with the default radius and damping: (400 - 40) * 0.4
const pxPerItem = 144.0

func TestDragNormalization(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	if err := c.DragChanged(80, 400); err != nil {
		t.Fatal(err)
	}
	if got, want := c.Offset(), 80.0/144.0; !approxEqual(got, want, 1e-12) {
		t.Errorf("got offset %g, expected %g", got, want)
	}
	if !c.IsDragging() {
		t.Error("expected the carousel to be dragging")
	}
	diff(t, ScrollState{Committed: 0, Live: 80.0 / 144.0, Dragging: true}, c.State(), cmpopts.EquateApprox(0, 1e-12))

	// translations are absolute from the drag start, not incremental
	if err := c.DragChanged(-144, 400); err != nil {
		t.Fatal(err)
	}
	if got := c.Offset(); !approxEqual(got, -1, 1e-12) {
		t.Errorf("got offset %g, expected -1", got)
	}
}

func TestDragSettleWithoutVelocity(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	delta := 1.3 * pxPerItem
	if err := c.DragChanged(delta, 400); err != nil {
		t.Fatal(err)
	}
	settled, err := c.DragEnded(delta, 400)
	if err != nil {
		t.Fatal(err)
	}
	if settled != 1 {
		t.Errorf("got settled offset %g, expected 1", settled)
	}
	diff(t, ScrollState{Committed: 1}, c.State())
	if !approxEqual(c.Offset(), 1.3, 1e-12) {
		t.Errorf("got displayed offset %g, expected the animation to start at 1.3", c.Offset())
	}
	c.Update()
	if c.Offset() != 1 || c.IsSettling() {
		t.Errorf("got offset %g after settling, expected 1", c.Offset())
	}
}

func TestDragSettleIdempotent(t *testing.T) {
	for _, final := range []float64{-500, -73, -1, 0, 12, 71, 72.5, 143, 199, 1000} {
		c := newTestCarousel(t, animator.Instant)
		for _, step := range []float64{0.25, 0.5, 0.75, 1} {
			if err := c.DragChanged(final*step, 400); err != nil {
				t.Fatal(err)
			}
		}
		offset := c.Offset()
		settled, err := c.DragEnded(final, 400)
		if err != nil {
			t.Fatal(err)
		}
		if want := math.Round(offset); settled != want {
			t.Errorf("final %g: got settled %g, expected %g", final, settled, want)
		}
	}
}

func TestDragSettleMomentum(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	// ~0.35 items, rounds to 0 on its own
	if err := c.DragChanged(50, 400); err != nil {
		t.Fatal(err)
	}
	settled, err := c.DragEnded(300, 400)
	if err != nil {
		t.Fatal(err)
	}
	// 0.7*0.347 + 0.3*2.083 = 0.868
	if settled != 1 {
		t.Errorf("got settled offset %g, expected 1", settled)
	}
}

func TestDragSettleRelativeToCommitted(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	if err := c.Reset(5); err != nil {
		t.Fatal(err)
	}
	if err := c.DragChanged(-2.2*pxPerItem, 400); err != nil {
		t.Fatal(err)
	}
	settled, err := c.DragEnded(-2.2*pxPerItem, 400)
	if err != nil {
		t.Fatal(err)
	}
	if settled != 3 {
		t.Errorf("got settled offset %g, expected 3", settled)
	}
}

func TestDragEndedWithoutDrag(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	if err := c.Reset(2); err != nil {
		t.Fatal(err)
	}
	settled, err := c.DragEnded(1000, 400)
	if err != nil || settled != 2 {
		t.Errorf("got (%g, %v), expected (2, nil)", settled, err)
	}
	diff(t, ScrollState{Committed: 2}, c.State())
}

func TestCancelDrag(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	if err := c.DragChanged(1.6*pxPerItem, 400); err != nil {
		t.Fatal(err)
	}
	if settled := c.CancelDrag(); settled != 2 {
		t.Errorf("got settled offset %g, expected 2", settled)
	}
	if c.IsDragging() {
		t.Error("expected the drag to be over")
	}
	if settled := c.CancelDrag(); settled != 2 {
		t.Errorf("got %g from an idle cancel, expected 2", settled)
	}
}

func TestNonFiniteInputRejected(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	if err := c.DragChanged(72, 400); err != nil {
		t.Fatal(err)
	}
	before := c.State()

	inputs := [][2]float64{
		{math.NaN(), 400},
		{math.Inf(1), 400},
		{10, math.NaN()},
		{10, math.Inf(-1)},
	}
	for _, in := range inputs {
		if err := c.DragChanged(in[0], in[1]); !errors.Is(err, ErrNonFinite) {
			t.Errorf("DragChanged(%g, %g): got %v, expected ErrNonFinite", in[0], in[1], err)
		}
		if _, err := c.DragEnded(in[0], in[1]); !errors.Is(err, ErrNonFinite) {
			t.Errorf("DragEnded(%g, %g): got %v, expected ErrNonFinite", in[0], in[1], err)
		}
	}
	diff(t, before, c.State())
	if err := c.Reset(math.NaN()); !errors.Is(err, ErrNonFinite) {
		t.Errorf("got %v, expected ErrNonFinite", err)
	}
	diff(t, before, c.State())
}

func TestOverflowingDragRejected(t *testing.T) {
	c := newTestCarousel(t, nil)

	// 1e308 over a 1px travel floor overflows to +Inf
	if err := c.DragChanged(1e308, 10); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("got %v, expected ErrNonFinite", err)
	}
	diff(t, ScrollState{}, c.State())

	if err := c.DragChanged(10, 400); err != nil {
		t.Fatal(err)
	}
	before := c.State()
	if _, err := c.DragEnded(1e308, 10); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("got %v, expected ErrNonFinite", err)
	}
	diff(t, before, c.State())

	// finite translation, but committed + live overflows
	if err := c.Reset(1.7e308); err != nil {
		t.Fatal(err)
	}
	if err := c.DragChanged(4e306, 10); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("got %v, expected ErrNonFinite", err)
	}
	diff(t, ScrollState{Committed: 1.7e308}, c.State())

	// the carousel keeps working afterwards
	c.Update()
	if err := c.Reset(0); err != nil {
		t.Fatal(err)
	}
	if err := c.DragChanged(72, 400); err != nil {
		t.Fatal(err)
	}
	if _, err := c.DragEnded(72, 400); err != nil {
		t.Fatal(err)
	}
	for range 600 {
		c.Update()
	}
	if c.Offset() != 1 {
		t.Errorf("got offset %g, expected 1", c.Offset())
	}
	if _, err := c.Items(VP(400, 250)); err != nil {
		t.Fatal(err)
	}
}

func TestAdvance(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	vp := VP(400, 250)
	if err := c.Reset(2); err != nil {
		t.Fatal(err)
	}

	before := make([]ProjectedItem, 8)
	for i := range before {
		before[i], _ = c.Item(i, vp)
	}

	if !c.Advance() {
		t.Fatal("expected the tap to advance the carousel")
	}
	if got := c.State().Committed; got != 3 {
		t.Errorf("got committed offset %g, expected 3", got)
	}
	if c.Offset() != 2 || !c.IsSettling() {
		t.Errorf("got offset %g, expected an animation starting at 2", c.Offset())
	}
	c.Update()
	if c.Offset() != 3 {
		t.Fatalf("got offset %g, expected 3", c.Offset())
	}

	// every item now sits where its successor was
	for i := range 8 {
		after, _ := c.Item(i, vp)
		next := before[(i+1)%8]
		if distance(after.Position, next.Position) > 1e-9 || !approxEqual(after.Scale, next.Scale, 1e-12) {
			t.Errorf("item %d: got %v/%g, expected %v/%g", i, after.Position, after.Scale, next.Position, next.Scale)
		}
	}
}

func TestAdvanceIgnoredWhileDragging(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	if err := c.DragChanged(10, 400); err != nil {
		t.Fatal(err)
	}
	if c.Advance() || c.Retreat() {
		t.Error("expected taps to be ignored while dragging")
	}
	if got := c.State().Committed; got != 0 {
		t.Errorf("got committed offset %g, expected 0", got)
	}
}

func TestSpringSettles(t *testing.T) {
	c := newTestCarousel(t, nil)
	if err := c.DragChanged(1.4*pxPerItem, 400); err != nil {
		t.Fatal(err)
	}
	settled, err := c.DragEnded(1.4*pxPerItem, 400)
	if err != nil {
		t.Fatal(err)
	}

	ticks := 0
	for c.IsSettling() {
		c.Update()
		ticks++
		if ticks > 10*60 {
			t.Fatalf("still settling after %d ticks, offset %g", ticks, c.Offset())
		}
	}
	if c.Offset() != settled {
		t.Errorf("got offset %g, expected exactly %g", c.Offset(), settled)
	}
}

func TestDragInterruptsAnimation(t *testing.T) {
	c := newTestCarousel(t, nil)
	if err := c.DragChanged(1.4*pxPerItem, 400); err != nil {
		t.Fatal(err)
	}
	if _, err := c.DragEnded(1.4*pxPerItem, 400); err != nil {
		t.Fatal(err)
	}
	for range 3 {
		c.Update()
	}
	partial := c.Offset()
	if partial == 1 || partial == 1.4 {
		t.Fatalf("expected an intermediate offset, got %g", partial)
	}

	if err := c.DragChanged(0, 400); err != nil {
		t.Fatal(err)
	}
	diff(t, ScrollState{Committed: partial, Dragging: true}, c.State())
	if c.Offset() != partial {
		t.Errorf("got offset %g, expected %g", c.Offset(), partial)
	}
	if spring := c.Animator().(*animator.Spring); spring.Velocity() != 0 {
		t.Errorf("got spring velocity %g, expected the animation to be discarded", spring.Velocity())
	}
}

func TestUpdateWhileDraggingKeepsOffset(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	if err := c.DragChanged(72, 400); err != nil {
		t.Fatal(err)
	}
	c.Update()
	if !approxEqual(c.Offset(), 0.5, 1e-12) {
		t.Errorf("got offset %g, expected 0.5", c.Offset())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"default", func(*Config) {}, nil},
		{"few items", func(c *Config) { c.ItemCount = 3 }, ErrTooFewItems},
		{"negative radius", func(c *Config) { c.PathRadius = -1 }, ErrInvalidConfig},
		{"zero damping", func(c *Config) { c.DragDamping = 0 }, ErrInvalidConfig},
		{"momentum", func(c *Config) { c.MomentumWeight = 1.5 }, ErrInvalidConfig},
		{"ups", func(c *Config) { c.UPS = 0 }, ErrInvalidConfig},
		{"spring mass", func(c *Config) { c.Spring.Mass = 0 }, ErrInvalidConfig},
		{"animator override", func(c *Config) { c.Spring.Mass = 0; c.Animator = animator.Instant }, nil},
	}
	for _, tt := range tests {
		config := DefaultConfig(8)
		tt.modify(&config)
		err := config.Validate()
		if tt.want == nil && err != nil {
			t.Errorf("%s: got %v, expected no error", tt.name, err)
		} else if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, expected %v", tt.name, err, tt.want)
		}
		if _, err := New(config); (err == nil) != (tt.want == nil) {
			t.Errorf("%s: New returned %v", tt.name, err)
		}
	}
}

func TestSetItemCount(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	if err := c.Reset(1.5); err != nil {
		t.Fatal(err)
	}
	if err := c.SetItemCount(12); err != nil {
		t.Fatal(err)
	}
	if c.ItemCount() != 12 || c.Projector().ItemCount() != 12 {
		t.Errorf("got %d items, expected 12", c.ItemCount())
	}
	if c.Offset() != 1.5 {
		t.Errorf("got offset %g, expected 1.5", c.Offset())
	}
	items, err := c.Items(VP(400, 250))
	if err != nil || len(items) != 12 {
		t.Errorf("got %d items and %v", len(items), err)
	}
	if err := c.SetItemCount(2); !errors.Is(err, ErrTooFewItems) {
		t.Errorf("got %v, expected ErrTooFewItems", err)
	}
	if c.ItemCount() != 12 {
		t.Errorf("got %d items after a failed change, expected 12", c.ItemCount())
	}
}

func TestItemsInvalidViewport(t *testing.T) {
	c := newTestCarousel(t, animator.Instant)
	if _, err := c.Items(VP(math.NaN(), 250)); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("got %v, expected ErrInvalidViewport", err)
	}
	if _, err := c.Item(0, VP(400, -1)); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("got %v, expected ErrInvalidViewport", err)
	}
}
