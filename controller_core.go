package carousel

import "fmt"

// Carousel owns the projector and the scroll state of one carousel
// instance. Create carousels with [New].
//
// Carousels are not safe for concurrent use: drag, tap and update
// calls must come from a single goroutine (typically the game loop).
// The [Projector] returned by [Carousel.Projector] can be shared.
type Carousel struct {
	config    Config
	projector *Projector
	scroll    scroller
	items     []ProjectedItem // reused between Items() calls
}

func (self *Carousel) setItemCount(itemCount int) error {
	config := self.config
	config.ItemCount = itemCount
	if err := config.Validate(); err != nil {
		return err
	}
	if itemCount == self.config.ItemCount && self.projector != nil {
		return nil
	}
	projector, err := NewProjector(itemCount, config.PathRadius)
	if err != nil {
		return err
	}
	self.config = config
	self.projector = projector
	self.items = self.items[:0]
	return nil
}

func (self *Carousel) projectAll(viewport Viewport) ([]ProjectedItem, error) {
	if !viewport.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidViewport, viewport)
	}
	self.items = self.projector.AppendItems(self.items[:0], self.scroll.current, viewport)
	return self.items, nil
}

func (self *Carousel) projectOne(index int, viewport Viewport) (ProjectedItem, error) {
	if index < 0 || index >= self.config.ItemCount {
		panic("item index out of range")
	}
	if !viewport.Valid() {
		return ProjectedItem{}, fmt.Errorf("%w: %s", ErrInvalidViewport, viewport)
	}
	return self.projector.Item(index, self.scroll.current, viewport), nil
}
