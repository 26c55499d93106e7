package preview

import "github.com/edwinsyarief/carousel"

// Sweep returns frames offsets going from start in fixed steps.
func Sweep(start, step float64, frames int) []float64 {
	offsets := make([]float64, frames)
	for i := range offsets {
		offsets[i] = start + step*float64(i)
	}
	return offsets
}

// Settle records the displayed offset of the carousel while it's
// updated the given number of times. The carousel is left at the
// last recorded state.
func Settle(c *carousel.Carousel, frames int) []float64 {
	offsets := make([]float64, frames)
	for i := range offsets {
		c.Update()
		offsets[i] = c.Offset()
	}
	return offsets
}

// Fling scripts a horizontal drag of the given distance on a fresh
// carousel, ends it with the given predicted distance and records
// the settle animation. The drag itself is spread over dragFrames
// evenly spaced positions.
func Fling(c *carousel.Carousel, rectWidth, distance, predicted float64, dragFrames, settleFrames int) ([]float64, error) {
	offsets := make([]float64, 0, dragFrames+settleFrames)
	for i := 1; i <= dragFrames; i++ {
		delta := distance * float64(i) / float64(dragFrames)
		if err := c.DragChanged(delta, rectWidth); err != nil {
			return nil, err
		}
		offsets = append(offsets, c.Offset())
	}
	if _, err := c.DragEnded(predicted, rectWidth); err != nil {
		return nil, err
	}
	return append(offsets, Settle(c, settleFrames)...), nil
}
