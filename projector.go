package carousel

import (
	"cmp"
	"math"
	"slices"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// ProjectedItem describes where and how an item must be painted
// for the current scroll offset. Values are recomputed on every
// evaluation and never shared.
type ProjectedItem struct {
	Index        int     // item index in [0, itemCount)
	VirtualIndex float64 // index + offset the item was projected at
	Position     ebimath.Vector
	Scale        float64 // in (0, 1]
	Tint         float64 // overlay opacity, 1 - Scale
	Hue          float64 // overlay hue rotation in radians
}

// Projector maps virtual indices to positions on the carousel
// track. It's immutable and can be shared between goroutines.
type Projector struct {
	table      PhaseTable
	pathRadius float64
}

// Creates a projector for the given number of items. Returns
// [ErrTooFewItems] for counts below four and [ErrInvalidConfig]
// for negative or non-finite radii.
func NewProjector(itemCount int, pathRadius float64) (*Projector, error) {
	if !isFinite(pathRadius) || pathRadius < 0 {
		return nil, ErrInvalidConfig
	}
	table, err := NewPhaseTable(itemCount)
	if err != nil {
		return nil, err
	}
	return &Projector{table: table, pathRadius: pathRadius}, nil
}

func (self *Projector) ItemCount() int         { return self.table.ItemCount() }
func (self *Projector) PathRadius() float64    { return self.pathRadius }
func (self *Projector) PhaseTable() PhaseTable { return self.table }

// Project evaluates the item slot at the given virtual index. The
// integer part selects the slot and the fractional part blends
// towards the next one. Virtual indices wrap around the item count,
// so any real value is accepted.
//
// The returned item has Index and Hue unset; see [Projector.Item].
func (self *Projector) Project(virtualIndex float64, viewport Viewport) ProjectedItem {
	if self.table.IsEmpty() {
		panic("can't project with an empty phase table")
	}

	count := float64(self.table.ItemCount())
	base := wrap(virtualIndex, count)
	slot := int(math.Floor(base))
	frac := base - float64(slot)

	phases, scales := self.table.Phases, self.table.Scales
	phase := phases[slot] + frac*(phases[slot+1]-phases[slot])
	scale := scales[slot]*(1.0-frac) + scales[slot+1]*frac

	return ProjectedItem{
		VirtualIndex: virtualIndex,
		Position:     PathPosition(phase, viewport, self.pathRadius),
		Scale:        scale,
		Tint:         1.0 - scale,
	}
}

// Item projects the item with the given index at the given scroll
// offset, that is, at virtual index index + offset.
func (self *Projector) Item(index int, offset float64, viewport Viewport) ProjectedItem {
	item := self.Project(float64(index)+offset, viewport)
	item.Index = index
	item.Hue = self.Hue(index)
	return item
}

// Returns the static overlay hue rotation for the given item, in
// radians. Hues are spread evenly around the color wheel.
func (self *Projector) Hue(index int) float64 {
	return 2 * math.Pi * float64(index) / float64(self.table.ItemCount())
}

// Appends the projection of every item to dst and returns the
// extended slice. Items are appended in index order.
func (self *Projector) AppendItems(dst []ProjectedItem, offset float64, viewport Viewport) []ProjectedItem {
	for i := range self.table.ItemCount() {
		dst = append(dst, self.Item(i, offset, viewport))
	}
	return dst
}

// DepthOrder returns the positions of the given items sorted back
// to front, so painting in the returned order leaves the largest
// items on top. Items of equal scale keep their relative order.
func DepthOrder(items []ProjectedItem) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(items[a].Scale, items[b].Scale)
	})
	return order
}

// Returns the corner radius to clip an item with, before scaling.
// Corners grow as the item shrinks.
func CornerRadius(base, itemSize, scale float64) float64 {
	return base + itemSize*(1.0-scale)
}
