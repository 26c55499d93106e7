package carousel

import "fmt"

// Fixed breakpoints for the three front slots. The middle one is
// the hero slot at the bottom of the valley.
var (
	frontPhases = [...]float64{0.2, 1.0, 1.8}
	frontScales = [...]float64{0.3, 1.0, 0.3}
)

const (
	backScale  = 0.05
	guardPhase = 5.2 // frontPhases[0] + phasePeriod
	guardScale = 0.3 // frontScales[0]
)

// PhaseTable holds the phase and scale breakpoints of every item
// slot, plus one trailing guard slot that closes the loop back onto
// slot zero. Slot k interpolates towards slot k+1 as the fractional
// part of a virtual index goes from 0 to 1.
//
// Tables are immutable once built and safe for concurrent use.
type PhaseTable struct {
	Phases []float64
	Scales []float64
}

// NewPhaseTable builds the breakpoints for the given number of items.
// The three front slots get full prominence, while the remaining
// itemCount-3 slots are packed evenly along the back run at a small
// scale.
//
// Fewer than four items can't fill the loop; in that case an empty
// table and [ErrTooFewItems] are returned.
func NewPhaseTable(itemCount int) (PhaseTable, error) {
	if itemCount < minItemCount {
		return PhaseTable{}, fmt.Errorf("%w: got %d", ErrTooFewItems, itemCount)
	}

	phases := make([]float64, 0, itemCount+1)
	scales := make([]float64, 0, itemCount+1)
	phases = append(phases, frontPhases[:]...)
	scales = append(scales, frontScales[:]...)

	step := 1.0 / float64(itemCount-2)
	for k := 3; k < itemCount; k++ {
		phases = append(phases, 3.0+step*float64(k-2))
		scales = append(scales, backScale)
	}

	phases = append(phases, guardPhase)
	scales = append(scales, guardScale)
	return PhaseTable{Phases: phases, Scales: scales}, nil
}

// Returns the number of item slots, excluding the guard.
func (self PhaseTable) ItemCount() int {
	if len(self.Phases) == 0 {
		return 0
	}
	return len(self.Phases) - 1
}

// Reports whether the table has no breakpoints.
func (self PhaseTable) IsEmpty() bool {
	return len(self.Phases) == 0
}
