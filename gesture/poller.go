package gesture

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller feeds a [Recognizer] from Ebitengine's input state. Call
// [Poller.Poll] exactly once per update.
//
// The left mouse button and the first active touch are both
// accepted as the pointer; whichever is pressed first wins until
// released.
type Poller struct {
	Recognizer Recognizer

	// Offset subtracted from raw pointer coordinates. Set it to
	// the viewport origin if the carousel isn't drawn at (0, 0).
	OriginX, OriginY float64

	ticks    uint64
	source   pointerSource
	touchID  ebiten.TouchID
	lastX    float64
	lastY    float64
	touchBuf []ebiten.TouchID
}

type pointerSource uint8

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
)

// Polls the input state and returns the gesture event recognized
// during this update, if any.
func (self *Poller) Poll() Event {
	self.ticks += 1
	now := time.Duration(self.ticks) * time.Second / time.Duration(ebiten.TPS())

	switch self.source {
	case sourceNone:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			self.source = sourceMouse
			x, y := self.position(ebiten.CursorPosition())
			self.Recognizer.Press(x, y, now)
			return Event{}
		}
		self.touchBuf = inpututil.AppendJustPressedTouchIDs(self.touchBuf[:0])
		if len(self.touchBuf) > 0 {
			self.source = sourceTouch
			self.touchID = self.touchBuf[0]
			x, y := self.position(ebiten.TouchPosition(self.touchID))
			self.Recognizer.Press(x, y, now)
		}
		return Event{}
	case sourceMouse:
		x, y := self.position(ebiten.CursorPosition())
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			self.source = sourceNone
			return self.Recognizer.Release(x, y, now)
		}
		return self.Recognizer.Move(x, y, now)
	case sourceTouch:
		if inpututil.IsTouchJustReleased(self.touchID) {
			self.source = sourceNone
			return self.Recognizer.Release(self.lastX, self.lastY, now)
		}
		x, y := self.position(ebiten.TouchPosition(self.touchID))
		return self.Recognizer.Move(x, y, now)
	default:
		panic("invalid pointer source")
	}
}

// Abandons the gesture in progress. See [Recognizer.Cancel].
func (self *Poller) Cancel() Event {
	self.source = sourceNone
	return self.Recognizer.Cancel()
}

func (self *Poller) position(x, y int) (float64, float64) {
	self.lastX = float64(x) - self.OriginX
	self.lastY = float64(y) - self.OriginY
	return self.lastX, self.lastY
}
