package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/picker"
)

// pointerPosition returns the first touch if there is one, the mouse cursor
// otherwise.
func pointerPosition() geom.Point {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return geom.Pt(float64(x), float64(y))
	}

	x, y := ebiten.CursorPosition()
	return geom.Pt(float64(x), float64(y))
}

func pointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}

	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func pointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}

	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// pointerTracker turns per-frame pointer polling into gesture phases.
type pointerTracker struct {
	down bool
	last geom.Point
}

// poll returns the event for this frame, if any.
func (t *pointerTracker) poll() (picker.PointerEvent, bool) {
	switch {
	case !t.down && pointerJustPressed():
		t.down = true
		t.last = pointerPosition()
		return picker.PointerEvent{Location: t.last, Phase: picker.PhaseStarted}, true
	case t.down && pointerPressed():
		pos := pointerPosition()
		if pos == t.last {
			return picker.PointerEvent{}, false
		}

		t.last = pos
		return picker.PointerEvent{Location: pos, Phase: picker.PhaseChanged}, true
	case t.down:
		// a lifted touch has no position any more
		t.down = false
		return picker.PointerEvent{Location: t.last, Phase: picker.PhaseEnded}, true
	}

	return picker.PointerEvent{}, false
}
