package gesture

import (
	"fmt"

	"github.com/kpango/glg"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/picker"
)

// Arranger splits a surface between the picker controls.
type Arranger interface {
	Arrange(width, height float64) picker.Areas
}

// Player replays scripts against a picker, acting as its host surface.
type Player struct {
	picker   *picker.Picker
	arranger Arranger

	size geom.Size
	// sized is set by the first size command
	sized bool
}

// NewPlayer creates a player driving p.
func NewPlayer(p *picker.Picker, a Arranger) *Player {
	return &Player{
		picker:   p,
		arranger: a,
	}
}

// Size returns the last surface size and whether one was set.
func (pl *Player) Size() (geom.Size, bool) {
	return pl.size, pl.sized
}

// Run applies every command in order and stops at the first error.
func (pl *Player) Run(s Script) error {
	for i := range s {
		if err := pl.Apply(s[i]); err != nil {
			return err
		}
	}

	return nil
}

// Apply executes one command.
func (pl *Player) Apply(c Command) error {
	want, known := arity[c.Verb]
	switch {
	case !known:
		return fmt.Errorf("line %d: %q: %w", c.Line, c.Verb, ErrUnknownVerb)
	case len(c.Args) != want:
		return fmt.Errorf("line %d: %s takes %d arguments, got %d: %w", c.Line, c.Verb, want, len(c.Args), ErrBadArgument)
	}

	glg.Debugf("gesture: %s", c.String(false))

	switch c.Verb {
	case VerbSize:
		pl.size = geom.Size{Width: c.Args[0], Height: c.Args[1]}
		pl.sized = true
		pl.picker.Layout(pl.arranger.Arrange(c.Args[0], c.Args[1]))
	case VerbDown, VerbMove, VerbUp:
		if !pl.sized {
			return fmt.Errorf("line %d: %s: %w", c.Line, c.Verb, ErrNoSurface)
		}

		phase := map[Verb]picker.Phase{
			VerbDown: picker.PhaseStarted,
			VerbMove: picker.PhaseChanged,
			VerbUp:   picker.PhaseEnded,
		}[c.Verb]

		pl.picker.HandlePointer(picker.PointerEvent{
			Location: geom.Pt(c.Args[0], c.Args[1]),
			Phase:    phase,
		})
	case VerbBrightness:
		pl.picker.SetBrightness(c.Args[0])
	case VerbGain:
		pl.picker.SetGain(c.Args[0])
	case VerbSelect:
		if !pl.picker.Select(c.Args[0], c.Args[1]) {
			glg.Warnf("gesture: line %d: select before the wheel has a size, ignored", c.Line)
		}
	}

	return nil
}
