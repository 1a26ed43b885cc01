package picker

import "github.com/gucio321/huewheel/pkg/hsb"

// Binding is the shared state cell. Writes are visible to the next read
// immediately; there is no buffering and the last write wins.
type Binding struct {
	state hsb.State
}

// NewBinding creates a binding holding the normalized initial state.
func NewBinding(initial hsb.State) *Binding {
	return &Binding{state: initial.Normalize()}
}

// Get returns the current state.
func (b *Binding) Get() hsb.State {
	return b.state
}

// Set stores a normalized copy of s and reports whether anything changed.
func (b *Binding) Set(s hsb.State) bool {
	s = s.Normalize()
	changed := s != b.state
	b.state = s

	return changed
}
