package hsb

// State is the single authoritative record both controls read and write.
//
// The wheel owns Color (resolved from the knob position, Gain and
// Brightness), the slider owns Gain, and Brightness belongs to whoever drives
// it from outside. Brightness is kept apart from Color.B because the center
// of the wheel resolves to pure white whatever the brightness is.
type State struct {
	Color Color
	// Gain is the saturation gain factor set by the slider, in [0, 1].
	Gain float64
	// Brightness is the externally supplied brightness, in [0, 1].
	Brightness float64
}

// DefaultState is white at full brightness with the slider at its end.
func DefaultState() State {
	return State{Color: White, Gain: 1, Brightness: 1}
}

// Normalize returns s with every field clamped or wrapped into range.
func (s State) Normalize() State {
	return State{
		Color:      s.Color.Normalize(),
		Gain:       Clamp01(s.Gain),
		Brightness: Clamp01(s.Brightness),
	}
}
