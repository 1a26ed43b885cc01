// Package preset holds named window/picker configurations. A few are
// embedded; more can be loaded from JSON files.
package preset

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/hsb"
	"github.com/gucio321/huewheel/pkg/picker"
)

//go:embed presets.json
var presets []byte

// DefaultName is the preset used when none is requested.
const DefaultName = "vision"

// Preset describes the host window and how the picker is arranged in it.
type Preset struct {
	Name        string
	Description string

	// WindowWidth and WindowHeight are the initial surface size.
	WindowWidth, WindowHeight int

	// Padding between the window edge and the controls (and between them).
	Padding    float64
	SwatchSize float64
	// SwatchRadius rounds the swatch corners.
	SwatchRadius float64

	WheelMargin float64
	KnobRadius  float64

	// SliderWidth is the maximum track width; the track gets narrower
	// when the column is.
	SliderWidth, SliderHeight float64
	ThumbRadius               float64

	// Initial brightness and saturation gain.
	Brightness, Gain float64

	// Samples per axis used by the software rasterizer.
	Samples int
}

func decodePresets() ([]Preset, error) {
	var result []Preset
	if err := json.Unmarshal(presets, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Get returns the embedded preset called name.
func Get(name string) (*Preset, error) {
	all, err := decodePresets()
	if err != nil {
		return nil, err
	}

	for _, p := range all {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}

// Names lists the embedded presets in file order.
func Names() []string {
	all, err := decodePresets()
	if err != nil {
		return nil
	}

	result := make([]string, len(all))
	for i, p := range all {
		result[i] = p.Name
	}

	return result
}

// Default returns the DefaultName preset.
func Default() *Preset {
	p, err := Get(DefaultName)
	if err != nil {
		panic(fmt.Sprintf("embedded presets are broken: %v", err))
	}

	return p
}

// Decode reads a preset from JSON. Fields missing from data keep the values
// of base (the default preset when base is nil).
func Decode(data []byte, base *Preset) (*Preset, error) {
	if base == nil {
		base = Default()
	}

	p := *base
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding preset: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Load reads a preset file, see Decode.
func Load(path string, base *Preset) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset %s: %w", path, err)
	}

	p, err := Decode(data, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Encode returns p as indented JSON.
func (p *Preset) Encode() ([]byte, error) {
	return json.MarshalIndent(p, "", "\t")
}

// Validate checks that every size is usable.
func (p *Preset) Validate() error {
	switch {
	case p.WindowWidth <= 0 || p.WindowHeight <= 0:
		return fmt.Errorf("window size %dx%d: %w", p.WindowWidth, p.WindowHeight, ErrInvalidPreset)
	case p.Padding < 0 || p.SwatchSize < 0 || p.SwatchRadius < 0 || p.WheelMargin < 0 || p.KnobRadius < 0:
		return fmt.Errorf("negative padding, swatch, margin or knob: %w", ErrInvalidPreset)
	case p.SliderWidth < 0 || p.SliderHeight < 0 || p.ThumbRadius < 0:
		return fmt.Errorf("negative slider size: %w", ErrInvalidPreset)
	case p.Brightness < 0 || p.Brightness > 1:
		return fmt.Errorf("brightness %v out of [0, 1]: %w", p.Brightness, ErrInvalidPreset)
	case p.Gain < 0 || p.Gain > 1:
		return fmt.Errorf("gain %v out of [0, 1]: %w", p.Gain, ErrInvalidPreset)
	case p.Samples < 1:
		return fmt.Errorf("samples %d: %w", p.Samples, ErrInvalidPreset)
	}

	return nil
}

// Options returns picker options matching the preset. The initial color is
// white; brightness and gain come from the preset.
func (p *Preset) Options() picker.Options {
	return picker.Options{
		Margin:       p.WheelMargin,
		KnobRadius:   p.KnobRadius,
		ThumbRadius:  p.ThumbRadius,
		SwatchRadius: p.SwatchRadius,
		Initial: hsb.State{
			Color:      hsb.White,
			Gain:       p.Gain,
			Brightness: p.Brightness,
		},
	}
}

// Arrange splits a width x height surface: the swatch on the left,
// vertically centered, and a column on the right with the wheel above the
// slider. Areas that do not fit come out empty.
func (p *Preset) Arrange(width, height float64) picker.Areas {
	pad := p.Padding

	swatch := nonNegative(min(p.SwatchSize, height-2*pad))
	colX := pad
	if p.SwatchSize > 0 {
		colX += p.SwatchSize + pad
	}

	colW := nonNegative(width - colX - pad)
	wheelH := nonNegative(height - 3*pad - p.SliderHeight)

	return picker.Areas{
		Swatch: geom.R(pad, (height-swatch)/2, swatch, swatch),
		Wheel:  geom.R(colX, pad, colW, wheelH),
		Slider: geom.R(colX, pad+wheelH+pad, min(p.SliderWidth, colW), p.SliderHeight),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}
