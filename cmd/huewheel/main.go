package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"
	flag "github.com/spf13/pflag"

	"github.com/gucio321/huewheel/pkg/picker"
	"github.com/gucio321/huewheel/pkg/preset"
	"github.com/gucio321/huewheel/pkg/viewer"
)

type Flags struct {
	Preset     string
	PresetFile string
	MakePreset bool
	Brightness float64
	Gain       float64
	Debug      bool
}

func main() {
	var f Flags
	flag.StringVar(&f.Preset, "preset", preset.DefaultName, fmt.Sprintf("embedded preset name %v", preset.Names()))
	flag.StringVar(&f.PresetFile, "preset-file", "", "JSON preset file path (fields override --preset)")
	flag.BoolVar(&f.MakePreset, "make-preset", false, "print the resolved preset as JSON and exit")
	flag.Float64Var(&f.Brightness, "brightness", -1, "initial brightness 0..1 (default from preset)")
	flag.Float64Var(&f.Gain, "gain", -1, "initial saturation gain 0..1 (default from preset)")
	flag.BoolVar(&f.Debug, "debug", false, "debug logging")
	flag.Parse()

	if !f.Debug {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	p, err := preset.Get(f.Preset)
	if err != nil {
		glg.Fatalf("Unable to use preset: %v", err)
	}

	if f.PresetFile != "" {
		p, err = preset.Load(f.PresetFile, p)
		if err != nil {
			glg.Fatalf("Unable to load preset: %v", err)
		}
	}

	if flag.CommandLine.Changed("brightness") {
		p.Brightness = f.Brightness
	}

	if flag.CommandLine.Changed("gain") {
		p.Gain = f.Gain
	}

	if err := p.Validate(); err != nil {
		glg.Fatalf("Invalid settings: %v", err)
	}

	if f.MakePreset {
		out, err := p.Encode()
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		glg.Infof("Preset generated")
		return
	}

	handler := &picker.EventHandler{
		Handle: func(ev picker.Event) {
			glg.Debugf("%v: %+v", ev.Type, ev.State)
		},
	}

	v := viewer.NewViewer(picker.New(p.Options()).SetHandler(handler), p)

	ebiten.SetWindowSize(p.WindowWidth, p.WindowHeight)
	ebiten.SetWindowTitle("huewheel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(v); err != nil {
		glg.Fatalf("Cannot run viewer: %v", err)
	}

	s := v.Picker().State()
	glg.Infof("Picked H %.3f S %.3f B %.3f (gain %.3f)", s.Color.H, s.Color.S, s.Color.B, s.Gain)
}
