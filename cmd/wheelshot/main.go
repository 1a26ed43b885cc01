package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/kpango/glg"
	flag "github.com/spf13/pflag"

	"github.com/gucio321/huewheel/pkg/gesture"
	"github.com/gucio321/huewheel/pkg/picker"
	"github.com/gucio321/huewheel/pkg/preset"
	"github.com/gucio321/huewheel/pkg/render"
)

func main() {
	inputFile := flag.StringP("input", "i", "", "gesture script")
	outputFile := flag.StringP("output", "o", "", "PNG output path (state is only printed when empty)")
	presetName := flag.String("preset", preset.DefaultName, "embedded preset name")
	presetFile := flag.String("preset-file", "", "JSON preset file path")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	if !*debug {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	p, err := preset.Get(*presetName)
	if err != nil {
		glg.Fatal(err)
	}

	if *presetFile != "" {
		if p, err = preset.Load(*presetFile, p); err != nil {
			glg.Fatal(err)
		}
	}

	// load file
	data, err := os.ReadFile(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	// parse file
	script, err := gesture.Parse(data)
	if err != nil {
		glg.Fatalf("%s: %v", *inputFile, err)
	}

	pk := picker.New(p.Options())
	player := gesture.NewPlayer(pk, p)

	// without a leading size command the preset window is the surface
	if len(script) == 0 || script[0].Verb != gesture.VerbSize {
		err = player.Apply(gesture.Command{
			Verb: gesture.VerbSize,
			Args: []float64{float64(p.WindowWidth), float64(p.WindowHeight)},
		})
		if err != nil {
			glg.Fatal(err)
		}
	}

	if err := player.Run(script); err != nil {
		glg.Fatalf("%s: %v", *inputFile, err)
	}

	s := pk.State()
	fmt.Printf("H %.4f S %.4f B %.4f gain %.4f brightness %.4f\n", s.Color.H, s.Color.S, s.Color.B, s.Gain, s.Brightness)

	if *outputFile == "" {
		return
	}

	size, _ := player.Size()
	img := render.Frame(pk.Frame(), int(size.Width), int(size.Height), p.Samples)

	out, err := os.Create(*outputFile)
	if err != nil {
		glg.Fatal(err)
	}

	if err := png.Encode(out, img); err != nil {
		out.Close()
		glg.Fatal(err)
	}

	if err := out.Close(); err != nil {
		glg.Fatal(err)
	}

	glg.Infof("Written %s", *outputFile)
}
