package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumatools/ieskit/ir"
	"github.com/lumatools/ieskit/parser"
	"github.com/lumatools/ieskit/resources"
)

// newInfoCmd creates the info command, printing a summary of a profile.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.ies>",
		Short: "Print a summary of an LM-63 photometric file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			printSummary(cmd, doc)
			return nil
		},
	}
}

// loadDocument reads and parses one profile, wiring the CLI logger into the
// parser.
func loadDocument(cmd *cobra.Command, path string) (*ir.Document, error) {
	logger := loggerFromContext(cmd.Context())
	src := resources.FileSource{}
	data, err := src.Acquire(path)
	if err != nil {
		return nil, err
	}
	p := parser.New(parser.Config{
		Source: src,
		Limits: parser.DefaultLimits(),
		Logger: obsLogger{l: logger},
	})
	doc, err := p.Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func printSummary(cmd *cobra.Command, doc *ir.Document) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "format:       %s\n", doc.File.Format)
	fmt.Fprintf(out, "labels:       %d\n", len(doc.Labels))
	fmt.Fprintf(out, "lamps:        %d (%g lm/lamp, multiplier %g)\n",
		doc.Lamp.NumLamps, doc.Lamp.LumensPerLamp, doc.Lamp.Multiplier)
	fmt.Fprintf(out, "tilt:         %s\n", doc.Lamp.TiltRef)
	if t := doc.Lamp.Tilt; t != nil {
		fmt.Fprintf(out, "  orientation %d, %d pairs\n", t.Orientation, t.NumPairs)
	}
	fmt.Fprintf(out, "goniometer:   type %d\n", doc.Photo.Gonio)
	fmt.Fprintf(out, "angles:       %d vertical x %d horizontal\n",
		doc.Photo.NumVertAngles, doc.Photo.NumHorzAngles)
	fmt.Fprintf(out, "electrical:   ballast %g, ballast-lamp %g, %g W\n",
		doc.Elec.BallastFactor, doc.Elec.BallastLampFactor, doc.Elec.InputWatts)
	units := "meters"
	if doc.Units == ir.Feet {
		units = "feet"
	}
	fmt.Fprintf(out, "opening:      %g x %g x %g %s\n",
		doc.Dim.Width, doc.Dim.Length, doc.Dim.Height, units)
}
