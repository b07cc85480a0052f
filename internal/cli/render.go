package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumatools/ieskit/render"
	"github.com/lumatools/ieskit/resources"
)

// newRenderCmd creates the render command, writing a PNG polar preview of
// the candela distribution.
func newRenderCmd(configPath *string) *cobra.Command {
	var (
		size   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <file.ies>",
		Short: "Render a polar PNG preview of the candela distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = cfg.Render.Size
			}
			if output == "" {
				output = derivePNGName(args[0])
			}

			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			img, err := render.Polar(doc, render.Options{Size: size})
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			if err := (resources.FileSink{}).Persist(output, img); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("preview written", "output", output, "size", size)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 512, "output image size in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default: input name with .png)")

	return cmd
}

func derivePNGName(input string) string {
	if i := strings.LastIndex(input, "."); i > 0 {
		return input[:i] + ".png"
	}
	return input + ".png"
}
