package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumatools/ieskit/resources"
	"github.com/lumatools/ieskit/transform"
	"github.com/lumatools/ieskit/writer"
)

// newRescaleCmd creates the rescale command: parse, remap the vertical
// emission cone, serialize, and persist the result.
func newRescaleCmd(configPath *string) *cobra.Command {
	var (
		angle    float64
		preserve bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "rescale <file.ies>",
		Short: "Rescale a profile's vertical emission cone",
		Long: `Rescale fits a profile's vertical emission distribution into a new cone
angle between 0 and 180 degrees. By default the candela magnitudes are
recomputed from the scaled projections; --preserve-intensity keeps the
original magnitudes outside the near-horizontal band instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("angle") {
				angle = cfg.Rescale.Angle
			}
			if !cmd.Flags().Changed("preserve-intensity") {
				preserve = cfg.Rescale.PreserveIntensity
			}
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			logger := loggerFromContext(cmd.Context())
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}

			scaled, err := transform.Rescale(doc, angle, preserve)
			if err != nil {
				return fmt.Errorf("rescale %s: %w", args[0], err)
			}
			scaled.File.Name = output

			w := writer.New(writer.Config{Logger: obsLogger{l: logger}})
			data, err := w.Write(scaled)
			if err != nil {
				return fmt.Errorf("serialize %s: %w", output, err)
			}
			if err := (resources.FileSink{}).Persist(output, data); err != nil {
				return err
			}
			logger.Info("rescaled profile written",
				"input", args[0], "output", output, "angle", angle, "preserve", preserve)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&angle, "angle", "a", 180, "target cone angle in degrees [0, 180]")
	cmd.Flags().BoolVar(&preserve, "preserve-intensity", false, "preserve candela magnitudes off the near-horizontal band")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")

	return cmd
}
