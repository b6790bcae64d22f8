package main

import (
	"fmt"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/sheet"
	"github.com/spf13/cobra"
)

func newTemplateCommand() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the built-in roadshow template",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			layout, err := cfg.Layout()
			if err != nil {
				return err
			}

			f, err := sheet.NewTemplate(layout)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := f.SaveAs(outputPath); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}
			logger.Info().Str("path", outputPath).Msg("wrote template")
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "Roadshow_template.xlsx", "Output file path")
	return cmd
}
