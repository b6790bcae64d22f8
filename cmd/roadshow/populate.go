package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Ayman2G/Affinity-alg/internal/config"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/output"
	"github.com/spf13/cobra"
)

type populateFlags struct {
	deals   string
	notes   string
	persons string
	output  string
	preview string
	pretty  bool
}

func newPopulateCommand() *cobra.Command {
	pf := &populateFlags{}
	cmd := &cobra.Command{
		Use:   "populate [export.csv notes.csv persons.csv]",
		Short: "Generate a populated roadshow workbook",
		Long: `Populate reads the three CSV exports and fills the roadshow template.

Files given as arguments are classified by their header row. Use --deals,
--notes and --persons to name each file explicitly instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPopulate(cmd, args, pf)
		},
	}

	cmd.Flags().StringVar(&pf.deals, "deals", "", "Deal export CSV")
	cmd.Flags().StringVar(&pf.notes, "notes", "", "Notes export CSV")
	cmd.Flags().StringVar(&pf.persons, "persons", "", "Associated persons export CSV")
	cmd.Flags().StringVarP(&pf.output, "output", "o", "", "Write the workbook to this path")
	cmd.Flags().String("output-dir", "", "Save a timestamped copy of the workbook in this directory")
	cmd.Flags().StringVar(&pf.preview, "preview", "table", "Preview format: table, json, none")
	cmd.Flags().BoolVar(&pf.pretty, "pretty", false, "Pretty-print JSON preview")
	bindFlag(cmd.Flags().Lookup("output-dir"), config.KeyOutputDir)

	return cmd
}

func runPopulate(cmd *cobra.Command, args []string, pf *populateFlags) error {
	switch pf.preview {
	case "table", "json", "none":
	default:
		return fmt.Errorf("invalid preview: %s (must be table, json, or none)", pf.preview)
	}

	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}

	explicit := pf.deals != "" || pf.notes != "" || pf.persons != ""
	if explicit && len(args) > 0 {
		return errors.New("pass files either as arguments or with --deals/--notes/--persons, not both")
	}
	if !explicit && len(args) == 0 {
		return errors.New("no input files")
	}

	var in *roadshow.Inputs
	if explicit {
		in, err = roadshow.LoadSources(cmd.Context(), roadshow.Sources{
			Deals:   pf.deals,
			Notes:   pf.notes,
			Persons: pf.persons,
		})
	} else {
		in, err = roadshow.LoadFiles(cmd.Context(), args...)
	}
	if err != nil {
		return fmt.Errorf("loading inputs failed: %w", err)
	}
	for _, name := range in.Ignored {
		logger.Warn().Str("file", name).Msg("ignoring unrecognized file")
	}

	result, err := roadshow.Generate(in, roadshow.Options{
		TemplatePath: cfg.TemplatePath,
		Layout:       &layout,
		Logger:       &logger,
	})
	if err != nil {
		return fmt.Errorf("populating template failed: %w", err)
	}

	if err := renderPreview(cmd.OutOrStdout(), result, layout, pf); err != nil {
		return err
	}

	if pf.output != "" {
		if err := writeOutput(pf.output, result); err != nil {
			return err
		}
		logger.Info().Str("path", pf.output).Msg("wrote workbook")
	}

	if cfg.OutputDir != "" {
		path, err := result.Save(cfg.OutputDir)
		if err != nil {
			if errors.Is(err, roadshow.ErrFileLocked) {
				logger.Error().Err(err).Msg("permission denied: make sure the file is not open in another program and try again")
			} else {
				logger.Error().Err(err).Msg("saving workbook failed")
			}
			return err
		}
		logger.Info().Str("path", path).Msg("saved workbook")
	}

	return nil
}

func renderPreview(w io.Writer, result *roadshow.Result, layout grid.Layout, pf *populateFlags) error {
	switch pf.preview {
	case "table":
		return output.RenderTable(w, result.Preview, layout)
	case "json":
		data, err := output.ToJSON(result.Preview, pf.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return nil
}

func writeOutput(path string, result *roadshow.Result) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, result.BookName)
	}
	if err := os.WriteFile(path, result.Bytes(), 0644); err != nil {
		return &roadshow.SaveError{Path: path, Err: err}
	}
	return nil
}
