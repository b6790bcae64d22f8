package main

import (
	"fmt"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/parser"
	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify file.csv...",
		Short: "Report which export each CSV file is",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runClassify,
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		t, err := parser.ReadTableFile(path)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, parser.Classify(t)); err != nil {
			return err
		}
	}
	return nil
}
