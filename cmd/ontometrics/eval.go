package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontometrics/paths"
	"github.com/c360studio/ontometrics/report"
)

func evalCmd(configPath *string) *cobra.Command {
	var (
		format string
		topN   int
	)

	cmd := &cobra.Command{
		Use:   "eval <pattern>...",
		Short: "Evaluate ontology files once and print their metrics",
		Long: `Eval loads each matched ontology file, computes schema and knowledge
base metrics, and prints a report per file.

Patterns support single-level (*) and recursive (**) wildcards:

  ontometrics eval schema.ttl
  ontometrics eval 'ontologies/**/*.owl' extra.nt --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Output.Format
			}
			if topN == 0 {
				topN = cfg.Output.TopN
			}

			outFormat, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			files, err := paths.Resolve(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no ontology files match %v", args)
			}

			failed := 0
			for _, file := range files {
				result, err := evaluate(file, topN)
				if err != nil {
					slog.Error("evaluation failed", "path", file, "error", err)
					failed++
					continue
				}

				rendered, err := report.Render(result, outFormat)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
			}

			if failed == len(files) {
				return fmt.Errorf("all %d ontology files failed to evaluate", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format (text, json, yaml)")
	cmd.Flags().IntVarP(&topN, "top", "n", 0, "Number of classes in the rankings")

	return cmd
}
