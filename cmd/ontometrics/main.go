// Package main provides the ontometrics binary entry point.
// OntoMetrics computes structural quality metrics for RDF/OWL ontologies:
// schema-level richness scores and knowledge-base-level population,
// connectivity, importance, and cohesion scores.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontometrics/config"
	"github.com/c360studio/ontometrics/extract"
	"github.com/c360studio/ontometrics/metrics"
	"github.com/c360studio/ontometrics/report"
	"github.com/c360studio/ontometrics/store"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontometrics"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "ontometrics",
		Short: "Ontology quality metrics",
		Long: `OntoMetrics computes structural quality metrics for RDF/OWL ontologies.

Schema metrics:
- Relationship Richness: non-taxonomic share of class relations
- Inheritance Richness: subclass axioms per class
- Attribute Richness: data properties per class

Knowledge base metrics:
- Class Richness: fraction of classes with instances
- Class Connectivity: links leaving each class's population
- Class Importance: population mass of each class's subtree
- Cohesion: connected components of the instance graph`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(evalCmd(&configPath))
	cmd.AddCommand(watchCmd(&configPath))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// configureLogging installs the default slog logger at the given level.
func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig loads the explicit config file when given, otherwise the
// layered defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(nil).Load()
}

// evaluate runs the full metric pipeline over one ontology file.
func evaluate(path string, topN int) (report.Result, error) {
	start := time.Now()

	st, err := store.LoadFile(path)
	if err != nil {
		return report.Result{}, err
	}

	el := extract.Extract(st)
	schema := metrics.ComputeSchema(el)
	classRel := metrics.AllClassRelationshipRichness(st, el)
	kb := metrics.ComputeKB(st, el)

	return report.Build(path, st, el, schema, classRel, kb, topN, time.Since(start)), nil
}
