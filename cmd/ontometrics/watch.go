package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/c360studio/ontometrics/metric"
	"github.com/c360studio/ontometrics/paths"
	"github.com/c360studio/ontometrics/report"
	"github.com/c360studio/ontometrics/watch"
)

func watchCmd(configPath *string) *cobra.Command {
	var (
		format string
		topN   int
		listen string
	)

	cmd := &cobra.Command{
		Use:   "watch <pattern>...",
		Short: "Re-evaluate ontology files whenever they change",
		Long: `Watch evaluates each matched ontology file, then keeps running and
re-evaluates a file whenever it changes on disk. With --listen set (or
metrics.listen configured), evaluation counters, durations, and the latest
scores are served on /metrics for prometheus scraping.`,
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
			if listen == "" {
				listen = cfg.Metrics.Listen
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

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m := metric.New()
			if listen != "" {
				registry := prometheus.NewRegistry()
				if err := m.Register(registry); err != nil {
					return fmt.Errorf("register metrics: %w", err)
				}
				go serveMetrics(ctx, listen, registry)
			}

			runOnce := func(file string) {
				start := time.Now()
				result, err := evaluate(file, topN)
				m.ObserveRun(file, time.Since(start), err)
				if err != nil {
					slog.Error("evaluation failed", "path", file, "error", err)
					return
				}

				m.TriplesLoaded.WithLabelValues(file).Set(float64(result.Summary.Triples))
				m.SetScore(file, "relationship_richness", result.Schema.RelationshipRichness)
				m.SetScore(file, "inheritance_richness", result.Schema.InheritanceRichness)
				m.SetScore(file, "attribute_richness", result.Schema.AttributeRichness)
				m.SetScore(file, "class_richness", result.ClassRichness)
				m.SetScore(file, "cohesion", float64(result.Cohesion))

				rendered, err := report.Render(result, outFormat)
				if err != nil {
					slog.Error("render failed", "path", file, "error", err)
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
			}

			for _, file := range files {
				runOnce(file)
			}

			w, err := watch.New(files, cfg.Watch.DebounceDelay, slog.Default())
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			go w.Run(ctx)

			slog.Info("watching ontology files", "count", len(files))
			for path := range w.Events() {
				slog.Info("ontology changed, re-evaluating", "path", path)
				runOnce(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format (text, json, yaml)")
	cmd.Flags().IntVarP(&topN, "top", "n", 0, "Number of classes in the rankings")
	cmd.Flags().StringVar(&listen, "listen", "", "Address for the prometheus /metrics endpoint")

	return cmd
}

// serveMetrics runs the prometheus exposition endpoint until the context
// is cancelled.
func serveMetrics(ctx context.Context, addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metric.Handler(registry))

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("serving metrics", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("metrics server failed", "error", err)
	}
}
