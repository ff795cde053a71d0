package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/iansan5653/propwatch/internal/config"
	"github.com/iansan5653/propwatch/internal/errors"
	"github.com/iansan5653/propwatch/internal/printer"
	"github.com/iansan5653/propwatch/pkg/middleware"
	"github.com/iansan5653/propwatch/pkg/propwatch"
	"github.com/iansan5653/propwatch/pkg/scene"
)

func demoCmd() *cobra.Command {
	var (
		showMetrics bool
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "demo [scene-file]",
		Short: "Run a scripted scene and trace every redraw",
		Long: `Run a scene's script against its canvas, printing a redraw line for
every notification the canvas sink receives.

Without a scene file the built-in demo scene runs. Each script step is
one or more member writes; the trace shows exactly how many redraws
each step produced.

Examples:
  propwatch demo
  propwatch demo propwatch.yml --metrics
  propwatch demo propwatch.yml --log-level=debug`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runDemo(path, showMetrics, logLevel)
		},
	}

	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print notification counters after the run")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug shows each notification)")

	return cmd
}

func runDemo(path string, showMetrics bool, logLevel string) error {
	level, err := parseLogLevel(logLevel)
	if err != nil {
		return err
	}
	var cfg *config.Config
	if path == "" {
		cfg = config.Default()
		printer.Info("No scene file given, running the built-in demo scene\n")
	} else {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	redraws := 0
	var sink propwatch.Notifier = propwatch.NotifierFunc(func() {
		redraws++
		printer.Redraw(redraws)
	})

	var registry *prometheus.Registry
	var middlewares []middleware.Middleware
	if showMetrics {
		registry = prometheus.NewRegistry()
		metrics := middleware.NewMetrics(middleware.WithRegistry(registry))
		middlewares = append(middlewares, metrics.Instrument("canvas"))
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	middlewares = append(middlewares, middleware.Logging(logger, "canvas"))
	sink = middleware.Chain(sink, middlewares...)

	shapes := make([]*scene.Shape, 0, len(cfg.Shapes))
	for _, entry := range cfg.Shapes {
		shapes = append(shapes, scene.NewShape(entry.ShapeConfig(), propwatch.Discard))
	}

	printer.Step("Mounting %d shapes on canvas %q\n", len(shapes), cfg.Canvas.Name)
	canvas := scene.NewCanvas(cfg.Canvas.Name, sink, shapes...)
	if cfg.Canvas.Width > 0 && cfg.Canvas.Height > 0 {
		canvas.SetBounds(cfg.Canvas.Width, cfg.Canvas.Height)
	}

	for i := range cfg.Script {
		if err := applyStep(canvas, &cfg.Script[i], i); err != nil {
			return err
		}
	}

	printer.Println()
	printer.Success("Scene settled after %d redraws, %d shapes on canvas\n", redraws, canvas.Len())

	if showMetrics {
		return printMetrics(registry)
	}
	return nil
}

// parseLogLevel maps the --log-level flag value to a slog level.
func parseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Newf(errors.CategoryCLI, "unknown log level %q", s).
		WithSuggestion("Use debug, info, warn, or error")
}

// applyStep runs one script step against the live canvas.
func applyStep(canvas *scene.Canvas, step *config.Step, index int) error {
	switch step.Action {
	case config.ActionSetColor:
		shape, err := shapeAt(canvas, step.Shape, index)
		if err != nil {
			return err
		}
		printer.Step("script[%d] set-color shape %d to %s\n", index, step.Shape, step.Color)
		shape.SetColor(step.Color)

	case config.ActionMove:
		shape, err := shapeAt(canvas, step.Shape, index)
		if err != nil {
			return err
		}
		printer.Step("script[%d] move shape %d to (%g, %g)\n", index, step.Shape, step.X, step.Y)
		if !shape.MoveTo(step.X, step.Y) {
			printer.Warning("move refused, coordinates are frozen\n")
		}

	case config.ActionResize:
		shape, err := shapeAt(canvas, step.Shape, index)
		if err != nil {
			return err
		}
		printer.Step("script[%d] resize shape %d to %gx%g\n", index, step.Shape, step.Width, step.Height)
		if !shape.Resize(step.Width, step.Height) {
			printer.Warning("resize refused, size is frozen\n")
		}

	case config.ActionSetOpacity:
		shape, err := shapeAt(canvas, step.Shape, index)
		if err != nil {
			return err
		}
		printer.Step("script[%d] set-opacity shape %d to %g\n", index, step.Shape, step.Opacity)
		shape.SetOpacity(step.Opacity)

	case config.ActionToggle:
		shape, err := shapeAt(canvas, step.Shape, index)
		if err != nil {
			return err
		}
		printer.Step("script[%d] toggle shape %d\n", index, step.Shape)
		shape.ToggleVisible()

	case config.ActionAdd:
		printer.Step("script[%d] add %s shape\n", index, step.Add.Kind)
		canvas.Add(scene.NewShape(step.Add.ShapeConfig(), propwatch.Discard))

	case config.ActionPop:
		printer.Step("script[%d] pop last shape\n", index)
		if _, ok := canvas.Pop(); !ok {
			printer.Warning("canvas is already empty\n")
		}

	case config.ActionClear:
		printer.Step("script[%d] clear canvas\n", index)
		canvas.Clear()

	case config.ActionReplace:
		printer.Step("script[%d] replace canvas contents with %d shapes\n", index, len(step.Shapes))
		replacement := make([]*scene.Shape, 0, len(step.Shapes))
		for i := range step.Shapes {
			replacement = append(replacement, scene.NewShape(step.Shapes[i].ShapeConfig(), propwatch.Discard))
		}
		canvas.Replace(replacement)
	}

	return nil
}

// shapeAt resolves the shape index a step names against the live canvas.
// Validation cannot catch out-of-range indexes: the canvas grows and
// shrinks as the script runs.
func shapeAt(canvas *scene.Canvas, i, stepIndex int) (*scene.Shape, error) {
	shape, ok := canvas.Shape(i)
	if !ok {
		return nil, errors.New("E012").WithDetail("script[%d]: shape %d, canvas has %d", stepIndex, i, canvas.Len())
	}
	return shape, nil
}

// printMetrics gathers the private registry and prints its families.
func printMetrics(registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}

	printer.Println()
	printer.Info("Notification counters:\n")
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				printer.Printf("  %s%s = %v\n",
					family.GetName(), labelString(metric), metric.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				printer.Printf("  %s%s count=%d sum=%.6fs\n",
					family.GetName(), labelString(metric), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}

// labelString renders a metric's label pairs as {name="value",...}.
func labelString(metric *dto.Metric) string {
	pairs := metric.GetLabel()
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", pair.GetName(), pair.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
