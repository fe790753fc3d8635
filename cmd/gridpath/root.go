package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/scenario"
)

var errTerminalInput = errors.New("refusing to read input from a terminal; pipe a file or pass a path")

// app carries the state shared by all subcommands of one invocation.
type app struct {
	in          io.Reader
	out, errOut io.Writer

	// global flags
	configPath  string
	logLevel    string
	logFormat   string
	workers     int
	tracing     bool
	metricsFile string

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *scenario.Metrics
	tp       *sdktrace.TracerProvider
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest routes, shortcuts and what-if scans on grid mazes",
		Long: `gridpath reads character maps ('#' wall, '.' open, 'S' start, 'E' goal)
or "col,row" wall lists and answers route questions about them.

Commands:
  path      - Shortest route from S to E
  cheats    - Histogram of shortcuts along the route
  fallen    - Shortest route after the first K walls of a list have fallen
  blocker   - First wall of a list that cuts the goal off
  removals  - Single walls whose removal restores or shortens the route

Configuration is read from --config, a .env file and GRIDPATH_* variables;
flags given on the command line win.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.IntVar(&a.workers, "workers", 0, "concurrent scenarios (0 = number of CPUs)")
	pf.BoolVar(&a.tracing, "tracing", false, "write finished spans to stderr")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		newPathCmd(a),
		newCheatsCmd(a),
		newFallenCmd(a),
		newBlockerCmd(a),
		newRemovalsCmd(a),
	)

	return root
}

// setup loads the configuration, applies explicitly set flags and builds
// the logger, the metrics registry and, if enabled, the span exporter.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("workers") {
		cfg.Scenario.Workers = a.workers
	}
	if flags.Changed("tracing") {
		cfg.Observability.Tracing = a.tracing
	}
	if flags.Changed("metrics-file") {
		cfg.Observability.MetricsFile = a.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.SlogLevel()
	hopts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.Log.Format, config.FormatJSON) {
		a.logger = slog.New(slog.NewJSONHandler(a.errOut, hopts))
	} else {
		a.logger = slog.New(slog.NewTextHandler(a.errOut, hopts))
	}
	a.logger = a.logger.With("command", cmd.Name())

	a.registry = prometheus.NewRegistry()
	a.metrics = scenario.NewMetrics(a.registry)

	if cfg.Observability.Tracing {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(a.errOut), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("create span exporter: %w", err)
		}
		a.tp = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		otel.SetTracerProvider(a.tp)
	}

	a.logger.Debug("configuration loaded",
		"config", a.configPath,
		"workers", cfg.Scenario.Workers,
		"max_scenarios", cfg.Scenario.MaxScenarios,
	)

	return nil
}

// close flushes spans and writes the metrics file. Safe to call when setup
// never ran.
func (a *app) close() error {
	var firstErr error
	if a.tp != nil {
		if err := a.tp.Shutdown(context.Background()); err != nil {
			firstErr = fmt.Errorf("flush spans: %w", err)
		}
	}
	if path := a.cfg.Observability.MetricsFile; path != "" && a.registry != nil {
		if err := prometheus.WriteToTextfile(path, a.registry); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("write metrics: %w", err)
		}
	}

	return firstErr
}

// scenarioOptions maps the configuration onto scenario options.
func (a *app) scenarioOptions(minSavings int) []scenario.Option {
	return []scenario.Option{
		scenario.WithWorkers(a.cfg.Scenario.Workers),
		scenario.WithMaxScenarios(a.cfg.Scenario.MaxScenarios),
		scenario.WithMinSavings(minSavings),
		scenario.WithLogger(a.logger),
		scenario.WithMetrics(a.metrics),
	}
}

// open returns the named file, or the command's stdin for "-".
// An interactive terminal is refused as stdin.
func (a *app) open(path string) (io.ReadCloser, error) {
	if path == "-" {
		if f, ok := a.in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return nil, errTerminalInput
		}
		return io.NopCloser(a.in), nil
	}

	return os.Open(path)
}

func (a *app) readMap(path string) (*gridgraph.Grid, error) {
	f, err := a.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gridgraph.ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func (a *app) readCoordinates(path string) ([]gridgraph.Point, error) {
	f, err := a.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	walls, err := gridgraph.ParseCoordinates(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return walls, nil
}
