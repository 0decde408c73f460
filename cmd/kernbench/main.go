// Package main provides the CLI entry point for kernbench, a harness for
// micro-benchmarks of isolated computational kernels.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/weiihann/kernbench/harness"
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/report"
	"github.com/weiihann/kernbench/suite"
	"github.com/weiihann/kernbench/workload"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("kernbench failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "kernbench",
		Short: "Micro-benchmarks of isolated computational kernels",
		Long: `Kernbench times one computational pattern at a time: binary search,
branch-heavy classification, convolution, recursion, matrix multiply, pointer
chasing, prefix sum, sieving, sorting, tokenizing, dot product and transpose.
Each run generates deterministic input, times only the kernel, and prints a
witness of the result next to the elapsed time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd())
	root.AddCommand(newConfigCmd())

	return root
}

var formats = []string{"plain", "markdown", "json"}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "run [kernel...]",
		Short: "Run kernels and report their timings",
		Long: `Run the named kernels, or every kernel, for the configured number of
sequential runs and report the median elapsed time with the witness of
each kernel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg.seedSet = flags.Changed("seed")
			cfg.runsSet = flags.Changed("runs")
			cfg.kernels = args

			return runBenchmark(cmd.Context(), logger, cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.configPath, "config", "",
		"Path to a YAML suite file (see kernbench config)")
	flags.Int64Var(&cfg.seed, "seed", 0,
		"Seed for every seeded kernel (overrides the suite)")
	flags.IntVar(&cfg.runs, "runs", 1,
		"Sequential timed runs per kernel; the median is reported")
	flags.StringVar(&cfg.format, "format", "markdown",
		"Output format: plain, markdown, json")
	flags.StringVar(&cfg.chartPath, "chart", "",
		"Write an HTML bar chart of the timings to this path")
	flags.StringVar(&cfg.metricsPath, "metrics-out", "",
		"Write a Prometheus textfile of the timings to this path")
	flags.StringVar(&cfg.historyPath, "history", "",
		"Append the timings to this JSON history file")
	flags.BoolVar(&cfg.isolate, "isolate", false,
		"Build and run each kernel's standalone binary in a child process")
	flags.StringVar(&cfg.moduleDir, "module-dir", ".",
		"Module root holding cmd/<kernel> (with --isolate)")
	flags.StringVar(&cfg.binDir, "bin-dir", "bin",
		"Directory for standalone binaries (with --isolate)")
	flags.BoolVar(&cfg.skipBuild, "skip-build", false,
		"Use existing binaries in --bin-dir instead of building them")
	flags.StringSliceVar(&cfg.buildFlags, "build-flags", nil,
		"Extra go build flags, e.g. -gcflags=-B")
	flags.StringArrayVar(&cfg.env, "env", nil,
		"KEY=VALUE added to the environment of child processes, e.g. GOGC=off")
	flags.DurationVar(&cfg.timeout, "timeout", 10*time.Minute,
		"Timeout per child process (with --isolate)")

	return cmd
}

type runConfig struct {
	configPath  string
	seed        int64
	seedSet     bool
	runs        int
	runsSet     bool
	kernels     []string
	format      string
	chartPath   string
	metricsPath string
	historyPath string
	isolate     bool
	moduleDir   string
	binDir      string
	skipBuild   bool
	buildFlags  []string
	env         []string
	timeout     time.Duration
}

func loadSuite(cfg runConfig) (suite.Config, error) {
	s := suite.Default()

	if cfg.configPath != "" {
		var err error

		s, err = suite.Load(cfg.configPath)
		if err != nil {
			return suite.Config{}, err
		}
	}

	if cfg.seedSet {
		seed := cfg.seed
		s.Seed = &seed
	}

	if cfg.runsSet {
		s.Runs = cfg.runs
	}

	if len(cfg.kernels) > 0 {
		s.Kernels = cfg.kernels
	}

	if err := s.Validate(); err != nil {
		return suite.Config{}, err
	}

	return s, nil
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	stdout io.Writer,
	cfg runConfig,
) error {
	if !slices.Contains(formats, cfg.format) {
		return fmt.Errorf("%w: unknown format %q",
			workload.ErrInvalidConfiguration, cfg.format)
	}

	s, err := loadSuite(cfg)
	if err != nil {
		return fmt.Errorf("load suite: %w", err)
	}

	kernels, err := s.Selected()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting benchmark",
		slog.Int("kernels", len(kernels)),
		slog.Int("runs", s.Runs),
		slog.Bool("isolate", cfg.isolate),
	)

	// Step 1: Time every kernel.
	var results []harness.Result

	if cfg.isolate {
		results, err = runIsolated(ctx, logger, s, kernels, cfg)
	} else {
		results, err = harness.NewRunner(logger).RunAll(ctx, kernels, s.Runs)
	}

	if err != nil {
		return err
	}

	doc := report.NewDocument(results, cfg.isolate)

	// Step 2: Generate report.
	switch cfg.format {
	case "plain":
		err = report.PlainAll(stdout, results)
	case "json":
		err = report.GenerateJSON(stdout, doc)
	default:
		err = report.Generate(stdout, doc.Summaries)
	}

	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	// Step 3: Optional side outputs.
	if cfg.chartPath != "" {
		if err := writeChart(cfg.chartPath, doc.Summaries); err != nil {
			return err
		}
	}

	if cfg.metricsPath != "" {
		if err := report.WriteMetrics(cfg.metricsPath, doc.Summaries); err != nil {
			return err
		}
	}

	if cfg.historyPath != "" {
		if err := report.AppendHistory(cfg.historyPath, doc); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "benchmark complete",
		slog.String("run_id", doc.RunID),
	)

	return nil
}

// runIsolated builds each kernel's standalone binary and runs it once per
// requested run. Standalone binaries only know their compiled-in defaults,
// so a suite that changes parameters cannot be run this way.
func runIsolated(
	ctx context.Context,
	logger *slog.Logger,
	s suite.Config,
	kernels []kernel.Kernel,
	cfg runConfig,
) ([]harness.Result, error) {
	if s.Effective() != kernel.DefaultParams() {
		return nil, fmt.Errorf(
			"%w: standalone binaries run with default parameters; "+
				"drop --seed and suite params when using --isolate",
			workload.ErrInvalidConfiguration,
		)
	}

	moduleDir, err := filepath.Abs(cfg.moduleDir)
	if err != nil {
		return nil, fmt.Errorf("resolve module dir: %w", err)
	}

	binDir, err := filepath.Abs(cfg.binDir)
	if err != nil {
		return nil, fmt.Errorf("resolve bin dir: %w", err)
	}

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return nil, fmt.Errorf("create bin dir: %w", err)
	}

	buildCfg := harness.BuildConfig{
		ModuleDir: moduleDir,
		BinDir:    binDir,
		Flags:     cfg.buildFlags,
	}

	// Build every binary before timing any of them.
	binaries := make(map[string]string, len(kernels))

	for _, k := range kernels {
		binPath := harness.ResolveBinary(binDir, k.Name())

		if !cfg.skipBuild {
			binPath, err = harness.Build(ctx, logger, buildCfg, k.Name())
			if err != nil {
				return nil, err
			}
		}

		binaries[k.Name()] = binPath
	}

	results := make([]harness.Result, 0, len(kernels)*s.Runs)

	for _, k := range kernels {
		runner := harness.NewProcessRunner(
			k.Name(), string(k.Category()), binaries[k.Name()], cfg.env, logger,
		)

		for i := 0; i < s.Runs; i++ {
			result, err := runner.Run(ctx, harness.ProcessConfig{
				Timeout: cfg.timeout,
			})
			if err != nil {
				return nil, fmt.Errorf("run %s: %w", k.Name(), err)
			}

			result.Seed = k.Seed()
			result.Run = i + 1
			results = append(results, *result)
		}
	}

	return results, nil
}

func writeChart(path string, summaries []report.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}

	if err := report.Chart(f, summaries); err != nil {
		f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}

	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List kernels with their category and default parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			for _, k := range kernel.Registry(kernel.DefaultParams()) {
				params := "{}"
				if pk, ok := k.(kernel.Parameterized); ok {
					data, err := json.Marshal(pk.Parameters())
					if err != nil {
						return fmt.Errorf("encode %s parameters: %w", k.Name(), err)
					}
					params = string(data)
				}

				if _, err := fmt.Fprintf(w, "%-18s %-10s %s\n",
					k.Name(), k.Category(), params); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print a suite file with every parameter filled in",
		Long: `Print the default suite as YAML, or the given suite file with its
defaults filled in. The output is a valid --config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := suite.Default()

			if configPath != "" {
				var err error

				s, err = suite.Load(configPath)
				if err != nil {
					return err
				}
			}

			return s.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "",
		"Suite file to normalize")

	return cmd
}
