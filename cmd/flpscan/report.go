package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/flpscan/internal/analyzer"
	"github.com/nao1215/flpscan/internal/config"
	"github.com/nao1215/flpscan/internal/flp"
	"github.com/nao1215/flpscan/internal/model"
	"github.com/nao1215/flpscan/internal/report"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [flp-file]",
		Short: "Generate an HTML parse coverage report for an FLP file",
		Long: `Report parses an FL Studio project file with the external PyFLP dumper
and writes a static HTML document showing how much of the file was decoded
into known event types versus left opaque.

The document contains four summary cards, a top-level coverage bar, and four
ranked tables: event types, event IDs, unknown top-level event IDs, and
unknown VST plugin sub-event IDs.

Examples:
  # Generate parse-report.html in the current directory
  flpscan report song.flp

  # Choose the output path and show more rows per table
  flpscan report song.flp -o reports/song.html --top 50

  # Use a dumper that is not on PATH
  flpscan report song.flp --parser /opt/pyflp/bin/flp2json

Configuration file (.flpscan) example:
  output: reports/coverage.html
  top: 50
  parser: /opt/pyflp/bin/flp2json`,
		Args: cobra.ExactArgs(1),
		RunE: runReportCmd,
	}

	// Report flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Output HTML file path (directories are created if needed)")
	cmd.Flags().Int("top", config.DefaultTopRows,
		"Number of rows to include in each ranked table")

	// External parser flag
	cmd.Flags().String("parser", flp.DefaultCommand,
		"External FLP dumper command name or path")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .flpscan in current or home directory)")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags and the optional config file
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling so an interrupted run kills the
	// dumper subprocess instead of leaving it behind.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runReport(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. File values fill in defaults; flags the user set
// explicitly always win.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.InputFile = args[0]
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load defaults from the config file.
	// If the user explicitly specified a config file path, error if not found.
	// If no path was specified, silently skip when no file exists.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags override file values when changed; the parser flag also supplies
	// the default command when neither flag nor file set one.
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputFile = output
	}

	top, err := cmd.Flags().GetInt("top")
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("top") {
		cfg.TopRows = top
	}

	parser, err := cmd.Flags().GetString("parser")
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("parser") || cfg.ParserCommand == "" {
		cfg.ParserCommand = parser
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runReport executes the load, analyze, and render stages for one file.
func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	inputPath, err := filepath.Abs(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("failed to resolve input path: %w", err)
	}

	logger.Info("parsing FLP file",
		"file", inputPath,
		"parser", cfg.ParserCommand,
	)

	parser := flp.NewPyFLPParser(
		flp.WithCommand(cfg.ParserCommand),
		flp.WithLogger(logger),
	)
	events, err := parser.Parse(ctx, inputPath)
	if err != nil {
		return err
	}

	coverage := analyzer.Analyze(inputPath, events)

	logger.Info("analyzed event stream",
		"events", coverage.Summary.TotalEvents,
		"parsed", coverage.Summary.ParsedEvents,
		"unknown", coverage.Summary.UnknownEvents,
		"unknownSubEvents", coverage.UnknownSubEvents,
	)

	if err := writeReport(cfg, coverage); err != nil {
		return err
	}

	outputPath, err := filepath.Abs(cfg.OutputFile)
	if err != nil {
		outputPath = cfg.OutputFile
	}
	fmt.Printf("Report written to: %s\n", outputPath)

	return nil
}

// writeReport renders the HTML document to the configured output file.
// The file is created only after aggregation succeeded, so a failed run
// never leaves a partial report behind.
func writeReport(cfg *config.Config, coverage *model.CoverageReport) error {
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// 0600 keeps the report owner-readable only; paths inside project files
	// can reveal usernames and machine layout.
	f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	writer := report.NewHTMLWriter(f, report.WithTopRows(cfg.TopRows))
	if _, err := writer.Write(coverage); err != nil {
		f.Close() //nolint:errcheck,gosec // Best effort cleanup on write failure
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
