package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/srcweld/srcweld/internal/combiner"
	"github.com/srcweld/srcweld/internal/config"
	"github.com/srcweld/srcweld/internal/database"
	"github.com/srcweld/srcweld/internal/log"
	"github.com/srcweld/srcweld/internal/model"
	"github.com/srcweld/srcweld/internal/pipeline"
	"github.com/srcweld/srcweld/internal/project"
	"github.com/srcweld/srcweld/internal/report"
	"github.com/srcweld/srcweld/internal/scanner"
)

// NewCombineCmd creates the combine command.
func NewCombineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine <project-list> <output>",
		Short: "Combine project source files into one output file",
		Long: `Combine reads the project manifests named in the project-list file,
expands them into an ordered list of source files, and writes a single
combined document to the output path.

Import directives are deduplicated and hoisted to the top; each file's body
follows a marker comment naming the original file, in project order. With
--minify, comments are stripped and line breaks removed from the result;
the generated header and the per-file markers are comments themselves, so
minified output carries neither.

Examples:
  # Combine the projects listed in projects.txt
  srcweld combine projects.txt combined.cs

  # Minify the combined output
  srcweld combine --minify projects.txt combined.cs

  # Open the result when done
  srcweld combine --open projects.txt combined.cs

  # Write a JSON run summary to a file as well as the terminal
  srcweld combine --json --report summary.json projects.txt combined.cs

Configuration file (.srcweld) example:
  ignore_files:
    - AssemblyInfo.cs
  minify: false
  batch_size: 8`,
		Args: cobra.ExactArgs(2),
		RunE: runCombineCmd,
	}

	// Output shaping flags
	cmd.Flags().BoolP("minify", "m", false,
		"Strip comments and remove line breaks from the combined output")
	cmd.Flags().BoolP("open", "O", false,
		"Open the output file with the platform opener when done")

	// Extraction flags
	cmd.Flags().IntP("batch-size", "b", config.DefaultBatchSize,
		"Number of source files extracted concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .srcweld in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON run summary (mutually exclusive with --markdown)")
	cmd.Flags().Bool("markdown", false,
		"Output Markdown run summary (mutually exclusive with --json)")
	cmd.Flags().StringP("report", "r", "",
		"Write the run summary to the specified file as well")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the history database")

	return cmd
}

// runCombineCmd executes the combine command.
func runCombineCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with the warning counter that feeds the
	// run summary's diagnostics.
	logger, counter := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

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

	return runCombine(ctx, cfg, logger, counter, cmd.OutOrStdout())
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flags win over file settings.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	cfg.ProjectListPath = args[0]
	cfg.OutputPath = args[1]

	var err error

	cfg.Minify, err = cmd.Flags().GetBool("minify")
	if err != nil {
		return nil, err
	}

	cfg.OpenWhenDone, err = cmd.Flags().GetBool("open")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch-size")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noHistory

	cfg.Verbose = getVerboseFlag(cmd)

	// Merge in the configuration file. An explicitly named file must
	// exist; the default search locations may simply be absent.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(cf)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
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

// runCombine executes the combine pipeline: discover, extract, assemble,
// optionally minify, persist, then report.
func runCombine(ctx context.Context, cfg *config.Config, logger *slog.Logger, counter *log.CountingHandler, stdout io.Writer) error {
	startTime := time.Now()

	files, err := project.ExpandList(cfg.ProjectListPath, cfg.IgnoreFiles)
	if err != nil {
		return err
	}

	logger.Info("starting combine",
		"projectList", cfg.ProjectListPath,
		"output", cfg.OutputPath,
		"files", len(files),
		"minify", cfg.Minify,
		"batchSize", cfg.BatchSize,
	)

	extractor := pipeline.NewBatchExtractor(
		pipeline.FileExtractor,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithLogger(logger),
	)

	results, err := extractor.ExtractAll(ctx, files)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	generatedAt := time.Now()
	doc := combiner.Build(results, generatedAt)

	runReport := model.NewRunReport(cfg.ProjectListPath, cfg.OutputPath)
	runReport.GeneratedAt = generatedAt
	runReport.FileCount = doc.FileCount
	runReport.Namespaces = doc.Namespaces
	runReport.Minified = cfg.Minify
	for _, r := range results {
		runReport.Files = append(runReport.Files, filepath.Base(r.Path))
	}

	text := doc.Text
	if cfg.Minify {
		var diags scanner.Diagnostics
		text, diags = doc.Minified()
		if diags.UnterminatedComments > 0 {
			logger.Warn("unterminated block comment; remainder of the affected text was discarded",
				"count", diags.UnterminatedComments,
			)
			runReport.UnterminatedComments = diags.UnterminatedComments
		}
		if diags.UnterminatedStrings > 0 {
			logger.Warn("string literal not terminated before end of line",
				"count", diags.UnterminatedStrings,
			)
		}
	}

	if err := combiner.WriteAtomic(cfg.OutputPath, []byte(text)); err != nil {
		return err
	}
	runReport.BytesWritten = len(text)
	runReport.Elapsed = time.Since(startTime)

	logger.Info("combine complete",
		"output", cfg.OutputPath,
		"bytes", runReport.BytesWritten,
		"warnings", counter.Warnings(),
		"elapsed", runReport.Elapsed,
	)

	if err := outputReport(cfg, runReport, stdout); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}

	// History and the opener are auxiliary; failures degrade to warnings
	// because the combined output is already in place.
	if cfg.SaveHistory {
		if err := saveRun(ctx, cfg, runReport); err != nil {
			logger.Warn("failed to record run history", "error", err)
		}
	}

	if cfg.OpenWhenDone {
		if err := openOutput(cfg.OutputPath); err != nil {
			logger.Warn("failed to open output file", "path", cfg.OutputPath, "error", err)
		}
	}

	return nil
}

// outputReport writes the run summary to stdout and, if configured, to the
// report file in the selected format.
func outputReport(cfg *config.Config, runReport *model.RunReport, stdout io.Writer) error {
	newWriter := func(w io.Writer) report.Writer {
		switch {
		case cfg.JSONReport:
			return report.NewJSONWriter(w, report.WithPrettyPrint())
		case cfg.MarkdownReport:
			return report.NewMarkdownWriter(w)
		default:
			return report.NewSimpleWriter(w, report.WithVerbose(cfg.Verbose))
		}
	}

	writers := []report.Writer{newWriter(stdout)}

	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Best-effort close on the read path
		writers = append(writers, newWriter(f))
	}

	_, err := report.NewMultiWriter(writers...).Write(runReport)
	return err
}

// saveRun records the run in the history database.
func saveRun(ctx context.Context, cfg *config.Config, runReport *model.RunReport) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // Best-effort close after insert

	_, err = db.InsertRun(ctx, runReport)
	return err
}
