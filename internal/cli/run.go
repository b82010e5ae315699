package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcedit/internal/configloader"
	"github.com/yaklabco/srcedit/internal/logging"
	"github.com/yaklabco/srcedit/pkg/component"
	"github.com/yaklabco/srcedit/pkg/config"
	"github.com/yaklabco/srcedit/pkg/parser/treesitter"
	"github.com/yaklabco/srcedit/pkg/reporter"
	"github.com/yaklabco/srcedit/pkg/runner"
	"github.com/yaklabco/srcedit/pkg/session"
)

// runFlags are shared by the commands that edit files.
type runFlags struct {
	format    string
	jobs      int
	dryRun    bool
	backup    bool
	noBackups bool
	strict    bool
	compact   bool
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show changes without writing them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of files edited in parallel (0 = auto)")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "write <file>.srcedit.bak before replacing a file")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backups even if configured")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit 2 when nothing changed")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified JSON output")
}

// cliConfig maps the flags that were set onto a config layer.
func (f *runFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		DryRun:    f.dryRun,
		NoBackups: f.noBackups,
		Strict:    f.strict,
		Jobs:      f.jobs,
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if f.backup {
		cfg.Backups.Enabled = true
	}
	return cfg
}

// loadConfig resolves configuration for cmd, layering cli on top.
func loadConfig(cmd *cobra.Command, cli *config.Config) (*config.Config, error) {
	ctx := commandContext(cmd)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, configError(errors.Join(errors.New("failed to load configuration"), err))
	}

	logger := logging.FromContext(ctx)
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// commandLogger returns a logger on the command's error stream at the
// configured level, or debug with --debug.
func commandLogger(cmd *cobra.Command, level string) context.Context {
	if debug, err := cmd.Flags().GetBool("debug"); err == nil && debug {
		level = "debug"
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return logging.WithLogger(commandContext(cmd), logger)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// prepareFunc turns command arguments into jobs.
type prepareFunc func(ctx context.Context, registry *component.Registry) ([]runner.Job, error)

// execute loads configuration, prepares jobs, runs them, and reports.
func execute(cmd *cobra.Command, flags *runFlags, prepare prepareFunc) error {
	// Warnings from loading go to the command's stream before the
	// configured level is known.
	cmd.SetContext(commandLogger(cmd, "info"))

	cfg, err := loadConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	ctx := commandLogger(cmd, cfg.LogLevel)
	logger := logging.FromContext(ctx)

	logger.Debug("configuration loaded",
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFormat, cfg.Format,
	)

	registry, err := component.NewRegistry(cfg.Components...)
	if err != nil {
		return configError(err)
	}

	jobs, err := prepare(ctx, registry)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return usageError(fmt.Errorf("invalid format: %w", err))
	}
	if format == reporter.FormatDiff && !cfg.DryRun {
		logger.Warn("diff output shows only dry-run changes; add --dry-run to preview")
	}

	collector, err := session.NewCollector()
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}
	defer func() {
		if err := collector.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Debug("metrics shutdown failed", logging.FieldError, err)
		}
	}()

	sess := session.New(treesitter.NewJava(), session.OptionsFromConfig(cfg))
	sess.Metrics = collector.Metrics()

	result, err := runner.New(sess).Run(ctx, jobs, runner.Options{Jobs: cfg.Jobs})
	if err != nil {
		return errors.Join(errors.New("run failed"), err)
	}

	metrics := readMetrics(ctx, collector)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
		Metrics:     metrics,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("report results: %w", err)}
	}

	switch code := ExitCodeFromResult(result, cfg.Strict); code {
	case ExitSuccess:
		return nil
	case ExitNothingChanged:
		return &ExitError{Code: code, Err: ErrNothingChanged}
	default:
		return &ExitError{Code: code, Err: ErrOperationsFailed}
	}
}

// readMetrics snapshots the run's session metrics and logs them at debug.
// A failed read is logged and yields nil.
func readMetrics(ctx context.Context, collector *session.Collector) *session.Snapshot {
	logger := logging.FromContext(ctx)

	snap, err := collector.Snapshot(ctx)
	if err != nil {
		logger.Warn("session metrics unavailable", logging.FieldError, err)
		return nil
	}

	logger.Debug("session metrics",
		logging.FieldSessions, snap.Sessions,
		logging.FieldApplied, snap.EditsApplied,
		logging.FieldDuration, time.Duration(snap.DurationSeconds*float64(time.Second)),
	)
	return &snap
}
