package session

import (
	"github.com/yaklabco/srcedit/pkg/config"
	"github.com/yaklabco/srcedit/pkg/fsutil"
)

// Options controls how TransformFile treats the file on disk.
type Options struct {
	// DryRun computes the new text and a diff without writing.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// RequireJava refuses files that do not look like Java source.
	RequireJava bool

	// RefuseSyntaxErrors refuses files whose tree contains error nodes.
	RefuseSyntaxErrors bool

	// Reparse parses the new text before writing and skips the file when it
	// gained syntax errors the original did not have. Off by default: edited
	// text is written whenever it differs, parseable or not.
	Reparse bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		DryRun:              false,
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
		RequireJava:         true,
		RefuseSyntaxErrors:  false,
		Reparse:             false,
	}
}

// OptionsFromConfig derives session options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}

	opts.DryRun = cfg.DryRun
	opts.Backup = BackupConfigFromConfig(cfg)
	opts.StrictRaceDetection = cfg.StrictRaceDetection
	opts.RequireJava = cfg.RequireJava
	opts.RefuseSyntaxErrors = cfg.RefuseSyntaxErrors
	opts.Reparse = cfg.Reparse

	return opts
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.DefaultBackupConfig()
	}

	mode := fsutil.BackupMode(cfg.Backups.Mode)
	if mode == "" {
		mode = fsutil.BackupModeSidecar
	}

	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		Mode:    mode,
	}
}
