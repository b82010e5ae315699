// Package config defines the configuration types for srcedit.
// These are plain data structures; loading and merging live in internal/configloader.
package config

import "strings"

// OutputFormat specifies how run results are reported.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backup behavior when writing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// ComponentConfig registers an extra component type for add and set
// operations, next to the built-in Button and TextField.
type ComponentConfig struct {
	// Name is how plans and flags refer to the type, matched case-insensitively.
	Name string `yaml:"name"`

	// Class is the fully qualified class name used for the import.
	Class string `yaml:"class"`

	// Property is the setter whose value is the constructor's string argument,
	// for example setText for Button. Empty when there is none.
	Property string `yaml:"property,omitempty"`
}

// SimpleName returns the unqualified class name.
func (c ComponentConfig) SimpleName() string {
	if i := strings.LastIndexByte(c.Class, '.'); i >= 0 {
		return c.Class[i+1:]
	}
	return c.Class
}

// Config is the root configuration structure for srcedit.
type Config struct {
	// Backups configures sidecar backups before a file is replaced.
	Backups BackupsConfig `yaml:"backups"`

	// StrictRaceDetection compares content hashes, not only size and mtime,
	// before writing.
	StrictRaceDetection bool `yaml:"strict_race_detection"`

	// RequireJava refuses files that do not look like Java source.
	RequireJava bool `yaml:"require_java"`

	// RefuseSyntaxErrors refuses files whose parse tree contains errors.
	RefuseSyntaxErrors bool `yaml:"refuse_syntax_errors"`

	// Reparse skips a clean file whose edited text would no longer parse.
	Reparse bool `yaml:"reparse"`

	// Jobs is the number of files processed in parallel; 0 means NumCPU.
	Jobs int `yaml:"jobs"`

	// Format is the default output format.
	Format OutputFormat `yaml:"format"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Components extends the component registry.
	Components []ComponentConfig `yaml:"components,omitempty"`

	// CLI-level options (not persisted to config files).

	// DryRun shows what would change without writing.
	DryRun bool `yaml:"-"`

	// NoBackups disables backup creation for this run.
	NoBackups bool `yaml:"-"`

	// Strict makes a run that changed nothing exit non-zero.
	Strict bool `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    "sidecar",
		},
		StrictRaceDetection: true,
		RequireJava:         true,
		RefuseSyntaxErrors:  false,
		Reparse:             false,
		Jobs:                0,
		Format:              FormatText,
		LogLevel:            "info",
	}
}
