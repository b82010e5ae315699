package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/srcedit/pkg/config"
)

// envVarPrefix is prepended to every suffix in envVars.
const envVarPrefix = "SRCEDIT_"

type envVar struct {
	suffix      string
	description string
	set         func(cfg *config.Config, raw string) error
}

// envVars lists the supported overrides, sorted by suffix.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"BACKUPS_ENABLED", "Back up files before editing: true or false",
		boolSetter(func(c *config.Config) *bool { return &c.Backups.Enabled })},
	{"BACKUPS_MODE", "Backup mode: sidecar or none",
		stringSetter(func(c *config.Config) *string { return &c.Backups.Mode })},
	{"DRY_RUN", "Dry-run mode: true or false",
		boolSetter(func(c *config.Config) *bool { return &c.DryRun })},
	{"FORMAT", "Output format: text, json, or diff",
		func(c *config.Config, raw string) error {
			c.Format = config.OutputFormat(raw)
			return nil
		}},
	{"JOBS", "Number of parallel file workers (0 = auto)",
		intSetter(func(c *config.Config) *int { return &c.Jobs })},
	{"LOG_LEVEL", "Log level: debug, info, warn, or error",
		stringSetter(func(c *config.Config) *string { return &c.LogLevel })},
	{"NO_BACKUPS", "Disable backups: true or false",
		boolSetter(func(c *config.Config) *bool { return &c.NoBackups })},
	{"REFUSE_SYNTAX_ERRORS", "Refuse files that do not parse cleanly: true or false",
		boolSetter(func(c *config.Config) *bool { return &c.RefuseSyntaxErrors })},
	{"REQUIRE_JAVA", "Refuse files that are not Java: true or false",
		boolSetter(func(c *config.Config) *bool { return &c.RequireJava })},
	{"STRICT_RACE_DETECTION", "Compare content hashes before writing: true or false",
		boolSetter(func(c *config.Config) *bool { return &c.StrictRaceDetection })},
}

func stringSetter(field func(*config.Config) *string) func(*config.Config, string) error {
	return func(c *config.Config, raw string) error {
		*field(c) = raw
		return nil
	}
}

func boolSetter(field func(*config.Config) *bool) func(*config.Config, string) error {
	return func(c *config.Config, raw string) error {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%q is not a boolean (true/false/1/0)", raw)
		}
		*field(c) = v
		return nil
	}
}

func intSetter(field func(*config.Config) *int) func(*config.Config, string) error {
	return func(c *config.Config, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%q is not an integer", raw)
		}
		*field(c) = v
		return nil
	}
}

// LoadFromEnv overlays every non-empty SRCEDIT_* variable onto cfg.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for _, v := range envVars {
		name := envVarPrefix + v.suffix
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		if err := v.set(cfg, raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns the supported variables sorted by name.
func ListEnvVars() []EnvVar {
	out := make([]EnvVar, len(envVars))
	for i, v := range envVars {
		out[i] = EnvVar{Name: envVarPrefix + v.suffix, Description: v.description}
	}
	return out
}
