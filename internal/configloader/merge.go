package configloader

import (
	"slices"

	"github.com/yaklabco/srcedit/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Booleans: only true in override is visible; false cannot unset
//   - Components: entries are appended, replacing base entries of the same name
//
// Config files are layered by decoding onto the previous layer instead, so
// they can turn booleans off; merge carries CLI flags, which are set only
// when given.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	if override.DryRun {
		result.DryRun = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}
	if override.Strict {
		result.Strict = true
	}
	if override.RefuseSyntaxErrors {
		result.RefuseSyntaxErrors = true
	}

	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	result.Components = mergeComponents(result.Components, override.Components)

	return result
}

// mergeComponents returns base with override's entries applied by name.
func mergeComponents(base, override []config.ComponentConfig) []config.ComponentConfig {
	result := slices.Clone(base)
	for _, c := range override {
		i := slices.IndexFunc(result, func(b config.ComponentConfig) bool { return b.Name == c.Name })
		if i >= 0 {
			result[i] = c
			continue
		}
		result = append(result, c)
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
