package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcedit/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.False(t, cfg.Backups.Enabled)
	assert.Equal(t, "sidecar", cfg.Backups.Mode)
	assert.True(t, cfg.StrictRaceDetection)
	assert.True(t, cfg.RequireJava)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Jobs = 3
	cfg.Components = []config.ComponentConfig{
		{Name: "checkbox", Class: "com.vaadin.flow.component.checkbox.Checkbox", Property: "setLabel"},
	}
	cfg.DryRun = true

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	got, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Jobs)
	assert.Equal(t, cfg.Components, got.Components)
	assert.False(t, got.DryRun, "CLI-only fields are not persisted")
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Jobs)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("flavor: gfm\n"))
		assert.Error(t, err)
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())

	original := config.NewConfig()
	original.Components = []config.ComponentConfig{{Name: "a", Class: "x.A"}}
	original.Strict = true

	clone := original.Clone()
	require.NotNil(t, clone)
	assert.True(t, clone.Strict)

	clone.Components[0].Name = "b"
	assert.Equal(t, "a", original.Components[0].Name)
}

func TestComponentSimpleName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Checkbox", config.ComponentConfig{Class: "com.vaadin.flow.component.checkbox.Checkbox"}.SimpleName())
	assert.Equal(t, "Plain", config.ComponentConfig{Class: "Plain"}.SimpleName())
}

func TestOutputFormatIsValid(t *testing.T) {
	t.Parallel()

	for _, f := range []config.OutputFormat{config.FormatText, config.FormatJSON, config.FormatDiff} {
		assert.True(t, f.IsValid(), f)
	}
	assert.False(t, config.OutputFormat("sarif").IsValid())
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	minimal, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(minimal), "# srcedit configuration")

	full, err := config.GenerateTemplate(config.TemplateOptions{
		Full:       true,
		Components: []config.ComponentConfig{{Name: "button", Class: "com.vaadin.flow.component.button.Button", Property: "setText"}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(full), "strict_race_detection: true")
	assert.Contains(t, string(full), "(setText)")

	_, err = config.FromYAML(full)
	require.NoError(t, err, "full template must load")
}
