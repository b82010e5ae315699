package configloader

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/srcedit/pkg/config"
)

func TestValidate_ReportsEveryError(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Format = "sarif"
	cfg.Jobs = -2
	cfg.Backups.Mode = "cloud"

	result := ValidateWithFile(cfg, "team.yml")
	if result.Valid() || len(result.Errors) != 3 {
		t.Fatalf("Errors = %v, want 3", result.Errors)
	}

	err := result.Err()
	for _, field := range []string{"format", "jobs", "backups.mode"} {
		if !strings.Contains(err.Error(), "team.yml: "+field+": ") {
			t.Errorf("joined error %q does not mention %s", err, field)
		}
	}

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "format" {
		t.Errorf("errors.As() = %v, want the format error first", verr)
	}
}

func TestValidate_Warnings(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Backups = config.BackupsConfig{Enabled: true, Mode: "none"}
	cfg.Components = []config.ComponentConfig{
		{Name: "Grid", Class: "com.vaadin.flow.component.grid.Grid"},
		{Name: "grid", Class: "com.example.Grid"},
	}

	result := Validate(cfg)
	if !result.Valid() {
		t.Fatalf("Errors = %v, want none", result.Errors)
	}
	if result.Err() != nil {
		t.Errorf("Err() = %v, want nil", result.Err())
	}
	if len(result.Warnings) != 2 {
		t.Errorf("Warnings = %v, want backups and duplicate component", result.Warnings)
	}
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	if r := Validate(nil); !r.Valid() || r.Err() != nil {
		t.Errorf("Validate(nil) = %+v", r)
	}
}
