package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/srcedit/pkg/config"
	"github.com/yaklabco/srcedit/pkg/fsutil"
	"github.com/yaklabco/srcedit/pkg/session"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	assert.Equal(t, session.DefaultOptions(), session.OptionsFromConfig(nil))
	assert.False(t, session.DefaultOptions().Reparse, "edited text is written without reparsing by default")

	cfg := config.NewConfig()
	cfg.DryRun = true
	cfg.Backups.Enabled = true
	cfg.RefuseSyntaxErrors = true
	cfg.StrictRaceDetection = false
	cfg.Reparse = true

	opts := session.OptionsFromConfig(cfg)
	assert.True(t, opts.DryRun)
	assert.True(t, opts.RefuseSyntaxErrors)
	assert.True(t, opts.Reparse)
	assert.False(t, opts.StrictRaceDetection)
	assert.Equal(t, fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}, opts.Backup)

	cfg.NoBackups = true
	assert.False(t, session.OptionsFromConfig(cfg).Backup.Enabled)
}

func TestFileResultSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result session.FileResult
		want   string
	}{
		{"skipped", session.FileResult{Skipped: true, SkipReason: "busy"}, "skipped: busy"},
		{"written with backup", session.FileResult{Written: true, BackupCreated: true}, "edited (backup created)"},
		{"pending", session.FileResult{Result: &session.Result{Changed: true}}, "changes pending"},
		{"unchanged", session.FileResult{Result: &session.Result{}}, "unchanged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.result.Summary())
		})
	}
}
