// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldPlan       = "plan"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Configuration fields.
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"
	FieldFormat = "format"

	// Edit fields.
	FieldOp        = "op"
	FieldIndex     = "index"
	FieldKind      = "kind"
	FieldLine      = "line"
	FieldEdits     = "edits"
	FieldApplied   = "applied"
	FieldChanged   = "changed"
	FieldTies      = "ties"
	FieldComponent = "component"
	FieldReason    = "reason"
	FieldDuration  = "duration"

	// Statistics fields.
	FieldOperations    = "operations"
	FieldFilesModified = "files_modified"
	FieldNoops         = "noops"
	FieldFailed        = "failed"
	FieldSessions      = "sessions"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
