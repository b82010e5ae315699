package session

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/yaklabco/srcedit/internal/logging"
	"github.com/yaklabco/srcedit/pkg/edit"
	"github.com/yaklabco/srcedit/pkg/fsutil"
	"github.com/yaklabco/srcedit/pkg/langdetect"
)

// FileResult is the outcome of one session on one file.
type FileResult struct {
	*Result

	// Path is the file path as given.
	Path string

	// Snapshot is the file state before processing.
	Snapshot *fsutil.Snapshot

	// Diff is the unified diff, set in dry-run mode when the text changed.
	Diff *edit.Diff

	// Skipped is true if the file was left alone for a reason other than an
	// error, for example a concurrent modification.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was replaced on disk.
	Written bool
}

// Summary returns a human-readable summary of the result.
func (fr *FileResult) Summary() string {
	switch {
	case fr.Skipped:
		return "skipped: " + fr.SkipReason
	case fr.Written && fr.BackupCreated:
		return "edited (backup created)"
	case fr.Written:
		return "edited"
	case fr.Result != nil && fr.Changed:
		return "changes pending"
	default:
		return "unchanged"
	}
}

// Outcome classifies the result for metrics and reporting.
func (fr *FileResult) Outcome() string {
	switch {
	case fr.Skipped:
		return OutcomeSkipped
	case fr.Result != nil && fr.Changed:
		return OutcomeChanged
	default:
		return OutcomeNoop
	}
}

// Session applies transformations to files on disk.
type Session struct {
	// Parser builds the tree each transformation runs against.
	Parser Parser

	// Locks serializes sessions on the same file.
	Locks *PathLocks

	// Metrics records outcomes; nil records nothing.
	Metrics *Metrics

	// Options controls dry-run, backups and safety checks.
	Options Options
}

// New creates a session with its own lock table and no-op metrics.
func New(parser Parser, opts Options) *Session {
	// The noop meter never fails to create instruments.
	metrics, _ := NewMetrics(noop.NewMeterProvider().Meter("srcedit"))

	return &Session{
		Parser:  parser,
		Locks:   NewPathLocks(),
		Metrics: metrics,
		Options: opts,
	}
}

// TransformFile runs one transformation against the file at path.
//
// The steps are:
//  1. Take the per-file lock.
//  2. Read and hash the file.
//  3. Refuse non-Java input when required.
//  4. Transform the text.
//  5. Generate a diff (dry-run) or, after checking the file was not changed
//     underneath us, back it up and replace it atomically.
//
// A transformation that changes nothing is not an error; it is logged at
// warn level and reported with Changed false.
func (s *Session) TransformFile(ctx context.Context, path string, build BuildFunc) (*FileResult, error) {
	start := time.Now()
	ctx = logging.With(ctx, logging.FieldPath, path)
	logger := logging.FromContext(ctx)

	result, err := s.transformFile(ctx, logger, path, build)

	outcome, applied := OutcomeError, 0
	if err == nil {
		outcome = result.Outcome()
		if result.Result != nil {
			applied = result.Applied
		}
	}
	s.Metrics.Record(ctx, outcome, applied, time.Since(start))

	return result, err
}

func (s *Session) transformFile(ctx context.Context, logger *log.Logger, path string, build BuildFunc) (*FileResult, error) {
	key, err := fsutil.CanonicalPath(path)
	if err != nil {
		return nil, categorizeError(err)
	}

	if s.Locks != nil {
		unlock := s.Locks.Lock(key)
		defer unlock()
	}

	result := &FileResult{Path: path}

	// Step 2: Read and hash the original file. I/O goes through the resolved
	// path so a symlink is edited through, never replaced.
	original, snap, err := fsutil.ReadSource(ctx, key)
	if err != nil {
		return nil, categorizeError(err)
	}
	result.Snapshot = snap

	// Step 3: Language guard.
	if s.Options.RequireJava && !langdetect.IsJava(path, []byte(original)) {
		return nil, fmt.Errorf("%w: %s", ErrNotJava, path)
	}

	// Step 4: Transform in memory.
	res, err := transform(ctx, s.Parser, original, build, s.Options.RefuseSyntaxErrors)
	if err != nil {
		return nil, err
	}
	result.Result = res

	for _, tie := range res.Ties {
		logger.Warn("edits share an anchor position", logging.FieldTies, tie.String())
	}

	if !res.Changed {
		logger.Warn("unable to edit file", logging.FieldEdits, len(res.Edits))
		return result, nil
	}
	logger.Debug("transformed", logging.FieldApplied, res.Applied)

	if s.Options.Reparse && !res.SyntaxErrors {
		tree, err := s.Parser.Parse(ctx, []byte(res.Text))
		if err != nil {
			return nil, fmt.Errorf("%w: reparse: %w", ErrParseFailure, err)
		}
		if tree.HasErrors {
			result.Skipped = true
			result.SkipReason = "edited text does not parse cleanly"
			return result, nil
		}
	}

	// Step 5: Dry run stops at the diff.
	if s.Options.DryRun {
		result.Diff = edit.GenerateDiff(path, original, res.Text)
		return result, nil
	}

	changed, err := fsutil.Changed(ctx, snap, s.Options.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if changed {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if s.Options.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, snap, original, s.Options.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, snap.Path, res.Text, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}
