package keysync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/jsonvalue"
	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/logger"
)

// DefaultBaselineFile is the file whose document is the merge source.
const DefaultBaselineFile = "en.json"

// Syncer merges every locale file of a directory against the baseline file.
type Syncer struct {
	merger   *Merger
	logger   *slog.Logger
	baseline string
	fileMode fs.FileMode
	dryRun   bool
}

// SyncerOption configures a Syncer.
type SyncerOption func(*Syncer)

// WithBaselineFile sets the baseline file name relative to the directory.
func WithBaselineFile(name string) SyncerOption {
	return func(s *Syncer) {
		if name != "" {
			s.baseline = name
		}
	}
}

// WithDryRun merges in memory and reports without writing files.
func WithDryRun(dryRun bool) SyncerOption {
	return func(s *Syncer) { s.dryRun = dryRun }
}

// WithSyncLogger sets the logger.
func WithSyncLogger(l *slog.Logger) SyncerOption {
	return func(s *Syncer) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSyncer creates a Syncer that merges with m.
func NewSyncer(m *Merger, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		merger:   m,
		logger:   logger.NewNope(),
		baseline: DefaultBaselineFile,
		fileMode: 0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run synchronizes every *.json file in dir except the baseline and
// reserved files, in file name order. A missing or invalid baseline is
// fatal; problems with individual files are logged and reported in
// Summary.Skipped. A kind mismatch under MismatchError and context
// cancellation stop the run.
func (s *Syncer) Run(ctx context.Context, dir string) (*Summary, error) {
	baselinePath := filepath.Join(dir, s.baseline)
	_, source, err := readDocument(baselinePath)
	if err != nil {
		return nil, errors.Join(ErrBaseline, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Join(ErrReadDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || locale.IsReservedFile(name) || name == filepath.Base(s.baseline) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	summary := &Summary{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		path := filepath.Join(dir, name)
		fctx := logger.WithValue(ctx, "file", path)

		res, err := s.syncFile(fctx, path, source)
		switch {
		case errors.Is(err, ErrKindMismatch), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return summary, err
		case err != nil:
			s.logger.ErrorContext(fctx, "skipping file", slog.String("error", err.Error()))
			summary.Skipped = append(summary.Skipped, SkippedFile{Path: path, Err: err})
		default:
			summary.Files = append(summary.Files, *res)
		}
	}

	return summary, nil
}

func (s *Syncer) syncFile(ctx context.Context, path string, source *jsonvalue.Object) (*FileResult, error) {
	root, target, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	lang := root.Keys()[0]
	ctx = logger.WithValue(ctx, "language", lang)

	report, err := s.merger.Merge(ctx, source, target, lang)
	if err != nil {
		return nil, err
	}
	// Do not persist fallbacks caused by an interrupted run.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &FileResult{Path: path, Report: report}
	s.logger.InfoContext(ctx, "merged",
		slog.Int("copied", len(report.Copied)),
		slog.Int("translated", len(report.Translated)),
		slog.Int("fallbacks", len(report.Fallbacks)),
		slog.Int("mismatches", len(report.Mismatches)),
	)

	if s.dryRun {
		return res, nil
	}

	data := append(jsonvalue.MarshalIndent(jsonvalue.Sorted(root), "  "), '\n')
	if err := writeFileAtomic(path, data, s.fileMode); err != nil {
		return nil, err
	}
	res.Written = true
	s.logger.InfoContext(ctx, "data written")

	return res, nil
}

// readDocument parses a locale file and returns its root object together
// with the object stored under the first root key.
func readDocument(path string) (root, doc *jsonvalue.Object, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	v, err := jsonvalue.Decode(data)
	if err != nil {
		return nil, nil, errors.Join(ErrInvalidDocument, err)
	}

	root, ok := v.(*jsonvalue.Object)
	if !ok || root.Len() == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoLanguage, filepath.Base(path))
	}

	lang := root.Keys()[0]
	inner, _ := root.Get(lang)
	doc, ok = inner.(*jsonvalue.Object)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s (%q is %s)", ErrNotObject, filepath.Base(path), lang, inner.Kind())
	}

	return root, doc, nil
}

// writeFileAtomic writes data to a temporary file in the same directory and
// renames it over path.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Join(ErrWriteFile, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Join(ErrWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrWriteFile, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrWriteFile, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrWriteFile, err)
	}
	return nil
}
