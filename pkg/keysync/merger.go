package keysync

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/localekit/pkg/jsonvalue"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/translate"
)

// DefaultConcurrency bounds in-flight translation calls per document.
const DefaultConcurrency = 8

// Merger fills missing keys of a target document from a baseline document.
// It is safe for concurrent use.
type Merger struct {
	translator  translate.Translator
	logger      *slog.Logger
	reserved    map[string]struct{}
	concurrency int
	policy      MismatchPolicy
}

// MergerOption configures a Merger.
type MergerOption func(*Merger)

// WithConcurrency sets the maximum number of in-flight translation calls.
// Values below 1 are ignored.
func WithConcurrency(n int) MergerOption {
	return func(m *Merger) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// WithMismatchPolicy sets how kind mismatches between baseline and target are handled.
func WithMismatchPolicy(p MismatchPolicy) MergerOption {
	return func(m *Merger) { m.policy = p }
}

// WithReservedKeys replaces the default ReservedKeys.
func WithReservedKeys(keys ...string) MergerOption {
	return func(m *Merger) { m.reserved = reservedSet(keys) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) MergerOption {
	return func(m *Merger) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMerger creates a Merger that translates through t.
func NewMerger(t translate.Translator, opts ...MergerOption) *Merger {
	m := &Merger{
		translator:  t,
		logger:      logger.NewNope(),
		reserved:    reservedSet(ReservedKeys),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// task is one translation call. Each task is written by exactly one worker
// and read only after the group has been joined.
type task struct {
	path string
	text string
	out  string
	err  error
}

// step is one deferred mutation. Exactly one of value and task is set.
type step struct {
	set    func(jsonvalue.Value)
	value  jsonvalue.Value
	task   *task
	path   string
	copied bool
}

type plan struct {
	steps      []step
	tasks      []*task
	mismatches []string
}

// Merge adds every key of baseline that target lacks, recursing into
// objects present on both sides. target is modified in place once all
// translation calls have settled. With MismatchError a kind mismatch
// returns ErrKindMismatch and leaves target unchanged.
//
// Translation failures and context cancellation never fail the merge:
// the affected keys receive the baseline value and are listed in
// Report.Fallbacks.
func (m *Merger) Merge(ctx context.Context, baseline, target *jsonvalue.Object, lang string) (*Report, error) {
	p := &plan{}
	if err := m.walk(p, baseline, target, ""); err != nil {
		return nil, err
	}

	m.run(ctx, p.tasks, lang)

	report := &Report{Language: lang, Mismatches: p.mismatches}
	for _, s := range p.steps {
		v := s.value
		switch {
		case s.task == nil:
			if s.copied {
				report.Copied = append(report.Copied, s.path)
			}
		case s.task.err != nil:
			v = jsonvalue.String(s.task.text)
			report.Fallbacks = append(report.Fallbacks, Failure{Path: s.path, Err: s.task.err})
			m.logger.WarnContext(ctx, "translation failed, using baseline value",
				slog.String("key", s.path),
				slog.String("language", lang),
				slog.String("error", s.task.err.Error()),
			)
		default:
			v = jsonvalue.String(s.task.out)
			report.Translated = append(report.Translated, s.path)
			m.logger.DebugContext(ctx, "translated",
				slog.String("key", s.path),
				slog.String("language", lang),
			)
		}
		s.set(v)
	}

	return report, nil
}

func (m *Merger) walk(p *plan, src, dst *jsonvalue.Object, prefix string) error {
	for key, sv := range src.All() {
		path := joinPath(prefix, key)

		dv, ok := dst.Get(key)
		if !ok {
			m.planMissing(p, dst, key, sv, path)
			continue
		}

		srcObj, srcIsObj := sv.(*jsonvalue.Object)
		dstObj, dstIsObj := dv.(*jsonvalue.Object)
		switch {
		case srcIsObj && dstIsObj:
			if err := m.walk(p, srcObj, dstObj, path); err != nil {
				return err
			}
		case srcIsObj != dstIsObj:
			if m.policy == MismatchError {
				return fmt.Errorf("%w: %s (baseline %s, target %s)", ErrKindMismatch, path, sv.Kind(), dv.Kind())
			}
			p.mismatches = append(p.mismatches, path)
			m.logger.Debug("skipping key with mismatched kind",
				slog.String("key", path),
				slog.String("baseline", sv.Kind().String()),
				slog.String("target", dv.Kind().String()),
			)
		}
	}
	return nil
}

// planMissing schedules the value for a key absent from dst.
func (m *Merger) planMissing(p *plan, dst *jsonvalue.Object, key string, sv jsonvalue.Value, path string) {
	set := func(v jsonvalue.Value) { dst.Set(key, v) }

	if _, ok := m.reserved[key]; ok {
		p.steps = append(p.steps, step{set: set, value: jsonvalue.Clone(sv), path: path, copied: true})
		return
	}

	switch v := sv.(type) {
	case jsonvalue.String:
		if v == "" {
			p.steps = append(p.steps, step{set: set, value: v, path: path, copied: true})
			return
		}
		t := &task{path: path, text: string(v)}
		p.tasks = append(p.tasks, t)
		p.steps = append(p.steps, step{set: set, task: t, path: path})

	case jsonvalue.Array:
		arr := make(jsonvalue.Array, len(v))
		p.steps = append(p.steps, step{set: set, value: arr, path: path})
		for i, elem := range v {
			s, ok := elem.(jsonvalue.String)
			if !ok || s == "" {
				arr[i] = jsonvalue.Clone(elem)
				continue
			}
			t := &task{path: fmt.Sprintf("%s[%d]", path, i), text: string(s)}
			p.tasks = append(p.tasks, t)
			p.steps = append(p.steps, step{set: func(v jsonvalue.Value) { arr[i] = v }, task: t, path: t.path})
		}

	case *jsonvalue.Object:
		obj := jsonvalue.NewObject()
		p.steps = append(p.steps, step{set: set, value: obj, path: path})
		for k, child := range v.All() {
			m.planMissing(p, obj, k, child, joinPath(path, k))
		}

	default:
		p.steps = append(p.steps, step{set: set, value: jsonvalue.Clone(sv), path: path, copied: true})
	}
}

// run executes tasks with bounded concurrency. Tasks not started before
// ctx is done record ctx.Err().
func (m *Merger) run(ctx context.Context, tasks []*task, lang string) {
	if len(tasks) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(m.concurrency)
	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			t.err = err
			continue
		}
		g.Go(func() error {
			t.out, t.err = m.translator.Translate(ctx, t.text, lang)
			return nil
		})
	}
	_ = g.Wait()
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
