package locale

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/dmitrymomot/localekit/pkg/jsonvalue"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	logger   *slog.Logger
	baseline string
}

// WithBaseline sets the baseline language code. Default: "en".
func WithBaseline(code string) Option {
	return func(o *loadOptions) {
		if code != "" {
			o.baseline = code
		}
	}
}

// WithLogger sets the logger used to report loaded files.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load reads every top-level *.json file of fsys, except ReservedFiles,
// as a locale file. Any file with an unexpected shape aborts the load with
// a *SchemaError.
func Load(fsys fs.FS, opts ...Option) (*Set, error) {
	o := &loadOptions{
		baseline: DefaultBaseline,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("locale: reading directory: %w", err)
	}

	set := NewSet(o.baseline)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".json" || IsReservedFile(name) {
			continue
		}

		doc, err := loadFile(fsys, name)
		if err != nil {
			return nil, err
		}

		code := LanguageCode(name)
		if prev, dup := set.files[code]; dup {
			return nil, &SchemaError{
				File:   name,
				Reason: fmt.Sprintf("maps to language code %q already defined by %s", code, prev),
			}
		}

		set.Add(code, name, doc)
		o.logger.Debug("loaded locale", slog.String("file", name), slog.String("language", code), slog.Int("keys", doc.Len()))
	}

	return set, nil
}

// loadFile reads a single locale file and returns its document.
func loadFile(fsys fs.FS, name string) (*jsonvalue.Object, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &SchemaError{File: name, Reason: "cannot be read", Err: err}
	}

	v, err := jsonvalue.Decode(data)
	if err != nil {
		return nil, &SchemaError{File: name, Reason: "is not valid JSON", Err: err}
	}

	return Unwrap(name, v)
}

// Unwrap checks that root is an object with exactly one member named after
// the file and returns that member's document.
func Unwrap(fileName string, root jsonvalue.Value) (*jsonvalue.Object, error) {
	base := BaseName(fileName)

	obj, ok := root.(*jsonvalue.Object)
	if !ok {
		return nil, &SchemaError{File: fileName, Reason: "must contain an object"}
	}

	keys := obj.Keys()
	if len(keys) != 1 || keys[0] != base {
		return nil, &SchemaError{
			File:   fileName,
			Reason: fmt.Sprintf("must contain an object with only one key %q", base),
		}
	}

	v, _ := obj.Get(base)
	doc, ok := v.(*jsonvalue.Object)
	if !ok {
		return nil, &SchemaError{
			File:   fileName,
			Reason: fmt.Sprintf("must map %q to an object of messages, got %s", base, v.Kind()),
		}
	}
	return doc, nil
}
