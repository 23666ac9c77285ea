package modulegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// File is a generated file ready to be written.
type File struct {
	Path    string
	Content string
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutputDirs sets the ESM and CommonJS output directories.
// Default: "js" and "cjs".
func WithOutputDirs(esm, cjs string) Option {
	return func(g *Generator) {
		if esm != "" {
			g.esmDir = esm
		}
		if cjs != "" {
			g.cjsDir = cjs
		}
	}
}

// WithLogger sets the logger used to report written files.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithFileMode sets the permission bits of written files. Default: 0o644.
func WithFileMode(mode os.FileMode) Option {
	return func(g *Generator) {
		g.fileMode = mode
	}
}

// Generator renders and writes module files for a locale set.
type Generator struct {
	logger   *slog.Logger
	esmDir   string
	cjsDir   string
	fileMode os.FileMode
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		esmDir:   "js",
		cjsDir:   "cjs",
		fileMode: 0o644,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Plan renders every output file without touching the file system.
// The set must contain its baseline language.
func (g *Generator) Plan(set *locale.Set) ([]File, error) {
	if set.Len() == 0 {
		return nil, ErrEmptySet
	}
	if filepath.Clean(g.esmDir) == filepath.Clean(g.cjsDir) {
		return nil, ErrSameDirs
	}

	baseline, err := set.Baseline()
	if err != nil {
		return nil, err
	}

	codes := set.Codes()
	localeType := RenderLocaleType(baseline)

	var files []File
	for _, flavor := range []Flavor{ESM, CommonJS} {
		dir := g.dir(flavor)

		files = append(files, File{Path: filepath.Join(dir, "locale.d.ts"), Content: localeType})
		for _, code := range codes {
			doc, _ := set.Get(code)
			files = append(files,
				File{Path: filepath.Join(dir, code+".js"), Content: RenderMessages(flavor, code, doc)},
				File{Path: filepath.Join(dir, code+".d.ts"), Content: RenderDeclaration(code)},
			)
		}
		files = append(files,
			File{Path: filepath.Join(dir, "all.js"), Content: RenderAll(flavor, codes)},
			File{Path: filepath.Join(dir, "all.d.ts"), Content: RenderAllDeclaration(codes)},
		)
	}

	return files, nil
}

// Generate clears both output directories and writes every planned file.
// Nothing is removed when planning fails.
func (g *Generator) Generate(ctx context.Context, set *locale.Set) ([]File, error) {
	files, err := g.Plan(set)
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{g.esmDir, g.cjsDir} {
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("modulegen: clearing %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("modulegen: creating %s: %w", dir, err)
		}
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.logger.InfoContext(ctx, "writing file", slog.String("path", f.Path))
		if err := os.WriteFile(f.Path, []byte(f.Content), g.fileMode); err != nil {
			return nil, errors.Join(ErrWriteFile, err)
		}
	}

	return files, nil
}

func (g *Generator) dir(f Flavor) string {
	if f == CommonJS {
		return g.cjsDir
	}
	return g.esmDir
}
