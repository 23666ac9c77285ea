package keysync_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/keysync"
	"github.com/dmitrymomot/localekit/pkg/translate"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSyncer_Run(t *testing.T) {
	t.Parallel()

	t.Run("rewrites locale files with missing keys filled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"en.json":      `{"en": {"title": "Title", "am": "AM", "menu": {"open": "Open"}}}`,
			"de.json":      `{"de": {"menu": {}, "title": "Titel"}}`,
			"package.json": `{"name": "locales"}`,
			"notes.txt":    `not json`,
		})

		s := keysync.NewSyncer(keysync.NewMerger(&upper{}))
		summary, err := s.Run(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, summary.Files, 1)
		require.Empty(t, summary.Skipped)

		res := summary.Files[0]
		require.Equal(t, filepath.Join(dir, "de.json"), res.Path)
		require.True(t, res.Written)
		require.Equal(t, "de", res.Report.Language)
		require.Equal(t, []string{"menu.open"}, res.Report.Translated)
		require.Equal(t, []string{"am"}, res.Report.Copied)

		want := `{
  "de": {
    "am": "AM",
    "title": "Titel",
    "menu": {
      "open": "OPEN"
    }
  }
}
`
		require.Equal(t, want, readFile(t, filepath.Join(dir, "de.json")))
		require.Equal(t, `{"name": "locales"}`, readFile(t, filepath.Join(dir, "package.json")))
	})

	t.Run("output is stable across runs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"en.json": `{"en": {"b": {"x": "X"}, "a": "A"}}`,
			"fr.json": `{"fr": {}}`,
		})

		s := keysync.NewSyncer(keysync.NewMerger(translate.Identity()))
		_, err := s.Run(context.Background(), dir)
		require.NoError(t, err)
		first := readFile(t, filepath.Join(dir, "fr.json"))

		_, err = s.Run(context.Background(), dir)
		require.NoError(t, err)
		require.Equal(t, first, readFile(t, filepath.Join(dir, "fr.json")))
		require.Equal(t, "{\n  \"fr\": {\n    \"a\": \"A\",\n    \"b\": {\n      \"x\": \"X\"\n    }\n  }\n}\n", first)
	})

	t.Run("invalid files are skipped and the rest continue", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"en.json":  `{"en": {"a": "A"}}`,
			"bad.json": `{"bad": `,
			"arr.json": `{"arr": ["x"]}`,
			"es.json":  `{"es": {}}`,
		})

		summary, err := keysync.NewSyncer(keysync.NewMerger(translate.Identity())).Run(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, summary.Files, 1)
		require.Equal(t, filepath.Join(dir, "es.json"), summary.Files[0].Path)

		require.Len(t, summary.Skipped, 2)
		require.Equal(t, filepath.Join(dir, "arr.json"), summary.Skipped[0].Path)
		require.ErrorIs(t, summary.Skipped[0].Err, keysync.ErrNotObject)
		require.Equal(t, filepath.Join(dir, "bad.json"), summary.Skipped[1].Path)
		require.ErrorIs(t, summary.Skipped[1].Err, keysync.ErrInvalidDocument)
		require.Equal(t, `{"bad": `, readFile(t, filepath.Join(dir, "bad.json")))
	})

	t.Run("dry run leaves files untouched", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"en.json": `{"en": {"a": "A"}}`,
			"it.json": `{"it": {}}`,
		})

		summary, err := keysync.NewSyncer(keysync.NewMerger(translate.Identity()), keysync.WithDryRun(true)).Run(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, summary.Files, 1)
		require.False(t, summary.Files[0].Written)
		require.Equal(t, []string{"a"}, summary.Files[0].Report.Translated)
		require.Equal(t, `{"it": {}}`, readFile(t, filepath.Join(dir, "it.json")))
	})

	t.Run("missing baseline is fatal", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"de.json": `{"de": {}}`})

		_, err := keysync.NewSyncer(keysync.NewMerger(translate.Identity())).Run(context.Background(), dir)
		require.ErrorIs(t, err, keysync.ErrBaseline)
	})

	t.Run("custom baseline file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"base.json": `{"en": {"a": "A"}}`,
			"en.json":   `{"en": {}}`,
		})

		s := keysync.NewSyncer(keysync.NewMerger(translate.Identity()), keysync.WithBaselineFile("base.json"))
		summary, err := s.Run(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, summary.Files, 1)
		require.Equal(t, filepath.Join(dir, "en.json"), summary.Files[0].Path)
	})

	t.Run("mismatch error policy stops the run", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"en.json": `{"en": {"a": {"b": "B"}}}`,
			"pl.json": `{"pl": {"a": "flat"}}`,
		})

		m := keysync.NewMerger(translate.Identity(), keysync.WithMismatchPolicy(keysync.MismatchError))
		_, err := keysync.NewSyncer(m).Run(context.Background(), dir)
		require.ErrorIs(t, err, keysync.ErrKindMismatch)
		require.Equal(t, `{"pl": {"a": "flat"}}`, readFile(t, filepath.Join(dir, "pl.json")))
	})
}
