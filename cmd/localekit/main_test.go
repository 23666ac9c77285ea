package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeLocales(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestGenerateCommand(t *testing.T) {
	t.Parallel()

	t.Run("writes modules for both flavors", func(t *testing.T) {
		t.Parallel()

		dir := writeLocales(t, map[string]string{
			"en.json":    `{"en": {"hello": "Hello"}}`,
			"pt-br.json": `{"pt-br": {"hello": "Olá"}}`,
		})

		_, _, err := execute(t, "generate", "--dir", dir, "--log-level", "error")
		require.NoError(t, err)

		for _, name := range []string{"locale.d.ts", "en.js", "en.d.ts", "pt_br.js", "all.js", "all.d.ts"} {
			require.FileExists(t, filepath.Join(dir, "js", name))
			require.FileExists(t, filepath.Join(dir, "cjs", name))
		}

		all, err := os.ReadFile(filepath.Join(dir, "js", "all.js"))
		require.NoError(t, err)
		require.Contains(t, string(all), `"pt-br": pt_br`)
	})

	t.Run("reports every incomplete translation", func(t *testing.T) {
		t.Parallel()

		dir := writeLocales(t, map[string]string{
			"en.json": `{"en": {"hello": "Hello", "bye": "Bye"}}`,
			"de.json": `{"de": {"hello": ""}}`,
		})

		_, stderr, err := execute(t, "generate", "--dir", dir, "--log-level", "error")
		require.ErrorIs(t, err, errReported)
		require.Contains(t, stderr, "Language <de> is missing translation for key bye")
		require.Contains(t, stderr, "Language <de> has an empty translation for key hello")
		require.NoDirExists(t, filepath.Join(dir, "js"))
	})

	t.Run("dry run lists files", func(t *testing.T) {
		t.Parallel()

		dir := writeLocales(t, map[string]string{"en.json": `{"en": {"hello": "Hello"}}`})

		stdout, _, err := execute(t, "generate", "--dir", dir, "--dry-run", "--esm-dir", "esm", "--log-level", "error")
		require.NoError(t, err)
		require.Contains(t, stdout, filepath.Join(dir, "esm", "en.js"))
		require.NoDirExists(t, filepath.Join(dir, "esm"))
	})

	t.Run("schema error", func(t *testing.T) {
		t.Parallel()

		dir := writeLocales(t, map[string]string{"en.json": `{"english": {}}`})

		_, _, err := execute(t, "generate", "--dir", dir, "--log-level", "error")
		require.Error(t, err)
		require.NotErrorIs(t, err, errReported)
	})
}

func TestSyncCommand(t *testing.T) {
	t.Parallel()

	t.Run("noop backend copies baseline values", func(t *testing.T) {
		t.Parallel()

		dir := writeLocales(t, map[string]string{
			"en.json": `{"en": {"b": {"c": "Y"}, "a": "X"}}`,
			"de.json": `{"de": {}}`,
		})

		stdout, _, err := execute(t, "sync", "--dir", dir, "--backend", "noop", "--log-level", "error")
		require.NoError(t, err)
		require.Contains(t, stdout, "2 translated")

		data, err := os.ReadFile(filepath.Join(dir, "de.json"))
		require.NoError(t, err)
		require.Equal(t, "{\n  \"de\": {\n    \"a\": \"X\",\n    \"b\": {\n      \"c\": \"Y\"\n    }\n  }\n}\n", string(data))
	})

	t.Run("unknown mismatch policy", func(t *testing.T) {
		t.Parallel()

		dir := writeLocales(t, map[string]string{"en.json": `{"en": {}}`})

		_, _, err := execute(t, "sync", "--dir", dir, "--backend", "noop", "--mismatch", "ignore")
		require.Error(t, err)
	})
}
