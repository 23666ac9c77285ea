package locale_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("complete set has no issues", func(t *testing.T) {
		t.Parallel()

		set, err := locale.Load(fstest.MapFS{
			"en.json": file(`{"en": {"a": "A", "b": 0, "c": false, "d": []}}`),
			"de.json": file(`{"de": {"a": "Ä", "b": 1, "c": true, "d": ["x"]}}`),
		})
		require.NoError(t, err)

		require.Empty(t, locale.Check(set))
		require.NoError(t, locale.Validate(set))
	})

	t.Run("reports every missing and empty message", func(t *testing.T) {
		t.Parallel()

		set, err := locale.Load(fstest.MapFS{
			"en.json":    file(`{"en": {"a": "A", "b": "B"}}`),
			"de.json":    file(`{"de": {"a": "", "extra": "E"}}`),
			"pt-br.json": file(`{"pt-br": {"a": null, "b": "B", "extra": "E"}}`),
		})
		require.NoError(t, err)

		issues := locale.Check(set)
		require.Equal(t, []locale.Issue{
			{Language: "de", Key: "a", Kind: locale.IssueEmpty},
			{Language: "de", Key: "b", Kind: locale.IssueMissing},
			{Language: "en", Key: "extra", Kind: locale.IssueMissing},
			{Language: "pt_br", Key: "a", Kind: locale.IssueEmpty},
		}, issues)

		require.Equal(t, "Language <de> has an empty translation for key a", issues[0].String())
		require.Equal(t, "Language <de> is missing translation for key b", issues[1].String())
	})

	t.Run("validate wraps issues", func(t *testing.T) {
		t.Parallel()

		set, err := locale.Load(fstest.MapFS{
			"en.json": file(`{"en": {"a": "A"}}`),
			"de.json": file(`{"de": {}}`),
		})
		require.NoError(t, err)

		err = locale.Validate(set)
		require.ErrorIs(t, err, locale.ErrIncomplete)

		var ce *locale.CompletenessError
		require.ErrorAs(t, err, &ce)
		require.Len(t, ce.Issues, 1)
	})

	t.Run("all keys is the sorted union", func(t *testing.T) {
		t.Parallel()

		set, err := locale.Load(fstest.MapFS{
			"en.json": file(`{"en": {"z": "1", "a": "2"}}`),
			"de.json": file(`{"de": {"m": "3", "a": "4"}}`),
		})
		require.NoError(t, err)

		require.Equal(t, []string{"a", "m", "z"}, locale.AllKeys(set))
	})
}
