package jsonvalue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/jsonvalue"
)

func TestMarshalIndent(t *testing.T) {
	t.Parallel()

	t.Run("matches two-space stringify layout", func(t *testing.T) {
		t.Parallel()

		v := jsonvalue.MustParse(`{"title":"Hi","sizes":["B","KB"],"empty":{},"none":[],"n":2.0,"nested":{"ok":true,"nil":null}}`)
		want := `{
  "title": "Hi",
  "sizes": [
    "B",
    "KB"
  ],
  "empty": {},
  "none": [],
  "n": 2.0,
  "nested": {
    "ok": true,
    "nil": null
  }
}`
		require.Equal(t, want, string(jsonvalue.MarshalIndent(v, "  ")))
	})

	t.Run("does not escape html characters", func(t *testing.T) {
		t.Parallel()

		v := jsonvalue.String(`<b>"Tom" & Jerry</b>`)
		require.Equal(t, `"<b>\"Tom\" & Jerry</b>"`, string(jsonvalue.Marshal(v)))
	})

	t.Run("compact form", func(t *testing.T) {
		t.Parallel()

		v := jsonvalue.MustParse(`{ "a" : [ 1, 2 ], "b" : { } }`)
		require.Equal(t, `{"a":[1,2],"b":{}}`, string(jsonvalue.Marshal(v)))
	})

	t.Run("decode of output is equal to input", func(t *testing.T) {
		t.Parallel()

		in := jsonvalue.MustParse(`{"a": "ü\n\t", "b": [1, [2, {"c": false}]]}`)
		out, err := jsonvalue.Decode(jsonvalue.MarshalIndent(in, "  "))
		require.NoError(t, err)
		require.True(t, jsonvalue.Equal(in, out))
	})
}
