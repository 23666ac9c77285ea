package jsonvalue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/jsonvalue"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("preserves object key order", func(t *testing.T) {
		t.Parallel()

		v, err := jsonvalue.Decode([]byte(`{"zeta": 1, "alpha": 2, "mid": {"y": true, "x": null}}`))
		require.NoError(t, err)

		obj, ok := v.(*jsonvalue.Object)
		require.True(t, ok)
		require.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

		mid, ok := obj.Get("mid")
		require.True(t, ok)
		require.Equal(t, []string{"y", "x"}, mid.(*jsonvalue.Object).Keys())
	})

	t.Run("decodes every kind", func(t *testing.T) {
		t.Parallel()

		v, err := jsonvalue.Decode([]byte(`[null, true, 1.50, "s", [], {}]`))
		require.NoError(t, err)

		arr := v.(jsonvalue.Array)
		kinds := make([]jsonvalue.Kind, 0, len(arr))
		for _, e := range arr {
			kinds = append(kinds, e.Kind())
		}
		require.Equal(t, []jsonvalue.Kind{
			jsonvalue.KindNull,
			jsonvalue.KindBool,
			jsonvalue.KindNumber,
			jsonvalue.KindString,
			jsonvalue.KindArray,
			jsonvalue.KindObject,
		}, kinds)
		require.Equal(t, jsonvalue.Number("1.50"), arr[2])
	})

	t.Run("duplicate key keeps first position and last value", func(t *testing.T) {
		t.Parallel()

		v, err := jsonvalue.Decode([]byte(`{"a": 1, "b": 2, "a": 3}`))
		require.NoError(t, err)

		obj := v.(*jsonvalue.Object)
		require.Equal(t, []string{"a", "b"}, obj.Keys())
		a, _ := obj.Get("a")
		require.Equal(t, jsonvalue.Number("3"), a)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{``, `{`, `{"a" 1}`, `[1,]`, `{1: 2}`} {
			_, err := jsonvalue.Decode([]byte(in))
			require.ErrorIs(t, err, jsonvalue.ErrSyntax, "input %q", in)
		}
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()

		_, err := jsonvalue.Decode([]byte(`{} {}`))
		require.ErrorIs(t, err, jsonvalue.ErrTrailingData)
	})
}

func TestObject(t *testing.T) {
	t.Parallel()

	t.Run("set replaces in place", func(t *testing.T) {
		t.Parallel()

		obj := jsonvalue.NewObject()
		obj.Set("a", jsonvalue.String("1"))
		obj.Set("b", jsonvalue.String("2"))
		obj.Set("a", jsonvalue.String("3"))

		require.Equal(t, 2, obj.Len())
		require.Equal(t, []string{"a", "b"}, obj.Keys())
		require.True(t, obj.Has("b"))
		require.False(t, obj.Has("c"))
	})

	t.Run("clone is deep", func(t *testing.T) {
		t.Parallel()

		orig := jsonvalue.MustParse(`{"a": {"b": ["x"]}}`).(*jsonvalue.Object)
		cp := jsonvalue.Clone(orig).(*jsonvalue.Object)

		inner, _ := cp.Get("a")
		inner.(*jsonvalue.Object).Set("c", jsonvalue.Bool(true))

		origInner, _ := orig.Get("a")
		require.False(t, origInner.(*jsonvalue.Object).Has("c"))
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := jsonvalue.MustParse(`{"x": 1, "y": [true, null, {"z": "s"}]}`)
	b := jsonvalue.MustParse(`{"y": [true, null, {"z": "s"}], "x": 1}`)
	c := jsonvalue.MustParse(`{"x": 1, "y": [true, null, {"z": "t"}]}`)

	require.True(t, jsonvalue.Equal(a, b))
	require.False(t, jsonvalue.Equal(a, c))
	require.False(t, jsonvalue.Equal(jsonvalue.Null{}, jsonvalue.String("")))
}

func TestIsEmptyMessage(t *testing.T) {
	t.Parallel()

	require.True(t, jsonvalue.IsEmptyMessage(jsonvalue.Null{}))
	require.True(t, jsonvalue.IsEmptyMessage(jsonvalue.String("")))
	require.False(t, jsonvalue.IsEmptyMessage(jsonvalue.String(" ")))
	require.False(t, jsonvalue.IsEmptyMessage(jsonvalue.Number("0")))
	require.False(t, jsonvalue.IsEmptyMessage(jsonvalue.Bool(false)))
	require.False(t, jsonvalue.IsEmptyMessage(jsonvalue.Array{}))
}
