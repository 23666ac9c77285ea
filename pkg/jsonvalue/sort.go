package jsonvalue

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorted returns a deep copy of obj with normalized member order: members
// whose value is not an object come first, nested objects last, each group
// ordered by root-locale collation of the key (byte order breaks ties).
// Nested objects are normalized recursively; arrays keep element order.
//
// Sorted is idempotent.
func Sorted(obj *Object) *Object {
	// collate.Collator is not safe for concurrent use; one per call.
	c := collate.New(language.Und)
	return sortObject(c, obj)
}

func sortObject(c *collate.Collator, obj *Object) *Object {
	var scalars, nested []string
	for k, v := range obj.All() {
		if v.Kind() == KindObject {
			nested = append(nested, k)
		} else {
			scalars = append(scalars, k)
		}
	}

	cmp := func(a, b string) int {
		if r := c.CompareString(a, b); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	}
	slices.SortFunc(scalars, cmp)
	slices.SortFunc(nested, cmp)

	out := NewObject()
	for _, k := range scalars {
		v, _ := obj.Get(k)
		out.Set(k, Clone(v))
	}
	for _, k := range nested {
		v, _ := obj.Get(k)
		out.Set(k, sortObject(c, v.(*Object)))
	}
	return out
}
