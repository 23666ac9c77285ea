// Package jsonvalue models JSON documents as a closed set of value types
// with ordered objects.
//
// Every decoded value is one of Null, Bool, Number, String, Array or *Object.
// Callers switch on Value.Kind (or a type switch) instead of probing untyped
// maps, so recursive algorithms over locale documents stay exhaustive.
//
// # Decoding and Encoding
//
// Objects keep their key insertion order, and numbers keep their literal text:
//
//	v, err := jsonvalue.Decode([]byte(`{"b": 1.50, "a": "x"}`))
//	out := jsonvalue.MarshalIndent(v, "  ")
//	// {
//	//   "b": 1.50,
//	//   "a": "x"
//	// }
//
// MarshalIndent produces the same layout as JavaScript's
// JSON.stringify(value, null, 2) for the shapes locale files use.
//
// # Normalized Ordering
//
// Sorted returns a copy of an object with scalar and array members first and
// nested objects last, each group ordered by locale-aware collation:
//
//	sorted := jsonvalue.Sorted(doc)
package jsonvalue
