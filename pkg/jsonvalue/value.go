package jsonvalue

import (
	"encoding/json"
	"iter"
	"strconv"
)

// Kind identifies the concrete type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a decoded JSON value. The set of implementations is closed.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	// Null is the JSON null literal.
	Null struct{}
	// Bool is a JSON boolean.
	Bool bool
	// Number is a JSON number kept as its literal text.
	Number json.Number
	// String is a JSON string.
	String string
	// Array is a JSON array; elements may be of different kinds.
	Array []Value
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (Array) sealed()  {}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Object is a JSON object that remembers key insertion order.
// The zero value is not usable; create objects with NewObject.
type Object struct {
	fields map[string]Value
	keys   []string
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) sealed()    {}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the member names in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the member value for key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Has reports whether key is a member.
func (o *Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Set adds key at the end, or replaces its value in place when it exists.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
}

// All iterates over members in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range o.keys {
			if !yield(k, o.fields[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch t := v.(type) {
	case Array:
		out := make(Array, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	case *Object:
		out := NewObject()
		for k, e := range t.All() {
			out.Set(k, Clone(e))
		}
		return out
	default:
		return v
	}
}

// Equal reports whether a and b are structurally equal.
// Object member order is ignored; numbers compare by literal text.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y := b.(*Object)
		if x.Len() != y.Len() {
			return false
		}
		for k, xv := range x.All() {
			yv, ok := y.Get(k)
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// IsEmptyMessage reports whether v counts as an untranslated message:
// null or the empty string.
func IsEmptyMessage(v Value) bool {
	switch t := v.(type) {
	case Null:
		return true
	case String:
		return t == ""
	default:
		return false
	}
}
