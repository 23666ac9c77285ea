// Package tstype infers a structural TypeScript type from an example JSON
// value and renders it as declaration source.
package tstype

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/jsonvalue"
)

// Type is an inferred structural type. Implementations: Primitive, ArrayOf, ObjectOf.
type Type interface {
	isType()
}

// Primitive is one of the scalar types null, boolean, number and string.
type Primitive string

const (
	Null    Primitive = "null"
	Boolean Primitive = "boolean"
	Number  Primitive = "number"
	String  Primitive = "string"
)

// ArrayOf is an array whose elements are the union of Elems.
// Elems is deduplicated and sorted; empty means the array has no elements.
type ArrayOf struct {
	Elems []Type
}

// Field is a named member of an object type.
type Field struct {
	Type Type
	Name string
}

// ObjectOf is an object type with Fields sorted by name.
type ObjectOf struct {
	Fields []Field
}

func (Primitive) isType() {}
func (ArrayOf) isType()   {}
func (ObjectOf) isType()  {}

// Infer derives the structural type of v. The result depends only on the
// shape of v, never on object member order.
func Infer(v jsonvalue.Value) Type {
	switch t := v.(type) {
	case jsonvalue.Null:
		return Null
	case jsonvalue.Bool:
		return Boolean
	case jsonvalue.Number:
		return Number
	case jsonvalue.String:
		return String
	case jsonvalue.Array:
		seen := make(map[string]Type, len(t))
		for _, e := range t {
			et := Infer(e)
			seen[Render(et)] = et
		}
		keys := make([]string, 0, len(seen))
		for k := range seen {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		elems := make([]Type, 0, len(keys))
		for _, k := range keys {
			elems = append(elems, seen[k])
		}
		return ArrayOf{Elems: elems}
	case *jsonvalue.Object:
		fields := make([]Field, 0, t.Len())
		for name, fv := range t.All() {
			fields = append(fields, Field{Name: name, Type: Infer(fv)})
		}
		slices.SortFunc(fields, func(a, b Field) int {
			return strings.Compare(a.Name, b.Name)
		})
		return ObjectOf{Fields: fields}
	}
	panic("tstype: unknown jsonvalue kind")
}

// Render returns TypeScript source for t at the top indentation level.
func Render(t Type) string {
	return render(t, 0)
}

// RenderIndent returns TypeScript source for t nested indent levels deep.
// Multi-line object types indent continuation lines by two spaces per level.
func RenderIndent(t Type, indent int) string {
	return render(t, indent)
}

func render(t Type, indent int) string {
	switch t := t.(type) {
	case Primitive:
		return string(t)
	case ArrayOf:
		return renderArray(t, indent)
	case ObjectOf:
		return renderObject(t, indent)
	}
	return "unknown"
}

func renderArray(t ArrayOf, indent int) string {
	elems := make([]string, 0, len(t.Elems))
	for _, e := range t.Elems {
		elems = append(elems, render(e, indent+1))
	}
	// Indentation shifts the rendered text, so order again at this depth.
	slices.Sort(elems)
	elems = slices.Compact(elems)

	switch len(elems) {
	case 0:
		return "never[]"
	case 1:
		return elems[0] + "[]"
	}

	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = "(" + e + ")"
	}
	return "(" + strings.Join(parts, "|") + ")[]"
}

func renderObject(t ObjectOf, indent int) string {
	pad := strings.Repeat("  ", indent)
	lines := make([]string, 0, len(t.Fields)*4)
	for _, f := range t.Fields {
		lines = append(lines,
			pad+"  /**",
			pad+"   * The localized value for the message key `"+f.Name+"`.",
			pad+"   */",
			pad+"  "+PropertyName(f.Name)+": "+render(f.Type, indent+1)+",",
		)
	}
	return "{\n" + strings.Join(lines, "\n") + "\n" + pad + "}"
}

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// PropertyName returns name as written in a TypeScript property position,
// quoting it when it is not a plain identifier.
func PropertyName(name string) string {
	if identifier.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}
