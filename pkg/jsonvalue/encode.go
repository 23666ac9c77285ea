package jsonvalue

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Marshal encodes v without insignificant whitespace.
func Marshal(v Value) []byte {
	var buf bytes.Buffer
	encode(&buf, v, "", 0)
	return buf.Bytes()
}

// MarshalIndent encodes v with one member or element per line, indented by
// indent per nesting level. Empty arrays and objects stay on one line.
func MarshalIndent(v Value, indent string) []byte {
	var buf bytes.Buffer
	encode(&buf, v, indent, 0)
	return buf.Bytes()
}

func encode(buf *bytes.Buffer, v Value, indent string, depth int) {
	switch t := v.(type) {
	case Null:
		buf.WriteString("null")
	case Bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(string(t))
	case String:
		writeString(buf, string(t))
	case Array:
		if len(t) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent, depth+1)
			encode(buf, e, indent, depth+1)
		}
		newline(buf, indent, depth)
		buf.WriteByte(']')
	case *Object:
		if t.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		first := true
		for k, e := range t.All() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			newline(buf, indent, depth+1)
			writeString(buf, k)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			encode(buf, e, indent, depth+1)
		}
		newline(buf, indent, depth)
		buf.WriteByte('}')
	}
}

func newline(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indent, depth))
}

// writeString quotes s the way JSON.stringify does: no HTML escaping.
func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
}
