package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode parses a single JSON value from data.
func Decode(data []byte) (Value, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader parses a single JSON value from r. Anything but whitespace
// after the value is an error.
func DecodeReader(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, errors.Join(ErrSyntax, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return v, nil
}

// MustParse decodes s and panics on error. Intended for tests and literals.
func MustParse(s string) Value {
	v, err := Decode([]byte(s))
	if err != nil {
		panic(err)
	}
	return v
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	}

	return nil, fmt.Errorf("unexpected token %T", tok)
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %T", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		obj.Set(key, v)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Array, error) {
	arr := Array{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", len(arr), err)
		}
		arr = append(arr, v)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
