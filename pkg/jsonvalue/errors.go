package jsonvalue

import "errors"

var (
	ErrSyntax       = errors.New("jsonvalue: invalid JSON")
	ErrTrailingData = errors.New("jsonvalue: unexpected data after top-level value")
)
