package keysync

import "errors"

var (
	ErrKindMismatch    = errors.New("keysync: baseline and target disagree on value kind")
	ErrUnknownPolicy   = errors.New("keysync: unknown mismatch policy")
	ErrBaseline        = errors.New("keysync: invalid baseline document")
	ErrNoLanguage      = errors.New("keysync: document has no language root key")
	ErrNotObject       = errors.New("keysync: language root value is not an object")
	ErrWriteFile       = errors.New("keysync: failed to write file")
	ErrReadDir         = errors.New("keysync: failed to read directory")
	ErrInvalidDocument = errors.New("keysync: invalid document")
)
