package modulegen

import "errors"

var (
	ErrEmptySet  = errors.New("modulegen: no locales to generate")
	ErrSameDirs  = errors.New("modulegen: ESM and CommonJS output directories must differ")
	ErrWriteFile = errors.New("modulegen: failed to write file")
)
