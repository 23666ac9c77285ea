package translate

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyText      = errors.New("translate: empty source text")
	ErrEmptyTarget    = errors.New("translate: empty target language")
	ErrEmptyResponse  = errors.New("translate: response contains no translations")
	ErrDecodeResponse = errors.New("translate: failed to decode response")
	ErrRequestFailed  = errors.New("translate: request failed")
	ErrAPI            = errors.New("translate: API error")
)

// APIError is a non-2xx response from the translation endpoint.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("translate: API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("translate: API returned status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}
