package locale

import (
	"slices"

	"github.com/dmitrymomot/localekit/pkg/jsonvalue"
)

// Set holds one locale document per language code.
type Set struct {
	docs     map[string]*jsonvalue.Object
	files    map[string]string
	baseline string
}

// NewSet returns an empty set with the given baseline language.
func NewSet(baseline string) *Set {
	if baseline == "" {
		baseline = DefaultBaseline
	}
	return &Set{
		docs:     make(map[string]*jsonvalue.Object),
		files:    make(map[string]string),
		baseline: baseline,
	}
}

// Add registers the document for a language. file is informational.
func (s *Set) Add(code, file string, doc *jsonvalue.Object) {
	s.docs[code] = doc
	s.files[code] = file
}

// Len returns the number of languages.
func (s *Set) Len() int { return len(s.docs) }

// Codes returns all language codes in lexicographic order.
func (s *Set) Codes() []string {
	codes := make([]string, 0, len(s.docs))
	for code := range s.docs {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Get returns the document for a language code.
func (s *Set) Get(code string) (*jsonvalue.Object, bool) {
	doc, ok := s.docs[code]
	return doc, ok
}

// File returns the file a language was loaded from.
func (s *Set) File(code string) string {
	return s.files[code]
}

// BaselineCode returns the configured baseline language code.
func (s *Set) BaselineCode() string { return s.baseline }

// Baseline returns the baseline document, or ErrMissingBaseline.
func (s *Set) Baseline() (*jsonvalue.Object, error) {
	doc, ok := s.docs[s.baseline]
	if !ok {
		return nil, &SchemaError{
			File:   s.baseline + ".json",
			Reason: "is required as the baseline language",
			Err:    ErrMissingBaseline,
		}
	}
	return doc, nil
}
