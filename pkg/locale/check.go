package locale

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/localekit/pkg/jsonvalue"
)

// IssueKind classifies a completeness problem.
type IssueKind int

const (
	IssueMissing IssueKind = iota + 1
	IssueEmpty
)

// Issue is a message that a language lacks or leaves empty.
type Issue struct {
	Language string
	Key      string
	Kind     IssueKind
}

func (i Issue) String() string {
	if i.Kind == IssueEmpty {
		return fmt.Sprintf("Language <%s> has an empty translation for key %s", i.Language, i.Key)
	}
	return fmt.Sprintf("Language <%s> is missing translation for key %s", i.Language, i.Key)
}

// AllKeys returns the union of top-level message keys over every language, sorted.
func AllKeys(set *Set) []string {
	seen := make(map[string]struct{})
	for _, code := range set.Codes() {
		doc, _ := set.Get(code)
		for _, k := range doc.Keys() {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Check reports every (language, key) pair of the key union whose message
// is absent, null or the empty string. Issues are ordered by language, then key.
func Check(set *Set) []Issue {
	keys := AllKeys(set)

	var issues []Issue
	for _, code := range set.Codes() {
		doc, _ := set.Get(code)
		for _, key := range keys {
			v, ok := doc.Get(key)
			switch {
			case !ok:
				issues = append(issues, Issue{Language: code, Key: key, Kind: IssueMissing})
			case jsonvalue.IsEmptyMessage(v):
				issues = append(issues, Issue{Language: code, Key: key, Kind: IssueEmpty})
			}
		}
	}
	return issues
}

// Validate runs Check and returns a *CompletenessError when anything is reported.
func Validate(set *Set) error {
	if issues := Check(set); len(issues) > 0 {
		return &CompletenessError{Issues: issues}
	}
	return nil
}
