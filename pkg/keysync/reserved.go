package keysync

import (
	"fmt"
	"strings"
)

// ReservedKeys hold locale-invariant values that are copied, never translated.
var ReservedKeys = []string{"am", "pm", "fileSizeTypes"}

// MismatchPolicy decides what happens when a key exists on both sides but
// exactly one side holds an object.
type MismatchPolicy int

const (
	// MismatchSkip leaves the target value untouched and records the path.
	MismatchSkip MismatchPolicy = iota
	// MismatchError aborts the merge with ErrKindMismatch.
	MismatchError
)

func (p MismatchPolicy) String() string {
	if p == MismatchError {
		return "error"
	}
	return "skip"
}

// ParseMismatchPolicy parses "skip" or "error". Empty selects skip.
func ParseMismatchPolicy(s string) (MismatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return MismatchSkip, nil
	case "error":
		return MismatchError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func reservedSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
