package record

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxNameLen is the maximum number of characters stored in a name.
const MaxNameLen = 49

// ErrNameTooLong is returned by NewBoundedName under PolicyReject.
var ErrNameTooLong = errors.New("name too long")

// NamePolicy decides what happens to names longer than MaxNameLen.
type NamePolicy int

const (
	// PolicyTruncate keeps the first MaxNameLen characters and flags the result.
	PolicyTruncate NamePolicy = iota
	// PolicyReject refuses over-long names.
	PolicyReject
)

// ValidNamePolicies lists the accepted textual policy names.
var ValidNamePolicies = []string{"truncate", "reject"}

func (p NamePolicy) String() string {
	switch p {
	case PolicyTruncate:
		return "truncate"
	case PolicyReject:
		return "reject"
	default:
		return fmt.Sprintf("NamePolicy(%d)", int(p))
	}
}

// ParseNamePolicy converts "truncate" or "reject" into a NamePolicy.
// Matching is case-insensitive.
func ParseNamePolicy(s string) (NamePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truncate":
		return PolicyTruncate, nil
	case "reject":
		return PolicyReject, nil
	}
	return 0, fmt.Errorf("invalid name policy %q: must be one of %v", s, ValidNamePolicies)
}

// BoundedName is a name of at most MaxNameLen characters.
// The zero value is the empty name.
type BoundedName struct {
	value     string
	truncated bool
}

// NewBoundedName normalizes s to NFC and applies policy if it is longer
// than MaxNameLen runes.
func NewBoundedName(s string, policy NamePolicy) (BoundedName, error) {
	normalized := norm.NFC.String(s)

	n := utf8.RuneCountInString(normalized)
	if n <= MaxNameLen {
		return BoundedName{value: normalized}, nil
	}

	if policy == PolicyReject {
		return BoundedName{}, fmt.Errorf("%w: %d characters, limit is %d", ErrNameTooLong, n, MaxNameLen)
	}

	// Cut on a rune boundary.
	cut, count := len(normalized), 0
	for i := range normalized {
		if count == MaxNameLen {
			cut = i
			break
		}
		count++
	}

	return BoundedName{value: normalized[:cut], truncated: true}, nil
}

// MustBoundedName is like NewBoundedName with PolicyTruncate.
// Truncation never fails, so this never panics.
func MustBoundedName(s string) BoundedName {
	name, err := NewBoundedName(s, PolicyTruncate)
	if err != nil {
		panic(err)
	}
	return name
}

// String returns the stored name.
func (b BoundedName) String() string {
	return b.value
}

// Truncated reports whether characters were dropped to fit MaxNameLen.
func (b BoundedName) Truncated() bool {
	return b.truncated
}

// Len returns the length in characters.
func (b BoundedName) Len() int {
	return utf8.RuneCountInString(b.value)
}
