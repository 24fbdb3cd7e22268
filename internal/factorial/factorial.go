// Package factorial computes n! for small non-negative n.
package factorial

import (
	"errors"
	"fmt"
)

// MaxN is the largest n whose factorial fits in an int64.
const MaxN = 20

// Sentinel errors matched by Error.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOverflow        = errors.New("overflow")
)

// Code categorizes factorial errors.
type Code string

const (
	// CodeInvalidArgument is returned for negative input.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeOverflow is returned when n! does not fit in an int64.
	CodeOverflow Code = "OVERFLOW"
)

// Error reports why n! could not be computed.
type Error struct {
	Code Code
	N    int
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeInvalidArgument:
		return fmt.Sprintf("%s: factorial of negative number %d", e.Code, e.N)
	case CodeOverflow:
		return fmt.Sprintf("%s: %d! exceeds int64 (max n is %d)", e.Code, e.N, MaxN)
	default:
		return fmt.Sprintf("%s: n=%d", e.Code, e.N)
	}
}

// Is lets errors.Is match the sentinel for the error's code.
func (e *Error) Is(target error) bool {
	switch e.Code {
	case CodeInvalidArgument:
		return target == ErrInvalidArgument
	case CodeOverflow:
		return target == ErrOverflow
	}
	return false
}

// Of returns n!, with 0! = 1! = 1.
func Of(n int) (int64, error) {
	if n < 0 {
		return 0, &Error{Code: CodeInvalidArgument, N: n}
	}
	if n > MaxN {
		return 0, &Error{Code: CodeOverflow, N: n}
	}
	return of(int64(n)), nil
}

// of assumes 0 <= n <= MaxN.
func of(n int64) int64 {
	if n <= 1 {
		return 1
	}
	return n * of(n-1)
}

// Entry is one row of a factorial table.
type Entry struct {
	N     int   `json:"n"`
	Value int64 `json:"value"`
}

// String renders the entry as "<n>! = <value>".
func (e Entry) String() string {
	return fmt.Sprintf("%d! = %d", e.N, e.Value)
}

// Table returns n! for n in [0, count) in ascending order.
func Table(count int) ([]Entry, error) {
	if count < 0 {
		return nil, &Error{Code: CodeInvalidArgument, N: count}
	}

	entries := make([]Entry, 0, count)
	for n := 0; n < count; n++ {
		v, err := Of(n)
		if err != nil {
			return nil, fmt.Errorf("table entry %d: %w", n, err)
		}
		entries = append(entries, Entry{N: n, Value: v})
	}
	return entries, nil
}
