package errors

import (
	"errors"
	"fmt"
	"strings"
)

// MismatchError reports a trial whose sum disagrees with the closed form.
type MismatchError struct {
	Strategy string `json:"strategy" yaml:"strategy"`
	Trial    int    `json:"trial" yaml:"trial"`
	Got      int64  `json:"got" yaml:"got"`
	Want     int64  `json:"want" yaml:"want"`
}

// Error implements the error interface
func (e *MismatchError) Error() string {
	return fmt.Sprintf("strategy %s trial %d: sum %d, want %d", e.Strategy, e.Trial, e.Got, e.Want)
}

// Mismatches aggregates every MismatchError from a run.
type Mismatches []*MismatchError

func (m Mismatches) Error() string {
	switch len(m) {
	case 0:
		return "no mismatches"
	case 1:
		return m[0].Error()
	}

	parts := make([]string, len(m))
	for i, e := range m {
		parts[i] = e.Error()
	}
	return fmt.Sprintf("%d sum mismatches:\n  %s", len(m), strings.Join(parts, "\n  "))
}

// Unwrap lets errors.As find the individual mismatches.
func (m Mismatches) Unwrap() []error {
	errs := make([]error, len(m))
	for i, e := range m {
		errs[i] = e
	}
	return errs
}

// IsMismatch reports whether err carries a MismatchError.
func IsMismatch(err error) bool {
	var mErr *MismatchError
	return errors.As(err, &mErr)
}
