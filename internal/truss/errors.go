package truss

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure while checking or solving a truss matches
// exactly one of these with errors.Is.
var (
	ErrInput       = errors.New("input error")
	ErrDeterminacy = errors.New("determinacy error")
	ErrSolve       = errors.New("solve error")
)

// InputError reports malformed geometry, a broken graph contract or an
// unsupported constraint configuration.
type InputError struct {
	msg string
}

func (e *InputError) Error() string        { return e.msg }
func (e *InputError) Is(target error) bool { return target == ErrInput }

// DeterminacyError reports an unstable or statically indeterminate truss.
type DeterminacyError struct {
	msg string
}

func (e *DeterminacyError) Error() string        { return e.msg }
func (e *DeterminacyError) Is(target error) bool { return target == ErrDeterminacy }

// SolveError reports a joint that cannot be resolved or a solve that made
// no progress.
type SolveError struct {
	msg string
}

func (e *SolveError) Error() string        { return e.msg }
func (e *SolveError) Is(target error) bool { return target == ErrSolve }

// Inputf formats an InputError.
func Inputf(format string, args ...any) error {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// Determinacyf formats a DeterminacyError.
func Determinacyf(format string, args ...any) error {
	return &DeterminacyError{msg: fmt.Sprintf(format, args...)}
}

// Solvef formats a SolveError.
func Solvef(format string, args ...any) error {
	return &SolveError{msg: fmt.Sprintf(format, args...)}
}
