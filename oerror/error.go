package oerror

import (
	"errors"
	"fmt"
)

// BattleError is the error type returned by robobattle packages. It carries a formatted message and,
// when one of the format arguments was an error, that error as its cause.
type BattleError struct {
	Err   string
	cause error
}

// New formats a new BattleError. The first error found in args, if any, is kept as the cause so that
// errors.Is and errors.As see through the returned error.
func New(format string, args ...any) *BattleError {
	e := &BattleError{Err: fmt.Sprintf(format, args...)}
	for _, a := range args {
		if err, ok := a.(error); ok {
			e.cause = err
			break
		}
	}
	return e
}

func (e *BattleError) Error() string {
	return e.Err
}

// Unwrap returns the error that caused this one, or nil.
func (e *BattleError) Unwrap() error {
	return e.cause
}

// Is reports whether err is a BattleError with the same message as target.
func Is(err error, message string) bool {
	var be *BattleError
	if !errors.As(err, &be) {
		return false
	}
	return be.Err == message
}
