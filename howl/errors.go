package howl

import "errors"

// Error kinds surfaced by the interpreter. Callers match them with
// errors.Is; wrapped messages carry the specifics.
var (
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrUsage             = errors.New("usage")
	ErrDivisionByZero    = errors.New("division by zero")
)
