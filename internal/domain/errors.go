package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only error kind the projection core produces. It
// covers missing, unparsable, zero, negative and non-integral parameters.
var ErrInvalidInput = errors.New("invalid input")

// MissingParamsMessage is the error text returned to API callers
const MissingParamsMessage = "Missing params"

// InputError describes one rejected request parameter
type InputError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s=%q: %s", e.Param, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
