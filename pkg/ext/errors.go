package ext

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrNilReference    = errors.New("nil reference")
)

// ArgumentError reports a parameter that violates a precondition of Op.
type ArgumentError struct {
	Op    string
	Param string
	Value any
	Err   error
}

func NewArgumentError(op, param string, value any, reason string) *ArgumentError {
	return &ArgumentError{
		Op:    op,
		Param: param,
		Value: value,
		Err:   fmt.Errorf("%w: %s", ErrInvalidArgument, reason),
	}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: parameter %s (value: %v): %v", e.Op, e.Param, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// TypeError reports a conversion requested against an incompatible type.
type TypeError struct {
	Op   string
	Want reflect.Type
	Got  reflect.Type
	Err  error
}

func (e *TypeError) Error() string {
	if e.Want == nil {
		return fmt.Sprintf("%s: %v is not an enumeration: %v", e.Op, e.Got, e.Err)
	}
	return fmt.Sprintf("%s: want %v, got %v: %v", e.Op, e.Want, e.Got, e.Err)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}
