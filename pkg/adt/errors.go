package adt

import (
	"errors"
	"fmt"
)

var (
	ErrNoSuchElement    = errors.New("no such element")
	ErrNilArgument      = errors.New("nil argument")
	ErrIllegalArgument  = errors.New("illegal argument")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// ArgumentError is the panic value raised when a combinator receives a nil
// function or supplier.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s is nil", ErrNilArgument, e.Name)
}

func (e *ArgumentError) Unwrap() error {
	return ErrNilArgument
}

// PanicError wraps a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// RequireNonNil panics with an *ArgumentError when v is nil-like.
func RequireNonNil(name string, v any) {
	if IsNil(v) {
		panic(&ArgumentError{Name: name})
	}
}

// NoSuchElement wraps ErrNoSuchElement with a short reason.
func NoSuchElement(reason string) error {
	return fmt.Errorf("%w: %s", ErrNoSuchElement, reason)
}

// IndexOutOfBounds wraps ErrIndexOutOfBounds with the offending index.
func IndexOutOfBounds(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, size)
}
