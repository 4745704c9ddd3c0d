package gflow

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrNilFailure is the failure of an error flow whose supplier returned nil,
	// or of MapOnError when transform returned nil.
	ErrNilFailure = errors.New("gflow: error supplier returned nil")
	// ErrNoElements is returned by First when the flow completes empty.
	ErrNoElements = errors.New("gflow: flow has no elements")
	// ErrSinkTimeout is returned when a sink consumer does not receive a
	// value within the configured timeout.
	ErrSinkTimeout = errors.New("gflow: sink timeout")
)

// Fail carries the value that made a mapper fail alongside its error.
type Fail[T any] struct {
	Arg T
	Err error
}

func NewFail[T any](v T, err error) *Fail[T] {
	return &Fail[T]{
		Arg: v,
		Err: err,
	}
}

func (f *Fail[T]) Error() string {
	return fmt.Sprintf("gflow: fail on %v: %v", f.Arg, f.Err)
}

func (f *Fail[T]) Unwrap() error {
	return f.Err
}

// PanicError is the failure produced when an error supplier or transform panics.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("gflow: panic recovered: %v", e.Value)
}

// Unwrap returns the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func try(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				Value: r,
				Stack: string(debug.Stack()),
			}
		}
	}()

	return fn()
}
