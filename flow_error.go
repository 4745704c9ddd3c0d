package gflow

import (
	"context"
)

// Error returns a Flow that emits nothing and fails with the error returned
// by supplier. The supplier is called when the flow is collected, once per
// collection, never when Error is called.
//
// A panic in supplier fails the flow with a *PanicError, and a nil error
// fails it with ErrNilFailure.
func Error[T any](supplier func() error) Flow[T] {
	return New(func(context.Context, Collector[T]) error {
		err := try(supplier)
		if err == nil {
			return ErrNilFailure
		}
		return err
	})
}

// ResumeOnError replaces every value of f with a failure built by supplier.
// The result never emits: the first value of f switches to Error(supplier),
// canceling the failure flow of any earlier value.
//
// A failure of f itself passes through unchanged without calling supplier,
// and an f that completes empty completes the result normally. Once f has
// emitted, the result fails with the supplier's failure even if f fails
// right after.
func ResumeOnError[T any](f Flow[T], supplier func() error) Flow[T] {
	return FlatMapLatest(f, func(context.Context, T) Flow[T] {
		return Error[T](supplier)
	})
}

// MapOnError fails with transform(err) wherever f fails with err. Values
// of f pass through unchanged and transform is not called when f completes
// normally. Chained calls translate the failure layer by layer:
//
//	f.MapOnError(toRepoErr).
//		MapOnError(toServiceErr).
//		Catch(handle)
//
// A panic in transform fails the flow with a *PanicError. A nil result fails
// the flow with ErrNilFailure.
func MapOnError[T any](f Flow[T], transform func(error) error) Flow[T] {
	return Catch(f, func(_ context.Context, err error, _ Collector[T]) error {
		mapped := try(func() error {
			return transform(err)
		})
		if mapped == nil {
			return ErrNilFailure
		}
		return mapped
	})
}
