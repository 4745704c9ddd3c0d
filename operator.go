package gflow

import (
	"context"
	"errors"
)

func Map[T, TR any](f Flow[T], mapper func(context.Context, T) TR) Flow[TR] {
	return New(func(ctx context.Context, emit Collector[TR]) error {
		return f.Collect(ctx, func(ctx context.Context, v T) error {
			return emit(ctx, mapper(ctx, v))
		})
	})
}

// MapErr maps every value with mapper. The first mapper error ends the flow
// with a *Fail holding the value that caused it.
func MapErr[T, TR any](f Flow[T], mapper func(context.Context, T) (TR, error)) Flow[TR] {
	return New(func(ctx context.Context, emit Collector[TR]) error {
		return f.Collect(ctx, func(ctx context.Context, v T) error {
			r, err := mapper(ctx, v)
			if err != nil {
				return NewFail(v, err)
			}
			return emit(ctx, r)
		})
	})
}

// -------------------------------

func Filter[T any](f Flow[T], filter func(T) bool) Flow[T] {
	return New(func(ctx context.Context, emit Collector[T]) error {
		return f.Collect(ctx, func(ctx context.Context, v T) error {
			if !filter(v) {
				return nil
			}
			return emit(ctx, v)
		})
	})
}

// -------------------------------

// OnEach calls action before forwarding each value. An action error ends
// the flow.
func OnEach[T any](f Flow[T], action func(context.Context, T) error) Flow[T] {
	return New(func(ctx context.Context, emit Collector[T]) error {
		return f.Collect(ctx, func(ctx context.Context, v T) error {
			if err := action(ctx, v); err != nil {
				return err
			}
			return emit(ctx, v)
		})
	})
}

// -------------------------------

type takeDone struct{}

func (*takeDone) Error() string {
	return "gflow: take limit reached"
}

// Take completes after the first n values and stops the upstream producer.
func Take[T any](f Flow[T], n int) Flow[T] {
	return New(func(ctx context.Context, emit Collector[T]) error {
		if n <= 0 {
			return nil
		}
		done := &takeDone{}
		taken := 0
		err := f.Collect(ctx, func(ctx context.Context, v T) error {
			if err := emit(ctx, v); err != nil {
				return err
			}
			taken++
			if taken >= n {
				return done
			}
			return nil
		})
		if errors.Is(err, done) {
			return nil
		}
		return err
	})
}

// -------------------------------

// Catch calls handler when the upstream flow fails. The handler may emit
// replacement values and returns the new terminal outcome of the flow.
//
// Errors returned by the downstream collector and cancellation of the
// collecting context are not upstream failures and pass through untouched.
func Catch[T any](f Flow[T], handler func(context.Context, error, Collector[T]) error) Flow[T] {
	return New(func(ctx context.Context, emit Collector[T]) error {
		var downstream error
		err := f.Collect(ctx, func(ctx context.Context, v T) error {
			if err := emit(ctx, v); err != nil {
				downstream = err
				return err
			}
			return nil
		})
		switch {
		case err == nil:
			return nil
		case downstream != nil && errors.Is(err, downstream):
			return err
		case ctx.Err() != nil && errors.Is(err, ctx.Err()):
			return err
		}
		return handler(ctx, err, emit)
	})
}
