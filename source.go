package gflow

import "context"

// Of returns a Flow emitting vs in order.
func Of[T any](vs ...T) Flow[T] {
	return FromSlice(vs)
}

func FromSlice[T any](slice []T) Flow[T] {
	return New(func(ctx context.Context, emit Collector[T]) error {
		for _, v := range slice {
			if err := emit(ctx, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// FromChan returns a Flow emitting values received from source until it is
// closed. The channel is shared, so collecting the flow twice splits the
// values between the collections.
func FromChan[T any](source <-chan T) Flow[T] {
	return New(func(ctx context.Context, emit Collector[T]) error {
		for {
			select {
			case v, ok := <-source:
				if !ok {
					return nil
				}
				if err := emit(ctx, v); err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})
}

func Empty[T any]() Flow[T] {
	return New(func(context.Context, Collector[T]) error {
		return nil
	})
}
