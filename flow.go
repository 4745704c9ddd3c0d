package gflow

import (
	"context"

	"github.com/KumKeeHyun/gflow/options/pipe"
)

// Collector receives the values of a Flow. Returning a non-nil error aborts
// the producer and becomes the result of Collect.
type Collector[T any] func(ctx context.Context, v T) error

// Flow is a cold, lazy sequence of values. Nothing runs until Collect is
// called, and every Collect runs the whole chain again.
//
// Collect returns nil when the flow completes normally, or the single
// terminal failure otherwise. The collector is never called concurrently.
type Flow[T any] interface {
	Collect(ctx context.Context, collector Collector[T]) error

	Filter(func(T) bool) Flow[T]
	OnEach(func(context.Context, T) error) Flow[T]
	Map(func(context.Context, T) T) Flow[T]
	Take(n int) Flow[T]
	Pipe(...pipe.Option) Flow[T]
	Catch(func(context.Context, error, Collector[T]) error) Flow[T]
	MapOnError(func(error) error) Flow[T]
	ResumeOnError(func() error) Flow[T]
}

// New returns a Flow that runs producer on every Collect. Values passed to
// emit are delivered to the collector unless the collecting context is done.
func New[T any](producer func(ctx context.Context, emit Collector[T]) error) Flow[T] {
	return &flow[T]{
		collect: func(ctx context.Context, collector Collector[T]) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return producer(ctx, func(ctx context.Context, v T) error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return collector(ctx, v)
			})
		},
	}
}

// -------------------------------

type flow[T any] struct {
	collect func(context.Context, Collector[T]) error
}

var _ Flow[any] = &flow[any]{}

func (f *flow[T]) Collect(ctx context.Context, collector Collector[T]) error {
	return f.collect(ctx, collector)
}

func (f *flow[T]) Filter(filter func(T) bool) Flow[T] {
	return Filter[T](f, filter)
}

func (f *flow[T]) OnEach(action func(context.Context, T) error) Flow[T] {
	return OnEach[T](f, action)
}

func (f *flow[T]) Map(mapper func(context.Context, T) T) Flow[T] {
	return Map[T, T](f, mapper)
}

func (f *flow[T]) Take(n int) Flow[T] {
	return Take[T](f, n)
}

func (f *flow[T]) Pipe(opts ...pipe.Option) Flow[T] {
	return Pipe[T](f, opts...)
}

func (f *flow[T]) Catch(handler func(context.Context, error, Collector[T]) error) Flow[T] {
	return Catch[T](f, handler)
}

func (f *flow[T]) MapOnError(transform func(error) error) Flow[T] {
	return MapOnError[T](f, transform)
}

func (f *flow[T]) ResumeOnError(supplier func() error) Flow[T] {
	return ResumeOnError[T](f, supplier)
}
