package gflow

import (
	"context"

	"github.com/KumKeeHyun/gflow/options/pipe"
	"golang.org/x/sync/errgroup"
)

// Pipe collects f on its own goroutine and hands the values to the
// collector through a channel, so a slow collector and a slow producer can
// overlap.
func Pipe[T any](f Flow[T], opts ...pipe.Option) Flow[T] {
	return New(func(ctx context.Context, emit Collector[T]) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		p := newPipeOption[T](opts...).BuildPipe()
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			defer close(p)
			return f.Collect(gctx, sendTo(p))
		})

		return forward(ctx, cancel, p, g, emit)
	})
}

func sendTo[T any](p chan<- T) Collector[T] {
	return func(ctx context.Context, v T) error {
		select {
		case p <- v:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// forward emits everything received from p until it is closed. When emit
// fails, the producers are canceled and p is drained so none of them stays
// blocked on a send.
func forward[T any](ctx context.Context, cancel context.CancelFunc, p <-chan T, g *errgroup.Group, emit Collector[T]) error {
	for v := range p {
		if err := emit(ctx, v); err != nil {
			cancel()
			for range p {
			}
			_ = g.Wait()
			return err
		}
	}
	return g.Wait()
}
