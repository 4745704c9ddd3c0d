package gflow

import (
	"context"
	"time"

	"github.com/KumKeeHyun/gflow/options/sink"
)

// ToSlice collects f and returns its values. On failure the values emitted
// before the failure are returned with it.
func ToSlice[T any](ctx context.Context, f Flow[T]) ([]T, error) {
	res := make([]T, 0)
	err := f.Collect(ctx, func(_ context.Context, v T) error {
		res = append(res, v)
		return nil
	})
	return res, err
}

// First returns the first value of f and stops collecting it.
func First[T any](ctx context.Context, f Flow[T]) (T, error) {
	var (
		res   T
		found bool
	)
	err := Take(f, 1).Collect(ctx, func(_ context.Context, v T) error {
		res, found = v, true
		return nil
	})
	if err != nil {
		return res, err
	}
	if !found {
		return res, ErrNoElements
	}
	return res, nil
}

// To collects f on a new goroutine. Values are sent on the first channel,
// which is closed when the flow ends; the terminal outcome (nil on normal
// completion) is then available on the second one.
//
// The consumer must read the value channel until it is closed or cancel ctx.
func To[T any](ctx context.Context, f Flow[T], opts ...sink.Option) (<-chan T, <-chan error) {
	opt := newSinkOption[T](opts...)
	out := opt.BuildPipe()
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer close(out)

		errc <- f.Collect(ctx, sinkCollector(out, opt.Timeout()))
	}()

	return out, errc
}

func sinkCollector[T any](out chan<- T, timeout time.Duration) Collector[T] {
	if timeout < 0 {
		return sendTo(out)
	}
	return func(ctx context.Context, v T) error {
		bomb := time.NewTimer(timeout)
		defer bomb.Stop()

		select {
		case out <- v:
			return nil
		case <-bomb.C:
			getLogger().Warn("gflow: sink consumer is busy", "timeout", timeout)
			return ErrSinkTimeout
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Results drains the channels returned by To.
func Results[T any](out <-chan T, errc <-chan error) ([]T, error) {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res, <-errc
}
