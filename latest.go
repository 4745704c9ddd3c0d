package gflow

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/KumKeeHyun/gflow/options/pipe"
	"golang.org/x/sync/errgroup"
)

// FlatMapLatest maps every upstream value to an inner flow and emits the
// values of the latest one. A new upstream value cancels the running inner
// flow and waits for it before the next one starts.
//
// Upstream failure cancels the inner flow and ends the result with that
// failure. Inner failure stops the upstream and ends the result with the
// inner failure. Otherwise the result completes once the upstream and the
// last inner flow have completed.
//
// An inner flow runs until it emits its first value or returns before the
// upstream moves on, so an inner flow that fails right away always ends the
// result with its own failure.
func FlatMapLatest[T, TR any](f Flow[T], mapper func(context.Context, T) Flow[TR], opts ...pipe.Option) Flow[TR] {
	return New(func(ctx context.Context, emit Collector[TR]) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		out := newPipeOption[TR](opts...).BuildPipe()
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			defer close(out)

			inner := &latest{}
			err := f.Collect(gctx, func(ctx context.Context, v T) error {
				if err := inner.stop(); err != nil {
					return err
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				send := sendTo(out)
				return inner.start(gctx, g, func(ictx context.Context, ready func()) error {
					return mapper(ictx, v).Collect(ictx, func(ctx context.Context, r TR) error {
						ready()
						return send(ctx, r)
					})
				})
			})
			if err != nil {
				if ierr := inner.stop(); ierr != nil {
					return ierr
				}
				return err
			}
			return inner.wait()
		})

		return forward(ctx, cancel, out, g, emit)
	})
}

// -------------------------------

type latest struct {
	current *innerRoutine
}

type innerRoutine struct {
	cancel     context.CancelFunc
	superseded atomic.Bool
	done       chan struct{}
	err        error

	readyOnce sync.Once
	ready     chan struct{}
	// failure seen before the first value, set before ready is closed
	early error
}

func (r *innerRoutine) signal(err error) {
	r.readyOnce.Do(func() {
		r.early = err
		close(r.ready)
	})
}

// start runs collect as the current inner flow and blocks until it emits
// its first value or returns. It returns the failure of an inner flow that
// returned before emitting anything.
func (l *latest) start(ctx context.Context, g *errgroup.Group, collect func(ctx context.Context, ready func()) error) error {
	ictx, cancel := context.WithCancel(ctx)
	r := &innerRoutine{
		cancel: cancel,
		done:   make(chan struct{}),
		ready:  make(chan struct{}),
	}
	l.current = r

	g.Go(func() error {
		defer close(r.done)
		defer cancel()

		err := collect(ictx, func() { r.signal(nil) })
		if err != nil && r.superseded.Load() && errors.Is(err, context.Canceled) {
			err = nil
		}
		r.err = err
		r.signal(err)
		return err
	})

	<-r.ready
	return r.early
}

// stop cancels the running inner flow, waits for it, and returns its failure
// if it failed on its own.
func (l *latest) stop() error {
	r := l.current
	if r == nil {
		return nil
	}
	l.current = nil

	r.superseded.Store(true)
	r.cancel()
	<-r.done
	return r.err
}

func (l *latest) wait() error {
	r := l.current
	if r == nil {
		return nil
	}
	<-r.done
	return r.err
}
