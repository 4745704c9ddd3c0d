package gflow

import (
	"time"

	"github.com/KumKeeHyun/gflow/options/pipe"
	"github.com/KumKeeHyun/gflow/options/sink"
)

type optionsImpl struct {
	isBuffer bool
	buffer   int
	timeout  time.Duration
}

func (o *optionsImpl) SetBufferedChan(cap int) {
	if cap < 0 {
		cap = 0
	}
	o.isBuffer = true
	o.buffer = cap
}

func (o *optionsImpl) SetTimeout(t time.Duration) {
	o.timeout = t
}

func (o *optionsImpl) capacity() int {
	if o.isBuffer {
		return o.buffer
	}
	return 0
}

type pipeOption[T any] struct {
	optionsImpl
}

func (o *pipeOption[T]) BuildPipe() chan T {
	return make(chan T, o.capacity())
}

func newPipeOption[T any](opts ...pipe.Option) *pipeOption[T] {
	pipeOpt := &pipeOption[T]{
		optionsImpl: optionsImpl{
			isBuffer: false,
		},
	}
	for _, opt := range opts {
		opt(pipeOpt)
	}
	return pipeOpt
}

type sinkOption[T any] struct {
	optionsImpl
}

func (o *sinkOption[T]) BuildPipe() chan T {
	return make(chan T, o.capacity())
}

func (o *sinkOption[T]) Timeout() time.Duration {
	return o.timeout
}

func newSinkOption[T any](opts ...sink.Option) *sinkOption[T] {
	sinkOpt := &sinkOption[T]{
		optionsImpl: optionsImpl{
			isBuffer: false,
			timeout:  -1,
		},
	}
	for _, opt := range opts {
		opt(sinkOpt)
	}
	return sinkOpt
}
