package sink

import (
	"time"
)

type options interface {
	SetBufferedChan(cap int)
	SetTimeout(t time.Duration)
}

type Option func(options)

func WithBufferedChan(cap int) Option {
	return func(o options) {
		o.SetBufferedChan(cap)
	}
}

// WithTimeout fails the flow with ErrSinkTimeout when the consumer does not
// receive a value within timeout. A negative timeout waits forever.
func WithTimeout(timeout time.Duration) Option {
	return func(o options) {
		o.SetTimeout(timeout)
	}
}
