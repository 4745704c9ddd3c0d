package pipe

type options interface {
	SetBufferedChan(cap int)
}

type Option func(options)

// WithBufferedChan sets the capacity of the channel between the producing
// and the collecting goroutine.
func WithBufferedChan(cap int) Option {
	return func(o options) {
		o.SetBufferedChan(cap)
	}
}
