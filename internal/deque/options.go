package deque

type dequeOptions struct {
	initial []string
}

// Option configures a deque during construction.
type Option func(*dequeOptions)

// WithInitial seeds the deque with values in order.
func WithInitial(values ...string) Option {
	return func(opts *dequeOptions) {
		opts.initial = append(opts.initial[:0], values...)
	}
}
