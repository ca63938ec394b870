package libevents

// DefaultMaxListeners is the per-key listener count above which an emitter logs a
// possible leak warning. Zero disables the check.
const DefaultMaxListeners = 10

type (
	options struct {
		logger       Logger
		maxListeners int
	}

	// Option configures an Emitter.
	Option func(*options)
)

func defaultOptions() options {
	return options{
		logger:       NewNoopLogger(),
		maxListeners: DefaultMaxListeners,
	}
}

// WithLogger sets the logger used for diagnostics. A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxListeners sets the leak warning threshold. n <= 0 disables it.
func WithMaxListeners(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxListeners = n
	}
}
