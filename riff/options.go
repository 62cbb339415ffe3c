package riff

import "go.uber.org/zap"

// Option configures a Reader.
type Option func(*readerOptions)

type readerOptions struct {
	strict   bool
	maxDepth int
	logger   *zap.Logger
}

func defaultReaderOptions() *readerOptions {
	return &readerOptions{
		logger: zap.NewNop(),
	}
}

// WithStrict makes a fault inside a list's children fail the whole list
// instead of ending the list early.
func WithStrict() Option {
	return func(o *readerOptions) {
		o.strict = true
	}
}

// WithMaxDepth limits list nesting. A list whose children would sit deeper
// than depth is a fault. Zero or a negative depth means no limit, which is
// the default.
func WithMaxDepth(depth int) Option {
	return func(o *readerOptions) {
		o.maxDepth = max(depth, 0)
	}
}

// WithLogger sets the logger used to report early termination.
func WithLogger(logger *zap.Logger) Option {
	return func(o *readerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
