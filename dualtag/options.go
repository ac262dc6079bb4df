package dualtag

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

type BuildOptions struct {
	// Log, when set, receives one line per rejected encoding and a summary
	// per successful build.
	Log logger.Logger

	// StrictTags additionally rejects encodings whose final entry claims a
	// child or sibling, and encodings that leave parents waiting for
	// children. Without it the final entry's tags are ignored and unmatched
	// parents simply end up as leaves.
	StrictTags bool

	// CapacityHint pre-sizes the node arena. Zero means len(entries).
	CapacityHint int
}

// Option is a generic option type. Implementations type assert to their
// options record and ignore options that do not apply to them.
type Option func(any)

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*BuildOptions); ok {
			o.Log = log
		}
	}
}

func WithStrictTags() Option {
	return func(opts any) {
		if o, ok := opts.(*BuildOptions); ok {
			o.StrictTags = true
		}
	}
}

func WithCapacityHint(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*BuildOptions); ok {
			o.CapacityHint = n
		}
	}
}

func newBuildOptions(opts ...Option) BuildOptions {
	var o BuildOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
