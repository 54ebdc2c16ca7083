package flac

import "log/slog"

// Option configures reading.
//
// Example:
//
//	tag, err := flac.ReadFile("song.flac", flac.WithLogger(logger))
type Option func(*readOptions)

type readOptions struct {
	logger *slog.Logger
}

func defaultOptions() *readOptions {
	return &readOptions{}
}

// WithLogger sets the logger the returned Tag uses for debug events while
// it is written and saved. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *readOptions) {
		o.logger = logger
	}
}
