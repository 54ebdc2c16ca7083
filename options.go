package flactag

import (
	"log/slog"

	"github.com/simonhull/flactag/internal/flac"
)

// Option configures reading.
//
// Example:
//
//	tag, err := flactag.ReadFile("song.flac",
//	    flactag.WithLogger(slog.Default()),
//	)
type Option = flac.Option

// WithLogger sets the logger the returned Tag reports debug events to
// while it is written and saved.
//
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return flac.WithLogger(logger)
}
