package flactag

import "github.com/simonhull/flactag/internal/flac"

// SaveOption configures behavior when saving a tag to a file.
//
// Options use the functional options pattern:
//
//	err := tag.Save(
//	    flactag.WithBackup(".bak"),
//	    flactag.WithValidation(),
//	)
type SaveOption = flac.SaveOption

// WithBackup keeps the previous version of the file at its path plus
// suffix.
func WithBackup(suffix string) SaveOption {
	return flac.WithBackup(suffix)
}

// WithValidation re-reads the file after writing and fails if its metadata
// or audio size differ from what was written.
func WithValidation() SaveOption {
	return flac.WithValidation()
}

// WithPreserveModTime keeps the original file modification time.
func WithPreserveModTime() SaveOption {
	return flac.WithPreserveModTime()
}

// WithLock holds an advisory lock on "<path>.lock" while the file is
// replaced, so that concurrent savers of the same file take turns.
func WithLock() SaveOption {
	return flac.WithLock()
}

// WithPadding leaves at least n bytes of padding after the metadata so
// later edits can grow into it.
func WithPadding(n uint32) SaveOption {
	return flac.WithPadding(n)
}
