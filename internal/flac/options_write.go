package flac

// SaveOption configures behavior when saving a tag to a file.
//
// Options use the functional options pattern:
//
//	err := tag.Save(
//	    flac.WithBackup(".bak"),
//	    flac.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
	lock            bool   // Hold <path>.lock while rewriting
	padding         uint32 // Minimum padding after the rewrite
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup keeps the previous version of the file.
//
// The original is renamed to its path plus suffix just before the new
// version is moved into place. For example, WithBackup(".bak") leaves
// "song.flac.bak" next to the rewritten "song.flac". An existing backup
// is overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing and checks that its
// metadata encodes to the same bytes that were written and that the audio
// data was carried over in full.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithLock serializes concurrent savers of the same file through an
// advisory lock on a "<path>.lock" sidecar file. The sidecar is left in
// place after the save.
func WithLock() SaveOption {
	return func(o *saveOptions) {
		o.lock = true
	}
}

// WithPadding makes the rewritten metadata end with at least n bytes of
// padding, leaving room for later edits.
func WithPadding(n uint32) SaveOption {
	return func(o *saveOptions) {
		o.padding = n
	}
}
