package flac

import (
	"bufio"
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/flactag/internal/types"
)

// ReadFile reads the metadata of the FLAC file at path. The returned Tag
// remembers path so that Save can write it back.
func ReadFile(path string, opts ...Option) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.IOError{Op: "open file", Offset: -1, Err: err}
	}
	defer f.Close() //nolint:errcheck // read-only handle

	t, err := Read(bufio.NewReader(f), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	t.path = path
	return t, nil
}

// ReadFiles reads several files concurrently, using up to runtime.NumCPU()
// goroutines. Results are in the same order as paths. If any file fails,
// ReadFiles returns the first error and no tags.
func ReadFiles(ctx context.Context, paths ...string) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Save writes the tag back to the file it was read from.
//
// Calling Save on a tag with no originating file is a programming error
// and returns an assertion failure (see errors.HasAssertionFailure); use
// SaveAs instead.
func (t *Tag) Save(opts ...SaveOption) error {
	if t.path == "" {
		return errors.AssertionFailedf("flac: Save called on a tag that was not read from a file")
	}
	return t.SaveAs(t.path, opts...)
}

// SaveAs writes the tag followed by the audio data to path.
//
// The audio data is taken from the file currently at path, or from the
// tag's originating file when path does not exist yet. The new content is
// written to a temporary file in the same directory, synced, and renamed
// over path, so a failure at any point leaves the original untouched.
func (t *Tag) SaveAs(path string, opts ...SaveOption) error { //nolint:gocyclo // atomic file operations require sequential steps
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}
	logger := t.log().With("path", path)

	if options.lock {
		lock := flock.New(path + ".lock")
		if err := lock.Lock(); err != nil {
			return &types.IOError{Op: "lock " + lock.Path(), Offset: -1, Err: err}
		}
		defer lock.Unlock() //nolint:errcheck // released on close regardless
	}

	audio, info, err := t.audioSource(path)
	if err != nil {
		return err
	}
	logger.Debug("preserving audio data", "bytes", len(audio))

	t.normalize()
	t.ensurePadding(options.padding)
	metadata, err := t.Bytes()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".flactag-*.tmp")
	if err != nil {
		return &types.IOError{Op: "create temp file", Offset: -1, Err: err}
	}
	tmpPath := tmp.Name()
	logger.Debug("writing temp file", "temp", tmpPath)

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()        //nolint:errcheck // best effort cleanup
			_ = os.Remove(tmpPath) //nolint:errcheck // best effort cleanup
		}
	}()

	perm := fs.FileMode(0o644)
	if info != nil {
		perm = info.Mode().Perm()
	}
	if err := tmp.Chmod(perm); err != nil {
		return &types.IOError{Op: "chmod temp file", Offset: -1, Err: err}
	}
	if _, err := tmp.Write(metadata); err != nil {
		return &types.IOError{Op: "write metadata", Offset: 0, Err: err}
	}
	if _, err := tmp.Write(audio); err != nil {
		return &types.IOError{Op: "write audio data", Offset: int64(len(metadata)), Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &types.IOError{Op: "sync temp file", Offset: -1, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &types.IOError{Op: "close temp file", Offset: -1, Err: err}
	}

	if options.backupSuffix != "" && info != nil {
		backupPath := path + options.backupSuffix
		if err := os.Rename(path, backupPath); err != nil {
			return errors.Mark(errors.Wrapf(err, "create backup %s", backupPath), types.ErrIO)
		}
		logger.Debug("created backup", "backup", backupPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Mark(errors.Wrapf(err, "replace %s", path), types.ErrIO)
	}
	success = true
	t.path = path

	if options.preserveModTime && info != nil {
		_ = os.Chtimes(path, info.ModTime(), info.ModTime()) //nolint:errcheck // non-fatal: file was written successfully
	}

	if options.validate {
		if err := validateWritten(path, metadata, int64(len(audio))); err != nil {
			return errors.Wrap(err, "validation failed")
		}
	}
	return nil
}

// audioSource returns the audio data to carry over into path, and the
// FileInfo of the existing file at path if there is one.
func (t *Tag) audioSource(path string) ([]byte, fs.FileInfo, error) {
	f, err := os.Open(path)
	if err == nil {
		defer f.Close() //nolint:errcheck // read-only handle
		info, err := f.Stat()
		if err != nil {
			return nil, nil, &types.IOError{Op: "stat file", Offset: -1, Err: err}
		}
		return SkipMetadata(f), info, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, &types.IOError{Op: "open file", Offset: -1, Err: err}
	}
	if t.path == "" || t.path == path {
		return nil, nil, nil
	}

	src, err := os.Open(t.path)
	if err != nil {
		return nil, nil, &types.IOError{Op: "open audio source", Offset: -1, Err: err}
	}
	defer src.Close() //nolint:errcheck // read-only handle
	return SkipMetadata(src), nil, nil
}

// validateWritten re-reads path and compares it against what was written.
func validateWritten(path string, metadata []byte, audioSize int64) error {
	written, err := ReadFile(path)
	if err != nil {
		return err
	}
	again, err := written.Bytes()
	if err != nil {
		return err
	}
	if !bytes.Equal(again, metadata) {
		return errors.Newf("metadata read back from %s differs from what was written", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return &types.IOError{Op: "stat file", Offset: -1, Err: err}
	}
	if want := int64(len(metadata)) + audioSize; info.Size() != want {
		return errors.Newf("%s is %d bytes, want %d", path, info.Size(), want)
	}
	return nil
}
