package flactag

import (
	"github.com/cockroachdb/errors"
)

// Edit reads the file at path, applies fn to its tag, and saves the
// result with opts. The file is left untouched if fn returns an error.
//
// Example:
//
//	err := flactag.Edit("song.flac", func(tag *flactag.Tag) error {
//		tag.SetTrack(3)
//		tag.SetTotalTracks(12)
//		return nil
//	}, flactag.WithPreserveModTime())
func Edit(path string, fn func(*Tag) error, opts ...SaveOption) error {
	tag, err := ReadFile(path)
	if err != nil {
		return err
	}
	if err := fn(tag); err != nil {
		return errors.Wrapf(err, "edit %s", path)
	}
	return tag.Save(opts...)
}
