package flactag

import (
	"io"

	"github.com/simonhull/flactag/internal/flac"
)

// Tag is the metadata of a FLAC stream: its blocks in order, with comment
// and picture accessors. It is not safe for concurrent use.
type Tag = flac.Tag

// Well-known comment keys.
const (
	KeyTitle           = flac.KeyTitle
	KeyTitleSort       = flac.KeyTitleSort
	KeyArtist          = flac.KeyArtist
	KeyArtistSort      = flac.KeyArtistSort
	KeyAlbum           = flac.KeyAlbum
	KeyAlbumSort       = flac.KeyAlbumSort
	KeyAlbumArtist     = flac.KeyAlbumArtist
	KeyAlbumArtistSort = flac.KeyAlbumArtistSort
	KeyGenre           = flac.KeyGenre
	KeyTrackNumber     = flac.KeyTrackNumber
	KeyTotalTracks     = flac.KeyTotalTracks
	KeyLyrics          = flac.KeyLyrics
)

// NewTag returns an empty tag.
func NewTag() *Tag {
	return flac.NewTag()
}

// Read decodes the metadata of a FLAC stream, leaving r positioned at the
// first audio frame.
func Read(r io.Reader, opts ...Option) (*Tag, error) {
	return flac.Read(r, opts...)
}
