package flactag

import (
	"io"

	"github.com/simonhull/flactag/internal/block"
	"github.com/simonhull/flactag/internal/flac"
)

// Block is one metadata block. The concrete type is one of *StreamInfo,
// *Padding, *Application, *SeekTable, *VorbisComment, *CueSheet, *Picture
// or *Unknown.
type Block = block.Block

// BlockType is a 7-bit metadata block type code.
type BlockType = block.Type

// Block variants.
type (
	StreamInfo    = block.StreamInfo
	Padding       = block.Padding
	Application   = block.Application
	SeekTable     = block.SeekTable
	VorbisComment = block.VorbisComment
	Unknown       = block.Unknown
)

// Re-export all block type constants.
const (
	TypeStreamInfo    = block.TypeStreamInfo
	TypePadding       = block.TypePadding
	TypeApplication   = block.TypeApplication
	TypeSeekTable     = block.TypeSeekTable
	TypeVorbisComment = block.TypeVorbisComment
	TypeCueSheet      = block.TypeCueSheet
	TypePicture       = block.TypePicture
	TypeInvalid       = block.TypeInvalid
)

// MaxPayloadSize is the largest block payload the 24-bit length field can
// describe.
const MaxPayloadSize = block.MaxPayloadSize

// Magic is the stream marker that precedes the metadata blocks.
const Magic = flac.Magic

// NewVorbisComment returns an empty comment block with the given vendor.
func NewVorbisComment(vendor string) *VorbisComment {
	return block.NewVorbisComment(vendor)
}

// DecodeBlock reads a single block, returning its last-block flag.
func DecodeBlock(r io.Reader) (last bool, b Block, err error) {
	return block.Decode(r)
}

// EncodeBlock writes a single block with the given last-block flag.
func EncodeBlock(w io.Writer, last bool, b Block) error {
	return block.Encode(w, last, b)
}

// EncodedSize returns the number of bytes b occupies in a stream, its
// 4-byte header included.
func EncodedSize(b Block) (int, error) {
	return block.EncodedSize(b)
}

// DescribeBlock returns a one-line summary of b.
func DescribeBlock(b Block) string {
	return block.Describe(b)
}

// IsFLAC reports whether r starts with the FLAC stream marker. It consumes
// up to four bytes.
func IsFLAC(r io.Reader) bool {
	return flac.IsCandidate(r)
}

// SkipMetadata returns the audio data that follows the metadata blocks of
// r. It never fails: a stream it cannot walk is returned from the point
// where the walk stopped, and a stream without the marker is returned
// whole.
func SkipMetadata(r io.ReadSeeker) []byte {
	return flac.SkipMetadata(r)
}
