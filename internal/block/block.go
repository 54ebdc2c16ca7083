// Package block implements the FLAC metadata block codec.
//
// A metadata block is a 4-byte header (last-block flag, 7-bit type code,
// 24-bit big-endian payload length) followed by the payload. Block is a
// closed sum type: every variant lives in this package, and blocks of a
// type this package does not decode are kept as *Unknown with their
// original code so they survive a rewrite unchanged.
package block

import (
	"strconv"

	"github.com/simonhull/flactag/internal/registry"
)

// Type is a 7-bit metadata block type code.
type Type uint8

// Block type codes. Codes 7 to 126 are reserved; 127 is invalid.
const (
	TypeStreamInfo    Type = 0
	TypePadding       Type = 1
	TypeApplication   Type = 2
	TypeSeekTable     Type = 3
	TypeVorbisComment Type = 4
	TypeCueSheet      Type = 5
	TypePicture       Type = 6
	TypeInvalid       Type = 127
)

// MaxPayloadSize is the largest payload the 24-bit length field can carry.
const MaxPayloadSize = 1<<24 - 1

const (
	lastFlag   = 0x80
	typeMask   = 0x7F
	headerSize = 4
)

var typeNames = [...]string{
	TypeStreamInfo:    "STREAMINFO",
	TypePadding:       "PADDING",
	TypeApplication:   "APPLICATION",
	TypeSeekTable:     "SEEKTABLE",
	TypeVorbisComment: "VORBIS_COMMENT",
	TypeCueSheet:      "CUESHEET",
	TypePicture:       "PICTURE",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	if t == TypeInvalid {
		return "INVALID"
	}
	return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
}

// Block is one decoded metadata block.
//
// The last-block flag is not part of a Block; it is carried alongside by
// Decode and Encode.
type Block interface {
	// Type returns the block's type code. For *Unknown this is the code
	// the block was read with.
	Type() Type

	encodePayload() ([]byte, error)
}

// payloadDecoder decodes a complete payload that started at the given
// absolute stream offset.
type payloadDecoder func(payload []byte, offset int64) (Block, error)

// decoders dispatches payload decoding by type code. Codes without an
// entry decode as *Unknown.
var decoders = registry.New[Type, payloadDecoder]()
