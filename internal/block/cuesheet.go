package block

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/simonhull/flactag/internal/binary"
	"github.com/simonhull/flactag/internal/types"
)

// LeadOutTrack is the track number of the CD lead-out track.
const LeadOutTrack = 170

// CueSheet holds the CUESHEET payload verbatim. Parse decodes it.
type CueSheet struct {
	Data []byte
}

func (*CueSheet) Type() Type { return TypeCueSheet }

func (c *CueSheet) encodePayload() ([]byte, error) { return c.Data, nil }

// CueSheetInfo is a read-only view of a CUESHEET payload.
type CueSheetInfo struct {
	MediaCatalogNumber string
	LeadIn             uint64 // samples
	IsCD               bool
	Tracks             []CueTrack
}

// CueTrack represents a track in a cue sheet.
type CueTrack struct {
	Offset      uint64 // samples from start of audio
	Number      byte   // track number (1-99, 170=lead-out)
	ISRC        string
	IsAudio     bool
	PreEmphasis bool
	Indices     []CueIndex
}

// CueIndex represents an index point within a track.
type CueIndex struct {
	Offset uint64 // samples from start of track
	Number byte
}

// Start returns the track's start time at the given sample rate.
func (t CueTrack) Start(sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}
	return time.Duration(float64(t.Offset) / float64(sampleRate) * float64(time.Second))
}

// Parse decodes the CUESHEET payload. Offsets in errors are relative to
// the start of the payload.
func (c *CueSheet) Parse() (*CueSheetInfo, error) {
	cr := binary.NewChainReader(binary.NewBytesReader(c.Data, 0))

	mcn := cr.Bytes(128, "media catalog number")
	leadIn := binary.ReadChained[uint64](cr, "lead-in samples")
	flags := binary.ReadChained[uint8](cr, "cuesheet flags")
	_ = cr.Bytes(258, "cuesheet reserved")
	trackCount := binary.ReadChained[uint8](cr, "track count")
	if err := cr.Error(); err != nil {
		return nil, err
	}

	info := &CueSheetInfo{
		MediaCatalogNumber: strings.TrimRight(string(mcn), "\x00"),
		LeadIn:             leadIn,
		IsCD:               flags&0x80 != 0,
		Tracks:             make([]CueTrack, 0, trackCount),
	}

	for i := range trackCount {
		track, err := parseCueTrack(cr)
		if err != nil {
			return nil, errors.Wrapf(err, "cue track %d", i)
		}
		info.Tracks = append(info.Tracks, track)
	}

	if rest := cr.Remaining(); rest > 0 {
		return nil, &types.FormatError{
			Offset: cr.Offset(),
			Reason: fmt.Sprintf("%d trailing bytes after last cue track", rest),
		}
	}
	return info, nil
}

func parseCueTrack(cr *binary.ChainReader) (CueTrack, error) {
	offset := binary.ReadChained[uint64](cr, "track offset")
	number := binary.ReadChained[uint8](cr, "track number")
	isrc := cr.Bytes(12, "ISRC")
	flags := binary.ReadChained[uint8](cr, "track flags")
	_ = cr.Bytes(13, "track reserved")
	indexCount := binary.ReadChained[uint8](cr, "index count")
	if err := cr.Error(); err != nil {
		return CueTrack{}, err
	}

	track := CueTrack{
		Offset:      offset,
		Number:      number,
		ISRC:        strings.TrimRight(string(isrc), "\x00"),
		IsAudio:     flags&0x80 == 0,
		PreEmphasis: flags&0x40 != 0,
		Indices:     make([]CueIndex, 0, indexCount),
	}

	for range indexCount {
		idx := CueIndex{
			Offset: binary.ReadChained[uint64](cr, "index offset"),
			Number: binary.ReadChained[uint8](cr, "index number"),
		}
		_ = cr.Bytes(3, "index reserved")
		if err := cr.Error(); err != nil {
			return CueTrack{}, err
		}
		track.Indices = append(track.Indices, idx)
	}
	return track, nil
}
