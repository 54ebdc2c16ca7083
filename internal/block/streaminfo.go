package block

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/simonhull/flactag/internal/binary"
	"github.com/simonhull/flactag/internal/types"
)

// streamInfoSize is the fixed length of a STREAMINFO payload.
const streamInfoSize = 34

// AudioInfo is a read-only view of a STREAMINFO payload.
type AudioInfo struct {
	MinBlockSize  uint16 // samples
	MaxBlockSize  uint16
	MinFrameSize  uint32 // bytes, 0 if unknown
	MaxFrameSize  uint32
	SampleRate    uint32 // Hz
	Channels      uint8
	BitsPerSample uint8
	TotalSamples  uint64 // per channel, 0 if unknown
	MD5           [16]byte
}

// Info decodes the STREAMINFO payload. Field values are not validated.
func (s *StreamInfo) Info() (AudioInfo, error) {
	if len(s.Data) < streamInfoSize {
		return AudioInfo{}, &types.FormatError{
			Offset: -1,
			Reason: fmt.Sprintf("STREAMINFO is %d bytes, need %d", len(s.Data), streamInfoSize),
		}
	}

	cr := binary.NewChainReader(binary.NewBytesReader(s.Data, 0))
	var info AudioInfo
	info.MinBlockSize = binary.ReadChained[uint16](cr, "min block size")
	info.MaxBlockSize = binary.ReadChained[uint16](cr, "max block size")
	minFrame := cr.Bytes(3, "min frame size")
	maxFrame := cr.Bytes(3, "max frame size")

	// sample rate (20 bits), channels-1 (3), bits per sample-1 (5), total samples (36)
	packed := binary.ReadChained[uint64](cr, "sample format")
	md5 := cr.Bytes(16, "MD5 signature")
	if err := cr.Error(); err != nil {
		return AudioInfo{}, err
	}

	info.MinFrameSize = uint24(minFrame)
	info.MaxFrameSize = uint24(maxFrame)
	info.SampleRate = uint32(packed >> 44)
	info.Channels = uint8((packed>>41)&0x7) + 1
	info.BitsPerSample = uint8((packed>>36)&0x1F) + 1
	info.TotalSamples = packed & 0xFFFFFFFFF
	copy(info.MD5[:], md5)
	return info, nil
}

func uint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// Duration returns the stream length, or 0 if the sample rate or total
// sample count is unknown.
func (a AudioInfo) Duration() time.Duration {
	if a.SampleRate == 0 || a.TotalSamples == 0 {
		return 0
	}
	seconds := float64(a.TotalSamples) / float64(a.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// IsHighRes reports whether the stream is above CD quality
// (sample rate over 48kHz or more than 16 bits per sample).
func (a AudioInfo) IsHighRes() bool {
	return a.SampleRate > 48000 || a.BitsPerSample > 16
}

// MD5Hex returns the audio MD5 signature in hex, or "" if it is unset.
func (a AudioInfo) MD5Hex() string {
	if a.MD5 == [16]byte{} {
		return ""
	}
	return hex.EncodeToString(a.MD5[:])
}

// String returns a human-readable summary.
// Example output: "44.1kHz 16-bit stereo 3m25s".
func (a AudioInfo) String() string {
	parts := []string{fmt.Sprintf("%.1fkHz", float64(a.SampleRate)/1000)}
	if a.BitsPerSample > 0 {
		parts = append(parts, fmt.Sprintf("%d-bit", a.BitsPerSample))
	}
	if ch := channelDescription(int(a.Channels)); ch != "" {
		parts = append(parts, ch)
	}
	if d := a.Duration(); d > 0 {
		parts = append(parts, d.Round(time.Second).String())
	}
	return strings.Join(parts, " ")
}

func channelDescription(channels int) string {
	switch channels {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	case 4:
		return "quad"
	case 6:
		return "5.1"
	case 8:
		return "7.1"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}
