package block

import (
	"github.com/simonhull/flactag/internal/types"
)

// StreamInfo holds the STREAMINFO payload verbatim. Info decodes it.
type StreamInfo struct {
	Data []byte
}

func (*StreamInfo) Type() Type { return TypeStreamInfo }

func (s *StreamInfo) encodePayload() ([]byte, error) { return s.Data, nil }

// Application is a block owned by a third-party application, identified
// by a registered 4-byte id.
type Application struct {
	ID   [4]byte
	Data []byte
}

func (*Application) Type() Type { return TypeApplication }

func (a *Application) encodePayload() ([]byte, error) {
	payload := make([]byte, 0, len(a.ID)+len(a.Data))
	payload = append(payload, a.ID[:]...)
	return append(payload, a.Data...), nil
}

// SeekTable holds the SEEKTABLE payload verbatim.
type SeekTable struct {
	Data []byte
}

func (*SeekTable) Type() Type { return TypeSeekTable }

func (s *SeekTable) encodePayload() ([]byte, error) { return s.Data, nil }

// Points returns the number of 18-byte seek points in the table.
func (s *SeekTable) Points() int { return len(s.Data) / 18 }

// Unknown is a block of a type this package does not decode, kept with
// its original type code.
type Unknown struct {
	Code Type
	Data []byte
}

func (u *Unknown) Type() Type { return u.Code }

func (u *Unknown) encodePayload() ([]byte, error) { return u.Data, nil }

func decodeStreamInfo(payload []byte, _ int64) (Block, error) {
	return &StreamInfo{Data: payload}, nil
}

func decodeApplication(payload []byte, offset int64) (Block, error) {
	if len(payload) < 4 {
		return nil, &types.FormatError{Offset: offset, Reason: "APPLICATION block shorter than its 4-byte id"}
	}
	a := &Application{Data: payload[4:]}
	copy(a.ID[:], payload)
	return a, nil
}

func decodeSeekTable(payload []byte, _ int64) (Block, error) {
	return &SeekTable{Data: payload}, nil
}

func decodeCueSheet(payload []byte, _ int64) (Block, error) {
	return &CueSheet{Data: payload}, nil
}

func init() {
	decoders.Register(TypeStreamInfo, decodeStreamInfo)
	decoders.Register(TypeApplication, decodeApplication)
	decoders.Register(TypeSeekTable, decodeSeekTable)
	decoders.Register(TypeCueSheet, decodeCueSheet)
}
