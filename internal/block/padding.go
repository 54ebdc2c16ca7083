package block

import (
	"fmt"

	"github.com/simonhull/flactag/internal/types"
)

// Padding reserves Size bytes of space for later in-place growth.
// Its content is written as zeros and ignored on read.
type Padding struct {
	Size uint32
}

func (*Padding) Type() Type { return TypePadding }

func (p *Padding) encodePayload() ([]byte, error) {
	if p.Size > MaxPayloadSize {
		return nil, p.tooLarge()
	}
	return make([]byte, p.Size), nil
}

func (p *Padding) tooLarge() error {
	return &types.FormatError{
		Offset: -1,
		Reason: fmt.Sprintf("padding of %d bytes exceeds the %d byte limit", p.Size, MaxPayloadSize),
	}
}
