package block

import (
	"fmt"
	"io"

	"github.com/simonhull/flactag/internal/binary"
	"github.com/simonhull/flactag/internal/types"
)

// Decoder reads consecutive metadata blocks from a stream and keeps track
// of the stream offset so errors can point at the failing block.
type Decoder struct {
	r *binary.Reader
}

// NewDecoder returns a Decoder reading from r. base is the absolute offset
// of r's first byte; it is 4 when r is positioned just after "fLaC".
func NewDecoder(r io.Reader, base int64) *Decoder {
	return &Decoder{r: binary.NewReader(r, base)}
}

// Offset returns the absolute offset of the next block header.
func (d *Decoder) Offset() int64 {
	return d.r.Offset()
}

// Decode reads one block header and its payload.
//
// A stream that ends before the declared length is satisfied yields a
// *types.FormatError; any other read failure yields a *types.IOError.
func (d *Decoder) Decode() (last bool, b Block, err error) {
	header, err := binary.Read[uint8](d.r, "block header")
	if err != nil {
		return false, nil, err
	}
	length, err := binary.ReadUint24(d.r, "block length")
	if err != nil {
		return false, nil, err
	}

	last = header&lastFlag != 0
	typ := Type(header & typeMask)

	// Padding content is insignificant; skip it rather than buffer it.
	if typ == TypePadding {
		if err := d.r.Skip(int64(length), "padding"); err != nil {
			return false, nil, err
		}
		return last, &Padding{Size: length}, nil
	}

	offset := d.r.Offset()
	payload, err := d.r.ReadBytes(int64(length), typ.String()+" payload")
	if err != nil {
		return false, nil, err
	}

	decode, ok := decoders.Get(typ)
	if !ok {
		return last, &Unknown{Code: typ, Data: payload}, nil
	}
	b, err = decode(payload, offset)
	if err != nil {
		return false, nil, err
	}
	return last, b, nil
}

// Decode reads one block from r. See Decoder.Decode.
func Decode(r io.Reader) (last bool, b Block, err error) {
	return NewDecoder(r, 0).Decode()
}

// Encode writes b to w with the given last-block flag.
//
// The payload is encoded before anything is written, so a payload that
// cannot be encoded or does not fit the 24-bit length field leaves w
// untouched and yields a *types.FormatError. Write failures yield a
// *types.IOError.
func Encode(w io.Writer, last bool, b Block) error {
	typ := b.Type()
	if typ > typeMask {
		return &types.FormatError{Offset: -1, Reason: fmt.Sprintf("block type %d does not fit in 7 bits", typ)}
	}

	payload, err := b.encodePayload()
	if err != nil {
		return err
	}
	if len(payload) > MaxPayloadSize {
		return payloadTooLarge(typ, len(payload))
	}

	header := uint8(typ)
	if last {
		header |= lastFlag
	}

	sw := binary.NewSafeWriter(w)
	if err := binary.Write(sw, header, "block header"); err != nil {
		return err
	}
	if err := binary.WriteUint24(sw, uint32(len(payload)), "block length"); err != nil {
		return err
	}
	return sw.WriteBytes(payload, typ.String()+" payload")
}

// EncodedSize returns the number of bytes Encode would write for b,
// header included.
func EncodedSize(b Block) (int, error) {
	if p, ok := b.(*Padding); ok {
		if p.Size > MaxPayloadSize {
			return 0, p.tooLarge()
		}
		return headerSize + int(p.Size), nil
	}
	payload, err := b.encodePayload()
	if err != nil {
		return 0, err
	}
	if len(payload) > MaxPayloadSize {
		return 0, payloadTooLarge(b.Type(), len(payload))
	}
	return headerSize + len(payload), nil
}

func payloadTooLarge(typ Type, n int) error {
	return &types.FormatError{
		Offset: -1,
		Reason: fmt.Sprintf("%s payload of %d bytes exceeds the %d byte limit", typ, n, MaxPayloadSize),
	}
}
