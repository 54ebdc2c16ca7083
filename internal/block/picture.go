package block

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/simonhull/flactag/internal/binary"
	"github.com/simonhull/flactag/internal/types"
)

// Picture is an embedded image.
type Picture struct {
	PictureType types.PictureType
	MIMEType    string // "image/jpeg", "image/png", or "-->" for a URL in Data
	Description string

	// Dimensions and color information as declared by the writer.
	// Not checked against Data.
	Width  uint32
	Height uint32
	Depth  uint32
	Colors uint32 // for indexed-color images, 0 otherwise

	Data []byte
}

func (*Picture) Type() Type { return TypePicture }

// String returns a human-readable description of the picture.
//
// Example output: "Front cover (1200x1200 JPEG, 245KB)"
func (p *Picture) String() string {
	dims := ""
	if p.Width > 0 && p.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", p.Width, p.Height)
	}
	return fmt.Sprintf("%s (%s%s, %s)", p.PictureType, dims, mimeToFormat(p.MIMEType), formatSize(len(p.Data)))
}

// formatSize formats byte size in human-readable form.
func formatSize(n int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case n >= MB:
		return fmt.Sprintf("%.1fMB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%dKB", n/KB)
	default:
		return fmt.Sprintf("%dB", n)
	}
}

func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/tiff":
		return "TIFF"
	case "image/webp":
		return "WebP"
	case "-->":
		return "URL"
	default:
		return "Image"
	}
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (p *Picture) encodePayload() ([]byte, error) {
	if !isASCII([]byte(p.MIMEType)) {
		return nil, &types.FormatError{Offset: -1, Reason: fmt.Sprintf("picture MIME type %q is not ASCII", p.MIMEType)}
	}
	if !utf8.ValidString(p.Description) {
		return nil, &types.FormatError{Offset: -1, Reason: "picture description is not valid UTF-8"}
	}

	var buf bytes.Buffer
	buf.Grow(32 + len(p.MIMEType) + len(p.Description) + len(p.Data))
	sw := binary.NewSafeWriter(&buf)

	var err error
	u32 := func(v uint32, what string) {
		if err == nil {
			err = binary.Write(sw, v, what)
		}
	}
	raw := func(b []byte, what string) {
		if err == nil {
			err = sw.WriteBytes(b, what)
		}
	}

	u32(uint32(p.PictureType), "picture type")
	u32(uint32(len(p.MIMEType)), "MIME type length")
	raw([]byte(p.MIMEType), "MIME type")
	u32(uint32(len(p.Description)), "description length")
	raw([]byte(p.Description), "description")
	u32(p.Width, "width")
	u32(p.Height, "height")
	u32(p.Depth, "color depth")
	u32(p.Colors, "color count")
	u32(uint32(len(p.Data)), "picture data length")
	raw(p.Data, "picture data")
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodePicture parses a PICTURE payload. All integers are big-endian.
func decodePicture(payload []byte, offset int64) (Block, error) {
	cr := binary.NewChainReader(binary.NewBytesReader(payload, offset))

	p := &Picture{}
	p.PictureType = types.PictureType(binary.ReadChained[uint32](cr, "picture type"))

	mimeLen := binary.ReadChained[uint32](cr, "MIME type length")
	mimeAt := cr.Offset()
	mime := cr.Bytes(int64(mimeLen), "MIME type")
	if cr.Error() == nil && !isASCII(mime) {
		cr.Fail(&types.FormatError{Offset: mimeAt, Reason: "picture MIME type is not ASCII"})
	}
	p.MIMEType = string(mime)

	descLen := binary.ReadChained[uint32](cr, "description length")
	descAt := cr.Offset()
	desc := cr.Bytes(int64(descLen), "description")
	if cr.Error() == nil && !utf8.Valid(desc) {
		cr.Fail(&types.FormatError{Offset: descAt, Reason: "picture description is not valid UTF-8"})
	}
	p.Description = string(desc)

	p.Width = binary.ReadChained[uint32](cr, "width")
	p.Height = binary.ReadChained[uint32](cr, "height")
	p.Depth = binary.ReadChained[uint32](cr, "color depth")
	p.Colors = binary.ReadChained[uint32](cr, "color count")

	dataLen := binary.ReadChained[uint32](cr, "picture data length")
	p.Data = cr.Bytes(int64(dataLen), "picture data")

	if err := cr.Error(); err != nil {
		return nil, err
	}
	if rest := cr.Remaining(); rest > 0 {
		return nil, &types.FormatError{
			Offset: cr.Offset(),
			Reason: fmt.Sprintf("%d trailing bytes after picture data", rest),
		}
	}
	return p, nil
}

func init() {
	decoders.Register(TypePicture, decodePicture)
}
