package block

import "github.com/simonhull/flactag/internal/vorbis"

// VorbisComment is a VORBIS_COMMENT block: a vendor string and an ordered
// list of KEY=VALUE entries.
type VorbisComment struct {
	*vorbis.Comments
}

// NewVorbisComment returns an empty comment block with the given vendor.
func NewVorbisComment(vendor string) *VorbisComment {
	return &VorbisComment{Comments: vorbis.New(vendor)}
}

func (*VorbisComment) Type() Type { return TypeVorbisComment }

func (v *VorbisComment) encodePayload() ([]byte, error) {
	if v.Comments == nil {
		return (&vorbis.Comments{}).Encode()
	}
	return v.Comments.Encode()
}

func decodeVorbisComment(payload []byte, offset int64) (Block, error) {
	c, err := vorbis.Decode(payload, offset)
	if err != nil {
		return nil, err
	}
	return &VorbisComment{Comments: c}, nil
}

func init() {
	decoders.Register(TypeVorbisComment, decodeVorbisComment)
}
