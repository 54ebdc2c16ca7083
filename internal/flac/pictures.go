package flac

import (
	"slices"

	"github.com/simonhull/flactag/internal/block"
	"github.com/simonhull/flactag/internal/types"
)

// Pictures returns every picture block in block order.
func (t *Tag) Pictures() []*block.Picture {
	var out []*block.Picture
	for _, b := range t.blocks {
		if p, ok := b.(*block.Picture); ok {
			out = append(out, p)
		}
	}
	return out
}

// Picture returns the first picture of the given type.
func (t *Tag) Picture(typ types.PictureType) (*block.Picture, bool) {
	for _, p := range t.Pictures() {
		if p.PictureType == typ {
			return p, true
		}
	}
	return nil, false
}

// AddPicture appends a picture of the given type, replacing any existing
// picture of that type.
func (t *Tag) AddPicture(mimeType string, typ types.PictureType, data []byte) {
	t.RemovePictureType(typ)
	t.AddBlock(&block.Picture{PictureType: typ, MIMEType: mimeType, Data: data})
}

// RemovePictureType removes every picture of the given type.
func (t *Tag) RemovePictureType(typ types.PictureType) {
	t.blocks = slices.DeleteFunc(t.blocks, func(b block.Block) bool {
		p, ok := b.(*block.Picture)
		return ok && p.PictureType == typ
	})
}

// SetPicture replaces every picture with a single one of type Other.
func (t *Tag) SetPicture(mimeType string, data []byte) {
	t.RemovePictures()
	t.AddPicture(mimeType, types.PictureOther, data)
}

// RemovePictures removes every picture block.
func (t *Tag) RemovePictures() {
	t.RemoveBlocksWithType(block.TypePicture)
}
