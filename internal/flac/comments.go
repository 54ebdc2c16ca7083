package flac

import (
	"strings"

	"github.com/simonhull/flactag/internal/block"
	"github.com/simonhull/flactag/internal/vorbis"
)

// VorbisComments returns every comment block in block order. The result is
// empty if the tag has none.
func (t *Tag) VorbisComments() []*block.VorbisComment {
	var out []*block.VorbisComment
	for _, b := range t.blocks {
		if vc, ok := b.(*block.VorbisComment); ok {
			out = append(out, vc)
		}
	}
	return out
}

// VorbisCommentsMut returns every comment block in block order, first
// appending an empty one if the tag has none. The result is never empty.
func (t *Tag) VorbisCommentsMut() []*block.VorbisComment {
	out := t.VorbisComments()
	if len(out) == 0 {
		vc := block.NewVorbisComment("")
		t.AddBlock(vc)
		out = append(out, vc)
	}
	for _, vc := range out {
		if vc.Comments == nil {
			vc.Comments = vorbis.New("")
		}
	}
	return out
}

// Values returns every value stored under key across all comment blocks,
// in block order and then entry order. Keys match exactly.
func (t *Tag) Values(key string) []string {
	var values []string
	for _, vc := range t.VorbisComments() {
		if vc.Comments == nil {
			continue
		}
		values = append(values, vc.Get(key)...)
	}
	return values
}

// Get returns the values of key joined with ", ". The boolean is false if
// no comment block holds a value for key.
func (t *Tag) Get(key string) (string, bool) {
	values := t.Values(key)
	if len(values) == 0 {
		return "", false
	}
	return strings.Join(values, ", "), true
}

// Set replaces the values of key in the first comment block, creating the
// block if needed. Other comment blocks are not touched.
func (t *Tag) Set(key string, values ...string) {
	t.VorbisCommentsMut()[0].Set(key, values...)
}

// RemoveKey removes key from every comment block.
func (t *Tag) RemoveKey(key string) {
	for _, vc := range t.VorbisCommentsMut() {
		vc.Remove(key)
	}
}

// RemoveKeyValue removes the entries of key whose value equals value from
// every comment block. Other values of key are kept.
func (t *Tag) RemoveKeyValue(key, value string) {
	for _, vc := range t.VorbisCommentsMut() {
		vc.RemoveValue(key, value)
	}
}

// AllMetadata returns one (key, joined values) pair per key per comment
// block, keys in first-occurrence order.
func (t *Tag) AllMetadata() [][2]string {
	var out [][2]string
	for _, vc := range t.VorbisComments() {
		if vc.Comments == nil {
			continue
		}
		for _, key := range vc.Keys() {
			out = append(out, [2]string{key, strings.Join(vc.Get(key), ", ")})
		}
	}
	return out
}
