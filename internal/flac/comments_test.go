package flac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simonhull/flactag/internal/block"
)

// twoCommentBlocks returns a tag whose comments are split over two blocks.
func twoCommentBlocks() *Tag {
	tag := NewTag()
	first := block.NewVorbisComment("first")
	first.Add("ARTIST", "A")
	first.Add("TITLE", "Song")
	second := block.NewVorbisComment("second")
	second.Add("ARTIST", "B")
	second.Add("GENRE", "Rock")
	tag.AddBlock(first)
	tag.AddBlock(&block.Padding{Size: 8})
	tag.AddBlock(second)
	return tag
}

func TestGet_AcrossBlocks(t *testing.T) {
	tag := twoCommentBlocks()

	got, ok := tag.Get("ARTIST")
	require.True(t, ok)
	require.Equal(t, "A, B", got)
	require.Equal(t, []string{"A", "B"}, tag.Values("ARTIST"))

	_, ok = tag.Get("artist")
	require.False(t, ok, "keys should match exactly")
	_, ok = tag.Get("COMPOSER")
	require.False(t, ok)
}

func TestSet_FirstBlockOnly(t *testing.T) {
	tag := twoCommentBlocks()
	tag.Set("ARTIST", "C")

	got, _ := tag.Get("ARTIST")
	require.Equal(t, "C, B", got)

	vcs := tag.VorbisComments()
	require.Equal(t, []string{"ARTIST", "TITLE"}, vcs[0].Keys(), "replacement keeps the key's position")
}

func TestSet_CreatesBlock(t *testing.T) {
	tag := NewTag()
	tag.AddBlock(&block.StreamInfo{Data: streamInfoPayload()})
	require.Empty(t, tag.VorbisComments())

	tag.Set("TITLE", "One", "Two")

	vcs := tag.VorbisComments()
	require.Len(t, vcs, 1)
	require.Equal(t, []string{"One", "Two"}, vcs[0].Get("TITLE"))
	require.Equal(t, []int{1}, tag.VorbisCommentIndices())
}

func TestSet_NoValuesRemovesKey(t *testing.T) {
	tag := twoCommentBlocks()
	tag.Set("TITLE")

	_, ok := tag.Get("TITLE")
	require.False(t, ok)
}

func TestRemoveKey(t *testing.T) {
	tag := twoCommentBlocks()
	tag.RemoveKey("ARTIST")

	_, ok := tag.Get("ARTIST")
	require.False(t, ok)
	genre, _ := tag.Get("GENRE")
	require.Equal(t, "Rock", genre)
}

func TestRemoveKey_EmptyTagCreatesBlock(t *testing.T) {
	tag := NewTag()
	tag.RemoveKey("TITLE")
	require.Len(t, tag.VorbisComments(), 1)
}

func TestRemoveKeyValue(t *testing.T) {
	tag := NewTag()
	tag.Set("GENRE", "Rock", "Jazz", "Rock")
	tag.RemoveKeyValue("GENRE", "Rock")

	require.Equal(t, []string{"Jazz"}, tag.Values("GENRE"))

	tag.RemoveKeyValue("GENRE", "Blues")
	require.Equal(t, []string{"Jazz"}, tag.Values("GENRE"))
}

func TestVorbisCommentsMut_NilComments(t *testing.T) {
	tag := NewTag()
	tag.AddBlock(&block.VorbisComment{})

	vcs := tag.VorbisCommentsMut()
	require.Len(t, vcs, 1)
	require.NotNil(t, vcs[0].Comments)

	vcs[0].Add("TITLE", "x")
	title, _ := tag.Title()
	require.Equal(t, "x", title)
}

func TestAllMetadata(t *testing.T) {
	tag := twoCommentBlocks()
	tag.VorbisComments()[0].Add("ARTIST", "A2")

	want := [][2]string{
		{"ARTIST", "A, A2"},
		{"TITLE", "Song"},
		{"ARTIST", "B"},
		{"GENRE", "Rock"},
	}
	require.Equal(t, want, tag.AllMetadata())
	require.Empty(t, NewTag().AllMetadata())
}
