package flac

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/flactag/internal/block"
	"github.com/simonhull/flactag/internal/types"
)

// audioOf returns the bytes that follow the metadata of the file at path.
func audioOf(t *testing.T, path string) []byte {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	return SkipMetadata(f)
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestReadFile(t *testing.T) {
	path := writeTemp(t, "song.flac", sampleFLAC())

	tag, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, path, tag.Path())
	title, _ := tag.Title()
	require.Equal(t, "Song", title)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.flac"))

	var ioErr *types.IOError
	require.ErrorAs(t, err, &ioErr)
	require.ErrorIs(t, err, types.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, int64(-1), ioErr.Offset)
}

func TestReadFile_NotFLAC(t *testing.T) {
	path := writeTemp(t, "song.mp3", []byte("ID3\x04\x00\x00\x00\x00\x00\x00"))

	_, err := ReadFile(path)
	require.ErrorIs(t, err, types.ErrNotFLAC)
	require.Contains(t, err.Error(), path)
}

func TestSave_PreservesAudio(t *testing.T) {
	path := writeTemp(t, "song.flac", sampleFLAC())

	tag, err := ReadFile(path)
	require.NoError(t, err)
	tag.SetTitle("New Title")
	tag.AddPicture("image/jpeg", types.PictureFrontCover, make([]byte, 8000))
	require.NoError(t, tag.Save())

	again, err := ReadFile(path)
	require.NoError(t, err)
	title, _ := again.Title()
	require.Equal(t, "New Title", title)
	_, ok := again.Picture(types.PictureFrontCover)
	require.True(t, ok)
	require.Equal(t, audioFrames, audioOf(t, path))

	require.Equal(t, []string{"song.flac"}, dirEntries(t, filepath.Dir(path)), "no temp files left behind")
}

func TestSave_NoPath(t *testing.T) {
	err := NewTag().Save()
	require.Error(t, err)
	require.True(t, errors.HasAssertionFailure(err), "got %v", err)
}

func TestSaveAs_NewPath(t *testing.T) {
	src := writeTemp(t, "src.flac", sampleFLAC())
	dst := filepath.Join(filepath.Dir(src), "copy.flac")

	tag, err := ReadFile(src)
	require.NoError(t, err)
	tag.SetArtist("Other")
	require.NoError(t, tag.SaveAs(dst))
	require.Equal(t, dst, tag.Path())

	require.Equal(t, audioFrames, audioOf(t, dst))
	orig, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, sampleFLAC(), orig, "source must not change")

	copied, err := ReadFile(dst)
	require.NoError(t, err)
	artist, _ := copied.Artist()
	require.Equal(t, "Other", artist)
	_, ok := copied.Get(KeyArtistSort)
	require.False(t, ok)
}

func TestSaveAs_FreshTag(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "tags-only.flac")

	tag := NewTag()
	tag.AddBlock(&block.StreamInfo{Data: streamInfoPayload()})
	tag.SetTitle("x")
	require.NoError(t, tag.SaveAs(dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	want, err := tag.Bytes()
	require.NoError(t, err)
	require.Equal(t, want, data)
}

func TestSave_Options(t *testing.T) {
	t.Run("backup", func(t *testing.T) {
		path := writeTemp(t, "song.flac", sampleFLAC())
		tag, err := ReadFile(path)
		require.NoError(t, err)
		tag.SetGenre("Jazz")

		require.NoError(t, tag.Save(WithBackup(".bak")))

		backup, err := os.ReadFile(path + ".bak")
		require.NoError(t, err)
		require.Equal(t, sampleFLAC(), backup)
		require.Equal(t, audioFrames, audioOf(t, path))
	})

	t.Run("validation", func(t *testing.T) {
		path := writeTemp(t, "song.flac", sampleFLAC())
		tag, err := ReadFile(path)
		require.NoError(t, err)
		tag.SetAlbum("Album")
		require.NoError(t, tag.Save(WithValidation()))
	})

	t.Run("preserve mod time", func(t *testing.T) {
		path := writeTemp(t, "song.flac", sampleFLAC())
		past := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
		require.NoError(t, os.Chtimes(path, past, past))

		tag, err := ReadFile(path)
		require.NoError(t, err)
		tag.SetTrack(1)
		require.NoError(t, tag.Save(WithPreserveModTime()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.True(t, info.ModTime().Equal(past), "mod time %v, want %v", info.ModTime(), past)
	})

	t.Run("padding", func(t *testing.T) {
		path := writeTemp(t, "song.flac", sampleFLAC())
		tag, err := ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, tag.Save(WithPadding(4096)))

		again, err := ReadFile(path)
		require.NoError(t, err)
		padding := again.BlocksWithType(block.TypePadding)
		require.Len(t, padding, 1)
		require.Equal(t, uint32(4096), padding[0].(*block.Padding).Size)
	})

	t.Run("lock", func(t *testing.T) {
		path := writeTemp(t, "song.flac", sampleFLAC())
		tag, err := ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, tag.Save(WithLock()))

		_, err = os.Stat(path + ".lock")
		require.NoError(t, err, "lock sidecar should exist")
		require.Equal(t, audioFrames, audioOf(t, path))
	})
}

func TestSave_KeepsPermissions(t *testing.T) {
	path := writeTemp(t, "song.flac", sampleFLAC())
	require.NoError(t, os.Chmod(path, 0o600))

	tag, err := ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, tag.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

func TestSave_EncodeFailureLeavesFile(t *testing.T) {
	path := writeTemp(t, "song.flac", sampleFLAC())
	tag, err := ReadFile(path)
	require.NoError(t, err)
	tag.AddBlock(&block.Unknown{Code: 200, Data: nil})

	err = tag.Save()
	require.ErrorIs(t, err, types.ErrFormat)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sampleFLAC(), data)
	require.Equal(t, []string{"song.flac"}, dirEntries(t, filepath.Dir(path)))
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 6)
	for i := range paths {
		paths[i] = filepath.Join(dir, string(rune('a'+i))+".flac")
		tag := mustRead(t, sampleFLAC())
		tag.SetTrack(uint32(i + 1))
		data, err := tag.Bytes()
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(paths[i], data, 0o644))
	}

	tags, err := ReadFiles(context.Background(), paths...)
	require.NoError(t, err)
	require.Len(t, tags, len(paths))
	for i, tag := range tags {
		require.Equal(t, paths[i], tag.Path())
		n, ok := tag.Track()
		require.True(t, ok)
		require.Equal(t, uint32(i+1), n)
	}
}

func TestReadFiles_Empty(t *testing.T) {
	tags, err := ReadFiles(context.Background())
	require.NoError(t, err)
	require.Nil(t, tags)
}

func TestReadFiles_Error(t *testing.T) {
	good := writeTemp(t, "good.flac", sampleFLAC())
	bad := writeTemp(t, "bad.flac", []byte("nope"))

	tags, err := ReadFiles(context.Background(), good, bad)
	require.ErrorIs(t, err, types.ErrNotFLAC)
	require.Nil(t, tags)
}

func TestReadFiles_Cancelled(t *testing.T) {
	path := writeTemp(t, "song.flac", sampleFLAC())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadFiles(ctx, path, path, path)
	require.ErrorIs(t, err, context.Canceled)
}
