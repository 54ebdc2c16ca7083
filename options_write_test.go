package flactag_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/simonhull/flactag"
)

func TestSaveOptions(t *testing.T) {
	t.Run("no options", func(t *testing.T) {
		path := writeSample(t, t.TempDir(), "song.flac")
		tag, err := flactag.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, tag.Save())

		_, err = os.Stat(path + ".bak")
		require.True(t, os.IsNotExist(err), "no backup without WithBackup")
	})

	t.Run("all options combined", func(t *testing.T) {
		path := writeSample(t, t.TempDir(), "song.flac")
		original, err := os.ReadFile(path)
		require.NoError(t, err)
		past := time.Date(2010, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, os.Chtimes(path, past, past))

		tag, err := flactag.ReadFile(path)
		require.NoError(t, err)
		tag.SetAlbum("Album")

		err = tag.Save(
			flactag.WithBackup(".backup"),
			flactag.WithValidation(),
			flactag.WithPreserveModTime(),
			flactag.WithLock(),
			flactag.WithPadding(1024),
		)
		require.NoError(t, err)

		backup, err := os.ReadFile(path + ".backup")
		require.NoError(t, err)
		require.Equal(t, original, backup)

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.True(t, info.ModTime().Equal(past))

		again, err := flactag.ReadFile(path)
		require.NoError(t, err)
		padding := again.BlocksWithType(flactag.TypePadding)
		require.Len(t, padding, 1)
		require.Equal(t, uint32(1024), padding[0].(*flactag.Padding).Size)
	})
}
