package flac

import "strconv"

// Well-known comment keys.
const (
	KeyTitle           = "TITLE"
	KeyTitleSort       = "TITLESORT"
	KeyArtist          = "ARTIST"
	KeyArtistSort      = "ARTISTSORT"
	KeyAlbum           = "ALBUM"
	KeyAlbumSort       = "ALBUMSORT"
	KeyAlbumArtist     = "ALBUMARTIST"
	KeyAlbumArtistSort = "ALBUMARTISTSORT"
	KeyGenre           = "GENRE"
	KeyTrackNumber     = "TRACKNUMBER"
	KeyTotalTracks     = "TOTALTRACKS"
	KeyLyrics          = "LYRICS"
)

// setSorted sets key and drops its sort companion, which would otherwise
// describe the old value.
func (t *Tag) setSorted(key, sortKey, value string) {
	t.RemoveKey(sortKey)
	t.Set(key, value)
}

func (t *Tag) removeSorted(key, sortKey string) {
	t.RemoveKey(sortKey)
	t.RemoveKey(key)
}

func (t *Tag) number(key string) (uint32, bool) {
	s, ok := t.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Typed accessors read and write well-known keys through Get, Set and
// RemoveKey. Setting or removing TITLE, ARTIST, ALBUM or ALBUMARTIST also
// removes the matching *SORT key.

func (t *Tag) Title() (string, bool) { return t.Get(KeyTitle) }
func (t *Tag) SetTitle(v string)     { t.setSorted(KeyTitle, KeyTitleSort, v) }
func (t *Tag) RemoveTitle()          { t.removeSorted(KeyTitle, KeyTitleSort) }

func (t *Tag) Artist() (string, bool) { return t.Get(KeyArtist) }
func (t *Tag) SetArtist(v string)     { t.setSorted(KeyArtist, KeyArtistSort, v) }
func (t *Tag) RemoveArtist()          { t.removeSorted(KeyArtist, KeyArtistSort) }

func (t *Tag) Album() (string, bool) { return t.Get(KeyAlbum) }
func (t *Tag) SetAlbum(v string)     { t.setSorted(KeyAlbum, KeyAlbumSort, v) }
func (t *Tag) RemoveAlbum()          { t.removeSorted(KeyAlbum, KeyAlbumSort) }

func (t *Tag) AlbumArtist() (string, bool) { return t.Get(KeyAlbumArtist) }
func (t *Tag) SetAlbumArtist(v string)     { t.setSorted(KeyAlbumArtist, KeyAlbumArtistSort, v) }
func (t *Tag) RemoveAlbumArtist()          { t.removeSorted(KeyAlbumArtist, KeyAlbumArtistSort) }

func (t *Tag) Genre() (string, bool) { return t.Get(KeyGenre) }
func (t *Tag) SetGenre(v string)     { t.Set(KeyGenre, v) }
func (t *Tag) RemoveGenre()          { t.RemoveKey(KeyGenre) }

func (t *Tag) Lyrics() (string, bool) { return t.Get(KeyLyrics) }
func (t *Tag) SetLyrics(v string)     { t.Set(KeyLyrics, v) }
func (t *Tag) RemoveLyrics()          { t.RemoveKey(KeyLyrics) }

// Track returns the track number. The boolean is false if it is absent or
// not a single unsigned number.
func (t *Tag) Track() (uint32, bool) { return t.number(KeyTrackNumber) }
func (t *Tag) SetTrack(n uint32)     { t.Set(KeyTrackNumber, strconv.FormatUint(uint64(n), 10)) }

// RemoveTrack removes the track number and the total track count.
func (t *Tag) RemoveTrack() {
	t.RemoveKey(KeyTrackNumber)
	t.RemoveKey(KeyTotalTracks)
}

func (t *Tag) TotalTracks() (uint32, bool) { return t.number(KeyTotalTracks) }
func (t *Tag) SetTotalTracks(n uint32)     { t.Set(KeyTotalTracks, strconv.FormatUint(uint64(n), 10)) }
func (t *Tag) RemoveTotalTracks()          { t.RemoveKey(KeyTotalTracks) }
