// Package flactag reads and edits the metadata of FLAC files.
//
// A FLAC stream starts with the marker "fLaC" followed by a sequence of
// metadata blocks (STREAMINFO, PADDING, APPLICATION, SEEKTABLE,
// VORBIS_COMMENT, CUESHEET, PICTURE) and then the audio frames. flactag
// decodes and encodes that block sequence byte for byte, keeps blocks of
// unknown types verbatim, and offers comment and picture views over it.
// Audio frames are never decoded; a rewrite carries them over unchanged.
//
// # Quick Start
//
// Reading tags:
//
//	tag, err := flactag.ReadFile("song.flac")
//	if err != nil {
//		log.Fatal(err)
//	}
//	title, _ := tag.Title()
//	artist, _ := tag.Artist()
//	fmt.Printf("%s - %s\n", artist, title)
//
// Editing and saving:
//
//	tag.SetTitle("New Title")
//	tag.Set("GENRE", "Jazz", "Fusion")
//	if err := tag.Save(flactag.WithBackup(".bak")); err != nil {
//		log.Fatal(err)
//	}
//
// Or in one call:
//
//	err := flactag.Edit("song.flac", func(tag *flactag.Tag) error {
//		tag.SetArtist("Someone")
//		return nil
//	})
//
// # Block Order
//
// Writing normalizes the tag: all padding is merged into one block, then
// STREAMINFO is written first, padding last, and every other block keeps
// its relative order. The final block carries the last-block flag.
//
// # Saving
//
// Save writes the new metadata and the existing audio to a temporary file
// in the same directory, syncs it, and renames it over the original. A
// crash at any point leaves either the old file or the new one, never a
// truncated mix. See SaveOption for backups, validation and locking.
//
// # Error Handling
//
// Malformed or truncated metadata yields a *FormatError carrying the
// stream offset of the bad data; errors.Is(err, ErrFormat) matches every
// such error. Failures of the underlying reader or writer yield an
// *IOError matching ErrIO. A stream without the "fLaC" marker yields
// ErrNotFLAC.
//
// # Logging
//
// The library is silent by default. Pass WithLogger when reading, or call
// Tag.SetLogger, to receive debug events about block ordering and file
// replacement through log/slog.
package flactag
