// Command flactag inspects and edits the metadata of FLAC files.
//
// Usage:
//
//	flactag dump song.flac
//	flactag get song.flac TITLE
//	flactag set song.flac TITLE="New Title" GENRE=Jazz GENRE=Fusion
//	flactag remove song.flac COMMENT GENRE=Fusion
//	flactag picture song.flac cover.jpg --type 3
//	flactag export-picture song.flac cover.jpg
//	flactag info *.flac
//	flactag config init
//
// Save behavior (backups, validation, padding) comes from the TOML file
// at $XDG_CONFIG_HOME/flactag/config.toml or --config.
package main
