package flac

import (
	"io"
)

// IsCandidate reports whether r starts with the FLAC stream marker.
// It consumes up to four bytes of r.
func IsCandidate(r io.Reader) bool {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return false
	}
	return string(magic[:]) == Magic
}

// SkipMetadata returns the bytes that follow the metadata region of r,
// which must be positioned at the start of the stream.
//
// Only block headers are read; payloads are seeked over. If r does not
// start with the stream marker, everything from the start is returned.
// If the walk fails part-way (a read or seek error, or a block running
// past the end of the stream) everything from the start of the failing
// header is returned, so no byte the scanner could not account for is
// dropped. SkipMetadata never fails; if even the fallback read fails it
// returns nil.
func SkipMetadata(r io.ReadSeeker) []byte {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return readRest(r)
	}
	end := int64(-1)
	if n, err := r.Seek(0, io.SeekEnd); err == nil {
		end = n
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil
	}

	if !IsCandidate(r) {
		return restFrom(r, start)
	}

	pos := start + int64(len(Magic))
	for {
		var header [4]byte
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return restFrom(r, pos)
		}
		length := int64(header[1])<<16 | int64(header[2])<<8 | int64(header[3])
		next := pos + int64(len(header)) + length
		if end >= 0 && next > end {
			return restFrom(r, pos)
		}
		if _, err := r.Seek(length, io.SeekCurrent); err != nil {
			return restFrom(r, pos)
		}
		pos = next
		if header[0]&0x80 != 0 {
			return readRest(r)
		}
	}
}

func restFrom(r io.ReadSeeker, pos int64) []byte {
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return nil
	}
	return readRest(r)
}

func readRest(r io.Reader) []byte {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	return data
}
