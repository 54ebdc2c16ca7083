package flac

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// rawBlock assembles a block header and payload by hand.
func rawBlock(last bool, typ byte, payload []byte) []byte {
	header := typ
	if last {
		header |= 0x80
	}
	n := len(payload)
	out := []byte{header, byte(n >> 16), byte(n >> 8), byte(n)}
	return append(out, payload...)
}

// streamInfoPayload returns a 34-byte STREAMINFO payload for 1 second of
// 44.1kHz 16-bit stereo.
func streamInfoPayload() []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint16(4096))
	binary.Write(buf, binary.BigEndian, uint16(4096))
	buf.Write([]byte{0x00, 0x00, 0x10, 0x00, 0x20, 0x00})
	packed := uint64(44100)<<44 | uint64(1)<<41 | uint64(15)<<36 | uint64(44100)
	binary.Write(buf, binary.BigEndian, packed)
	buf.Write(make([]byte, 16))
	return buf.Bytes()
}

func vorbisPayload(vendor string, entries ...string) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(len(vendor)))
	buf.WriteString(vendor)
	binary.Write(buf, binary.LittleEndian, uint32(len(entries)))
	for _, e := range entries {
		binary.Write(buf, binary.LittleEndian, uint32(len(e)))
		buf.WriteString(e)
	}
	return buf.Bytes()
}

// audioFrames stands in for the audio that follows the metadata. It starts
// with a frame sync code so it cannot be mistaken for a block header.
var audioFrames = append([]byte{0xFF, 0xF8, 0x69, 0x18}, bytes.Repeat([]byte{0x5A}, 1000)...)

// buildFLAC concatenates the stream marker, the given blocks and audio.
func buildFLAC(audio []byte, blocks ...[]byte) []byte {
	out := []byte(Magic)
	for _, b := range blocks {
		out = append(out, b...)
	}
	return append(out, audio...)
}

// sampleFLAC is a typical file: STREAMINFO, comments, padding, audio.
func sampleFLAC() []byte {
	return buildFLAC(audioFrames,
		rawBlock(false, 0, streamInfoPayload()),
		rawBlock(false, 4, vorbisPayload("reference libFLAC 1.4.3",
			"TITLE=Song", "ARTIST=Band", "ARTISTSORT=Band, The")),
		rawBlock(true, 1, make([]byte, 64)),
	)
}

// writeTemp writes data to a file in a fresh temporary directory.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func mustRead(t *testing.T, data []byte) *Tag {
	t.Helper()
	tag, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	return tag
}

func typesOf(tag *Tag) []string {
	names := make([]string, len(tag.Blocks()))
	for i, b := range tag.Blocks() {
		names[i] = b.Type().String()
	}
	return names
}

// picturePayload builds a PICTURE payload with no description or
// dimensions.
func picturePayload(typ uint32, mime string, data []byte) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, typ)
	binary.Write(buf, binary.BigEndian, uint32(len(mime)))
	buf.WriteString(mime)
	binary.Write(buf, binary.BigEndian, uint32(0))
	for _, v := range []uint32{0, 0, 0, 0, uint32(len(data))} {
		binary.Write(buf, binary.BigEndian, v)
	}
	buf.Write(data)
	return buf.Bytes()
}
