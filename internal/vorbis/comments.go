// Package vorbis implements the Vorbis comment model shared by FLAC
// VORBIS_COMMENT blocks.
//
// A comment block is a vendor string followed by an ordered list of UTF-8
// "KEY=VALUE" entries. Keys may repeat; each key's values keep their order
// and the block keeps a single flat entry order across all keys.
package vorbis

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/simonhull/flactag/internal/binary"
	"github.com/simonhull/flactag/internal/types"
)

// Comment is a single KEY=VALUE entry.
type Comment struct {
	Key   string
	Value string
}

// String returns the entry in its wire form.
func (c Comment) String() string {
	return c.Key + "=" + c.Value
}

// Comments holds a vendor string and an ordered list of entries.
// The zero value is an empty comment list with no vendor.
type Comments struct {
	Vendor  string
	entries []Comment
}

// New returns an empty comment list with the given vendor string.
func New(vendor string) *Comments {
	return &Comments{Vendor: vendor}
}

// ParseEntry splits a raw entry at its first '='.
// offset is reported in the FormatError when the entry is malformed.
func ParseEntry(raw []byte, offset int64) (Comment, error) {
	if !utf8.Valid(raw) {
		return Comment{}, &types.FormatError{Offset: offset, Reason: "vorbis comment is not valid UTF-8"}
	}
	key, value, ok := strings.Cut(string(raw), "=")
	if !ok {
		return Comment{}, &types.FormatError{
			Offset: offset,
			Reason: fmt.Sprintf("vorbis comment %q has no '=' separator", truncate(string(raw))),
		}
	}
	return Comment{Key: key, Value: value}, nil
}

func truncate(s string) string {
	const limit = 32
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// Decode parses a VORBIS_COMMENT payload whose first byte sits at the
// absolute offset base. A malformed entry rejects the whole block.
func Decode(payload []byte, base int64) (*Comments, error) {
	r := binary.NewBytesReader(payload, base)

	vendorLen, err := binary.ReadLE[uint32](r, "vendor length")
	if err != nil {
		return nil, err
	}
	vendorAt := r.Offset()
	vendor, err := r.ReadBytes(int64(vendorLen), "vendor string")
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(vendor) {
		return nil, &types.FormatError{Offset: vendorAt, Reason: "vendor string is not valid UTF-8"}
	}

	countAt := r.Offset()
	count, err := binary.ReadLE[uint32](r, "comment count")
	if err != nil {
		return nil, err
	}
	// Every entry needs at least its 4-byte length prefix.
	if int64(count) > r.Remaining()/4 {
		return nil, &types.FormatError{
			Offset: countAt,
			Reason: fmt.Sprintf("comment count %d does not fit in %d remaining bytes", count, r.Remaining()),
		}
	}

	c := &Comments{Vendor: string(vendor), entries: make([]Comment, 0, count)}
	for i := range count {
		n, err := binary.ReadLE[uint32](r, "comment length")
		if err != nil {
			return nil, err
		}
		at := r.Offset()
		raw, err := r.ReadBytes(int64(n), fmt.Sprintf("comment %d", i))
		if err != nil {
			return nil, err
		}
		entry, err := ParseEntry(raw, at)
		if err != nil {
			return nil, err
		}
		c.entries = append(c.entries, entry)
	}

	if rest := r.Remaining(); rest > 0 {
		return nil, &types.FormatError{
			Offset: r.Offset(),
			Reason: fmt.Sprintf("%d trailing bytes after last vorbis comment", rest),
		}
	}
	return c, nil
}

// Encode serializes the comment list to its payload form.
func (c *Comments) Encode() ([]byte, error) {
	if !utf8.ValidString(c.Vendor) {
		return nil, &types.FormatError{Offset: -1, Reason: "vendor string is not valid UTF-8"}
	}
	for _, e := range c.entries {
		if strings.Contains(e.Key, "=") {
			return nil, &types.FormatError{Offset: -1, Reason: fmt.Sprintf("vorbis comment key %q contains '='", e.Key)}
		}
		if !utf8.ValidString(e.Key) || !utf8.ValidString(e.Value) {
			return nil, &types.FormatError{Offset: -1, Reason: fmt.Sprintf("vorbis comment %q is not valid UTF-8", e.Key)}
		}
	}

	var buf bytes.Buffer
	sw := binary.NewSafeWriter(&buf)
	if err := binary.WriteLE(sw, uint32(len(c.Vendor)), "vendor length"); err != nil {
		return nil, err
	}
	if err := sw.WriteString(c.Vendor, "vendor string"); err != nil {
		return nil, err
	}
	if err := binary.WriteLE(sw, uint32(len(c.entries)), "comment count"); err != nil {
		return nil, err
	}
	for _, e := range c.entries {
		entry := e.String()
		if err := binary.WriteLE(sw, uint32(len(entry)), "comment length"); err != nil {
			return nil, err
		}
		if err := sw.WriteString(entry, "comment"); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Len returns the number of entries.
func (c *Comments) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in order.
func (c *Comments) Entries() []Comment {
	return slices.Clone(c.entries)
}

// Has reports whether any entry uses key.
func (c *Comments) Has(key string) bool {
	return slices.ContainsFunc(c.entries, func(e Comment) bool { return e.Key == key })
}

// Get returns the values stored under key, in entry order.
// Keys are matched exactly; the result is nil when key is absent.
func (c *Comments) Get(key string) []string {
	var values []string
	for _, e := range c.entries {
		if e.Key == key {
			values = append(values, e.Value)
		}
	}
	return values
}

// Keys returns the distinct keys in first-occurrence order.
func (c *Comments) Keys() []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, e := range c.entries {
		if _, ok := seen[e.Key]; ok {
			continue
		}
		seen[e.Key] = struct{}{}
		keys = append(keys, e.Key)
	}
	return keys
}

// Add appends a single entry.
func (c *Comments) Add(key, value string) {
	c.entries = append(c.entries, Comment{Key: key, Value: value})
}

// Set replaces every value of key with values.
//
// The new entries take the position of the key's first existing entry, or
// are appended if the key is absent. Passing no values removes the key.
func (c *Comments) Set(key string, values ...string) {
	at := slices.IndexFunc(c.entries, func(e Comment) bool { return e.Key == key })
	if at < 0 {
		for _, v := range values {
			c.Add(key, v)
		}
		return
	}

	replacement := make([]Comment, len(values))
	for i, v := range values {
		replacement[i] = Comment{Key: key, Value: v}
	}

	head := c.entries[:at:at]
	tail := slices.DeleteFunc(slices.Clone(c.entries[at:]), func(e Comment) bool { return e.Key == key })
	c.entries = slices.Concat(head, replacement, tail)
}

// Remove deletes every entry of key and returns how many were removed.
func (c *Comments) Remove(key string) int {
	before := len(c.entries)
	c.entries = slices.DeleteFunc(c.entries, func(e Comment) bool { return e.Key == key })
	return before - len(c.entries)
}

// RemoveValue deletes entries of key whose value equals value and returns
// how many were removed. Other values of key are kept in order.
func (c *Comments) RemoveValue(key, value string) int {
	before := len(c.entries)
	c.entries = slices.DeleteFunc(c.entries, func(e Comment) bool {
		return e.Key == key && e.Value == value
	})
	return before - len(c.entries)
}

// Clone returns a deep copy.
func (c *Comments) Clone() *Comments {
	return &Comments{Vendor: c.Vendor, entries: slices.Clone(c.entries)}
}
