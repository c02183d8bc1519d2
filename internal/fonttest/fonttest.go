// Package fonttest builds font fixtures for tests: an existing TrueType
// font with GPOS or kern tables added or replaced.
package fonttest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	ot "github.com/go-text/typesetting/font/opentype"
)

// GPOS lookup types.
const (
	LookupSinglePos = 1
	LookupPairPos   = 2
	LookupExtension = 9
)

// Value record format bits.
const (
	ValueXPlacement = 0x0001
	ValueXAdvance   = 0x0004
)

// WithTables returns a copy of the font in base with the given tables
// added, replacing tables with the same tag.
func WithTables(base []byte, extra map[string][]byte) ([]byte, error) {
	ld, err := ot.NewLoader(bytes.NewReader(base))
	if err != nil {
		return nil, fmt.Errorf("fonttest: %w", err)
	}

	content := make(map[ot.Tag][]byte)
	for _, tag := range ld.Tables() {
		raw, err := ld.RawTable(tag)
		if err != nil {
			return nil, fmt.Errorf("fonttest: table %v: %w", tag, err)
		}
		content[tag] = raw
	}
	for name, raw := range extra {
		tag, err := newTag(name)
		if err != nil {
			return nil, err
		}
		content[tag] = raw
	}

	tags := make([]ot.Tag, 0, len(content))
	for tag := range content {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return writeFont(tags, content), nil
}

// writeFont lays out a TrueType file with every table on a four byte
// boundary, which x/image/font/sfnt requires.
func writeFont(tags []ot.Tag, content map[ot.Tag][]byte) []byte {
	n := len(tags)
	entrySelector := 0
	for 1<<(entrySelector+1) <= n {
		entrySelector++
	}
	searchRange := (1 << entrySelector) * 16

	out := make([]byte, 12+16*n)
	binary.BigEndian.PutUint32(out[0:], 0x00010000)
	binary.BigEndian.PutUint16(out[4:], uint16(n))
	binary.BigEndian.PutUint16(out[6:], uint16(searchRange))
	binary.BigEndian.PutUint16(out[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(out[10:], uint16(n*16-searchRange))

	for i, tag := range tags {
		raw := content[tag]
		entry := out[12+16*i:]
		binary.BigEndian.PutUint32(entry[0:], uint32(tag))
		binary.BigEndian.PutUint32(entry[4:], checksum(raw))
		binary.BigEndian.PutUint32(entry[8:], uint32(len(out)))
		binary.BigEndian.PutUint32(entry[12:], uint32(len(raw)))
		out = append(out, raw...)
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
	}
	return out
}

func checksum(raw []byte) uint32 {
	var sum uint32
	for i := 0; i < len(raw); i += 4 {
		var word [4]byte
		copy(word[:], raw[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

func newTag(name string) (ot.Tag, error) {
	if len(name) != 4 {
		return 0, fmt.Errorf("fonttest: invalid table tag %q", name)
	}
	return ot.NewTag(name[0], name[1], name[2], name[3]), nil
}
