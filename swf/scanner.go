package swf

import (
	"bytes"
	"encoding/binary"
)

// TagHeader is one decoded tag header. TagStart is the offset of the header
// itself; BodyStart is the offset of the first body byte. The two cannot be
// derived from each other: a length below 63 may still be encoded long form,
// so both offsets are recorded at read time.
type TagHeader struct {
	Code      uint16
	Length    int
	TagStart  int
	BodyStart int
}

// End returns the offset one past the tag body.
func (h TagHeader) End() int {
	return h.BodyStart + h.Length
}

// ReadTagHeader decodes the tag header at the cursor: a uint16 with the code
// in the top 10 bits and a short length in the bottom 6, extended by a
// uint32 length when the short length holds the long-form sentinel.
func ReadTagHeader(c *Cursor) (TagHeader, error) {
	tagStart := c.Position()

	codeAndLength, err := c.ReadU16()
	if err != nil {
		return TagHeader{}, err
	}

	code := codeAndLength >> tagCodeShift
	length := int(codeAndLength & tagLengthMask)
	if length == LongFormLength {
		long, err := c.ReadU32()
		if err != nil {
			return TagHeader{}, err
		}
		length = int(long)
	}

	return TagHeader{
		Code:      code,
		Length:    length,
		TagStart:  tagStart,
		BodyStart: c.Position(),
	}, nil
}

// HeaderSize returns the encoded header size for a body length: 2 bytes for
// the short form, 6 for the long form. Serialization always re-derives the
// form from the byte count, never from the original header.
func HeaderSize(length int) int {
	if length < LongFormLength {
		return 2
	}
	return 6
}

// AppendTagHeader appends a freshly encoded tag header to dst.
func AppendTagHeader(dst []byte, code uint16, length int) []byte {
	if length < LongFormLength {
		return binary.LittleEndian.AppendUint16(dst, code<<tagCodeShift|uint16(length))
	}
	dst = binary.LittleEndian.AppendUint16(dst, code<<tagCodeShift|LongFormLength)
	return binary.LittleEndian.AppendUint32(dst, uint32(length))
}

// MatchExportedSymbol scans an ExportAssets or SymbolClass body at the
// cursor for an entry whose NUL-terminated name equals name byte for byte.
// It returns the matching character ID, or ok=false when the table has no
// entries or none match; the caller then moves on to the next tag. No case
// folding or encoding is applied.
func MatchExportedSymbol(c *Cursor, name []byte) (uint16, bool, error) {
	numSymbols, err := c.ReadU16()
	if err != nil {
		return 0, false, err
	}
	if numSymbols == 0 {
		return 0, false, nil
	}

	for i := 0; i < int(numSymbols); i++ {
		id, err := c.ReadU16()
		if err != nil {
			return 0, false, err
		}

		start := c.Position()
		end, err := c.CStringEnd(start)
		if err != nil {
			return 0, false, err
		}
		if bytes.Equal(c.Data()[start:end-1], name) {
			return id, true, nil
		}
		if err := c.Seek(end); err != nil {
			return 0, false, err
		}
	}

	return 0, false, nil
}

// ExportEntry is one row of an export table.
type ExportEntry struct {
	ID   uint16
	Name string
}

// ReadExportEntries decodes every entry of an ExportAssets or SymbolClass
// body at the cursor.
func ReadExportEntries(c *Cursor) ([]ExportEntry, error) {
	numSymbols, err := c.ReadU16()
	if err != nil {
		return nil, err
	}

	entries := make([]ExportEntry, 0, numSymbols)
	for i := 0; i < int(numSymbols); i++ {
		id, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		start := c.Position()
		end, err := c.CStringEnd(start)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ExportEntry{
			ID:   id,
			Name: string(c.Data()[start : end-1]),
		})
		if err := c.Seek(end); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
