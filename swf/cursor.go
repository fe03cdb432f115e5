package swf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a read or seek runs past the end of the
// movie body.
var ErrShortBuffer = errors.New("read past end of buffer")

// Cursor provides random-access little-endian reads over a decompressed
// movie body. It mirrors the positioned-buffer model the tag stream is
// defined against: every offset recorded by the scanner is an absolute
// index into the underlying slice.
//
// The underlying data is shared, not copied. PutByte is the single write
// entry point; everything else treats the slice as read-only.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a Cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Position returns the current byte position.
func (c *Cursor) Position() int {
	return c.pos
}

// Limit returns the length of the underlying data.
func (c *Cursor) Limit() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Data exposes the underlying slice for bulk copies by the writer.
func (c *Cursor) Data() []byte {
	return c.data
}

// Seek moves the position to pos. Seeking to Limit() is allowed; the next
// read fails.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return fmt.Errorf("seek to %d (limit %d): %w", pos, len(c.data), ErrShortBuffer)
	}
	c.pos = pos
	return nil
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int) error {
	return c.Seek(c.pos + n)
}

// ReadByte reads a single byte and advances the position.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, c.wrapEOF()
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	if c.pos+2 > len(c.data) {
		return 0, c.wrapEOF()
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if c.pos+4 > len(c.data) {
		return 0, c.wrapEOF()
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// U16At reads a little-endian uint16 at an absolute position without
// moving the cursor.
func (c *Cursor) U16At(pos int) (uint16, error) {
	if pos < 0 || pos+2 > len(c.data) {
		return 0, fmt.Errorf("at position %d: %w", pos, ErrShortBuffer)
	}
	return binary.LittleEndian.Uint16(c.data[pos:]), nil
}

// PutByte overwrites the byte at an absolute position. The transcoder uses
// this for exactly one mutation: clearing the clip-action flag of a
// PlaceObject2 tag.
func (c *Cursor) PutByte(pos int, b byte) error {
	if pos < 0 || pos >= len(c.data) {
		return fmt.Errorf("at position %d: %w", pos, ErrShortBuffer)
	}
	c.data[pos] = b
	return nil
}

// CStringEnd scans forward from pos for a NUL terminator and returns the
// position immediately after it.
func (c *Cursor) CStringEnd(pos int) (int, error) {
	for i := pos; i < len(c.data); i++ {
		if c.data[i] == 0 {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unterminated string at %d: %w", pos, ErrShortBuffer)
}

func (c *Cursor) wrapEOF() error {
	return fmt.Errorf("at position %d: %w", c.pos, ErrShortBuffer)
}
