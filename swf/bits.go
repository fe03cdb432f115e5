package swf

import (
	"github.com/wippyai/swf-transcoder/errors"
)

// BitReader extracts MSB-first bit fields from a byte cursor, refilling one
// byte at a time. It holds the unread remainder of the current byte; Sync
// discards that remainder so the next read starts on a fresh byte.
//
// The reader advances the owning cursor as a side effect. It is transient
// state: decoders construct one per bit-packed structure and never share it.
type BitReader struct {
	c      *Cursor
	bitBuf uint32 // unread low bits of the current byte
	bitPos uint   // count of unread bits in bitBuf
}

// NewBitReader creates a BitReader consuming from c at its current position.
func NewBitReader(c *Cursor) *BitReader {
	return &BitReader{c: c}
}

// Sync discards any partially consumed byte. The physical cursor position is
// untouched; only the leftover-bit count is zeroed.
func (r *BitReader) Sync() {
	r.bitPos = 0
	r.bitBuf = 0
}

// ReadUBits reads the next numBits bits as an unsigned integer, most
// significant bit first. Widths above 32 fail.
func (r *BitReader) ReadUBits(numBits int) (uint32, error) {
	if numBits > 32 {
		return 0, errors.BitOverflow(numBits)
	}
	if numBits <= 0 {
		return 0, nil
	}

	bitsLeft := numBits
	var result uint32

	if r.bitPos == 0 {
		b, err := r.c.ReadByte()
		if err != nil {
			return 0, err
		}
		r.bitBuf = uint32(b)
		r.bitPos = 8
	}

	for {
		shift := bitsLeft - int(r.bitPos)
		if shift > 0 {
			// Consume the whole remainder and refill.
			result |= r.bitBuf << uint(shift)
			bitsLeft -= int(r.bitPos)

			b, err := r.c.ReadByte()
			if err != nil {
				return 0, err
			}
			r.bitBuf = uint32(b)
			r.bitPos = 8
		} else {
			// Consume a portion of the remainder.
			result |= r.bitBuf >> uint(-shift)
			r.bitPos -= uint(bitsLeft)
			r.bitBuf &= 0xff >> (8 - r.bitPos)
			return result, nil
		}
	}
}

// ReadSBits reads numBits bits and sign-extends the result.
func (r *BitReader) ReadSBits(numBits int) (int32, error) {
	num, err := r.ReadUBits(numBits)
	if err != nil {
		return 0, err
	}
	shift := uint(32 - numBits)
	return int32(num<<shift) >> shift, nil
}

// ReadBit reads a single flag bit.
func (r *BitReader) ReadBit() (bool, error) {
	b, err := r.ReadUBits(1)
	return b != 0, err
}
