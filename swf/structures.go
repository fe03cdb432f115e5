package swf

// Rect is a decoded RECT region, in twips.
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// DecodeRect decodes a RECT at the cursor's current (byte-aligned) position:
// a 5-bit field width followed by signed xmin, xmax, ymin, ymax.
func DecodeRect(c *Cursor) (Rect, error) {
	r := NewBitReader(c)

	nbits, err := r.ReadUBits(5)
	if err != nil {
		return Rect{}, err
	}

	var fields [4]int32 // xmin, xmax, ymin, ymax
	for i := range fields {
		fields[i], err = r.ReadSBits(int(nbits))
		if err != nil {
			return Rect{}, err
		}
	}

	return Rect{
		X:      fields[0],
		Y:      fields[2],
		Width:  fields[1] - fields[0],
		Height: fields[3] - fields[2],
	}, nil
}

// SkipMatrix consumes a MATRIX record: optional scale pair, optional
// rotate/skew pair, then translate. The decoded values are discarded; only
// the cursor ending on the correct byte matters to the caller.
func SkipMatrix(c *Cursor) error {
	r := NewBitReader(c)

	hasScale, err := r.ReadBit()
	if err != nil {
		return err
	}
	if hasScale {
		if err := skipBitPair(r); err != nil {
			return err
		}
	}

	hasRotate, err := r.ReadBit()
	if err != nil {
		return err
	}
	if hasRotate {
		if err := skipBitPair(r); err != nil {
			return err
		}
	}

	return skipBitPair(r)
}

// SkipColorTransform consumes a CXFORMWITHALPHA record: add and multiply
// presence flags, a shared 4-bit field width, then four signed terms per
// present transform.
func SkipColorTransform(c *Cursor) error {
	r := NewBitReader(c)

	hasAdd, err := r.ReadBit()
	if err != nil {
		return err
	}
	hasMult, err := r.ReadBit()
	if err != nil {
		return err
	}
	nbits, err := r.ReadUBits(4)
	if err != nil {
		return err
	}

	terms := 0
	if hasMult {
		terms += 4
	}
	if hasAdd {
		terms += 4
	}
	for i := 0; i < terms; i++ {
		if _, err := r.ReadSBits(int(nbits)); err != nil {
			return err
		}
	}
	return nil
}

// skipBitPair reads a 5-bit field width and two signed fields of that width.
func skipBitPair(r *BitReader) error {
	nbits, err := r.ReadUBits(5)
	if err != nil {
		return err
	}
	if _, err := r.ReadSBits(int(nbits)); err != nil {
		return err
	}
	_, err = r.ReadSBits(int(nbits))
	return err
}
