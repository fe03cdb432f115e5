package swf

import (
	"bytes"
	gobinary "encoding/binary"
	"io"
	"math/bits"

	"github.com/klauspost/compress/zlib"

	"github.com/wippyai/swf-transcoder/errors"
)

// Movie signature bytes. The first byte selects the body compression; the
// remaining two are always "WS".
const (
	sigUncompressed = 'F'
	sigZlib         = 'C'
	sigLZMA         = 'Z'
)

// Movie is a parsed container: the fixed 8-byte header plus the fully
// decompressed body. Offsets held by the transcoder index into Body;
// TagStart is where the top-level tag stream begins, after the stage rect,
// frame rate and frame count.
type Movie struct {
	Version    byte
	FileLength uint32
	Stage      Rect
	Body       []byte
	TagStart   int
}

// Tags returns a fresh cursor over the body positioned at the first
// top-level tag.
func (m *Movie) Tags() *Cursor {
	c := NewCursor(m.Body)
	// TagStart was derived from Body, the seek cannot fail
	_ = c.Seek(m.TagStart)
	return c
}

// ReadMovie parses a movie container. FWS bodies are used as is, CWS bodies
// are inflated with zlib. LZMA (ZWS) containers are not supported.
func ReadMovie(data []byte) (*Movie, error) {
	if len(data) < 8 {
		return nil, errors.InvalidData(errors.PhaseContainer, 0, "movie shorter than 8-byte header")
	}
	if data[1] != 'W' || data[2] != 'S' {
		return nil, errors.InvalidData(errors.PhaseContainer, 0, "bad container signature")
	}

	version := data[3]
	fileLength := gobinary.LittleEndian.Uint32(data[4:8])

	var body []byte
	switch data[0] {
	case sigUncompressed:
		body = data[8:]
	case sigZlib:
		zr, err := zlib.NewReader(bytes.NewReader(data[8:]))
		if err != nil {
			return nil, errors.Wrap(errors.PhaseContainer, errors.KindInvalidData, err, "open zlib body")
		}
		defer zr.Close()
		body, err = io.ReadAll(zr)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseContainer, errors.KindInvalidData, err, "inflate body")
		}
	case sigLZMA:
		return nil, errors.Unsupported(errors.PhaseContainer, "LZMA-compressed movie (ZWS)")
	default:
		return nil, errors.InvalidData(errors.PhaseContainer, 0, "bad container signature")
	}

	c := NewCursor(body)
	stage, err := DecodeRect(c)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseContainer, errors.KindInvalidData, err, "decode stage rect")
	}
	// frame rate (8.8 fixed) and frame count
	if err := c.Skip(4); err != nil {
		return nil, errors.Wrap(errors.PhaseContainer, errors.KindInvalidData, err, "movie header truncated")
	}

	return &Movie{
		Version:    version,
		FileLength: fileLength,
		Stage:      stage,
		Body:       body,
		TagStart:   c.Position(),
	}, nil
}

// Output wrap. Extracted symbols are emitted into a fixed uncompressed
// frame: standard 550x400 pt stage, 24 fps, one frame, closed by ShowFrame
// and End.
var (
	wrapStage = appendRect(nil, Rect{X: 0, Y: 0, Width: 11000, Height: 8000})

	// ShowFrame then End, both zero-length short form
	wrapFooter = []byte{0x40, 0x00, 0x00, 0x00}
)

const (
	wrapFrameRate  = 24 << 8 // 8.8 fixed point
	wrapFrameCount = 1
)

// WrapLength returns the total byte overhead of the output header and
// footer around the emitted tags.
func WrapLength() int {
	return 8 + len(wrapStage) + 4 + len(wrapFooter)
}

// WriteHeader writes the output container header. fileLength must be the
// size of the complete uncompressed file, wrap included.
func WriteHeader(w io.Writer, version byte, fileLength int) error {
	buf := make([]byte, 0, 8+len(wrapStage)+4)
	buf = append(buf, sigUncompressed, 'W', 'S', version)
	buf = gobinary.LittleEndian.AppendUint32(buf, uint32(fileLength))
	buf = append(buf, wrapStage...)
	buf = gobinary.LittleEndian.AppendUint16(buf, wrapFrameRate)
	buf = gobinary.LittleEndian.AppendUint16(buf, wrapFrameCount)

	_, err := w.Write(buf)
	return err
}

// WriteFooter closes the output movie with ShowFrame and End.
func WriteFooter(w io.Writer) error {
	_, err := w.Write(wrapFooter)
	return err
}

// appendRect encodes a RECT with the minimal shared field width.
func appendRect(dst []byte, r Rect) []byte {
	fields := [4]int32{r.X, r.X + r.Width, r.Y, r.Y + r.Height}

	nbits := 1
	for _, f := range fields {
		if n := signedBitLen(f); n > nbits {
			nbits = n
		}
	}

	var w bitAppender
	w.append(uint32(nbits), 5)
	for _, f := range fields {
		w.append(uint32(f), nbits)
	}
	return w.finish(dst)
}

func signedBitLen(v int32) int {
	if v < 0 {
		v = ^v
	}
	return bits.Len32(uint32(v)) + 1
}

// bitAppender packs MSB-first bit fields into bytes, zero padded at the end.
type bitAppender struct {
	buf  []byte
	cur  byte
	used int
}

func (w *bitAppender) append(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		w.cur = w.cur<<1 | byte(v>>uint(i)&1)
		w.used++
		if w.used == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur = 0
			w.used = 0
		}
	}
}

func (w *bitAppender) finish(dst []byte) []byte {
	dst = append(dst, w.buf...)
	if w.used > 0 {
		dst = append(dst, w.cur<<uint(8-w.used))
	}
	return dst
}
