package transcoder_test

import (
	"encoding/binary"
	"testing"

	"github.com/wippyai/swf-transcoder/swf"
)

// testRect encodes Rect{X:1, Y:2, Width:4, Height:4} in three bytes.
var testRect = []byte{0x20, 0xA9, 0x30}

func u16le(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

// tag encodes a complete tag, header form chosen by body length.
func tag(code uint16, body ...byte) []byte {
	return append(swf.AppendTagHeader(nil, code, len(body)), body...)
}

// longTag forces the long header form regardless of body length.
func longTag(code uint16, body ...byte) []byte {
	hdr := binary.LittleEndian.AppendUint16(nil, code<<6|swf.LongFormLength)
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(len(body)))
	return append(hdr, body...)
}

// shapeBody is a character ID, the test rect, and optional trailing shape
// data the transcoder never interprets.
func shapeBody(id uint16, filler ...byte) []byte {
	body := append(u16le(id), testRect...)
	return append(body, filler...)
}

// spriteBody is a character ID, a one-frame count, and the nested tag
// stream. Callers append their own End tag when they want one.
func spriteBody(id uint16, nested ...[]byte) []byte {
	body := append(u16le(id), 1, 0)
	for _, n := range nested {
		body = append(body, n...)
	}
	return body
}

// placeShape is a PlaceObject2 with only the character flag set.
func placeShape(depth, charID uint16) []byte {
	body := []byte{swf.PlaceFlagHasCharacter}
	body = append(body, u16le(depth)...)
	body = append(body, u16le(charID)...)
	return tag(swf.TagPlaceObject2, body...)
}

// placeShapeWithClip is placeShape with the clip-action flag set and the
// given clip-action bytes trailing the fixed fields.
func placeShapeWithClip(depth, charID uint16, clip []byte) []byte {
	body := []byte{swf.PlaceFlagHasClipActions | swf.PlaceFlagHasCharacter}
	body = append(body, u16le(depth)...)
	body = append(body, u16le(charID)...)
	body = append(body, clip...)
	return tag(swf.TagPlaceObject2, body...)
}

type export struct {
	id   uint16
	name string
}

func exportTable(code uint16, entries ...export) []byte {
	body := u16le(uint16(len(entries)))
	for _, e := range entries {
		body = append(body, u16le(e.id)...)
		body = append(body, e.name...)
		body = append(body, 0)
	}
	return tag(code, body...)
}

func exportAssets(entries ...export) []byte {
	return exportTable(swf.TagExportAssets, entries...)
}

// buildMovie wraps tags into an uncompressed version-10 movie with a
// zero-width stage rect and a trailing End tag. The first tag starts at
// body offset 5.
func buildMovie(tags ...[]byte) []byte {
	body := []byte{0x00, 0x00, 0x0C, 0x01, 0x00}
	for _, tg := range tags {
		body = append(body, tg...)
	}
	body = append(body, tag(swf.TagEnd)...)

	data := []byte{'F', 'W', 'S', 10}
	data = binary.LittleEndian.AppendUint32(data, uint32(8+len(body)))
	return append(data, body...)
}

type outTag struct {
	code uint16
	body []byte
}

// parseOutput re-reads an extraction result and returns its tag stream,
// End included.
func parseOutput(t *testing.T, out []byte) (*swf.Movie, []outTag) {
	t.Helper()

	m, err := swf.ReadMovie(out)
	if err != nil {
		t.Fatalf("reading output movie: %v", err)
	}

	c := m.Tags()
	var tags []outTag
	for c.Position() < c.Limit() {
		h, err := swf.ReadTagHeader(c)
		if err != nil {
			t.Fatalf("reading output tag header: %v", err)
		}
		tags = append(tags, outTag{
			code: h.Code,
			body: append([]byte(nil), m.Body[h.BodyStart:h.End()]...),
		})
		if h.Code == swf.TagEnd {
			return m, tags
		}
		if err := c.Seek(h.End()); err != nil {
			t.Fatalf("seeking past output tag: %v", err)
		}
	}
	t.Fatal("output tag stream has no End tag")
	return nil, nil
}

// symbolClassFor is the expected synthetic export body binding character 0
// to className.
func symbolClassFor(className string) []byte {
	body := []byte{1, 0, 0, 0}
	body = append(body, className...)
	return append(body, 0)
}
