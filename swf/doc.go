// Package swf provides the format layer for SWF movie transcoding.
//
// The package deliberately stops short of a full SWF codec. It understands
// exactly the structure needed to relocate display-list symbols: container
// framing, tag headers, export tables, and the bit-packed records embedded
// in placement tags. Tag bodies are otherwise opaque byte ranges.
//
// # Reading
//
// Parse a movie and walk its top-level tags:
//
//	m, err := swf.ReadMovie(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := m.Tags()
//	for c.Remaining() > 0 {
//	    h, err := swf.ReadTagHeader(c)
//	    // ... inspect h.Code, h.Length ...
//	    c.Seek(h.End())
//	}
//
// All multi-byte integers are little-endian. Bit-packed records (RECT,
// MATRIX, CXFORM) are MSB-first and begin byte-aligned; BitReader handles
// the transition between the two encodings.
//
// # Writing
//
// Output headers are always re-encoded from the final body length via
// AppendTagHeader; the original header form is never reused. WriteHeader
// and WriteFooter provide the fixed uncompressed wrap for extracted
// symbols.
package swf
