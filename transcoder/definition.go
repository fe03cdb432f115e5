package transcoder

import "github.com/wippyai/swf-transcoder/swf"

// Definition records one shape or sprite definition found during the
// top-level scan. One is created for every definition tag regardless of
// reachability; unreachable records are simply never written.
//
// TagStart cannot be derived from BodyStart and Length: a body shorter than
// 63 bytes may still be encoded with a long-form header, so both offsets
// are captured at scan time.
type Definition struct {
	TagStart  int
	BodyStart int
	Length    int
	Code      uint16
	Used      bool

	// Sparse-write state. excluded holds flat [start,end) offset pairs in
	// ascending order; retained is Length minus the excluded bytes.
	// Both stay zero-valued until the first exclusion.
	excluded []int
	retained int
}

// prepareSparseWrite switches the record to sparse mode on first exclusion.
func (d *Definition) prepareSparseWrite() {
	if d.excluded == nil {
		d.excluded = make([]int, 0, 4)
		d.retained = d.Length
	}
}

// exclude drops [start,end) from the body on output. Ranges arrive in
// ascending order from the nested scan and never overlap.
func (d *Definition) exclude(start, end int) {
	d.prepareSparseWrite()
	d.excluded = append(d.excluded, start, end)
	d.retained -= end - start
}

// sparse reports whether any byte range has been excluded.
func (d *Definition) sparse() bool {
	return d.excluded != nil
}

// retainedLength returns the body length after exclusions. It equals the
// declared length while no range is excluded.
func (d *Definition) retainedLength() int {
	if d.excluded == nil {
		return d.Length
	}
	return d.retained
}

// fullLengthAsProvided is the exact byte span of the unmodified tag,
// original header included.
func (d *Definition) fullLengthAsProvided() int {
	return (d.BodyStart - d.TagStart) + d.Length
}

// fullLengthRecoded is the byte span of the tag once its header is
// re-derived from the retained body length.
func (d *Definition) fullLengthRecoded() int {
	n := d.retainedLength()
	return swf.HeaderSize(n) + n
}
