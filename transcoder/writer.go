package transcoder

import (
	"io"

	"github.com/wippyai/swf-transcoder/errors"
	"github.com/wippyai/swf-transcoder/swf"
)

// writeUsed emits every reachable definition except the target itself, in
// ascending tag-start order. Untouched definitions are copied verbatim,
// original header included; definitions with exclusions get a re-derived
// header and a sparse body.
func (x *extraction) writeUsed(w io.Writer) error {
	data := x.cursor.Data()
	for _, d := range x.used {
		if !d.sparse() {
			if _, err := w.Write(data[d.TagStart : d.BodyStart+d.Length]); err != nil {
				return writeErr(err)
			}
			continue
		}

		if _, err := w.Write(swf.AppendTagHeader(nil, d.Code, d.retainedLength())); err != nil {
			return writeErr(err)
		}
		if err := x.writeSparseBody(w, d, d.BodyStart); err != nil {
			return err
		}
	}
	return nil
}

// writeTarget emits the target definition with its character ID zeroed and
// a freshly derived header, then the synthetic SymbolClass export binding
// character 0 to the configured class name.
func (x *extraction) writeTarget(w io.Writer, d *Definition) error {
	buf := swf.AppendTagHeader(nil, d.Code, d.retainedLength())
	buf = append(buf, 0, 0) // the output movie exports exactly character 0
	if _, err := w.Write(buf); err != nil {
		return writeErr(err)
	}

	if !d.sparse() {
		data := x.cursor.Data()
		if _, err := w.Write(data[d.BodyStart+2 : d.BodyStart+d.Length]); err != nil {
			return writeErr(err)
		}
	} else if err := x.writeSparseBody(w, d, d.BodyStart+2); err != nil {
		return err
	}

	symbolClassBody := 2 + 2 + len(x.className) + 1
	buf = swf.AppendTagHeader(buf[:0], swf.TagSymbolClass, symbolClassBody)
	buf = append(buf, 1, 0) // one symbol
	buf = append(buf, 0, 0) // character 0
	buf = append(buf, x.className...)
	buf = append(buf, 0)
	if _, err := w.Write(buf); err != nil {
		return writeErr(err)
	}
	return nil
}

// writeSparseBody copies the byte runs of d's body around its excluded
// ranges, starting at from. The emitted byte count must land exactly on the
// retained length; a mismatch means the resolver's bookkeeping is broken.
func (x *extraction) writeSparseBody(w io.Writer, d *Definition, from int) error {
	data := x.cursor.Data()
	written := 0

	run := from
	for i := 0; i < len(d.excluded); i += 2 {
		start, end := d.excluded[i], d.excluded[i+1]
		if _, err := w.Write(data[run:start]); err != nil {
			return writeErr(err)
		}
		written += start - run
		run = end
	}

	bodyEnd := d.BodyStart + d.Length
	if _, err := w.Write(data[run:bodyEnd]); err != nil {
		return writeErr(err)
	}
	written += bodyEnd - run

	if want := d.retainedLength() - (from - d.BodyStart); written != want {
		return errors.New(errors.PhaseWrite, errors.KindInvalidData).
			Tag(swf.TagName(d.Code)).
			Offset(d.TagStart).
			Detail("sparse body wrote %d bytes, retained length expects %d", written, want).
			Build()
	}
	return nil
}
