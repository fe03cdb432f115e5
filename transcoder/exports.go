package transcoder

import (
	"github.com/wippyai/swf-transcoder/errors"
	"github.com/wippyai/swf-transcoder/swf"
)

// ListExports scans a movie's top level and returns every symbol exported
// by its ExportAssets and SymbolClass tags, in stream order.
func ListExports(data []byte) ([]swf.ExportEntry, error) {
	m, err := swf.ReadMovie(data)
	if err != nil {
		return nil, err
	}

	c := m.Tags()
	var entries []swf.ExportEntry
	for c.Position() < c.Limit() {
		h, err := swf.ReadTagHeader(c)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseScan, errors.KindInvalidData, err, "tag header")
		}
		if h.Code == swf.TagEnd {
			break
		}
		if h.Code == swf.TagExportAssets || h.Code == swf.TagSymbolClass {
			es, err := swf.ReadExportEntries(c)
			if err != nil {
				return nil, errors.Wrap(errors.PhaseScan, errors.KindInvalidData, err, "export table")
			}
			entries = append(entries, es...)
		}
		if err := c.Seek(h.End()); err != nil {
			return nil, errors.OutOfBounds(errors.PhaseScan, h.End(), c.Limit())
		}
	}
	return entries, nil
}
