package transcoder

import (
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/swf-transcoder/errors"
	"github.com/wippyai/swf-transcoder/swf"
)

// DefaultClassName is the synthetic class name the output movie exports
// when Options.ClassName is empty.
const DefaultClassName = "com.S"

// Options configure one extraction.
type Options struct {
	// ClassName is bound to the extracted symbol by the synthetic
	// SymbolClass tag.
	ClassName string
}

// Result reports what an extraction produced.
type Result struct {
	// Bounds is the bounding rectangle of the first shape reached from the
	// target symbol, nil when the reachable set contains no shape.
	Bounds *swf.Rect

	// FileLength is the total size of the written uncompressed movie.
	FileLength int
}

// Extract locates symbolName in the movie contained in data and writes a
// minimal standalone movie exporting it to w. The symbol name is matched
// byte for byte against the movie's export tables.
//
// The movie body is mutated in place for qualifying PlaceObject2 tags (one
// cleared flag bit each); callers that need the input preserved must pass
// a copy. On error nothing useful has been written; the caller discards
// the sink.
func Extract(data []byte, symbolName []byte, w io.Writer, opts Options) (*Result, error) {
	m, err := swf.ReadMovie(data)
	if err != nil {
		return nil, err
	}
	return ExtractMovie(m, symbolName, w, opts)
}

// ExtractMovie is Extract over an already parsed movie.
func ExtractMovie(m *swf.Movie, symbolName []byte, w io.Writer, opts Options) (*Result, error) {
	className := opts.ClassName
	if className == "" {
		className = DefaultClassName
	}

	x := &extraction{
		cursor:     m.Tags(),
		version:    m.Version,
		symbolName: symbolName,
		className:  []byte(className),
		defs:       make(map[int]*Definition),
		log:        Logger(),
	}
	return x.run(w)
}

// extraction owns all state of one transcoding operation. Instances are
// single use; nothing is shared across operations.
type extraction struct {
	cursor     *swf.Cursor
	version    byte
	symbolName []byte
	className  []byte

	defs   map[int]*Definition // every definition seen, by character ID
	used   []*Definition       // reachable set in discovery order, target excluded
	bounds *swf.Rect
	total  int // output file length, accumulated during resolution
	log    *zap.Logger
}

func (x *extraction) run(w io.Writer) (*Result, error) {
	target, err := x.scanTopLevel()
	if err != nil {
		return nil, err
	}

	symbolClassBody := 2 + 2 + len(x.className) + 1
	x.total = swf.WrapLength() + swf.HeaderSize(symbolClassBody) + symbolClassBody

	target.Used = true
	if target.Code == swf.TagDefineSprite {
		if err := x.resolveSprite(target); err != nil {
			return nil, err
		}
	} else {
		b, err := x.shapeBounds(target)
		if err != nil {
			return nil, err
		}
		x.bounds = &b
	}
	// the target is always rewritten (its ID is zeroed), so its header is
	// re-derived even when nothing was stripped
	x.total += target.fullLengthRecoded()

	// reachability discovers definitions depth first; the stream order they
	// were defined in is what the output must preserve
	sort.Slice(x.used, func(i, j int) bool {
		return x.used[i].TagStart < x.used[j].TagStart
	})

	x.log.Debug("writing output",
		zap.Int("definitions", len(x.used)),
		zap.Int("file_length", x.total))

	if err := swf.WriteHeader(w, x.version, x.total); err != nil {
		return nil, writeErr(err)
	}
	if err := x.writeUsed(w); err != nil {
		return nil, err
	}
	if err := x.writeTarget(w, target); err != nil {
		return nil, err
	}
	if err := swf.WriteFooter(w); err != nil {
		return nil, writeErr(err)
	}

	return &Result{Bounds: x.bounds, FileLength: x.total}, nil
}

// scanTopLevel makes the single pass over the top-level tag stream:
// registering a Definition for every shape and sprite tag, and matching
// export-table entries against the requested symbol name. The scan stops at
// the first End tag, at buffer exhaustion, or as soon as the target is
// found.
func (x *extraction) scanTopLevel() (*Definition, error) {
	c := x.cursor
	targetID := -1

scan:
	for c.Position() < c.Limit() {
		h, err := swf.ReadTagHeader(c)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseScan, errors.KindInvalidData, err, "tag header")
		}

		switch h.Code {
		case swf.TagEnd:
			break scan

		case swf.TagDefineShape, swf.TagDefineShape2, swf.TagDefineShape3,
			swf.TagDefineShape4, swf.TagDefineSprite:
			id, err := c.ReadU16()
			if err != nil {
				return nil, errors.Wrap(errors.PhaseScan, errors.KindInvalidData, err, "character ID")
			}
			if _, ok := x.defs[int(id)]; ok {
				return nil, errors.DuplicateID(int(id), h.TagStart)
			}
			x.defs[int(id)] = &Definition{
				TagStart:  h.TagStart,
				BodyStart: h.BodyStart,
				Length:    h.Length,
				Code:      h.Code,
			}

		case swf.TagExportAssets, swf.TagSymbolClass:
			id, ok, err := swf.MatchExportedSymbol(c, x.symbolName)
			if err != nil {
				return nil, errors.Wrap(errors.PhaseScan, errors.KindInvalidData, err, "export table")
			}
			if ok {
				targetID = int(id)
				break scan
			}
		}

		if err := c.Seek(h.End()); err != nil {
			return nil, errors.OutOfBounds(errors.PhaseScan, h.End(), c.Limit())
		}
	}

	if targetID == -1 {
		return nil, errors.SymbolNotFound(x.symbolName)
	}
	target, ok := x.defs[targetID]
	if !ok {
		return nil, errors.BadReference(targetID, -1)
	}

	x.log.Debug("resolved export target",
		zap.ByteString("symbol", x.symbolName),
		zap.Int("character", targetID),
		zap.String("tag", swf.TagName(target.Code)))
	return target, nil
}

func writeErr(err error) error {
	return errors.Wrap(errors.PhaseWrite, errors.KindIO, err, "write output")
}
