package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseContainer Phase = "container" // movie framing, signature, decompression
	PhaseScan      Phase = "scan"      // top-level tag scanning
	PhaseDecode    Phase = "decode"    // bit-packed structure decoding
	PhaseResolve   Phase = "resolve"   // placement graph resolution
	PhaseWrite     Phase = "write"     // output serialization
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindUnsupported  Kind = "unsupported"
	KindOverflow     Kind = "overflow"
	KindBadReference Kind = "bad_reference"
	KindInvalidData  Kind = "invalid_data"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindIO           Kind = "io"
)

// Error is the structured error type used throughout the transcoder.
// Offset is an absolute byte offset into the decompressed movie body,
// or -1 when no position applies.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Tag    string
	Offset int
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Tag != "" {
		b.WriteString(" in ")
		b.WriteString(e.Tag)
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Tag sets the tag name the error occurred in
func (b *Builder) Tag(name string) *Builder {
	b.err.Tag = name
	return b
}

// Offset sets the byte offset in the movie body
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// SymbolNotFound reports that the named symbol is absent from the
// movie's export tables.
func SymbolNotFound(name []byte) *Error {
	return &Error{
		Phase:  PhaseScan,
		Kind:   KindNotFound,
		Offset: -1,
		Detail: fmt.Sprintf("symbol %q not exported by movie", name),
	}
}

// UnsupportedTag reports a tag the transcoder refuses to process.
func UnsupportedTag(tagName string, offset int) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindUnsupported,
		Tag:    tagName,
		Offset: offset,
		Detail: "tag is not supported",
	}
}

// BitOverflow reports a bit-field read wider than 32 bits.
func BitOverflow(numBits int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOverflow,
		Offset: -1,
		Detail: fmt.Sprintf("bit field width %d exceeds 32", numBits),
	}
}

// BadReference reports a placement referring to a character ID with no
// matching definition.
func BadReference(characterID int, offset int) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindBadReference,
		Offset: offset,
		Detail: fmt.Sprintf("character %d has no definition", characterID),
	}
}

// DuplicateID reports two definitions claiming the same character ID.
func DuplicateID(characterID int, offset int) *Error {
	return &Error{
		Phase:  PhaseScan,
		Kind:   KindBadReference,
		Offset: offset,
		Detail: fmt.Sprintf("character %d defined more than once", characterID),
	}
}

// Overrun reports a nested tag scan running past its parent's declared end.
func Overrun(offset, end int) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidData,
		Offset: offset,
		Detail: fmt.Sprintf("nested tag ends past sprite boundary %d", end),
	}
}

// InvalidData reports malformed movie content.
func InvalidData(phase Phase, offset int, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Offset: offset,
		Detail: detail,
	}
}

// OutOfBounds reports a read or seek past the end of the movie body.
func OutOfBounds(phase Phase, offset, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: offset,
		Detail: fmt.Sprintf("position %d out of bounds (limit %d)", offset, limit),
	}
}

// Unsupported reports an unsupported container feature.
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Offset: -1,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
