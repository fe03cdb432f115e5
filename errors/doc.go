// Package errors provides structured error types for the swf-transcoder library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the offending tag name, the
// absolute byte offset in the decompressed movie body, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindInvalidData).
//		Tag("DefineSprite").
//		Offset(412).
//		Detail("frame count field truncated").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SymbolNotFound(name)
//	err := errors.UnsupportedTag("PlaceObject3", offset)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Phase and Kind, so callers can test for a
// category without caring about offsets or detail text.
package errors
