// Package transcoder extracts a single named display-list symbol from a
// compiled SWF movie and re-emits it as a minimal, self-contained movie.
//
// Extraction runs in three phases over one decompressed, in-memory body:
//
//  1. Scan: one pass over the top-level tag stream registers every shape
//     and sprite definition and matches the requested symbol name against
//     the movie's export tables.
//  2. Resolve: a depth-first walk from the target definition follows
//     placements through nested sprites, marking each referenced
//     definition used exactly once. DoAction and DoInitAction tags are
//     excluded from their owning sprite, and PlaceObject2 clip actions are
//     stripped (with the flag bit cleared in place). The walk accumulates
//     the exact output length as it goes.
//  3. Write: the used definitions are emitted in original stream order,
//     untouched ones verbatim and modified ones through a sparse rewrite
//     that skips the excluded ranges; then the target itself with its ID
//     zeroed, a synthetic SymbolClass binding character 0 to the
//     configured class name, and the container wrap.
//
// Everything that is kept keeps its exact original bytes. Headers are the
// only thing re-encoded, and only for tags whose length changed or whose ID
// is rewritten.
//
//	var out bytes.Buffer
//	res, err := transcoder.Extract(data, []byte("assets.HeroSprite"), &out, transcoder.Options{})
//
// Operations are synchronous and single threaded; one call owns its input
// buffer and output sink for its whole duration.
package transcoder
