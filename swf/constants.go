package swf

import "strconv"

// Tag codes used by the transcoder. The stream carries many more; anything
// not listed here is copied or skipped without interpretation.
const (
	TagEnd          uint16 = 0  // terminates a tag stream
	TagShowFrame    uint16 = 1  // frame boundary
	TagDefineShape  uint16 = 2  // shape definition
	TagPlaceObject  uint16 = 4  // legacy placement (rejected)
	TagDoAction     uint16 = 12 // frame ActionScript (stripped)
	TagDefineShape2 uint16 = 22 // shape definition, v2
	TagPlaceObject2 uint16 = 26 // placement with flags byte
	TagDefineShape3 uint16 = 32 // shape definition, v3
	TagDefineSprite uint16 = 39 // nested tag stream definition
	TagExportAssets uint16 = 56 // AS2 export table
	TagDoInitAction uint16 = 59 // sprite init ActionScript (stripped)
	TagPlaceObject3 uint16 = 70 // placement with filters (rejected)
	TagSymbolClass  uint16 = 76 // AS3 export table
	TagDefineShape4 uint16 = 83 // shape definition, v4
)

// PlaceObject2 flag bits, low to high.
const (
	PlaceFlagMove           byte = 1 << 0
	PlaceFlagHasCharacter   byte = 1 << 1
	PlaceFlagHasMatrix      byte = 1 << 2
	PlaceFlagHasColorXform  byte = 1 << 3
	PlaceFlagHasRatio       byte = 1 << 4
	PlaceFlagHasName        byte = 1 << 5
	PlaceFlagHasClipDepth   byte = 1 << 6
	PlaceFlagHasClipActions byte = 1 << 7
)

// Tag header encoding: the upper 10 bits of the leading uint16 carry the
// tag code, the lower 6 the body length. LongFormLength in the length field
// means a uint32 length follows.
const (
	tagCodeShift   = 6
	tagLengthMask  = 0x3F
	LongFormLength = 63
)

// TagName returns a readable name for the tag codes the transcoder cares
// about, and a numeric fallback for the rest.
func TagName(code uint16) string {
	switch code {
	case TagEnd:
		return "End"
	case TagShowFrame:
		return "ShowFrame"
	case TagDefineShape:
		return "DefineShape"
	case TagPlaceObject:
		return "PlaceObject"
	case TagDoAction:
		return "DoAction"
	case TagDefineShape2:
		return "DefineShape2"
	case TagPlaceObject2:
		return "PlaceObject2"
	case TagDefineShape3:
		return "DefineShape3"
	case TagDefineSprite:
		return "DefineSprite"
	case TagExportAssets:
		return "ExportAssets"
	case TagDoInitAction:
		return "DoInitAction"
	case TagPlaceObject3:
		return "PlaceObject3"
	case TagSymbolClass:
		return "SymbolClass"
	case TagDefineShape4:
		return "DefineShape4"
	}
	return "Tag(" + strconv.Itoa(int(code)) + ")"
}

// IsDefinition reports whether a tag code defines a referencable character.
func IsDefinition(code uint16) bool {
	switch code {
	case TagDefineShape, TagDefineShape2, TagDefineShape3, TagDefineShape4, TagDefineSprite:
		return true
	}
	return false
}
