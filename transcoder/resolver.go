package transcoder

import (
	"go.uber.org/zap"

	"github.com/wippyai/swf-transcoder/errors"
	"github.com/wippyai/swf-transcoder/swf"
)

// resolveSprite descends the sprite's nested tag range, stripping action
// tags and following placements into the definitions they reference. The
// range starts past the sprite's own ID and frame count fields and ends at
// the declared body length; a nested tag running past that end is a hard
// error.
func (x *extraction) resolveSprite(d *Definition) error {
	c := x.cursor
	if err := c.Seek(d.BodyStart + 4); err != nil {
		return errors.OutOfBounds(errors.PhaseResolve, d.BodyStart+4, c.Limit())
	}
	end := d.BodyStart + d.Length

	for c.Position() < end {
		h, err := swf.ReadTagHeader(c)
		if err != nil {
			return errors.Wrap(errors.PhaseResolve, errors.KindInvalidData, err, "nested tag header")
		}
		if h.End() > end {
			return errors.Overrun(h.TagStart, end)
		}

		switch h.Code {
		case swf.TagEnd:
			return nil

		case swf.TagDoAction, swf.TagDoInitAction:
			// action code is meaningless once the symbol leaves its document
			d.exclude(h.TagStart, h.End())
			x.log.Debug("stripped action tag",
				zap.String("tag", swf.TagName(h.Code)),
				zap.Int("offset", h.TagStart),
				zap.Int("bytes", h.End()-h.TagStart))

		case swf.TagPlaceObject, swf.TagPlaceObject3:
			return errors.UnsupportedTag(swf.TagName(h.Code), h.TagStart)

		case swf.TagPlaceObject2:
			if err := x.resolvePlaceObject2(d, h); err != nil {
				return err
			}
		}

		if h.End() == end {
			break
		}
		if err := c.Seek(h.End()); err != nil {
			return errors.OutOfBounds(errors.PhaseResolve, h.End(), c.Limit())
		}
	}
	return nil
}

// resolvePlaceObject2 handles one placement inside a sprite scan. The
// cursor sits at the tag's body start, on the flags byte.
//
// With the clip-action flag set, the flag bit is cleared in place (the
// stripped action tags must not leave a dangling reference behind) and the
// optional fixed fields are walked in order to locate where the clip-action
// data begins; everything from there to the tag end is excluded from the
// parent. Without it, only the character ID matters.
func (x *extraction) resolvePlaceObject2(parent *Definition, h swf.TagHeader) error {
	c := x.cursor

	flags, err := c.ReadByte()
	if err != nil {
		return errors.Wrap(errors.PhaseResolve, errors.KindInvalidData, err, "PlaceObject2 flags")
	}
	characterID := -1

	if flags&swf.PlaceFlagHasClipActions != 0 {
		flags &^= swf.PlaceFlagHasClipActions
		if err := c.PutByte(h.BodyStart, flags); err != nil {
			return errors.Wrap(errors.PhaseResolve, errors.KindOutOfBounds, err, "clear clip-action flag")
		}

		pos := h.BodyStart + 1 + 2 // flags, depth

		if flags&swf.PlaceFlagHasCharacter != 0 {
			id, err := c.U16At(pos)
			if err != nil {
				return errors.Wrap(errors.PhaseResolve, errors.KindInvalidData, err, "character ID")
			}
			characterID = int(id)
			pos += 2
		}
		if flags&swf.PlaceFlagHasMatrix != 0 {
			if err := c.Seek(pos); err != nil {
				return errors.OutOfBounds(errors.PhaseResolve, pos, c.Limit())
			}
			if err := swf.SkipMatrix(c); err != nil {
				return err
			}
			pos = c.Position()
		}
		if flags&swf.PlaceFlagHasColorXform != 0 {
			if err := c.Seek(pos); err != nil {
				return errors.OutOfBounds(errors.PhaseResolve, pos, c.Limit())
			}
			if err := swf.SkipColorTransform(c); err != nil {
				return err
			}
			pos = c.Position()
		}
		if flags&swf.PlaceFlagHasRatio != 0 {
			pos += 2
		}
		if flags&swf.PlaceFlagHasName != 0 {
			pos, err = c.CStringEnd(pos)
			if err != nil {
				return errors.Wrap(errors.PhaseResolve, errors.KindInvalidData, err, "placement name")
			}
		}
		if flags&swf.PlaceFlagHasClipDepth != 0 {
			pos += 2
		}

		if pos > h.End() {
			return errors.InvalidData(errors.PhaseResolve, h.TagStart,
				"PlaceObject2 fields run past tag end")
		}
		parent.exclude(pos, h.End())
		x.log.Debug("cleared clip actions",
			zap.Int("offset", h.TagStart),
			zap.Int("bytes", h.End()-pos))
	} else if flags&swf.PlaceFlagHasCharacter != 0 {
		id, err := c.U16At(h.BodyStart + 1 + 2)
		if err != nil {
			return errors.Wrap(errors.PhaseResolve, errors.KindInvalidData, err, "character ID")
		}
		characterID = int(id)
	}

	// a placement that modifies an existing depth carries no character ID
	if characterID == -1 {
		return nil
	}

	ref, ok := x.defs[characterID]
	if !ok {
		return errors.BadReference(characterID, h.TagStart)
	}
	if ref.Used {
		// already counted; shared references are visited once
		return nil
	}
	ref.Used = true
	x.used = append(x.used, ref)

	if ref.Code == swf.TagDefineSprite {
		if err := x.resolveSprite(ref); err != nil {
			return err
		}
		if ref.sparse() {
			x.total += ref.fullLengthRecoded()
		} else {
			x.total += ref.fullLengthAsProvided()
		}
		return nil
	}

	if x.bounds == nil {
		b, err := x.shapeBounds(ref)
		if err != nil {
			return err
		}
		x.bounds = &b
	}
	x.total += ref.fullLengthAsProvided()
	return nil
}

// shapeBounds decodes the bounding RECT that follows a shape's ID field.
func (x *extraction) shapeBounds(d *Definition) (swf.Rect, error) {
	if err := x.cursor.Seek(d.BodyStart + 2); err != nil {
		return swf.Rect{}, errors.OutOfBounds(errors.PhaseResolve, d.BodyStart+2, x.cursor.Limit())
	}
	return swf.DecodeRect(x.cursor)
}
