/*
Package bmf holds pre-rendered bitmap fonts and answers the three questions a
text renderer asks of them: which glyph represents a code-point, what does the
glyph look like, and how far apart should two adjacent glyphs be set.

A bitmap font is a set of immutable tables, produced once by a font compiler:

▪︎ a bitmap blob with the pixels of all glyphs, packed at 1, 2, 3, 4 or 8 bits per pixel

▪︎ a glyph descriptor per glyph index (offset into the blob, advance, bounding box)

▪︎ one or more character maps from code-points to glyph indices

▪︎ optional kerning, either as glyph pairs or as glyph classes

Tables are checked when a Font is created with New. A Font which has been created
successfully will never read outside of its bitmap blob, and all of its methods may be
called concurrently.

Glyph index 0 is reserved for "glyph not found" (NotDef). Lookups for code-points not
covered by a font return NotDef; fetching the bitmap of NotDef is an error, never an
empty bitmap.

# Units

Advance widths and kerning values are stored in 1/16 of a pixel. Methods returning
fixed.Int26_6 values convert to 1/64 of a pixel, as is customary for
golang.org/x/image/font.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmf

import (
	"errors"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pxfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("pxfont.fonts")
}

// ErrGlyphAbsent is wrapped by errors for glyph lookups without a result.
var ErrGlyphAbsent = errors.New("glyph absent")

// ErrInvalidTable is wrapped by errors for font tables failing validation.
var ErrInvalidTable = errors.New("invalid font table")

func errInvalid(format string, v ...interface{}) error {
	return core.WrapError(ErrInvalidTable, core.EINVALID, format, v...)
}

func errAbsent(format string, v ...interface{}) error {
	return core.WrapError(ErrGlyphAbsent, core.EMISSING, format, v...)
}
