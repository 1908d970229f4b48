/*
Package bitmapshaper implements a shaper for bitmap fonts.

Text is normalized to NFC and split into grapheme clusters. Every cluster is
represented by the glyph for its first code-point, taken from the primary font or
from the first fallback font containing it. Glyphs are advanced by their advance
width, letter spacing and kerning between adjacent glyphs of the same font.

Bitmap fonts do not carry substitution or positioning tables, so combining marks
following a base character are not rendered.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package bitmapshaper

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pxfont.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("pxfont.glyphs")
}
