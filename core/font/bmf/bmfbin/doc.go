/*
Package bmfbin reads and writes bitmap fonts in a compact binary format.

A font file starts with the magic bytes "PXBF", a format version (u16) and the
number of chunks (u16). Chunks follow, each with a header of

	u32   length of the payload in bytes
	[4]u8 tag

Chunks are 'head' (font-wide constants), 'cmap' (character maps), 'glyf' (glyph
descriptors), 'bitm' (the bitmap blob) and, optionally, 'kern'.
All numbers are little-endian. Unknown chunks are skipped when reading.

Decoded fonts are validated the same way as fonts created with bmf.New.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmfbin

import (
	"fmt"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pxfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("pxfont.fonts")
}

func errFontFormat(x string, v ...interface{}) error {
	return core.Error(core.EFORMAT, "binary bitmap font format: %s", fmt.Sprintf(x, v...))
}
