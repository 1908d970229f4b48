/*
Package fontregistry manages a registry for loaded bitmap fonts.

Fonts are stored under a normalized name and their pixel size. Bitmap fonts are
pre-rendered at a single size, so a request for a size the registry does not hold
is answered with a fallback font, together with an error.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pxfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("pxfont.fonts")
}
