/*
Package montserrat20 provides Montserrat Regular, pre-rendered at 20 pixels with
4 bits per pixel, for a small set of characters: "-", "0"…"9" and "W".

This subset is all a numeric display with a unit label needs, and the font is
small enough to be compiled into firmware-like binaries.

# License

Montserrat is licensed under the SIL Open Font License 1.1.
The code of this package is governed by a 3-Clause BSD license. License file may
be found in the root folder of this module.
*/
package montserrat20

import (
	"sync"

	"github.com/npillmayer/pxfont/core/font/bmf"
)

// Name is the name of the font.
const Name = "Montserrat-Regular 20px 0-9 W minus"

// Symbols are the characters contained in the font.
const Symbols = "-0123456789W"

var fontCreation sync.Once

var montserrat *bmf.Font

// Font returns the font. It is constructed and validated once, at first use.
func Font() *bmf.Font {
	fontCreation.Do(func() {
		var err error
		if montserrat, err = bmf.New(Tables()); err != nil {
			panic("cannot load built-in font: " + err.Error()) // tables are compiled in
		}
	})
	return montserrat
}

// Tables returns a copy of the raw tables of the font.
func Tables() bmf.Tables {
	return bmf.Tables{
		Name:               Name,
		Size:               20,
		Bpp:                4,
		BitmapFormat:       bmf.BitmapPlain,
		LineHeight:         14,
		BaseLine:           0,
		Subpx:              bmf.SubpxNone,
		UnderlinePosition:  -1,
		UnderlineThickness: 1,
		KernScale:          16,
		Bitmap:             glyphBitmap,
		Glyphs:             glyphDsc,
		CMaps:              cmaps,
		KernPairs:          kernPairs,
	}.Clone()
}
