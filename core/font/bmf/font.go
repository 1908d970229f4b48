package bmf

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Font is a validated, immutable bitmap font.
// All methods are safe for concurrent use.
type Font struct {
	t     Tables
	cmaps []GlyphIndexMap
	kern  kerner
}

// New validates a set of font tables and creates a Font from them.
// The tables are copied, later changes to t do not affect the font.
//
// If validation fails, an error with code core.EINVALID is returned, which wraps
// ErrInvalidTable.
func New(t Tables) (*Font, error) {
	t = t.Clone()
	if err := validate(&t); err != nil {
		tracer().Errorf("font %q rejected: %v", t.Name, err)
		return nil, err
	}
	f := &Font{t: t, cmaps: make([]GlyphIndexMap, len(t.CMaps))}
	for i, cm := range t.CMaps {
		f.cmaps[i] = makeGlyphIndexMap(cm)
	}
	switch {
	case len(t.KernPairs) > 0:
		f.kern = makePairKerning(t.KernPairs)
	case t.KernClasses != nil:
		f.kern = classKerning{kc: *t.KernClasses}
	default:
		f.kern = noKerning{}
	}
	tracer().Debugf("font %q: %d glyphs, %d cmaps, %d bytes of bitmap data", t.Name,
		len(t.Glyphs), len(t.CMaps), len(t.Bitmap))
	return f, nil
}

// Tables returns a copy of the font's tables.
func (f *Font) Tables() Tables {
	return f.t.Clone()
}

func (f *Font) String() string {
	return fmt.Sprintf("%s@%dpx/%dbpp", f.t.Name, f.t.Size, f.t.Bpp)
}

// Name returns the font's name.
func (f *Font) Name() string { return f.t.Name }

// Size returns the nominal pixel size the font has been rendered at.
func (f *Font) Size() int { return f.t.Size }

// Bpp returns the bit depth of the glyph bitmaps.
func (f *Font) Bpp() uint8 { return f.t.Bpp }

// NumGlyphs returns the number of glyphs, including the NotDef sentinel.
func (f *Font) NumGlyphs() int { return len(f.t.Glyphs) }

// KernScale returns the global scale factor for kerning values.
func (f *Font) KernScale() uint16 { return f.t.KernScale }

// Subpx returns the sub-pixel mode the font has been rendered for.
func (f *Font) Subpx() Subpx { return f.t.Subpx }

// FontMetrics holds font-wide metrics in pixels.
type FontMetrics struct {
	LineHeight         int // vertical advance per line of text
	BaseLine           int // baseline, measured from the bottom of the line
	UnderlinePosition  int
	UnderlineThickness int
}

// Metrics returns the font-wide metrics.
func (f *Font) Metrics() FontMetrics {
	return FontMetrics{
		LineHeight:         int(f.t.LineHeight),
		BaseLine:           int(f.t.BaseLine),
		UnderlinePosition:  int(f.t.UnderlinePosition),
		UnderlineThickness: int(f.t.UnderlineThickness),
	}
}

// --- Code-points -----------------------------------------------------------

// GlyphIndex returns the glyph index for a code-point.
// If the font has no glyph for r, NotDef is returned.
func (f *Font) GlyphIndex(r rune) GlyphIndex {
	for _, cm := range f.cmaps {
		if gid := cm.Lookup(r); gid != NotDef {
			return gid
		}
	}
	return NotDef
}

// HasGlyph is true if the font contains a glyph for r.
func (f *Font) HasGlyph(r rune) bool {
	return f.GlyphIndex(r) != NotDef
}

// CodePoint returns the code-point represented by a glyph, or 0 if no
// character map references gid.
//
// This is an inefficient operation: character maps are scanned sequentially.
func (f *Font) CodePoint(gid GlyphIndex) rune {
	if gid == NotDef {
		return 0
	}
	for _, cm := range f.cmaps {
		if r := cm.ReverseLookup(gid); r != 0 {
			return r
		}
	}
	return 0
}

// --- Glyphs ----------------------------------------------------------------

// Descriptor returns the descriptor of a glyph. It returns false for NotDef
// and for glyph indices out of range.
func (f *Font) Descriptor(gid GlyphIndex) (GlyphDescriptor, bool) {
	if gid == NotDef || int(gid) >= len(f.t.Glyphs) {
		return GlyphDescriptor{}, false
	}
	return f.t.Glyphs[gid], true
}

// Glyph returns a glyph's metrics and a view onto its pixels.
//
// For NotDef and for glyph indices out of range an error with code core.EMISSING
// is returned, which wraps ErrGlyphAbsent. Clients decide about a fallback.
func (f *Font) Glyph(gid GlyphIndex) (Glyph, error) {
	gd, ok := f.Descriptor(gid)
	if !ok {
		return Glyph{}, errAbsent("font %s has no glyph %d", f.t.Name, gid)
	}
	start := int(gd.BitmapIndex)
	end := start + packedSize(gd.BoxW, gd.BoxH, f.t.Bpp)
	return Glyph{
		Index:           gid,
		GlyphDescriptor: gd,
		Bitmap: Bitmap{
			W:    int(gd.BoxW),
			H:    int(gd.BoxH),
			Bpp:  f.t.Bpp,
			Data: f.t.Bitmap[start:end:end],
		},
	}, nil
}

// GlyphForRune resolves a code-point and fetches its glyph.
func (f *Font) GlyphForRune(r rune) (Glyph, error) {
	gid := f.GlyphIndex(r)
	if gid == NotDef {
		return Glyph{}, errAbsent("font %s has no glyph for %#U", f.t.Name, r)
	}
	return f.Glyph(gid)
}

// --- Advance and kerning ---------------------------------------------------

// KernRaw returns the raw 4.4 kerning value for an ordered pair of glyphs.
// The second return value is false if the pair is not kerned.
func (f *Font) KernRaw(left, right GlyphIndex) (int8, bool) {
	return f.kern.raw(left, right)
}

// KernValue returns the kerning between two glyphs in 1/16 pixel, the unit of
// advance widths. It is the raw value scaled by the kern scale, which is itself a
// 4.4 fixed point number. Pairs without kerning return 0.
//
// (left, right) and (right, left) are different pairs.
func (f *Font) KernValue(left, right GlyphIndex) int32 {
	raw, ok := f.kern.raw(left, right)
	if !ok {
		return 0
	}
	return int32(raw) * int32(f.t.KernScale) >> 4
}

// Kern returns the kerning between two glyphs in 26.6 fixed point pixels.
func (f *Font) Kern(left, right GlyphIndex) fixed.Int26_6 {
	return fixed.Int26_6(f.KernValue(left, right) * 4)
}

// Advance returns the advance width of a glyph in 26.6 fixed point pixels.
// NotDef has an advance of 0.
func (f *Font) Advance(gid GlyphIndex) fixed.Int26_6 {
	gd, ok := f.Descriptor(gid)
	if !ok {
		return 0
	}
	return fixed.Int26_6(gd.AdvW * 4)
}

// AdvanceWithKerning returns the advance of a glyph followed by glyph next,
// including kerning between the two.
func (f *Font) AdvanceWithKerning(gid, next GlyphIndex) fixed.Int26_6 {
	return f.Advance(gid) + f.Kern(gid, next)
}
