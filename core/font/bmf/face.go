package bmf

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face adapts a Font to golang.org/x/image/font.Face, which makes it usable
// with font.Drawer.
//
// Glyph masks are rendered when the face is created and shared between calls.
type Face struct {
	f     *Font
	masks []*image.Alpha // indexed by glyph index
}

var _ font.Face = (*Face)(nil)

// NewFace creates a face for f.
func NewFace(f *Font) *Face {
	face := &Face{f: f, masks: make([]*image.Alpha, f.NumGlyphs())}
	for gid := 1; gid < f.NumGlyphs(); gid++ {
		if g, err := f.Glyph(GlyphIndex(gid)); err == nil {
			face.masks[gid] = g.Bitmap.Mask()
		}
	}
	return face
}

// Font returns the bitmap font of this face.
func (face *Face) Font() *Font {
	return face.f
}

// Close is a no-op.
func (face *Face) Close() error {
	return nil
}

// Glyph returns the draw.DrawMask parameters to draw r at dot.
// ok is false if the font has no glyph for r.
func (face *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	gid := face.f.GlyphIndex(r)
	g, err := face.f.Glyph(gid)
	if err != nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x, y := dot.X.Round(), dot.Y.Round()
	dr = g.Bounds().Add(image.Pt(x, y))
	return dr, face.masks[gid], image.Point{}, face.f.Advance(gid), true
}

// GlyphBounds returns the bounding box of r, relative to the dot, with y
// growing downwards.
func (face *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	gid := face.f.GlyphIndex(r)
	g, err := face.f.Glyph(gid)
	if err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	b := g.Bounds()
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(b.Min.X, b.Min.Y),
		Max: fixed.P(b.Max.X, b.Max.Y),
	}
	return bounds, face.f.Advance(gid), true
}

// GlyphAdvance returns the advance width of r.
func (face *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	gid := face.f.GlyphIndex(r)
	if gid == NotDef {
		return 0, false
	}
	return face.f.Advance(gid), true
}

// Kern returns the horizontal adjustment for the kerning pair (r0, r1).
func (face *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	g0, g1 := face.f.GlyphIndex(r0), face.f.GlyphIndex(r1)
	if g0 == NotDef || g1 == NotDef {
		return 0
	}
	return face.f.Kern(g0, g1)
}

// Metrics returns the metrics for this face. The ascent is the part of the line
// above the baseline.
func (face *Face) Metrics() font.Metrics {
	m := face.f.Metrics()
	return font.Metrics{
		Height:  fixed.I(m.LineHeight),
		Ascent:  fixed.I(m.LineHeight - m.BaseLine),
		Descent: fixed.I(m.BaseLine),
	}
}
