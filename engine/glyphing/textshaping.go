package glyphing

import (
	"fmt"
	"io"

	"github.com/npillmayer/pxfont/core/font/bmf"
	"golang.org/x/image/math/fixed"
)

// Direction is the direction to typeset text in.
type Direction int

// Direction to typeset text in.
const (
	LeftToRight Direction = iota
	RightToLeft           = 1
	TopToBottom           = 2
	BottomToTop           = 3
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	case TopToBottom:
		return "TopToBottom"
	case BottomToTop:
		return "BottomToTop"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// A ShapedGlyph is a glyph positioned by a shaper. All dimensions are pixels in
// 26.6 fixed-point format.
type ShapedGlyph struct {
	ClusterID int            // position of code-point(s) for this glyph in original string
	XAdvance  fixed.Int26_6  // advance after glyph has been set, including kerning
	YAdvance  fixed.Int26_6  //
	XOffset   fixed.Int26_6  // position of anchor dot for glyph
	YOffset   fixed.Int26_6  //
	GID       bmf.GlyphIndex // glyph index within font, bmf.NotDef for missing glyphs
	CodePoint rune           // code-point of first rune to produce this glyph
	Font      *bmf.Font      // font the glyph has been taken from
}

func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(GID=%d, advance=%s)", g.GID, g.XAdvance)
}

// A Shaper creates a sequence of glyphs from a sequence of
// Unicode code-points. Glyphs are taken from a bitmap font.
//
// Clients may provide additional information in Params, as well as
// textual context ([2][]rune).
type Shaper interface {
	Shape(io.RuneReader, []ShapedGlyph, [][]rune, Params) (GlyphSequence, error)
}

// Params collects shaping parameters.
type Params struct {
	Font        *bmf.Font     // primary font
	Fallback    []*bmf.Font   // fonts to consult for code-points missing in Font
	Direction   Direction     // writing direction
	LetterSpace fixed.Int26_6 // extra space between glyphs
	NoKerning   bool          // switch off kerning
}

// GlyphSequence contains a sequence of shaped glyphs.
type GlyphSequence struct {
	Glyphs  []ShapedGlyph // resulting sequence of glyphs
	W, H, D fixed.Int26_6 // width, height, depth of bounding box
	Missing []rune        // code-points no font has a glyph for
}

// BoundingBox returns width, height and depth of a glyph sequence.
func (seq GlyphSequence) BoundingBox() (w fixed.Int26_6, h fixed.Int26_6, d fixed.Int26_6) {
	return seq.W, seq.H, seq.D
}
