package bitmapshaper

import (
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
	"github.com/npillmayer/pxfont/engine/glyphing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

var graphemeClassesSetup sync.Once

type bmshape struct{}

// Shaper creates a shaper for bitmap fonts. Shapers are stateless and may be
// used concurrently.
func Shaper() glyphing.Shaper {
	graphemeClassesSetup.Do(func() { grapheme.SetupGraphemeClasses() })
	return bmshape{}
}

// Shape creates a glyph sequence from a text.
//
// Clusters no font has a glyph for are represented by a glyph with GID
// bmf.NotDef and zero advance, and are reported in the sequence's Missing list.
// Vertical directions are not supported.
func (bms bmshape) Shape(text io.RuneReader, buf []glyphing.ShapedGlyph, ctx [][]rune,
	p glyphing.Params) (glyphing.GlyphSequence, error) {
	//
	if p.Font == nil {
		return glyphing.GlyphSequence{}, core.Error(core.EINVALID, "shaping requires a font")
	}
	switch p.Direction {
	case glyphing.LeftToRight, glyphing.RightToLeft:
	default:
		return glyphing.GlyphSequence{}, core.Error(core.EINVALID,
			"bitmap shaper cannot shape in direction %s", p.Direction)
	}
	seq := glyphing.GlyphSequence{Glyphs: buf[:0]}
	seq.H, seq.D = lineExtent(p.Font)
	if text == nil {
		return seq, nil
	}
	normalized, err := readNormalized(text)
	if err != nil {
		return seq, err
	}
	onGraphemes := grapheme.NewBreaker(1)
	graphemeSplitter := segment.NewSegmenter(onGraphemes)
	graphemeSplitter.Init(strings.NewReader(normalized))
	pos := 0
	for graphemeSplitter.Next() {
		grphm := graphemeSplitter.Bytes()
		codepoint, _ := utf8.DecodeRune(grphm)
		g := glyphing.ShapedGlyph{
			ClusterID: pos,
			CodePoint: codepoint,
		}
		pos += utf8.RuneCount(grphm)
		if g.Font, g.GID = lookup(codepoint, p); g.Font == nil {
			tracer().Debugf("no glyph for %#U", codepoint)
			seq.Missing = append(seq.Missing, codepoint)
			seq.Glyphs = append(seq.Glyphs, g)
			continue
		}
		g.XAdvance = g.Font.Advance(g.GID)
		if prev := lastPlaced(seq.Glyphs); prev != nil {
			space := p.LetterSpace
			if !p.NoKerning && prev.Font == g.Font {
				space += g.Font.Kern(prev.GID, g.GID)
			}
			prev.XAdvance += space
			seq.W += space
		}
		if h, d := lineExtent(g.Font); h > seq.H || d > seq.D {
			seq.H, seq.D = max26_6(h, seq.H), max26_6(d, seq.D)
		}
		seq.Glyphs = append(seq.Glyphs, g)
		seq.W += g.XAdvance
	}
	if p.Direction == glyphing.RightToLeft {
		reverse(seq.Glyphs)
	}
	tracer().Debugf("shaped %d glyphs, width %s", len(seq.Glyphs), seq.W)
	return seq, nil
}

// Measure returns the extent of a possibly multi-line text. Lines are separated
// by '\n'. The width is the width of the widest line, the height is the sum of the
// line heights plus lineSpace between lines. letterSpace replaces the letter
// spacing in p. Empty text has an extent of zero.
func Measure(text string, p glyphing.Params, letterSpace, lineSpace fixed.Int26_6) (fixed.Point26_6, error) {
	extent := fixed.Point26_6{}
	if text == "" {
		return extent, nil
	}
	shaper := Shaper()
	p.LetterSpace = letterSpace
	var buf []glyphing.ShapedGlyph
	for i, line := range strings.Split(text, "\n") {
		seq, err := shaper.Shape(strings.NewReader(line), buf, nil, p)
		if err != nil {
			return extent, err
		}
		if seq.W > extent.X {
			extent.X = seq.W
		}
		if i > 0 {
			extent.Y += lineSpace
		}
		extent.Y += seq.H + seq.D
		buf = seq.Glyphs
	}
	return extent, nil
}

// lookup finds the glyph for a code-point in the primary font or in one of the
// fallback fonts.
func lookup(r rune, p glyphing.Params) (*bmf.Font, bmf.GlyphIndex) {
	if gid := p.Font.GlyphIndex(r); gid != bmf.NotDef {
		return p.Font, gid
	}
	for _, f := range p.Fallback {
		if f == nil {
			continue
		}
		if gid := f.GlyphIndex(r); gid != bmf.NotDef {
			return f, gid
		}
	}
	return nil, bmf.NotDef
}

// lineExtent returns height above and depth below the base line of a font.
func lineExtent(f *bmf.Font) (h, d fixed.Int26_6) {
	m := f.Metrics()
	return fixed.I(m.LineHeight - m.BaseLine), fixed.I(m.BaseLine)
}

// lastPlaced returns the last glyph of a sequence, if it has been found in a font.
func lastPlaced(glyphs []glyphing.ShapedGlyph) *glyphing.ShapedGlyph {
	if len(glyphs) == 0 || glyphs[len(glyphs)-1].Font == nil {
		return nil
	}
	return &glyphs[len(glyphs)-1]
}

func readNormalized(text io.RuneReader) (string, error) {
	var b strings.Builder
	for {
		r, _, err := text.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String()), nil
}

func reverse(glyphs []glyphing.ShapedGlyph) {
	for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
		glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
	}
}

func max26_6(a, b fixed.Int26_6) fixed.Int26_6 {
	if a > b {
		return a
	}
	return b
}
