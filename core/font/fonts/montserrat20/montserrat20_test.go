package montserrat20

import (
	"errors"
	"testing"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/math/fixed"
)

// --- Test Suite Preparation ------------------------------------------------

type AssetTestEnviron struct {
	suite.Suite
	font *bmf.Font
}

func TestAsset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	suite.Run(t, new(AssetTestEnviron))
}

func (env *AssetTestEnviron) SetupSuite() {
	env.font = Font()
	env.Require().NotNil(env.font)
}

// --- Tests -----------------------------------------------------------------

func (env *AssetTestEnviron) TestFontWideConstants() {
	m := env.font.Metrics()
	env.Equal(14, m.LineHeight)
	env.Equal(0, m.BaseLine)
	env.Equal(-1, m.UnderlinePosition)
	env.Equal(1, m.UnderlineThickness)
	env.Equal(uint8(4), env.font.Bpp())
	env.Equal(uint16(16), env.font.KernScale())
	env.Equal(bmf.SubpxNone, env.font.Subpx())
	env.Equal(13, env.font.NumGlyphs())
}

func (env *AssetTestEnviron) TestZeroResolvesToGlyph2() {
	gid := env.font.GlyphIndex('0')
	env.Equal(bmf.GlyphIndex(2), gid)
	g, err := env.font.Glyph(gid)
	env.Require().NoError(err)
	env.Equal(uint16(12), g.BoxW)
	env.Equal(uint16(14), g.BoxH)
	env.Equal(uint32(220), g.AdvW)
	env.Equal(12*14, g.Bitmap.Pixels())
	env.Len(g.Bitmap.Data, 84)
}

func (env *AssetTestEnviron) TestEverySymbolResolvesInOrder() {
	prev := bmf.NotDef
	for i, r := range Symbols {
		gid := env.font.GlyphIndex(r)
		env.Equal(bmf.GlyphIndex(1+i), gid, "symbol %q", r)
		env.Greater(gid, prev)
		env.Equal(r, env.font.CodePoint(gid))
		prev = gid
	}
}

func (env *AssetTestEnviron) TestMissingCodePoints() {
	for _, r := range []rune{'A', ',', '.', '/', 'V', 'X', 0x2c, 0x58, 0, 0x10ffff} {
		env.Equal(bmf.NotDef, env.font.GlyphIndex(r), "code-point %#U", r)
	}
	_, err := env.font.GlyphForRune('A')
	env.True(errors.Is(err, bmf.ErrGlyphAbsent))
	env.Equal(core.EMISSING, core.Code(err))
}

func (env *AssetTestEnviron) TestKerning() {
	minus, one, two := env.font.GlyphIndex('-'), env.font.GlyphIndex('1'), env.font.GlyphIndex('2')
	raw, ok := env.font.KernRaw(minus, one)
	env.True(ok)
	env.Equal(int8(-9), raw)
	raw, ok = env.font.KernRaw(minus, two)
	env.True(ok)
	env.Equal(int8(-6), raw)
	// kern scale 16 leaves the raw value unchanged, -6/16 px
	env.Equal(int32(-6), env.font.KernValue(minus, two))
	env.Equal(fixed.Int26_6(-24), env.font.Kern(minus, two))
	// (1,-) is not a pair
	_, ok = env.font.KernRaw(one, minus)
	env.False(ok)
	env.Equal(int32(0), env.font.KernValue(one, minus))
}

func (env *AssetTestEnviron) TestGlyphsDoNotOverlap() {
	for g := 1; g < env.font.NumGlyphs(); g++ {
		glyph, err := env.font.Glyph(bmf.GlyphIndex(g))
		env.Require().NoError(err)
		size := (glyph.Bitmap.Pixels()*4 + 7) / 8
		env.Len(glyph.Bitmap.Data, size)
		if next, ok := env.font.Descriptor(bmf.GlyphIndex(g + 1)); ok {
			env.LessOrEqual(int(glyph.BitmapIndex)+size, int(next.BitmapIndex))
		}
	}
}

func (env *AssetTestEnviron) TestMinusBitmap() {
	g, err := env.font.GlyphForRune('-')
	env.Require().NoError(err)
	// first row is 0x12 0x22 0x22 0x20
	env.Equal(uint8(1), g.Bitmap.At(0, 0))
	env.Equal(uint8(2), g.Bitmap.At(1, 0))
	env.Equal(uint8(0), g.Bitmap.At(7, 0))
	env.Equal(uint8(0x9), g.Bitmap.At(0, 1))
	env.Equal(uint8(255), g.Bitmap.Alpha(1, 2))
	env.T().Logf("\n%s", g.Bitmap)
}
