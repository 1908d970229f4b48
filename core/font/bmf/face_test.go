package bmf

import (
	"image"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestFaceMetricsAndAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, _ := New(testTables())
	face := NewFace(f)
	m := face.Metrics()
	assert.Equal(t, fixed.I(3), m.Height)
	assert.Equal(t, fixed.I(2), m.Ascent)
	assert.Equal(t, fixed.I(1), m.Descent)
	adv, ok := face.GlyphAdvance('B')
	assert.True(t, ok)
	assert.Equal(t, fixed.I(3), adv)
	_, ok = face.GlyphAdvance('?')
	assert.False(t, ok)
	assert.Equal(t, fixed.I(-1), face.Kern('V', 'A'))
	assert.Equal(t, fixed.Int26_6(0), face.Kern('V', '?'))
}

func TestFaceGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, _ := New(testTables())
	face := NewFace(f)
	dr, mask, maskp, adv, ok := face.Glyph(fixed.P(10, 20), 'B')
	if !assert.True(t, ok) {
		t.FailNow()
	}
	assert.Equal(t, image.Rect(11, 18, 13, 20), dr)
	assert.Equal(t, image.Point{}, maskp)
	assert.Equal(t, fixed.I(3), adv)
	assert.Equal(t, 2, mask.Bounds().Dx())
	_, _, _, _, ok = face.Glyph(fixed.P(0, 0), 'Z')
	assert.False(t, ok)
	bounds, _, ok := face.GlyphBounds('V')
	assert.True(t, ok)
	assert.Equal(t, fixed.I(-3), bounds.Min.Y)
}

func TestFaceWithDrawer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, _ := New(testTables())
	dst := image.NewAlpha(image.Rect(0, 0, 16, 4))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: NewFace(f),
		Dot:  fixed.P(0, 3),
	}
	d.DrawString("AB")
	// 'A' at x=0…2, y=1…2, top row 010
	assert.Equal(t, uint8(0), dst.AlphaAt(0, 1).A)
	assert.Equal(t, uint8(255), dst.AlphaAt(1, 1).A)
	assert.Equal(t, fixed.I(4+3), d.Dot.X)
	assert.Equal(t, fixed.I(7), font.MeasureString(d.Face, "AB"))
}
