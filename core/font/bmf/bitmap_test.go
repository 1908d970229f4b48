package bmf

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBitmapUnpacking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	// 3 bpp, 3 pixels 7, 2, 5 = 111 010 101 -> 0xea 0x80
	b := Bitmap{W: 3, H: 1, Bpp: 3, Data: []byte{0xea, 0x80}}
	assert.Equal(t, uint8(7), b.At(0, 0))
	assert.Equal(t, uint8(2), b.At(1, 0))
	assert.Equal(t, uint8(5), b.At(2, 0)) // straddles bytes
	assert.Equal(t, uint8(255), b.Alpha(0, 0))
	assert.Equal(t, uint8(73), b.Alpha(1, 0))
	//
	// 2 bpp, 2×2: 3 0 / 1 2 = 11 00 01 10 -> 0xc6
	b = Bitmap{W: 2, H: 2, Bpp: 2, Data: []byte{0xc6}}
	assert.Equal(t, uint8(3), b.At(0, 0))
	assert.Equal(t, uint8(0), b.At(1, 0))
	assert.Equal(t, uint8(1), b.At(0, 1))
	assert.Equal(t, uint8(170), b.Alpha(1, 1))
	assert.Equal(t, uint8(0), b.At(2, 0), "pixels outside of bitmap are transparent")
	//
	b = Bitmap{W: 2, H: 1, Bpp: 8, Data: []byte{0x10, 0xfe}}
	assert.Equal(t, uint8(0xfe), b.Alpha(1, 0))
}

func TestBitmapMask(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, _ := New(testTables())
	g, err := f.GlyphForRune('A')
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	mask := g.Bitmap.Mask()
	assert.Equal(t, 3, mask.Rect.Dx())
	assert.Equal(t, 2, mask.Rect.Dy())
	assert.Equal(t, []uint8{0, 255, 0, 255, 0, 255}, mask.Pix)
	assert.Equal(t, " @ \n@ @\n", g.Bitmap.String())
}

func TestGlyphBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, _ := New(testTables())
	g, _ := f.GlyphForRune('V') // 3×2, raised by 1
	r := g.Bounds()
	assert.Equal(t, 0, r.Min.X)
	assert.Equal(t, -3, r.Min.Y)
	assert.Equal(t, 3, r.Max.X)
	assert.Equal(t, -1, r.Max.Y)
}
