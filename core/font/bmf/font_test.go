package bmf

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

// testTables returns a small 1 bpp font with glyphs for 'A', 'B', 'V' and a
// contiguous run for 'a'…'c'.
//
//	glyph 1 'A' 3×2: 010 101
//	glyph 2 'B' 2×2: 11 10
//	glyph 3 'V' 3×2: 101 010
//	glyph 4…6 'a'…'c' 1×1: 1
func testTables() Tables {
	return Tables{
		Name:       "test",
		Size:       2,
		Bpp:        1,
		LineHeight: 3,
		BaseLine:   1,
		KernScale:  16,
		Bitmap:     []byte{0x54, 0xe0, 0xa8, 0x80, 0x80, 0x80},
		Glyphs: []GlyphDescriptor{
			{},
			{BitmapIndex: 0, AdvW: 64, BoxW: 3, BoxH: 2},
			{BitmapIndex: 1, AdvW: 48, BoxW: 2, BoxH: 2, OfsX: 1},
			{BitmapIndex: 2, AdvW: 64, BoxW: 3, BoxH: 2, OfsY: 1},
			{BitmapIndex: 3, AdvW: 32, BoxW: 1, BoxH: 1},
			{BitmapIndex: 4, AdvW: 32, BoxW: 1, BoxH: 1},
			{BitmapIndex: 5, AdvW: 32, BoxW: 1, BoxH: 1},
		},
		CMaps: []CMap{
			{RangeStart: 'A', RangeLength: 22, GlyphIDStart: 1, Type: CMapSparseTiny,
				UnicodeList: []uint16{0, 1, 21}},
			{RangeStart: 'a', RangeLength: 3, GlyphIDStart: 4, Type: CMapFormat0Tiny},
		},
		KernPairs: []KernPair{
			{Left: 3, Right: 1, Value: -16},
			{Left: 1, Right: 3, Value: -8},
		},
	}
}

func TestFontLookups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, err := New(testTables())
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, GlyphIndex(1), f.GlyphIndex('A'))
	assert.Equal(t, GlyphIndex(3), f.GlyphIndex('V'))
	assert.Equal(t, GlyphIndex(5), f.GlyphIndex('b'))
	assert.Equal(t, NotDef, f.GlyphIndex('C'))
	assert.Equal(t, 'c', f.CodePoint(6))
	assert.True(t, f.HasGlyph('a'))
	assert.False(t, f.HasGlyph('z'))
	assert.Equal(t, fixed.I(4), f.Advance(1))
	assert.Equal(t, fixed.Int26_6(0), f.Advance(NotDef))
}

func TestKerningIsOrdered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, err := New(testTables())
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, int32(-16), f.KernValue(3, 1))
	assert.Equal(t, int32(-8), f.KernValue(1, 3))
	assert.Equal(t, int32(0), f.KernValue(2, 1))
	assert.Equal(t, fixed.I(-1), f.Kern(3, 1))
	assert.Equal(t, fixed.I(4)-fixed.I(1), f.AdvanceWithKerning(3, 1))
	//
	tables := testTables()
	tables.KernScale = 32 // 2.0 in 4.4 format
	f, err = New(tables)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, int32(-32), f.KernValue(3, 1))
}

func TestClassKerning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	tables := testTables()
	tables.KernPairs = nil
	tables.KernClasses = &KernClasses{
		LeftClass:  []uint8{0, 1, 0, 2, 0, 0, 0},
		RightClass: []uint8{0, 1, 0, 1, 0, 0, 0},
		LeftCount:  2,
		RightCount: 1,
		Values:     []int8{-4, -12},
	}
	f, err := New(tables)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, int32(-4), f.KernValue(1, 3))
	assert.Equal(t, int32(-12), f.KernValue(3, 1))
	assert.Equal(t, int32(0), f.KernValue(2, 1))
	_, ok := f.KernRaw(1, 2)
	assert.False(t, ok)
}

func TestGlyphAbsent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, _ := New(testTables())
	for _, gid := range []GlyphIndex{NotDef, 7, 0xffff} {
		g, err := f.Glyph(gid)
		if !errors.Is(err, ErrGlyphAbsent) {
			t.Errorf("expected glyph %d to be absent, have %v", gid, err)
		}
		if core.Code(err) != core.EMISSING {
			t.Errorf("expected error code EMISSING for glyph %d", gid)
		}
		if g.Bitmap.Data != nil {
			t.Errorf("expected no bitmap for absent glyph %d", gid)
		}
	}
}

func TestTablesAreCopied(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	tables := testTables()
	f, _ := New(tables)
	tables.Bitmap[0] = 0xff
	tables.CMaps[0].UnicodeList[1] = 7
	g, _ := f.Glyph(1)
	assert.Equal(t, uint8(0), g.Bitmap.At(0, 0))
	assert.Equal(t, GlyphIndex(2), f.GlyphIndex('B'))
	copied := f.Tables()
	copied.Glyphs[1].AdvW = 1000
	assert.Equal(t, fixed.I(4), f.Advance(1))
}

func TestConcurrentLookups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, _ := New(testTables())
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if f.GlyphIndex('V') != 3 || f.KernValue(3, 1) != -16 {
					errs <- "inconsistent lookup"
					return
				}
				if _, err := f.Glyph(3); err != nil {
					errs <- err.Error()
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
