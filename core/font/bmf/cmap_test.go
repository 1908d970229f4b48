package bmf

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSparseTinyLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	cm := makeGlyphIndexMap(CMap{
		RangeStart:   45,
		RangeLength:  43,
		GlyphIDStart: 1,
		Type:         CMapSparseTiny,
		UnicodeList:  []uint16{0x0, 0x3, 0x4, 0x2a},
	})
	for r, gid := range map[rune]GlyphIndex{
		'-': 1, '0': 2, '1': 3, 'W': 4,
		'.': 0, 'A': 0, ',': 0, 'X': 0, 0: 0, 200: 0,
	} {
		if g := cm.Lookup(r); g != gid {
			t.Errorf("expected %#U to map to glyph %d, is %d", r, gid, g)
		}
	}
	if r := cm.ReverseLookup(4); r != 'W' {
		t.Errorf("expected glyph 4 to be 'W', is %#U", r)
	}
	if r := cm.ReverseLookup(0); r != 0 {
		t.Errorf("expected NotDef not to be reverse mapped, is %#U", r)
	}
}

func TestSparseFullLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	cm := makeGlyphIndexMap(CMap{
		RangeStart:     0x400,
		RangeLength:    0x100,
		GlyphIDStart:   10,
		Type:           CMapSparseFull,
		UnicodeList:    []uint16{0x10, 0x20, 0x30},
		GlyphIDOfsList: []uint16{2, 0, 1},
	})
	if g := cm.Lookup(0x410); g != 12 {
		t.Errorf("expected U+0410 at glyph 12, is %d", g)
	}
	if g := cm.Lookup(0x420); g != 10 {
		t.Errorf("expected U+0420 at glyph 10, is %d", g)
	}
	if g := cm.Lookup(0x421); g != NotDef {
		t.Errorf("expected U+0421 to be missing, is %d", g)
	}
	if r := cm.ReverseLookup(11); r != 0x430 {
		t.Errorf("expected glyph 11 to be U+0430, is %#U", r)
	}
}

func TestFormat0Lookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	tiny := makeGlyphIndexMap(CMap{
		RangeStart:   'a',
		RangeLength:  26,
		GlyphIDStart: 5,
		Type:         CMapFormat0Tiny,
	})
	if g := tiny.Lookup('c'); g != 7 {
		t.Errorf("expected 'c' at glyph 7, is %d", g)
	}
	if g := tiny.Lookup('{'); g != NotDef {
		t.Errorf("expected '{' to be out of range, is %d", g)
	}
	if r := tiny.ReverseLookup(30); r != 'z' {
		t.Errorf("expected glyph 30 to be 'z', is %#U", r)
	}
	full := makeGlyphIndexMap(CMap{
		RangeStart:     '0',
		RangeLength:    3,
		GlyphIDStart:   1,
		Type:           CMapFormat0Full,
		GlyphIDOfsList: []uint16{2, 1, 0},
	})
	if g := full.Lookup('0'); g != 3 {
		t.Errorf("expected '0' at glyph 3, is %d", g)
	}
	if g := full.Lookup('2'); g != 1 {
		t.Errorf("expected offset 0 to map '2' to glyph 1, is %d", g)
	}
	if r := full.ReverseLookup(1); r != '2' {
		t.Errorf("expected glyph 1 to be '2', is %#U", r)
	}
	if g := full.Lookup('3'); g != NotDef {
		t.Errorf("expected '3' to be out of range, is %d", g)
	}
}
