package bmftext

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
	"github.com/npillmayer/pxfont/core/font/fonts/montserrat20"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	orig := montserrat20.Font()
	data, err := Marshal(orig)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	text := string(data)
	assert.Contains(t, text, "type: sparse_tiny")
	assert.Contains(t, text, "bitmap: !!binary")
	assert.Contains(t, text, "- [1, 3, -9]")
	f, err := Unmarshal(data)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, orig.Tables(), f.Tables())
	for _, r := range montserrat20.Symbols {
		gid := f.GlyphIndex(r)
		assert.Equal(t, orig.GlyphIndex(r), gid)
		g1, _ := orig.Glyph(gid)
		g2, _ := f.Glyph(gid)
		assert.Equal(t, g1.String(), g2.String())
	}
}

func TestRoundTripClassKerning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	tables := montserrat20.Tables()
	n := len(tables.Glyphs)
	tables.KernPairs = nil
	tables.KernClasses = &bmf.KernClasses{
		LeftClass:  make([]uint8, n),
		RightClass: make([]uint8, n),
		LeftCount:  1,
		RightCount: 2,
		Values:     []int8{-3, 7},
	}
	tables.KernClasses.LeftClass[4] = 1
	tables.KernClasses.RightClass[1] = 2
	tables.Subpx = bmf.SubpxHor
	orig, err := bmf.New(tables)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	data, _ := Marshal(orig)
	f, err := Unmarshal(data)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, bmf.SubpxHor, f.Subpx())
	assert.Equal(t, int32(7), f.KernValue(4, 1))
	assert.Equal(t, orig.Tables().KernClasses, f.Tables().KernClasses)
}

const tinyFont = `
name: tiny
size: 1
bpp: 1
line_height: 1
base_line: 0
underline_position: 0
underline_thickness: 0
kern_scale: 16
glyphs:
  - [0, 0, 0, 0, 0, 0]
  - [0, 16, 1, 1, 0, 0]
cmaps:
  - range_start: 120
    range_length: 1
    glyph_id_start: 1
    type: format0_tiny
bitmap: !!binary gA==
`

func TestUnmarshalHandWritten(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	f, err := Unmarshal([]byte(tinyFont))
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	g, err := f.GlyphForRune('x')
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), g.Bitmap.Alpha(0, 0))
}

func TestUnmarshalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	_, err := Unmarshal([]byte("name: [unclosed"))
	assert.Equal(t, core.EFORMAT, core.Code(err))
	_, err = Unmarshal([]byte(strings.Replace(tinyFont, "format0_tiny", "format7", 1)))
	assert.Equal(t, core.EFORMAT, core.Code(err))
	_, err = Unmarshal([]byte(strings.Replace(tinyFont, "[0, 16, 1, 1, 0, 0]", "[0, 16, 1]", 1)))
	assert.Equal(t, core.EFORMAT, core.Code(err))
	_, err = Unmarshal([]byte(strings.Replace(tinyFont, "!!binary gA==", "plain", 1)))
	assert.Equal(t, core.EFORMAT, core.Code(err))
	// valid document, but bitmap index points past the blob
	_, err = Unmarshal([]byte(strings.Replace(tinyFont, "[0, 16, 1, 1, 0, 0]", "[4, 16, 1, 1, 0, 0]", 1)))
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestSaveAndLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "montserrat20.yaml")
	assert.NoError(t, Save(path, montserrat20.Font()))
	f, err := Load(path)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, 13, f.NumGlyphs())
}
