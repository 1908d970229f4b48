package bmf

import "fmt"

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// NotDef is the glyph index signalling "no glyph for this code-point".
const NotDef GlyphIndex = 0

// GlyphDescriptor holds the metrics of a single glyph and the location of its
// pixels within the font's bitmap blob.
type GlyphDescriptor struct {
	BitmapIndex uint32 // byte offset into the bitmap blob
	AdvW        uint32 // advance width in 1/16 pixel
	BoxW        uint16 // bounding box width in pixels
	BoxH        uint16 // bounding box height in pixels
	OfsX        int16  // x offset of the bounding box from the pen position
	OfsY        int16  // y offset of the bounding box's bottom edge from the baseline
}

// CMapType selects the representation of a character map.
type CMapType uint8

// Character map representations.
//
//	CMapFormat0Tiny  contiguous run, glyph = GlyphIDStart + (c - RangeStart)
//	CMapFormat0Full  dense array,    glyph = GlyphIDStart + GlyphIDOfsList[c - RangeStart]
//	CMapSparseTiny   sparse list,    glyph = GlyphIDStart + i, where UnicodeList[i] = c - RangeStart
//	CMapSparseFull   sparse list,    glyph = GlyphIDStart + GlyphIDOfsList[i]
const (
	CMapFormat0Tiny CMapType = iota
	CMapFormat0Full
	CMapSparseTiny
	CMapSparseFull
)

func (t CMapType) String() string {
	switch t {
	case CMapFormat0Tiny:
		return "format0-tiny"
	case CMapFormat0Full:
		return "format0-full"
	case CMapSparseTiny:
		return "sparse-tiny"
	case CMapSparseFull:
		return "sparse-full"
	}
	return fmt.Sprintf("cmap-type(%d)", uint8(t))
}

// CMap maps a range of code-points to glyph indices.
//
// UnicodeList holds code-points relative to RangeStart and has to be strictly
// ascending. It is used by the sparse types only. GlyphIDOfsList is used by the
// 'full' types only.
type CMap struct {
	RangeStart     rune
	RangeLength    uint32
	GlyphIDStart   GlyphIndex
	Type           CMapType
	UnicodeList    []uint16
	GlyphIDOfsList []uint16
}

// KernPair is a kerning value for an ordered pair of glyphs.
// Value is in 4.4 fixed point format and is scaled by the font's kern scale.
type KernPair struct {
	Left, Right GlyphIndex
	Value       int8
}

// KernClasses is class based kerning. Every glyph is assigned a left and a right
// class. Class 0 means "no kerning"; classes start at 1.
// Values has LeftCount × RightCount entries in row-major order of the left class.
type KernClasses struct {
	LeftClass  []uint8 // indexed by glyph index
	RightClass []uint8 // indexed by glyph index
	LeftCount  uint8
	RightCount uint8
	Values     []int8
}

// Subpx is the sub-pixel rendering mode a font has been rendered for.
type Subpx uint8

// Sub-pixel rendering modes.
const (
	SubpxNone Subpx = iota
	SubpxHor
	SubpxVer
	SubpxBoth
)

// BitmapFormat is the storage format of the bitmap blob.
type BitmapFormat uint8

// Bitmap formats. Only BitmapPlain is supported, compressed blobs are rejected
// by New.
const (
	BitmapPlain BitmapFormat = iota
	BitmapCompressed
	BitmapCompressedNoPrefilter
)

// Tables collects the raw tables of a bitmap font. It is the input to New and
// the exchange format for serialization.
//
// Exactly one of KernPairs or KernClasses may be set; both may be empty.
type Tables struct {
	Name               string
	Size               int // nominal pixel size
	Bpp                uint8
	BitmapFormat       BitmapFormat
	LineHeight         int16 // vertical advance per line of text, in pixels
	BaseLine           int16 // baseline, measured from the bottom of the line
	Subpx              Subpx
	UnderlinePosition  int8
	UnderlineThickness int8
	KernScale          uint16
	Bitmap             []byte
	Glyphs             []GlyphDescriptor // Glyphs[0] is the NotDef sentinel
	CMaps              []CMap
	KernPairs          []KernPair
	KernClasses        *KernClasses
}

// Clone returns a deep copy of t.
func (t Tables) Clone() Tables {
	c := t
	c.Bitmap = append([]byte(nil), t.Bitmap...)
	c.Glyphs = append([]GlyphDescriptor(nil), t.Glyphs...)
	if t.CMaps != nil {
		c.CMaps = make([]CMap, len(t.CMaps))
		for i, cm := range t.CMaps {
			c.CMaps[i] = cm
			c.CMaps[i].UnicodeList = cloneU16(cm.UnicodeList)
			c.CMaps[i].GlyphIDOfsList = cloneU16(cm.GlyphIDOfsList)
		}
	}
	c.KernPairs = append([]KernPair(nil), t.KernPairs...)
	if t.KernClasses != nil {
		kc := *t.KernClasses
		kc.LeftClass = append([]uint8(nil), kc.LeftClass...)
		kc.RightClass = append([]uint8(nil), kc.RightClass...)
		kc.Values = append([]int8(nil), kc.Values...)
		c.KernClasses = &kc
	}
	return c
}

func cloneU16(s []uint16) []uint16 {
	if s == nil {
		return nil
	}
	return append([]uint16(nil), s...)
}

// packedSize is the number of bytes a glyph occupies in the bitmap blob.
// Pixels are packed continuously across rows, only the final byte is padded.
func packedSize(w, h uint16, bpp uint8) int {
	return (int(w)*int(h)*int(bpp) + 7) / 8
}
