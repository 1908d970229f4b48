package bmfbin

import (
	"os"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
)

// Decode parses a binary bitmap font and validates it.
//
// Errors in the binary structure are reported with code core.EFORMAT, failed
// validation with code core.EINVALID.
func Decode(data []byte) (*bmf.Font, error) {
	t, err := DecodeTables(data)
	if err != nil {
		return nil, err
	}
	return bmf.New(t)
}

// Load reads a binary bitmap font from a file.
func Load(path string) (*bmf.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", path)
	}
	return Decode(data)
}

// DecodeTables parses a binary bitmap font without validating its tables.
func DecodeTables(data []byte) (bmf.Tables, error) {
	t := bmf.Tables{}
	src := &binarySegm{b: data}
	if magic := src.view(4); magic == nil || string(magic) != Magic {
		return t, errFontFormat("missing magic bytes")
	}
	if v := src.u16(); v != Version {
		return t, errFontFormat("unsupported version %d", v)
	}
	n := int(src.u16())
	seen := make(map[Tag]bool, n)
	for i := 0; i < n; i++ {
		length := int(src.u32())
		hdr := src.view(4)
		if src.err != nil {
			return t, errFontFormat("chunk header %d", i)
		}
		tag := MakeTag(hdr)
		payload := src.view(length)
		if src.err != nil {
			return t, errFontFormat("chunk %s exceeds font data", tag)
		}
		if seen[tag] {
			return t, errFontFormat("duplicate chunk %s", tag)
		}
		seen[tag] = true
		if err := decodeChunk(tag, &binarySegm{b: payload}, &t); err != nil {
			return t, err
		}
	}
	for _, tag := range []Tag{TagHead, TagCMap, TagGlyf, TagBitm} {
		if !seen[tag] {
			return t, errFontFormat("missing required chunk %s", tag)
		}
	}
	return t, nil
}

func decodeChunk(tag Tag, b *binarySegm, t *bmf.Tables) error {
	switch tag {
	case TagHead:
		decodeHead(b, t)
	case TagCMap:
		decodeCMaps(b, t)
	case TagGlyf:
		decodeGlyphs(b, t)
	case TagBitm:
		t.Bitmap = append([]byte(nil), b.view(b.remaining())...)
	case TagKern:
		if err := decodeKerning(b, t); err != nil {
			return err
		}
	default:
		tracer().Infof("skipping unknown chunk %s", tag)
		return nil
	}
	if b.err != nil {
		return errFontFormat("chunk %s truncated", tag)
	}
	if b.remaining() != 0 {
		return errFontFormat("chunk %s has %d trailing bytes", tag, b.remaining())
	}
	return nil
}

func decodeHead(b *binarySegm, t *bmf.Tables) {
	t.Name = string(b.view(int(b.u16())))
	t.Size = int(b.u16())
	t.Bpp = b.u8()
	t.BitmapFormat = bmf.BitmapFormat(b.u8())
	t.LineHeight = b.i16()
	t.BaseLine = b.i16()
	t.Subpx = bmf.Subpx(b.u8())
	t.UnderlinePosition = b.i8()
	t.UnderlineThickness = b.i8()
	t.KernScale = b.u16()
}

func decodeCMaps(b *binarySegm, t *bmf.Tables) {
	n := int(b.u16())
	for i := 0; i < n && b.err == nil; i++ {
		cm := bmf.CMap{}
		cm.RangeStart = rune(b.u32())
		cm.RangeLength = b.u32()
		cm.GlyphIDStart = bmf.GlyphIndex(b.u16())
		cm.Type = bmf.CMapType(b.u8())
		if cnt := int(b.u32()); cnt > 0 {
			cm.UnicodeList = b.u16s(cnt)
		}
		if cnt := int(b.u32()); cnt > 0 {
			cm.GlyphIDOfsList = b.u16s(cnt)
		}
		t.CMaps = append(t.CMaps, cm)
	}
}

func decodeGlyphs(b *binarySegm, t *bmf.Tables) {
	n := int(b.u32())
	if n*glyphRecordSize > b.remaining() {
		b.err = errBufferBounds
		return
	}
	t.Glyphs = make([]bmf.GlyphDescriptor, n)
	for i := range t.Glyphs {
		t.Glyphs[i] = bmf.GlyphDescriptor{
			BitmapIndex: b.u32(),
			AdvW:        b.u32(),
			BoxW:        b.u16(),
			BoxH:        b.u16(),
			OfsX:        b.i16(),
			OfsY:        b.i16(),
		}
	}
}

func decodeKerning(b *binarySegm, t *bmf.Tables) error {
	switch kind := b.u8(); kind {
	case kernPairs:
		n := int(b.u32())
		if n*5 > b.remaining() {
			b.err = errBufferBounds
			return nil
		}
		t.KernPairs = make([]bmf.KernPair, n)
		for i := range t.KernPairs {
			t.KernPairs[i] = bmf.KernPair{
				Left:  bmf.GlyphIndex(b.u16()),
				Right: bmf.GlyphIndex(b.u16()),
				Value: b.i8(),
			}
		}
	case kernClasses:
		kc := &bmf.KernClasses{}
		kc.LeftCount = b.u8()
		kc.RightCount = b.u8()
		kc.LeftClass = append([]uint8(nil), b.view(int(b.u32()))...)
		kc.RightClass = append([]uint8(nil), b.view(int(b.u32()))...)
		for _, v := range b.view(int(b.u32())) {
			kc.Values = append(kc.Values, int8(v))
		}
		t.KernClasses = kc
	default:
		return errFontFormat("unknown kerning kind %d", kind)
	}
	return nil
}
