package bmfbin

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
)

// Magic starts every binary bitmap font.
const Magic = "PXBF"

// Version is the format version written by Encode.
const Version uint16 = 1

// Chunk tags.
var (
	TagHead = T("head")
	TagCMap = T("cmap")
	TagGlyf = T("glyf")
	TagBitm = T("bitm")
	TagKern = T("kern")
)

// Kerning kinds in chunk 'kern'.
const (
	kernPairs   uint8 = 1
	kernClasses uint8 = 2
)

type chunk struct {
	tag     Tag
	payload []byte
}

// Encode writes f to w in binary format.
//
// Fonts with fields exceeding the widths of the format are rejected with code
// core.EINVALID.
func Encode(w io.Writer, f *bmf.Font) error {
	t := f.Tables()
	if err := checkFieldWidths(t); err != nil {
		return err
	}
	chunks := []chunk{
		{TagHead, encodeHead(t)},
		{TagCMap, encodeCMaps(t.CMaps)},
		{TagGlyf, encodeGlyphs(t.Glyphs)},
		{TagBitm, t.Bitmap},
	}
	if k := encodeKerning(t); k != nil {
		chunks = append(chunks, chunk{TagKern, k})
	}
	hdr := chunkWriter{}
	hdr.bytes([]byte(Magic))
	hdr.u16(Version)
	hdr.u16(uint16(len(chunks)))
	if _, err := w.Write(hdr.buf); err != nil {
		return err
	}
	for _, c := range chunks {
		var ch [8]byte
		binary.LittleEndian.PutUint32(ch[:4], uint32(len(c.payload)))
		copy(ch[4:], c.tag.Bytes())
		if _, err := w.Write(ch[:]); err != nil {
			return err
		}
		if _, err := w.Write(c.payload); err != nil {
			return err
		}
	}
	tracer().Debugf("encoded font %s in %d chunks", f, len(chunks))
	return nil
}

// Save writes f to a file in binary format.
func Save(path string, f *bmf.Font) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	if err = Encode(w, f); err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// checkFieldWidths checks the fields stored as 16 bit values.
func checkFieldWidths(t bmf.Tables) error {
	switch {
	case len(t.Name) > math.MaxUint16:
		return core.Error(core.EINVALID, "font name has %d bytes, max. is %d", len(t.Name), math.MaxUint16)
	case t.Size < 0 || t.Size > math.MaxUint16:
		return core.Error(core.EINVALID, "font size %d out of range", t.Size)
	case len(t.CMaps) > math.MaxUint16:
		return core.Error(core.EINVALID, "font has %d cmaps, max. is %d", len(t.CMaps), math.MaxUint16)
	}
	return nil
}

func encodeHead(t bmf.Tables) []byte {
	w := chunkWriter{}
	w.u16(uint16(len(t.Name)))
	w.bytes([]byte(t.Name))
	w.u16(uint16(t.Size))
	w.u8(t.Bpp)
	w.u8(uint8(t.BitmapFormat))
	w.i16(t.LineHeight)
	w.i16(t.BaseLine)
	w.u8(uint8(t.Subpx))
	w.i8(t.UnderlinePosition)
	w.i8(t.UnderlineThickness)
	w.u16(t.KernScale)
	return w.buf
}

func encodeCMaps(cmaps []bmf.CMap) []byte {
	w := chunkWriter{}
	w.u16(uint16(len(cmaps)))
	for _, cm := range cmaps {
		w.u32(uint32(cm.RangeStart))
		w.u32(cm.RangeLength)
		w.u16(uint16(cm.GlyphIDStart))
		w.u8(uint8(cm.Type))
		w.u32(uint32(len(cm.UnicodeList)))
		w.u16s(cm.UnicodeList)
		w.u32(uint32(len(cm.GlyphIDOfsList)))
		w.u16s(cm.GlyphIDOfsList)
	}
	return w.buf
}

const glyphRecordSize = 16

func encodeGlyphs(glyphs []bmf.GlyphDescriptor) []byte {
	w := chunkWriter{buf: make([]byte, 0, 4+glyphRecordSize*len(glyphs))}
	w.u32(uint32(len(glyphs)))
	for _, g := range glyphs {
		w.u32(g.BitmapIndex)
		w.u32(g.AdvW)
		w.u16(g.BoxW)
		w.u16(g.BoxH)
		w.i16(g.OfsX)
		w.i16(g.OfsY)
	}
	return w.buf
}

func encodeKerning(t bmf.Tables) []byte {
	w := chunkWriter{}
	switch {
	case len(t.KernPairs) > 0:
		w.u8(kernPairs)
		w.u32(uint32(len(t.KernPairs)))
		for _, p := range t.KernPairs {
			w.u16(uint16(p.Left))
			w.u16(uint16(p.Right))
			w.i8(p.Value)
		}
	case t.KernClasses != nil:
		kc := t.KernClasses
		w.u8(kernClasses)
		w.u8(kc.LeftCount)
		w.u8(kc.RightCount)
		w.u32(uint32(len(kc.LeftClass)))
		w.bytes(kc.LeftClass)
		w.u32(uint32(len(kc.RightClass)))
		w.bytes(kc.RightClass)
		w.u32(uint32(len(kc.Values)))
		for _, v := range kc.Values {
			w.i8(v)
		}
	default:
		return nil
	}
	return w.buf
}
