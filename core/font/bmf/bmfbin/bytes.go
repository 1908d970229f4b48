package bmfbin

import (
	"encoding/binary"
	"errors"
)

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

// Tag identifies a chunk. Tags are 4 ASCII characters, e.g. 'glyf'.
type Tag uint32

// T creates a tag from a string. It is cut or padded with spaces to 4 bytes.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return MakeTag([]byte(t))
}

// MakeTag creates a Tag from the first 4 bytes of b.
func MakeTag(b []byte) Tag {
	_ = b[3] // bounds check hint to compiler
	return Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// Bytes returns the tag as it is stored in a font file.
func (t Tag) Bytes() []byte {
	return []byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
}

// --- Reading ---------------------------------------------------------------

// binarySegm is a segment of font data. Reads through a segment never panic;
// reading past its end sets a sticky error.
type binarySegm struct {
	b   []byte
	pos int
	err error
}

// view returns the next n bytes and advances the read position.
// The byte slice returned is a sub-slice of the segment.
func (s *binarySegm) view(n int) []byte {
	if s.err != nil {
		return nil
	}
	if n < 0 || s.pos+n > len(s.b) {
		s.err = errBufferBounds
		return nil
	}
	v := s.b[s.pos : s.pos+n : s.pos+n]
	s.pos += n
	return v
}

func (s *binarySegm) u8() uint8 {
	if b := s.view(1); b != nil {
		return b[0]
	}
	return 0
}

func (s *binarySegm) u16() uint16 {
	if b := s.view(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (s *binarySegm) u32() uint32 {
	if b := s.view(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (s *binarySegm) i8() int8   { return int8(s.u8()) }
func (s *binarySegm) i16() int16 { return int16(s.u16()) }

// u16s reads n consecutive uint16 values.
func (s *binarySegm) u16s(n int) []uint16 {
	b := s.view(2 * n)
	if b == nil {
		return nil
	}
	r := make([]uint16, n)
	for i := range r {
		r[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return r
}

func (s *binarySegm) remaining() int {
	return len(s.b) - s.pos
}

// --- Writing ---------------------------------------------------------------

// chunkWriter collects the payload of a chunk.
type chunkWriter struct {
	buf []byte
}

func (w *chunkWriter) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *chunkWriter) i8(v int8)    { w.buf = append(w.buf, uint8(v)) }
func (w *chunkWriter) u16(v uint16) { w.buf = binary.LittleEndian.AppendUint16(w.buf, v) }
func (w *chunkWriter) i16(v int16)  { w.u16(uint16(v)) }
func (w *chunkWriter) u32(v uint32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }
func (w *chunkWriter) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *chunkWriter) u16s(s []uint16) {
	for _, v := range s {
		w.u16(v)
	}
}
