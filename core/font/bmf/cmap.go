package bmf

// GlyphIndexMap maps code-points to glyph indices for one character map.
//
// Lookup returns NotDef for code-points outside of the map. Implementations first
// check the code-point range, which makes rejecting code-points of other scripts
// cheap.
type GlyphIndexMap interface {
	Lookup(rune) GlyphIndex        // central activity of a character map
	ReverseLookup(GlyphIndex) rune // inefficient, for tooling and tests
}

// makeGlyphIndexMap creates the implementation of a GlyphIndexMap for a
// character map. cm has to be validated beforehand.
func makeGlyphIndexMap(cm CMap) GlyphIndexMap {
	r := codeRange{start: cm.RangeStart, length: cm.RangeLength}
	switch cm.Type {
	case CMapFormat0Tiny:
		return format0TinyIndex{codeRange: r, gidStart: cm.GlyphIDStart}
	case CMapFormat0Full:
		return format0FullIndex{codeRange: r, gidStart: cm.GlyphIDStart, ofs: cm.GlyphIDOfsList}
	case CMapSparseTiny:
		return sparseIndex{codeRange: r, gidStart: cm.GlyphIDStart, list: cm.UnicodeList}
	case CMapSparseFull:
		return sparseIndex{codeRange: r, gidStart: cm.GlyphIDStart, list: cm.UnicodeList,
			ofs: cm.GlyphIDOfsList}
	}
	panic("unreachable") // unsupported types have been rejected by validation
}

type codeRange struct {
	start  rune
	length uint32
}

// relative returns the code-point relative to the range start, and false if r is
// out of range.
func (cr codeRange) relative(r rune) (uint32, bool) {
	if r < cr.start {
		return 0, false
	}
	rcp := uint32(r - cr.start)
	return rcp, rcp < cr.length
}

// --- Format 0 --------------------------------------------------------------

// Format 0 tiny maps a contiguous run of code-points to a contiguous run
// of glyphs.
type format0TinyIndex struct {
	codeRange
	gidStart GlyphIndex
}

func (f format0TinyIndex) Lookup(r rune) GlyphIndex {
	rcp, ok := f.relative(r)
	if !ok {
		return NotDef
	}
	return f.gidStart + GlyphIndex(rcp)
}

func (f format0TinyIndex) ReverseLookup(gid GlyphIndex) rune {
	if gid == NotDef || gid < f.gidStart || uint32(gid-f.gidStart) >= f.length {
		return 0
	}
	return f.start + rune(gid-f.gidStart)
}

// Format 0 full holds a glyph offset for every code-point of its range.
type format0FullIndex struct {
	codeRange
	gidStart GlyphIndex
	ofs      []uint16
}

func (f format0FullIndex) Lookup(r rune) GlyphIndex {
	rcp, ok := f.relative(r)
	if !ok || int(rcp) >= len(f.ofs) {
		return NotDef
	}
	return f.gidStart + GlyphIndex(f.ofs[rcp])
}

func (f format0FullIndex) ReverseLookup(gid GlyphIndex) rune {
	if gid == NotDef {
		return 0
	}
	for rcp, o := range f.ofs {
		if f.gidStart+GlyphIndex(o) == gid {
			return f.start + rune(rcp)
		}
	}
	return 0
}

// --- Sparse ----------------------------------------------------------------

// Sparse maps list the code-points present, relative to the range start, in
// ascending order. If ofs is nil, glyphs are assigned sequentially in list order.
type sparseIndex struct {
	codeRange
	gidStart GlyphIndex
	list     []uint16
	ofs      []uint16
}

func (s sparseIndex) Lookup(r rune) GlyphIndex {
	rcp, ok := s.relative(r)
	if !ok || rcp > 0xffff {
		return NotDef
	}
	c := uint16(rcp)
	for i, j := 0, len(s.list); i < j; {
		h := i + (j-i)/2 // binary search on the sorted list
		if c < s.list[h] {
			j = h
		} else if s.list[h] < c {
			i = h + 1
		} else {
			return s.glyphAt(h)
		}
	}
	return NotDef
}

func (s sparseIndex) glyphAt(i int) GlyphIndex {
	if s.ofs == nil {
		return s.gidStart + GlyphIndex(i)
	}
	return s.gidStart + GlyphIndex(s.ofs[i])
}

func (s sparseIndex) ReverseLookup(gid GlyphIndex) rune {
	if gid == NotDef {
		return 0
	}
	for i, c := range s.list {
		if s.glyphAt(i) == gid {
			return s.start + rune(c)
		}
	}
	return 0
}
