package bmf

// validate checks the integrity of a font's tables. A font passing validation
// will never be read out of bounds.
func validate(t *Tables) error {
	switch t.Bpp {
	case 1, 2, 3, 4, 8:
	default:
		return errInvalid("unsupported bit depth %d", t.Bpp)
	}
	if t.BitmapFormat != BitmapPlain {
		return errInvalid("compressed bitmaps are not supported (format %d)", t.BitmapFormat)
	}
	if t.Subpx > SubpxBoth {
		return errInvalid("unknown sub-pixel mode %d", t.Subpx)
	}
	if t.LineHeight < 0 {
		return errInvalid("negative line height %d", t.LineHeight)
	}
	if err := validateGlyphs(t); err != nil {
		return err
	}
	if err := validateCMaps(t); err != nil {
		return err
	}
	return validateKerning(t)
}

func validateGlyphs(t *Tables) error {
	n := len(t.Glyphs)
	if n == 0 {
		return errInvalid("glyph table has no sentinel glyph")
	}
	if n > 0xffff {
		return errInvalid("too many glyphs: %d", n)
	}
	if t.Glyphs[0] != (GlyphDescriptor{}) {
		return errInvalid("sentinel glyph 0 has non-zero fields")
	}
	end := 0 // end of the previous glyph's pixels
	for g := 1; g < n; g++ {
		gd := t.Glyphs[g]
		start := int(gd.BitmapIndex)
		if start < end {
			return errInvalid("bitmap of glyph %d overlaps previous glyph (%d < %d)", g, start, end)
		}
		end = start + packedSize(gd.BoxW, gd.BoxH, t.Bpp)
		if end > len(t.Bitmap) {
			return errInvalid("bitmap of glyph %d exceeds bitmap blob (%d > %d)", g, end, len(t.Bitmap))
		}
	}
	return nil
}

func validateCMaps(t *Tables) error {
	n := len(t.Glyphs)
	for i, cm := range t.CMaps {
		if cm.RangeStart < 0 {
			return errInvalid("cmap %d: negative range start", i)
		}
		if uint64(cm.RangeStart)+uint64(cm.RangeLength) > 0x110000 {
			return errInvalid("cmap %d: range exceeds Unicode code space", i)
		}
		if cm.GlyphIDStart == NotDef {
			return errInvalid("cmap %d: glyphs must not start at sentinel", i)
		}
		var maxOfs int
		switch cm.Type {
		case CMapFormat0Tiny:
			if cm.RangeLength > 0 {
				maxOfs = int(cm.RangeLength) - 1
			}
		case CMapFormat0Full:
			if len(cm.GlyphIDOfsList) != int(cm.RangeLength) {
				return errInvalid("cmap %d: %d glyph offsets for range of length %d",
					i, len(cm.GlyphIDOfsList), cm.RangeLength)
			}
			maxOfs = maxU16(cm.GlyphIDOfsList)
		case CMapSparseTiny, CMapSparseFull:
			if err := validateUnicodeList(i, cm); err != nil {
				return err
			}
			if cm.Type == CMapSparseTiny {
				maxOfs = len(cm.UnicodeList) - 1
			} else {
				if len(cm.GlyphIDOfsList) != len(cm.UnicodeList) {
					return errInvalid("cmap %d: %d glyph offsets for %d code-points",
						i, len(cm.GlyphIDOfsList), len(cm.UnicodeList))
				}
				maxOfs = maxU16(cm.GlyphIDOfsList)
			}
		default:
			return errInvalid("cmap %d: unknown type %d", i, cm.Type)
		}
		if int(cm.GlyphIDStart)+maxOfs >= n {
			return errInvalid("cmap %d: maps to glyph %d, font has %d glyphs",
				i, int(cm.GlyphIDStart)+maxOfs, n)
		}
		for j := 0; j < i; j++ {
			if overlaps(cm, t.CMaps[j]) {
				return errInvalid("cmap %d overlaps cmap %d", i, j)
			}
		}
	}
	return nil
}

func validateUnicodeList(i int, cm CMap) error {
	for k, c := range cm.UnicodeList {
		if uint32(c) >= cm.RangeLength {
			return errInvalid("cmap %d: code-point offset %d out of range %d", i, c, cm.RangeLength)
		}
		if k > 0 && c <= cm.UnicodeList[k-1] {
			return errInvalid("cmap %d: unicode list not strictly ascending at position %d", i, k)
		}
	}
	return nil
}

func overlaps(a, b CMap) bool {
	if a.RangeLength == 0 || b.RangeLength == 0 {
		return false
	}
	aEnd := int64(a.RangeStart) + int64(a.RangeLength)
	bEnd := int64(b.RangeStart) + int64(b.RangeLength)
	return int64(a.RangeStart) < bEnd && int64(b.RangeStart) < aEnd
}

func maxU16(s []uint16) int {
	m := 0
	for _, v := range s {
		if int(v) > m {
			m = int(v)
		}
	}
	return m
}

func validateKerning(t *Tables) error {
	n := len(t.Glyphs)
	if len(t.KernPairs) > 0 && t.KernClasses != nil {
		return errInvalid("font has both kerning pairs and kerning classes")
	}
	if (len(t.KernPairs) > 0 || t.KernClasses != nil) && t.KernScale == 0 {
		return errInvalid("kerning present, but kern scale is 0")
	}
	seen := make(map[uint32]struct{}, len(t.KernPairs))
	for i, p := range t.KernPairs {
		if int(p.Left) >= n || int(p.Right) >= n {
			return errInvalid("kerning pair %d references glyph out of range (%d, %d)", i, p.Left, p.Right)
		}
		key := pairKey(p.Left, p.Right)
		if _, dup := seen[key]; dup {
			return errInvalid("duplicate kerning pair (%d, %d)", p.Left, p.Right)
		}
		seen[key] = struct{}{}
	}
	if kc := t.KernClasses; kc != nil {
		if len(kc.LeftClass) != n || len(kc.RightClass) != n {
			return errInvalid("kerning class mappings must cover all %d glyphs", n)
		}
		if len(kc.Values) != int(kc.LeftCount)*int(kc.RightCount) {
			return errInvalid("kerning class table has %d values, expected %d×%d",
				len(kc.Values), kc.LeftCount, kc.RightCount)
		}
		for g := 0; g < n; g++ {
			if kc.LeftClass[g] > kc.LeftCount || kc.RightClass[g] > kc.RightCount {
				return errInvalid("glyph %d has kerning class out of range", g)
			}
		}
	}
	return nil
}
