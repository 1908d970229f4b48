package bmf

import "sort"

// kerner looks up the raw 4.4 kerning value for an ordered glyph pair.
type kerner interface {
	raw(left, right GlyphIndex) (int8, bool)
}

// noKerning is used for fonts without kerning information.
type noKerning struct{}

func (noKerning) raw(GlyphIndex, GlyphIndex) (int8, bool) {
	return 0, false
}

// --- Pairs -----------------------------------------------------------------

// pairKerning holds kerning pairs sorted by (left, right).
type pairKerning struct {
	keys   []uint32
	values []int8
}

func pairKey(left, right GlyphIndex) uint32 {
	return uint32(left)<<16 | uint32(right)
}

// makePairKerning sorts a copy of pairs. Duplicates have to be rejected by
// validation beforehand.
func makePairKerning(pairs []KernPair) pairKerning {
	sorted := append([]KernPair(nil), pairs...)
	sort.Slice(sorted, func(i, j int) bool {
		return pairKey(sorted[i].Left, sorted[i].Right) < pairKey(sorted[j].Left, sorted[j].Right)
	})
	pk := pairKerning{
		keys:   make([]uint32, len(sorted)),
		values: make([]int8, len(sorted)),
	}
	for i, p := range sorted {
		pk.keys[i] = pairKey(p.Left, p.Right)
		pk.values[i] = p.Value
	}
	return pk
}

func (pk pairKerning) raw(left, right GlyphIndex) (int8, bool) {
	key := pairKey(left, right)
	for i, j := 0, len(pk.keys); i < j; {
		h := i + (j-i)/2
		if key < pk.keys[h] {
			j = h
		} else if pk.keys[h] < key {
			i = h + 1
		} else {
			return pk.values[h], true
		}
	}
	return 0, false
}

// --- Classes ---------------------------------------------------------------

type classKerning struct {
	kc KernClasses
}

func (ck classKerning) raw(left, right GlyphIndex) (int8, bool) {
	if int(left) >= len(ck.kc.LeftClass) || int(right) >= len(ck.kc.RightClass) {
		return 0, false
	}
	lc, rc := ck.kc.LeftClass[left], ck.kc.RightClass[right]
	if lc == 0 || rc == 0 { // class 0 carries no kerning
		return 0, false
	}
	return ck.kc.Values[(int(lc)-1)*int(ck.kc.RightCount)+int(rc)-1], true
}
