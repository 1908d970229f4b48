/*
Package bmftext reads and writes bitmap fonts as YAML documents.

The text format is meant for inspecting and hand-editing small fonts. It carries
the same information as the binary format of package bmfbin. Glyph descriptors
are written one per line as [bitmap index, adv_w, box_w, box_h, ofs_x, ofs_y],
kern pairs as [left, right, value]. The bitmap blob is a base64-encoded !!binary scalar:

	name: Montserrat-Regular 20px 0-9 W minus
	size: 20
	bpp: 4
	line_height: 14
	...
	glyphs:
	  - [0, 0, 0, 0, 0, 0]
	  - [0, 99, 5, 2, 1, 4]
	cmaps:
	  - range_start: 45
	    range_length: 43
	    glyph_id_start: 1
	    type: sparse_tiny
	    unicode_list: [0, 3, 4, 5]
	kern_pairs:
	  - [1, 3, -9]
	bitmap: !!binary |
	  <base64 data>

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmftext

import (
	"encoding/base64"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'pxfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("pxfont.fonts")
}

type document struct {
	Name               string       `yaml:"name"`
	Size               int          `yaml:"size"`
	Bpp                uint8        `yaml:"bpp"`
	LineHeight         int16        `yaml:"line_height"`
	BaseLine           int16        `yaml:"base_line"`
	Subpx              string       `yaml:"subpx,omitempty"`
	UnderlinePosition  int8         `yaml:"underline_position"`
	UnderlineThickness int8         `yaml:"underline_thickness"`
	KernScale          uint16       `yaml:"kern_scale"`
	Glyphs             []row        `yaml:"glyphs"`
	CMaps              []cmapDoc    `yaml:"cmaps"`
	KernPairs          []row        `yaml:"kern_pairs,omitempty"`
	KernClasses        *kernClasses `yaml:"kern_classes,omitempty"`
	Bitmap             blob         `yaml:"bitmap"`
}

type cmapDoc struct {
	RangeStart     rune     `yaml:"range_start"`
	RangeLength    uint32   `yaml:"range_length"`
	GlyphIDStart   uint16   `yaml:"glyph_id_start"`
	Type           string   `yaml:"type"`
	UnicodeList    []uint16 `yaml:"unicode_list,flow,omitempty"`
	GlyphIDOfsList []uint16 `yaml:"glyph_id_ofs_list,flow,omitempty"`
}

type kernClasses struct {
	LeftCount  uint8   `yaml:"left_count"`
	RightCount uint8   `yaml:"right_count"`
	LeftClass  []uint8 `yaml:"left_class,flow"`
	RightClass []uint8 `yaml:"right_class,flow"`
	Values     []int8  `yaml:"values,flow"`
}

// row is a sequence of integers written on a single line.
type row []int64

func (r row) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range r {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatInt(v, 10),
		})
	}
	return seq, nil
}

// blob is a byte slice written as a !!binary scalar.
type blob []byte

func (b blob) MarshalYAML() (interface{}, error) {
	enc := base64.StdEncoding.EncodeToString(b)
	var lines []string
	for len(enc) > 76 {
		lines = append(lines, enc[:76])
		enc = enc[76:]
	}
	lines = append(lines, enc)
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.LiteralStyle,
		Tag:   "!!binary",
		Value: strings.Join(lines, "\n") + "\n",
	}, nil
}

func (b *blob) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!binary" {
		return fmt.Errorf("line %d: bitmap must be a !!binary scalar", node.Line)
	}
	data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(node.Value), ""))
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*b = data
	return nil
}

var cmapTypeNames = map[bmf.CMapType]string{
	bmf.CMapFormat0Full: "format0_full",
	bmf.CMapSparseFull:  "sparse_full",
	bmf.CMapFormat0Tiny: "format0_tiny",
	bmf.CMapSparseTiny:  "sparse_tiny",
}

var subpxNames = map[bmf.Subpx]string{
	bmf.SubpxNone: "",
	bmf.SubpxHor:  "horizontal",
	bmf.SubpxVer:  "vertical",
	bmf.SubpxBoth: "both",
}

func lookupName[K comparable](names map[K]string, s string) (K, bool) {
	for k, n := range names {
		if n == s {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// Marshal returns the YAML document for a font.
func Marshal(f *bmf.Font) ([]byte, error) {
	t := f.Tables()
	doc := document{
		Name:               t.Name,
		Size:               t.Size,
		Bpp:                t.Bpp,
		LineHeight:         t.LineHeight,
		BaseLine:           t.BaseLine,
		Subpx:              subpxNames[t.Subpx],
		UnderlinePosition:  t.UnderlinePosition,
		UnderlineThickness: t.UnderlineThickness,
		KernScale:          t.KernScale,
		Bitmap:             t.Bitmap,
	}
	doc.Glyphs = make([]row, len(t.Glyphs))
	for i, g := range t.Glyphs {
		doc.Glyphs[i] = row{int64(g.BitmapIndex), int64(g.AdvW),
			int64(g.BoxW), int64(g.BoxH), int64(g.OfsX), int64(g.OfsY)}
	}
	for _, cm := range t.CMaps {
		doc.CMaps = append(doc.CMaps, cmapDoc{
			RangeStart:     cm.RangeStart,
			RangeLength:    cm.RangeLength,
			GlyphIDStart:   uint16(cm.GlyphIDStart),
			Type:           cmapTypeNames[cm.Type],
			UnicodeList:    cm.UnicodeList,
			GlyphIDOfsList: cm.GlyphIDOfsList,
		})
	}
	for _, p := range t.KernPairs {
		doc.KernPairs = append(doc.KernPairs, row{int64(p.Left), int64(p.Right), int64(p.Value)})
	}
	if kc := t.KernClasses; kc != nil {
		doc.KernClasses = &kernClasses{
			LeftCount:  kc.LeftCount,
			RightCount: kc.RightCount,
			LeftClass:  kc.LeftClass,
			RightClass: kc.RightClass,
			Values:     kc.Values,
		}
	}
	return yaml.Marshal(&doc)
}

// Unmarshal parses a YAML document and validates the font it describes.
//
// Malformed documents are reported with code core.EFORMAT, failed validation
// with code core.EINVALID.
func Unmarshal(data []byte) (*bmf.Font, error) {
	doc := document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, core.WrapError(err, core.EFORMAT, "bitmap font document: %s", err.Error())
	}
	t, err := doc.tables()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("read bitmap font %q from YAML with %d glyphs", t.Name, len(t.Glyphs))
	return bmf.New(t)
}

// Load reads a YAML bitmap font from a file.
func Load(path string) (*bmf.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", path)
	}
	return Unmarshal(data)
}

// Save writes f to a file as a YAML document.
func Save(path string, f *bmf.Font) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (doc *document) tables() (bmf.Tables, error) {
	t := bmf.Tables{
		Name:               doc.Name,
		Size:               doc.Size,
		Bpp:                doc.Bpp,
		LineHeight:         doc.LineHeight,
		BaseLine:           doc.BaseLine,
		UnderlinePosition:  doc.UnderlinePosition,
		UnderlineThickness: doc.UnderlineThickness,
		KernScale:          doc.KernScale,
		Bitmap:             doc.Bitmap,
	}
	var ok bool
	if t.Subpx, ok = lookupName(subpxNames, doc.Subpx); !ok {
		return t, errDocument("unknown subpx mode %q", doc.Subpx)
	}
	t.Glyphs = make([]bmf.GlyphDescriptor, len(doc.Glyphs))
	for i, g := range doc.Glyphs {
		if !inRange(g, 0, math.MaxUint32, 0, math.MaxUint32, 0, 0xffff, 0, 0xffff,
			math.MinInt16, math.MaxInt16, math.MinInt16, math.MaxInt16) {
			return t, errDocument("glyph %d: expected 6 fields in range, have %v", i, g)
		}
		t.Glyphs[i] = bmf.GlyphDescriptor{
			BitmapIndex: uint32(g[0]),
			AdvW:        uint32(g[1]),
			BoxW:        uint16(g[2]),
			BoxH:        uint16(g[3]),
			OfsX:        int16(g[4]),
			OfsY:        int16(g[5]),
		}
	}
	for i, c := range doc.CMaps {
		typ, ok := lookupName(cmapTypeNames, c.Type)
		if !ok {
			return t, errDocument("cmap %d has unknown type %q", i, c.Type)
		}
		t.CMaps = append(t.CMaps, bmf.CMap{
			RangeStart:     c.RangeStart,
			RangeLength:    c.RangeLength,
			GlyphIDStart:   bmf.GlyphIndex(c.GlyphIDStart),
			Type:           typ,
			UnicodeList:    c.UnicodeList,
			GlyphIDOfsList: c.GlyphIDOfsList,
		})
	}
	for _, p := range doc.KernPairs {
		if !inRange(p, 0, 0xffff, 0, 0xffff, math.MinInt8, math.MaxInt8) {
			return t, errDocument("kern pair: expected 3 fields in range, have %v", p)
		}
		t.KernPairs = append(t.KernPairs, bmf.KernPair{
			Left:  bmf.GlyphIndex(p[0]),
			Right: bmf.GlyphIndex(p[1]),
			Value: int8(p[2]),
		})
	}
	if kc := doc.KernClasses; kc != nil {
		t.KernClasses = &bmf.KernClasses{
			LeftClass:  kc.LeftClass,
			RightClass: kc.RightClass,
			LeftCount:  kc.LeftCount,
			RightCount: kc.RightCount,
			Values:     kc.Values,
		}
	}
	return t, nil
}

// inRange checks the length of r and each of its fields against pairs of
// lower and upper bounds.
func inRange(r row, bounds ...int64) bool {
	if 2*len(r) != len(bounds) {
		return false
	}
	for i, v := range r {
		if v < bounds[2*i] || v > bounds[2*i+1] {
			return false
		}
	}
	return true
}

func errDocument(x string, v ...interface{}) error {
	return core.Error(core.EFORMAT, "bitmap font document: %s", fmt.Sprintf(x, v...))
}
