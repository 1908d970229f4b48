package bmf

import (
	"fmt"
	"image"
)

// Bitmap is a read-only view onto the packed pixels of a glyph.
// Data is a sub-slice of the font's bitmap blob and must not be modified.
type Bitmap struct {
	W, H int
	Bpp  uint8
	Data []byte
}

// Pixels returns the number of pixels in the bitmap.
func (b Bitmap) Pixels() int {
	return b.W * b.H
}

// At returns the raw coverage level of the pixel at (x, y), in the range
// 0…2^bpp-1. Pixels outside of the bitmap are 0.
func (b Bitmap) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return 0
	}
	bit := (y*b.W + x) * int(b.Bpp)
	if b.Bpp == 8 {
		return b.Data[bit>>3]
	}
	mask := uint16(1)<<b.Bpp - 1
	// a pixel may straddle a byte boundary at 3 bpp
	word := uint16(b.Data[bit>>3]) << 8
	if bit>>3+1 < len(b.Data) {
		word |= uint16(b.Data[bit>>3+1])
	}
	shift := 16 - int(b.Bpp) - bit&7
	return uint8(word >> shift & mask)
}

// opa3 maps 3 bit coverage levels to 8 bit alpha.
var opa3 = [8]uint8{0, 36, 73, 109, 146, 182, 219, 255}

// Alpha returns the coverage of the pixel at (x, y), scaled to 0…255.
func (b Bitmap) Alpha(x, y int) uint8 {
	v := b.At(x, y)
	switch b.Bpp {
	case 1:
		return v * 255
	case 2:
		return v * 85
	case 3:
		return opa3[v]
	case 4:
		return v * 17
	}
	return v
}

// Mask renders the bitmap into an alpha mask with bounds (0, 0, W, H).
func (b Bitmap) Mask() *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			mask.Pix[y*mask.Stride+x] = b.Alpha(x, y)
		}
	}
	return mask
}

// String renders the bitmap as text, one line per row, using the
// characters of ramp from lowest to highest coverage.
func (b Bitmap) String() string {
	return b.Render(" .:-=+*#%@")
}

// Render renders the bitmap as text, one line per row. Coverage is mapped
// linearly onto the characters of ramp.
func (b Bitmap) Render(ramp string) string {
	chars := []rune(ramp)
	if len(chars) == 0 {
		return ""
	}
	out := make([]rune, 0, (b.W+1)*b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			out = append(out, chars[int(b.Alpha(x, y))*(len(chars)-1)/255])
		}
		out = append(out, '\n')
	}
	return string(out)
}

// Glyph is a glyph's metrics together with its pixels.
type Glyph struct {
	Index GlyphIndex
	GlyphDescriptor
	Bitmap Bitmap
}

func (g Glyph) String() string {
	return fmt.Sprintf("(GID=%d, box=%d×%d, ofs=%d/%d, adv=%d)", g.Index, g.BoxW, g.BoxH,
		g.OfsX, g.OfsY, g.AdvW)
}

// Bounds returns the glyph's bounding box relative to the pen position on the
// baseline, with y growing downwards.
func (g Glyph) Bounds() image.Rectangle {
	x0 := int(g.OfsX)
	y1 := -int(g.OfsY)
	return image.Rect(x0, y1-int(g.BoxH), x0+int(g.BoxW), y1)
}
