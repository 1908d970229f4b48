package main

import (
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
	"github.com/npillmayer/pxfont/core/font/bmf/bmfbin"
	"github.com/npillmayer/pxfont/core/font/bmf/bmftext"
	"github.com/npillmayer/pxfont/core/locate/resources"
	"github.com/npillmayer/pxfont/engine/glyphing"
	"github.com/npillmayer/pxfont/engine/glyphing/bitmapshaper"
	"github.com/pterm/pterm"
	"golang.org/x/image/math/fixed"
)

// Op codes of commands.
const (
	QUIT int = iota
	HELP
	INFO
	GLYPH
	KERN
	RENDER
	EXPORT
	INSTALL
	LOAD
)

// Command is a parsed command line.
type Command struct {
	code int
	args []string
}

var commandNames = map[string]int{
	"quit":    QUIT,
	"exit":    QUIT,
	"help":    HELP,
	"info":    INFO,
	"glyph":   GLYPH,
	"kern":    KERN,
	"render":  RENDER,
	"export":  EXPORT,
	"install": INSTALL,
	"load":    LOAD,
}

// arity is the minimum number of arguments of a command.
var arity = map[int]int{GLYPH: 1, KERN: 2, RENDER: 1, EXPORT: 1, INSTALL: 1, LOAD: 1}

func parseCommand(line string) (*Command, error) {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	code, ok := commandNames[strings.ToLower(name)]
	if !ok {
		return &Command{code: HELP}, nil
	}
	cmd := &Command{code: code}
	if code == RENDER { // text may contain spaces
		if rest != "" {
			cmd.args = []string{rest}
		}
	} else {
		cmd.args = strings.Fields(rest)
	}
	if len(cmd.args) < arity[code] {
		return nil, fmt.Errorf("%s needs %d argument(s)", name, arity[code])
	}
	tracer().Debugf("parsed command %s %v", name, cmd.args)
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case INFO:
		return false, intp.info()
	case GLYPH:
		return false, intp.glyph(cmd.args[0])
	case KERN:
		return false, intp.kern(cmd.args[0], cmd.args[1])
	case RENDER:
		return false, intp.render(cmd.args[0])
	case EXPORT:
		return false, intp.export(cmd.args[0])
	case INSTALL:
		fpath, err := resources.InstallFont(intp.conf, cmd.args[0], intp.font)
		if err == nil {
			pterm.Printfln("installed font as %s", fpath)
		}
		return false, err
	case LOAD:
		size := intp.font.Size()
		if len(cmd.args) > 1 {
			var err error
			if size, err = strconv.Atoi(cmd.args[1]); err != nil {
				return false, fmt.Errorf("size not numeric: %v", cmd.args[1])
			}
		}
		return false, intp.loadFont(cmd.args[0], size)
	}
	return false, nil
}

func (intp *Intp) info() error {
	f := intp.font
	m := f.Metrics()
	t := f.Tables()
	kerning := "none"
	if len(t.KernPairs) > 0 {
		kerning = fmt.Sprintf("%d pairs", len(t.KernPairs))
	} else if t.KernClasses != nil {
		kerning = fmt.Sprintf("%d×%d classes", t.KernClasses.LeftCount, t.KernClasses.RightCount)
	}
	data := pterm.TableData{
		{"Property", "Value"},
		{"name", f.Name()},
		{"size", fmt.Sprintf("%d px", f.Size())},
		{"bits per pixel", strconv.Itoa(int(f.Bpp()))},
		{"glyphs", strconv.Itoa(f.NumGlyphs() - 1)},
		{"line height", strconv.Itoa(m.LineHeight)},
		{"base line", strconv.Itoa(m.BaseLine)},
		{"underline", fmt.Sprintf("%d / %d", m.UnderlinePosition, m.UnderlineThickness)},
		{"kerning", kerning},
		{"kern scale", strconv.Itoa(int(f.KernScale()))},
	}
	for i, cm := range t.CMaps {
		data = append(data, []string{fmt.Sprintf("cmap %d", i),
			fmt.Sprintf("%s U+%04X…U+%04X", cm.Type, cm.RangeStart,
				cm.RangeStart+rune(cm.RangeLength)-1)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) glyph(arg string) error {
	r, err := parseRune(arg)
	if err != nil {
		return err
	}
	g, err := intp.font.GlyphForRune(r)
	if err != nil {
		return err
	}
	pterm.Printfln("%#U -> glyph %d, advance %s, box %d×%d, offset (%d,%d)",
		r, g.Index, intp.font.Advance(g.Index), g.BoxW, g.BoxH, g.OfsX, g.OfsY)
	pterm.Println(g.Bitmap.String())
	return nil
}

func (intp *Intp) kern(left, right string) error {
	l, err := parseRune(left)
	if err != nil {
		return err
	}
	r, err := parseRune(right)
	if err != nil {
		return err
	}
	lgid, rgid := intp.font.GlyphIndex(l), intp.font.GlyphIndex(r)
	if lgid == bmf.NotDef || rgid == bmf.NotDef {
		return core.Error(core.EMISSING, "font has no glyph for %q or %q", l, r)
	}
	raw, ok := intp.font.KernRaw(lgid, rgid)
	if !ok {
		pterm.Printfln("no kerning for %q %q", l, r)
		return nil
	}
	pterm.Printfln("kerning %q %q: raw %d, %d/16 px = %s", l, r, raw,
		intp.font.KernValue(lgid, rgid), intp.font.Kern(lgid, rgid))
	return nil
}

func (intp *Intp) render(text string) error {
	params := glyphing.Params{Font: intp.font}
	seq, err := bitmapshaper.Shaper().Shape(strings.NewReader(text), nil, nil, params)
	if err != nil {
		return err
	}
	if len(seq.Missing) > 0 {
		pterm.Warning.Printfln("no glyphs for %q", string(seq.Missing))
	}
	pterm.Println(asciiArt(drawSequence(seq)))
	pterm.Printfln("width %s, height %s, depth %s", seq.W, seq.H, seq.D)
	return nil
}

func (intp *Intp) export(path string) (err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = bmftext.Save(path, intp.font)
	default:
		err = bmfbin.Save(path, intp.font)
	}
	if err == nil {
		pterm.Printfln("exported font to %s", path)
	}
	return
}

// drawSequence draws shaped glyphs onto an alpha image. The base line is at
// y = seq.H.
func drawSequence(seq glyphing.GlyphSequence) *image.Alpha {
	w, h := seq.W.Ceil(), (seq.H + seq.D).Ceil()
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	dot := fixed.P(0, seq.H.Round())
	for _, sg := range seq.Glyphs {
		if sg.Font == nil {
			continue
		}
		if g, err := sg.Font.Glyph(sg.GID); err == nil {
			x, y := dot.X.Round(), dot.Y.Round()
			dr := g.Bounds().Add(image.Pt(x, y))
			draw.DrawMask(dst, dr, image.Opaque, image.Point{}, g.Bitmap.Mask(), image.Point{}, draw.Over)
		}
		dot.X += sg.XAdvance
	}
	return dst
}

const asciiRamp = " .:-=+*#%@"

// asciiArt prints an alpha image with one character per pixel.
func asciiArt(img *image.Alpha) string {
	var b strings.Builder
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := int(img.AlphaAt(x, y).A)
			b.WriteByte(asciiRamp[a*(len(asciiRamp)-1)/255])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// parseRune accepts a single character or a code-point in notation "U+0030".
func parseRune(arg string) (rune, error) {
	if len(arg) > 2 && strings.EqualFold(arg[:2], "U+") {
		n, err := strconv.ParseUint(arg[2:], 16, 32)
		if err != nil || n > utf8.MaxRune {
			return 0, fmt.Errorf("not a code-point: %s", arg)
		}
		return rune(n), nil
	}
	if utf8.RuneCountInString(arg) != 1 {
		return 0, fmt.Errorf("expected a single character, have %q", arg)
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return r, nil
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	info                   show font properties and character maps
	glyph <char>           show glyph for a character (or U+XXXX)
	kern <char> <char>     show kerning between two characters
	render <text>          render a line of text
	export <file>          write font to file (.yaml for text format)
	install <name>         install font in the application's font cache
	load <name> [size]     load another font by file or name
	help                   this text
	quit                   leave the CLI
	`)
}
