/*
Command bmfcli is an interactive inspector for bitmap fonts.

Usage:

	bmfcli [-font builtin|<file>|<name>] [-size px] [-fontpath dirs] [-trace level]

Fonts given by name are resolved from the directories in -fontpath, from the
application's font cache and from the system font directories.
Type 'help' at the prompt for a list of commands.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
	"github.com/npillmayer/pxfont/core/font/fonts/montserrat20"
	"github.com/npillmayer/pxfont/core/locate/resources"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pxfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("pxfont.fonts")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "builtin", "Font to load: 'builtin', a font file or a font name")
	size := flag.Int("size", 20, "Pixel size of font to resolve by name")
	fontpath := flag.String("fontpath", "", "Directories to search for fonts")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.pxfont.fonts":     *tlevel,
		"trace.pxfont.resources": *tlevel,
		"trace.pxfont.glyphs":    *tlevel,
		"fontpath":               *fontpath,
		"app-key":                "pxfont",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the bitmap font CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("bmf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, conf: conf}
	//
	// load font to use
	if err := intp.loadFont(*fontname, *size); err != nil { // font name provided by flag
		core.UserError(err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font *bmf.Font
	repl *readline.Instance
	conf testconfig.Conf
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) loadFont(name string, size int) (err error) {
	var f *bmf.Font
	switch {
	case name == "" || name == "builtin":
		f = montserrat20.Font()
	case fileExists(name):
		f, err = resources.LoadFont(name)
	default:
		f, err = resources.ResolveFont(intp.conf, name, size).Font()
	}
	if err != nil {
		return err
	}
	intp.font = f
	pterm.Printfln("loaded font %s", f)
	return nil
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
