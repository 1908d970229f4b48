package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
	"github.com/npillmayer/pxfont/core/font/bmf/bmfbin"
	"github.com/npillmayer/pxfont/core/font/bmf/bmftext"
	"github.com/npillmayer/pxfont/core/font/fontregistry"
	"github.com/npillmayer/schuko"
)

// Extensions of font files, in order of preference.
var fontExtensions = []string{".pxbf", ".yaml", ".yml"}

// NotFound returns an application error for a missing font.
func NotFound(name string, size int) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s at %dpx", name, size)
}

// LoadFont loads a font file, selecting the decoder by file extension.
func LoadFont(path string) (*bmf.Font, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return bmftext.Load(path)
	}
	return bmfbin.Load(path)
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *bmf.Font
	err  error
}

// FontPromise is the result of resolving a font. Font blocks until loading
// has completed. A promise is meant to be awaited once.
type FontPromise interface {
	Font() (*bmf.Font, error)
	FontContext(ctx context.Context) (*bmf.Font, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*bmf.Font, error)
}

func (loader fontLoader) Font() (*bmf.Font, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) FontContext(ctx context.Context) (*bmf.Font, error) {
	return loader.await(ctx)
}

// ResolveFont resolves a bitmap font with a given name and pixel size.
// Fonts found are stored in the global font registry.
//
// If no font can be found, the promise returns an error of code core.EMISSING.
func ResolveFont(conf schuko.Configuration, name string, size int) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		defer close(ch)
		result := fontPlusErr{}
		registry := fontregistry.GlobalRegistry()
		if f, ok := registry.Lookup(name, size); ok {
			result.font = f
			ch <- result
			return
		}
		var fpath string
		for _, dir := range searchDirs(conf) {
			if fpath = findInDir(dir, name, size); fpath != "" {
				tracer().Debugf("found font %s as %s", name, fpath)
				break
			}
		}
		if fpath == "" {
			fpath = findSystemFont(name, size)
		}
		if fpath == "" && isBuiltin(name, size) {
			result.font, _ = registry.Font(fontregistry.FallbackName, fontregistry.FallbackSize)
			ch <- result
			return
		}
		if fpath == "" {
			result.err = NotFound(name, size)
			ch <- result
			return
		}
		f, err := LoadFont(fpath)
		if err == nil && f.Size() != size {
			err = core.Error(core.EMISSING, "font file %s has size %dpx, requested %dpx",
				fpath, f.Size(), size)
		}
		if err != nil {
			result.err = err
			ch <- result
			return
		}
		registry.StoreFont(name, f)
		result.font, _ = registry.Lookup(name, size)
		ch <- result
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*bmf.Font, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

func isBuiltin(name string, size int) bool {
	return fontregistry.NormalizeFontname(name, size) ==
		fontregistry.NormalizeFontname(fontregistry.FallbackName, fontregistry.FallbackSize)
}

// searchDirs returns the directories of config key "fontpath", followed by the
// application's font cache directory.
func searchDirs(conf schuko.Configuration) []string {
	var dirs []string
	if conf == nil {
		return dirs
	}
	for _, dir := range filepath.SplitList(conf.GetString("fontpath")) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	if cachedir, err := cacheDir(conf, "fonts"); err == nil {
		dirs = append(dirs, cachedir)
	}
	return dirs
}

// findInDir searches a directory for a font file matching a name and size.
// Files named exactly like the font win over partial matches.
func findInDir(dir, name string, size int) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		tracer().Debugf("cannot read font directory %s: %v", dir, err)
		return ""
	}
	want := fontregistry.NormalizeFontname(name, size)
	var partial string
	for _, ext := range fontExtensions {
		for _, e := range entries {
			if e.IsDir() || strings.ToLower(filepath.Ext(e.Name())) != ext {
				continue
			}
			// "name.ext" or "name-size.ext"
			if fontregistry.NormalizeFontname(e.Name(), size) == want ||
				fontregistry.NormalizeFontname(e.Name(), 0) == want+"-0" {
				return filepath.Join(dir, e.Name())
			}
			if partial == "" && fontregistry.Matches(e.Name(), name, size) {
				partial = filepath.Join(dir, e.Name())
			}
		}
	}
	return partial
}

// findSystemFont searches the platform's user and system font directories.
func findSystemFont(name string, size int) string {
	for _, dir := range systemFontDirs() {
		if fpath := findInDir(dir, name, size); fpath != "" {
			tracer().Debugf("%s is a system font", name)
			return fpath
		}
	}
	return ""
}

// systemFontDirs returns the top-level font directories of the platform,
// followed by every directory holding an outline font. findfont lists outline
// fonts only, so directories holding nothing but bitmap fonts are found through
// the top-level directories.
func systemFontDirs() []string {
	dirs := linkedhashset.New()
	for _, dir := range platformFontDirs() {
		dirs.Add(filepath.Clean(dir))
	}
	for _, fpath := range findfont.List() {
		dirs.Add(filepath.Dir(fpath))
	}
	paths := make([]string, 0, dirs.Size())
	for _, dir := range dirs.Values() {
		paths = append(paths, dir.(string))
	}
	return paths
}

// platformFontDirs lists the user and system font directories, in the order
// findfont walks them.
func platformFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "Windows", "Fonts"),
			filepath.Join(os.Getenv("WINDIR"), "Fonts"),
		}
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Fonts"),
			"/Library/Fonts",
			"/System/Library/Fonts",
		}
	}
	dirs := []string{filepath.Join(home, ".fonts")}
	if data := os.Getenv("XDG_DATA_HOME"); data != "" {
		dirs = append(dirs, filepath.Join(data, "fonts"))
	} else {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"))
	}
	if data := os.Getenv("XDG_DATA_DIRS"); data != "" {
		for _, dir := range filepath.SplitList(data) {
			dirs = append(dirs, filepath.Join(dir, "fonts"))
		}
		return dirs
	}
	return append(dirs, "/usr/local/share/fonts", "/usr/share/fonts")
}

// InstallFont writes a font to the application's font cache directory, where
// ResolveFont will find it. It returns the path of the font file.
func InstallFont(conf schuko.Configuration, name string, f *bmf.Font) (string, error) {
	dir, err := CacheDirPath(conf, "fonts")
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot create font cache directory")
	}
	fpath := filepath.Join(dir, fontregistry.NormalizeFontname(name, f.Size())+".pxbf")
	if err = bmfbin.Save(fpath, f); err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot write font file %s", fpath)
	}
	tracer().Infof("installed font %s as %s", name, fpath)
	return fpath, nil
}
