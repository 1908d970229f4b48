package fontregistry

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
	"github.com/npillmayer/pxfont/core/font/fonts/montserrat20"
	"github.com/npillmayer/schuko/tracing"
)

// FallbackName is the normalized name of the built-in fallback font.
const FallbackName = "montserrat"

// FallbackSize is the pixel size of the built-in fallback font.
const FallbackSize = 20

// Registry is a type for holding loaded bitmap fonts. Fonts are kept in the
// order they have been stored.
type Registry struct {
	sync.Mutex
	fonts *linkedhashmap.Map // normalized name + size -> *bmf.Font
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts: linkedhashmap.New(),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name and the font's size
// as a key. If this key is already associated with a font, that font will not
// be overridden.
func (fr *Registry) StoreFont(name string, f *bmf.Font) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	key := NormalizeFontname(name, f.Size())
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts.Get(key); !ok {
		tracer().Debugf("registry stores font %s as %s", f.Name(), key)
		fr.fonts.Put(key, f)
	}
}

// Font returns a font with a given name and pixel size. If a suitable font has
// previously been stored, Font will return it.
//
// If no such font is registered, Font returns the built-in fallback font, together
// with an error of code core.EMISSING.
func (fr *Registry) Font(name string, size int) (*bmf.Font, error) {
	key := NormalizeFontname(name, size)
	tracer().Debugf("registry searches for font %s", key)
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts.Get(key); ok {
		tracer().Infof("registry found font %s", key)
		return f.(*bmf.Font), nil
	}
	tracer().Infof("registry does not contain font %s", key)
	err := core.Error(core.EMISSING, "font %s not found in registry", key)
	//
	// store fallback font, if not present yet, and return it
	fkey := NormalizeFontname(FallbackName, FallbackSize)
	if f, ok := fr.fonts.Get(fkey); ok {
		return f.(*bmf.Font), err
	}
	f := montserrat20.Font()
	tracer().Infof("font registry caches fallback font as %s", fkey)
	fr.fonts.Put(fkey, f)
	return f, err
}

// Lookup returns a font with a given name and size, if it is registered.
// It never returns the fallback font, unless explicitly asked for.
func (fr *Registry) Lookup(name string, size int) (*bmf.Font, bool) {
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts.Get(NormalizeFontname(name, size)); ok {
		return f.(*bmf.Font), true
	}
	return nil, false
}

// Keys returns the keys of all fonts in the registry, in the order they have
// been stored.
func (fr *Registry) Keys() []string {
	fr.Lock()
	defer fr.Unlock()
	keys := make([]string, 0, fr.fonts.Size())
	for _, k := range fr.fonts.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// LogFontList is a helper function to dump the list of known fonts
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	fr.Lock()
	it := fr.fonts.Iterator()
	for it.Next() {
		tracer().Infof("font [%s] = %v", it.Key(), it.Value().(*bmf.Font).Name())
	}
	fr.Unlock()
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname creates the registry key for a font name and a pixel size.
// Font names are compared case-insensitive, spaces and underscores are equivalent
// and a file extension is ignored.
//
//	NormalizeFontname("Montserrat Regular.pxbf", 20)  =>  "montserrat_regular-20"
func NormalizeFontname(fname string, size int) string {
	return appendSize(normalize(fname), size)
}

func normalize(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

// loose makes hyphens and underscores equivalent.
func loose(fname string) string {
	return strings.ReplaceAll(fname, "-", "_")
}

func appendSize(fname string, size int) string {
	return fmt.Sprintf("%s-%d", fname, size)
}

// SizeFromFilename trys to guess a font's pixel size from the font's file name,
// e.g. "montserrat-20.pxbf" or "montserrat_20px.yaml". It returns 0 if the
// file name does not contain a size.
func SizeFromFilename(fontfilename string) int {
	base := normalize(path.Base(fontfilename))
	cut := strings.LastIndexAny(base, "-_")
	if cut < 0 {
		return 0
	}
	s := strings.TrimSuffix(base[cut+1:], "px")
	if size, err := strconv.Atoi(s); err == nil && size > 0 {
		return size
	}
	return 0
}

// Matches returns true if a font's file name contains a font name pattern and,
// if the file name carries a size, the size matches.
func Matches(fontfilename, pattern string, size int) bool {
	basename := loose(normalize(path.Base(fontfilename)))
	tracer().Debugf("basename of font = %s", basename)
	if !strings.Contains(basename, loose(normalize(pattern))) {
		return false
	}
	s := SizeFromFilename(fontfilename)
	return s == 0 || s == size
}
