package fontregistry

import (
	"sync"
	"testing"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font/bmf"
	"github.com/npillmayer/pxfont/core/font/fonts/montserrat20"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeFontname(t *testing.T) {
	assert.Equal(t, "montserrat_regular-20", NormalizeFontname(" Montserrat Regular.pxbf ", 20))
	assert.Equal(t, "dejavu-12", NormalizeFontname("DejaVu", 12))
	assert.Equal(t, 20, SizeFromFilename("/fonts/montserrat-20.pxbf"))
	assert.Equal(t, 14, SizeFromFilename("mono_14px.yaml"))
	assert.Equal(t, 0, SizeFromFilename("montserrat.pxbf"))
	assert.True(t, Matches("/fonts/Montserrat-Regular-20.pxbf", "montserrat regular", 20))
	assert.False(t, Matches("/fonts/Montserrat-Regular-20.pxbf", "montserrat", 14))
	assert.True(t, Matches("/fonts/montserrat.yaml", "montserrat", 14))
	assert.False(t, Matches("/fonts/roboto-20.pxbf", "montserrat", 20))
}

func TestRegistryStoreAndFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	m := montserrat20.Font()
	fr.StoreFont("Digits", m)
	f, err := fr.Font("digits", 20)
	assert.NoError(t, err)
	assert.Same(t, m, f)
	other, _ := bmf.New(montserrat20.Tables())
	fr.StoreFont("DIGITS", other) // must not override
	f, _ = fr.Font("digits", 20)
	assert.Same(t, m, f)
	_, ok := fr.Lookup("digits", 12)
	assert.False(t, ok)
	fr.LogFontList()
}

func TestRegistryFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	f, err := fr.Font("unknown", 12)
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	if assert.NotNil(t, f) {
		assert.Equal(t, montserrat20.Name, f.Name())
	}
	assert.Equal(t, []string{"montserrat-20"}, fr.Keys())
	f, err = fr.Font(FallbackName, FallbackSize)
	assert.NoError(t, err)
	assert.NotNil(t, f)
}

func TestRegistryKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		fr.StoreFont(name, montserrat20.Font())
	}
	assert.Equal(t, []string{"c-20", "a-20", "b-20"}, fr.Keys())
}

func TestGlobalRegistryConcurrentAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.fonts")
	defer teardown()
	//
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			GlobalRegistry().StoreFont("shared", montserrat20.Font())
			f, err := GlobalRegistry().Font("shared", 20)
			assert.NoError(t, err)
			assert.NotNil(t, f)
		}()
	}
	wg.Wait()
	assert.Same(t, GlobalRegistry(), GlobalRegistry())
}
