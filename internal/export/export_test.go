package export

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/landing"
	"github.com/nfrund/cloudx/internal/reveal"
)

func TestWriteSite(t *testing.T) {
	fs := afero.NewMemMapFs()
	page := Div(ID("root"), g.Text("CloudX"))

	require.NoError(t, WriteSite(fs, "/out", page))

	index, err := afero.ReadFile(fs, "/out/index.html")
	require.NoError(t, err)
	assert.Equal(t, `<div id="root">CloudX</div>`, string(index))

	for _, name := range []string{
		"/out/static/css/app.css",
		"/out/static/js/reveal.js",
		"/out/static/js/brand.js",
		"/out/static/js/tailwind.config.js",
	} {
		ok, err := afero.Exists(fs, name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

type failingPage struct{}

func (failingPage) Render(io.Writer) error { return errors.New("boom") }

func TestWriteSite_RenderError(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := WriteSite(fs, "/out", failingPage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render page: boom")

	ok, _ := afero.Exists(fs, "/out/index.html")
	assert.False(t, ok)
}

func TestWriteSite_ReadOnly(t *testing.T) {
	err := WriteSite(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/out", Div())
	require.Error(t, err)
}

func TestWriteSite_LandingPage(t *testing.T) {
	fs := afero.NewMemMapFs()
	page := landing.NewPage(content.Default(), landing.Options{
		FormURL:  "https://cloudx.typeform.com/agendar",
		LogoURL:  "/static/img/logo.png",
		Observer: reveal.Deferred{},
		Static:   true,
	})
	defer page.Close()

	require.NoError(t, WriteSite(fs, "/dist", page))

	raw, err := afero.ReadFile(fs, "/dist/index.html")
	require.NoError(t, err)
	html := string(raw)
	assert.NotContains(t, html, "/fragments/")
	assert.NotContains(t, html, "hx-get")
	assert.Contains(t, html, "/static/js/static.js")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Find(`#faq-list details[name="faq"]`).Length())
	assert.Equal(t, 4, doc.Find(`#faq-list details [id^="faq-answer-"]`).Length(), "every answer is in the markup")
	assert.Equal(t, 1, doc.Find(`details#nav-menu summary`).Length())
	assert.Equal(t, 4, doc.Find(`#nav-menu-panel a[href^="#"]`).Length())
	assert.Equal(t, 2, doc.Find(`[data-brand-fallback]`).Length())

	ok, err := afero.Exists(fs, "/dist/static/js/static.js")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWriteSite_RejectsFragmentPage(t *testing.T) {
	fs := afero.NewMemMapFs()
	page := landing.NewPage(content.Default(), landing.Options{})
	defer page.Close()

	err := WriteSite(fs, "/dist", page)
	require.ErrorIs(t, err, ErrNeedsServer)

	ok, _ := afero.Exists(fs, "/dist")
	assert.False(t, ok, "nothing is written")
}
