package landing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/cloudx/internal/config"
	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/handlers"
	"github.com/nfrund/cloudx/internal/registry"
	"github.com/nfrund/cloudx/internal/rendering"
	"github.com/nfrund/cloudx/internal/reveal"
)

func newRegistry(t *testing.T, cfg *config.Config) *registry.Registry {
	t.Helper()
	store, err := content.NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	reg := registry.New(cfg)
	registry.Set(reg, registry.ContentStoreKey, store)
	registry.Set[rendering.Renderer](reg, registry.RendererKey, rendering.NewUniversalRenderer())
	registry.Set[reveal.Observer](reg, registry.ObserverKey, reveal.Deferred{})
	return reg
}

func setupModule(t *testing.T) (*echo.Echo, *LandingModule, *registry.Registry) {
	t.Helper()

	reg := newRegistry(t, &config.Config{
		FormURL:           "https://cloudx.typeform.com/agendar",
		LogoURL:           "/static/img/logocloudx.png",
		AppBaseURL:        "https://cloudx.com.br",
		FragmentRateLimit: 1000,
	})

	m := New(Dependencies{
		Now: func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, m.Register(reg))

	e := echo.New()
	e.Validator = handlers.NewValidator()
	require.NoError(t, m.Boot(context.Background(), e.Group(""), reg))
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	return e, m, reg
}

func get(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestBoot_ResolvesServicesFromRegistry(t *testing.T) {
	_, m, reg := setupModule(t)

	assert.Same(t, registry.MustGet(reg, registry.ContentStoreKey), m.store)
	assert.Equal(t, "landing", m.Name())
}

func TestBoot_MissingServices(t *testing.T) {
	e := echo.New()

	err := New(Dependencies{}).Boot(context.Background(), e.Group(""), registry.New(&config.Config{}))
	assert.ErrorIs(t, err, errNoStore)

	store, err := content.NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	reg := registry.New(&config.Config{})
	registry.Set(reg, registry.ContentStoreKey, store)
	err = New(Dependencies{}).Boot(context.Background(), e.Group(""), reg)
	assert.ErrorIs(t, err, errNoRenderer)
}

func TestBoot_WithoutObserverRendersVisible(t *testing.T) {
	store, err := content.NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	reg := registry.New(&config.Config{})
	registry.Set(reg, registry.ContentStoreKey, store)
	registry.Set[rendering.Renderer](reg, registry.RendererKey, rendering.NewUniversalRenderer())

	e := echo.New()
	require.NoError(t, New(Dependencies{}).Boot(context.Background(), e.Group(""), reg))

	rec, doc := get(t, e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, doc.Find("section[data-reveal]").Length())
}

func TestPageGet(t *testing.T) {
	e, _, _ := setupModule(t)

	rec, doc := get(t, e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
	assert.Equal(t, 11, doc.Find("[data-section]").Length())
	assert.Equal(t, 7, doc.Find("section[data-reveal]").Length())
	assert.Contains(t, doc.Find("footer").Text(), "© 2026 CloudX")
}

func TestMenuGet(t *testing.T) {
	e, _, _ := setupModule(t)

	rec, doc := get(t, e, "/fragments/menu?state=closed&event=toggle")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HX-Request", rec.Header().Get("Vary"))
	assert.Equal(t, "open", doc.Find("#nav-menu").AttrOr("data-menu", ""))
	assert.Equal(t, 4, doc.Find("#nav-menu-panel a[hx-get]").Length())

	_, doc = get(t, e, "/fragments/menu?state=open&event=toggle")
	assert.Equal(t, "closed", doc.Find("#nav-menu").AttrOr("data-menu", ""))
	assert.Equal(t, 0, doc.Find("#nav-menu-panel").Length())

	_, doc = get(t, e, "/fragments/menu?state=open&event=close")
	assert.Equal(t, "closed", doc.Find("#nav-menu").AttrOr("data-menu", ""))

	_, doc = get(t, e, "/fragments/menu?state=closed&event=close")
	assert.Equal(t, "closed", doc.Find("#nav-menu").AttrOr("data-menu", ""), "close is idempotent")
}

func TestMenuGet_BadRequest(t *testing.T) {
	e, _, _ := setupModule(t)

	for _, target := range []string{
		"/fragments/menu?state=closed",
		"/fragments/menu?state=closed&event=explode",
		"/fragments/menu?state=ajar&event=toggle",
	} {
		rec, _ := get(t, e, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestFAQGet(t *testing.T) {
	e, _, _ := setupModule(t)

	rec, doc := get(t, e, "/fragments/faq?toggle=0")
	require.Equal(t, http.StatusOK, rec.Code)
	list := doc.Find("#faq-list")
	assert.Equal(t, "0", list.AttrOr("data-open", ""))
	assert.Equal(t, 1, list.Find(`button[aria-expanded="true"]`).Length())

	_, doc = get(t, e, "/fragments/faq?open=0&toggle=0")
	assert.Equal(t, "-1", doc.Find("#faq-list").AttrOr("data-open", ""), "toggling the open entry closes it")
	assert.Equal(t, 0, doc.Find(`button[aria-expanded="true"]`).Length())

	_, doc = get(t, e, "/fragments/faq?open=0&toggle=3")
	assert.Equal(t, "3", doc.Find("#faq-list").AttrOr("data-open", ""), "opening another entry replaces the open one")
	assert.Equal(t, 1, doc.Find(`button[aria-expanded="true"]`).Length())
}

func TestFAQGet_BadRequest(t *testing.T) {
	e, _, _ := setupModule(t)

	for _, target := range []string{
		"/fragments/faq",
		"/fragments/faq?toggle=4",
		"/fragments/faq?toggle=-1",
		"/fragments/faq?open=9&toggle=1",
		"/fragments/faq?open=-2&toggle=1",
		"/fragments/faq?toggle=um",
	} {
		rec, _ := get(t, e, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestBrandGet(t *testing.T) {
	e, _, _ := setupModule(t)

	rec, doc := get(t, e, "/fragments/brand/nav")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, doc.Find("img").Length())
	assert.Equal(t, "CloudX Aceleradora", doc.Find(`span[data-brand="nav"]`).Text())

	_, doc = get(t, e, "/fragments/brand/footer")
	assert.Equal(t, 1, doc.Find(`span[data-brand="footer"]`).Length())

	rec, _ = get(t, e, "/fragments/brand/header")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFragments_RateLimited(t *testing.T) {
	reg := newRegistry(t, &config.Config{FragmentRateLimit: 2})

	m := New(Dependencies{})
	e := echo.New()
	e.Validator = handlers.NewValidator()
	require.NoError(t, m.Boot(context.Background(), e.Group(""), reg))

	for i := 0; i < 2; i++ {
		rec, _ := get(t, e, "/fragments/brand/nav")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec, _ := get(t, e, "/fragments/brand/nav")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec, _ = get(t, e, "/")
	assert.Equal(t, http.StatusOK, rec.Code, "the page itself is not limited")
}
