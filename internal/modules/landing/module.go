package landing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/middleware"
	"github.com/nfrund/cloudx/internal/module"
	"github.com/nfrund/cloudx/internal/registry"
)

var (
	errNoStore    = errors.New("landing: content store not registered")
	errNoRenderer = errors.New("landing: renderer not registered")
)

// LandingModule serves the landing page and its htmx fragments.
type LandingModule struct {
	module.BaseModule
	store *content.Store
	now   func() time.Time
}

// Dependencies holds the services the LandingModule does not take from the
// registry.
type Dependencies struct {
	Now func() time.Time
}

// New creates a new instance of the LandingModule, injecting its dependencies.
func New(deps Dependencies) *LandingModule {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &LandingModule{now: now}
}

// Name returns the module name.
func (m *LandingModule) Name() string {
	return "landing"
}

// Boot resolves the content store, renderer and reveal observer from the
// registry, mounts the routes and starts the content watcher. A missing
// observer renders every section visible.
func (m *LandingModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()

	store, ok := registry.Get(reg, registry.ContentStoreKey)
	if !ok {
		return errNoStore
	}
	renderer, ok := registry.Get(reg, registry.RendererKey)
	if !ok {
		return errNoRenderer
	}
	observer, _ := registry.Get(reg, registry.ObserverKey)

	if err := store.StartWatcher(ctx, cfg.GetContentHotReload()); err != nil {
		return err
	}
	m.store = store

	slog.Info("Booting LandingModule: Setting up routes...")
	h := NewHandler(HandlerConfig{
		Store:    store,
		Renderer: renderer,
		Observer: observer,
		FormURL:  cfg.GetFormURL(),
		LogoURL:  cfg.GetLogoURL(),
		BaseURL:  cfg.GetAppBaseURL(),
		Now:      m.now,
	})

	g.GET("/", h.PageGet)

	fragments := g.Group("/fragments", middleware.HTMXVary, middleware.RateLimiter(cfg.GetFragmentRateLimit()))
	fragments.GET("/menu", h.MenuGet)
	fragments.GET("/faq", h.FAQGet)
	fragments.GET("/brand/:slot", h.BrandGet)

	return nil
}

// Shutdown stops the content watcher.
func (m *LandingModule) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down LandingModule...")
	if m.store == nil {
		return nil
	}
	return m.store.Close()
}
