package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/cloudx/internal/config"
	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/module"
	"github.com/nfrund/cloudx/internal/registry"
	"github.com/nfrund/cloudx/internal/rendering"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/server"
)

// App owns the dependency container for one server process.
type App struct {
	injector *do.RootScope
}

// New wires the application services. Nothing is constructed until the
// server is requested.
func New(cfg config.Provider) *App {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue[afero.Fs](i, afero.NewOsFs())
	do.ProvideValue[reveal.Observer](i, reveal.Deferred{})
	do.Provide(i, provideContentStore)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideModules)
	do.Provide(i, provideServer)
	return &App{injector: i}
}

// Injector exposes the container, mainly for tests that override services.
func (a *App) Injector() do.Injector { return a.injector }

// Server builds the server and boots every module.
func (a *App) Server() (*server.Server, error) {
	return do.Invoke[*server.Server](a.injector)
}

// Run serves until ctx is cancelled, then shuts the container down.
func (a *App) Run(ctx context.Context) error {
	s, err := a.Server()
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}
	runErr := s.Start(ctx)

	report := a.injector.ShutdownWithContext(context.Background())
	if !report.Succeed {
		slog.Error("Shutdown finished with errors", "report", report.Error())
	}
	return runErr
}

func provideContentStore(i do.Injector) (*content.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	fsys := do.MustInvoke[afero.Fs](i)
	store, err := content.NewStore(fsys, cfg.GetContentFile())
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if store.Path() != "" {
		slog.Info("Content override loaded", "path", store.Path())
	}
	return store, nil
}

func provideRenderer(i do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideModules(i do.Injector) ([]module.Module, error) {
	return NewModules(Dependencies{}), nil
}

// provideServer builds the server and publishes the shared services in its
// registry before the modules boot.
func provideServer(i do.Injector) (*server.Server, error) {
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return nil, err
	}
	s, err := server.New(server.Dependencies{
		Config:   do.MustInvoke[config.Provider](i),
		Renderer: do.MustInvoke[rendering.Renderer](i),
	})
	if err != nil {
		return nil, err
	}
	registry.Set(s.Registry, registry.ContentStoreKey, store)
	registry.Set(s.Registry, registry.ObserverKey, do.MustInvoke[reveal.Observer](i))
	s.RegisterRoutes()

	modules, err := do.Invoke[[]module.Module](i)
	if err != nil {
		return nil, err
	}
	if err := s.InitModules(context.Background(), modules); err != nil {
		return nil, err
	}
	return s, nil
}
