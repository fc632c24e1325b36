package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nfrund/cloudx/internal/config"
	"github.com/nfrund/cloudx/internal/handlers"
	"github.com/nfrund/cloudx/internal/middleware"
	"github.com/nfrund/cloudx/internal/module"
	"github.com/nfrund/cloudx/internal/registry"
	"github.com/nfrund/cloudx/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Renderer rendering.Renderer
	Registry *registry.Registry

	modules []module.Module
	metrics *prometheus.Registry

	shutdownOnce sync.Once
	shutdownErr  error
}

// Dependencies holds everything New needs to build a Server.
type Dependencies struct {
	Config   config.Provider
	Renderer rendering.Renderer
	// Echo is optional; tests pass their own instance.
	Echo *echo.Echo
}

// New creates a new Server instance with the middleware chain installed.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Renderer == nil {
		return nil, errors.New("server: renderer is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	s := &Server{
		E:        e,
		Cfg:      deps.Config,
		Renderer: deps.Renderer,
		Registry: registry.New(deps.Config),
	}
	registry.Set(s.Registry, registry.RendererKey, deps.Renderer)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger)
	e.Use(middleware.RequestLog())
	e.Use(echomw.Recover())
	e.Use(echomw.Secure())
	e.Use(echomw.Gzip())

	if deps.Config.GetMetricsEnabled() {
		s.metrics = prometheus.NewRegistry()
		s.metrics.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "cloudx",
			Registerer: s.metrics,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}))
	}

	return s, nil
}

// setupErrorHandling installs the central error handler. HTTP errors keep
// their status; anything else is logged with a stack trace and answered
// with 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"stack_trace", string(debug.Stack()),
			)
			err = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
		} else if he.Code >= http.StatusInternalServerError {
			slog.Error("Server error", "status", he.Code, "error", err)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
