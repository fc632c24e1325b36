package server

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/cloudx/internal/handlers"
	"github.com/nfrund/cloudx/web"
)

// RegisterRoutes sets up the core routes: health, static assets and, when
// enabled, metrics. Feature routes come from the modules.
func (s *Server) RegisterRoutes() {
	s.E.GET("/health", handlers.HealthGet)

	static := s.E.Group("/static", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Cache-Control", "public, max-age=3600")
			return next(c)
		}
	})
	static.StaticFS("/", echo.MustSubFS(web.FS, "static"))

	if s.metrics != nil {
		s.E.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: s.metrics,
		}))
	}

	s.E.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "page not found")
	})
}
