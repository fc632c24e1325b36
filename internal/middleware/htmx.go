package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	headerHXRequest = "HX-Request"
	headerVary      = "Vary"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get(headerHXRequest) == "true"
}

// HTMXVary marks responses as varying on HX-Request so caches keep
// fragments and full pages apart.
func HTMXVary(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Add(headerVary, headerHXRequest)
		return next(c)
	}
}
