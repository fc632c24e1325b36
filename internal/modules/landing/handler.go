package landing

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/handlers"
	page "github.com/nfrund/cloudx/internal/landing"
	"github.com/nfrund/cloudx/internal/middleware"
	"github.com/nfrund/cloudx/internal/rendering"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/toggle"
)

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	Store    *content.Store
	Renderer rendering.Renderer
	Observer reveal.Observer
	FormURL  string
	LogoURL  string
	BaseURL  string
	Now      func() time.Time
}

// Handler renders the page and its fragments. It keeps no state between
// requests: fragment requests carry the current UI state in their query.
type Handler struct {
	cfg HandlerConfig
}

// NewHandler creates a new Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Handler{cfg: cfg}
}

// PageGet renders the full landing page.
func (h *Handler) PageGet(c echo.Context) error {
	p := page.NewPage(h.cfg.Store.Catalog(), page.Options{
		FormURL:  h.cfg.FormURL,
		LogoURL:  h.cfg.LogoURL,
		BaseURL:  h.cfg.BaseURL,
		Observer: h.cfg.Observer,
		Now:      h.cfg.Now,
	})
	defer p.Close()

	return h.cfg.Renderer.RenderPage(c, http.StatusOK, p.Node())
}

// MenuGet applies a menu event and returns the menu region in its new state.
func (h *Handler) MenuGet(c echo.Context) error {
	var req handlers.MenuRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	menu := toggle.NewMenu(toggle.ParseMenuState(req.State))
	switch req.Event {
	case page.EventToggle:
		menu.Toggle()
	case page.EventClose:
		menu.Close()
	}

	middleware.FromContext(c.Request().Context()).Debug("Menu transition",
		"from", req.State, "event", req.Event, "to", menu.State().String())

	return h.cfg.Renderer.RenderPage(c, http.StatusOK, page.NavMenu(h.cfg.Store.Catalog(), h.cfg.FormURL, menu))
}

// FAQGet toggles one entry and returns the whole list in its new state.
func (h *Handler) FAQGet(c echo.Context) error {
	req := handlers.NewFAQRequest()
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entries := h.cfg.Store.Catalog().FAQ.Entries
	if req.Toggle >= len(entries) {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("toggle index %d out of range", req.Toggle))
	}
	if req.Open >= len(entries) {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("open index %d out of range", req.Open))
	}

	acc := toggle.AccordionAt(req.Open)
	acc.Toggle(req.Toggle)

	return h.cfg.Renderer.RenderPage(c, http.StatusOK, page.FAQList(entries, acc))
}

// BrandGet answers a failed logo load with the text mark of that slot.
func (h *Handler) BrandGet(c echo.Context) error {
	var req handlers.BrandRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	slot, ok := page.ParseMarkSlot(req.Slot)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown brand slot")
	}

	var fb toggle.Fallback
	fb.Fail()
	middleware.FromContext(c.Request().Context()).Info("Brand image failed to load, serving text mark",
		"slot", slot.String(), "logo", h.cfg.LogoURL)

	brand := h.cfg.Store.Catalog().Brand
	return h.cfg.Renderer.RenderPage(c, http.StatusOK, page.BrandMark(slot, h.cfg.LogoURL, brand.Name, brand.FallbackText, fb))
}
