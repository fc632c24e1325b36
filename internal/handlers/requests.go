package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/cloudx/internal/toggle"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface. Failures are reported as
// 400 Bad Request.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// MenuRequest is the state round-tripped by the mobile menu.
type MenuRequest struct {
	State string `query:"state" validate:"omitempty,oneof=open closed"`
	Event string `query:"event" validate:"required,oneof=toggle close"`
}

// FAQRequest carries the open entry and the entry being toggled. Use
// NewFAQRequest so absent parameters keep their sentinel values.
type FAQRequest struct {
	Open   int `query:"open" validate:"min=-1"`
	Toggle int `query:"toggle" validate:"min=0"`
}

// NewFAQRequest returns a request with nothing open and no entry toggled;
// binding overwrites only the parameters present.
func NewFAQRequest() FAQRequest {
	return FAQRequest{Open: toggle.None, Toggle: -1}
}

// BrandRequest names the brand mark whose image failed to load.
type BrandRequest struct {
	Slot string `param:"slot"`
}
