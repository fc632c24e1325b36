package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ReturnsBadRequest(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Validate(&MenuRequest{State: "open", Event: "toggle"}))

	err := v.Validate(&MenuRequest{State: "ajar", Event: "toggle"})
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestFAQRequest_Binding(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	bind := func(query string) (FAQRequest, error) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/fragments/faq?"+query, nil), httptest.NewRecorder())
		req := NewFAQRequest()
		if err := c.Bind(&req); err != nil {
			return req, err
		}
		return req, c.Validate(&req)
	}

	req, err := bind("toggle=2")
	require.NoError(t, err)
	assert.Equal(t, -1, req.Open, "absent open means nothing expanded")
	assert.Equal(t, 2, req.Toggle)

	_, err = bind("open=1")
	assert.Error(t, err, "toggle is required")

	_, err = bind("toggle=-3")
	assert.Error(t, err)

	_, err = bind("toggle=abc")
	assert.Error(t, err)
}

func TestHealthGet(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, HealthGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
