package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"puja_site_echo/internal/middleware"
	"puja_site_echo/internal/services"
)

// storageFor returns the visitor storage installed by the ClientStorage
// middleware
func storageFor(c echo.Context) (services.Storage, error) {
	storage, ok := middleware.StorageFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Visitor storage is not configured")
	}
	return storage, nil
}

// isHTMX reports whether the request came from an htmx swap
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// wantsJSON reports whether the client asked for JSON
func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// Helper to safely get string from context
func getStringFromContext(c echo.Context, key string) string {
	val := c.Get(key)
	if val == nil {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}
