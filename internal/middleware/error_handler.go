package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"puja_site_echo/web/templates/pages"
	"puja_site_echo/web/templates/shared"
)

// CustomErrorHandler creates a custom error handler for Echo
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	errorTitle := "Internal Server Error"
	errorMessage := ""

	// Check if it's an Echo HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code

		// Try to extract message from HTTPError
		if msg, ok := he.Message.(string); ok && msg != "" && msg != http.StatusText(code) {
			errorMessage = msg
		}

		// Set title and default message if no custom message provided
		switch code {
		case http.StatusNotFound:
			errorTitle = "Page Not Found"
			if errorMessage == "" {
				errorMessage = "The page you're looking for doesn't exist."
			}
		case http.StatusUnauthorized:
			errorTitle = "Unauthorized"
			if errorMessage == "" {
				errorMessage = "Please log in to continue."
			}
		case http.StatusBadRequest:
			errorTitle = "Bad Request"
			if errorMessage == "" {
				errorMessage = "The request could not be processed."
			}
		default:
			if errorMessage == "" {
				errorMessage = "Something went wrong. Please try again later."
			}
		}
	} else {
		errorMessage = "Something went wrong. Please try again later."
	}

	c.Logger().Error(err)

	// API callers get JSON
	if strings.HasPrefix(c.Request().URL.Path, "/api/") ||
		strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		if jsonErr := c.JSON(code, map[string]string{"error": errorMessage}); jsonErr != nil {
			c.Logger().Error(jsonErr)
		}
		return
	}

	props := pages.ErrorPageProps{
		Title: errorTitle,
		Breadcrumbs: []shared.Breadcrumb{
			{Title: "Home", URL: "/"},
			{Title: "Error", URL: ""},
		},
		ErrorTitle:   errorTitle,
		ErrorMessage: errorMessage,
		BackLink:     "/",
		BackText:     "Back to home",
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)

	if renderErr := pages.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
		// The status line is already out, so only log
		c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
	}
}
