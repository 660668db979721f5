package middleware

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

// SessionVerifier checks a session cookie and returns its claims.
// *auth.Client satisfies it through FirebaseVerifier.
type SessionVerifier interface {
	VerifySessionCookie(ctx context.Context, cookie string) (*auth.Token, error)
}

// FirebaseVerifier adapts a Firebase auth client. A nil client yields a nil
// verifier, which leaves admin routes open.
func FirebaseVerifier(client *auth.Client) SessionVerifier {
	if client == nil {
		return nil
	}
	return client
}

// RequireAuth returns a middleware that verifies Firebase session cookies.
// Without a verifier the routes stay open (local mode).
func RequireAuth(verifier SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if verifier == nil {
				return next(c)
			}

			// Get the session cookie
			cookie, err := c.Cookie("session")
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized)
			}

			// Verify the session cookie
			decodedToken, err := verifier.VerifySessionCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid session, clear cookie
				c.SetCookie(&http.Cookie{
					Name:     "session",
					Value:    "",
					MaxAge:   -1,
					HttpOnly: true,
					Path:     "/",
				})
				return echo.NewHTTPError(http.StatusUnauthorized)
			}

			// Set user info in context for downstream handlers
			c.Set("userUID", decodedToken.UID)
			if email, ok := decodedToken.Claims["email"].(string); ok {
				c.Set("userEmail", email)
			}

			return next(c)
		}
	}
}
