package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"puja_site_echo/internal/services"
)

// ClientCookie names the cookie that scopes a visitor's storage
const ClientCookie = "client_id"

const (
	clientIDKey = "clientID"
	storageKey  = "storage"
)

// ClientStorage gives every visitor its own key space in storage, the way
// browser local storage is scoped per client. The namespace is a UUID kept
// in a long-lived cookie and minted on first visit.
func ClientStorage(storage services.Storage, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID := ""
			if cookie, err := c.Cookie(ClientCookie); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					clientID = cookie.Value
				}
			}

			if clientID == "" {
				clientID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     ClientCookie,
					Value:    clientID,
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					Secure:   secure,
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(clientIDKey, clientID)
			c.Set(storageKey, services.Namespaced(storage, clientID))
			return next(c)
		}
	}
}

// StorageFrom returns the visitor storage set by ClientStorage
func StorageFrom(c echo.Context) (services.Storage, bool) {
	s, ok := c.Get(storageKey).(services.Storage)
	return s, ok
}

// ClientIDFrom returns the visitor id set by ClientStorage
func ClientIDFrom(c echo.Context) string {
	id, _ := c.Get(clientIDKey).(string)
	return id
}
