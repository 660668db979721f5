package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"puja_site_echo/internal/services"
)

func TestClientStorage(t *testing.T) {
	const known = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

	tests := []struct {
		name      string
		cookie    string
		wantReuse bool
	}{
		{name: "first visit"},
		{name: "valid cookie", cookie: known, wantReuse: true},
		{name: "tampered cookie", cookie: "../../etc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			backing := services.NewMemoryStorage()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: ClientCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := ClientStorage(backing, false)(func(c echo.Context) error {
				storage, ok := StorageFrom(c)
				if !ok {
					t.Fatal("storage not set")
				}
				return storage.Set(c.Request().Context(), "theme", "light")
			})
			if err := handler(c); err != nil {
				t.Fatalf("handler: %v", err)
			}

			id := ClientIDFrom(c)
			if tt.wantReuse && id != known {
				t.Errorf("client id = %q; want %q", id, known)
			}
			if !tt.wantReuse && (id == "" || id == tt.cookie) {
				t.Errorf("client id = %q; want a fresh one", id)
			}

			issued := strings.Contains(rec.Header().Get("Set-Cookie"), ClientCookie+"=")
			if issued == tt.wantReuse {
				t.Errorf("cookie issued = %v; want %v", issued, !tt.wantReuse)
			}

			if v, ok, _ := backing.Get(context.Background(), id+":theme"); !ok || v != "light" {
				t.Errorf("namespaced value = %q, %v", v, ok)
			}
		})
	}
}

func TestCustomErrorHandlerRendersPage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	CustomErrorHandler(echo.NewHTTPError(http.StatusNotFound), c)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page Not Found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCustomErrorHandlerJSONForAPI(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/route", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	CustomErrorHandler(echo.NewHTTPError(http.StatusBadRequest, "bad fragment"), c)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"bad fragment"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
