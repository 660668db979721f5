package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"puja_site_echo/internal/countdown"
	"puja_site_echo/internal/handlers"
	"puja_site_echo/internal/middleware"
	"puja_site_echo/internal/sections"
	"puja_site_echo/internal/services"
	"puja_site_echo/web"
)

// Deps are the collaborators the HTTP layer is built from
type Deps struct {
	Sections  *sections.Router
	Schedule  []countdown.Event
	Storage   services.Storage
	Cache     *services.RedisCache
	Verifier  middleware.SessionVerifier
	Issuer    handlers.SessionIssuer
	MediaDir  string
	Secure    bool
}

// New builds the Echo instance with every route registered
func New(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomErrorHandler

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Stylesheet and script ship in the binary, photos live on disk
	e.StaticFS("/static", echo.MustSubFS(web.Static, "static"))
	if deps.MediaDir != "" {
		e.Static("/media", deps.MediaDir)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	siteHandler := handlers.NewSiteHandler(deps.Sections, deps.Schedule, deps.Cache)
	eventHandler := handlers.NewEventHandler(siteHandler)
	authHandler := handlers.NewAuthHandler(deps.Issuer, deps.Secure)

	// Stateless endpoints
	e.GET("/api/route", siteHandler.Route)
	e.GET("/api/countdown", siteHandler.Countdown)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)

	// Routes that read or write the visitor's storage
	site := e.Group("")
	site.Use(middleware.ClientStorage(deps.Storage, deps.Secure))
	site.GET("/", siteHandler.Home)
	site.POST("/theme/toggle", siteHandler.ToggleTheme)

	admin := site.Group("/admin")
	admin.Use(middleware.RequireAuth(deps.Verifier))
	admin.GET("/events", eventHandler.ListEvents)
	admin.POST("/events", eventHandler.StoreEvent)
	admin.POST("/events/:index/edit", eventHandler.EditEvent)
	admin.POST("/events/:index/delete", eventHandler.DeleteEvent)

	return e
}
