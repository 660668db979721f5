package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"puja_site_echo/internal/countdown"
	"puja_site_echo/internal/events"
	"puja_site_echo/internal/sections"
	"puja_site_echo/internal/services"
	"puja_site_echo/internal/theme"
	"puja_site_echo/web/templates/pages"
	"puja_site_echo/web/templates/shared"
)

// SiteHandler renders the single-page site and its small JSON endpoints
type SiteHandler struct {
	router    *sections.Router
	tabs      sections.Tabs
	tabLabels map[string]string
	schedule  []countdown.Event
	gallery   []pages.GalleryItem
	cache     *services.RedisCache
	now       func() time.Time
}

// NewSiteHandler creates a SiteHandler. cache may be nil.
func NewSiteHandler(router *sections.Router, schedule []countdown.Event, cache *services.RedisCache) *SiteHandler {
	return &SiteHandler{
		router: router,
		tabs:   sections.ScheduleTabs(),
		tabLabels: map[string]string{
			"sasthi":  "ষষ্ঠী",
			"saptami": "সপ্তমী",
			"ashtami": "অষ্টমী",
			"navami":  "নবমী",
			"dashami": "দশমী",
		},
		schedule: schedule,
		gallery: []pages.GalleryItem{
			{Href: "/media/gallery/pratima.jpg", Thumb: "/media/gallery/pratima-thumb.jpg", Alt: "প্রতিমা"},
			{Href: "/media/gallery/arati.jpg", Thumb: "/media/gallery/arati-thumb.jpg", Alt: "আরতি"},
			{Href: "/media/gallery/pandal.jpg", Thumb: "/media/gallery/pandal-thumb.jpg", Alt: "মণ্ডপ"},
		},
		cache: cache,
		now:   time.Now,
	}
}

// pageOptions selects what one render of the site shows
type pageOptions struct {
	Fragment string
	Tab      string
	MenuOpen bool
	Form     events.Form
}

// Home renders the site for the fragment passed in ?route=
func (h *SiteHandler) Home(c echo.Context) error {
	return h.render(c, pageOptions{
		Fragment: c.QueryParam("route"),
		Tab:      c.QueryParam("tab"),
		MenuOpen: c.QueryParam("menu") == "open",
	})
}

// Route resolves ?fragment= and returns the view as JSON
func (h *SiteHandler) Route(c echo.Context) error {
	return c.JSON(http.StatusOK, h.router.Navigate(c.QueryParam("fragment")))
}

// Countdown returns the snapshot of the next festival event
func (h *SiteHandler) Countdown(c echo.Context) error {
	snap, err := h.countdown(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute countdown")
	}
	return c.JSON(http.StatusOK, snap)
}

// ToggleTheme flips the visitor's theme and sends them back where they were
func (h *SiteHandler) ToggleTheme(c echo.Context) error {
	storage, err := storageFor(c)
	if err != nil {
		return err
	}

	next, err := theme.Toggle(c.Request().Context(), storage)
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save theme")
	}

	if isHTMX(c) || wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]string{"theme": string(next)})
	}
	return c.Redirect(http.StatusSeeOther, backURL(c))
}

func (h *SiteHandler) countdown(c echo.Context) (countdown.Snapshot, error) {
	return services.GetOrSet(h.cache, c.Request().Context(), countdown.CacheKey, countdown.RefreshInterval, func() (countdown.Snapshot, error) {
		return countdown.Compute(h.schedule, h.now(), countdown.Dhaka), nil
	})
}

func (h *SiteHandler) render(c echo.Context, opts pageOptions) error {
	ctx := c.Request().Context()

	storage, err := storageFor(c)
	if err != nil {
		return err
	}

	current, err := theme.Load(ctx, storage)
	if err != nil {
		// Theme is cosmetic, fall back to dark
		c.Logger().Warn(err)
	}

	records, err := events.NewManager(storage).Load(ctx)
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load events")
	}

	snap, err := h.countdown(c)
	if err != nil {
		c.Logger().Warn(err)
	}

	view := h.router.Navigate(opts.Fragment)
	if c.Request().Header.Get("Sec-CH-Prefers-Reduced-Motion") == "reduce" {
		view.Revealed = h.router.RevealAll()
	}

	menu := sections.Menu{Open: opts.MenuOpen}

	// Nav links close the menu on narrow (or unknown) viewports
	afterLink := menu
	afterLink.FollowLink(viewportWidth(c))

	nav := make([]shared.NavItem, 0, len(view.Sections))
	for _, s := range view.Sections {
		nav = append(nav, shared.NavItem{
			Title:  s.Title,
			Path:   s.Path,
			URL:    siteURL(s.Path, "", afterLink.Open),
			Active: s.Visible,
		})
	}

	toggled := menu
	toggled.Toggle()

	props := pages.SitePageProps{
		Layout: shared.LayoutProps{
			Title:         "শারদীয় দুর্গোৎসব",
			ThemeClass:    current.Class(),
			Nav:           nav,
			MenuExpanded:  menu.AriaExpanded(),
			MenuToggleURL: siteURL(view.Path, opts.Tab, toggled.Open),
		},
		View:      view,
		Tabs:      h.tabs.Activate(opts.Tab),
		TabLabels: h.tabLabels,
		Countdown: snap,
		Gallery:   h.gallery,
		Events: pages.EventsPanelProps{
			Rows: events.Rows(records),
			Form: opts.Form,
		},
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return pages.SitePage(props).Render(ctx, c.Response())
}

// siteURL builds the link that shows path, keeping the tab and menu state
func siteURL(path, tab string, menuOpen bool) string {
	q := url.Values{}
	q.Set("route", path)
	if tab != "" {
		q.Set("tab", tab)
	}
	if menuOpen {
		q.Set("menu", "open")
	}
	return "/?" + q.Encode() + "#" + path
}

// viewportWidth reads the Viewport-Width client hint, 0 when absent
func viewportWidth(c echo.Context) int {
	for _, name := range []string{"Sec-CH-Viewport-Width", "Viewport-Width"} {
		if v := c.Request().Header.Get(name); v != "" {
			if w, err := strconv.Atoi(v); err == nil {
				return w
			}
		}
	}
	return 0
}

// backURL returns the same-site path of the Referer, or "/"
func backURL(c echo.Context) string {
	ref, err := url.Parse(c.Request().Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != c.Request().Host) {
		return "/"
	}
	back := ref.Path
	if ref.RawQuery != "" {
		back += "?" + ref.RawQuery
	}
	return back
}
