package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"puja_site_echo/internal/events"
	"puja_site_echo/internal/middleware"
	"puja_site_echo/web/templates/pages"
)

const adminRoute = "/admin"

// EventHandler handles the admin event list
type EventHandler struct {
	site  *SiteHandler
	locks *events.Locks
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(site *SiteHandler) *EventHandler {
	return &EventHandler{site: site, locks: events.NewLocks()}
}

func (h *EventHandler) manager(c echo.Context) (*events.Manager, error) {
	storage, err := storageFor(c)
	if err != nil {
		return nil, err
	}
	lock := h.locks.For(middleware.ClientIDFrom(c))
	return events.NewManager(storage).WithLock(lock), nil
}

// ListEvents renders the event list, or returns its rows as JSON
func (h *EventHandler) ListEvents(c echo.Context) error {
	m, err := h.manager(c)
	if err != nil {
		return err
	}

	rows, err := m.Render(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load events")
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]interface{}{"events": rows})
	}
	return h.renderList(c, rows)
}

// StoreEvent handles the admin form submission
func (h *EventHandler) StoreEvent(c echo.Context) error {
	m, err := h.manager(c)
	if err != nil {
		return err
	}

	title := c.FormValue("eventTitle")
	date := c.FormValue("eventDate")

	state, added, err := m.Add(c.Request().Context(), title, date)
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save event")
	}

	if !added {
		// Rejected silently; the form keeps what was typed
		if wantsJSON(c) {
			return c.JSON(http.StatusOK, state)
		}
		return h.site.render(c, pageOptions{Fragment: adminRoute, Form: state.Form})
	}

	c.Logger().Infof("event %q added by %s", title, visitor(c))
	return h.afterMutation(c, state)
}

// EditEvent moves a record into the form. The record is removed from the
// list until the form is submitted again.
func (h *EventHandler) EditEvent(c echo.Context) error {
	m, index, err := h.managerAndIndex(c)
	if err != nil {
		return err
	}

	state, err := m.Edit(c.Request().Context(), index)
	if err != nil {
		return h.mutationError(c, err)
	}

	c.Logger().Infof("event #%d moved to the form by %s", index, visitor(c))

	switch {
	case wantsJSON(c):
		return c.JSON(http.StatusOK, state)
	case isHTMX(c):
		// The form is part of the swap, so send the whole panel
		return h.renderPanel(c, state)
	default:
		return h.site.render(c, pageOptions{Fragment: adminRoute, Form: state.Form})
	}
}

// DeleteEvent removes a record
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	m, index, err := h.managerAndIndex(c)
	if err != nil {
		return err
	}

	state, err := m.Delete(c.Request().Context(), index)
	if err != nil {
		return h.mutationError(c, err)
	}

	c.Logger().Infof("event #%d deleted by %s", index, visitor(c))
	return h.afterMutation(c, state)
}

func (h *EventHandler) managerAndIndex(c echo.Context) (*events.Manager, int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid event index")
	}
	m, err := h.manager(c)
	if err != nil {
		return nil, 0, err
	}
	return m, index, nil
}

func (h *EventHandler) mutationError(c echo.Context, err error) error {
	if errors.Is(err, events.ErrIndexOutOfRange) {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	c.Logger().Error(err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update events")
}

// afterMutation answers a successful add/delete: the new list for htmx and
// JSON callers, a redirect back to the admin section otherwise
func (h *EventHandler) afterMutation(c echo.Context, state events.State) error {
	switch {
	case wantsJSON(c):
		return c.JSON(http.StatusOK, state)
	case isHTMX(c):
		return h.renderList(c, events.Rows(state.Records))
	default:
		return c.Redirect(http.StatusSeeOther, siteURL(adminRoute, "", false))
	}
}

func (h *EventHandler) renderPanel(c echo.Context, state events.State) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	props := pages.EventsPanelProps{Rows: events.Rows(state.Records), Form: state.Form}
	return pages.EventsPanel(props).Render(c.Request().Context(), c.Response())
}

func (h *EventHandler) renderList(c echo.Context, rows []events.Row) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return pages.EventList(rows).Render(c.Request().Context(), c.Response())
}

// visitor names who made a change for the request log
func visitor(c echo.Context) string {
	if email := getStringFromContext(c, "userEmail"); email != "" {
		return email
	}
	return "client " + middleware.ClientIDFrom(c)
}
