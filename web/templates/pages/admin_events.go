package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"puja_site_echo/internal/events"
	"puja_site_echo/web/templates/shared"
)

// EventsPanelProps is the admin form and its list
type EventsPanelProps struct {
	Rows []events.Row
	Form events.Form
}

// EventsPanel renders the admin form followed by the event list
func EventsPanel(props EventsPanelProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := shared.NewWriter(w)
		hw.Raw("<div id=\"admin-panel\" class=\"motion-fade-up\">")
		hw.Raw("<form id=\"adminEventForm\" method=\"post\" action=\"/admin/events\">")
		hw.Raw("<label for=\"eventTitle\">শিরোনাম</label><input id=\"eventTitle\" name=\"eventTitle\" type=\"text\"")
		hw.Attr("value", props.Form.Title)
		hw.Raw("><label for=\"eventDate\">তারিখ</label><input id=\"eventDate\" name=\"eventDate\" type=\"date\"")
		hw.Attr("value", props.Form.Date)
		hw.Raw("><button class=\"btn\" type=\"submit\">সংরক্ষণ</button></form>")
		hw.Component(ctx, EventList(props.Rows))
		hw.Raw("</div>")
		return hw.Err()
	})
}

// EventList renders one row per record with its edit and delete controls
func EventList(rows []events.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := shared.NewWriter(w)
		hw.Raw("<ul id=\"adminEventList\">")
		for _, row := range rows {
			idx := strconv.Itoa(row.Index)
			hw.Raw("<li><span>")
			hw.Text(row.Label)
			hw.Raw("</span>")

			hw.Raw("<form method=\"post\"")
			hw.Attr("action", "/admin/events/"+idx+"/edit")
			hw.Raw("><button class=\"btn btn-ghost\" type=\"submit\"")
			hw.Attr("data-edit", idx)
			hw.Raw(">✏️</button></form>")

			hw.Raw("<form method=\"post\"")
			hw.Attr("action", "/admin/events/"+idx+"/delete")
			hw.Raw("><button class=\"btn btn-ghost\" type=\"submit\"")
			hw.Attr("data-del", idx)
			hw.Raw(">🗑️</button></form></li>")
		}
		hw.Raw("</ul>")
		return hw.Err()
	})
}
