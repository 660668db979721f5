package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"puja_site_echo/internal/countdown"
	"puja_site_echo/internal/sections"
	"puja_site_echo/web/templates/shared"
)

// GalleryItem is one image of the gallery section
type GalleryItem struct {
	Href  string
	Thumb string
	Alt   string
}

// SitePageProps is everything the single-page site renders
type SitePageProps struct {
	Layout    shared.LayoutProps
	View      sections.View
	Tabs      sections.TabsView
	TabLabels map[string]string
	Countdown countdown.Snapshot
	Gallery   []GalleryItem
	Events    EventsPanelProps
}

// SitePage renders every section, hiding all but the resolved one
func SitePage(props SitePageProps) templ.Component {
	revealed := make(map[string]bool, len(props.View.Revealed))
	for _, id := range props.View.Revealed {
		revealed[id] = true
	}
	motion := func(id, kind string) string {
		if revealed[id] {
			return kind + " in-view"
		}
		return kind
	}

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := shared.NewWriter(w)
		for _, s := range props.View.Sections {
			hw.Raw("<section class=\"route\"")
			hw.Attr("data-route", s.Path)
			if !s.Visible {
				hw.Raw(" hidden")
			}
			hw.Raw("><h2>")
			hw.Text(s.Title)
			hw.Raw("</h2>")

			switch s.Path {
			case "/home":
				hw.Raw("<div id=\"hero-title\"")
				hw.Attr("class", motion("hero-title", "motion-fade-up"))
				hw.Raw("><h1>শারদীয় দুর্গোৎসব</h1></div>")
				hw.Raw("<div id=\"hero-countdown\"")
				hw.Attr("class", motion("hero-countdown", "motion-zoom-in"))
				hw.Raw("><p id=\"next-event-label\">")
				hw.Text(props.Countdown.Label)
				hw.Raw("</p><p id=\"next-event-countdown\">")
				hw.Text(props.Countdown.Countdown)
				hw.Raw("</p></div>")
			case "/schedule":
				hw.Component(ctx, scheduleTabs(props.Tabs, props.TabLabels, motion("schedule-tabs", "motion-fade-up")))
			case "/gallery":
				hw.Raw("<div id=\"gallery-grid\"")
				hw.Attr("class", motion("gallery-grid", "motion-zoom-in"))
				hw.Raw(">")
				for _, item := range props.Gallery {
					hw.Raw("<a class=\"gallery-item\"")
					hw.Attr("href", item.Href)
					hw.Raw("><img")
					hw.Attr("src", item.Thumb)
					hw.Attr("alt", item.Alt)
					hw.Raw(" loading=\"lazy\"></a>")
				}
				hw.Raw("</div>")
			case "/about":
				hw.Raw("<p id=\"about-text\"")
				hw.Attr("class", motion("about-text", "motion-fade-up"))
				hw.Raw(">পাড়ার সবার অংশগ্রহণে আয়োজিত সর্বজনীন দুর্গাপূজা।</p>")
			case "/admin":
				hw.Component(ctx, EventsPanel(props.Events))
			}
			hw.Raw("</section>")
		}
		return hw.Err()
	})

	return shared.Layout(props.Layout, body)
}

// scheduleTabs renders the tab triggers and panes of the schedule
func scheduleTabs(view sections.TabsView, labels map[string]string, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := shared.NewWriter(w)
		hw.Raw("<div id=\"schedule-tabs\" data-tabs")
		hw.Attr("class", class)
		hw.Raw("><div class=\"tab-triggers\">")
		for _, t := range view.Tabs {
			hw.Raw("<a")
			hw.Attr("href", "/?route=/schedule&tab="+t.Name+"#/schedule")
			hw.Attr("data-tab", t.Name)
			if t.Active {
				hw.Attr("class", "active")
			}
			hw.Raw(">")
			hw.Text(labelOr(labels, t.Name))
			hw.Raw("</a>")
		}
		hw.Raw("</div>")
		for _, t := range view.Tabs {
			hw.Raw("<div")
			hw.Attr("data-pane", t.Name)
			if !t.Active {
				hw.Raw(" hidden")
			}
			hw.Raw(">")
			hw.Text(labelOr(labels, t.Name))
			hw.Raw("</div>")
		}
		hw.Raw("</div>")
		return hw.Err()
	})
}

func labelOr(labels map[string]string, name string) string {
	if l, ok := labels[name]; ok {
		return l
	}
	return name
}
