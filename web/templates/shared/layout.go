package shared

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Breadcrumb represents a navigation trail
type Breadcrumb struct {
	Title string
	URL   string
}

// NavItem is one link of the top navigation
type NavItem struct {
	Title  string
	Path   string
	URL    string
	Active bool
}

// LayoutProps is the data shared by every full page
type LayoutProps struct {
	Title         string
	ThemeClass    string
	Nav           []NavItem
	MenuExpanded  string
	MenuToggleURL string
	Breadcrumbs   []Breadcrumb
}

// Layout wraps body in the document shell: head, theme class, navigation
// with the mobile toggle and the focusable main container
func Layout(props LayoutProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw("<!DOCTYPE html><html lang=\"bn\"")
		if props.ThemeClass != "" {
			hw.Attr("class", props.ThemeClass)
		}
		hw.Raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		hw.Text(props.Title)
		hw.Raw("</title><link rel=\"stylesheet\" href=\"/static/style.css\"></head><body>")

		hw.Raw("<header class=\"site-header\"><form method=\"post\" action=\"/theme/toggle\"><button id=\"themeToggle\" class=\"btn btn-ghost\" type=\"submit\">◐</button></form>")
		hw.Raw("<a class=\"menu-toggle\" role=\"button\"")
		hw.Attr("href", props.MenuToggleURL)
		hw.Attr("aria-expanded", props.MenuExpanded)
		hw.Raw(">☰</a><nav id=\"menu\"")
		if props.MenuExpanded == "true" {
			hw.Attr("style", "display:flex")
		}
		hw.Raw(">")
		for _, item := range props.Nav {
			hw.Raw("<a data-link")
			hw.Attr("href", item.URL)
			if item.Active {
				hw.Attr("class", "active")
				hw.Attr("aria-current", "page")
			}
			hw.Raw(">")
			hw.Text(item.Title)
			hw.Raw("</a>")
		}
		hw.Raw("</nav></header>")

		if len(props.Breadcrumbs) > 0 {
			hw.Raw("<ol class=\"breadcrumbs\">")
			for _, b := range props.Breadcrumbs {
				hw.Raw("<li>")
				if b.URL != "" {
					hw.Raw("<a")
					hw.Attr("href", b.URL)
					hw.Raw(">")
					hw.Text(b.Title)
					hw.Raw("</a>")
				} else {
					hw.Text(b.Title)
				}
				hw.Raw("</li>")
			}
			hw.Raw("</ol>")
		}

		hw.Raw("<main id=\"app\" tabindex=\"-1\">")
		hw.Component(ctx, body)
		hw.Raw("</main><script src=\"/static/script.js\" defer></script></body></html>")
		return hw.Err()
	})
}
