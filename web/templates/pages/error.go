package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"puja_site_echo/web/templates/shared"
)

// ErrorPageProps is the data of the error page
type ErrorPageProps struct {
	Title        string
	ThemeClass   string
	Breadcrumbs  []shared.Breadcrumb
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
}

// ErrorPage renders an error inside the site layout
func ErrorPage(props ErrorPageProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := shared.NewWriter(w)
		hw.Raw("<section class=\"error\"><h1>")
		hw.Text(props.ErrorTitle)
		hw.Raw("</h1><p>")
		hw.Text(props.ErrorMessage)
		hw.Raw("</p>")
		if props.BackLink != "" {
			hw.Raw("<a class=\"btn\"")
			hw.Attr("href", props.BackLink)
			hw.Raw(">")
			hw.Text(props.BackText)
			hw.Raw("</a>")
		}
		hw.Raw("</section>")
		return hw.Err()
	})

	return shared.Layout(shared.LayoutProps{
		Title:         props.Title,
		ThemeClass:    props.ThemeClass,
		MenuExpanded:  "false",
		MenuToggleURL: "/",
		Breadcrumbs:   props.Breadcrumbs,
	}, body)
}
