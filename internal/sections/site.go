package sections

// SiteSections is the section set of the festival site, in nav order
func SiteSections() []Section {
	return []Section{
		{Path: "/home", Title: "হোম", Reveal: []string{"hero-title", "hero-countdown"}},
		{Path: "/schedule", Title: "সূচি", Reveal: []string{"schedule-tabs"}},
		{Path: "/gallery", Title: "গ্যালারি", Reveal: []string{"gallery-grid"}},
		{Path: "/about", Title: "আমাদের কথা", Reveal: []string{"about-text"}},
		{Path: "/contact", Title: "যোগাযোগ"},
		{Path: "/admin", Title: "অ্যাডমিন", Reveal: []string{"admin-panel"}},
	}
}

// ScheduleTabs are the per-day panes of the schedule section
func ScheduleTabs() Tabs {
	return Tabs{Names: []string{"sasthi", "saptami", "ashtami", "navami", "dashami"}}
}

// NewSiteRouter builds the router for SiteSections
func NewSiteRouter(defaultPath string) (*Router, error) {
	if defaultPath == "" {
		defaultPath = DefaultPath
	}
	return NewRouter(defaultPath, SiteSections()...)
}
