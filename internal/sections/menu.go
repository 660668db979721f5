package sections

import "strconv"

// MobileBreakpoint is the viewport width below which following a nav link
// closes the menu
const MobileBreakpoint = 760

// Menu is the collapsible mobile navigation
type Menu struct {
	Open bool
}

// Toggle flips the menu and returns the new aria-expanded value
func (m *Menu) Toggle() string {
	m.Open = !m.Open
	return m.AriaExpanded()
}

// FollowLink closes the menu on narrow viewports
func (m *Menu) FollowLink(viewportWidth int) {
	if viewportWidth < MobileBreakpoint {
		m.Open = false
	}
}

// AriaExpanded renders the open state for the toggle button
func (m Menu) AriaExpanded() string {
	return strconv.FormatBool(m.Open)
}
