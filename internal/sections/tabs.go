package sections

// Tabs is a group of tab triggers with one pane each, keyed by name
type Tabs struct {
	Names []string
}

// TabState is one trigger/pane pair after activation
type TabState struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// TabsView is the state of a tab group after activation
type TabsView struct {
	Active string     `json:"active"`
	Tabs   []TabState `json:"tabs"`
}

// Default activates the first tab
func (t Tabs) Default() TabsView {
	if len(t.Names) == 0 {
		return TabsView{}
	}
	return t.Activate(t.Names[0])
}

// Activate marks only the named tab active. Unknown names fall back to
// the first tab.
func (t Tabs) Activate(name string) TabsView {
	if len(t.Names) == 0 {
		return TabsView{}
	}

	found := false
	for _, n := range t.Names {
		if n == name {
			found = true
			break
		}
	}
	if !found {
		name = t.Names[0]
	}

	view := TabsView{Active: name, Tabs: make([]TabState, len(t.Names))}
	for i, n := range t.Names {
		view.Tabs[i] = TabState{Name: n, Active: n == name}
	}
	return view
}
