package sections

import "testing"

func TestTabsActivate(t *testing.T) {
	tabs := Tabs{Names: []string{"one", "two", "three"}}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "known tab", input: "two", expected: "two"},
		{name: "unknown tab", input: "four", expected: "one"},
		{name: "empty name", input: "", expected: "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := tabs.Activate(tt.input)
			if view.Active != tt.expected {
				t.Fatalf("Active = %q; want %q", view.Active, tt.expected)
			}
			active := 0
			for _, tab := range view.Tabs {
				if tab.Active {
					active++
					if tab.Name != tt.expected {
						t.Errorf("tab %q active; want %q", tab.Name, tt.expected)
					}
				}
			}
			if active != 1 {
				t.Errorf("%d tabs active; want 1", active)
			}
		})
	}
}

func TestTabsDefault(t *testing.T) {
	if got := ScheduleTabs().Default().Active; got != "sasthi" {
		t.Errorf("Default().Active = %q; want sasthi", got)
	}
	if got := (Tabs{}).Default(); got.Active != "" || len(got.Tabs) != 0 {
		t.Errorf("empty Tabs Default() = %+v; want zero view", got)
	}
}

func TestMenu(t *testing.T) {
	var m Menu
	if got := m.Toggle(); got != "true" {
		t.Errorf("Toggle() = %q; want true", got)
	}

	m.FollowLink(1024)
	if !m.Open {
		t.Error("menu closed on a wide viewport")
	}

	m.FollowLink(MobileBreakpoint - 1)
	if m.Open {
		t.Error("menu still open on a narrow viewport")
	}
	if got := m.AriaExpanded(); got != "false" {
		t.Errorf("AriaExpanded() = %q; want false", got)
	}
}
