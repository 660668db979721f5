package sections

import (
	"reflect"
	"testing"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	r, err := NewSiteRouter("")
	if err != nil {
		t.Fatalf("NewSiteRouter: %v", err)
	}
	return r
}

func TestNavigateShowsExactlyOneSection(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range r.Paths() {
		t.Run(path, func(t *testing.T) {
			view := r.Navigate("#" + path)

			if view.Path != path {
				t.Fatalf("Path = %q; want %q", view.Path, path)
			}
			visible := 0
			for _, s := range view.Sections {
				if s.Visible {
					visible++
					if s.Path != path {
						t.Errorf("section %q visible; want only %q", s.Path, path)
					}
				}
			}
			if visible != 1 {
				t.Errorf("%d sections visible; want 1", visible)
			}
			if view.Focus != FocusTarget {
				t.Errorf("Focus = %q; want %q", view.Focus, FocusTarget)
			}
		})
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{name: "registered with marker", fragment: "#/gallery", expected: "/gallery"},
		{name: "registered without marker", fragment: "/about", expected: "/about"},
		{name: "unknown path", fragment: "#/nonexistent", expected: "/home"},
		{name: "empty", fragment: "", expected: "/home"},
		{name: "marker only", fragment: "#", expected: "/home"},
		{name: "trailing slash", fragment: "#/about/", expected: "/home"},
		{name: "case differs", fragment: "#/About", expected: "/home"},
		{name: "double marker", fragment: "##/about", expected: "/home"},
		{name: "marker inside path", fragment: "/adm#in", expected: "/home"},
		{name: "marker inside other path", fragment: "/ab#out", expected: "/home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.fragment); got != tt.expected {
				t.Errorf("Resolve(%q) = %q; want %q", tt.fragment, got, tt.expected)
			}
		})
	}
}

func TestNavigateRevealsVisibleSectionOnly(t *testing.T) {
	r, err := NewRouter("/a",
		Section{Path: "/a", Reveal: []string{"a1", "a2"}},
		Section{Path: "/b", Reveal: []string{"b1"}},
		Section{Path: "/c"},
	)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	if got := r.Navigate("#/b").Revealed; !reflect.DeepEqual(got, []string{"b1"}) {
		t.Errorf("Revealed = %v; want [b1]", got)
	}
	if got := r.Navigate("#/a").Revealed; !reflect.DeepEqual(got, []string{"a1", "a2"}) {
		t.Errorf("Revealed = %v; want [a1 a2]", got)
	}
	if got := r.Navigate("#/c").Revealed; len(got) != 0 {
		t.Errorf("Revealed = %v; want none", got)
	}
	if got := r.RevealAll(); !reflect.DeepEqual(got, []string{"a1", "a2", "b1"}) {
		t.Errorf("RevealAll = %v; want [a1 a2 b1]", got)
	}
}

func TestNewRouterRejectsBadSections(t *testing.T) {
	tests := []struct {
		name        string
		defaultPath string
		sections    []Section
	}{
		{name: "duplicate path", defaultPath: "/a", sections: []Section{{Path: "/a"}, {Path: "/a"}}},
		{name: "empty path", defaultPath: "/a", sections: []Section{{Path: "/a"}, {Path: ""}}},
		{name: "unregistered default", defaultPath: "/x", sections: []Section{{Path: "/a"}}},
		{name: "no sections", defaultPath: "/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRouter(tt.defaultPath, tt.sections...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewSiteRouterCustomDefault(t *testing.T) {
	r, err := NewSiteRouter("/about")
	if err != nil {
		t.Fatalf("NewSiteRouter: %v", err)
	}
	if got := r.Resolve("#/missing"); got != "/about" {
		t.Errorf("Resolve = %q; want /about", got)
	}
	if got := r.Navigate("").Visible(); got != "/about" {
		t.Errorf("Visible = %q; want /about", got)
	}
}
