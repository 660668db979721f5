package sections

import (
	"fmt"
	"strings"
)

// DefaultPath is the section shown when a fragment does not match anything
const DefaultPath = "/home"

// FocusTarget is the container that receives focus after every navigation
const FocusTarget = "app"

// Section represents one top-level content panel
type Section struct {
	Path  string `json:"path"`
	Title string `json:"title"`

	// Reveal lists the ids of motion elements inside the section that must
	// be marked revealed as soon as the section becomes visible
	Reveal []string `json:"reveal,omitempty"`
}

// SectionState is the visibility of one section after a navigation
type SectionState struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Visible bool   `json:"visible"`
}

// View holds the render instructions produced by a navigation
type View struct {
	Path     string         `json:"path"`
	Sections []SectionState `json:"sections"`
	Focus    string         `json:"focus"`
	Revealed []string       `json:"revealed"`
}

// Router maps a URL fragment to exactly one visible section
type Router struct {
	defaultPath string
	sections    []Section
	index       map[string]int
}

// NewRouter declares the static set of sections. The default path must be
// one of them and paths must be unique.
func NewRouter(defaultPath string, sections ...Section) (*Router, error) {
	r := &Router{
		defaultPath: defaultPath,
		sections:    make([]Section, 0, len(sections)),
		index:       make(map[string]int, len(sections)),
	}

	for _, s := range sections {
		if s.Path == "" {
			return nil, fmt.Errorf("section path is empty")
		}
		if _, exists := r.index[s.Path]; exists {
			return nil, fmt.Errorf("duplicate section path %q", s.Path)
		}
		r.index[s.Path] = len(r.sections)
		r.sections = append(r.sections, s)
	}

	if _, ok := r.index[defaultPath]; !ok {
		return nil, fmt.Errorf("default path %q is not a registered section", defaultPath)
	}

	return r, nil
}

// Has reports whether path is a registered section
func (r *Router) Has(path string) bool {
	_, ok := r.index[path]
	return ok
}

// Paths returns the registered paths in declaration order
func (r *Router) Paths() []string {
	paths := make([]string, len(r.sections))
	for i, s := range r.sections {
		paths[i] = s.Path
	}
	return paths
}

// Sections returns a copy of the declared sections
func (r *Router) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// DefaultPath returns the fallback path
func (r *Router) DefaultPath() string {
	return r.defaultPath
}

// Resolve turns a fragment ("#/about", "/about", "", "#") into a registered
// path. Only a leading marker is stripped. Unknown or malformed fragments silently resolve to the default.
func (r *Router) Resolve(fragment string) string {
	path := strings.TrimPrefix(fragment, "#")
	if r.Has(path) {
		return path
	}
	return r.defaultPath
}

// Navigate resolves the fragment and returns the view where only the
// resolved section is visible
func (r *Router) Navigate(fragment string) View {
	path := r.Resolve(fragment)

	view := View{
		Path:     path,
		Sections: make([]SectionState, len(r.sections)),
		Focus:    FocusTarget,
		Revealed: []string{},
	}

	for i, s := range r.sections {
		visible := s.Path == path
		view.Sections[i] = SectionState{Path: s.Path, Title: s.Title, Visible: visible}
		if visible {
			view.Revealed = append(view.Revealed, s.Reveal...)
		}
	}

	return view
}

// RevealAll returns every reveal-eligible element id, for clients that ask
// for reduced motion and get everything revealed up front
func (r *Router) RevealAll() []string {
	var ids []string
	for _, s := range r.sections {
		ids = append(ids, s.Reveal...)
	}
	return ids
}

// Visible returns the path of the visible section, or "" if none is
func (v View) Visible() string {
	for _, s := range v.Sections {
		if s.Visible {
			return s.Path
		}
	}
	return ""
}
