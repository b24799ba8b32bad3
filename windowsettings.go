package duskgfx

// WindowSettings describes the window a host should create before calling
// NewRenderer, grounded on the original's bootstrap/src/window.rs. This
// package never creates a window itself (spec.md scopes that out); the
// struct exists so a host (cmd/demo, or any other embedder) has a single
// place to configure title/size/resizability instead of inventing its own.
type WindowSettings struct {
	Title       string
	Width       int
	Height      int
	MinWidth    int
	MinHeight   int
	MaxWidth    int
	MaxHeight   int
	Resizable   bool
	Transparent bool
	Decorated   bool
}

// NewWindowSettings returns settings with sane defaults: resizable,
// decorated, opaque, no min/max bound.
func NewWindowSettings(title string, width, height int) WindowSettings {
	return WindowSettings{
		Title:       title,
		Width:       width,
		Height:      height,
		Resizable:   true,
		Decorated:   true,
		Transparent: false,
	}
}

// WithMinSize returns a copy of s with a minimum window size set.
func (s WindowSettings) WithMinSize(width, height int) WindowSettings {
	s.MinWidth, s.MinHeight = width, height
	return s
}

// WithMaxSize returns a copy of s with a maximum window size set.
func (s WindowSettings) WithMaxSize(width, height int) WindowSettings {
	s.MaxWidth, s.MaxHeight = width, height
	return s
}
