package render

import (
	"fmt"
	"sort"

	"github.com/juan-oclock/kansyl-assets/internal/fonts"
)

// themes maps a theme name to its constructor.
var themes = map[string]func(*fonts.Resolver) Producer{
	"simple":       func(r *fonts.Resolver) Producer { return NewGlyph(r) },
	"professional": func(r *fonts.Resolver) Producer { return NewClock(r) },
	"calendar":     func(r *fonts.Resolver) Producer { return NewCalendar(r) },
}

// Theme returns the drawing producer registered under name.
func Theme(name string, r *fonts.Resolver) (Producer, error) {
	newFn, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("render: unknown theme %q", name)
	}
	return newFn(r), nil
}

// ThemeNames returns the registered theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
