package bough

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Theme supplies option overrides per section. Section names are widget
// theme sections such as "Frame" or "Scrollbar", optionally followed by
// ":<sub-theme>".
type Theme interface {
	// Section returns the options for name, or false if the theme does not
	// define that section.
	Section(name string) (map[string]any, bool)
}

// MapTheme is a Theme backed by nested maps.
type MapTheme map[string]map[string]any

// Section implements Theme.
func (t MapTheme) Section(name string) (map[string]any, bool) {
	opts, ok := t[name]
	return opts, ok
}

// LoadThemeYAML decodes a YAML mapping of section name to option mapping.
// Colors are written as four-element sequences:
//
//	Frame:
//	  Color1: [0.1, 0.1, 0.1, 1]
//	  BorderSize: 2
//	"Frame:dark":
//	  BorderColor: [1, 1, 1, 1]
func LoadThemeYAML(data []byte) (MapTheme, error) {
	var t MapTheme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	if t == nil {
		t = MapTheme{}
	}
	return t, nil
}

// ResolveTheme merges the options of one section. Every key of defaults is
// taken from the theme section when present there, else from defaults;
// overrides then replace individual keys. A nil theme or a missing section
// yields the defaults.
func ResolveTheme(theme Theme, section string, defaults, overrides map[string]any) map[string]any {
	resolved := make(map[string]any, len(defaults))
	var sec map[string]any
	if theme != nil {
		sec, _ = theme.Section(section)
	}
	for k, v := range defaults {
		if tv, ok := sec[k]; ok {
			resolved[k] = tv
		} else {
			resolved[k] = v
		}
	}
	for k, v := range overrides {
		resolved[k] = v
	}
	return resolved
}

// applyTheme resolves the widget's theme section against the system theme
// the widget will be attached under.
func (w *Widget) applyTheme(sys *System, section, subTheme string, defaults, overrides map[string]any) {
	if subTheme != "" {
		section += ":" + subTheme
	}
	w.themeSection = section
	var theme Theme
	if sys != nil && w.Options&OptionNoTheme == 0 {
		theme = sys.theme
	}
	w.Theme = ResolveTheme(theme, section, defaults, overrides)
}

// ThemeSection returns the section the widget's theme was resolved from.
func (w *Widget) ThemeSection() string {
	return w.themeSection
}

// themeColor reads a color option. Accepts Color, four-element numeric
// slices and arrays, and YAML-decoded []any.
func themeColor(opts map[string]any, key string) Color {
	switch v := opts[key].(type) {
	case Color:
		return v
	case [4]float64:
		return Color{v[0], v[1], v[2], v[3]}
	case []float64:
		if len(v) == 4 {
			return Color{v[0], v[1], v[2], v[3]}
		}
	case []any:
		if len(v) == 4 {
			return Color{toFloat(v[0]), toFloat(v[1]), toFloat(v[2]), toFloat(v[3])}
		}
	}
	return ColorTransparent
}

// themeFloat reads a numeric option.
func themeFloat(opts map[string]any, key string) float64 {
	return toFloat(opts[key])
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}
