package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Name string
	// Indicator marks the selected entry; its shape follows the theme's icon style.
	Indicator             string
	Header                *lipgloss.Style
	Item                  *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Info                  *lipgloss.Style
	Empty                 *lipgloss.Style
	Footer                *lipgloss.Style
}

type palette struct {
	name       string
	background lipgloss.Color
	font       lipgloss.Color
	accent     lipgloss.Color
	indicator  string
	bold       bool
}

// Classic, Sport and Eco mirror the head unit's theme presets.
var palettes = []palette{
	{name: "Classic", background: "25", font: "255", accent: "33", indicator: "▌"},
	{name: "Sport", background: "160", font: "255", accent: "196", indicator: "●", bold: true},
	{name: "Eco", background: "28", font: "22", accent: "34", indicator: "›"},
}

var registry = buildRegistry()

func buildRegistry() map[string]*Styles {
	out := make(map[string]*Styles, len(palettes))
	for _, p := range palettes {
		out[strings.ToLower(p.name)] = newStyles(p)
	}
	return out
}

func newStyles(p palette) *Styles {
	return &Styles{
		Name:      p.name,
		Indicator: p.indicator,
		Header: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(p.font).Background(p.background).Bold(p.bold),
		),
		SelectedItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Background(p.background),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Italic(true),
		),
		Empty: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
	}
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return registry["classic"]
}

// Lookup finds a theme by name, ignoring case and surrounding space.
func Lookup(name string) (*Styles, bool) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Names lists the available theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for _, p := range palettes {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return names
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
