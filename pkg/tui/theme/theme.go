package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Clock  ClockTheme
	Footer FooterTheme
	Search SearchTheme
	Modal  ModalTheme
}

// ClockTheme styles the per-zone clock rows.
type ClockTheme struct {
	Title    lipgloss.Style
	Name     lipgloss.Style
	Local    lipgloss.Style
	Time     lipgloss.Style
	Period   lipgloss.Style
	Icon     lipgloss.Style
	Edited   lipgloss.Style
	Cursor   lipgloss.Style
	EditCell lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// SearchTheme styles the zone search overlay.
type SearchTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
}

// ModalTheme styles centered overlays (help, rename).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	name := lipgloss.NewStyle().Bold(true)
	item := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	return Theme{
		Clock: ClockTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Name:     name,
			Local:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Time:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Period:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Icon:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			Edited:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			EditCell: lipgloss.NewStyle().Reverse(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Search: SearchTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:    lipgloss.NewStyle().Bold(true),
			Item:     item,
			Selected: item.Reverse(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
