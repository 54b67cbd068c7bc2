package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/zonetick/zonetick/pkg/glyph"
	"github.com/zonetick/zonetick/pkg/timeutil"
	"github.com/zonetick/zonetick/pkg/zone"
)

const maxNameWidth = 28

// View renders the clock list with any active overlay below it.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Clock.Title.Render("zonetick"))
	if m.session.Edited() {
		b.WriteString("  " + m.theme.Clock.Edited.Render(glyph.Edited.Glyph().String()+" edited"))
	}
	b.WriteString("\n\n")

	zones := m.session.Zones()
	for i, z := range zones {
		b.WriteString(m.renderRow(i, z))
		b.WriteString("\n")
	}
	if len(zones) == 0 {
		b.WriteString(m.theme.Footer.Status.Render("no zones tracked, press / to add one"))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeSearch:
		b.WriteString("\n" + m.renderSearch())
	case modeEditLabel:
		b.WriteString("\n" + m.input.View())
	case modeHelp:
		b.WriteString("\n" + m.renderHelp())
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func (m *Model) renderRow(i int, z zone.Tracked) string {
	th := m.theme.Clock

	marker := "  "
	if i == m.cursor && m.mode != modeSearch {
		marker = th.Cursor.Render("❯ ")
	}

	icon := " "
	if info, ok := m.info[z.Zone]; ok {
		icon = glyph.ForDaytime(info.IsDayTime).String()
	}

	name := z.DisplayName()
	if z.IsLocal {
		name += " " + th.Local.Render("(local)")
	}
	name = truncate.StringWithTail(name, maxNameWidth, "…")

	clock := m.renderClock(i, z)

	pad := maxNameWidth - lipgloss.Width(name)
	if pad < 1 {
		pad = 1
	}
	return marker + th.Icon.Render(icon) + " " + th.Name.Render(name) +
		strings.Repeat(" ", pad) + clock
}

// renderClock prints HH:MM plus AM/PM, swapping in the digit buffer for
// whichever field is being edited on the selected row.
func (m *Model) renderClock(i int, z zone.Tracked) string {
	th := m.theme.Clock

	parts, err := m.session.FieldsAt(z)
	if err != nil {
		return th.Period.Render("--:--")
	}

	hours := th.Time.Render(parts.Hours)
	minutes := th.Time.Render(parts.Minutes)
	if m.mode == modeEditTime && i == m.cursor {
		cell := m.editBuf
		for len(cell) < 2 {
			cell = "_" + cell
		}
		if m.editField == timeutil.FieldMinutes {
			minutes = th.EditCell.Render(cell)
		} else {
			hours = th.EditCell.Render(cell)
		}
	}

	out := hours + th.Time.Render(":") + minutes
	if parts.Period != "" {
		out += " " + th.Period.Render(parts.Period)
	}
	return out
}

func (m *Model) renderSearch() string {
	th := m.theme.Search

	var b strings.Builder
	b.WriteString(m.input.View())
	for i, e := range m.searchResults {
		b.WriteString("\n")
		label := e.Display + "  " + th.Item.Faint(true).Render(e.Zone)
		if i == m.searchCursor {
			b.WriteString(th.Selected.Render(" " + e.Display + " "))
			b.WriteString("  " + th.Item.Faint(true).Render(e.Zone))
		} else {
			b.WriteString(" " + label)
		}
	}
	if strings.TrimSpace(m.input.Value()) != "" && len(m.searchResults) == 0 {
		b.WriteString("\n " + m.theme.Footer.Status.Render("no matches"))
	}
	return th.Frame.Render(b.String())
}

func (m *Model) renderHelp() string {
	th := m.theme.Modal
	rows := []string{
		"↑/↓      select zone",
		"enter/h  edit hours",
		"m        edit minutes",
		"n        rename zone",
		"x        remove zone",
		"/ or a   add zone",
		"t        12/24 hour",
		"r        back to live time",
		"q        quit",
	}
	return th.Frame.Render(th.Title.Render("keys") + "\n\n" + th.Body.Render(strings.Join(rows, "\n")))
}

func (m *Model) renderFooter() string {
	th := m.theme.Footer

	var hints string
	switch m.mode {
	case modeSearch:
		hints = "↑/↓ pick · enter add · esc cancel"
	case modeEditTime:
		hints = "digits type · ↑/↓ step · tab other field · enter set · esc cancel"
	case modeEditLabel:
		hints = "enter rename · esc cancel"
	case modeHelp:
		hints = "esc close"
	default:
		hints = "↑/↓ select · enter edit · / add · ? help · q quit"
	}

	line := th.Help.Render(hints)
	if m.status != "" {
		style := th.Status
		if strings.HasPrefix(m.status, "ERR:") {
			style = th.Error
		}
		line = style.Render(m.status) + "  " + line
	}
	if m.termWidth > 0 {
		line = truncate.String(line, uint(m.termWidth))
	}
	return line
}
