package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/zonetick/zonetick/pkg/catalog"
	"github.com/zonetick/zonetick/pkg/clock"
	"github.com/zonetick/zonetick/pkg/timeutil"
)

// handleKeyPress dispatches to the active mode. It reports whether the
// program should quit.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if msg.String() == "ctrl+c" {
		return true
	}
	switch m.mode {
	case modeHelp:
		m.handleHelpKey(msg)
	case modeSearch:
		m.handleSearchKey(msg, cmds)
	case modeEditTime:
		m.handleEditTimeKey(msg, cmds)
	case modeEditLabel:
		m.handleEditLabelKey(msg, cmds)
	case modeNormal:
		return m.handleNormalKey(msg, cmds)
	}
	return false
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "q", "esc", "?", "enter":
		m.mode = modeNormal
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "q":
		return true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.session.Zones())-1 {
			m.cursor++
		}
	case "t":
		if err := m.session.ToggleFormat(); err != nil {
			m.status = "ERR: " + err.Error()
		}
	case "r":
		if m.session.Edited() {
			m.session.Reset()
			m.status = "back to live time"
		}
	case "enter", "h":
		m.beginEdit(timeutil.FieldHours)
	case "m":
		m.beginEdit(timeutil.FieldMinutes)
	case "n":
		m.beginRename()
	case "x", "backspace":
		m.removeCursorZone(cmds)
	case "/", "a":
		m.beginSearch()
	case "?":
		m.mode = modeHelp
	}
	return false
}

func (m *Model) beginSearch() {
	m.mode = modeSearch
	m.searchResults = nil
	m.searchCursor = 0
	m.input.Reset()
	m.input.Placeholder = "Search cities"
	m.input.Prompt = "/ "
	m.input.Focus()
	m.status = ""
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.input.Reset()
		m.mode = modeNormal
	case "up", "ctrl+p":
		if m.searchCursor > 0 {
			m.searchCursor--
		}
	case "down", "ctrl+n":
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
	case "enter":
		m.submitSearch(cmds)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		m.searchResults = catalog.Search(m.input.Value())
		if m.searchCursor >= len(m.searchResults) {
			m.searchCursor = 0
		}
	}
}

func (m *Model) submitSearch(cmds *[]tea.Cmd) {
	target := strings.TrimSpace(m.input.Value())
	if len(m.searchResults) > 0 {
		target = m.searchResults[m.searchCursor].Zone
	}
	if target == "" {
		return
	}
	m.input.Blur()
	m.input.Reset()
	m.mode = modeNormal
	if err := m.session.Add(target); err != nil {
		if errors.Is(err, clock.ErrUnknownZone) {
			if near, ok := catalog.Nearest(target); ok {
				m.status = "unknown zone " + target + ", did you mean " + near + "?"
			} else {
				m.status = "unknown zone " + target
			}
			return
		}
		m.status = "ERR: " + err.Error()
		return
	}
	m.cursor = len(m.session.Zones()) - 1
	label := catalog.DisplayName(target)
	if e, ok := catalog.Lookup(target); ok {
		label = e.Display
	}
	m.status = "added " + label
	*cmds = append(*cmds, m.loadInfo())
}

func (m *Model) beginRename() {
	z, ok := m.cursorZone()
	if !ok {
		return
	}
	if z.IsLocal {
		m.status = "the local zone keeps its name"
		return
	}
	m.mode = modeEditLabel
	m.input.Reset()
	m.input.Placeholder = z.DisplayName()
	m.input.Prompt = "name: "
	m.input.SetValue(z.DisplayName())
	m.input.CursorEnd()
	m.input.Focus()
	m.status = ""
}

func (m *Model) handleEditLabelKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.input.Reset()
		m.mode = modeNormal
	case "enter":
		name := m.input.Value()
		m.input.Blur()
		m.input.Reset()
		m.mode = modeNormal
		if err := m.session.Rename(m.cursor, name); err != nil {
			m.status = "ERR: " + err.Error()
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) handleEditTimeKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		m.mode = modeNormal
		m.editBuf = ""
	case "enter":
		m.commitEdit(cmds)
	case "tab":
		// Commit this field, then open the other one on the same zone.
		next := timeutil.FieldMinutes
		if m.editField == timeutil.FieldMinutes {
			next = timeutil.FieldHours
		}
		m.commitEdit(cmds)
		m.beginEdit(next)
	case "up":
		m.stepEdit(1)
	case "down":
		m.stepEdit(-1)
	case "backspace":
		m.editTyped = true
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			// The first digit replaces the seeded value, like typing
			// over a selected input.
			if !m.editTyped {
				m.editBuf = key
				m.editTyped = true
				return
			}
			m.editBuf += key
			if len(m.editBuf) > 2 {
				m.editBuf = m.editBuf[len(m.editBuf)-2:]
			}
		}
	}
}

func (m *Model) removeCursorZone(cmds *[]tea.Cmd) {
	z, ok := m.cursorZone()
	if !ok {
		return
	}
	if err := m.session.Remove(m.cursor); err != nil {
		if errors.Is(err, clock.ErrLocalZone) {
			m.status = "the local zone stays"
			return
		}
		m.status = "ERR: " + err.Error()
		return
	}
	m.clampCursor()
	m.status = "removed " + z.DisplayName()
	*cmds = append(*cmds, m.loadInfo())
}
