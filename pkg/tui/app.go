package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/zonetick/zonetick/pkg/catalog"
	"github.com/zonetick/zonetick/pkg/clock"
	"github.com/zonetick/zonetick/pkg/daynight"
	"github.com/zonetick/zonetick/pkg/store"
	"github.com/zonetick/zonetick/pkg/timeutil"
	"github.com/zonetick/zonetick/pkg/tui/theme"
	"github.com/zonetick/zonetick/pkg/zone"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeEditTime
	modeEditLabel
	modeHelp
)

type tickMsg time.Time

type infoLoadedMsg struct {
	date string
	info map[string]daynight.Info
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct{}

type watchStoppedMsg struct{}

// Model renders the tracked clocks and routes keys by mode.
type Model struct {
	session  *clock.Session
	daynight *daynight.Lookup
	persist  store.Persistence

	ctx    context.Context
	cancel context.CancelFunc

	mode   mode
	cursor int

	input         textinput.Model
	searchResults []catalog.Entry
	searchCursor  int

	editField timeutil.Field
	editBuf   string
	editTyped bool

	info     map[string]daynight.Info
	infoDate string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	status string

	termWidth  int
	termHeight int

	theme theme.Theme
}

// New creates a root model backed by the session.
func New(session *clock.Session, dn *daynight.Lookup, p store.Persistence) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search cities"
	ti.CharLimit = 64
	ti.Prompt = "/ "
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		session:  session,
		daynight: dn,
		persist:  p,
		ctx:      ctx,
		cancel:   cancel,
		mode:     modeNormal,
		input:    ti,
		info:     make(map[string]daynight.Info),
		theme:    theme.Default(),
	}
}

// Run launches the Bubble Tea program.
func Run(session *clock.Session, dn *daynight.Lookup, p store.Persistence) error {
	p2 := tea.NewProgram(New(session, dn, p), tea.WithAltScreen())
	_, err := p2.Run()
	return err
}

// Init starts the clock tick, the day/night fetch, and the prefs watch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.loadInfo(), startWatchCmd(m.ctx, m.persist))
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadInfo gathers day/night info for every tracked zone off the UI loop.
func (m *Model) loadInfo() tea.Cmd {
	zones := m.session.Zones()
	dn := m.daynight
	ctx := m.ctx
	date := m.session.Instant().Format("2006-01-02")
	return func() tea.Msg {
		info := make(map[string]daynight.Info, len(zones))
		for _, z := range zones {
			info[z.Zone] = dn.For(ctx, z.Zone)
		}
		return infoLoadedMsg{date: date, info: info}
	}
}

func startWatchCmd(parent context.Context, p store.Persistence) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return watchEventMsg{}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update routes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tickMsg:
		// Open edits pin the display, so skip advancing while one is active.
		if m.mode != modeEditTime && m.mode != modeEditLabel {
			m.session.Tick(time.Time(msg))
		}
		cmds = append(cmds, tickCmd())
		if d := m.session.Instant().Format("2006-01-02"); d != m.infoDate && m.infoDate != "" {
			cmds = append(cmds, m.loadInfo())
		}
	case infoLoadedMsg:
		m.info = msg.info
		m.infoDate = msg.date
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		if err := m.session.Reload(); err != nil {
			m.status = "ERR: " + err.Error()
		}
		m.clampCursor()
		cmds = append(cmds, m.loadInfo())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.persist))
	case tea.KeyPressMsg:
		if m.handleKeyPress(msg, &cmds) {
			m.cancel()
			return m, tea.Quit
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) clampCursor() {
	n := len(m.session.Zones())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) cursorZone() (zone.Tracked, bool) {
	zones := m.session.Zones()
	if m.cursor < 0 || m.cursor >= len(zones) {
		return zone.Tracked{}, false
	}
	return zones[m.cursor], true
}

// beginEdit opens the digit buffer seeded with the field's current value.
func (m *Model) beginEdit(field timeutil.Field) {
	z, ok := m.cursorZone()
	if !ok {
		return
	}
	parts, err := m.session.FieldsAt(z)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.editField = field
	switch field {
	case timeutil.FieldMinutes:
		m.editBuf = parts.Minutes
	default:
		m.editBuf = parts.Hours
	}
	m.editTyped = false
	m.mode = modeEditTime
	m.status = ""
}

// stepEdit nudges the buffered value. Minutes wrap, hours clamp.
func (m *Model) stepEdit(delta int) {
	v := timeutil.ParseDigits(m.editBuf)
	if m.editField == timeutil.FieldMinutes {
		v = timeutil.StepMinute(v, delta)
	} else {
		v = timeutil.StepHour(v, delta, m.session.Use24Hour())
	}
	m.editBuf = pad2(v)
}

func (m *Model) commitEdit(cmds *[]tea.Cmd) {
	if err := m.session.CommitEdit(m.cursor, m.editField, m.editBuf); err != nil {
		m.status = "ERR: " + err.Error()
	} else {
		m.status = "edited, r resets to live time"
	}
	m.mode = modeNormal
	m.editBuf = ""
	*cmds = append(*cmds, m.loadInfo())
}

func pad2(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
