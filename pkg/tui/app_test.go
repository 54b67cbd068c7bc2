package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"github.com/zonetick/zonetick/pkg/clock"
	"github.com/zonetick/zonetick/pkg/daynight"
	"github.com/zonetick/zonetick/pkg/store"
	"github.com/zonetick/zonetick/pkg/zone"
)

type memPersistence struct {
	prefs store.Prefs
}

func (m *memPersistence) Prefs() (store.Prefs, error) { return m.prefs, nil }

func (m *memPersistence) SavePrefs(p store.Prefs) error {
	m.prefs = p
	return nil
}

func (m *memPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newTestModel(t *testing.T, at time.Time) (*Model, *memPersistence) {
	t.Helper()
	p := &memPersistence{prefs: store.Prefs{
		Use24HourFormat: true,
		Timezones: []zone.Tracked{
			zone.Local("America/New_York"),
			zone.New("Asia/Tokyo"),
		},
	}}
	s := clock.New(p,
		clock.WithClock(func() time.Time { return at }),
		clock.WithLocalZone(func() string { return "America/New_York" }),
	)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	dn := daynight.New(
		daynight.WithBaseURL("http://127.0.0.1:0"),
		daynight.WithClock(func() time.Time { return at }),
	)
	m := New(s, dn, p)
	m.termWidth = 80
	m.termHeight = 24
	return m, p
}

func press(m *Model, key string) *Model {
	msg := tea.KeyPressMsg{Text: key, Code: rune(key[0])}
	if len(key) > 1 {
		msg = keyFor(key)
	}
	next, _ := m.Update(msg)
	return next.(*Model)
}

func keyFor(name string) tea.KeyPressMsg {
	switch name {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	default:
		return tea.KeyPressMsg{Text: name, Code: rune(name[0])}
	}
}

func TestViewRendersZonesOnSharedInstant(t *testing.T) {
	// 12:00 UTC in January is 07:00 New York, 21:00 Tokyo.
	m, _ := newTestModel(t, time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC))
	m.info = map[string]daynight.Info{
		"America/New_York": {IsDayTime: true},
		"Asia/Tokyo":       {IsDayTime: false},
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "New York (local)") {
		t.Fatalf("expected local marker; view=%q", view)
	}
	if !strings.Contains(view, "07:00") {
		t.Fatalf("expected New York 07:00; view=%q", view)
	}
	if !strings.Contains(view, "21:00") {
		t.Fatalf("expected Tokyo 21:00; view=%q", view)
	}
	if !strings.Contains(view, "☀") || !strings.Contains(view, "☾") {
		t.Fatalf("expected day and night icons; view=%q", view)
	}
}

func TestTickAdvancesClockAndReschedules(t *testing.T) {
	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	m, _ := newTestModel(t, start)

	later := start.Add(time.Minute)
	next, cmd := m.Update(tickMsg(later))
	m = next.(*Model)
	if cmd == nil {
		t.Fatalf("tick should reschedule")
	}
	if !m.session.Instant().Equal(later) {
		t.Fatalf("instant = %v, want %v", m.session.Instant(), later)
	}
}

func TestTickSuppressedWhileEditing(t *testing.T) {
	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	m, _ := newTestModel(t, start)

	m = press(m, "h")
	if m.mode != modeEditTime {
		t.Fatalf("h should open the hour editor")
	}
	next, _ := m.Update(tickMsg(start.Add(time.Minute)))
	m = next.(*Model)
	if !m.session.Instant().Equal(start) {
		t.Fatalf("tick advanced the clock during an edit")
	}
}

func TestEditHourCommitRetimesAllZones(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC))

	m = press(m, "h")
	if m.editBuf != "07" {
		t.Fatalf("editor should seed the current hour, got %q", m.editBuf)
	}
	m = press(m, "0")
	m = press(m, "8")
	if m.editBuf != "08" {
		t.Fatalf("typed buffer = %q, want 08", m.editBuf)
	}
	m = press(m, "enter")

	if m.mode != modeNormal {
		t.Fatalf("commit should return to normal mode")
	}
	if !m.session.Edited() {
		t.Fatalf("commit should hold an edited instant")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "08:00") || !strings.Contains(view, "22:00") {
		t.Fatalf("expected both clocks re-anchored; view=%q", view)
	}
	if !strings.Contains(view, "edited") {
		t.Fatalf("expected edited indicator; view=%q", view)
	}

	m = press(m, "r")
	if m.session.Edited() {
		t.Fatalf("r should reset to live time")
	}
}

func TestEditMinuteStepWraps(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2024, time.January, 1, 12, 59, 0, 0, time.UTC))

	m = press(m, "m")
	if m.editBuf != "59" {
		t.Fatalf("editor should seed minutes, got %q", m.editBuf)
	}
	m = press(m, "up")
	if m.editBuf != "00" {
		t.Fatalf("59 stepped up should wrap to 00, got %q", m.editBuf)
	}
	m = press(m, "down")
	if m.editBuf != "59" {
		t.Fatalf("00 stepped down should wrap to 59, got %q", m.editBuf)
	}
	m = press(m, "esc")
	if m.mode != modeNormal || m.session.Edited() {
		t.Fatalf("esc should cancel without editing")
	}
}

func TestSearchAddsZone(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC))

	m = press(m, "/")
	if m.mode != modeSearch {
		t.Fatalf("/ should open search")
	}
	for _, r := range "london" {
		m = press(m, string(r))
	}
	if len(m.searchResults) == 0 {
		t.Fatalf("expected matches for london")
	}
	if m.searchResults[0].Zone != "Europe/London" {
		t.Fatalf("first match = %s", m.searchResults[0].Zone)
	}

	m = press(m, "enter")
	if m.mode != modeNormal {
		t.Fatalf("enter should leave search mode")
	}
	zones := m.session.Zones()
	if zones[len(zones)-1].Zone != "Europe/London" {
		t.Fatalf("expected London appended, got %+v", zones)
	}
	if m.cursor != len(zones)-1 {
		t.Fatalf("cursor should land on the new zone")
	}
	// The confirmation uses the catalog display name, not the derived
	// identifier label.
	if !strings.Contains(m.status, "London, UK") {
		t.Fatalf("status should carry the catalog label, got %q", m.status)
	}
}

func TestRemoveProtectsLocalZone(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC))

	m = press(m, "x")
	if got := len(m.session.Zones()); got != 2 {
		t.Fatalf("local zone was removed, %d zones left", got)
	}
	if !strings.Contains(m.status, "local zone") {
		t.Fatalf("expected a status explaining the refusal, got %q", m.status)
	}

	m = press(m, "down")
	m = press(m, "x")
	if got := len(m.session.Zones()); got != 1 {
		t.Fatalf("expected Tokyo removed, %d zones left", got)
	}
}

func TestRenameZone(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC))

	// The local zone refuses a rename.
	m = press(m, "n")
	if m.mode != modeNormal {
		t.Fatalf("local zone should not open the rename editor")
	}

	m = press(m, "down")
	m = press(m, "n")
	if m.mode != modeEditLabel {
		t.Fatalf("n should open the rename editor")
	}
	m.input.SetValue("HQ")
	m = press(m, "enter")
	if got := m.session.Zones()[1].DisplayName(); got != "HQ" {
		t.Fatalf("rename did not stick: %s", got)
	}
}

func TestToggleFormatKey(t *testing.T) {
	m, p := newTestModel(t, time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC))

	m = press(m, "t")
	if m.session.Use24Hour() {
		t.Fatalf("t should flip to 12-hour")
	}
	if p.prefs.Use24HourFormat {
		t.Fatalf("format change should persist")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "AM") && !strings.Contains(view, "PM") {
		t.Fatalf("12-hour view should show a period; view=%q", view)
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC))

	m = press(m, "?")
	if m.mode != modeHelp {
		t.Fatalf("? should open help")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "rename zone") {
		t.Fatalf("help should list bindings; view=%q", view)
	}
	m = press(m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("esc should close help")
	}
}
