// Package clock implements the world-clock session: the ordered list of
// tracked zones, the display format, and the single shared instant all
// clock cards render against. A Session is explicitly constructed and
// owned by whoever hosts the rendering surface; it is not safe for
// concurrent use and expects to live on one goroutine (the UI event
// loop).
package clock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zonetick/zonetick/pkg/catalog"
	"github.com/zonetick/zonetick/pkg/store"
	"github.com/zonetick/zonetick/pkg/timeutil"
	"github.com/zonetick/zonetick/pkg/zone"
)

var (
	// ErrUnknownZone means the identifier did not resolve against the
	// host tz database. Callers treat it as a silent failure; the
	// session has already logged the diagnostic.
	ErrUnknownZone = errors.New("clock: unknown timezone")

	// ErrLocalZone guards the auto-detected local zone against removal.
	ErrLocalZone = errors.New("clock: local zone cannot be removed")

	// ErrIndexRange reports a tracked-zone index outside the list.
	ErrIndexRange = errors.New("clock: index out of range")
)

// Session holds the mutable world-clock state and persists preference
// changes through the store.
type Session struct {
	p      store.Persistence
	logger *slog.Logger
	now    func() time.Time
	local  func() string

	zones   []zone.Tracked
	use24   bool
	current time.Time
	edited  time.Time
	inEdit  bool
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects the wall-clock source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithLocalZone injects the host-zone detector, for tests.
func WithLocalZone(detect func() string) Option {
	return func(s *Session) { s.local = detect }
}

// New builds a Session over the given persistence. Call Load before
// using it.
func New(p store.Persistence, opts ...Option) *Session {
	s := &Session{
		p:      p,
		logger: slog.Default(),
		now:    time.Now,
		local:  DetectLocalZone,
		use24:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads persisted preferences and bootstraps the local zone when
// the tracked list is empty, persisting immediately so the local entry
// survives future loads.
func (s *Session) Load(ctx context.Context) error {
	_ = ctx

	prefs, err := s.p.Prefs()
	if err != nil {
		return fmt.Errorf("clock: load preferences: %w", err)
	}
	s.use24 = prefs.Use24HourFormat
	s.zones = prefs.Timezones
	s.current = s.now()

	if len(s.zones) == 0 {
		s.zones = []zone.Tracked{zone.Local(s.local())}
		if err := s.save(); err != nil {
			return err
		}
	}
	return nil
}

// Reload re-reads persisted preferences, keeping the session instant.
// The UI calls this on store watch events so out-of-process changes show
// up live. Unlike Load, an empty timezone list keeps the last known
// zones instead of re-bootstrapping: a watch event can fire while the
// store is mid-rewrite or wiped underneath a running session, and
// dropping to a fresh local-only list would discard state the user can
// still see. The next Load starts clean.
func (s *Session) Reload() error {
	prefs, err := s.p.Prefs()
	if err != nil {
		return fmt.Errorf("clock: reload preferences: %w", err)
	}
	s.use24 = prefs.Use24HourFormat
	if len(prefs.Timezones) > 0 {
		s.zones = prefs.Timezones
	}
	return nil
}

// Zones returns a copy of the tracked list in display order.
func (s *Session) Zones() []zone.Tracked {
	out := make([]zone.Tracked, len(s.zones))
	copy(out, s.zones)
	return out
}

// Use24Hour reports the active display format.
func (s *Session) Use24Hour() bool { return s.use24 }

// ToggleFormat flips between 24- and 12-hour display and persists. The
// session instant is untouched.
func (s *Session) ToggleFormat() error {
	s.use24 = !s.use24
	return s.save()
}

// SetFormat sets the display format directly and persists.
func (s *Session) SetFormat(use24 bool) error {
	if s.use24 == use24 {
		return nil
	}
	s.use24 = use24
	return s.save()
}

// Add appends a tracked zone. Adding an identifier that is already
// tracked is a no-op. An identifier the tz database cannot resolve
// leaves state unchanged: the failure is logged (with a nearest-match
// hint when the catalog has one) and reported as ErrUnknownZone.
func (s *Session) Add(identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		// time.LoadLocation("") resolves to UTC, so a blank identifier
		// would otherwise pass validation and persist a nameless card.
		s.logger.Warn("empty timezone identifier")
		return ErrUnknownZone
	}
	for _, z := range s.zones {
		if z.Zone == identifier {
			return nil
		}
	}

	if _, err := time.LoadLocation(identifier); err != nil {
		if hint, ok := catalog.Nearest(identifier); ok {
			s.logger.Warn("invalid timezone", "zone", identifier, "closest", hint, "error", err)
		} else {
			s.logger.Warn("invalid timezone", "zone", identifier, "error", err)
		}
		return ErrUnknownZone
	}

	s.zones = append(s.zones, zone.New(identifier))
	return s.save()
}

// Remove drops the tracked zone at index. The local zone is
// structurally protected, not just hidden from removal controls.
func (s *Session) Remove(index int) error {
	if index < 0 || index >= len(s.zones) {
		return ErrIndexRange
	}
	if s.zones[index].IsLocal {
		return ErrLocalZone
	}
	s.zones = append(s.zones[:index], s.zones[index+1:]...)
	return s.save()
}

// RemoveZone drops a tracked zone by identifier.
func (s *Session) RemoveZone(identifier string) error {
	for i, z := range s.zones {
		if z.Zone == identifier {
			return s.Remove(i)
		}
	}
	return ErrUnknownZone
}

// Rename sets the custom label for the zone at index. An empty or
// unchanged name after trimming is a no-op and nothing is persisted.
func (s *Session) Rename(index int, name string) error {
	if index < 0 || index >= len(s.zones) {
		return ErrIndexRange
	}
	name = strings.TrimSpace(name)
	if name == "" || name == s.zones[index].DisplayName() {
		return nil
	}
	s.zones[index].CustomName = name
	return s.save()
}

// Instant is the single absolute point in time every card renders
// against: the user-edited instant while one is held, the latest live
// tick otherwise.
func (s *Session) Instant() time.Time {
	if s.inEdit {
		return s.edited
	}
	return s.current
}

// Edited reports whether a user-edited instant is active.
func (s *Session) Edited() bool { return s.inEdit }

// Tick advances the live clock. The held edited instant, if any, is
// unaffected.
func (s *Session) Tick(now time.Time) {
	s.current = now
}

// Reset discards any edited instant and returns to live time.
func (s *Session) Reset() {
	s.inEdit = false
	s.edited = time.Time{}
	s.current = s.now()
}

// CommitEdit applies an edited hour or minute field for the zone at
// index on top of that zone's current wall-clock time, then re-anchors
// the whole session on the resulting absolute instant. Non-numeric text
// parses as zero; out-of-range values clamp. In 12-hour mode the AM/PM
// half is taken from the edited zone's prior hour.
func (s *Session) CommitEdit(index int, field timeutil.Field, raw string) error {
	if index < 0 || index >= len(s.zones) {
		return ErrIndexRange
	}
	loc, err := s.zones[index].Location()
	if err != nil {
		return fmt.Errorf("clock: resolve %s: %w", s.zones[index].Zone, err)
	}

	cur := s.Instant().In(loc)
	v := timeutil.ParseDigits(raw)

	var next time.Time
	switch field {
	case timeutil.FieldMinutes:
		v = timeutil.ClampMinute(v)
		next = time.Date(cur.Year(), cur.Month(), cur.Day(), cur.Hour(), v, cur.Second(), cur.Nanosecond(), loc)
	default:
		v = timeutil.ClampHour(v, s.use24)
		h24 := v
		if !s.use24 {
			h24 = timeutil.Hour24(v, cur.Hour())
		}
		next = time.Date(cur.Year(), cur.Month(), cur.Day(), h24, cur.Minute(), cur.Second(), cur.Nanosecond(), loc)
	}

	s.edited = next.UTC()
	s.inEdit = true
	return nil
}

// FieldsAt renders the session instant in the given tracked zone.
func (s *Session) FieldsAt(z zone.Tracked) (timeutil.Parts, error) {
	loc, err := z.Location()
	if err != nil {
		return timeutil.Parts{}, fmt.Errorf("clock: resolve %s: %w", z.Zone, err)
	}
	return timeutil.FormatParts(s.Instant().In(loc), s.use24), nil
}

// save writes the full preference set back through the store.
func (s *Session) save() error {
	prefs := store.Prefs{
		Use24HourFormat: s.use24,
		Timezones:       s.zones,
	}
	if err := s.p.SavePrefs(prefs); err != nil {
		return fmt.Errorf("clock: save preferences: %w", err)
	}
	return nil
}

// DetectLocalZone names the host's timezone: the TZ environment
// variable when set, the /etc/localtime symlink target otherwise, UTC
// as a last resort.
func DetectLocalZone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}
	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if i := strings.Index(link, "zoneinfo/"); i >= 0 {
			name := link[i+len("zoneinfo/"):]
			if _, err := time.LoadLocation(name); err == nil {
				return name
			}
		}
	}
	return "UTC"
}
