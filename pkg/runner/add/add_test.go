package add

import (
	"context"
	"testing"

	"github.com/zonetick/zonetick/pkg/clock"
	"github.com/zonetick/zonetick/pkg/store"
)

type memPersistence struct {
	prefs store.Prefs
}

func (m *memPersistence) Prefs() (store.Prefs, error)    { return m.prefs, nil }
func (m *memPersistence) SavePrefs(p store.Prefs) error  { m.prefs = p; return nil }
func (m *memPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newSession(p store.Persistence) *clock.Session {
	return clock.New(p, clock.WithLocalZone(func() string { return "UTC" }))
}

func TestDoDirectIdentifier(t *testing.T) {
	p := &memPersistence{prefs: store.DefaultPrefs()}
	a := Add{Session: newSession(p), Query: "Asia/Tokyo"}

	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	zones := p.prefs.Timezones
	if len(zones) != 2 || zones[1].Zone != "Asia/Tokyo" {
		t.Fatalf("expected Tokyo persisted, got %+v", zones)
	}
}

func TestDoFreeTextFallsBackToCatalog(t *testing.T) {
	p := &memPersistence{prefs: store.DefaultPrefs()}
	a := Add{Session: newSession(p), Query: "tokyo"}

	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	zones := p.prefs.Timezones
	if len(zones) != 2 || zones[1].Zone != "Asia/Tokyo" {
		t.Fatalf("expected catalog resolution to Asia/Tokyo, got %+v", zones)
	}
}

func TestDoNoMatch(t *testing.T) {
	p := &memPersistence{prefs: store.DefaultPrefs()}
	a := Add{Session: newSession(p), Query: "zzzz"}

	if err := a.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for an unmatched query")
	}
	if got := len(p.prefs.Timezones); got != 1 {
		t.Fatalf("failed add changed persisted state: %+v", p.prefs.Timezones)
	}
}
