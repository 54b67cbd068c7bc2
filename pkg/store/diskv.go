package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/zonetick/zonetick/pkg/zone"
)

// Preference keys. The on-disk shape mirrors the original extension's
// storage layout: two independent JSON values.
const (
	keyFormat    = "use24HourFormat"
	keyTimezones = "timezones"
)

// Prefs is the full persisted preference set. Both fields are written
// back together on every mutation.
type Prefs struct {
	Use24HourFormat bool
	Timezones       []zone.Tracked
}

// DefaultPrefs are the values applied when nothing has been persisted
// yet, or when persisted data cannot be decoded.
func DefaultPrefs() Prefs {
	return Prefs{Use24HourFormat: true}
}

// Persistence is the preference storage contract.
type Persistence interface {
	Prefs() (Prefs, error)
	SavePrefs(Prefs) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
// A nil config loads the default one.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 64 * 1024,
		}),
		basePath: basePath,
		logger:   slog.Default(),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	logger   *slog.Logger
}

// Prefs reads both preference keys. A missing or undecodable value
// degrades to its default rather than failing: a corrupt store behaves
// like a fresh one.
func (p *persistence) Prefs() (Prefs, error) {
	prefs := DefaultPrefs()

	if raw, err := p.d.Read(keyFormat); err == nil {
		var use24 bool
		if err := json.Unmarshal(raw, &use24); err != nil {
			p.logger.Warn("store: discarding corrupt format preference", "error", err)
		} else {
			prefs.Use24HourFormat = use24
		}
	}

	if raw, err := p.d.Read(keyTimezones); err == nil {
		var zones []zone.Tracked
		if err := json.Unmarshal(raw, &zones); err != nil {
			p.logger.Warn("store: discarding corrupt timezone list", "error", err)
		} else {
			prefs.Timezones = dedupe(zones)
		}
	}

	return prefs, nil
}

// SavePrefs writes both keys. diskv writes each key atomically via a
// temp-file rename.
func (p *persistence) SavePrefs(prefs Prefs) error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}

	format, err := json.Marshal(prefs.Use24HourFormat)
	if err != nil {
		return fmt.Errorf("store: encode format preference: %w", err)
	}
	zones := prefs.Timezones
	if zones == nil {
		zones = []zone.Tracked{}
	}
	list, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("store: encode timezone list: %w", err)
	}

	if err := p.d.Write(keyFormat, format); err != nil {
		return fmt.Errorf("store: write %s: %w", keyFormat, err)
	}
	if err := p.d.Write(keyTimezones, list); err != nil {
		return fmt.Errorf("store: write %s: %w", keyTimezones, err)
	}
	return nil
}

// dedupe drops repeated zone identifiers, keeping first occurrences, so
// a hand-edited store cannot violate the uniqueness invariant.
func dedupe(zones []zone.Tracked) []zone.Tracked {
	seen := make(map[string]struct{}, len(zones))
	out := zones[:0]
	for _, z := range zones {
		if _, ok := seen[z.Zone]; ok {
			continue
		}
		seen[z.Zone] = struct{}{}
		out = append(out, z)
	}
	return out
}
