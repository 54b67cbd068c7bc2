package ui

import (
	"context"

	"github.com/zonetick/zonetick/pkg/clock"
	"github.com/zonetick/zonetick/pkg/daynight"
	"github.com/zonetick/zonetick/pkg/store"
	"github.com/zonetick/zonetick/pkg/tui"
)

// UI launches the interactive world-clock terminal interface.
type UI struct {
	Session     *clock.Session
	DayNight    *daynight.Lookup
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	if err := u.Session.Load(ctx); err != nil {
		return err
	}
	return tui.Run(u.Session, u.DayNight, u.Persistence)
}
