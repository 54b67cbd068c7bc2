package list

import (
	"context"

	"github.com/zonetick/zonetick/pkg/clock"
	"github.com/zonetick/zonetick/pkg/daynight"
	"github.com/zonetick/zonetick/pkg/printers"
)

// List prints every tracked zone with its current time and day/night
// state.
type List struct {
	Session  *clock.Session
	DayNight *daynight.Lookup
}

func (l *List) Do(ctx context.Context) error {
	if err := l.Session.Load(ctx); err != nil {
		return err
	}

	zones := l.Session.Zones()
	info := make(map[string]daynight.Info, len(zones))
	if l.DayNight != nil {
		for _, z := range zones {
			info[z.Zone] = l.DayNight.For(ctx, z.Zone)
		}
	}

	pp := printers.PrettyPrint{Use24Hour: l.Session.Use24Hour()}
	pp.Zones(l.Session.Instant(), zones, info)
	return nil
}
