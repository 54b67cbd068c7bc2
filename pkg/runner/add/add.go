package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/zonetick/zonetick/pkg/catalog"
	"github.com/zonetick/zonetick/pkg/clock"
)

// Add tracks a new timezone, resolving free-text queries through the
// catalog.
type Add struct {
	Session *clock.Session
	Query   string
}

func (a *Add) Do(ctx context.Context) error {
	if err := a.Session.Load(ctx); err != nil {
		return err
	}

	identifier := a.Query
	err := a.Session.Add(identifier)
	if errors.Is(err, clock.ErrUnknownZone) {
		// Not a direct identifier; fall back to the catalog.
		results := catalog.Search(a.Query)
		if len(results) == 0 {
			return fmt.Errorf("add: no timezone matches %q", a.Query)
		}
		identifier = results[0].Zone
		err = a.Session.Add(identifier)
	}
	if err != nil {
		return fmt.Errorf("add %q: %w", identifier, err)
	}

	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(color.Output, "tracking %s\n", identifier)
	return nil
}
