package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/zonetick/zonetick/pkg/clock"
)

// Remove untracks a timezone by identifier.
type Remove struct {
	Session *clock.Session
	Zone    string
}

func (r *Remove) Do(ctx context.Context) error {
	if err := r.Session.Load(ctx); err != nil {
		return err
	}

	err := r.Session.RemoveZone(r.Zone)
	switch {
	case errors.Is(err, clock.ErrLocalZone):
		return fmt.Errorf("rm %q: the local zone stays", r.Zone)
	case errors.Is(err, clock.ErrUnknownZone):
		return fmt.Errorf("rm %q: not tracked", r.Zone)
	case err != nil:
		return err
	}

	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(color.Output, "removed %s\n", r.Zone)
	return nil
}
