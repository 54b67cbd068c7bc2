package format

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/zonetick/zonetick/pkg/clock"
)

// Format sets or toggles the hour display format.
type Format struct {
	Session *clock.Session
	Mode    string // "12", "24", or empty to toggle
}

func (f *Format) Do(ctx context.Context) error {
	if err := f.Session.Load(ctx); err != nil {
		return err
	}

	var err error
	switch f.Mode {
	case "":
		err = f.Session.ToggleFormat()
	case "12":
		err = f.Session.SetFormat(false)
	case "24":
		err = f.Session.SetFormat(true)
	default:
		return fmt.Errorf("format: want 12 or 24, got %q", f.Mode)
	}
	if err != nil {
		return err
	}

	mode := "12-hour"
	if f.Session.Use24Hour() {
		mode = "24-hour"
	}
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(color.Output, "%s display\n", mode)
	return nil
}
