// Package printers renders CLI output for the list and search commands.
package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/zonetick/zonetick/pkg/catalog"
	"github.com/zonetick/zonetick/pkg/daynight"
	"github.com/zonetick/zonetick/pkg/glyph"
	"github.com/zonetick/zonetick/pkg/timeutil"
	"github.com/zonetick/zonetick/pkg/zone"
)

type PrettyPrint struct {
	Use24Hour bool
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Zones prints one row per tracked zone, all projected onto the same
// instant.
func (pp *PrettyPrint) Zones(instant time.Time, zones []zone.Tracked, info map[string]daynight.Info) {
	if len(zones) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(color.Output, " none")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "NAME", "TIME", "ZONE")

	for _, z := range zones {
		tbl.AddRow(pp.icon(info[z.Zone]), pp.label(z), pp.clock(instant, z), z.Zone)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// SearchResults prints catalog matches the way the interactive picker
// labels them.
func (pp *PrettyPrint) SearchResults(entries []catalog.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(color.Output, " no matches")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		tbl.AddRow(catalog.SuggestionLabel(e.Zone), e.Zone, e.Display)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) label(z zone.Tracked) string {
	name := z.DisplayName()
	if z.IsLocal {
		name += " (local)"
	}
	return name
}

func (pp *PrettyPrint) clock(instant time.Time, z zone.Tracked) string {
	loc, err := z.Location()
	if err != nil {
		return "--:--"
	}
	parts := timeutil.FormatParts(instant.In(loc), pp.Use24Hour)
	out := parts.Hours + ":" + parts.Minutes
	if parts.Period != "" {
		out += " " + parts.Period
	}
	return out
}

func (pp *PrettyPrint) icon(i daynight.Info) string {
	return glyph.ForDaytime(i.IsDayTime).String()
}
