package printers

import (
	"testing"
	"time"

	"github.com/zonetick/zonetick/pkg/daynight"
	"github.com/zonetick/zonetick/pkg/zone"
)

func TestLabel(t *testing.T) {
	pp := &PrettyPrint{}

	if got := pp.label(zone.New("Asia/Tokyo")); got != "Tokyo" {
		t.Fatalf("label = %q", got)
	}
	if got := pp.label(zone.Local("America/New_York")); got != "New York (local)" {
		t.Fatalf("label = %q", got)
	}
	z := zone.New("Asia/Tokyo")
	z.CustomName = "HQ"
	if got := pp.label(z); got != "HQ" {
		t.Fatalf("label = %q", got)
	}
}

func TestClockProjectsInstant(t *testing.T) {
	instant := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

	pp := &PrettyPrint{Use24Hour: true}
	if got := pp.clock(instant, zone.New("Asia/Tokyo")); got != "21:00" {
		t.Fatalf("clock = %q, want 21:00", got)
	}

	pp = &PrettyPrint{Use24Hour: false}
	if got := pp.clock(instant, zone.New("America/New_York")); got != "07:00 AM" {
		t.Fatalf("clock = %q, want 07:00 AM", got)
	}

	if got := pp.clock(instant, zone.New("Not/A_Zone")); got != "--:--" {
		t.Fatalf("clock = %q, want placeholder", got)
	}
}

func TestIcon(t *testing.T) {
	pp := &PrettyPrint{}
	if got := pp.icon(daynight.Info{IsDayTime: true}); got != "☀" {
		t.Fatalf("icon = %q", got)
	}
	if got := pp.icon(daynight.Info{}); got != "☾" {
		t.Fatalf("icon = %q", got)
	}
}
