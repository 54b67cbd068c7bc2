package daynight

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sunTimes(sunrise, sunset time.Time) string {
	return fmt.Sprintf(`{"results":{"sunrise":%q,"sunset":%q},"status":"OK"}`,
		sunrise.Format(time.RFC3339), sunset.Format(time.RFC3339))
}

func TestForDaytimeFromService(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	sunrise := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("formatted") != "0" {
			t.Errorf("expected formatted=0, got %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, sunTimes(sunrise, sunset))
	}))
	defer srv.Close()

	l := New(
		WithBaseURL(srv.URL),
		WithClock(func() time.Time { return now }),
		WithLogger(quietLogger()),
	)

	info := l.For(context.Background(), "America/New_York")
	if !info.IsDayTime {
		t.Fatalf("expected daytime")
	}
	if info.Sunrise == nil || info.Sunset == nil {
		t.Fatalf("expected service sun times, got %+v", info)
	}
	if !info.Sunrise.Equal(sunrise) {
		t.Fatalf("sunrise = %v, want %v", info.Sunrise, sunrise)
	}
}

func TestForCachesPerZoneAndDay(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, sunTimes(now.Add(-6*time.Hour), now.Add(6*time.Hour)))
	}))
	defer srv.Close()

	l := New(
		WithBaseURL(srv.URL),
		WithClock(func() time.Time { return now }),
		WithLogger(quietLogger()),
	)

	l.For(context.Background(), "America/New_York")
	l.For(context.Background(), "America/New_York")
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected one service hit, got %d", got)
	}

	// Another zone misses the cache.
	l.For(context.Background(), "Asia/Tokyo")
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected a second hit for a new zone, got %d", got)
	}
}

func TestForServiceErrorFallsBackToHeuristic(t *testing.T) {
	// Status other than OK is not retried; the heuristic answers.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":{},"status":"INVALID_REQUEST"}`)
	}))
	defer srv.Close()

	noon := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	l := New(
		WithBaseURL(srv.URL),
		WithClock(func() time.Time { return noon }),
		WithLogger(quietLogger()),
	)

	info := l.For(context.Background(), "UTC")
	if !info.IsDayTime {
		t.Fatalf("heuristic should call 12:00 daytime")
	}
	if info.Sunrise != nil || info.Sunset != nil {
		t.Fatalf("heuristic verdicts carry no sun times: %+v", info)
	}

	// Heuristic results are not cached, so the verdict can flip with
	// the clock.
	midnight := time.Date(2024, time.June, 1, 23, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return midnight }
	if info := l.For(context.Background(), "UTC"); info.IsDayTime {
		t.Fatalf("heuristic should call 23:00 nighttime")
	}
}

func TestForUnknownZoneUsesHeuristic(t *testing.T) {
	noon := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	l := New(
		WithBaseURL("http://127.0.0.1:0"),
		WithClock(func() time.Time { return noon }),
		WithLogger(quietLogger()),
	)

	info := l.For(context.Background(), "Not/A_Zone")
	if !info.IsDayTime {
		t.Fatalf("expected heuristic daytime for 12:00 UTC")
	}
}

func TestCoordinates(t *testing.T) {
	lat, lng := Coordinates("America/New_York")
	if lat == 0 && lng == 0 {
		t.Fatalf("expected mapped coordinates for New York")
	}
	lat, lng = Coordinates("Antarctica/Troll")
	if lat != 0 || lng != 0 {
		t.Fatalf("unmapped zone should fall back to (0,0), got (%f,%f)", lat, lng)
	}
}
