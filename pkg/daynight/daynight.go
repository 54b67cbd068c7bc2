// Package daynight decides whether it is currently daytime in a zone,
// for card shading only. Sunrise and sunset come from the
// sunrise-sunset.org API keyed by a representative coordinate per zone;
// lookups are cached per zone and calendar day, and any failure falls
// back to a fixed-hour heuristic. Nothing in here ever blocks or breaks
// rendering.
package daynight

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/maypok86/otter/v2"
)

// DefaultBaseURL is the public sunrise-sunset API endpoint.
const DefaultBaseURL = "https://api.sunrise-sunset.org"

// DefaultCacheSize bounds the per-session lookup cache. One entry per
// zone per day; 512 is far beyond what a session can accumulate, it
// just keeps the cache from being unbounded on principle.
const DefaultCacheSize = 512

// Heuristic daytime window used when the service is unreachable.
const (
	fallbackDayStart = 6
	fallbackDayEnd   = 18
)

// Info is the day/night verdict for a zone on a given day. Sunrise and
// Sunset are nil when the heuristic produced the verdict.
type Info struct {
	IsDayTime bool
	Sunrise   *time.Time
	Sunset    *time.Time
}

// Lookup resolves and caches day/night information.
type Lookup struct {
	client  *http.Client
	cache   *otter.Cache[string, Info]
	baseURL string
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Lookup.
type Option func(*Lookup)

// WithBaseURL points the lookup at a different API endpoint.
func WithBaseURL(u string) Option {
	return func(l *Lookup) { l.baseURL = u }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lookup) { l.logger = logger }
}

// WithClock injects the wall-clock source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Lookup) { l.now = now }
}

// WithCacheSize overrides the cache capacity.
func WithCacheSize(n int) Option {
	return func(l *Lookup) {
		l.cache = otter.Must(&otter.Options[string, Info]{MaximumSize: n})
	}
}

// New builds a Lookup with a 10 second HTTP timeout and a bounded
// cache.
func New(opts ...Option) *Lookup {
	l := &Lookup{
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   otter.Must(&otter.Options[string, Info]{MaximumSize: DefaultCacheSize}),
		baseURL: DefaultBaseURL,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// For returns the day/night verdict for the zone right now. It never
// fails: a service or parse problem degrades to the fixed-hour
// heuristic, logged at debug level. Heuristic verdicts are not cached
// so a later render can retry the service.
func (l *Lookup) For(ctx context.Context, zoneID string) Info {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		l.logger.Debug("daynight: unknown zone, using heuristic", "zone", zoneID, "error", err)
		return l.heuristic(time.UTC)
	}

	now := l.now().In(loc)
	key := zoneID + "-" + now.Format("2006-01-02")
	if info, ok := l.cache.GetIfPresent(key); ok {
		return info
	}

	info, err := l.fetch(ctx, zoneID, loc)
	if err != nil {
		l.logger.Debug("daynight: lookup failed, using heuristic", "zone", zoneID, "error", err)
		return l.heuristic(loc)
	}

	l.cache.Set(key, info)
	return info
}

// apiResponse is the sunrise-sunset.org JSON envelope (formatted=0
// yields RFC3339 timestamps).
type apiResponse struct {
	Results struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"results"`
	Status string `json:"status"`
}

func (l *Lookup) fetch(ctx context.Context, zoneID string, loc *time.Location) (Info, error) {
	lat, lng := Coordinates(zoneID)
	u := fmt.Sprintf("%s/json?lat=%f&lng=%f&formatted=0", l.baseURL, lat, lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return Info{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var body []byte
	err = retry.Do(
		func() error {
			resp, doErr := l.client.Do(req)
			if doErr != nil {
				return doErr
			}
			defer func() {
				if closeErr := resp.Body.Close(); closeErr != nil {
					l.logger.Debug("daynight: close response body", "error", closeErr)
				}
			}()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("HTTP %d", resp.StatusCode)
			}
			body, err = io.ReadAll(io.LimitReader(resp.Body, 1<<16))
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			l.logger.Debug("daynight: retrying lookup", "attempt", n+1, "zone", zoneID, "error", err)
		}),
	)
	if err != nil {
		return Info{}, fmt.Errorf("fetching sunrise/sunset: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Info{}, fmt.Errorf("decoding response: %w", err)
	}
	if parsed.Status != "OK" {
		return Info{}, fmt.Errorf("service status %q", parsed.Status)
	}

	sunrise, err := time.Parse(time.RFC3339, parsed.Results.Sunrise)
	if err != nil {
		return Info{}, fmt.Errorf("parsing sunrise %q: %w", parsed.Results.Sunrise, err)
	}
	sunset, err := time.Parse(time.RFC3339, parsed.Results.Sunset)
	if err != nil {
		return Info{}, fmt.Errorf("parsing sunset %q: %w", parsed.Results.Sunset, err)
	}

	now := l.now()
	sunriseLoc := sunrise.In(loc)
	sunsetLoc := sunset.In(loc)
	return Info{
		IsDayTime: !now.Before(sunrise) && !now.After(sunset),
		Sunrise:   &sunriseLoc,
		Sunset:    &sunsetLoc,
	}, nil
}

// heuristic treats local hours [6,18) as daytime.
func (l *Lookup) heuristic(loc *time.Location) Info {
	hour := l.now().In(loc).Hour()
	return Info{IsDayTime: hour >= fallbackDayStart && hour < fallbackDayEnd}
}
