// Package zone defines the tracked-timezone record shared by the store,
// the clock session, and the UIs.
package zone

import (
	"time"

	"github.com/zonetick/zonetick/pkg/catalog"
)

// Tracked is one timezone the user has chosen to display. The JSON shape
// matches the persisted preference format.
type Tracked struct {
	Zone       string `json:"zone"`
	IsLocal    bool   `json:"isLocal"`
	CustomName string `json:"customName,omitempty"`
}

// New returns a tracked zone with no custom label.
func New(identifier string) Tracked {
	return Tracked{Zone: identifier}
}

// Local returns the tracked record for the host's own timezone.
func Local(identifier string) Tracked {
	return Tracked{Zone: identifier, IsLocal: true}
}

// DisplayName is the label shown on the zone's clock card: the custom
// name when set, otherwise a name derived from the identifier.
func (t Tracked) DisplayName() string {
	if t.CustomName != "" {
		return t.CustomName
	}
	return catalog.DisplayName(t.Zone)
}

// Location resolves the zone identifier against the host tz database.
func (t Tracked) Location() (*time.Location, error) {
	return time.LoadLocation(t.Zone)
}
