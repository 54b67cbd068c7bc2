package daynight

// Representative coordinates per zone, used to query the sunrise
// service. Coverage is intentionally coarse: one well-known city per
// zone is close enough for a day/night icon. Unmapped zones fall back
// to (0,0) on the equator, which still yields a sane ~6/18 split.
var zoneCoords = map[string][2]float64{
	"America/New_York":    {40.7128, -74.0060},
	"America/Chicago":     {41.8781, -87.6298},
	"America/Denver":      {39.7392, -104.9903},
	"America/Los_Angeles": {34.0522, -118.2437},
	"Europe/London":       {51.5074, -0.1278},
	"Europe/Paris":        {48.8566, 2.3522},
	"Europe/Berlin":       {52.5200, 13.4050},
	"Asia/Tokyo":          {35.6762, 139.6503},
	"Asia/Shanghai":       {31.2304, 121.4737},
	"Asia/Kolkata":        {28.6139, 77.2090},
	"Australia/Sydney":    {-33.8688, 151.2093},
}

// Coordinates returns the representative (lat, lng) for a zone.
func Coordinates(zoneID string) (lat, lng float64) {
	if c, ok := zoneCoords[zoneID]; ok {
		return c[0], c[1]
	}
	return 0, 0
}
