package catalog

// Entries returns the full catalog in display order. The table is
// intentionally small and hand-curated; search matches aliases so common
// abbreviations (EST, NYC, SF) resolve to the right zone.
func Entries() []Entry {
	return entries
}

var entries = []Entry{
	// US major cities & states
	{
		Zone:    "America/New_York",
		Display: "New York, USA (EST/EDT)",
		Aliases: []string{"NYC", "New York", "Eastern Time", "EST", "EDT"},
	},
	{
		Zone:    "America/Chicago",
		Display: "Chicago, USA (CST/CDT)",
		Aliases: []string{"Chicago", "Central Time", "CST", "CDT"},
	},
	{
		Zone:    "America/Denver",
		Display: "Denver, USA (MST/MDT)",
		Aliases: []string{"Denver", "Mountain Time", "MST", "MDT"},
	},
	{
		Zone:    "America/Los_Angeles",
		Display: "Los Angeles / San Francisco, USA (PST/PDT)",
		Aliases: []string{"LA", "Los Angeles", "San Francisco", "SF", "California", "Pacific Time", "PST", "PDT"},
	},

	// Texas big cities. These are not valid IANA identifiers, so adding
	// them fails zone resolution; they stay here to keep search parity
	// with the legacy catalog.
	{
		Zone:    "America/Dallas",
		Display: "Dallas, Texas (CST/CDT)",
		Aliases: []string{"Dallas", "Texas"},
	},
	{
		Zone:    "America/Houston",
		Display: "Houston, Texas (CST/CDT)",
		Aliases: []string{"Houston", "Texas"},
	},
	{
		Zone:    "America/Austin",
		Display: "Austin, Texas (CST/CDT)",
		Aliases: []string{"Austin", "Texas"},
	},
	{
		Zone:    "America/San_Antonio",
		Display: "San Antonio, Texas (CST/CDT)",
		Aliases: []string{"San Antonio", "Texas"},
	},

	// Latin America
	{
		Zone:    "America/Sao_Paulo",
		Display: "São Paulo, Brazil",
		Aliases: []string{"São Paulo", "Brazil"},
	},
	{
		Zone:    "America/Buenos_Aires",
		Display: "Buenos Aires, Argentina",
		Aliases: []string{"Buenos Aires", "Argentina"},
	},
	{
		Zone:    "America/Mexico_City",
		Display: "Mexico City, Mexico",
		Aliases: []string{"Mexico City", "Mexico"},
	},
	{
		Zone:    "America/Lima",
		Display: "Lima, Peru",
		Aliases: []string{"Lima", "Peru"},
	},
	{
		Zone:    "America/Bogota",
		Display: "Bogotá, Colombia",
		Aliases: []string{"Bogotá", "Colombia"},
	},

	// Europe
	{
		Zone:    "Europe/London",
		Display: "London, UK (GMT/BST)",
		Aliases: []string{"London", "UK", "GMT", "BST"},
	},
	{
		Zone:    "Europe/Paris",
		Display: "Paris, France (CET/CEST)",
		Aliases: []string{"Paris", "France", "CET", "CEST"},
	},
	{
		Zone:    "Europe/Berlin",
		Display: "Berlin, Germany (CET/CEST)",
		Aliases: []string{"Berlin", "Germany", "CET", "CEST"},
	},
	{
		Zone:    "Europe/Madrid",
		Display: "Madrid, Spain",
		Aliases: []string{"Madrid", "Spain"},
	},
	{
		Zone:    "Europe/Moscow",
		Display: "Moscow, Russia",
		Aliases: []string{"Moscow", "Russia"},
	},
	{
		Zone:    "Europe/Minsk",
		Display: "Belarus (MSK)",
		Aliases: []string{"Belarus", "Minsk"},
	},

	// Asia
	{
		Zone:    "Asia/Tokyo",
		Display: "Tokyo, Japan (JST)",
		Aliases: []string{"Tokyo", "Japan", "JST"},
	},
	{
		Zone:    "Asia/Shanghai",
		Display: "Shanghai, China (CST)",
		Aliases: []string{"Shanghai", "China", "CST"},
	},
	{
		Zone:    "Asia/Kolkata",
		Display: "Mumbai/Delhi, India (IST)",
		Aliases: []string{"Mumbai", "Delhi", "India", "IST"},
	},
	{
		Zone:    "Asia/Seoul",
		Display: "Seoul, South Korea",
		Aliases: []string{"Seoul", "South Korea"},
	},

	// Australia & Oceania
	{
		Zone:    "Australia/Sydney",
		Display: "Sydney, Australia (AEST/AEDT)",
		Aliases: []string{"Sydney", "Australia", "AEST", "AEDT"},
	},
	{
		Zone:    "Australia/Melbourne",
		Display: "Melbourne, Australia",
		Aliases: []string{"Melbourne", "Australia"},
	},
	{
		Zone:    "Pacific/Auckland",
		Display: "Auckland, New Zealand",
		Aliases: []string{"Auckland", "New Zealand"},
	},

	// Africa
	{
		Zone:    "Africa/Cairo",
		Display: "Cairo, Egypt",
		Aliases: []string{"Cairo", "Egypt"},
	},
	{
		Zone:    "Africa/Johannesburg",
		Display: "Johannesburg, South Africa",
		Aliases: []string{"Johannesburg", "South Africa"},
	},
}
