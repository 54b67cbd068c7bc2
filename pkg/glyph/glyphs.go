package glyph

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 4)

	g = append(g, Glyph{
		Key:     "d",
		Symbol:  "☀",
		Meaning: "daytime",
	}, Glyph{
		Key:     "n",
		Symbol:  "☾",
		Meaning: "nighttime",
	}, Glyph{
		Key:     "e",
		Symbol:  "⌛",
		Meaning: "time edited",
	}, Glyph{
		Key:     "l",
		Symbol:  "⌂",
		Meaning: "local zone",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Marker int

const (
	Day Marker = iota
	Night
	Edited
	Local
)

func (m Marker) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

// ForDaytime picks the day or night marker.
func ForDaytime(isDay bool) Glyph {
	if isDay {
		return Day.Glyph()
	}
	return Night.Glyph()
}
