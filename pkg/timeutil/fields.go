// Package timeutil provides wall-clock field arithmetic shared by the
// clock session and the UI: clamping, stepping, and 12/24-hour
// conversion of displayed hour and minute digits.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field identifies which digit group of a clock card is being edited.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
)

func (f Field) String() string {
	if f == FieldMinutes {
		return "minutes"
	}
	return "hours"
}

// Parts is a rendered wall-clock time. Period is "AM" or "PM" in
// 12-hour mode and empty in 24-hour mode.
type Parts struct {
	Hours   string
	Minutes string
	Period  string
}

// FormatParts renders t's hour and minute fields for display.
func FormatParts(t time.Time, use24 bool) Parts {
	if use24 {
		return Parts{
			Hours:   fmt.Sprintf("%02d", t.Hour()),
			Minutes: fmt.Sprintf("%02d", t.Minute()),
		}
	}
	h12, period := Hour12(t.Hour())
	return Parts{
		Hours:   fmt.Sprintf("%02d", h12),
		Minutes: fmt.Sprintf("%02d", t.Minute()),
		Period:  period,
	}
}

// Hour12 converts a 24-hour value to its 12-hour rendering.
func Hour12(h24 int) (int, string) {
	period := "AM"
	if h24 >= 12 {
		period = "PM"
	}
	switch {
	case h24 == 0:
		return 12, period
	case h24 > 12:
		return h24 - 12, period
	default:
		return h24, period
	}
}

// Hour24 maps an hour entered in 12-hour mode back to 24-hour terms.
// The noon/midnight ambiguity is resolved with the prior hour of the
// same clock: an entry of 12 means noon if the clock was already in the
// PM half, midnight otherwise.
func Hour24(entered12, priorHour24 int) int {
	pm := priorHour24 >= 12
	if entered12 == 12 {
		if pm {
			return 12
		}
		return 0
	}
	if pm {
		return entered12 + 12
	}
	return entered12
}

// ClampHour forces v into the valid hour range for the active format:
// [0,23] in 24-hour mode, [1,12] in 12-hour mode.
func ClampHour(v int, use24 bool) int {
	lo, hi := 0, 23
	if !use24 {
		lo, hi = 1, 12
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampMinute forces v into [0,59].
func ClampMinute(v int) int {
	if v < 0 {
		return 0
	}
	if v > 59 {
		return 59
	}
	return v
}

// StepHour moves an hour field by delta, clamping at the format bounds.
// Hours never wrap.
func StepHour(v, delta int, use24 bool) int {
	return ClampHour(v+delta, use24)
}

// StepMinute moves a minute field by delta with wraparound (mod 60).
// Wrapping is a display-only affair: crossing 59→0 does not touch the
// hour field.
func StepMinute(v, delta int) int {
	return ((v+delta)%60 + 60) % 60
}

// ParseDigits interprets edited field text as an integer. Anything that
// does not parse counts as zero; callers clamp the result.
func ParseDigits(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
