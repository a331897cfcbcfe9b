package tardiness

import (
	"strconv"
	"strings"
)

// Work-day anchors in minutes since midnight.
const (
	workStartMinutes  = 8 * 60   // 08:00
	graceLimitMinutes = 8*60 + 5 // 08:05, inclusive
)

// ParseClockMinutes converts a clock-in string to minutes since
// midnight. It accepts 12-hour times ("8:05 AM", "8:05AM", case
// doesn't matter) and 24-hour times ("8:05", "08:05", "08:05:00",
// seconds ignored). Anything else parses as midnight; the engine is
// deliberately total so a bad import row degrades instead of failing.
func ParseClockMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	upper := strings.ToUpper(s)
	meridiem := ""
	switch {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
	}
	if meridiem != "" {
		upper = strings.TrimSpace(strings.TrimSuffix(upper, meridiem))
	}

	parts := strings.Split(upper, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}
	// 12-hour form never carries seconds.
	if meridiem != "" && len(parts) == 3 {
		return 0
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return 0
		}
	}
	if minute < 0 || minute > 59 {
		return 0
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0
		}
	}

	return hour*60 + minute
}

// LateMinutes is how many minutes past 08:00 the arrival was, never
// negative.
func LateMinutes(actualIn string) int {
	late := ParseClockMinutes(actualIn) - workStartMinutes
	if late < 0 {
		return 0
	}
	return late
}

// GraceBreach reports whether the arrival is strictly after the 08:05
// grace limit. Arriving at exactly 08:05 is late but not a breach, so
// the two flags are independent.
func GraceBreach(actualIn string) bool {
	return ParseClockMinutes(actualIn) > graceLimitMinutes
}
