package domain

import (
	"regexp"
	"strconv"
)

// isoDurationRegex matches the hour and minute parts of an ISO-8601 duration such as "PT7H30M".
var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)

// ParseISODuration returns the total minutes of an ISO-8601 "PT#H#M" duration.
// Missing parts count as zero; the second return is false when the value does not start with "PT".
func ParseISODuration(d string) (int, bool) {
	m := isoDurationRegex.FindStringSubmatch(d)
	if m == nil {
		return 0, false
	}

	var total int
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
	}
	if m[2] != "" {
		mins, _ := strconv.Atoi(m[2])
		total += mins
	}
	return total, true
}

// DurationMinutes returns the total minutes of d, zero when d cannot be parsed.
func DurationMinutes(d string) int {
	mins, _ := ParseISODuration(d)
	return mins
}

// DurationInfo is a parsed duration with a human-readable form.
type DurationInfo struct {
	// TotalMinutes is the total duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "7h 30m")
	Formatted string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		formatted = strconv.Itoa(hours) + "h"
	default:
		formatted = strconv.Itoa(mins) + "m"
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}

// FormatISODuration renders an ISO-8601 duration as "7h 30m".
// Values that do not start with "PT" are returned unchanged.
func FormatISODuration(d string) string {
	mins, ok := ParseISODuration(d)
	if !ok {
		return d
	}
	return NewDurationInfo(mins).Formatted
}
