// Package schedule implements the course planning engine: parsing raw weekly
// schedule strings into time slots, detecting pairwise conflicts across a
// selection, evaluating availability filters, and computing grid bounds.
// All functions are pure and operate on an immutable catalog snapshot.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes converts a "HH:MM" clock string to minutes since midnight.
// Malformed input yields 0; callers that must tell 0 apart from failure use
// parseClock instead.
func TimeToMinutes(clock string) int {
	minutes, _ := parseClock(clock)
	return minutes
}

// parseClock converts a "HH:MM" clock string to minutes since midnight and
// reports whether both fields were numeric.
func parseClock(clock string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

// FormatMinutes renders minutes since midnight as a zero-padded 24-hour
// "HH:MM" clock string.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func floorToHour(minutes int) int {
	return minutes - minutes%60
}

func ceilToHour(minutes int) int {
	if minutes%60 == 0 {
		return minutes
	}
	return floorToHour(minutes) + 60
}
