package models

import "fmt"

// ComponentType tags a time slot with the course component it belongs to.
type ComponentType string

const (
	ComponentLecture   ComponentType = "lecture"
	ComponentTutorial  ComponentType = "tutorial"
	ComponentPractical ComponentType = "practical"
)

// Weekdays is the fixed teaching week, in display order.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// TimeSlot is one weekly meeting occurrence derived from a course's raw
// schedule string. Slots are recomputed on demand and never persisted.
type TimeSlot struct {
	CourseCode      string        `json:"course_code"`
	Day             string        `json:"day"`
	Start           string        `json:"start"`
	End             string        `json:"end"`
	StartMinutes    int           `json:"start_minutes"`
	EndMinutes      int           `json:"end_minutes"`
	DurationMinutes int           `json:"duration_minutes"`
	Component       ComponentType `json:"component"`
}

// Key returns the lookup key used by grid rendering for cell highlighting.
func (s TimeSlot) Key() string {
	return fmt.Sprintf("%s-%s-%s", s.CourseCode, s.Day, s.Start)
}

// DayWindow is a single day-scoped availability window.
type DayWindow struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeFilter is a per-day list of independent availability windows. A day
// with no windows configured is unconstrained.
type TimeFilter []DayWindow

// WindowsFor returns the windows configured for the given day.
func (f TimeFilter) WindowsFor(day string) []DayWindow {
	var windows []DayWindow
	for _, w := range f {
		if w.Day == day {
			windows = append(windows, w)
		}
	}
	return windows
}
