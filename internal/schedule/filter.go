package schedule

import "github.com/noah-isme/course-planner-api/internal/models"

// WithinFilter decides whether a course is compatible with a set of per-day
// availability windows.
//
// Semantics: containment with "all slots acceptable". A slot is acceptable
// when its day has no windows configured, or when it lies entirely inside at
// least one of that day's windows. The course passes only if every slot is
// acceptable. A course with no slots passes vacuously, and an empty filter
// accepts everything.
func WithinFilter(course models.Course, filter models.TimeFilter) bool {
	if len(filter) == 0 {
		return true
	}
	for _, slot := range CourseSlots(course) {
		windows := filter.WindowsFor(slot.Day)
		if len(windows) == 0 {
			continue
		}
		if !slotContained(slot, windows) {
			return false
		}
	}
	return true
}

func slotContained(slot models.TimeSlot, windows []models.DayWindow) bool {
	for _, w := range windows {
		start := TimeToMinutes(w.Start)
		end := TimeToMinutes(w.End)
		if end <= start {
			continue
		}
		if slot.StartMinutes >= start && slot.EndMinutes <= end {
			return true
		}
	}
	return false
}
