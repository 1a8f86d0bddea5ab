package schedule

import "github.com/noah-isme/course-planner-api/internal/models"

// Default grid bounds when a selection has no scheduled meetings at all.
const (
	DefaultEarliestMinutes = 8 * 60
	DefaultLatestMinutes   = 18 * 60
)

// TimeRange computes the overall bounds spanned by the selection's slots,
// floored and ceiled to the hour, for sizing the weekly display grid. The
// result always spans at least one hour.
func TimeRange(courses []models.Course) (earliest, latest int) {
	earliest, latest = -1, -1
	for _, course := range courses {
		for _, slot := range CourseSlots(course) {
			if earliest == -1 || slot.StartMinutes < earliest {
				earliest = slot.StartMinutes
			}
			if slot.EndMinutes > latest {
				latest = slot.EndMinutes
			}
		}
	}
	if earliest == -1 {
		return DefaultEarliestMinutes, DefaultLatestMinutes
	}

	earliest = floorToHour(earliest)
	latest = ceilToHour(latest)
	if latest <= earliest {
		latest = earliest + 60
	}
	return earliest, latest
}
