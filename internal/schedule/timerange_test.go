package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/course-planner-api/internal/models"
)

func TestTimeRangeDefaultForEmptySelection(t *testing.T) {
	earliest, latest := TimeRange(nil)
	assert.Equal(t, 480, earliest)
	assert.Equal(t, 1080, latest)
}

func TestTimeRangeDefaultForUnscheduledCourses(t *testing.T) {
	earliest, latest := TimeRange([]models.Course{{Code: "THESIS", LectureSchedule: "nan"}})
	assert.Equal(t, 480, earliest)
	assert.Equal(t, 1080, latest)
}

func TestTimeRangeRoundsToHours(t *testing.T) {
	earliest, latest := TimeRange([]models.Course{
		lectureCourse("A", "Mon 09:30-10:45"),
		lectureCourse("B", "Wed 14:00-15:15"),
	})
	assert.Equal(t, 540, earliest)  // floor 09:30 -> 09:00
	assert.Equal(t, 16*60, latest)  // ceil 15:15 -> 16:00
}

func TestTimeRangeExactHoursKept(t *testing.T) {
	earliest, latest := TimeRange([]models.Course{lectureCourse("A", "Mon 09:00-11:00")})
	assert.Equal(t, 540, earliest)
	assert.Equal(t, 660, latest)
}

func TestTimeRangeMinimumSpan(t *testing.T) {
	earliest, latest := TimeRange([]models.Course{lectureCourse("A", "Mon 09:10-09:20")})
	assert.Equal(t, 540, earliest)
	assert.Equal(t, 600, latest)
	assert.Greater(t, latest, earliest)
}
