package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/course-planner-api/internal/models"
)

func TestWithinFilterEmptyFilterAcceptsAll(t *testing.T) {
	course := lectureCourse("A", "Mon 09:00-10:00")
	assert.True(t, WithinFilter(course, nil))
	assert.True(t, WithinFilter(course, models.TimeFilter{}))
}

func TestWithinFilterUnscheduledCourseAlwaysPasses(t *testing.T) {
	course := models.Course{Code: "THESIS", LectureSchedule: "nan"}
	filter := models.TimeFilter{{Day: "Mon", Start: "09:00", End: "10:00"}}
	assert.True(t, WithinFilter(course, filter))
}

func TestWithinFilterContainment(t *testing.T) {
	filter := models.TimeFilter{{Day: "Mon", Start: "08:00", End: "12:00"}}

	assert.True(t, WithinFilter(lectureCourse("A", "Mon 09:00-10:00"), filter))
	// Slot sticking out of the window fails containment.
	assert.False(t, WithinFilter(lectureCourse("B", "Mon 11:00-13:00"), filter))
	// Slot exactly filling the window is contained.
	assert.True(t, WithinFilter(lectureCourse("C", "Mon 08:00-12:00"), filter))
}

func TestWithinFilterUnconstrainedDayIsAcceptable(t *testing.T) {
	filter := models.TimeFilter{{Day: "Mon", Start: "08:00", End: "12:00"}}
	// Tuesday has no windows, so the Tuesday slot is unconstrained.
	course := models.Course{Code: "A", LectureSchedule: "MT 09:00-10:00"}
	assert.True(t, WithinFilter(course, filter))
}

func TestWithinFilterRequiresAllSlotsAcceptable(t *testing.T) {
	filter := models.TimeFilter{
		{Day: "Mon", Start: "08:00", End: "12:00"},
		{Day: "Wed", Start: "08:00", End: "09:00"},
	}
	// Monday slot fits, Wednesday slot does not: the course fails.
	course := models.Course{Code: "A", LectureSchedule: "MW 09:00-10:00"}
	assert.False(t, WithinFilter(course, filter))
}

func TestWithinFilterMultipleWindowsPerDay(t *testing.T) {
	filter := models.TimeFilter{
		{Day: "Mon", Start: "08:00", End: "10:00"},
		{Day: "Mon", Start: "14:00", End: "17:00"},
	}
	assert.True(t, WithinFilter(lectureCourse("A", "Mon 15:00-16:00"), filter))
	// Slot falling in the gap between windows fails.
	assert.False(t, WithinFilter(lectureCourse("B", "Mon 11:00-12:00"), filter))
}

func TestWithinFilterIgnoresInvertedWindow(t *testing.T) {
	filter := models.TimeFilter{{Day: "Mon", Start: "12:00", End: "08:00"}}
	// An inverted window constrains the day but can contain nothing.
	assert.False(t, WithinFilter(lectureCourse("A", "Mon 09:00-10:00"), filter))
}
