package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-planner-api/internal/models"
)

func TestParseWeeklySingleDay(t *testing.T) {
	slots := ParseWeekly("Mon 09:00-10:00", models.ComponentLecture, "CS101")
	require.Len(t, slots, 1)

	slot := slots[0]
	assert.Equal(t, "CS101", slot.CourseCode)
	assert.Equal(t, "Mon", slot.Day)
	assert.Equal(t, "09:00", slot.Start)
	assert.Equal(t, "10:00", slot.End)
	assert.Equal(t, 540, slot.StartMinutes)
	assert.Equal(t, 600, slot.EndMinutes)
	assert.Equal(t, 60, slot.DurationMinutes)
	assert.Equal(t, models.ComponentLecture, slot.Component)
}

func TestParseWeeklyFullDayNames(t *testing.T) {
	// Full names are one token each, never a short code plus stray letters.
	for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		slots := ParseWeekly(day+" 09:00-10:00", models.ComponentLecture, "CS101")
		require.Len(t, slots, 1, "day %q", day)
		assert.Equal(t, day, slots[0].Day)
	}

	slots := ParseWeekly("Sun 09:00-10:00", models.ComponentLecture, "CS101")
	require.Len(t, slots, 1)
	assert.Equal(t, "Sun", slots[0].Day)
}

func TestParseWeeklyConcatenatedDays(t *testing.T) {
	slots := ParseWeekly("MWF 08:00-09:00", models.ComponentLecture, "CS101")
	require.Len(t, slots, 3)

	days := []string{slots[0].Day, slots[1].Day, slots[2].Day}
	assert.Equal(t, []string{"Mon", "Wed", "Fri"}, days)
	for _, slot := range slots {
		assert.Equal(t, 480, slot.StartMinutes)
		assert.Equal(t, 540, slot.EndMinutes)
	}
}

func TestParseWeeklyThursdayDisambiguation(t *testing.T) {
	slots := ParseWeekly("TuTh 09:00-10:00", models.ComponentTutorial, "EE204")
	require.Len(t, slots, 2)
	assert.Equal(t, "Tue", slots[0].Day)
	assert.Equal(t, "Thu", slots[1].Day)

	// Bare T is Tuesday, TTh is Tuesday and Thursday.
	slots = ParseWeekly("TTh 11:00-12:00", models.ComponentLecture, "EE204")
	require.Len(t, slots, 2)
	assert.Equal(t, "Tue", slots[0].Day)
	assert.Equal(t, "Thu", slots[1].Day)
}

func TestParseWeeklyMultipleSegments(t *testing.T) {
	slots := ParseWeekly("MW 10:00-11:00, F 14:00-16:00", models.ComponentLecture, "ME310")
	require.Len(t, slots, 3)
	assert.Equal(t, "Fri", slots[2].Day)
	assert.Equal(t, 120, slots[2].DurationMinutes)
}

func TestParseWeeklyEmptyInputs(t *testing.T) {
	for _, raw := range []string{"", "   ", "nan", "NaN"} {
		assert.Empty(t, ParseWeekly(raw, models.ComponentLecture, "CS101"), "input %q", raw)
	}
}

func TestParseWeeklyDropsNonPositiveDuration(t *testing.T) {
	// End before start.
	assert.Empty(t, ParseWeekly("Mon 10:00-09:00", models.ComponentLecture, "CS101"))
	// Zero length.
	assert.Empty(t, ParseWeekly("Mon 10:00-10:00", models.ComponentLecture, "CS101"))
	// Only the malformed segment is dropped.
	slots := ParseWeekly("Mon 10:00-09:00, Tue 09:00-10:00", models.ComponentLecture, "CS101")
	require.Len(t, slots, 1)
	assert.Equal(t, "Tue", slots[0].Day)
}

func TestParseWeeklyDropsMalformedSegments(t *testing.T) {
	assert.Empty(t, ParseWeekly("Mon", models.ComponentLecture, "CS101"))
	assert.Empty(t, ParseWeekly("Mon 0900", models.ComponentLecture, "CS101"))
	// Non-numeric endpoints never fall back to a midnight sentinel.
	assert.Empty(t, ParseWeekly("Mon aa:00-10:00", models.ComponentLecture, "CS101"))
	assert.Empty(t, ParseWeekly("Mon 09:00-bb:00", models.ComponentLecture, "CS101"))

	// Well-formed segments survive alongside malformed ones.
	slots := ParseWeekly("Mon aa:00-10:00, Tue 09:00-10:00", models.ComponentLecture, "CS101")
	require.Len(t, slots, 1)
	assert.Equal(t, "Tue", slots[0].Day)
}

func TestParseWeeklyUnknownDayCodePassesThrough(t *testing.T) {
	slots := ParseWeekly("X 09:00-10:00", models.ComponentLecture, "CS101")
	require.Len(t, slots, 1)
	assert.Equal(t, "X", slots[0].Day)
}

func TestParseWeeklyCanonicalisesTimes(t *testing.T) {
	slots := ParseWeekly("Mon 9:00-10:30", models.ComponentLecture, "CS101")
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "10:30", slots[0].End)
}

func TestCourseSlotsOrdering(t *testing.T) {
	course := models.Course{
		Code:              "CS101",
		LectureSchedule:   "MW 09:00-10:00",
		TutorialSchedule:  "F 11:00-12:00",
		PracticalSchedule: "Th 14:00-16:00",
	}
	slots := CourseSlots(course)
	require.Len(t, slots, 4)
	assert.Equal(t, models.ComponentLecture, slots[0].Component)
	assert.Equal(t, models.ComponentLecture, slots[1].Component)
	assert.Equal(t, models.ComponentTutorial, slots[2].Component)
	assert.Equal(t, models.ComponentPractical, slots[3].Component)
}

func TestCourseSlotsEmptyForProjectCourse(t *testing.T) {
	course := models.Course{Code: "CS499", LectureSchedule: "nan", TutorialSchedule: "", PracticalSchedule: "nan"}
	assert.Empty(t, CourseSlots(course))
}
