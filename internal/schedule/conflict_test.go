package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-planner-api/internal/models"
)

func lectureCourse(code, schedule string) models.Course {
	return models.Course{Code: code, LectureSchedule: schedule}
}

func TestOverlapsSymmetry(t *testing.T) {
	a := models.TimeSlot{Day: "Mon", StartMinutes: 540, EndMinutes: 630}
	b := models.TimeSlot{Day: "Mon", StartMinutes: 600, EndMinutes: 660}
	c := models.TimeSlot{Day: "Mon", StartMinutes: 660, EndMinutes: 720}

	assert.True(t, Overlaps(a, b))
	assert.True(t, Overlaps(b, a))
	assert.False(t, Overlaps(a, c))
	assert.False(t, Overlaps(c, a))
}

func TestTouchingBoundaryIsNotAConflict(t *testing.T) {
	report := DetectConflicts([]models.Course{
		lectureCourse("A", "Mon 10:00-11:00"),
		lectureCourse("B", "Mon 11:00-12:00"),
	})
	assert.Empty(t, report.Keys)
	assert.Empty(t, report.Descriptions)
}

func TestDetectConflictsNoOverlap(t *testing.T) {
	report := DetectConflicts([]models.Course{
		lectureCourse("A", "Mon 09:00-10:00"),
		lectureCourse("B", "Mon 10:00-11:00"),
	})
	assert.Empty(t, report.Keys)
}

func TestDetectConflictsOverlap(t *testing.T) {
	report := DetectConflicts([]models.Course{
		lectureCourse("A", "Mon 09:00-10:30"),
		lectureCourse("B", "Mon 10:00-11:00"),
	})

	assert.True(t, report.HasKey("A-Mon-09:00"))
	assert.True(t, report.HasKey("B-Mon-10:00"))
	require.Len(t, report.Descriptions, 1)
	assert.Equal(t, []string{"A clashes with B on Mon (10:00-11:00)"}, report.SortedDescriptions())
}

func TestDetectConflictsDescriptionDeduplicated(t *testing.T) {
	forward := DetectConflicts([]models.Course{
		lectureCourse("A", "Mon 09:00-10:30"),
		lectureCourse("B", "Mon 10:00-11:00"),
	})
	reverse := DetectConflicts([]models.Course{
		lectureCourse("B", "Mon 10:00-11:00"),
		lectureCourse("A", "Mon 09:00-10:30"),
	})

	assert.Len(t, forward.Descriptions, 1)
	assert.Len(t, reverse.Descriptions, 1)
	// The code pair is canonical either way; only the quoted time range
	// follows processing order.
	assert.Equal(t, []string{"A clashes with B on Mon (09:00-10:30)"}, reverse.SortedDescriptions())
}

func TestDetectConflictsDifferentDaysNeverClash(t *testing.T) {
	report := DetectConflicts([]models.Course{
		lectureCourse("A", "Mon 09:00-10:00"),
		lectureCourse("B", "Tue 09:00-10:00"),
	})
	assert.Empty(t, report.Keys)
}

func TestDetectConflictsAcrossComponents(t *testing.T) {
	a := models.Course{Code: "A", LectureSchedule: "Mon 09:00-10:00"}
	b := models.Course{Code: "B", PracticalSchedule: "Mon 09:30-11:30"}
	report := DetectConflicts([]models.Course{a, b})

	assert.True(t, report.HasKey("A-Mon-09:00"))
	assert.True(t, report.HasKey("B-Mon-09:30"))
}

func TestDetectConflictsEmptySelection(t *testing.T) {
	report := DetectConflicts(nil)
	assert.Empty(t, report.Keys)
	assert.Empty(t, report.Descriptions)
}

func TestDetectConflictsThreeWay(t *testing.T) {
	report := DetectConflicts([]models.Course{
		lectureCourse("A", "Mon 09:00-11:00"),
		lectureCourse("B", "Mon 09:30-10:30"),
		lectureCourse("C", "Mon 10:00-12:00"),
	})
	// A-B, A-C and B-C all overlap, one description each.
	assert.Len(t, report.Descriptions, 3)
	assert.True(t, report.HasKey("A-Mon-09:00"))
	assert.True(t, report.HasKey("B-Mon-09:30"))
	assert.True(t, report.HasKey("C-Mon-10:00"))
}

func TestCheckClash(t *testing.T) {
	existing := []models.Course{
		lectureCourse("A", "Mon 09:00-10:30"),
		lectureCourse("B", "Tue 09:00-10:00"),
		lectureCourse("C", "Mon 10:00-11:00"),
	}

	codes := CheckClash(lectureCourse("D", "Mon 10:00-11:00"), existing)
	assert.Equal(t, []string{"A", "C"}, codes)
}

func TestCheckClashNoConflict(t *testing.T) {
	existing := []models.Course{lectureCourse("A", "Mon 09:00-10:00")}
	assert.Empty(t, CheckClash(lectureCourse("B", "Mon 10:00-11:00"), existing))
}

func TestCheckClashIgnoresSelf(t *testing.T) {
	existing := []models.Course{lectureCourse("A", "Mon 09:00-10:00")}
	assert.Empty(t, CheckClash(lectureCourse("A", "Mon 09:00-10:00"), existing))
}

func TestCheckClashDeduplicatesCodes(t *testing.T) {
	// Candidate overlaps A twice: lecture and tutorial on the same day.
	existing := []models.Course{{
		Code:             "A",
		LectureSchedule:  "Mon 09:00-10:00",
		TutorialSchedule: "Mon 10:00-11:00",
	}}
	codes := CheckClash(lectureCourse("B", "Mon 09:30-10:30"), existing)
	assert.Equal(t, []string{"A"}, codes)
}

func TestUnscheduledCourseContributesNoSlots(t *testing.T) {
	report := DetectConflicts([]models.Course{
		{Code: "THESIS", LectureSchedule: "nan"},
		lectureCourse("A", "Mon 09:00-10:00"),
	})
	assert.Empty(t, report.Keys)
}
