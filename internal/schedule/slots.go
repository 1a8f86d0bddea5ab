package schedule

import "github.com/noah-isme/course-planner-api/internal/models"

// CourseSlots expands all three schedule strings of a course into a single
// normalized slot list, lecture first, then tutorial, then practical. An
// empty result means the course is unconstrained (project and thesis courses
// have no weekly meetings); callers must never read it as "unavailable".
func CourseSlots(course models.Course) []models.TimeSlot {
	var slots []models.TimeSlot
	slots = append(slots, ParseWeekly(course.LectureSchedule, models.ComponentLecture, course.Code)...)
	slots = append(slots, ParseWeekly(course.TutorialSchedule, models.ComponentTutorial, course.Code)...)
	slots = append(slots, ParseWeekly(course.PracticalSchedule, models.ComponentPractical, course.Code)...)
	return slots
}
