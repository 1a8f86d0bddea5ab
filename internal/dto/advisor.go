package dto

// CourseSummary is the plain-data payload handed to the external advisory
// service, one per selected course. The engine has no opinion on how the
// collaborator formats its answer.
type CourseSummary struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	Credits           int    `json:"credits"`
	Instructor        string `json:"instructor"`
	LectureSchedule   string `json:"lecture_schedule"`
	TutorialSchedule  string `json:"tutorial_schedule"`
	PracticalSchedule string `json:"practical_schedule"`
}

// ReviewRequest asks the advisor to comment on a selection.
type ReviewRequest struct {
	Codes []string `json:"codes" validate:"required,min=1,dive,required"`
}

// ReviewResponse returns the advisor's marked-up text verbatim plus the
// summaries it was given.
type ReviewResponse struct {
	Advice  string          `json:"advice"`
	Courses []CourseSummary `json:"courses"`
}
