package models

import (
	"strings"
	"time"
)

// Course is one catalog entry for a term. The catalog is read-only to the
// planning engine; schedule strings stay in their raw form and are expanded
// into time slots on demand.
type Course struct {
	Code              string    `db:"code" json:"code"`
	Branch            string    `db:"branch" json:"branch"`
	Name              string    `db:"name" json:"name"`
	CourseType        string    `db:"course_type" json:"course_type"`
	Types             []string  `db:"-" json:"types,omitempty"`
	Credits           int       `db:"credits" json:"credits"`
	Instructor        string    `db:"instructor" json:"instructor"`
	LectureSchedule   string    `db:"lecture_schedule" json:"lecture_schedule"`
	TutorialSchedule  string    `db:"tutorial_schedule" json:"tutorial_schedule"`
	PracticalSchedule string    `db:"practical_schedule" json:"practical_schedule"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// HydrateTypes fills the parsed tag list from the raw course type string.
func (c *Course) HydrateTypes() {
	c.Types = SplitTypeTags(c.CourseType)
}

// SplitTypeTags normalises a composite course type string such as
// "DC,Minor / REGULAR" into individual tags. The literal "nan" marker used by
// upstream catalog exports is discarded.
func SplitTypeTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		for _, tag := range strings.Split(part, "/") {
			tag = strings.TrimSpace(tag)
			if tag == "" || strings.EqualFold(tag, "nan") {
				continue
			}
			tags = append(tags, tag)
		}
	}
	return tags
}

// HasType reports whether the course carries the given tag (case-insensitive).
func (c *Course) HasType(tag string) bool {
	for _, t := range c.Types {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// CourseFilter describes query params for listing catalog courses.
type CourseFilter struct {
	Branch    string
	Type      string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Pagination carries list metadata in API responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
