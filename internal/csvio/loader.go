// Package csvio ingests course catalog exports. Catalog files are free-text
// spreadsheets; rows degrade row-by-row instead of failing the whole import.
package csvio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/noah-isme/course-planner-api/internal/models"
)

type courseRecord struct {
	Code       string `csv:"Course Code"`
	Branch     string `csv:"Branch"`
	Name       string `csv:"Course Name"`
	CourseType string `csv:"Course Type"`
	Credits    string `csv:"Credits"`
	Instructor string `csv:"Instructor"`
	Lecture    string `csv:"Lecture Schedule"`
	Tutorial   string `csv:"Tutorial Schedule"`
	Practical  string `csv:"Practical Schedule"`
}

// LoadCourses parses a catalog CSV stream into course records. Rows without
// a course code are skipped, and later rows win when a code repeats so the
// engine never sees duplicate courses. The skipped count covers both cases.
func LoadCourses(r io.Reader) ([]models.Course, int, error) {
	var records []courseRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, 0, fmt.Errorf("parse catalog csv: %w", err)
	}

	skipped := 0
	index := make(map[string]int)
	courses := make([]models.Course, 0, len(records))
	for _, rec := range records {
		code := strings.TrimSpace(rec.Code)
		if code == "" || strings.EqualFold(code, "nan") {
			skipped++
			continue
		}

		course := models.Course{
			Code:              code,
			Branch:            strings.TrimSpace(rec.Branch),
			Name:              strings.TrimSpace(rec.Name),
			CourseType:        strings.TrimSpace(rec.CourseType),
			Credits:           parseCredits(rec.Credits),
			Instructor:        strings.TrimSpace(rec.Instructor),
			LectureSchedule:   strings.TrimSpace(rec.Lecture),
			TutorialSchedule:  strings.TrimSpace(rec.Tutorial),
			PracticalSchedule: strings.TrimSpace(rec.Practical),
		}
		course.HydrateTypes()

		if at, seen := index[code]; seen {
			courses[at] = course
			skipped++
			continue
		}
		index[code] = len(courses)
		courses = append(courses, course)
	}
	return courses, skipped, nil
}

// parseCredits tolerates "nan", blanks, and stray whitespace in the credit
// column. Negative values are clamped to zero.
func parseCredits(raw string) int {
	credits, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || credits < 0 {
		return 0
	}
	return credits
}
