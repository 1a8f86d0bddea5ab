package schedule

import (
	"fmt"
	"sort"

	"github.com/noah-isme/course-planner-api/internal/models"
)

// Overlaps reports whether two same-day slots overlap. Intervals are
// half-open: a slot ending at 10:00 does not clash with one starting at
// 10:00.
func Overlaps(a, b models.TimeSlot) bool {
	return a.StartMinutes < b.EndMinutes && b.StartMinutes < a.EndMinutes
}

// DetectConflicts runs the exhaustive pairwise overlap check over a
// selection of courses. Courses are processed in input order; each slot is
// compared against every same-day slot seen so far, then added to the pool.
// Both directional keys are recorded so lookups by either course succeed,
// while the description is canonical: course codes sorted lexicographically
// and the later-processed slot's time range quoted. Input order therefore
// only affects which time range a description quotes, never which pairs are
// found.
func DetectConflicts(courses []models.Course) models.ConflictReport {
	report := models.NewConflictReport()
	seen := make(map[string][]models.TimeSlot)

	for _, course := range courses {
		for _, slot := range CourseSlots(course) {
			for _, prev := range seen[slot.Day] {
				if !Overlaps(prev, slot) {
					continue
				}
				report.Keys[prev.Key()] = struct{}{}
				report.Keys[slot.Key()] = struct{}{}
				report.Descriptions[describeClash(prev, slot)] = struct{}{}
			}
			seen[slot.Day] = append(seen[slot.Day], slot)
		}
	}
	return report
}

// CheckClash is the incremental point-of-add variant: it compares only the
// candidate course's slots against all slots of the already-settled
// selection and returns the deduplicated codes of courses the candidate
// would clash with. The existing selection is not mutated or re-scanned
// against itself.
func CheckClash(candidate models.Course, existing []models.Course) []string {
	settled := make(map[string][]models.TimeSlot)
	for _, course := range existing {
		if course.Code == candidate.Code {
			continue
		}
		for _, slot := range CourseSlots(course) {
			settled[slot.Day] = append(settled[slot.Day], slot)
		}
	}

	clashing := make(map[string]struct{})
	for _, slot := range CourseSlots(candidate) {
		for _, other := range settled[slot.Day] {
			if Overlaps(slot, other) {
				clashing[other.CourseCode] = struct{}{}
			}
		}
	}

	codes := make([]string, 0, len(clashing))
	for code := range clashing {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func describeClash(prev, current models.TimeSlot) string {
	first, second := prev.CourseCode, current.CourseCode
	if first > second {
		first, second = second, first
	}
	return fmt.Sprintf("%s clashes with %s on %s (%s-%s)",
		first, second, current.Day, current.Start, current.End)
}
