package schedule

import (
	"strings"

	"github.com/noah-isme/course-planner-api/internal/models"
)

// fullDayNames must be matched before the short codes so that "Mon" is one
// day, not M plus two stray characters. Sunday never appears in the teaching
// week but is recognised so weekend catalogs degrade to a label, not noise.
var fullDayNames = map[string]string{
	"Mon": "Mon",
	"Tue": "Tue",
	"Wed": "Wed",
	"Thu": "Thu",
	"Fri": "Fri",
	"Sat": "Sat",
	"Sun": "Sun",
}

// twoLetterDays must be matched before single letters so that "Th" and "Tu"
// are not read as Tuesday followed by a stray character.
var twoLetterDays = map[string]string{
	"Th": "Thu",
	"Tu": "Tue",
}

var singleLetterDays = map[string]string{
	"M": "Mon",
	"T": "Tue",
	"W": "Wed",
	"F": "Fri",
	"S": "Sat",
}

// ParseWeekly expands a raw schedule string such as "MWF 08:00-09:00, Th
// 14:00-15:30" into one TimeSlot per day occurrence. The component tag is
// supplied by the caller; the grammar itself is component-agnostic.
//
// Empty input, whitespace, or the literal "nan" means the course has no
// scheduled meetings and parses to an empty list. Segments whose time range
// is unparseable or non-positive are dropped entirely; catalog data is free
// text and must degrade instead of failing the whole course.
func ParseWeekly(raw string, component models.ComponentType, courseCode string) []models.TimeSlot {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil
	}

	var slots []models.TimeSlot
	for _, segment := range strings.Split(raw, ",") {
		fields := strings.Fields(segment)
		if len(fields) < 2 {
			continue
		}
		dayToken := fields[0]
		timeRange := strings.SplitN(fields[1], "-", 2)
		if len(timeRange) != 2 {
			continue
		}

		start, startOK := parseClock(timeRange[0])
		end, endOK := parseClock(timeRange[1])
		if !startOK || !endOK {
			continue
		}
		duration := end - start
		if duration <= 0 {
			continue
		}

		for _, day := range splitDayToken(dayToken) {
			slots = append(slots, models.TimeSlot{
				CourseCode:      courseCode,
				Day:             day,
				Start:           FormatMinutes(start),
				End:             FormatMinutes(end),
				StartMinutes:    start,
				EndMinutes:      end,
				DurationMinutes: duration,
				Component:       component,
			})
		}
	}
	return slots
}

// splitDayToken breaks a day token like "Mon", "TuTh", or "MWF" into
// individual day names, longest code first. Unrecognised codes pass through
// as display labels so an unanticipated abbreviation never aborts parsing.
func splitDayToken(token string) []string {
	var days []string
	for i := 0; i < len(token); {
		if i+3 <= len(token) {
			if day, ok := fullDayNames[token[i:i+3]]; ok {
				days = append(days, day)
				i += 3
				continue
			}
		}
		if i+2 <= len(token) {
			if day, ok := twoLetterDays[token[i:i+2]]; ok {
				days = append(days, day)
				i += 2
				continue
			}
		}
		code := token[i : i+1]
		if day, ok := singleLetterDays[code]; ok {
			days = append(days, day)
		} else {
			days = append(days, code)
		}
		i++
	}
	return days
}
