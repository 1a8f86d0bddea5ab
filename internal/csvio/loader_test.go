package csvio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogHeader = "Course Code,Branch,Course Name,Course Type,Credits,Instructor,Lecture Schedule,Tutorial Schedule,Practical Schedule\n"

func TestLoadCourses(t *testing.T) {
	data := catalogHeader +
		"CS101,CSE,Programming I,\"DC,Minor / REGULAR\",4,Prof. Rao,MWF 08:00-09:00,Th 14:00-15:00,\n" +
		"CS499,CSE,Thesis,DC,8,Prof. Iyer,nan,nan,nan\n"

	courses, skipped, err := LoadCourses(strings.NewReader(data))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, courses, 2)

	assert.Equal(t, "CS101", courses[0].Code)
	assert.Equal(t, 4, courses[0].Credits)
	assert.Equal(t, []string{"DC", "Minor", "REGULAR"}, courses[0].Types)
	assert.Equal(t, "MWF 08:00-09:00", courses[0].LectureSchedule)
	assert.Equal(t, "nan", courses[1].LectureSchedule)
}

func TestLoadCoursesSkipsRowsWithoutCode(t *testing.T) {
	data := catalogHeader +
		",CSE,Ghost Course,DC,4,,,,\n" +
		"nan,CSE,Another Ghost,DC,4,,,,\n" +
		"CS101,CSE,Programming I,DC,4,Prof. Rao,MWF 08:00-09:00,,\n"

	courses, skipped, err := LoadCourses(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].Code)
}

func TestLoadCoursesDeduplicatesByCodeLastWins(t *testing.T) {
	data := catalogHeader +
		"CS101,CSE,Old Name,DC,4,,,,\n" +
		"CS101,CSE,New Name,DC,4,,,,\n"

	courses, skipped, err := LoadCourses(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, courses, 1)
	assert.Equal(t, "New Name", courses[0].Name)
}

func TestLoadCoursesTolerantCredits(t *testing.T) {
	data := catalogHeader +
		"CS101,CSE,Programming I,DC,nan,,,,\n" +
		"CS102,CSE,Programming II,DC,-3,,,,\n"

	courses, _, err := LoadCourses(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Zero(t, courses[0].Credits)
	assert.Zero(t, courses[1].Credits)
}
