package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"Day", "Start", "Code"},
		Rows: []map[string]string{
			{"Day": "Mon", "Start": "09:00", "Code": "CS101"},
			{"Day": "Wed", "Start": "09:00", "Code": "CS101"},
		},
	}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "Day,Start,Code\nMon,09:00,CS101\nWed,09:00,CS101\n", string(out))
}

func TestCSVExporterRenderMissingCells(t *testing.T) {
	data := Dataset{
		Headers: []string{"Day", "Start", "Course"},
		Rows:    []map[string]string{{"Day": "Fri"}},
	}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "Day,Start,Course\nFri,,\n", string(out))
}

func TestCSVExporterRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}
