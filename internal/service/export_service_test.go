package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

type staticFacultySource struct{ items []models.Faculty }

func (s staticFacultySource) All() []models.Faculty { return s.items }

type staticEventSource struct{ items []models.Event }

func (s staticEventSource) All() []models.Event { return s.items }

func TestExportFacultyCSV(t *testing.T) {
	svc := NewExportService(staticFacultySource{items: []models.Faculty{
		{FirstName: "Ana", LastName: "Reyes", Department: "Information Technology", Position: "Instructor", Status: models.FacultyStatusActive, Email: "ana@sorsu-bulan.edu.ph"},
	}}, staticEventSource{}, true, nil)

	result, err := svc.ExportFaculty(ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.FileName, ".csv"))

	lines := strings.Split(strings.TrimSpace(string(result.Body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Department,Position,Status,Email,Phone,Office", lines[0])
	assert.Contains(t, lines[1], "Ana Reyes")
	assert.Contains(t, lines[1], "Information Technology")
}

func TestExportEventsCSVUsesEffectiveDates(t *testing.T) {
	svc := NewExportService(staticFacultySource{}, staticEventSource{items: []models.Event{
		{Title: "Intramurals", Date: "2026-09-10", Time: "08:00", StartDate: "2026-09-11", StartTime: "09:00", Location: "Gym", Status: models.EventStatusPublished, CurrentAttendees: 40, MaxAttendees: 100},
	}}, true, nil)

	result, err := svc.ExportEvents(ExportFormatCSV)
	require.NoError(t, err)

	body := string(result.Body)
	assert.Contains(t, body, "2026-09-11")
	assert.Contains(t, body, "09:00")
	assert.Contains(t, body, "40/100")
}

func TestExportPDFProducesDocument(t *testing.T) {
	svc := NewExportService(staticFacultySource{items: []models.Faculty{
		{FirstName: "Ana", LastName: "Reyes"},
	}}, staticEventSource{}, true, nil)

	result, err := svc.ExportFaculty(ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Body), "%PDF"))
}

func TestExportDisabled(t *testing.T) {
	svc := NewExportService(staticFacultySource{}, staticEventSource{}, false, nil)

	_, err := svc.ExportFaculty(ExportFormatCSV)
	assert.Error(t, err)

	_, err = svc.ExportEvents(ExportFormatPDF)
	assert.Error(t, err)
}

func TestExportUnknownFormat(t *testing.T) {
	svc := NewExportService(staticFacultySource{}, staticEventSource{}, true, nil)

	_, err := svc.ExportFaculty(ExportFormat("xlsx"))
	assert.Error(t, err)
}
