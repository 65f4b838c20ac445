package service

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
	appErrors "github.com/sorsu-bulan/campus-content-api/pkg/errors"
	"github.com/sorsu-bulan/campus-content-api/pkg/export"
)

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult carries a rendered document and its response metadata.
type ExportResult struct {
	FileName    string
	ContentType string
	Body        []byte
}

type exportFacultySource interface {
	All() []models.Faculty
}

type exportEventSource interface {
	All() []models.Event
}

// ExportService renders admin CSV/PDF exports of the faculty roster and the
// event schedule.
type ExportService struct {
	faculty exportFacultySource
	events  exportEventSource
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	enabled bool
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs the service.
func NewExportService(faculty exportFacultySource, events exportEventSource, enabled bool, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		faculty: faculty,
		events:  events,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		enabled: enabled,
		logger:  logger,
		now:     time.Now,
	}
}

// ExportFaculty renders the full roster in the requested format.
func (s *ExportService) ExportFaculty(format ExportFormat) (*ExportResult, error) {
	if !s.enabled {
		return nil, appErrors.ErrExportsDisabled
	}
	dataset := facultyDataset(s.faculty.All())
	return s.render(dataset, "faculty-roster", "Faculty Roster", format)
}

// ExportEvents renders the full event schedule in the requested format.
func (s *ExportService) ExportEvents(format ExportFormat) (*ExportResult, error) {
	if !s.enabled {
		return nil, appErrors.ErrExportsDisabled
	}
	dataset := eventDataset(s.events.All())
	return s.render(dataset, "event-schedule", "Event Schedule", format)
}

func (s *ExportService) render(dataset export.Dataset, baseName, title string, format ExportFormat) (*ExportResult, error) {
	stamp := s.now().Format("2006-01-02")
	switch format {
	case ExportFormatCSV:
		body, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "could not render csv export")
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("%s-%s.csv", baseName, stamp),
			ContentType: "text/csv",
			Body:        body,
		}, nil
	case ExportFormatPDF:
		body, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "could not render pdf export")
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("%s-%s.pdf", baseName, stamp),
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown export format")
	}
}

func facultyDataset(roster []models.Faculty) export.Dataset {
	headers := []string{"Name", "Department", "Position", "Status", "Email", "Phone", "Office"}
	rows := make([]map[string]string, 0, len(roster))
	for _, f := range roster {
		rows = append(rows, map[string]string{
			"Name":       f.FullName(),
			"Department": f.Department,
			"Position":   f.Position,
			"Status":     string(f.Status),
			"Email":      f.Email,
			"Phone":      f.Phone,
			"Office":     f.Office,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func eventDataset(events []models.Event) export.Dataset {
	headers := []string{"Title", "Date", "Time", "Location", "Category", "Status", "Organizer", "Attendees"}
	rows := make([]map[string]string, 0, len(events))
	for _, e := range events {
		attendees := strconv.Itoa(e.CurrentAttendees)
		if e.MaxAttendees > 0 {
			attendees = fmt.Sprintf("%d/%d", e.CurrentAttendees, e.MaxAttendees)
		}
		rows = append(rows, map[string]string{
			"Title":     e.Title,
			"Date":      e.EffectiveStartDate(),
			"Time":      e.EffectiveStartTime(),
			"Location":  e.Location,
			"Category":  e.Category,
			"Status":    string(e.Status),
			"Organizer": e.Organizer,
			"Attendees": attendees,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
