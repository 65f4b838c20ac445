package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

func TestNewPublicAnnouncementCompatFallbacks(t *testing.T) {
	a := models.Announcement{
		ID:          "a1",
		Title:       "Enrollment ongoing",
		Category:    "Academic",
		Audience:    "Students",
		Priority:    models.AnnouncementPriorityHigh,
		PublishDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	view := NewPublicAnnouncement(a)

	assert.Equal(t, "Academic", view.Type)
	assert.Equal(t, "Students", view.TargetAudience)
	assert.Equal(t, []string{}, view.Tags)
}

func TestNewPublicAnnouncementKeepsExplicitFields(t *testing.T) {
	a := models.Announcement{
		ID:             "a1",
		Category:       "Academic",
		Audience:       "Students",
		Type:           "Notice",
		TargetAudience: "Faculty",
		Tags:           []string{"urgent"},
	}

	view := NewPublicAnnouncement(a)

	assert.Equal(t, "Notice", view.Type)
	assert.Equal(t, "Faculty", view.TargetAudience)
	assert.Equal(t, []string{"urgent"}, view.Tags)
}

func TestNewPublicEventPrefersDedicatedFields(t *testing.T) {
	capacity := 250
	e := models.Event{
		ID:        "e1",
		Date:      "2026-09-01",
		Time:      "08:00",
		StartDate: "2026-09-02",
		StartTime: "09:30",
		Capacity:  &capacity,
	}

	view := NewPublicEvent(e)

	assert.Equal(t, "2026-09-02", view.StartDate)
	assert.Equal(t, "09:30", view.StartTime)
	assert.Equal(t, 250, view.Capacity)
}

func TestNewPublicEventLegacyFallbacks(t *testing.T) {
	e := models.Event{
		ID:           "e1",
		Date:         "2026-09-01",
		Time:         "08:00",
		Category:     "Seminar",
		MaxAttendees: 100,
		Organizer:    "Student Affairs Office",
	}

	view := NewPublicEvent(e)

	assert.Equal(t, "2026-09-01", view.StartDate)
	assert.Equal(t, "08:00", view.StartTime)
	assert.Equal(t, "Seminar", view.Type)
	assert.Equal(t, 100, view.Capacity)
	assert.Equal(t, "studentaffairsoffice@sorsu-bulan.edu.ph", view.ContactEmail)
	assert.Equal(t, []string{}, view.Tags)
}

func TestNewPublicEventKeepsExplicitContactEmail(t *testing.T) {
	e := models.Event{Organizer: "IT Department", ContactEmail: "it@sorsu-bulan.edu.ph"}
	view := NewPublicEvent(e)
	assert.Equal(t, "it@sorsu-bulan.edu.ph", view.ContactEmail)
}

func TestNewFacultyProfileProjection(t *testing.T) {
	f := models.Faculty{
		ID:        "f1",
		FirstName: "Maria Elena",
		LastName:  "Delos Santos",
		Status:    models.FacultyStatusActive,
		Education: []string{"PhD in Education", "MA in Teaching"},
		Awards:    []string{"Best Educator 2024"},
	}

	profile := NewFacultyProfile(f)

	assert.Equal(t, "Maria Elena Delos Santos", profile.Name)
	assert.Equal(t, "PhD in Education; MA in Teaching", profile.Education)
	assert.Equal(t, []string{"Best Educator 2024"}, profile.Achievements)
	assert.Equal(t, "Regular", profile.EmploymentStatus)
	assert.Equal(t, 5, profile.YearsOfExperience)
	assert.Equal(t, []string{}, profile.Specializations)
}

func TestNewFacultyProfileNonActiveStatusPassedThrough(t *testing.T) {
	years := 12
	f := models.Faculty{
		Status:            models.FacultyStatusOnLeave,
		YearsOfExperience: &years,
	}

	profile := NewFacultyProfile(f)

	assert.Equal(t, "On Leave", profile.EmploymentStatus)
	assert.Equal(t, 12, profile.YearsOfExperience)
}
