package store

import (
	"time"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

// Default collections used when nothing usable is persisted. Content mirrors
// the public site's launch data for the Bulan campus.

// FacultySeed returns the default faculty directory.
func FacultySeed() []models.Faculty {
	five := 5
	eight := 8
	twelve := 12
	return []models.Faculty{
		{
			ID:         "fac-001",
			FirstName:  "Sean Martin",
			LastName:   "Fulay",
			Email:      "seanmartin.fulay@sorsu-bulan.edu.ph",
			Office:     "IT Building, Room 204",
			Department: "Information Technology",
			Position:   "Program Chair",
			Status:     models.FacultyStatusActive,
			Bio:        "Leads the BSIT program and the campus web systems initiative.",
			Specializations: []string{
				"Web Development", "Software Engineering",
			},
			Education:         []string{"BS Information Technology, SorSU", "MS Information Technology, Bicol University"},
			Awards:            []string{"Outstanding Faculty Award 2023"},
			YearsOfExperience: &eight,
		},
		{
			ID:         "fac-002",
			FirstName:  "Kenneth",
			LastName:   "Gisalan",
			Email:      "kenneth.gisalan@sorsu-bulan.edu.ph",
			Office:     "IT Building, Room 206",
			Department: "Information Technology",
			Position:   "Instructor",
			Status:     models.FacultyStatusActive,
			Bio:        "Teaches networking and systems administration courses.",
			Specializations: []string{
				"Computer Networks", "Systems Administration",
			},
			Education:         []string{"BS Information Technology, SorSU"},
			YearsOfExperience: &five,
		},
		{
			ID:                "fac-003",
			FirstName:         "Maria Elena",
			LastName:          "Delos Santos",
			Email:             "mariaelena.delossantos@sorsu-bulan.edu.ph",
			Office:            "Main Building, Room 101",
			Department:        "Teacher Education",
			Position:          "Dean",
			Status:            models.FacultyStatusActive,
			Bio:               "Oversees the campus academic programs.",
			Specializations:   []string{"Curriculum Development", "Educational Leadership"},
			Education:         []string{"BSEd English, SorSU", "MA Education, UP Diliman", "PhD Education, UP Diliman"},
			Awards:            []string{"Regional Educator of the Year 2021"},
			YearsOfExperience: &twelve,
		},
		{
			ID:              "fac-004",
			FirstName:       "Ramon",
			LastName:        "Villareal",
			Email:           "ramon.villareal@sorsu-bulan.edu.ph",
			Department:      "Business Administration",
			Position:        "Associate Professor",
			Status:          models.FacultyStatusOnLeave,
			Specializations: []string{"Financial Management"},
			Education:       []string{"BSBA, SorSU", "MBA, Ateneo de Naga"},
		},
	}
}

// AnnouncementSeed returns the default announcements.
func AnnouncementSeed() []models.Announcement {
	return []models.Announcement{
		{
			ID:          "ann-001",
			Title:       "Enrollment for Second Semester Now Open",
			Content:     "Enrollment for the second semester of AY 2025-2026 is now open. Visit the registrar or enroll online through the student portal.",
			Category:    "Academic",
			Priority:    models.AnnouncementPriorityHigh,
			Audience:    "Students",
			Status:      models.AnnouncementStatusPublished,
			PublishDate: time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC),
			Author:      "Office of the Registrar",
			IsPinned:    true,
		},
		{
			ID:          "ann-002",
			Title:       "Campus Wi-Fi Maintenance",
			Content:     "Campus Wi-Fi will be intermittent on November 15 from 1:00 PM to 5:00 PM due to scheduled maintenance.",
			Category:    "Facilities",
			Priority:    models.AnnouncementPriorityMedium,
			Audience:    "All",
			Status:      models.AnnouncementStatusPublished,
			PublishDate: time.Date(2025, time.November, 10, 9, 0, 0, 0, time.UTC),
			Author:      "ICT Office",
		},
		{
			ID:          "ann-003",
			Title:       "Draft: Intramurals Schedule",
			Content:     "Working draft of the intramurals schedule pending approval.",
			Category:    "Sports",
			Priority:    models.AnnouncementPriorityLow,
			Audience:    "Students",
			Status:      models.AnnouncementStatusDraft,
			PublishDate: time.Date(2025, time.December, 1, 8, 0, 0, 0, time.UTC),
			Author:      "Sports Coordinator",
		},
	}
}

// EventSeed returns the default events.
func EventSeed() []models.Event {
	return []models.Event{
		{
			ID:           "evt-001",
			Title:        "Research Colloquium 2025",
			Description:  "Annual presentation of faculty and student research outputs.",
			Date:         "2025-12-05",
			Time:         "09:00",
			Location:     "Audio-Visual Room",
			Category:     "Academic",
			MaxAttendees: 150,
			Status:       models.EventStatusPublished,
			Organizer:    "Research Office",
			IsPublic:     true,
			Featured:     true,
		},
		{
			ID:                   "evt-002",
			Title:                "Foundation Day Celebration",
			Description:          "Campus-wide celebration with booths, performances, and alumni homecoming.",
			Date:                 "2026-01-20",
			Time:                 "08:00",
			Location:             "Campus Grounds",
			Category:             "Cultural",
			MaxAttendees:         1000,
			Status:               models.EventStatusPublished,
			Organizer:            "Student Affairs",
			RegistrationRequired: false,
			IsPublic:             true,
		},
		{
			ID:           "evt-003",
			Title:        "Faculty Planning Workshop",
			Description:  "Internal planning workshop for the upcoming academic year.",
			Date:         "2026-02-10",
			Time:         "13:00",
			Location:     "Conference Room",
			Category:     "Administrative",
			MaxAttendees: 40,
			Status:       models.EventStatusPublished,
			Organizer:    "Office of the Campus Director",
			IsPublic:     false,
		},
	}
}

// CalendarSeed returns the default academic calendar.
func CalendarSeed() []models.CalendarItem {
	return []models.CalendarItem{
		{
			ID:             "cal-001",
			Title:          "Second Semester Classes Begin",
			Description:    "First day of classes for the second semester, AY 2025-2026.",
			StartDate:      "2026-01-06",
			EndDate:        "2026-01-06",
			Category:       "Academic",
			Type:           "Semester",
			Priority:       "High",
			AffectedGroups: []string{"Students", "Faculty"},
			Color:          "blue",
		},
		{
			ID:             "cal-002",
			Title:          "Midterm Examinations",
			Description:    "Midterm examination week for all programs.",
			StartDate:      "2026-03-02",
			EndDate:        "2026-03-06",
			Category:       "Academic",
			Type:           "Examination",
			Priority:       "High",
			AffectedGroups: []string{"Students"},
			Color:          "red",
		},
		{
			ID:               "cal-003",
			Title:            "Monthly Faculty Meeting",
			Description:      "Regular faculty meeting, first Friday of the month.",
			StartDate:        "2026-01-09",
			EndDate:          "2026-01-09",
			Category:         "Administrative",
			Type:             "Meeting",
			Priority:         "Medium",
			IsRecurring:      true,
			RecurringPattern: "monthly",
			AffectedGroups:   []string{"Faculty"},
			Color:            "green",
		},
	}
}
