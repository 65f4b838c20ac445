// Package dto defines the public-facing view shapes and the pure projections
// that build them from admin-authored records. Projections are deterministic
// and never touch a store.
package dto

import (
	"strings"
	"time"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

// contactEmailDomain is appended when deriving an event contact address from
// its organizer.
const contactEmailDomain = "sorsu-bulan.edu.ph"

// PublicAnnouncement is the announcement shape served to the public site.
type PublicAnnouncement struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Category       string     `json:"category"`
	Priority       string     `json:"priority"`
	PublishDate    time.Time  `json:"publishDate"`
	ExpiryDate     *time.Time `json:"expiryDate,omitempty"`
	Author         string     `json:"author"`
	Views          int        `json:"views"`
	Type           string     `json:"type"`
	TargetAudience string     `json:"targetAudience"`
	IsPinned       bool       `json:"isPinned"`
	Tags           []string   `json:"tags"`
}

// NewPublicAnnouncement resolves the compatibility fields: type falls back to
// category, targetAudience to audience, tags to an empty list.
func NewPublicAnnouncement(a models.Announcement) PublicAnnouncement {
	view := PublicAnnouncement{
		ID:             a.ID,
		Title:          a.Title,
		Content:        a.Content,
		Category:       a.Category,
		Priority:       string(a.Priority),
		PublishDate:    a.PublishDate,
		ExpiryDate:     a.ExpiryDate,
		Author:         a.Author,
		Views:          a.Views,
		Type:           a.Type,
		TargetAudience: a.TargetAudience,
		IsPinned:       a.IsPinned,
		Tags:           a.Tags,
	}
	if view.Type == "" {
		view.Type = a.Category
	}
	if view.TargetAudience == "" {
		view.TargetAudience = a.Audience
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	return view
}

// PublicEvent is the event shape served to the public site, with the dual
// date/time naming reconciled.
type PublicEvent struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	StartDate            string   `json:"startDate"`
	StartTime            string   `json:"startTime"`
	EndDate              string   `json:"endDate,omitempty"`
	EndTime              string   `json:"endTime,omitempty"`
	Location             string   `json:"location"`
	Category             string   `json:"category"`
	Type                 string   `json:"type"`
	Capacity             int      `json:"capacity"`
	CurrentAttendees     int      `json:"currentAttendees"`
	Organizer            string   `json:"organizer"`
	RegistrationRequired bool     `json:"registrationRequired"`
	RegistrationDeadline string   `json:"registrationDeadline,omitempty"`
	ContactEmail         string   `json:"contactEmail"`
	Website              string   `json:"website,omitempty"`
	Tags                 []string `json:"tags"`
	Featured             bool     `json:"featured"`
}

// NewPublicEvent prefers the dedicated startDate/startTime fields over the
// legacy date/time pair, takes capacity from maxAttendees when unset, and
// derives a contact address from the organizer when none is given.
func NewPublicEvent(e models.Event) PublicEvent {
	view := PublicEvent{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		StartDate:            e.EffectiveStartDate(),
		StartTime:            e.EffectiveStartTime(),
		EndDate:              e.EndDate,
		EndTime:              e.EndTime,
		Location:             e.Location,
		Category:             e.Category,
		Type:                 e.Type,
		CurrentAttendees:     e.CurrentAttendees,
		Organizer:            e.Organizer,
		RegistrationRequired: e.RegistrationRequired,
		RegistrationDeadline: e.RegistrationDeadline,
		ContactEmail:         e.ContactEmail,
		Website:              e.Website,
		Tags:                 e.Tags,
		Featured:             e.Featured,
	}
	if view.Type == "" {
		view.Type = e.Category
	}
	if e.Capacity != nil {
		view.Capacity = *e.Capacity
	} else {
		view.Capacity = e.MaxAttendees
	}
	if view.ContactEmail == "" {
		view.ContactEmail = deriveContactEmail(e.Organizer)
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	return view
}

func deriveContactEmail(organizer string) string {
	local := strings.ToLower(strings.ReplaceAll(organizer, " ", ""))
	return local + "@" + contactEmailDomain
}

// FacultyProfile is the faculty shape served in the public directory.
type FacultyProfile struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Position          string   `json:"position"`
	Department        string   `json:"department"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone,omitempty"`
	Office            string   `json:"office,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	Specializations   []string `json:"specializations"`
	Education         string   `json:"education"`
	Achievements      []string `json:"achievements"`
	ProfileImage      string   `json:"profileImage,omitempty"`
	Website           string   `json:"website,omitempty"`
	ResearchInterests []string `json:"researchInterests,omitempty"`
	EmploymentStatus  string   `json:"employmentStatus"`
	YearsOfExperience int      `json:"yearsOfExperience"`
}

// NewFacultyProfile joins the name, flattens education into a semicolon list,
// maps Active status to "Regular" employment, and defaults the experience
// figure to five years when unset.
func NewFacultyProfile(f models.Faculty) FacultyProfile {
	profile := FacultyProfile{
		ID:                f.ID,
		Name:              f.FullName(),
		Position:          f.Position,
		Department:        f.Department,
		Email:             f.Email,
		Phone:             f.Phone,
		Office:            f.Office,
		Bio:               f.Bio,
		Specializations:   f.Specializations,
		Education:         strings.Join(f.Education, "; "),
		Achievements:      f.Awards,
		ProfileImage:      f.ProfileImage,
		Website:           f.Website,
		ResearchInterests: f.ResearchInterests,
		YearsOfExperience: 5,
	}
	if f.Status == models.FacultyStatusActive {
		profile.EmploymentStatus = "Regular"
	} else {
		profile.EmploymentStatus = string(f.Status)
	}
	if f.YearsOfExperience != nil {
		profile.YearsOfExperience = *f.YearsOfExperience
	}
	if profile.Specializations == nil {
		profile.Specializations = []string{}
	}
	if profile.Achievements == nil {
		profile.Achievements = []string{}
	}
	return profile
}
