package models

// EventStatus models the event lifecycle. Public visibility requires
// Published together with IsPublic.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "Draft"
	EventStatusPublished EventStatus = "Published"
	EventStatusCancelled EventStatus = "Cancelled"
	EventStatusCompleted EventStatus = "Completed"
)

// Event carries both the legacy date/time fields and the newer
// startDate/startTime pair. Admin forms write the legacy pair; the public
// projection prefers the dedicated pair when set and falls back otherwise.
// Dates use YYYY-MM-DD and times HH:MM, matching the persisted documents.
type Event struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Date                 string      `json:"date"`
	Time                 string      `json:"time"`
	StartDate            string      `json:"startDate,omitempty"`
	StartTime            string      `json:"startTime,omitempty"`
	EndDate              string      `json:"endDate,omitempty"`
	EndTime              string      `json:"endTime,omitempty"`
	Location             string      `json:"location"`
	Category             string      `json:"category"`
	MaxAttendees         int         `json:"maxAttendees"`
	CurrentAttendees     int         `json:"currentAttendees"`
	Status               EventStatus `json:"status"`
	Organizer            string      `json:"organizer"`
	RegistrationRequired bool        `json:"registrationRequired"`
	RegistrationDeadline string      `json:"registrationDeadline,omitempty"`
	ContactEmail         string      `json:"contactEmail,omitempty"`
	Website              string      `json:"website,omitempty"`
	IsPublic             bool        `json:"isPublic"`
	Tags                 []string    `json:"tags,omitempty"`
	Featured             bool        `json:"featured,omitempty"`
	Type                 string      `json:"type,omitempty"`
	Capacity             *int        `json:"capacity,omitempty"`
}

// EntityID implements store.Entity.
func (e Event) EntityID() string { return e.ID }

// EffectiveStartDate prefers the dedicated startDate and falls back to the
// legacy date field.
func (e Event) EffectiveStartDate() string {
	if e.StartDate != "" {
		return e.StartDate
	}
	return e.Date
}

// EffectiveStartTime prefers the dedicated startTime and falls back to the
// legacy time field.
func (e Event) EffectiveStartTime() string {
	if e.StartTime != "" {
		return e.StartTime
	}
	return e.Time
}

// EventQuery captures the public listing filter state.
type EventQuery struct {
	Search   string
	Category string
}
