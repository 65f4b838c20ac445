package store

import (
	"go.uber.org/zap"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

// EventStore owns the event collection.
type EventStore struct {
	c *Collection[models.Event]
}

// NewEventStore loads or seeds the event collection.
func NewEventStore(kv KV, logger *zap.Logger) *EventStore {
	return &EventStore{c: NewCollection(kv, KeyEvents, EventSeed(), false, logger)}
}

// EventPatch is a shallow-merge patch; nil fields keep the current value.
type EventPatch struct {
	Title                *string             `json:"title,omitempty"`
	Description          *string             `json:"description,omitempty"`
	Date                 *string             `json:"date,omitempty"`
	Time                 *string             `json:"time,omitempty"`
	StartDate            *string             `json:"startDate,omitempty"`
	StartTime            *string             `json:"startTime,omitempty"`
	EndDate              *string             `json:"endDate,omitempty"`
	EndTime              *string             `json:"endTime,omitempty"`
	Location             *string             `json:"location,omitempty"`
	Category             *string             `json:"category,omitempty"`
	MaxAttendees         *int                `json:"maxAttendees,omitempty"`
	CurrentAttendees     *int                `json:"currentAttendees,omitempty"`
	Status               *models.EventStatus `json:"status,omitempty"`
	Organizer            *string             `json:"organizer,omitempty"`
	RegistrationRequired *bool               `json:"registrationRequired,omitempty"`
	RegistrationDeadline *string             `json:"registrationDeadline,omitempty"`
	ContactEmail         *string             `json:"contactEmail,omitempty"`
	Website              *string             `json:"website,omitempty"`
	IsPublic             *bool               `json:"isPublic,omitempty"`
	Tags                 *[]string           `json:"tags,omitempty"`
	Featured             *bool               `json:"featured,omitempty"`
}

func (p EventPatch) apply(e models.Event) models.Event {
	setString(&e.Title, p.Title)
	setString(&e.Description, p.Description)
	setString(&e.Date, p.Date)
	setString(&e.Time, p.Time)
	setString(&e.StartDate, p.StartDate)
	setString(&e.StartTime, p.StartTime)
	setString(&e.EndDate, p.EndDate)
	setString(&e.EndTime, p.EndTime)
	setString(&e.Location, p.Location)
	setString(&e.Category, p.Category)
	setInt(&e.MaxAttendees, p.MaxAttendees)
	setInt(&e.CurrentAttendees, p.CurrentAttendees)
	if p.Status != nil {
		e.Status = *p.Status
	}
	setString(&e.Organizer, p.Organizer)
	setBool(&e.RegistrationRequired, p.RegistrationRequired)
	setString(&e.RegistrationDeadline, p.RegistrationDeadline)
	setString(&e.ContactEmail, p.ContactEmail)
	setString(&e.Website, p.Website)
	setBool(&e.IsPublic, p.IsPublic)
	setStrings(&e.Tags, p.Tags)
	setBool(&e.Featured, p.Featured)
	return e
}

// All returns the collection, newest first.
func (s *EventStore) All() []models.Event { return s.c.All() }

// Add prepends a fully-formed event.
func (s *EventStore) Add(e models.Event) { s.c.Add(e) }

// Update shallow-merges patch over every record matching id.
func (s *EventStore) Update(id string, patch EventPatch) { s.c.Update(id, patch.apply) }

// UpdateStatus is the first-class status transition used by admin actions
// such as cancelling an event. Equivalent to an Update carrying only status.
func (s *EventStore) UpdateStatus(id string, status models.EventStatus) {
	s.c.Update(id, func(e models.Event) models.Event {
		e.Status = status
		return e
	})
}

// Delete removes every record matching id.
func (s *EventStore) Delete(id string) { s.c.Delete(id) }

// GetByID returns the first record matching id.
func (s *EventStore) GetByID(id string) (models.Event, bool) { return s.c.GetByID(id) }
