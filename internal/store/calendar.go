package store

import (
	"go.uber.org/zap"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

// CalendarStore owns the academic calendar collection.
type CalendarStore struct {
	c *Collection[models.CalendarItem]
}

// NewCalendarStore loads or seeds the calendar collection.
func NewCalendarStore(kv KV, logger *zap.Logger) *CalendarStore {
	return &CalendarStore{c: NewCollection(kv, KeyCalendar, CalendarSeed(), false, logger)}
}

// CalendarPatch is a shallow-merge patch; nil fields keep the current value.
type CalendarPatch struct {
	Title            *string   `json:"title,omitempty"`
	Description      *string   `json:"description,omitempty"`
	StartDate        *string   `json:"startDate,omitempty"`
	EndDate          *string   `json:"endDate,omitempty"`
	Category         *string   `json:"category,omitempty"`
	Type             *string   `json:"type,omitempty"`
	Priority         *string   `json:"priority,omitempty"`
	IsRecurring      *bool     `json:"isRecurring,omitempty"`
	RecurringPattern *string   `json:"recurringPattern,omitempty"`
	AffectedGroups   *[]string `json:"affectedGroups,omitempty"`
	Color            *string   `json:"color,omitempty"`
}

func (p CalendarPatch) apply(item models.CalendarItem) models.CalendarItem {
	setString(&item.Title, p.Title)
	setString(&item.Description, p.Description)
	setString(&item.StartDate, p.StartDate)
	setString(&item.EndDate, p.EndDate)
	setString(&item.Category, p.Category)
	setString(&item.Type, p.Type)
	setString(&item.Priority, p.Priority)
	setBool(&item.IsRecurring, p.IsRecurring)
	setString(&item.RecurringPattern, p.RecurringPattern)
	setStrings(&item.AffectedGroups, p.AffectedGroups)
	setString(&item.Color, p.Color)
	return item
}

// All returns the collection, newest first.
func (s *CalendarStore) All() []models.CalendarItem { return s.c.All() }

// Add prepends a fully-formed calendar item.
func (s *CalendarStore) Add(item models.CalendarItem) { s.c.Add(item) }

// Update shallow-merges patch over every record matching id.
func (s *CalendarStore) Update(id string, patch CalendarPatch) { s.c.Update(id, patch.apply) }

// Delete removes every record matching id.
func (s *CalendarStore) Delete(id string) { s.c.Delete(id) }

// GetByID returns the first record matching id.
func (s *CalendarStore) GetByID(id string) (models.CalendarItem, bool) { return s.c.GetByID(id) }
