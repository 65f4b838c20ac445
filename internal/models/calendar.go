package models

// CalendarItem is an academic calendar entry. Calendar items carry no publish
// gate; every item is visible to whoever reads the collection. StartDate and
// EndDate use YYYY-MM-DD and may be equal for single-day items.
type CalendarItem struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Priority         string   `json:"priority"`
	IsRecurring      bool     `json:"isRecurring"`
	RecurringPattern string   `json:"recurringPattern,omitempty"`
	AffectedGroups   []string `json:"affectedGroups,omitempty"`
	Color            string   `json:"color,omitempty"`
}

// EntityID implements store.Entity.
func (c CalendarItem) EntityID() string { return c.ID }

// CalendarQuery captures the public calendar filter state.
type CalendarQuery struct {
	Search   string
	Category string
	Type     string
}
