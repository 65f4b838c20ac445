package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/store"
)

func newCalendarService(t *testing.T, seed []models.CalendarItem) (*CalendarService, *store.CalendarStore) {
	t.Helper()
	kv := newMemKV()
	kv.data[store.KeyCalendar] = []byte("[]")
	st := store.NewCalendarStore(kv, nil)
	for i := len(seed) - 1; i >= 0; i-- {
		st.Add(seed[i])
	}
	svc := NewCalendarService(st, nil, nil, nil)
	return svc, st
}

func TestCalendarPublicListOrderedByStartDate(t *testing.T) {
	svc, _ := newCalendarService(t, []models.CalendarItem{
		{ID: "late", Title: "Finals", StartDate: "2026-12-07", EndDate: "2026-12-12"},
		{ID: "early", Title: "Enrollment", StartDate: "2026-08-03", EndDate: "2026-08-14"},
		{ID: "mid", Title: "Midterms", StartDate: "2026-10-05", EndDate: "2026-10-09"},
	})

	items := svc.PublicList(context.Background(), models.CalendarQuery{})

	require.Len(t, items, 3)
	assert.Equal(t, "early", items[0].ID)
	assert.Equal(t, "mid", items[1].ID)
	assert.Equal(t, "late", items[2].ID)
}

func TestCalendarPublicListFilters(t *testing.T) {
	svc, _ := newCalendarService(t, []models.CalendarItem{
		{ID: "exam", Title: "Final Exams", StartDate: "2026-12-07", Category: "Examination", Type: "Academic"},
		{ID: "holiday", Title: "Founding Day", StartDate: "2026-10-12", Category: "Holiday", Type: "Institutional"},
	})

	byCategory := svc.PublicList(context.Background(), models.CalendarQuery{Category: "Holiday"})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "holiday", byCategory[0].ID)

	byType := svc.PublicList(context.Background(), models.CalendarQuery{Type: "Academic"})
	require.Len(t, byType, 1)
	assert.Equal(t, "exam", byType[0].ID)

	bySearch := svc.PublicList(context.Background(), models.CalendarQuery{Search: "founding"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "holiday", bySearch[0].ID)

	all := svc.PublicList(context.Background(), models.CalendarQuery{Category: "All", Type: "All"})
	assert.Len(t, all, 2)
}

func TestCalendarCRUD(t *testing.T) {
	svc, st := newCalendarService(t, nil)

	created, err := svc.Create(context.Background(), CreateCalendarItemRequest{
		Title:     "Graduation",
		StartDate: "2027-04-15",
		EndDate:   "2027-04-15",
		Category:  "Ceremony",
		Type:      "Institutional",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	title := "Commencement Exercises"
	updated, err := svc.Update(context.Background(), created.ID, UpdateCalendarItemRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Commencement Exercises", updated.Title)

	svc.Delete(context.Background(), created.ID)
	_, ok := st.GetByID(created.ID)
	assert.False(t, ok)
}

func TestCalendarCreateRejectsBadDates(t *testing.T) {
	svc, _ := newCalendarService(t, nil)

	_, err := svc.Create(context.Background(), CreateCalendarItemRequest{
		Title:     "Bad",
		StartDate: "next week",
		EndDate:   "2026-09-01",
		Category:  "Examination",
		Type:      "Academic",
	})
	assert.Error(t, err)
}
