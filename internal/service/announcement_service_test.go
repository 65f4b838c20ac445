package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/store"
)

// memKV is a throwaway storage backend for wiring real stores in tests.
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
}

func newAnnouncementService(t *testing.T, seed []models.Announcement) (*AnnouncementService, *store.AnnouncementStore) {
	t.Helper()
	kv := newMemKV()
	// Start from an explicit empty document so tests control the collection.
	kv.data[store.KeyAnnouncements] = []byte("[]")
	st := store.NewAnnouncementStore(kv, nil)
	for i := len(seed) - 1; i >= 0; i-- {
		st.Add(seed[i])
	}
	svc := NewAnnouncementService(st, nil, nil, nil)
	svc.now = fixedNow
	return svc, st
}

func publishedAnnouncement(id string, priority models.AnnouncementPriority, pinned bool, published time.Time) models.Announcement {
	return models.Announcement{
		ID:          id,
		Title:       "title " + id,
		Content:     "content",
		Category:    "Academic",
		Priority:    priority,
		Status:      models.AnnouncementStatusPublished,
		PublishDate: published,
		IsPinned:    pinned,
	}
}

func TestAnnouncementPublicListGate(t *testing.T) {
	expired := fixedNow().Add(-time.Hour)
	svc, _ := newAnnouncementService(t, []models.Announcement{
		publishedAnnouncement("visible", models.AnnouncementPriorityLow, false, fixedNow().Add(-48*time.Hour)),
		{ID: "draft", Status: models.AnnouncementStatusDraft},
		{ID: "expired", Status: models.AnnouncementStatusPublished, ExpiryDate: &expired},
	})

	items := svc.PublicList(context.Background(), models.AnnouncementQuery{})

	require.Len(t, items, 1)
	assert.Equal(t, "visible", items[0].ID)
}

func TestAnnouncementPublicListOrder(t *testing.T) {
	base := fixedNow().Add(-72 * time.Hour)
	svc, _ := newAnnouncementService(t, []models.Announcement{
		publishedAnnouncement("recent-low", models.AnnouncementPriorityLow, false, base.Add(48*time.Hour)),
		publishedAnnouncement("old-high", models.AnnouncementPriorityHigh, false, base),
		publishedAnnouncement("pinned-low", models.AnnouncementPriorityLow, true, base),
	})

	items := svc.PublicList(context.Background(), models.AnnouncementQuery{})

	require.Len(t, items, 3)
	assert.Equal(t, "pinned-low", items[0].ID)
	assert.Equal(t, "old-high", items[1].ID)
	assert.Equal(t, "recent-low", items[2].ID)
}

func TestAnnouncementCriticalRanksBelowLow(t *testing.T) {
	base := fixedNow().Add(-72 * time.Hour)
	svc, _ := newAnnouncementService(t, []models.Announcement{
		publishedAnnouncement("critical", models.AnnouncementPriorityCritical, false, base.Add(time.Hour)),
		publishedAnnouncement("low", models.AnnouncementPriorityLow, false, base),
	})

	items := svc.PublicList(context.Background(), models.AnnouncementQuery{})

	require.Len(t, items, 2)
	assert.Equal(t, "low", items[0].ID)
	assert.Equal(t, "critical", items[1].ID)
}

func TestAnnouncementPublicListSearchAndCategory(t *testing.T) {
	a := publishedAnnouncement("a1", models.AnnouncementPriorityLow, false, fixedNow().Add(-time.Hour))
	a.Title = "Enrollment period extended"
	b := publishedAnnouncement("b1", models.AnnouncementPriorityLow, false, fixedNow().Add(-time.Hour))
	b.Category = "Sports"
	svc, _ := newAnnouncementService(t, []models.Announcement{a, b})

	bySearch := svc.PublicList(context.Background(), models.AnnouncementQuery{Search: "ENROLLMENT"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "a1", bySearch[0].ID)

	byCategory := svc.PublicList(context.Background(), models.AnnouncementQuery{Category: "Sports"})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "b1", byCategory[0].ID)

	all := svc.PublicList(context.Background(), models.AnnouncementQuery{Category: "All"})
	assert.Len(t, all, 2)
}

func TestAnnouncementPublicGetEnforcesGate(t *testing.T) {
	svc, _ := newAnnouncementService(t, []models.Announcement{
		{ID: "draft", Status: models.AnnouncementStatusDraft},
	})

	_, err := svc.PublicGet("draft")
	assert.Error(t, err)

	_, err = svc.PublicGet("missing")
	assert.Error(t, err)
}

func TestAnnouncementIncrementViews(t *testing.T) {
	svc, st := newAnnouncementService(t, []models.Announcement{
		publishedAnnouncement("a1", models.AnnouncementPriorityLow, false, fixedNow()),
	})

	require.NoError(t, svc.IncrementViews(context.Background(), "a1"))
	require.NoError(t, svc.IncrementViews(context.Background(), "a1"))

	a, ok := st.GetByID("a1")
	require.True(t, ok)
	assert.Equal(t, 2, a.Views)

	assert.Error(t, svc.IncrementViews(context.Background(), "missing"))
}

func TestAnnouncementCreateValidatesPayload(t *testing.T) {
	svc, _ := newAnnouncementService(t, nil)

	_, err := svc.Create(context.Background(), CreateAnnouncementRequest{Title: "no content"})
	assert.Error(t, err)

	created, err := svc.Create(context.Background(), CreateAnnouncementRequest{
		Title:       "Orientation schedule",
		Content:     "details",
		Category:    "Academic",
		Priority:    "High",
		Audience:    "Students",
		Status:      "Published",
		PublishDate: fixedNow(),
		Author:      "Registrar",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestAnnouncementUpdateMissingIDFails(t *testing.T) {
	svc, _ := newAnnouncementService(t, nil)

	title := "new"
	_, err := svc.Update(context.Background(), "missing", UpdateAnnouncementRequest{Title: &title})
	assert.Error(t, err)
}
