package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

type memKV struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func TestCollectionSeedsWhenDocumentMissing(t *testing.T) {
	kv := newMemKV()
	c := NewCollection(kv, "test", []models.CalendarItem{{ID: "c1", Title: "Enrollment"}}, false, nil)

	require.Equal(t, 1, c.Len())
	item, ok := c.GetByID("c1")
	require.True(t, ok)
	assert.Equal(t, "Enrollment", item.Title)
}

func TestCollectionSeedsWhenDocumentCorrupt(t *testing.T) {
	kv := newMemKV()
	kv.data["test"] = []byte("{not json")

	c := NewCollection(kv, "test", []models.CalendarItem{{ID: "c1"}}, false, nil)
	assert.Equal(t, 1, c.Len())
}

func TestCollectionSeedsWhenReadFails(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk gone")

	c := NewCollection(kv, "test", []models.CalendarItem{{ID: "c1"}}, false, nil)
	assert.Equal(t, 1, c.Len())
}

func TestCollectionEmptyDocumentHonoredUnlessRejected(t *testing.T) {
	kv := newMemKV()
	kv.data["test"] = []byte("[]")

	kept := NewCollection(kv, "test", []models.CalendarItem{{ID: "c1"}}, false, nil)
	assert.Equal(t, 0, kept.Len())

	rejected := NewCollection(kv, "test", []models.CalendarItem{{ID: "c1"}}, true, nil)
	assert.Equal(t, 1, rejected.Len())
}

func TestCollectionAddPrependsAndPersists(t *testing.T) {
	kv := newMemKV()
	c := NewCollection(kv, "test", []models.CalendarItem{{ID: "c1"}}, false, nil)

	c.Add(models.CalendarItem{ID: "c2", Title: "Midterms"})

	items := c.All()
	require.Len(t, items, 2)
	assert.Equal(t, "c2", items[0].ID)

	// A fresh collection over the same storage sees the write-through copy.
	reloaded := NewCollection[models.CalendarItem](kv, "test", nil, false, nil)
	assert.Equal(t, 2, reloaded.Len())
	first, ok := reloaded.GetByID("c2")
	require.True(t, ok)
	assert.Equal(t, "Midterms", first.Title)
}

func TestCollectionUpdateAppliesToEveryMatch(t *testing.T) {
	kv := newMemKV()
	c := NewCollection(kv, "test", []models.CalendarItem{
		{ID: "dup", Title: "a"},
		{ID: "other", Title: "b"},
		{ID: "dup", Title: "c"},
	}, false, nil)

	c.Update("dup", func(item models.CalendarItem) models.CalendarItem {
		item.Title = "renamed"
		return item
	})

	items := c.All()
	assert.Equal(t, "renamed", items[0].Title)
	assert.Equal(t, "b", items[1].Title)
	assert.Equal(t, "renamed", items[2].Title)
}

func TestCollectionUpdateUnknownIDIsNoOp(t *testing.T) {
	kv := newMemKV()
	c := NewCollection(kv, "test", []models.CalendarItem{{ID: "c1", Title: "keep"}}, false, nil)

	c.Update("ghost", func(item models.CalendarItem) models.CalendarItem {
		item.Title = "changed"
		return item
	})

	item, _ := c.GetByID("c1")
	assert.Equal(t, "keep", item.Title)
}

func TestCollectionDeleteRemovesEveryMatch(t *testing.T) {
	kv := newMemKV()
	c := NewCollection(kv, "test", []models.CalendarItem{
		{ID: "dup"}, {ID: "other"}, {ID: "dup"},
	}, false, nil)

	c.Delete("dup")
	assert.Equal(t, 1, c.Len())

	// Deleting again is a silent no-op.
	c.Delete("dup")
	assert.Equal(t, 1, c.Len())
}

func TestCollectionSurvivesWriteFailures(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("disk full")
	c := NewCollection[models.CalendarItem](kv, "test", nil, false, nil)

	c.Add(models.CalendarItem{ID: "c1"})
	assert.Equal(t, 1, c.Len())
}

func TestAnnouncementStoreIncrementViews(t *testing.T) {
	kv := newMemKV()
	kv.data[KeyAnnouncements] = []byte(`[{"id":"a1","title":"x","views":0}]`)
	s := NewAnnouncementStore(kv, nil)

	for i := 0; i < 3; i++ {
		s.IncrementViews("a1")
	}

	a, ok := s.GetByID("a1")
	require.True(t, ok)
	assert.Equal(t, 3, a.Views)
}

func TestFacultyPatchShallowMerge(t *testing.T) {
	kv := newMemKV()
	kv.data[KeyFaculty] = []byte(`[{"id":"f1","firstName":"Ana","lastName":"Reyes","department":"IT","bio":"old"}]`)
	s := NewFacultyStore(kv, nil)

	bio := "new bio"
	specs := []string{"Networking"}
	s.Update("f1", FacultyPatch{Bio: &bio, Specializations: &specs})

	f, ok := s.GetByID("f1")
	require.True(t, ok)
	assert.Equal(t, "Ana", f.FirstName)
	assert.Equal(t, "IT", f.Department)
	assert.Equal(t, "new bio", f.Bio)
	assert.Equal(t, []string{"Networking"}, f.Specializations)
}

func TestEventStoreUpdateStatus(t *testing.T) {
	kv := newMemKV()
	kv.data[KeyEvents] = []byte(`[{"id":"e1","title":"Fair","status":"Published"}]`)
	s := NewEventStore(kv, nil)

	s.UpdateStatus("e1", models.EventStatusCancelled)

	e, ok := s.GetByID("e1")
	require.True(t, ok)
	assert.Equal(t, models.EventStatusCancelled, e.Status)
}

func TestUserStoreFindByEmailCaseInsensitive(t *testing.T) {
	kv := newMemKV()
	seed := []models.User{{ID: "u1", Email: "Admin@sorsu-bulan.edu.ph", Active: true}}
	s := NewUserStore(kv, seed, nil)

	u, ok := s.FindByEmail("admin@SORSU-BULAN.edu.ph")
	require.True(t, ok)
	assert.Equal(t, "u1", u.ID)

	_, ok = s.FindByEmail("nobody@sorsu-bulan.edu.ph")
	assert.False(t, ok)
}
