package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

// AnnouncementStore owns the announcement collection.
type AnnouncementStore struct {
	c *Collection[models.Announcement]
}

// NewAnnouncementStore loads or seeds the announcement collection. Unlike
// faculty, an empty persisted array is a valid state here.
func NewAnnouncementStore(kv KV, logger *zap.Logger) *AnnouncementStore {
	return &AnnouncementStore{c: NewCollection(kv, KeyAnnouncements, AnnouncementSeed(), false, logger)}
}

// AnnouncementPatch is a shallow-merge patch; nil fields keep the current value.
type AnnouncementPatch struct {
	Title          *string                      `json:"title,omitempty"`
	Content        *string                      `json:"content,omitempty"`
	Category       *string                      `json:"category,omitempty"`
	Priority       *models.AnnouncementPriority `json:"priority,omitempty"`
	Audience       *string                      `json:"audience,omitempty"`
	Status         *models.AnnouncementStatus   `json:"status,omitempty"`
	PublishDate    *time.Time                   `json:"publishDate,omitempty"`
	ExpiryDate     *time.Time                   `json:"expiryDate,omitempty"`
	Author         *string                      `json:"author,omitempty"`
	Type           *string                      `json:"type,omitempty"`
	TargetAudience *string                      `json:"targetAudience,omitempty"`
	IsPinned       *bool                        `json:"isPinned,omitempty"`
	Tags           *[]string                    `json:"tags,omitempty"`
}

func (p AnnouncementPatch) apply(a models.Announcement) models.Announcement {
	setString(&a.Title, p.Title)
	setString(&a.Content, p.Content)
	setString(&a.Category, p.Category)
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	setString(&a.Audience, p.Audience)
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.PublishDate != nil {
		a.PublishDate = *p.PublishDate
	}
	if p.ExpiryDate != nil {
		expiry := *p.ExpiryDate
		a.ExpiryDate = &expiry
	}
	setString(&a.Author, p.Author)
	setString(&a.Type, p.Type)
	setString(&a.TargetAudience, p.TargetAudience)
	setBool(&a.IsPinned, p.IsPinned)
	setStrings(&a.Tags, p.Tags)
	return a
}

// All returns the collection, newest first.
func (s *AnnouncementStore) All() []models.Announcement { return s.c.All() }

// Add prepends a fully-formed announcement.
func (s *AnnouncementStore) Add(a models.Announcement) { s.c.Add(a) }

// Update shallow-merges patch over every record matching id.
func (s *AnnouncementStore) Update(id string, patch AnnouncementPatch) { s.c.Update(id, patch.apply) }

// Delete removes every record matching id.
func (s *AnnouncementStore) Delete(id string) { s.c.Delete(id) }

// GetByID returns the first record matching id.
func (s *AnnouncementStore) GetByID(id string) (models.Announcement, bool) { return s.c.GetByID(id) }

// IncrementViews bumps the view counter by exactly one, leaving every other
// field untouched. Called when a public reader opens the announcement.
func (s *AnnouncementStore) IncrementViews(id string) {
	s.c.Update(id, func(a models.Announcement) models.Announcement {
		a.Views++
		return a
	})
}
