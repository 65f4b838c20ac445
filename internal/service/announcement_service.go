package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sorsu-bulan/campus-content-api/internal/dto"
	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/store"
	appErrors "github.com/sorsu-bulan/campus-content-api/pkg/errors"
)

const announcementCachePrefix = "public:announcements"

type announcementStore interface {
	All() []models.Announcement
	Add(a models.Announcement)
	Update(id string, patch store.AnnouncementPatch)
	Delete(id string)
	GetByID(id string) (models.Announcement, bool)
	IncrementViews(id string)
}

// CreateAnnouncementRequest is the admin payload for authoring announcements.
type CreateAnnouncementRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Content        string     `json:"content" validate:"required"`
	Category       string     `json:"category" validate:"required"`
	Priority       string     `json:"priority" validate:"required,oneof=Low Medium High Critical"`
	Audience       string     `json:"audience" validate:"required"`
	Status         string     `json:"status" validate:"required,oneof=Draft Scheduled Published Expired"`
	PublishDate    time.Time  `json:"publishDate" validate:"required"`
	ExpiryDate     *time.Time `json:"expiryDate"`
	Author         string     `json:"author" validate:"required"`
	Type           string     `json:"type"`
	TargetAudience string     `json:"targetAudience"`
	IsPinned       bool       `json:"isPinned"`
	Tags           []string   `json:"tags"`
}

// UpdateAnnouncementRequest is a partial patch; absent fields keep their value.
type UpdateAnnouncementRequest struct {
	Title          *string    `json:"title" validate:"omitempty,max=200"`
	Content        *string    `json:"content"`
	Category       *string    `json:"category"`
	Priority       *string    `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
	Audience       *string    `json:"audience"`
	Status         *string    `json:"status" validate:"omitempty,oneof=Draft Scheduled Published Expired"`
	PublishDate    *time.Time `json:"publishDate"`
	ExpiryDate     *time.Time `json:"expiryDate"`
	Author         *string    `json:"author"`
	Type           *string    `json:"type"`
	TargetAudience *string    `json:"targetAudience"`
	IsPinned       *bool      `json:"isPinned"`
	Tags           *[]string  `json:"tags"`
}

// AnnouncementService owns announcement authoring and the public listing.
type AnnouncementService struct {
	store     announcementStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(st announcementStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{store: st, cache: cache, validator: validate, logger: logger, now: time.Now}
}

// List returns the raw admin-shape collection, optionally filtered by status.
func (s *AnnouncementService) List(status string) []models.Announcement {
	items := s.store.All()
	if status == "" || status == "All" {
		return items
	}
	filtered := make([]models.Announcement, 0, len(items))
	for _, a := range items {
		if string(a.Status) == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Get returns an announcement by id.
func (s *AnnouncementService) Get(id string) (*models.Announcement, error) {
	a, ok := s.store.GetByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	return &a, nil
}

// Create authors a new announcement. The service assigns the id.
func (s *AnnouncementService) Create(ctx context.Context, req CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	a := models.Announcement{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(req.Title),
		Content:        req.Content,
		Category:       req.Category,
		Priority:       models.AnnouncementPriority(req.Priority),
		Audience:       req.Audience,
		Status:         models.AnnouncementStatus(req.Status),
		PublishDate:    req.PublishDate,
		ExpiryDate:     req.ExpiryDate,
		Author:         req.Author,
		Type:           req.Type,
		TargetAudience: req.TargetAudience,
		IsPinned:       req.IsPinned,
		Tags:           req.Tags,
	}
	s.store.Add(a)
	s.invalidate(ctx)
	return &a, nil
}

// Update applies a partial patch to an existing announcement.
func (s *AnnouncementService) Update(ctx context.Context, id string, req UpdateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	if _, ok := s.store.GetByID(id); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	patch := store.AnnouncementPatch{
		Title:          req.Title,
		Content:        req.Content,
		Category:       req.Category,
		Audience:       req.Audience,
		PublishDate:    req.PublishDate,
		ExpiryDate:     req.ExpiryDate,
		Author:         req.Author,
		Type:           req.Type,
		TargetAudience: req.TargetAudience,
		IsPinned:       req.IsPinned,
		Tags:           req.Tags,
	}
	if req.Priority != nil {
		priority := models.AnnouncementPriority(*req.Priority)
		patch.Priority = &priority
	}
	if req.Status != nil {
		status := models.AnnouncementStatus(*req.Status)
		patch.Status = &status
	}
	s.store.Update(id, patch)
	s.invalidate(ctx)
	a, _ := s.store.GetByID(id)
	return &a, nil
}

// Delete removes an announcement. Deleting an unknown id is a no-op.
func (s *AnnouncementService) Delete(ctx context.Context, id string) {
	s.store.Delete(id)
	s.invalidate(ctx)
}

// IncrementViews bumps the view counter when a public reader opens the
// announcement.
func (s *AnnouncementService) IncrementViews(ctx context.Context, id string) error {
	if _, ok := s.store.GetByID(id); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	s.store.IncrementViews(id)
	s.invalidate(ctx)
	return nil
}

// PublicList returns the projected, filtered and ordered announcements for
// the public site.
func (s *AnnouncementService) PublicList(ctx context.Context, query models.AnnouncementQuery) []dto.PublicAnnouncement {
	cacheKey := fmt.Sprintf("%s:%s:%s", announcementCachePrefix, strings.ToLower(query.Search), query.Category)
	var cached []dto.PublicAnnouncement
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached
	}

	now := s.now()
	visible := make([]models.Announcement, 0)
	for _, a := range s.store.All() {
		if !announcementVisible(a, now) {
			continue
		}
		if !matchesAnnouncement(a, query) {
			continue
		}
		visible = append(visible, a)
	}
	sortAnnouncements(visible)

	result := make([]dto.PublicAnnouncement, 0, len(visible))
	for _, a := range visible {
		result = append(result, dto.NewPublicAnnouncement(a))
	}
	s.cache.Set(ctx, cacheKey, result)
	return result
}

// PublicGet returns one projected announcement, enforcing the publish gate.
func (s *AnnouncementService) PublicGet(id string) (*dto.PublicAnnouncement, error) {
	a, ok := s.store.GetByID(id)
	if !ok || !announcementVisible(a, s.now()) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	view := dto.NewPublicAnnouncement(a)
	return &view, nil
}

func (s *AnnouncementService) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, announcementCachePrefix+":*")
}

// announcementVisible is the publish gate: Published and not expired.
func announcementVisible(a models.Announcement, now time.Time) bool {
	if a.Status != models.AnnouncementStatusPublished {
		return false
	}
	if a.ExpiryDate != nil && a.ExpiryDate.Before(now) {
		return false
	}
	return true
}

func matchesAnnouncement(a models.Announcement, query models.AnnouncementQuery) bool {
	if query.Category != "" && query.Category != "All" && a.Category != query.Category {
		return false
	}
	if query.Search == "" {
		return true
	}
	needle := strings.ToLower(query.Search)
	if strings.Contains(strings.ToLower(a.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Content), needle) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// sortAnnouncements orders pinned items first, then by priority rank, then by
// publish date, most recent first. The sort is stable so equal items keep
// their collection order.
func sortAnnouncements(items []models.Announcement) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		ra, rb := priorityRank(a.Priority), priorityRank(b.Priority)
		if ra != rb {
			return ra > rb
		}
		return a.PublishDate.After(b.PublishDate)
	})
}

// priorityRank is the fixed ordering table. Values outside High/Medium/Low
// (Critical included) rank zero, preserving parity with the public site.
func priorityRank(p models.AnnouncementPriority) int {
	switch p {
	case models.AnnouncementPriorityHigh:
		return 3
	case models.AnnouncementPriorityMedium:
		return 2
	case models.AnnouncementPriorityLow:
		return 1
	default:
		return 0
	}
}
