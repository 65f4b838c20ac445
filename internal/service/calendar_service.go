package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/store"
	appErrors "github.com/sorsu-bulan/campus-content-api/pkg/errors"
)

const calendarCachePrefix = "public:calendar"

type calendarStore interface {
	All() []models.CalendarItem
	Add(item models.CalendarItem)
	Update(id string, patch store.CalendarPatch)
	Delete(id string)
	GetByID(id string) (models.CalendarItem, bool)
}

// CreateCalendarItemRequest is the admin payload for adding a calendar entry.
type CreateCalendarItemRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Description      string   `json:"description"`
	StartDate        string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	Category         string   `json:"category" validate:"required"`
	Type             string   `json:"type" validate:"required"`
	Priority         string   `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	IsRecurring      bool     `json:"isRecurring"`
	RecurringPattern string   `json:"recurringPattern"`
	AffectedGroups   []string `json:"affectedGroups"`
	Color            string   `json:"color"`
}

// UpdateCalendarItemRequest is a partial patch; absent fields keep their value.
type UpdateCalendarItemRequest struct {
	Title            *string   `json:"title" validate:"omitempty,max=200"`
	Description      *string   `json:"description"`
	StartDate        *string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Category         *string   `json:"category"`
	Type             *string   `json:"type"`
	Priority         *string   `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	IsRecurring      *bool     `json:"isRecurring"`
	RecurringPattern *string   `json:"recurringPattern"`
	AffectedGroups   *[]string `json:"affectedGroups"`
	Color            *string   `json:"color"`
}

// CalendarService owns the academic calendar. Calendar items have no publish
// gate, so the public listing differs from the admin one only in filtering
// and order.
type CalendarService struct {
	store     calendarStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCalendarService constructs the service.
func NewCalendarService(st calendarStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CalendarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{store: st, cache: cache, validator: validate, logger: logger}
}

// List returns the raw admin-shape collection.
func (s *CalendarService) List() []models.CalendarItem {
	return s.store.All()
}

// Get returns a calendar item by id.
func (s *CalendarService) Get(id string) (*models.CalendarItem, error) {
	item, ok := s.store.GetByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "calendar item not found")
	}
	return &item, nil
}

// Create adds a calendar item. The service assigns the id.
func (s *CalendarService) Create(ctx context.Context, req CreateCalendarItemRequest) (*models.CalendarItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid calendar payload")
	}
	item := models.CalendarItem{
		ID:               uuid.NewString(),
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Category:         req.Category,
		Type:             req.Type,
		Priority:         req.Priority,
		IsRecurring:      req.IsRecurring,
		RecurringPattern: req.RecurringPattern,
		AffectedGroups:   req.AffectedGroups,
		Color:            req.Color,
	}
	s.store.Add(item)
	s.invalidate(ctx)
	return &item, nil
}

// Update applies a partial patch to a calendar item.
func (s *CalendarService) Update(ctx context.Context, id string, req UpdateCalendarItemRequest) (*models.CalendarItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid calendar payload")
	}
	if _, ok := s.store.GetByID(id); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "calendar item not found")
	}
	patch := store.CalendarPatch{
		Title:            req.Title,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Category:         req.Category,
		Type:             req.Type,
		Priority:         req.Priority,
		IsRecurring:      req.IsRecurring,
		RecurringPattern: req.RecurringPattern,
		AffectedGroups:   req.AffectedGroups,
		Color:            req.Color,
	}
	s.store.Update(id, patch)
	s.invalidate(ctx)
	item, _ := s.store.GetByID(id)
	return &item, nil
}

// Delete removes a calendar item. Deleting an unknown id is a no-op.
func (s *CalendarService) Delete(ctx context.Context, id string) {
	s.store.Delete(id)
	s.invalidate(ctx)
}

// PublicList returns the filtered calendar ordered by start date, earliest
// first.
func (s *CalendarService) PublicList(ctx context.Context, query models.CalendarQuery) []models.CalendarItem {
	cacheKey := fmt.Sprintf("%s:%s:%s:%s", calendarCachePrefix, strings.ToLower(query.Search), query.Category, query.Type)
	var cached []models.CalendarItem
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached
	}

	result := make([]models.CalendarItem, 0)
	for _, item := range s.store.All() {
		if matchesCalendarItem(item, query) {
			result = append(result, item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartDate < result[j].StartDate
	})

	s.cache.Set(ctx, cacheKey, result)
	return result
}

func (s *CalendarService) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, calendarCachePrefix+":*")
}

func matchesCalendarItem(item models.CalendarItem, query models.CalendarQuery) bool {
	if query.Category != "" && query.Category != "All" && item.Category != query.Category {
		return false
	}
	if query.Type != "" && query.Type != "All" && item.Type != query.Type {
		return false
	}
	if query.Search == "" {
		return true
	}
	needle := strings.ToLower(query.Search)
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}
