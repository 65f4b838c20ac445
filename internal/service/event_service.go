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

const eventCachePrefix = "public:events"

type eventStore interface {
	All() []models.Event
	Add(e models.Event)
	Update(id string, patch store.EventPatch)
	UpdateStatus(id string, status models.EventStatus)
	Delete(id string)
	GetByID(id string) (models.Event, bool)
}

// CreateEventRequest is the admin payload for authoring events.
type CreateEventRequest struct {
	Title                string   `json:"title" validate:"required,max=200"`
	Description          string   `json:"description" validate:"required"`
	Date                 string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time                 string   `json:"time" validate:"required,datetime=15:04"`
	EndDate              string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	EndTime              string   `json:"endTime" validate:"omitempty,datetime=15:04"`
	Location             string   `json:"location" validate:"required"`
	Category             string   `json:"category" validate:"required"`
	MaxAttendees         int      `json:"maxAttendees" validate:"gte=0"`
	Status               string   `json:"status" validate:"required,oneof=Draft Published Cancelled Completed"`
	Organizer            string   `json:"organizer" validate:"required"`
	RegistrationRequired bool     `json:"registrationRequired"`
	RegistrationDeadline string   `json:"registrationDeadline" validate:"omitempty,datetime=2006-01-02"`
	ContactEmail         string   `json:"contactEmail" validate:"omitempty,email"`
	Website              string   `json:"website" validate:"omitempty,url"`
	IsPublic             bool     `json:"isPublic"`
	Tags                 []string `json:"tags"`
	Featured             bool     `json:"featured"`
}

// UpdateEventRequest is a partial patch; absent fields keep their value.
type UpdateEventRequest struct {
	Title                *string   `json:"title" validate:"omitempty,max=200"`
	Description          *string   `json:"description"`
	Date                 *string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time                 *string   `json:"time" validate:"omitempty,datetime=15:04"`
	StartDate            *string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime            *string   `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndDate              *string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	EndTime              *string   `json:"endTime" validate:"omitempty,datetime=15:04"`
	Location             *string   `json:"location"`
	Category             *string   `json:"category"`
	MaxAttendees         *int      `json:"maxAttendees" validate:"omitempty,gte=0"`
	CurrentAttendees     *int      `json:"currentAttendees" validate:"omitempty,gte=0"`
	Status               *string   `json:"status" validate:"omitempty,oneof=Draft Published Cancelled Completed"`
	Organizer            *string   `json:"organizer"`
	RegistrationRequired *bool     `json:"registrationRequired"`
	RegistrationDeadline *string   `json:"registrationDeadline" validate:"omitempty,datetime=2006-01-02"`
	ContactEmail         *string   `json:"contactEmail" validate:"omitempty,email"`
	Website              *string   `json:"website" validate:"omitempty,url"`
	IsPublic             *bool     `json:"isPublic"`
	Tags                 *[]string `json:"tags"`
	Featured             *bool     `json:"featured"`
}

// EventService owns event authoring and the public listing.
type EventService struct {
	store     eventStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewEventService constructs the service.
func NewEventService(st eventStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{store: st, cache: cache, validator: validate, logger: logger, now: time.Now}
}

// List returns the raw admin-shape collection, optionally filtered by status.
func (s *EventService) List(status string) []models.Event {
	items := s.store.All()
	if status == "" || status == "All" {
		return items
	}
	filtered := make([]models.Event, 0, len(items))
	for _, e := range items {
		if string(e.Status) == status {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Get returns an event by id.
func (s *EventService) Get(id string) (*models.Event, error) {
	e, ok := s.store.GetByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	return &e, nil
}

// Create authors a new event. The service assigns the id.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	e := models.Event{
		ID:                   uuid.NewString(),
		Title:                strings.TrimSpace(req.Title),
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		EndDate:              req.EndDate,
		EndTime:              req.EndTime,
		Location:             req.Location,
		Category:             req.Category,
		MaxAttendees:         req.MaxAttendees,
		Status:               models.EventStatus(req.Status),
		Organizer:            req.Organizer,
		RegistrationRequired: req.RegistrationRequired,
		RegistrationDeadline: req.RegistrationDeadline,
		ContactEmail:         req.ContactEmail,
		Website:              req.Website,
		IsPublic:             req.IsPublic,
		Tags:                 req.Tags,
		Featured:             req.Featured,
	}
	s.store.Add(e)
	s.invalidate(ctx)
	return &e, nil
}

// Update applies a partial patch to an existing event.
func (s *EventService) Update(ctx context.Context, id string, req UpdateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if _, ok := s.store.GetByID(id); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	patch := store.EventPatch{
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		StartDate:            req.StartDate,
		StartTime:            req.StartTime,
		EndDate:              req.EndDate,
		EndTime:              req.EndTime,
		Location:             req.Location,
		Category:             req.Category,
		MaxAttendees:         req.MaxAttendees,
		CurrentAttendees:     req.CurrentAttendees,
		Organizer:            req.Organizer,
		RegistrationRequired: req.RegistrationRequired,
		RegistrationDeadline: req.RegistrationDeadline,
		ContactEmail:         req.ContactEmail,
		Website:              req.Website,
		IsPublic:             req.IsPublic,
		Tags:                 req.Tags,
		Featured:             req.Featured,
	}
	if req.Status != nil {
		status := models.EventStatus(*req.Status)
		patch.Status = &status
	}
	s.store.Update(id, patch)
	s.invalidate(ctx)
	e, _ := s.store.GetByID(id)
	return &e, nil
}

// UpdateStatus performs the first-class status transition (cancel, complete,
// publish) as a named admin action.
func (s *EventService) UpdateStatus(ctx context.Context, id, status string) (*models.Event, error) {
	switch models.EventStatus(status) {
	case models.EventStatusDraft, models.EventStatusPublished, models.EventStatusCancelled, models.EventStatusCompleted:
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown event status")
	}
	if _, ok := s.store.GetByID(id); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	s.store.UpdateStatus(id, models.EventStatus(status))
	s.invalidate(ctx)
	e, _ := s.store.GetByID(id)
	return &e, nil
}

// Delete removes an event. Deleting an unknown id is a no-op.
func (s *EventService) Delete(ctx context.Context, id string) {
	s.store.Delete(id)
	s.invalidate(ctx)
}

// PublicList returns the projected, filtered and ordered events for the
// public site.
func (s *EventService) PublicList(ctx context.Context, query models.EventQuery) []dto.PublicEvent {
	cacheKey := fmt.Sprintf("%s:%s:%s", eventCachePrefix, strings.ToLower(query.Search), query.Category)
	var cached []dto.PublicEvent
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached
	}

	today := s.now().Format("2006-01-02")
	visible := make([]models.Event, 0)
	for _, e := range s.store.All() {
		if !eventVisible(e) {
			continue
		}
		if !matchesEvent(e, query) {
			continue
		}
		visible = append(visible, e)
	}
	sortEvents(visible, today)

	result := make([]dto.PublicEvent, 0, len(visible))
	for _, e := range visible {
		result = append(result, dto.NewPublicEvent(e))
	}
	s.cache.Set(ctx, cacheKey, result)
	return result
}

// PublicGet returns one projected event, enforcing the publish gate.
func (s *EventService) PublicGet(id string) (*dto.PublicEvent, error) {
	e, ok := s.store.GetByID(id)
	if !ok || !eventVisible(e) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	view := dto.NewPublicEvent(e)
	return &view, nil
}

func (s *EventService) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, eventCachePrefix+":*")
}

// eventVisible is the publish gate: Published and marked public.
func eventVisible(e models.Event) bool {
	return e.Status == models.EventStatusPublished && e.IsPublic
}

func matchesEvent(e models.Event, query models.EventQuery) bool {
	if query.Category != "" && query.Category != "All" && e.Category != query.Category {
		return false
	}
	if query.Search == "" {
		return true
	}
	needle := strings.ToLower(query.Search)
	if strings.Contains(strings.ToLower(e.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Description), needle) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// sortEvents orders featured events first, upcoming before past, then by
// start date, soonest first. Dates are day-granular YYYY-MM-DD strings, so
// lexicographic comparison is chronological.
func sortEvents(items []models.Event, today string) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		aUpcoming := a.EffectiveStartDate() >= today
		bUpcoming := b.EffectiveStartDate() >= today
		if aUpcoming != bUpcoming {
			return aUpcoming
		}
		return a.EffectiveStartDate() < b.EffectiveStartDate()
	})
}
