package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sorsu-bulan/campus-content-api/internal/dto"
	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/store"
	appErrors "github.com/sorsu-bulan/campus-content-api/pkg/errors"
)

const facultyCachePrefix = "public:faculty"

type facultyStore interface {
	All() []models.Faculty
	Add(f models.Faculty)
	Update(id string, patch store.FacultyPatch)
	Delete(id string)
	GetByID(id string) (models.Faculty, bool)
}

// DirectoryRanking configures the directory ordering override: members of
// PriorityDepartment list before everyone else, and PriorityNames force
// specific members to the very top in the order given.
type DirectoryRanking struct {
	PriorityDepartment string
	PriorityNames      []string
}

// CreateFacultyRequest is the admin payload for adding a faculty member.
type CreateFacultyRequest struct {
	FirstName         string   `json:"firstName" validate:"required,max=100"`
	LastName          string   `json:"lastName" validate:"required,max=100"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             string   `json:"phone" validate:"omitempty,max=50"`
	Office            string   `json:"office" validate:"omitempty,max=200"`
	Department        string   `json:"department" validate:"required"`
	Position          string   `json:"position" validate:"required"`
	Status            string   `json:"status" validate:"required,oneof=Active 'On Leave' Sabbatical Retired Inactive"`
	Bio               string   `json:"bio"`
	Specializations   []string `json:"specializations"`
	Education         []string `json:"education"`
	Awards            []string `json:"awards"`
	ProfileImage      string   `json:"profileImage" validate:"omitempty,url"`
	Website           string   `json:"website" validate:"omitempty,url"`
	ResearchInterests []string `json:"researchInterests"`
	YearsOfExperience *int     `json:"yearsOfExperience" validate:"omitempty,gte=0"`
}

// UpdateFacultyRequest is a partial patch; absent fields keep their value.
type UpdateFacultyRequest struct {
	FirstName         *string   `json:"firstName" validate:"omitempty,max=100"`
	LastName          *string   `json:"lastName" validate:"omitempty,max=100"`
	Email             *string   `json:"email" validate:"omitempty,email"`
	Phone             *string   `json:"phone" validate:"omitempty,max=50"`
	Office            *string   `json:"office" validate:"omitempty,max=200"`
	Department        *string   `json:"department"`
	Position          *string   `json:"position"`
	Status            *string   `json:"status" validate:"omitempty,oneof=Active 'On Leave' Sabbatical Retired Inactive"`
	Bio               *string   `json:"bio"`
	Specializations   *[]string `json:"specializations"`
	Education         *[]string `json:"education"`
	Awards            *[]string `json:"awards"`
	ProfileImage      *string   `json:"profileImage" validate:"omitempty,url"`
	Website           *string   `json:"website" validate:"omitempty,url"`
	ResearchInterests *[]string `json:"researchInterests"`
	YearsOfExperience *int      `json:"yearsOfExperience" validate:"omitempty,gte=0"`
}

// FacultyService owns the faculty roster and the public directory.
type FacultyService struct {
	store     facultyStore
	cache     *CacheService
	ranking   DirectoryRanking
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFacultyService constructs the service.
func NewFacultyService(st facultyStore, cache *CacheService, ranking DirectoryRanking, validate *validator.Validate, logger *zap.Logger) *FacultyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacultyService{store: st, cache: cache, ranking: ranking, validator: validate, logger: logger}
}

// List returns the raw admin-shape roster.
func (s *FacultyService) List() []models.Faculty {
	return s.store.All()
}

// Get returns a faculty member by id.
func (s *FacultyService) Get(id string) (*models.Faculty, error) {
	f, ok := s.store.GetByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty member not found")
	}
	return &f, nil
}

// Create adds a faculty member. The service assigns the id.
func (s *FacultyService) Create(ctx context.Context, req CreateFacultyRequest) (*models.Faculty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid faculty payload")
	}
	f := models.Faculty{
		ID:                uuid.NewString(),
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Email:             strings.TrimSpace(req.Email),
		Phone:             req.Phone,
		Office:            req.Office,
		Department:        req.Department,
		Position:          req.Position,
		Status:            models.FacultyStatus(req.Status),
		Bio:               req.Bio,
		Specializations:   req.Specializations,
		Education:         req.Education,
		Awards:            req.Awards,
		ProfileImage:      req.ProfileImage,
		Website:           req.Website,
		ResearchInterests: req.ResearchInterests,
		YearsOfExperience: req.YearsOfExperience,
	}
	s.store.Add(f)
	s.invalidate(ctx)
	return &f, nil
}

// Update applies a partial patch to a faculty member.
func (s *FacultyService) Update(ctx context.Context, id string, req UpdateFacultyRequest) (*models.Faculty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid faculty payload")
	}
	if _, ok := s.store.GetByID(id); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty member not found")
	}
	patch := store.FacultyPatch{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		Office:            req.Office,
		Department:        req.Department,
		Position:          req.Position,
		Bio:               req.Bio,
		Specializations:   req.Specializations,
		Education:         req.Education,
		Awards:            req.Awards,
		ProfileImage:      req.ProfileImage,
		Website:           req.Website,
		ResearchInterests: req.ResearchInterests,
		YearsOfExperience: req.YearsOfExperience,
	}
	if req.Status != nil {
		status := models.FacultyStatus(*req.Status)
		patch.Status = &status
	}
	s.store.Update(id, patch)
	s.invalidate(ctx)
	f, _ := s.store.GetByID(id)
	return &f, nil
}

// Delete removes a faculty member. Deleting an unknown id is a no-op.
func (s *FacultyService) Delete(ctx context.Context, id string) {
	s.store.Delete(id)
	s.invalidate(ctx)
}

// PublicList returns the projected, filtered and ordered directory. Only
// Active members are listed.
func (s *FacultyService) PublicList(ctx context.Context, query models.FacultyQuery) []dto.FacultyProfile {
	cacheKey := fmt.Sprintf("%s:%s:%s", facultyCachePrefix, strings.ToLower(query.Search), query.Department)
	var cached []dto.FacultyProfile
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached
	}

	visible := make([]models.Faculty, 0)
	for _, f := range s.store.All() {
		if f.Status != models.FacultyStatusActive {
			continue
		}
		if !matchesFaculty(f, query) {
			continue
		}
		visible = append(visible, f)
	}
	departmentFiltered := query.Department != "" && query.Department != "All"
	s.sortDirectory(visible, departmentFiltered)

	result := make([]dto.FacultyProfile, 0, len(visible))
	for _, f := range visible {
		result = append(result, dto.NewFacultyProfile(f))
	}
	s.cache.Set(ctx, cacheKey, result)
	return result
}

// PublicGet returns one projected profile, enforcing the Active gate.
func (s *FacultyService) PublicGet(id string) (*dto.FacultyProfile, error) {
	f, ok := s.store.GetByID(id)
	if !ok || f.Status != models.FacultyStatusActive {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty member not found")
	}
	profile := dto.NewFacultyProfile(f)
	return &profile, nil
}

func (s *FacultyService) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, facultyCachePrefix+":*")
}

func matchesFaculty(f models.Faculty, query models.FacultyQuery) bool {
	if query.Department != "" && query.Department != "All" && f.Department != query.Department {
		return false
	}
	if query.Search == "" {
		return true
	}
	needle := strings.ToLower(query.Search)
	if strings.Contains(strings.ToLower(f.FullName()), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(f.Bio), needle) {
		return true
	}
	for _, spec := range f.Specializations {
		if strings.Contains(strings.ToLower(spec), needle) {
			return true
		}
	}
	return false
}

// sortDirectory orders the unfiltered directory with the configured
// department and name overrides first, then everyone by position rank and
// name. Department-filtered views skip the override and use rank alone.
func (s *FacultyService) sortDirectory(items []models.Faculty, departmentFiltered bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !departmentFiltered {
			aPriority := strings.EqualFold(a.Department, s.ranking.PriorityDepartment)
			bPriority := strings.EqualFold(b.Department, s.ranking.PriorityDepartment)
			if aPriority != bPriority {
				return aPriority
			}
			if aPriority {
				an, bn := s.nameRank(a.FullName()), s.nameRank(b.FullName())
				if an != bn {
					return an < bn
				}
			}
		}
		ra, rb := positionRank(a.Position), positionRank(b.Position)
		if ra != rb {
			return ra > rb
		}
		return a.FullName() < b.FullName()
	})
}

// nameRank returns the index of name in the configured priority list, or a
// rank past the end when the name is not listed.
func (s *FacultyService) nameRank(name string) int {
	for i, priority := range s.ranking.PriorityNames {
		if strings.EqualFold(name, priority) {
			return i
		}
	}
	return len(s.ranking.PriorityNames)
}

// positionRank encodes the academic hierarchy; unknown titles rank last.
func positionRank(position string) int {
	switch position {
	case "Dean":
		return 8
	case "Associate Dean":
		return 7
	case "Program Chair":
		return 6
	case "Professor":
		return 5
	case "Associate Professor":
		return 4
	case "Assistant Professor":
		return 3
	case "Lecturer":
		return 2
	case "Instructor":
		return 1
	default:
		return 0
	}
}
