package store

import (
	"go.uber.org/zap"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

// FacultyStore owns the faculty collection. An empty persisted document is
// treated as missing so the directory never renders blank.
type FacultyStore struct {
	c *Collection[models.Faculty]
}

// NewFacultyStore loads or seeds the faculty collection.
func NewFacultyStore(kv KV, logger *zap.Logger) *FacultyStore {
	return &FacultyStore{c: NewCollection(kv, KeyFaculty, FacultySeed(), true, logger)}
}

// FacultyPatch is a shallow-merge patch; nil fields keep the current value.
type FacultyPatch struct {
	FirstName         *string               `json:"firstName,omitempty"`
	LastName          *string               `json:"lastName,omitempty"`
	Email             *string               `json:"email,omitempty"`
	Phone             *string               `json:"phone,omitempty"`
	Office            *string               `json:"office,omitempty"`
	Department        *string               `json:"department,omitempty"`
	Position          *string               `json:"position,omitempty"`
	Status            *models.FacultyStatus `json:"status,omitempty"`
	Bio               *string               `json:"bio,omitempty"`
	Specializations   *[]string             `json:"specializations,omitempty"`
	Education         *[]string             `json:"education,omitempty"`
	Awards            *[]string             `json:"awards,omitempty"`
	ProfileImage      *string               `json:"profileImage,omitempty"`
	Website           *string               `json:"website,omitempty"`
	ResearchInterests *[]string             `json:"researchInterests,omitempty"`
	YearsOfExperience *int                  `json:"yearsOfExperience,omitempty"`
}

func (p FacultyPatch) apply(f models.Faculty) models.Faculty {
	setString(&f.FirstName, p.FirstName)
	setString(&f.LastName, p.LastName)
	setString(&f.Email, p.Email)
	setString(&f.Phone, p.Phone)
	setString(&f.Office, p.Office)
	setString(&f.Department, p.Department)
	setString(&f.Position, p.Position)
	if p.Status != nil {
		f.Status = *p.Status
	}
	setString(&f.Bio, p.Bio)
	setStrings(&f.Specializations, p.Specializations)
	setStrings(&f.Education, p.Education)
	setStrings(&f.Awards, p.Awards)
	setString(&f.ProfileImage, p.ProfileImage)
	setString(&f.Website, p.Website)
	setStrings(&f.ResearchInterests, p.ResearchInterests)
	if p.YearsOfExperience != nil {
		years := *p.YearsOfExperience
		f.YearsOfExperience = &years
	}
	return f
}

// All returns the collection in insertion order, newest first.
func (s *FacultyStore) All() []models.Faculty { return s.c.All() }

// Add prepends a fully-formed faculty record.
func (s *FacultyStore) Add(f models.Faculty) { s.c.Add(f) }

// Update shallow-merges patch over every record matching id.
func (s *FacultyStore) Update(id string, patch FacultyPatch) { s.c.Update(id, patch.apply) }

// Delete removes every record matching id.
func (s *FacultyStore) Delete(id string) { s.c.Delete(id) }

// GetByID returns the first record matching id.
func (s *FacultyStore) GetByID(id string) (models.Faculty, bool) { return s.c.GetByID(id) }

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = append([]string(nil), (*src)...)
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
