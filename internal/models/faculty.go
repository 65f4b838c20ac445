package models

// FacultyStatus drives public visibility: only Active members appear in the
// public directory.
type FacultyStatus string

const (
	FacultyStatusActive     FacultyStatus = "Active"
	FacultyStatusOnLeave    FacultyStatus = "On Leave"
	FacultyStatusSabbatical FacultyStatus = "Sabbatical"
	FacultyStatusRetired    FacultyStatus = "Retired"
	FacultyStatusInactive   FacultyStatus = "Inactive"
)

// Faculty represents a faculty member as authored in the admin dashboard.
type Faculty struct {
	ID                string        `json:"id"`
	FirstName         string        `json:"firstName"`
	LastName          string        `json:"lastName"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone,omitempty"`
	Office            string        `json:"office,omitempty"`
	Department        string        `json:"department"`
	Position          string        `json:"position"`
	Status            FacultyStatus `json:"status"`
	Bio               string        `json:"bio,omitempty"`
	Specializations   []string      `json:"specializations,omitempty"`
	Education         []string      `json:"education,omitempty"`
	Awards            []string      `json:"awards,omitempty"`
	ProfileImage      string        `json:"profileImage,omitempty"`
	Website           string        `json:"website,omitempty"`
	ResearchInterests []string      `json:"researchInterests,omitempty"`
	YearsOfExperience *int          `json:"yearsOfExperience,omitempty"`
}

// EntityID implements store.Entity.
func (f Faculty) EntityID() string { return f.ID }

// FullName joins first and last name with a single space.
func (f Faculty) FullName() string {
	return f.FirstName + " " + f.LastName
}

// FacultyQuery captures the public directory filter state. An empty or "All"
// department means no department constraint.
type FacultyQuery struct {
	Search     string
	Department string
}
