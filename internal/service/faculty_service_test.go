package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/store"
)

var testRanking = DirectoryRanking{
	PriorityDepartment: "Information Technology",
	PriorityNames:      []string{"Sean Martin Fulay", "Kenneth Gisalan"},
}

func newFacultyService(t *testing.T, seed []models.Faculty) (*FacultyService, *store.FacultyStore) {
	t.Helper()
	kv := newMemKV()
	kv.data[store.KeyFaculty] = []byte("[{\"id\":\"placeholder\"}]")
	st := store.NewFacultyStore(kv, nil)
	st.Delete("placeholder")
	for i := len(seed) - 1; i >= 0; i-- {
		st.Add(seed[i])
	}
	svc := NewFacultyService(st, nil, testRanking, nil, nil)
	return svc, st
}

func activeFaculty(id, first, last, department, position string) models.Faculty {
	return models.Faculty{
		ID:         id,
		FirstName:  first,
		LastName:   last,
		Email:      first + "@sorsu-bulan.edu.ph",
		Department: department,
		Position:   position,
		Status:     models.FacultyStatusActive,
	}
}

func TestFacultyPublicListActiveOnly(t *testing.T) {
	onLeave := activeFaculty("f2", "Ramon", "Villareal", "Information Technology", "Instructor")
	onLeave.Status = models.FacultyStatusOnLeave
	svc, _ := newFacultyService(t, []models.Faculty{
		activeFaculty("f1", "Ana", "Reyes", "Information Technology", "Instructor"),
		onLeave,
	})

	items := svc.PublicList(context.Background(), models.FacultyQuery{})

	require.Len(t, items, 1)
	assert.Equal(t, "f1", items[0].ID)
}

func TestFacultyDirectoryOrderUnfiltered(t *testing.T) {
	svc, _ := newFacultyService(t, []models.Faculty{
		activeFaculty("dean", "Maria", "Delos Santos", "Teacher Education", "Dean"),
		activeFaculty("kenneth", "Kenneth", "Gisalan", "Information Technology", "Instructor"),
		activeFaculty("it-instructor", "Ana", "Reyes", "Information Technology", "Instructor"),
		activeFaculty("sean", "Sean Martin", "Fulay", "Information Technology", "Program Chair"),
	})

	items := svc.PublicList(context.Background(), models.FacultyQuery{})

	require.Len(t, items, 4)
	// IT lists first; within it, the configured names lead in order, then
	// the rest by position rank and name. Other departments follow.
	assert.Equal(t, "Sean Martin Fulay", items[0].Name)
	assert.Equal(t, "Kenneth Gisalan", items[1].Name)
	assert.Equal(t, "Ana Reyes", items[2].Name)
	assert.Equal(t, "Maria Delos Santos", items[3].Name)
}

func TestFacultyDirectoryOrderWithinDepartmentFilter(t *testing.T) {
	svc, _ := newFacultyService(t, []models.Faculty{
		activeFaculty("instructor", "Ana", "Reyes", "Information Technology", "Instructor"),
		activeFaculty("chair", "Ben", "Cruz", "Information Technology", "Program Chair"),
		activeFaculty("elsewhere", "Carl", "Diaz", "Teacher Education", "Dean"),
	})

	items := svc.PublicList(context.Background(), models.FacultyQuery{Department: "Information Technology"})

	require.Len(t, items, 2)
	// Filtered views skip the name override and rank by position alone.
	assert.Equal(t, "Ben Cruz", items[0].Name)
	assert.Equal(t, "Ana Reyes", items[1].Name)
}

func TestFacultyPositionHierarchy(t *testing.T) {
	svc, _ := newFacultyService(t, []models.Faculty{
		activeFaculty("lect", "Ana", "Reyes", "Teacher Education", "Lecturer"),
		activeFaculty("dean", "Ben", "Cruz", "Teacher Education", "Dean"),
		activeFaculty("prof", "Carl", "Diaz", "Teacher Education", "Professor"),
		activeFaculty("unknown", "Dina", "Esteban", "Teacher Education", "Visiting Fellow"),
	})

	items := svc.PublicList(context.Background(), models.FacultyQuery{Department: "Teacher Education"})

	require.Len(t, items, 4)
	assert.Equal(t, "Ben Cruz", items[0].Name)
	assert.Equal(t, "Carl Diaz", items[1].Name)
	assert.Equal(t, "Ana Reyes", items[2].Name)
	assert.Equal(t, "Dina Esteban", items[3].Name)
}

func TestFacultySearchMatchesSpecializations(t *testing.T) {
	withSpecs := activeFaculty("f1", "Ana", "Reyes", "Information Technology", "Instructor")
	withSpecs.Specializations = []string{"Machine Learning", "Databases"}
	svc, _ := newFacultyService(t, []models.Faculty{
		withSpecs,
		activeFaculty("f2", "Ben", "Cruz", "Information Technology", "Instructor"),
	})

	items := svc.PublicList(context.Background(), models.FacultyQuery{Search: "machine"})

	require.Len(t, items, 1)
	assert.Equal(t, "f1", items[0].ID)
}

func TestFacultyPublicGetGatesInactive(t *testing.T) {
	retired := activeFaculty("f1", "Ana", "Reyes", "Information Technology", "Instructor")
	retired.Status = models.FacultyStatusRetired
	svc, _ := newFacultyService(t, []models.Faculty{retired})

	_, err := svc.PublicGet("f1")
	assert.Error(t, err)
}

func TestFacultyUpdatePatch(t *testing.T) {
	svc, st := newFacultyService(t, []models.Faculty{
		activeFaculty("f1", "Ana", "Reyes", "Information Technology", "Instructor"),
	})

	bio := "Updated bio"
	updated, err := svc.Update(context.Background(), "f1", UpdateFacultyRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Updated bio", updated.Bio)
	assert.Equal(t, "Ana", updated.FirstName)

	f, _ := st.GetByID("f1")
	assert.Equal(t, "Updated bio", f.Bio)

	_, err = svc.Update(context.Background(), "missing", UpdateFacultyRequest{Bio: &bio})
	assert.Error(t, err)
}
