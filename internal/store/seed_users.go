package store

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/pkg/config"
)

// UserSeed builds the initial dashboard accounts: one admin plus one faculty
// account per seeded faculty profile, so the faculty dashboard works out of
// the box. Passwords come from configuration and are hashed here; the
// plaintext is never persisted.
func UserSeed(accounts config.AccountsConfig) ([]models.User, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(accounts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	facultyHash, err := bcrypt.GenerateFromPassword([]byte(accounts.FacultyPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := []models.User{
		{
			ID:           "usr-admin",
			Email:        accounts.AdminEmail,
			PasswordHash: string(adminHash),
			FullName:     "Campus Administrator",
			Role:         models.RoleAdmin,
			Active:       true,
		},
	}

	for _, f := range FacultySeed() {
		users = append(users, models.User{
			ID:           "usr-" + f.ID,
			Email:        f.Email,
			PasswordHash: string(facultyHash),
			FullName:     f.FullName(),
			Role:         models.RoleFaculty,
			Active:       f.Status == models.FacultyStatusActive,
			FacultyID:    f.ID,
		})
	}

	return users, nil
}
