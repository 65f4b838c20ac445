package store

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
)

// UserStore owns the dashboard account collection. Accounts persist in the
// same content database as the public collections; an empty persisted array
// would lock everyone out, so it falls back to the seed like faculty does.
type UserStore struct {
	c *Collection[models.User]
}

// NewUserStore loads the account collection, seeding it with the records
// produced by UserSeed when nothing usable is persisted.
func NewUserStore(kv KV, seed []models.User, logger *zap.Logger) *UserStore {
	return &UserStore{c: NewCollection(kv, KeyUsers, seed, true, logger)}
}

// All returns the collection.
func (s *UserStore) All() []models.User { return s.c.All() }

// Add prepends an account record.
func (s *UserStore) Add(u models.User) { s.c.Add(u) }

// GetByID returns the first account matching id.
func (s *UserStore) GetByID(id string) (models.User, bool) { return s.c.GetByID(id) }

// FindByEmail returns the first account with a matching email, compared
// case-insensitively.
func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	for _, u := range s.c.All() {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// RecordLogin stamps the account's last login time.
func (s *UserStore) RecordLogin(id string, at time.Time) {
	s.c.Update(id, func(u models.User) models.User {
		ts := at
		u.LastLogin = &ts
		return u
	})
}

// UpdatePassword replaces the account's password hash.
func (s *UserStore) UpdatePassword(id, passwordHash string) {
	s.c.Update(id, func(u models.User) models.User {
		u.PasswordHash = passwordHash
		return u
	})
}
