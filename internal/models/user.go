package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole represents the dashboard roles.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleFaculty UserRole = "FACULTY"
)

// User is a dashboard account. The password hash is persisted with the
// record but must never be exposed through the API; responses use UserInfo.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"passwordHash"`
	FullName     string     `json:"fullName"`
	Role         UserRole   `json:"role"`
	Active       bool       `json:"active"`
	FacultyID    string     `json:"facultyId,omitempty"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// EntityID implements store.Entity.
func (u User) EntityID() string { return u.ID }

// UserInfo is the safe user shape returned to clients.
type UserInfo struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"fullName"`
	Role      UserRole `json:"role"`
	FacultyID string   `json:"facultyId,omitempty"`
}

// JWTClaims are the claims embedded in access tokens.
type JWTClaims struct {
	UserID    string   `json:"uid"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	FacultyID string   `json:"facultyId,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresIn   int64     `json:"expiresIn"`
	IssuedAt    time.Time `json:"issuedAt"`
	User        UserInfo  `json:"user"`
}
