package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/store"
)

var testAuthConfig = AuthConfig{
	Secret:     "test-secret",
	Expiration: time.Hour,
	Issuer:     "campus-content-api",
}

func newAuthService(t *testing.T, users []models.User) (*AuthService, *store.UserStore) {
	t.Helper()
	kv := newMemKV()
	st := store.NewUserStore(kv, users, nil)
	svc := NewAuthService(st, testAuthConfig, nil, nil)
	return svc, st
}

func testUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{
		ID:           "u1",
		Email:        "admin@sorsu-bulan.edu.ph",
		PasswordHash: string(hash),
		FullName:     "Site Admin",
		Role:         models.RoleAdmin,
		Active:       true,
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, st := newAuthService(t, []models.User{testUser(t, "correct horse")})

	res, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "ADMIN@sorsu-bulan.edu.ph",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "u1", res.User.ID)
	assert.Empty(t, res.User.FacultyID)

	u, _ := st.GetByID("u1")
	assert.NotNil(t, u.LastLogin)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t, []models.User{testUser(t, "correct horse")})

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@sorsu-bulan.edu.ph",
		Password: "wrong",
	})
	assert.Error(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t, []models.User{testUser(t, "correct horse")})

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@sorsu-bulan.edu.ph",
		Password: "correct horse",
	})
	assert.Error(t, err)
}

func TestLoginInactiveAccount(t *testing.T) {
	u := testUser(t, "correct horse")
	u.Active = false
	svc, _ := newAuthService(t, []models.User{u})

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    u.Email,
		Password: "correct horse",
	})
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc, _ := newAuthService(t, []models.User{testUser(t, "pw")})

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	other := NewAuthService(nil, AuthConfig{Secret: "different", Expiration: time.Hour, Issuer: testAuthConfig.Issuer}, nil, nil)
	u := testUser(t, "pw")
	token, err := other.signToken(u, time.Now())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc, _ := newAuthService(t, []models.User{testUser(t, "pw")})
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	res, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@sorsu-bulan.edu.ph",
		Password: "pw",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.AccessToken)
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	svc, st := newAuthService(t, []models.User{testUser(t, "old password")})

	err := svc.ChangePassword(context.Background(), "u1", ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "brand new pass",
	})
	assert.Error(t, err)

	err = svc.ChangePassword(context.Background(), "u1", ChangePasswordRequest{
		CurrentPassword: "old password",
		NewPassword:     "brand new pass",
	})
	require.NoError(t, err)

	u, _ := st.GetByID("u1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("brand new pass")))
}

func TestMeReflectsStoreState(t *testing.T) {
	svc, _ := newAuthService(t, []models.User{testUser(t, "pw")})

	info, err := svc.Me(&models.JWTClaims{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Site Admin", info.FullName)

	_, err = svc.Me(&models.JWTClaims{UserID: "ghost"})
	assert.Error(t, err)
}
