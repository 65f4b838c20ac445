package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sorsu-bulan/campus-content-api/internal/middleware"
	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/service"
	"github.com/sorsu-bulan/campus-content-api/internal/store"
)

type memKV struct {
	data map[string][]byte
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.AnnouncementStore, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := &memKV{data: map[string][]byte{store.KeyAnnouncements: []byte("[]")}}
	announcementStore := store.NewAnnouncementStore(kv, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret pass"), bcrypt.MinCost)
	require.NoError(t, err)
	userStore := store.NewUserStore(kv, []models.User{{
		ID:           "u1",
		Email:        "admin@sorsu-bulan.edu.ph",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Active:       true,
	}}, nil)

	authSvc := service.NewAuthService(userStore, service.AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "campus-content-api",
	}, nil, nil)
	announcementSvc := service.NewAnnouncementService(announcementStore, nil, nil, nil)
	h := NewAnnouncementHandler(announcementSvc)

	r := gin.New()
	r.GET("/announcements", h.PublicList)
	r.GET("/announcements/:id", h.PublicGet)
	r.POST("/announcements/:id/views", h.IncrementViews)

	admin := r.Group("/admin")
	admin.Use(middleware.JWT(authSvc), middleware.RequireRoles(models.RoleAdmin))
	admin.POST("/announcements", h.Create)
	admin.DELETE("/announcements/:id", h.Delete)

	return r, announcementStore, authSvc
}

func TestAnnouncementPublicEndpoints(t *testing.T) {
	r, st, _ := newTestRouter(t)
	st.Add(models.Announcement{
		ID:          "a1",
		Title:       "Enrollment extended",
		Status:      models.AnnouncementStatusPublished,
		PublishDate: time.Now().Add(-time.Hour),
	})
	st.Add(models.Announcement{ID: "d1", Status: models.AnnouncementStatusDraft})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/announcements", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "a1", envelope.Data[0]["id"])

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/announcements/d1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/announcements/a1/views", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	a, _ := st.GetByID("a1")
	assert.Equal(t, 1, a.Views)
}

func TestAnnouncementAdminRequiresToken(t *testing.T) {
	r, _, authSvc := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/announcements/a1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login, err := authSvc.Login(req.Context(), models.LoginRequest{
		Email:    "admin@sorsu-bulan.edu.ph",
		Password: "secret pass",
	})
	require.NoError(t, err)

	payload := `{"title":"Exam schedule","content":"posted","category":"Academic","priority":"High","audience":"Students","status":"Published","publishDate":"2026-08-01T00:00:00Z","author":"Registrar"}`
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin/announcements", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}
