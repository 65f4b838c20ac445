package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/sorsu-bulan/campus-content-api/pkg/errors"
)

type fakeCacheRepo struct {
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: make(map[string][]byte)}
}

func (r *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if r.getErr != nil {
		return r.getErr
	}
	raw, ok := r.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (r *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if r.setErr != nil {
		return r.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.entries[key] = raw
	return nil
}

func (r *fakeCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range r.entries {
		if strings.HasPrefix(key, prefix) {
			delete(r.entries, key)
		}
	}
	return nil
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	svc.Set(context.Background(), "public:faculty:key", []string{"a", "b"})

	var out []string
	require.True(t, svc.Get(context.Background(), "public:faculty:key", &out))
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestCacheServiceMissAndInvalidate(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var out []string
	assert.False(t, svc.Get(context.Background(), "public:faculty:key", &out))

	svc.Set(context.Background(), "public:faculty:key", []string{"a"})
	svc.Set(context.Background(), "public:events:key", []string{"b"})
	svc.Invalidate(context.Background(), "public:faculty:*")

	assert.False(t, svc.Get(context.Background(), "public:faculty:key", &out))
	assert.True(t, svc.Get(context.Background(), "public:events:key", &out))
}

func TestCacheServiceDegradesOnFailure(t *testing.T) {
	repo := newFakeCacheRepo()
	repo.getErr = errors.New("redis gone")
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var out []string
	assert.False(t, svc.Get(context.Background(), "key", &out))
}

func TestCacheServiceDisabled(t *testing.T) {
	svc := NewCacheService(nil, nil, time.Minute, nil, false)
	assert.False(t, svc.Enabled())

	var out []string
	assert.False(t, svc.Get(context.Background(), "key", &out))
	svc.Set(context.Background(), "key", "value")
	svc.Invalidate(context.Background(), "key:*")

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
	assert.False(t, nilSvc.Get(context.Background(), "key", &out))
}
