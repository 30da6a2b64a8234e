package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
)

type failingCacheRepo struct {
	getErr error
	setErr error
}

func (r failingCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	return r.getErr
}

func (r failingCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.setErr
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := newMemCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	type payload struct {
		Value string `json:"value"`
	}

	var missed payload
	assert.False(t, svc.Get(context.Background(), "k", &missed))

	svc.Set(context.Background(), "k", payload{Value: "v"}, 0)
	var got payload
	require.True(t, svc.Get(context.Background(), "k", &got))
	assert.Equal(t, "v", got.Value)
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := newMemCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	svc.Set(context.Background(), "k", "v", time.Minute)
	assert.Empty(t, repo.entries)

	var dest string
	assert.False(t, svc.Get(context.Background(), "k", &dest))
	assert.False(t, svc.Enabled())
}

func TestCacheServiceNilReceiver(t *testing.T) {
	var svc *CacheService

	assert.False(t, svc.Enabled())
	var dest string
	assert.False(t, svc.Get(context.Background(), "k", &dest))
	svc.Set(context.Background(), "k", "v", time.Minute)
}

func TestCacheServiceDegradesOnBackendFailure(t *testing.T) {
	svc := NewCacheService(failingCacheRepo{
		getErr: appErrors.ErrCacheMiss,
		setErr: assert.AnError,
	}, nil, time.Minute, nil, true)

	var dest string
	assert.False(t, svc.Get(context.Background(), "k", &dest))
	svc.Set(context.Background(), "k", "v", time.Minute)
}

func TestCacheServiceRecordsMetrics(t *testing.T) {
	metrics := NewMetricsService()
	repo := newMemCacheRepo()
	svc := NewCacheService(repo, metrics, time.Minute, nil, true)

	var dest string
	assert.False(t, svc.Get(context.Background(), "k", &dest))
	svc.Set(context.Background(), "k", "v", time.Minute)
	assert.True(t, svc.Get(context.Background(), "k", &dest))
}
