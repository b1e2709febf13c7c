package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlagunovs/watertrack/internal/kvstore"
	"github.com/mlagunovs/watertrack/internal/latency"
	"github.com/mlagunovs/watertrack/internal/models"
)

func newTestRepo() *Repository {
	return NewRepository(kvstore.NewMemoryStore(), latency.None{})
}

func TestGet_DefaultWhenUnset(t *testing.T) {
	r := newTestRepo()

	s, err := r.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, float64(models.DefaultDailyLimit), s.DailyLimit)
}

func TestUpdate_ThenGetReturnsNewLimit(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	limit := 200.0
	merged, err := r.Update(ctx, "u1", Patch{DailyLimit: &limit})
	require.NoError(t, err)
	assert.Equal(t, 200.0, merged.DailyLimit)

	s, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, s.DailyLimit)
}

func TestUpdate_EmptyPatchKeepsDefaults(t *testing.T) {
	r := newTestRepo()

	merged, err := r.Update(context.Background(), "u1", Patch{})
	require.NoError(t, err)
	assert.Equal(t, float64(models.DefaultDailyLimit), merged.DailyLimit)
}

func TestSettings_ScopedPerUser(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	limit := 80.0
	_, err := r.Update(ctx, "u1", Patch{DailyLimit: &limit})
	require.NoError(t, err)

	other, err := r.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, float64(models.DefaultDailyLimit), other.DailyLimit)
}
