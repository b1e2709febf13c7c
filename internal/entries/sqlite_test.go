package entries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlagunovs/watertrack/internal/kvstore"
	"github.com/mlagunovs/watertrack/internal/latency"
	"github.com/mlagunovs/watertrack/internal/models"

	_ "modernc.org/sqlite"
)

// The repository normally runs over the sqlite slot store; this exercises
// the full JSON round trip through it rather than the in-memory stub.
func TestRepository_SQLiteBackend(t *testing.T) {
	ctx := context.Background()

	store, err := kvstore.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	r := NewRepository(store, latency.None{})

	created, err := r.Create(ctx, NewEntry{
		Date:       "2024-02-01",
		Amount:     3.5,
		UsageType:  models.UsageOthers,
		CustomType: "aquarium",
		UserID:     "u1",
	})
	require.NoError(t, err)

	got, err := r.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 3.5, got.Amount)
	assert.Equal(t, models.UsageOthers, got.UsageType)
	assert.Equal(t, "aquarium", got.CustomType)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, r.Delete(ctx, "u1", created.ID))
	list, err := r.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
