// Package settings implements the per-user settings repository. The only
// configurable field today is the daily consumption limit.
package settings

import (
	"context"
	"time"

	"github.com/mlagunovs/watertrack/internal/kvstore"
	"github.com/mlagunovs/watertrack/internal/latency"
	"github.com/mlagunovs/watertrack/internal/models"
)

// Simulated round-trip delays per operation.
const (
	delayGet    = 100 * time.Millisecond
	delayUpdate = 200 * time.Millisecond
)

// Patch lists the fields Update may change. Nil fields are left untouched.
type Patch struct {
	DailyLimit *float64
}

// Repository provides read and merge-update access to per-user settings.
type Repository struct {
	kv    kvstore.Store
	delay latency.Policy
}

// NewRepository constructs a Repository over the given slot store and delay
// policy.
func NewRepository(kv kvstore.Store, delay latency.Policy) *Repository {
	return &Repository{kv: kv, delay: delay}
}

// Get returns userID's settings, or the defaults when none are stored. It
// never fails for a missing user.
func (r *Repository) Get(ctx context.Context, userID string) (models.Settings, error) {
	if err := r.delay.Wait(ctx, delayGet); err != nil {
		return models.Settings{}, err
	}

	all, err := kvstore.Read(ctx, r.kv, kvstore.KeySettings, map[string]models.Settings{})
	if err != nil {
		return models.Settings{}, err
	}
	if s, ok := all[userID]; ok {
		return s, nil
	}
	return models.DefaultSettings(), nil
}

// Update merges patch over the user's existing-or-default settings,
// persists the result, and returns it.
func (r *Repository) Update(ctx context.Context, userID string, patch Patch) (models.Settings, error) {
	if err := r.delay.Wait(ctx, delayUpdate); err != nil {
		return models.Settings{}, err
	}

	var merged models.Settings
	_, err := kvstore.Update(ctx, r.kv, kvstore.KeySettings, map[string]models.Settings{},
		func(all map[string]models.Settings) (map[string]models.Settings, error) {
			cur, ok := all[userID]
			if !ok {
				cur = models.DefaultSettings()
			}
			if patch.DailyLimit != nil {
				cur.DailyLimit = *patch.DailyLimit
			}
			all[userID] = cur
			merged = cur
			return all, nil
		})
	if err != nil {
		return models.Settings{}, err
	}
	return merged, nil
}
