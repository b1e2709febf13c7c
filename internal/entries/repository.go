// Package entries implements the water-usage entry repository: CRUD over
// the shared entries slot, owner-scoped queries, and daily aggregates.
package entries

import (
	"context"
	"sort"
	"time"

	"github.com/mlagunovs/watertrack/internal/common"
	"github.com/mlagunovs/watertrack/internal/idgen"
	"github.com/mlagunovs/watertrack/internal/kvstore"
	"github.com/mlagunovs/watertrack/internal/latency"
	"github.com/mlagunovs/watertrack/internal/models"
)

// Simulated round-trip delays per operation.
const (
	delayList   = 300 * time.Millisecond
	delayByDate = 200 * time.Millisecond
	delayGet    = 200 * time.Millisecond
	delayCreate = 300 * time.Millisecond
	delayUpdate = 300 * time.Millisecond
	delayDelete = 300 * time.Millisecond
)

// NewEntry carries the caller-supplied fields for Create. Identifier and
// timestamps are assigned by the repository. Amount bounds and the
// custom-label rule for "others" are enforced by the entry form, not here.
type NewEntry struct {
	Date       string
	Amount     float64
	UsageType  models.UsageType
	CustomType string
	UserID     string
}

// Patch lists the fields Update may change. Nil fields are left untouched;
// identifier, owner, and creation time can never be patched.
type Patch struct {
	Date       *string
	Amount     *float64
	UsageType  *models.UsageType
	CustomType *string
}

// Repository provides CRUD and query operations over water-usage entries.
// All operations are scoped to an owning user; an id belonging to another
// user behaves exactly like an unknown id.
type Repository struct {
	kv    kvstore.Store
	delay latency.Policy
}

// NewRepository constructs a Repository over the given slot store and delay
// policy.
func NewRepository(kv kvstore.Store, delay latency.Policy) *Repository {
	return &Repository{kv: kv, delay: delay}
}

// List returns userID's entries ordered by date descending (most recent day
// first). Same-day entries keep their stored order.
func (r *Repository) List(ctx context.Context, userID string) ([]models.Entry, error) {
	if err := r.delay.Wait(ctx, delayList); err != nil {
		return nil, err
	}
	all, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Entry
	for _, e := range all {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result, nil
}

// ListByDate returns userID's entries for the given calendar day, in stored
// order.
func (r *Repository) ListByDate(ctx context.Context, userID, date string) ([]models.Entry, error) {
	if err := r.delay.Wait(ctx, delayByDate); err != nil {
		return nil, err
	}
	all, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Entry
	for _, e := range all {
		if e.UserID == userID && e.Date == date {
			result = append(result, e)
		}
	}
	return result, nil
}

// Get returns the entry with the given id owned by userID, or
// common.ErrEntryNotFound.
func (r *Repository) Get(ctx context.Context, userID, id string) (*models.Entry, error) {
	if err := r.delay.Wait(ctx, delayGet); err != nil {
		return nil, err
	}
	all, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range all {
		if e.ID == id && e.UserID == userID {
			return &e, nil
		}
	}
	return nil, common.ErrEntryNotFound
}

// Create stores a new entry with a fresh identifier and identical creation
// and update timestamps, and returns the stored record.
func (r *Repository) Create(ctx context.Context, data NewEntry) (*models.Entry, error) {
	if err := r.delay.Wait(ctx, delayCreate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := models.Entry{
		ID:         idgen.NewID(),
		Date:       data.Date,
		Amount:     data.Amount,
		UsageType:  data.UsageType,
		CustomType: data.CustomType,
		UserID:     data.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := kvstore.Update(ctx, r.kv, kvstore.KeyEntries, []models.Entry{},
		func(all []models.Entry) ([]models.Entry, error) {
			return append(all, entry), nil
		})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update merges patch over userID's entry with the given id, refreshes the
// update timestamp, and returns the merged record. Unknown (or other-owned)
// ids yield common.ErrEntryNotFound.
func (r *Repository) Update(ctx context.Context, userID, id string, patch Patch) (*models.Entry, error) {
	if err := r.delay.Wait(ctx, delayUpdate); err != nil {
		return nil, err
	}

	var updated models.Entry
	_, err := kvstore.Update(ctx, r.kv, kvstore.KeyEntries, []models.Entry{},
		func(all []models.Entry) ([]models.Entry, error) {
			for i := range all {
				if all[i].ID != id || all[i].UserID != userID {
					continue
				}
				if patch.Date != nil {
					all[i].Date = *patch.Date
				}
				if patch.Amount != nil {
					all[i].Amount = *patch.Amount
				}
				if patch.UsageType != nil {
					all[i].UsageType = *patch.UsageType
				}
				if patch.CustomType != nil {
					all[i].CustomType = *patch.CustomType
				}
				all[i].UpdatedAt = time.Now().UTC()
				updated = all[i]
				return all, nil
			}
			return nil, common.ErrEntryNotFound
		})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes userID's entry with the given id. Unknown ids are a silent
// no-op, not an error.
func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	if err := r.delay.Wait(ctx, delayDelete); err != nil {
		return err
	}

	_, err := kvstore.Update(ctx, r.kv, kvstore.KeyEntries, []models.Entry{},
		func(all []models.Entry) ([]models.Entry, error) {
			kept := make([]models.Entry, 0, len(all))
			for _, e := range all {
				if e.ID == id && e.UserID == userID {
					continue
				}
				kept = append(kept, e)
			}
			return kept, nil
		})
	return err
}

// TodayUsage sums the user's amounts for the local calendar day.
func (r *Repository) TodayUsage(ctx context.Context, userID string) (float64, error) {
	today := time.Now().Format(models.DateLayout)
	list, err := r.ListByDate(ctx, userID, today)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, e := range list {
		total += e.Amount
	}
	return total, nil
}

// UsageByDate aggregates the user's entries for one day: the overall total,
// per-category totals, and the entries themselves.
func (r *Repository) UsageByDate(ctx context.Context, userID, date string) (*models.DailyUsage, error) {
	list, err := r.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	usage := &models.DailyUsage{
		Date:       date,
		ByCategory: make(map[models.UsageType]float64),
		Entries:    list,
	}
	for _, e := range list {
		usage.Total += e.Amount
		usage.ByCategory[e.UsageType] += e.Amount
	}
	return usage, nil
}

func (r *Repository) readAll(ctx context.Context) ([]models.Entry, error) {
	return kvstore.Read(ctx, r.kv, kvstore.KeyEntries, []models.Entry{})
}
