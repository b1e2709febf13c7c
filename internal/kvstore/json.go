package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mlagunovs/watertrack/internal/common"
)

// maxCASAttempts bounds the read-modify-write retry loop in Update.
const maxCASAttempts = 5

// Read fetches and decodes the slot at key. An absent slot, or one holding
// malformed JSON, decodes as def; Read fails only on store errors.
func Read[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	raw, _, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return def, nil
		}
		var zero T
		return zero, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		// Corrupt persisted data is treated as absence, not an error.
		return def, nil
	}
	return out, nil
}

// Write encodes v and stores it at key, replacing any prior value.
func Write[T any](ctx context.Context, s Store, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, b)
}

// Update performs a read-modify-write of the slot at key: it decodes the
// current value (def when absent or corrupt), applies fn, and writes the
// result back with compare-and-swap so a concurrent writer cannot be
// silently discarded. Lost races are retried up to maxCASAttempts times
// before common.ErrRevisionConflict surfaces to the caller.
func Update[T any](ctx context.Context, s Store, key string, def T, fn func(T) (T, error)) (T, error) {
	var zero T
	for attempt := 0; attempt < maxCASAttempts; attempt++ {
		cur := def
		raw, rev, err := s.Get(ctx, key)
		switch {
		case errors.Is(err, common.ErrNotFound):
			rev = 0
		case err != nil:
			return zero, err
		default:
			if err := json.Unmarshal(raw, &cur); err != nil {
				cur = def
			}
		}

		next, err := fn(cur)
		if err != nil {
			return zero, err
		}
		b, err := json.Marshal(next)
		if err != nil {
			return zero, err
		}

		err = s.CompareAndSwap(ctx, key, b, rev)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, common.ErrRevisionConflict) {
			return zero, err
		}
	}
	return zero, common.ErrRevisionConflict
}
