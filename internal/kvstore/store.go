// Package kvstore provides the persistent slot store backing WaterTrack:
// a string-keyed collection of JSON-encoded whole values, each carrying a
// monotonic revision used for compare-and-swap writes.
package kvstore

import "context"

// Well-known slot keys. The layout is flat: a handful of named slots, each
// holding one JSON document.
const (
	// KeySessionUser holds the current session's User object, if any.
	KeySessionUser = "water_app_user"
	// KeyEntries holds the full collection of entries, all users intermixed.
	KeyEntries = "water_app_entries"
	// KeySettings holds a mapping from user id to Settings.
	KeySettings = "water_app_settings"
	// KeyRegisteredUsers holds a mapping from email to Credential.
	KeyRegisteredUsers = "registered_users"
)

// Store is a string-keyed store of whole-value slots.
//
// Contract:
//   - Get returns the raw value and its current revision, or
//     common.ErrNotFound when the key is absent.
//   - Put replaces the whole value unconditionally, bumping the revision.
//   - CompareAndSwap replaces the value only if the slot's revision still
//     equals rev (rev 0 means "create; the key must be absent"); otherwise
//     it returns common.ErrRevisionConflict.
//   - Delete removes the key; deleting an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, rev int64, err error)
	Put(ctx context.Context, key string, value []byte) error
	CompareAndSwap(ctx context.Context, key string, value []byte, rev int64) error
	Delete(ctx context.Context, key string) error
}
