// Package models defines the WaterTrack data model: users, credentials,
// water-usage entries, and per-user settings. JSON field names match the
// slot layout persisted by the store.
package models

// User is an authenticated identity. Users are created at signup and never
// mutated afterwards; entries and settings reference them by ID.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credential pairs a user with the password it registered with. The password
// is stored and compared as plaintext: this is a mock credential store, not
// a security boundary.
type Credential struct {
	Password string `json:"password"`
	User     User   `json:"user"`
}
