// Package auth implements the mock authentication store: a fixed seed
// account plus dynamically registered users, with the current session held
// in a dedicated slot of the persistent store.
package auth

import (
	"context"
	"time"

	"github.com/mlagunovs/watertrack/internal/common"
	"github.com/mlagunovs/watertrack/internal/idgen"
	"github.com/mlagunovs/watertrack/internal/kvstore"
	"github.com/mlagunovs/watertrack/internal/latency"
	"github.com/mlagunovs/watertrack/internal/models"
)

// Simulated round-trip delays per operation.
const (
	delayLogin       = 500 * time.Millisecond
	delaySignup      = 500 * time.Millisecond
	delayLogout      = 200 * time.Millisecond
	delayCurrentUser = 100 * time.Millisecond
)

// seedCredentials returns the built-in demo account, present regardless of
// registrations.
func seedCredentials() map[string]models.Credential {
	return map[string]models.Credential{
		"demo@example.com": {
			Password: "password123",
			User:     models.User{ID: "1", Email: "demo@example.com", Name: "Demo User"},
		},
	}
}

// Store manages credentials and the current session.
type Store struct {
	kv    kvstore.Store
	delay latency.Policy
	seed  map[string]models.Credential
}

// NewStore constructs a Store over the given slot store and delay policy.
func NewStore(kv kvstore.Store, delay latency.Policy) *Store {
	return &Store{kv: kv, delay: delay, seed: seedCredentials()}
}

// Login validates email+password against the seed account first and the
// registered-credentials slot second. On a match the user becomes the
// session user and is returned. Unknown email and wrong password both yield
// common.ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := s.delay.Wait(ctx, delayLogin); err != nil {
		return nil, err
	}

	if c, ok := s.seed[email]; ok && c.Password == password {
		return s.establishSession(ctx, c.User)
	}

	registered, err := s.registered(ctx)
	if err != nil {
		return nil, err
	}
	if c, ok := registered[email]; ok && c.Password == password {
		return s.establishSession(ctx, c.User)
	}

	return nil, common.ErrInvalidCredentials
}

// Signup registers a new user. The email must be unused across both the
// seed set and the registered set, otherwise common.ErrEmailAlreadyRegistered
// is returned. The new user becomes the session user.
func (s *Store) Signup(ctx context.Context, email, password, name string) (*models.User, error) {
	if err := s.delay.Wait(ctx, delaySignup); err != nil {
		return nil, err
	}

	if _, ok := s.seed[email]; ok {
		return nil, common.ErrEmailAlreadyRegistered
	}

	user := models.User{ID: idgen.NewID(), Email: email, Name: name}
	_, err := kvstore.Update(ctx, s.kv, kvstore.KeyRegisteredUsers, map[string]models.Credential{},
		func(reg map[string]models.Credential) (map[string]models.Credential, error) {
			if _, ok := reg[email]; ok {
				return nil, common.ErrEmailAlreadyRegistered
			}
			reg[email] = models.Credential{Password: password, User: user}
			return reg, nil
		})
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, user)
}

// Logout clears the session slot. Logging out with no session is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.delay.Wait(ctx, delayLogout); err != nil {
		return err
	}
	return s.kv.Delete(ctx, kvstore.KeySessionUser)
}

// CurrentUser returns the session user, or nil when nobody is logged in.
func (s *Store) CurrentUser(ctx context.Context) (*models.User, error) {
	if err := s.delay.Wait(ctx, delayCurrentUser); err != nil {
		return nil, err
	}
	return kvstore.Read[*models.User](ctx, s.kv, kvstore.KeySessionUser, nil)
}

func (s *Store) registered(ctx context.Context) (map[string]models.Credential, error) {
	return kvstore.Read(ctx, s.kv, kvstore.KeyRegisteredUsers, map[string]models.Credential{})
}

func (s *Store) establishSession(ctx context.Context, u models.User) (*models.User, error) {
	if err := kvstore.Write(ctx, s.kv, kvstore.KeySessionUser, u); err != nil {
		return nil, err
	}
	return &u, nil
}
