package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlagunovs/watertrack/internal/common"
	"github.com/mlagunovs/watertrack/internal/kvstore"
	"github.com/mlagunovs/watertrack/internal/latency"
)

func newTestStore() *Store {
	return NewStore(kvstore.NewMemoryStore(), latency.None{})
}

func TestLogin_SeedAccount(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	u, err := s.Login(ctx, "demo@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
	assert.Equal(t, "Demo User", u.Name)

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, u.ID, cur.ID)
}

func TestLogin_WrongPasswordAndUnknownEmailConflated(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Login(ctx, "demo@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err2 := s.Login(ctx, "nobody@example.com", "whatever")
	require.ErrorIs(t, err2, common.ErrInvalidCredentials)

	// same sentinel, so the two cases are indistinguishable to callers
	assert.Equal(t, err.Error(), err2.Error())

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestSignup_ThenLoginReturnsSameUser(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.Signup(ctx, "ann@example.com", "s3cret", "Ann")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ann@example.com", created.Email)
	assert.Equal(t, "Ann", created.Name)

	require.NoError(t, s.Logout(ctx))

	logged, err := s.Login(ctx, "ann@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
}

func TestSignup_EstablishesSession(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.Signup(ctx, "bob@example.com", "pw", "Bob")
	require.NoError(t, err)

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, created.ID, cur.ID)
}

func TestSignup_SeedEmailAlwaysRejected(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	for _, pw := range []string{"password123", "something else"} {
		_, err := s.Signup(ctx, "demo@example.com", pw, "Impostor")
		assert.ErrorIs(t, err, common.ErrEmailAlreadyRegistered)
	}
}

func TestSignup_DuplicateRegisteredEmailRejected(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Signup(ctx, "ann@example.com", "pw1", "Ann")
	require.NoError(t, err)

	_, err = s.Signup(ctx, "ann@example.com", "pw2", "Ann Again")
	assert.ErrorIs(t, err, common.ErrEmailAlreadyRegistered)
}

func TestLogout_Idempotent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Login(ctx, "demo@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx)) // already empty, still fine

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestCurrentUser_NilWithoutSession(t *testing.T) {
	s := newTestStore()

	cur, err := s.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cur)
}
