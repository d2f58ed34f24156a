package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joglo66/fleet-backend/internal/models"
	"github.com/joglo66/fleet-backend/internal/sessions"
	"github.com/joglo66/fleet-backend/internal/store"
)

type fakeExchanger struct {
	data *SessionData
	err  error
}

func (f *fakeExchanger) Exchange(ctx context.Context, sessionID string) (*SessionData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func newTestAuthenticator(ex Exchanger) (*Authenticator, sessions.Repository, *store.Memory[models.User]) {
	sess := sessions.NewMemoryRepository()
	users := store.NewMemory[models.User]("user_id")
	return NewAuthenticator(sess, users, ex, 7*24*time.Hour), sess, users
}

func TestUserForTokenMissing(t *testing.T) {
	a, _, _ := newTestAuthenticator(&fakeExchanger{})

	_, err := a.UserForToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = a.UserForToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUserForTokenExpired(t *testing.T) {
	a, sess, users := newTestAuthenticator(&fakeExchanger{})
	ctx := context.Background()

	require.NoError(t, users.Insert(ctx, &models.User{UserID: "user_1", Email: "a@b.c", Name: "A", Role: "Admin"}))
	require.NoError(t, sess.Create(ctx, &sessions.Session{
		UserID:       "user_1",
		SessionToken: "tok",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}))

	_, err := a.UserForToken(ctx, "tok")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUserForTokenUserGone(t *testing.T) {
	a, sess, _ := newTestAuthenticator(&fakeExchanger{})
	ctx := context.Background()

	require.NoError(t, sess.Create(ctx, &sessions.Session{
		UserID:       "user_gone",
		SessionToken: "tok",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	_, err := a.UserForToken(ctx, "tok")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserForTokenValid(t *testing.T) {
	a, sess, users := newTestAuthenticator(&fakeExchanger{})
	ctx := context.Background()

	require.NoError(t, users.Insert(ctx, &models.User{UserID: "user_1", Email: "a@b.c", Name: "A", Role: "Admin"}))
	require.NoError(t, sess.Create(ctx, &sessions.Session{
		UserID:       "user_1",
		SessionToken: "tok",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	u, err := a.UserForToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "user_1", u.UserID)
	assert.Equal(t, "a@b.c", u.Email)
}

func TestLoginCreatesUserAndSession(t *testing.T) {
	ex := &fakeExchanger{data: &SessionData{
		Email:        "driver@example.com",
		Name:         "Dana",
		Picture:      "https://img.example.com/d.png",
		SessionToken: "upstream-token",
	}}
	a, _, users := newTestAuthenticator(ex)
	ctx := context.Background()

	u, sess, err := a.Login(ctx, "sid-123")
	require.NoError(t, err)

	assert.NotEmpty(t, u.UserID)
	assert.Equal(t, "driver@example.com", u.Email)
	assert.Equal(t, "Admin", u.Role)
	assert.Equal(t, "upstream-token", sess.SessionToken)
	assert.Equal(t, u.UserID, sess.UserID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), sess.ExpiresAt, time.Minute)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Token is immediately usable.
	got, err := a.UserForToken(ctx, "upstream-token")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)
}

func TestLoginReusesExistingUser(t *testing.T) {
	ex := &fakeExchanger{data: &SessionData{
		Email:        "driver@example.com",
		Name:         "Dana Renamed",
		Picture:      "https://img.example.com/new.png",
		SessionToken: "tok-2",
	}}
	a, _, users := newTestAuthenticator(ex)
	ctx := context.Background()

	require.NoError(t, users.Insert(ctx, &models.User{
		UserID:  "user_old",
		Email:   "driver@example.com",
		Name:    "Dana",
		Picture: "https://img.example.com/old.png",
		Role:    "Admin",
	}))

	u, _, err := a.Login(ctx, "sid-456")
	require.NoError(t, err)

	assert.Equal(t, "user_old", u.UserID)
	assert.Equal(t, "Dana Renamed", u.Name)
	assert.Equal(t, "https://img.example.com/new.png", u.Picture)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLoginExchangeFailure(t *testing.T) {
	ex := &fakeExchanger{err: ErrInvalidSessionID}
	a, sess, users := newTestAuthenticator(ex)
	ctx := context.Background()

	_, _, err := a.Login(ctx, "bad-sid")
	assert.ErrorIs(t, err, ErrInvalidSessionID)

	// Nothing persisted on failure.
	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	s, err := sess.GetByToken(ctx, "upstream-token")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestLogout(t *testing.T) {
	a, sess, _ := newTestAuthenticator(&fakeExchanger{})
	ctx := context.Background()

	require.NoError(t, sess.Create(ctx, &sessions.Session{
		UserID:       "user_1",
		SessionToken: "tok",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	require.NoError(t, a.Logout(ctx, "tok"))
	s, err := sess.GetByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, s)

	// Idempotent for unknown and empty tokens.
	assert.NoError(t, a.Logout(ctx, "tok"))
	assert.NoError(t, a.Logout(ctx, ""))
}
