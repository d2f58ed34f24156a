package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joglo66/fleet-backend/internal/models"
	"github.com/joglo66/fleet-backend/internal/sessions"
	"github.com/joglo66/fleet-backend/internal/store"
)

// Exchanger resolves an external session id; satisfied by ExchangeClient.
type Exchanger interface {
	Exchange(ctx context.Context, sessionID string) (*SessionData, error)
}

// Authenticator is the sole gate in front of every other component: it turns
// an inbound token into a user identity, and runs the external login
// exchange. No caching anywhere; every check is a fresh store lookup.
type Authenticator struct {
	sessions sessions.Repository
	users    store.Store[models.User]
	exchange Exchanger
	ttl      time.Duration
}

func NewAuthenticator(sess sessions.Repository, users store.Store[models.User], ex Exchanger, ttl time.Duration) *Authenticator {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Authenticator{sessions: sess, users: users, exchange: ex, ttl: ttl}
}

// UserForToken validates a session token and returns the full user record.
func (a *Authenticator) UserForToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	sess, err := a.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found: %w", ErrUnauthenticated)
	}
	if sess.Expired(time.Now()) {
		return nil, fmt.Errorf("session expired: %w", ErrUnauthenticated)
	}
	u, err := a.users.Get(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}
	return u, nil
}

// Login runs the external exchange, upserts the user by email and creates a
// session with an absolute expiry of now + ttl. The token is the one the
// upstream issued.
func (a *Authenticator) Login(ctx context.Context, sessionID string) (*models.User, *sessions.Session, error) {
	data, err := a.exchange.Exchange(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	userID := store.NewID("user")
	existing, err := a.users.ListWhere(ctx, "email", data.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("user lookup: %w", err)
	}
	if len(existing) > 0 {
		userID = existing[0].UserID
		err = a.users.Patch(ctx, userID, map[string]interface{}{
			"name":    data.Name,
			"picture": data.Picture,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("user update: %w", err)
		}
	} else {
		u := models.User{
			UserID:    userID,
			Email:     data.Email,
			Name:      data.Name,
			Picture:   data.Picture,
			Role:      "Admin",
			CreatedAt: time.Now().UTC(),
		}
		if err := a.users.Insert(ctx, &u); err != nil {
			return nil, nil, fmt.Errorf("user create: %w", err)
		}
	}

	now := time.Now().UTC()
	sess := &sessions.Session{
		UserID:       userID,
		SessionToken: data.SessionToken,
		ExpiresAt:    now.Add(a.ttl),
		CreatedAt:    now,
	}
	if err := a.sessions.Create(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("session create: %w", err)
	}

	u, err := a.users.Get(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("user reload: %w", err)
	}
	return u, sess, nil
}

// Logout deletes the session record; a no-op when no session matches.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.sessions.DeleteByToken(ctx, token)
}
