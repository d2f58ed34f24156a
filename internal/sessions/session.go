package sessions

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session maps an opaque token to a user id. The token comes from the
// external OAuth exchange; this service never mints its own.
type Session struct {
	UserID       string    `bson:"user_id" json:"user_id"`
	SessionToken string    `bson:"session_token" json:"session_token"`
	ExpiresAt    time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Expired reports whether the session is past its absolute expiry.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now.UTC())
}

// sessionDoc is the stored shape. expires_at may have been written as a
// BSON datetime or as an ISO-formatted string; both must validate.
type sessionDoc struct {
	UserID       string      `bson:"user_id"`
	SessionToken string      `bson:"session_token"`
	ExpiresAt    interface{} `bson:"expires_at"`
	CreatedAt    time.Time   `bson:"created_at"`
}

var stringLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999", // no zone: treated as UTC
	"2006-01-02 15:04:05.999999999",
}

// ParseExpiry normalizes a stored expiry to an absolute UTC instant.
// Strings without timezone information are interpreted as UTC.
func ParseExpiry(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case primitive.DateTime:
		return t.Time().UTC(), nil
	case string:
		for _, layout := range stringLayouts {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable expiry %q", t)
	default:
		return time.Time{}, fmt.Errorf("unsupported expiry type %T", v)
	}
}

func (d *sessionDoc) toSession() (*Session, error) {
	exp, err := ParseExpiry(d.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &Session{
		UserID:       d.UserID,
		SessionToken: d.SessionToken,
		ExpiresAt:    exp,
		CreatedAt:    d.CreatedAt,
	}, nil
}
