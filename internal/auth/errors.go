package auth

import "errors"

var (
	// ErrUnauthenticated covers missing, unknown and expired credentials.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrUserNotFound means the session was structurally valid but its user
	// record is gone.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidSessionID means the upstream exchange rejected the session id.
	ErrInvalidSessionID = errors.New("invalid session id")
	// ErrUpstreamTimeout means the upstream exchange exceeded its bound.
	ErrUpstreamTimeout = errors.New("authentication service timeout")
	// ErrInvalidUpstream means the upstream responded 200 with a body that
	// does not carry the required fields.
	ErrInvalidUpstream = errors.New("invalid upstream response")
)
