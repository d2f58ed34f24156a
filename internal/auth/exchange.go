package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/joglo66/fleet-backend/pkg/metrics"
)

// SessionData is the payload the external OAuth session-data service returns
// for a valid session id.
type SessionData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// ExchangeClient calls the external OAuth session-data service. The call is
// bounded by the configured timeout and never retried.
type ExchangeClient struct {
	url    string
	client *http.Client
}

func NewExchangeClient(url string, timeout time.Duration) *ExchangeClient {
	return &ExchangeClient{url: url, client: &http.Client{Timeout: timeout}}
}

// Exchange resolves an opaque external session id into user identity and a
// ready-to-use session token.
func (c *ExchangeClient) Exchange(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("session exchange: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.ExchangeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("session exchange: %w", ErrUpstreamTimeout)
		}
		return nil, fmt.Errorf("session exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned %d: %w", resp.StatusCode, ErrInvalidSessionID)
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode upstream body: %w", ErrInvalidUpstream)
	}
	if data.Email == "" || data.Name == "" || data.SessionToken == "" {
		return nil, fmt.Errorf("upstream body missing required fields: %w", ErrInvalidUpstream)
	}
	return &data, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
