package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/pkg/logger"
)

// SessionRequest carries the opaque id from the external OAuth redirect.
type SessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// Handler exposes the /auth endpoints.
type Handler struct {
	auth *Authenticator
}

func NewHandler(a *Authenticator) *Handler {
	return &Handler{auth: a}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	g.POST("/session", h.ProcessSession)
	g.GET("/me", RequireAuth(h.auth), h.Me)
	g.POST("/logout", RequireAuth(h.auth), h.Logout)
}

// ProcessSession exchanges an external session id for a user and a session
// cookie valid for the full session ttl.
func (h *Handler) ProcessSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, sess, err := h.auth.Login(c.Request.Context(), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSessionID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		case errors.Is(err, ErrUpstreamTimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Authentication service timeout"})
		case errors.Is(err, ErrInvalidUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Invalid authentication service response"})
		default:
			logger.Errorf("login exchange failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieName, sess.SessionToken, maxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{"user": u})
}

// Me returns the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

// Logout deletes the caller's session and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	token := TokenFromRequest(c)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		logger.Errorf("session delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove session"})
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieName, "", -1, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
