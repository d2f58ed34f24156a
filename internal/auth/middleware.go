package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/models"
	"github.com/joglo66/fleet-backend/pkg/metrics"
)

// CookieName is the session cookie issued on login.
const CookieName = "session_token"

const userKey = "auth.user"

// TokenFromRequest resolves credentials in order: session cookie first, then
// a bearer Authorization header. Empty string when neither is present.
func TokenFromRequest(c *gin.Context) string {
	if tok, err := c.Cookie(CookieName); err == nil && tok != "" {
		return tok
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// RequireAuth validates the request's credentials against the store on every
// call and aborts with the mapped status when that fails.
func RequireAuth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := a.UserForToken(c.Request.Context(), TokenFromRequest(c))
		if err != nil {
			switch {
			case errors.Is(err, ErrUnauthenticated):
				metrics.AuthFailures.WithLabelValues("unauthenticated").Inc()
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.Is(err, ErrUserNotFound):
				metrics.AuthFailures.WithLabelValues("user_not_found").Inc()
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				metrics.AuthFailures.WithLabelValues("internal").Inc()
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
